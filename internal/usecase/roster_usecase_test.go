package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"provider-directory/internal/domain/entity"
)

func sampleRosterEntries() []entity.RosterEntry {
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	return []entity.RosterEntry{
		{
			DoctorID:      1,
			FirstName:     "Alice",
			LastName:      "Nguyen",
			PracticeID:    10,
			PracticeName:  "Hill Street Clinic",
			AddressLine1:  "12 Hill St",
			City:          "Salem",
			State:         "OR",
			ZipCode:       "97301",
			Role:          "Attending Physician",
			StartDate:     start,
			IsPrimary:     true,
			LicenseNumber: "OR-123456-ABC",
			LicenseStatus: "Active",
		},
	}
}

func TestRosterUsecase_GetRoster_CacheMiss(t *testing.T) {
	repo := &mockRosterRepo{entries: sampleRosterEntries()}
	cache := &mockRosterCache{}
	u := NewRosterUsecase(newTestDB(t), newTestLogger(), repo, cache)

	result, err := u.GetRoster(context.Background())
	if err != nil {
		t.Fatalf("GetRoster failed: %v", err)
	}

	if result.Total != 1 {
		t.Fatalf("expected 1 roster entry, got %d", result.Total)
	}
	if repo.calls != 1 {
		t.Errorf("expected 1 repository call, got %d", repo.calls)
	}
	if !cache.populated {
		t.Error("expected cache to be populated after a miss")
	}

	entry := result.Entries[0]
	if entry.PracticeName != "Hill Street Clinic" {
		t.Errorf("unexpected practice name %q", entry.PracticeName)
	}
	if entry.StartDate != "2020-03-01" {
		t.Errorf("expected start date 2020-03-01, got %q", entry.StartDate)
	}
	if entry.EndDate != "" {
		t.Errorf("expected empty end date for open-ended affiliation, got %q", entry.EndDate)
	}
}

func TestRosterUsecase_GetRoster_CacheHit(t *testing.T) {
	repo := &mockRosterRepo{entries: sampleRosterEntries()}
	cache := &mockRosterCache{}
	cache.Set(context.Background(), sampleRosterEntries())

	u := NewRosterUsecase(newTestDB(t), newTestLogger(), repo, cache)

	result, err := u.GetRoster(context.Background())
	if err != nil {
		t.Fatalf("GetRoster failed: %v", err)
	}

	if result.Total != 1 {
		t.Fatalf("expected 1 roster entry, got %d", result.Total)
	}
	if repo.calls != 0 {
		t.Errorf("expected no repository calls on cache hit, got %d", repo.calls)
	}
}

func TestRosterUsecase_GetRoster_QueryError(t *testing.T) {
	queryErr := errors.New("connection refused")
	repo := &mockRosterRepo{err: queryErr}
	cache := &mockRosterCache{}
	u := NewRosterUsecase(newTestDB(t), newTestLogger(), repo, cache)

	_, err := u.GetRoster(context.Background())
	if !errors.Is(err, queryErr) {
		t.Fatalf("expected query error to propagate, got %v", err)
	}
	if cache.populated {
		t.Error("cache must stay empty after a failed query")
	}
}
