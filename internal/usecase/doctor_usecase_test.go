package usecase

import (
	"context"
	"errors"
	"testing"

	"provider-directory/internal/domain/entity"
)

func setupDoctorUsecase(t *testing.T) (DoctorUsecase, *mockDoctorRepo, *mockRosterCache) {
	doctorRepo := newMockDoctorRepo()
	cache := &mockRosterCache{}
	u := NewDoctorUsecase(newTestDB(t), newTestLogger(), doctorRepo, cache)
	return u, doctorRepo, cache
}

func TestDoctorUsecase_GetDoctor_NotFound(t *testing.T) {
	u, _, _ := setupDoctorUsecase(t)

	_, err := u.GetDoctor(context.Background(), 1)
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestDoctorUsecase_GetDoctor_Success(t *testing.T) {
	u, doctorRepo, _ := setupDoctorUsecase(t)

	doctorRepo.doctors[5] = &entity.Doctor{
		DoctorID:  5,
		FirstName: "Maria",
		LastName:  "Torres",
		Specialty: "Cardiology",
	}

	result, err := u.GetDoctor(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetDoctor failed: %v", err)
	}
	if result.LastName != "Torres" {
		t.Errorf("unexpected last name %q", result.LastName)
	}
	if result.Specialty != "Cardiology" {
		t.Errorf("unexpected specialty %q", result.Specialty)
	}
	if result.DateOfBirth != "" {
		t.Errorf("expected empty date of birth, got %q", result.DateOfBirth)
	}
}

func TestDoctorUsecase_GetAllDoctors(t *testing.T) {
	u, doctorRepo, _ := setupDoctorUsecase(t)

	doctorRepo.doctors[1] = &entity.Doctor{DoctorID: 1, FirstName: "A", LastName: "B"}
	doctorRepo.doctors[2] = &entity.Doctor{DoctorID: 2, FirstName: "C", LastName: "D"}

	result, err := u.GetAllDoctors(context.Background())
	if err != nil {
		t.Fatalf("GetAllDoctors failed: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected 2 doctors, got %d", result.Total)
	}
}

func TestDoctorUsecase_DeleteDoctor_RefusedWithDependents(t *testing.T) {
	u, doctorRepo, cache := setupDoctorUsecase(t)

	doctorRepo.doctors[4] = &entity.Doctor{DoctorID: 4, FirstName: "E", LastName: "F"}
	doctorRepo.dependents[4] = 3

	err := u.DeleteDoctor(context.Background(), 4)
	if !errors.Is(err, ErrDoctorHasDependents) {
		t.Fatalf("expected ErrDoctorHasDependents, got %v", err)
	}
	if _, ok := doctorRepo.doctors[4]; !ok {
		t.Error("doctor must not be removed while dependents exist")
	}
	if cache.invalidated != 0 {
		t.Error("cache must not be invalidated on a refused delete")
	}
}
