package seeder

import (
	"math/rand"
	"testing"
)

func TestRandomLicenses(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		licenses := randomLicenses(rng, 42)

		if len(licenses) < 1 || len(licenses) > maxLicensesPerDoctor {
			t.Fatalf("expected 1-%d licenses, got %d", maxLicensesPerDoctor, len(licenses))
		}
		for _, l := range licenses {
			if l.DoctorID != 42 {
				t.Errorf("license not bound to doctor: %+v", l)
			}
			if !l.Status.IsValid() {
				t.Errorf("generated invalid status %q", l.Status)
			}
			if !l.ExpiryDate.After(l.IssueDate) {
				t.Errorf("expiry %v not after issue %v", l.ExpiryDate, l.IssueDate)
			}
			if len(l.State) != 2 {
				t.Errorf("state %q is not a two-character code", l.State)
			}
		}
	}
}

func TestRandomAffiliations(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	practiceIDs := []int{10, 20, 30, 40, 50}

	openEnded, total := 0, 0
	for i := 0; i < 500; i++ {
		affiliations := randomAffiliations(rng, 7, practiceIDs)

		if len(affiliations) < 1 || len(affiliations) > maxPracticesPerDoctor {
			t.Fatalf("expected 1-%d affiliations, got %d", maxPracticesPerDoctor, len(affiliations))
		}
		if !affiliations[0].IsPrimary {
			t.Error("first affiliation must be primary")
		}

		seen := make(map[int]bool)
		for j, a := range affiliations {
			if a.DoctorID != 7 {
				t.Errorf("affiliation not bound to doctor: %+v", a)
			}
			if seen[a.PracticeID] {
				t.Errorf("duplicate practice %d for one doctor", a.PracticeID)
			}
			seen[a.PracticeID] = true
			if j > 0 && a.IsPrimary {
				t.Error("only the first affiliation may be primary")
			}
			total++
			if a.EndDate == nil {
				openEnded++
			}
		}
	}

	// Roughly 80% of affiliations are open-ended
	share := float64(openEnded) / float64(total)
	if share < 0.7 || share > 0.9 {
		t.Errorf("open-ended share %.2f outside expected range", share)
	}
}

func TestRandomAffiliations_FewPractices(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	if got := randomAffiliations(rng, 1, nil); got != nil {
		t.Errorf("expected no affiliations without practices, got %d", len(got))
	}

	for i := 0; i < 50; i++ {
		affiliations := randomAffiliations(rng, 1, []int{99})
		if len(affiliations) != 1 {
			t.Fatalf("expected exactly 1 affiliation with a single practice, got %d", len(affiliations))
		}
		if affiliations[0].PracticeID != 99 {
			t.Fatalf("unexpected practice id %d", affiliations[0].PracticeID)
		}
	}
}

func TestRandomDoctor(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 100; i++ {
		d := randomDoctor(rng)
		if d.FirstName == "" || d.LastName == "" {
			t.Fatalf("doctor names are required: %+v", d)
		}
		if d.Specialty == "" {
			t.Errorf("expected a specialty")
		}
		if d.DateOfBirth == nil {
			t.Fatal("expected a date of birth")
		}
	}
}

func TestRandomPractice(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		p := randomPractice(rng)
		if p.PracticeName == "" || p.AddressLine1 == "" || p.City == "" || p.ZipCode == "" {
			t.Fatalf("missing required practice fields: %+v", p)
		}
		if len(p.State) != 2 {
			t.Errorf("state %q is not a two-character code", p.State)
		}
	}
}
