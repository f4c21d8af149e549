//go:build integration

package repository_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"provider-directory/internal/domain/entity"
	"provider-directory/internal/infrastructure/database"
	"provider-directory/internal/repository"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=provider_directory_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to test database: %v\n", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// cleanTables empties every table so each test starts from a known state.
func cleanTables(t *testing.T) {
	t.Helper()
	err := testDB.Exec("TRUNCATE doctor_practices, licenses, doctors, practices RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func createDoctor(t *testing.T, firstName, lastName string) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{
		FirstName: firstName,
		LastName:  lastName,
		Specialty: "Cardiology",
		Email:     fmt.Sprintf("%s.%s@example.com", firstName, lastName),
	}
	if err := repository.NewDoctorRepository().Create(testDB, doctor); err != nil {
		t.Fatalf("failed to create doctor: %v", err)
	}
	return doctor
}

func createPractice(t *testing.T, name string) *entity.Practice {
	t.Helper()
	practice := &entity.Practice{
		PracticeName: name,
		AddressLine1: "100 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62704",
	}
	if err := repository.NewPracticeRepository().Create(testDB, practice); err != nil {
		t.Fatalf("failed to create practice: %v", err)
	}
	return practice
}

func createLicense(t *testing.T, doctorID int, number string, status entity.LicenseStatus) *entity.License {
	t.Helper()
	license := &entity.License{
		DoctorID:      doctorID,
		LicenseNumber: number,
		LicenseType:   "Medical License",
		State:         "IL",
		IssueDate:     date(2020, time.January, 15),
		ExpiryDate:    date(2030, time.January, 15),
		Status:        status,
	}
	if err := repository.NewLicenseRepository().Create(testDB, license); err != nil {
		t.Fatalf("failed to create license: %v", err)
	}
	return license
}

func createAffiliation(t *testing.T, doctorID, practiceID int, endDate *time.Time) *entity.DoctorPractice {
	t.Helper()
	affiliation := &entity.DoctorPractice{
		DoctorID:   doctorID,
		PracticeID: practiceID,
		Role:       "Attending Physician",
		StartDate:  date(2021, time.March, 1),
		EndDate:    endDate,
		IsPrimary:  true,
	}
	if err := repository.NewDoctorPracticeRepository().Create(testDB, affiliation); err != nil {
		t.Fatalf("failed to create affiliation: %v", err)
	}
	return affiliation
}

// Schema constraints

func TestLicense_StatusCheckConstraint(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")

	license := &entity.License{
		DoctorID:      doctor.DoctorID,
		LicenseNumber: "IL-000001-ABC",
		LicenseType:   "Medical License",
		State:         "IL",
		IssueDate:     date(2020, time.January, 15),
		ExpiryDate:    date(2030, time.January, 15),
		Status:        "Pending",
	}
	err := repository.NewLicenseRepository().Create(testDB, license)
	if err == nil {
		t.Fatal("expected the status check constraint to reject an unknown value")
	}
}

func TestLicense_ForeignKeyRejectsOrphan(t *testing.T) {
	cleanTables(t)

	license := &entity.License{
		DoctorID:      99999,
		LicenseNumber: "IL-000002-DEF",
		LicenseType:   "Medical License",
		State:         "IL",
		IssueDate:     date(2020, time.January, 15),
		ExpiryDate:    date(2030, time.January, 15),
		Status:        entity.LicenseStatusActive,
	}
	err := repository.NewLicenseRepository().Create(testDB, license)
	if err == nil {
		t.Fatal("expected the foreign key to reject a license without a doctor")
	}
}

func TestAffiliation_ForeignKeysRejectOrphans(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")
	practice := createPractice(t, "Springfield Clinic")

	repo := repository.NewDoctorPracticeRepository()

	missingDoctor := &entity.DoctorPractice{
		DoctorID:   99999,
		PracticeID: practice.PracticeID,
		StartDate:  date(2021, time.March, 1),
	}
	if err := repo.Create(testDB, missingDoctor); err == nil {
		t.Error("expected the foreign key to reject an affiliation without a doctor")
	}

	missingPractice := &entity.DoctorPractice{
		DoctorID:   doctor.DoctorID,
		PracticeID: 99999,
		StartDate:  date(2021, time.March, 1),
	}
	if err := repo.Create(testDB, missingPractice); err == nil {
		t.Error("expected the foreign key to reject an affiliation without a practice")
	}
}

func TestDoctor_DeleteBlockedByDependents(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")
	createLicense(t, doctor.DoctorID, "IL-000003-GHI", entity.LicenseStatusActive)

	repo := repository.NewDoctorRepository()

	count, err := repo.CountDependents(testDB, doctor.DoctorID)
	if err != nil {
		t.Fatalf("CountDependents failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 dependent, got %d", count)
	}

	// The database itself refuses the delete while the license exists.
	if _, err := repo.Delete(testDB, doctor.DoctorID); err == nil {
		t.Fatal("expected the foreign key to block deleting a doctor with licenses")
	}
}

func TestDoctor_UpdateDoesNotTouchUpdatedAt(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")

	repo := repository.NewDoctorRepository()
	created, err := repo.FindByID(testDB, doctor.DoctorID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}

	created.Specialty = "Neurology"
	if err := repo.Update(testDB, created); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	after, err := repo.FindByID(testDB, doctor.DoctorID)
	if err != nil {
		t.Fatalf("FindByID after update failed: %v", err)
	}
	if !after.UpdatedAt.Equal(created.UpdatedAt) {
		t.Errorf("updated_at changed on update: was %v, now %v", created.UpdatedAt, after.UpdatedAt)
	}
	if after.Specialty != "Neurology" {
		t.Errorf("specialty not updated, got %q", after.Specialty)
	}
}

// Roster query

func TestRoster_ExcludesDoctorsWithoutAffiliations(t *testing.T) {
	cleanTables(t)
	unaffiliated := createDoctor(t, "Bob", "Jones")
	createLicense(t, unaffiliated.DoctorID, "IL-000004-JKL", entity.LicenseStatusActive)

	affiliated := createDoctor(t, "Alice", "Smith")
	practice := createPractice(t, "Springfield Clinic")
	createAffiliation(t, affiliated.DoctorID, practice.PracticeID, nil)

	entries, err := repository.NewRosterRepository().List(testDB)
	if err != nil {
		t.Fatalf("roster query failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 roster entry, got %d", len(entries))
	}
	if entries[0].DoctorID != affiliated.DoctorID {
		t.Errorf("expected doctor %d on the roster, got %d", affiliated.DoctorID, entries[0].DoctorID)
	}
}

func TestRoster_SingleAffiliationAndLicense(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")
	practice := createPractice(t, "Springfield Clinic")
	createAffiliation(t, doctor.DoctorID, practice.PracticeID, nil)
	license := createLicense(t, doctor.DoctorID, "IL-000005-MNO", entity.LicenseStatusActive)

	entries, err := repository.NewRosterRepository().List(testDB)
	if err != nil {
		t.Fatalf("roster query failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 roster entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.FirstName != "Alice" || entry.LastName != "Smith" {
		t.Errorf("unexpected doctor on entry: %s %s", entry.FirstName, entry.LastName)
	}
	if entry.PracticeName != "Springfield Clinic" {
		t.Errorf("unexpected practice %q", entry.PracticeName)
	}
	if !entry.IsPrimary {
		t.Error("expected the primary affiliation flag")
	}
	if entry.LicenseNumber != license.LicenseNumber {
		t.Errorf("expected license %q, got %q", license.LicenseNumber, entry.LicenseNumber)
	}
	if entry.LicenseStatus != string(entity.LicenseStatusActive) {
		t.Errorf("unexpected license status %q", entry.LicenseStatus)
	}
	if entry.EndDate != nil {
		t.Errorf("expected open-ended affiliation, got end date %v", entry.EndDate)
	}
}

func TestRoster_ExpiredAffiliationIgnored(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")
	ended := createPractice(t, "Old Clinic")
	current := createPractice(t, "New Clinic")

	// One affiliation ended years ago, one is open-ended.
	createAffiliation(t, doctor.DoctorID, ended.PracticeID, datePtr(2019, time.June, 30))
	createAffiliation(t, doctor.DoctorID, current.PracticeID, nil)

	entries, err := repository.NewRosterRepository().List(testDB)
	if err != nil {
		t.Fatalf("roster query failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 roster entry, got %d", len(entries))
	}
	if entries[0].PracticeID != current.PracticeID {
		t.Errorf("expected the open-ended affiliation's practice %d, got %d", current.PracticeID, entries[0].PracticeID)
	}
}

func TestRoster_EndDateTodayOrLaterIncluded(t *testing.T) {
	cleanTables(t)
	practice := createPractice(t, "Springfield Clinic")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	future := today.AddDate(1, 0, 0)

	endsToday := createDoctor(t, "Alice", "Smith")
	createAffiliation(t, endsToday.DoctorID, practice.PracticeID, &today)

	endsLater := createDoctor(t, "Bob", "Jones")
	createAffiliation(t, endsLater.DoctorID, practice.PracticeID, &future)

	entries, err := repository.NewRosterRepository().List(testDB)
	if err != nil {
		t.Fatalf("roster query failed: %v", err)
	}
	// An affiliation is current through its end date, so both doctors belong
	// on the roster.
	if len(entries) != 2 {
		t.Fatalf("expected 2 roster entries, got %d", len(entries))
	}
	seen := map[int]bool{}
	for _, e := range entries {
		seen[e.DoctorID] = true
	}
	if !seen[endsToday.DoctorID] {
		t.Error("doctor whose affiliation ends today must appear on the roster")
	}
	if !seen[endsLater.DoctorID] {
		t.Error("doctor whose affiliation ends in the future must appear on the roster")
	}
}

func TestRoster_OnlyExpiredAffiliationExcludesDoctor(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")
	practice := createPractice(t, "Old Clinic")
	createAffiliation(t, doctor.DoctorID, practice.PracticeID, datePtr(2019, time.June, 30))

	entries, err := repository.NewRosterRepository().List(testDB)
	if err != nil {
		t.Fatalf("roster query failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no roster entries, got %d", len(entries))
	}
}

func TestRoster_ConcurrentAffiliationsYieldOneRow(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")
	first := createPractice(t, "First Clinic")
	second := createPractice(t, "Second Clinic")

	createAffiliation(t, doctor.DoctorID, first.PracticeID, nil)
	createAffiliation(t, doctor.DoctorID, second.PracticeID, nil)

	entries, err := repository.NewRosterRepository().List(testDB)
	if err != nil {
		t.Fatalf("roster query failed: %v", err)
	}
	// Exactly one row per doctor; which of the two current affiliations
	// appears is not defined.
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 roster entry, got %d", len(entries))
	}
	got := entries[0].PracticeID
	if got != first.PracticeID && got != second.PracticeID {
		t.Errorf("entry references unknown practice %d", got)
	}
}

func TestRoster_MultipleLicensesYieldOneRow(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")
	practice := createPractice(t, "Springfield Clinic")
	createAffiliation(t, doctor.DoctorID, practice.PracticeID, nil)
	first := createLicense(t, doctor.DoctorID, "IL-000006-PQR", entity.LicenseStatusActive)
	second := createLicense(t, doctor.DoctorID, "WI-000007-STU", entity.LicenseStatusExpired)

	entries, err := repository.NewRosterRepository().List(testDB)
	if err != nil {
		t.Fatalf("roster query failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 roster entry, got %d", len(entries))
	}
	got := entries[0].LicenseNumber
	if got != first.LicenseNumber && got != second.LicenseNumber {
		t.Errorf("entry references unknown license %q", got)
	}
}

func TestRoster_AffiliatedDoctorWithoutLicense(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")
	practice := createPractice(t, "Springfield Clinic")
	createAffiliation(t, doctor.DoctorID, practice.PracticeID, nil)

	entries, err := repository.NewRosterRepository().List(testDB)
	if err != nil {
		t.Fatalf("roster query failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 roster entry, got %d", len(entries))
	}
	if entries[0].LicenseNumber != "" {
		t.Errorf("expected empty license columns, got %q", entries[0].LicenseNumber)
	}
	if entries[0].IssueDate != nil || entries[0].ExpiryDate != nil {
		t.Error("expected null license dates")
	}
}

func TestRoster_Ordering(t *testing.T) {
	cleanTables(t)
	alpha := createPractice(t, "Alpha Clinic")
	beta := createPractice(t, "Beta Clinic")

	// Beta gets one doctor; Alpha gets three to exercise both name keys.
	betaDoctor := createDoctor(t, "Aaron", "Abbott")
	createAffiliation(t, betaDoctor.DoctorID, beta.PracticeID, nil)

	for _, name := range [][2]string{{"Carol", "Young"}, {"Alice", "Baker"}, {"Bob", "Baker"}} {
		d := createDoctor(t, name[0], name[1])
		createAffiliation(t, d.DoctorID, alpha.PracticeID, nil)
	}

	entries, err := repository.NewRosterRepository().List(testDB)
	if err != nil {
		t.Fatalf("roster query failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 roster entries, got %d", len(entries))
	}

	want := []struct {
		practice, last, first string
	}{
		{"Alpha Clinic", "Baker", "Alice"},
		{"Alpha Clinic", "Baker", "Bob"},
		{"Alpha Clinic", "Young", "Carol"},
		{"Beta Clinic", "Abbott", "Aaron"},
	}
	for i, w := range want {
		e := entries[i]
		if e.PracticeName != w.practice || e.LastName != w.last || e.FirstName != w.first {
			t.Errorf("position %d: expected %s / %s %s, got %s / %s %s",
				i, w.practice, w.first, w.last, e.PracticeName, e.FirstName, e.LastName)
		}
	}
}

// CRUD round trips

func TestPractice_CRUD(t *testing.T) {
	cleanTables(t)
	repo := repository.NewPracticeRepository()

	practice := createPractice(t, "Springfield Clinic")

	found, err := repo.FindByID(testDB, practice.PracticeID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found == nil || found.PracticeName != "Springfield Clinic" {
		t.Fatalf("unexpected practice: %+v", found)
	}

	found.City = "Shelbyville"
	if err := repo.Update(testDB, found); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	rows, err := repo.Delete(testDB, practice.PracticeID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row deleted, got %d", rows)
	}

	missing, err := repo.FindByID(testDB, practice.PracticeID)
	if err != nil {
		t.Fatalf("FindByID after delete failed: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for a deleted practice")
	}
}

func TestAffiliation_ClearEndDate(t *testing.T) {
	cleanTables(t)
	doctor := createDoctor(t, "Alice", "Smith")
	practice := createPractice(t, "Springfield Clinic")
	affiliation := createAffiliation(t, doctor.DoctorID, practice.PracticeID, datePtr(2026, time.December, 31))

	repo := repository.NewDoctorPracticeRepository()

	affiliation.EndDate = nil
	if err := repo.Update(testDB, affiliation); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByID(testDB, affiliation.DoctorPracticeID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.EndDate != nil {
		t.Errorf("expected end date cleared, got %v", found.EndDate)
	}
}
