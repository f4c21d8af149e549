package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"provider-directory/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	maxLicensesPerDoctor  = 3
	maxPracticesPerDoctor = 3

	// Fraction of affiliations left open-ended (null end date)
	openEndedShare = 0.8
)

// Options controls how much data the seeder produces.
type Options struct {
	Doctors   int
	Practices int
	BatchSize int
	Truncate  bool
	Seed      int64
}

// Seeder fills the schema with generated doctors, practices, licenses, and
// affiliations. Every doctor receives 1-3 licenses and 1-3 affiliations,
// the first of which is marked primary.
type Seeder struct {
	db   *gorm.DB
	log  *logrus.Logger
	rng  *rand.Rand
	opts Options
}

func New(db *gorm.DB, log *logrus.Logger, opts Options) *Seeder {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 1000
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{
		db:   db,
		log:  log,
		rng:  rand.New(rand.NewSource(seed)),
		opts: opts,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	start := time.Now()

	if s.opts.Truncate {
		if err := s.truncate(ctx); err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}
		s.log.Info("Existing data cleared")
	}

	practiceIDs, err := s.seedPractices(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed practices: %w", err)
	}
	s.log.Infof("Generated %d practices", len(practiceIDs))

	doctorIDs, err := s.seedDoctors(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed doctors: %w", err)
	}
	s.log.Infof("Generated %d doctors", len(doctorIDs))

	licenses, err := s.seedLicenses(ctx, doctorIDs)
	if err != nil {
		return fmt.Errorf("failed to seed licenses: %w", err)
	}
	s.log.Infof("Generated %d licenses", licenses)

	affiliations, err := s.seedAffiliations(ctx, doctorIDs, practiceIDs)
	if err != nil {
		return fmt.Errorf("failed to seed affiliations: %w", err)
	}
	s.log.Infof("Generated %d affiliations", affiliations)

	s.log.Infof("Seeding completed in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

func (s *Seeder) truncate(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Exec("TRUNCATE doctor_practices, licenses, doctors, practices RESTART IDENTITY CASCADE").Error
}

func (s *Seeder) seedPractices(ctx context.Context) ([]int, error) {
	practices := make([]entity.Practice, s.opts.Practices)
	for i := range practices {
		practices[i] = randomPractice(s.rng)
	}

	if err := s.db.WithContext(ctx).CreateInBatches(&practices, s.opts.BatchSize).Error; err != nil {
		return nil, err
	}

	ids := make([]int, len(practices))
	for i := range practices {
		ids[i] = practices[i].PracticeID
	}
	return ids, nil
}

func (s *Seeder) seedDoctors(ctx context.Context) ([]int, error) {
	doctors := make([]entity.Doctor, s.opts.Doctors)
	for i := range doctors {
		doctors[i] = randomDoctor(s.rng)
	}

	if err := s.db.WithContext(ctx).CreateInBatches(&doctors, s.opts.BatchSize).Error; err != nil {
		return nil, err
	}

	ids := make([]int, len(doctors))
	for i := range doctors {
		ids[i] = doctors[i].DoctorID
	}
	return ids, nil
}

func (s *Seeder) seedLicenses(ctx context.Context, doctorIDs []int) (int, error) {
	var licenses []entity.License
	for _, doctorID := range doctorIDs {
		licenses = append(licenses, randomLicenses(s.rng, doctorID)...)
	}

	if err := s.db.WithContext(ctx).CreateInBatches(&licenses, s.opts.BatchSize).Error; err != nil {
		return 0, err
	}
	return len(licenses), nil
}

func (s *Seeder) seedAffiliations(ctx context.Context, doctorIDs, practiceIDs []int) (int, error) {
	var affiliations []entity.DoctorPractice
	for _, doctorID := range doctorIDs {
		affiliations = append(affiliations, randomAffiliations(s.rng, doctorID, practiceIDs)...)
	}

	if err := s.db.WithContext(ctx).CreateInBatches(&affiliations, s.opts.BatchSize).Error; err != nil {
		return 0, err
	}
	return len(affiliations), nil
}

func randomPractice(rng *rand.Rand) entity.Practice {
	name := fmt.Sprintf("%s %s %s",
		lastNames[rng.Intn(len(lastNames))],
		streetNames[rng.Intn(len(streetNames))],
		practiceSuffixes[rng.Intn(len(practiceSuffixes))],
	)

	practice := entity.Practice{
		PracticeName: name,
		AddressLine1: fmt.Sprintf("%d %s St", 1+rng.Intn(9999), streetNames[rng.Intn(len(streetNames))]),
		City:         cities[rng.Intn(len(cities))],
		State:        states[rng.Intn(len(states))],
		ZipCode:      fmt.Sprintf("%05d", rng.Intn(100000)),
		Phone:        randomPhone(rng),
		Email:        fmt.Sprintf("contact@%s.com", slug(name)),
	}

	if rng.Float64() < 0.3 {
		suite := fmt.Sprintf("Suite %d", 1+rng.Intn(500))
		practice.AddressLine2 = &suite
	}
	if rng.Float64() < 0.8 {
		website := fmt.Sprintf("www.%s.com", slug(name))
		practice.Website = &website
	}

	return practice
}

func randomDoctor(rng *rand.Rand) entity.Doctor {
	firstName := firstNames[rng.Intn(len(firstNames))]
	lastName := lastNames[rng.Intn(len(lastNames))]

	// Age between 25 and 70
	dob := time.Now().AddDate(0, 0, -(25*365 + rng.Intn(45*365))).Truncate(24 * time.Hour)

	return entity.Doctor{
		FirstName:   firstName,
		LastName:    lastName,
		Specialty:   specialties[rng.Intn(len(specialties))],
		Email:       fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(firstName), strings.ToLower(lastName), rng.Intn(10000)),
		Phone:       randomPhone(rng),
		DateOfBirth: &dob,
	}
}

func randomLicenses(rng *rand.Rand, doctorID int) []entity.License {
	count := 1 + rng.Intn(maxLicensesPerDoctor)
	licenses := make([]entity.License, count)

	for i := range licenses {
		state := states[rng.Intn(len(states))]
		issueDate := time.Now().AddDate(0, 0, -rng.Intn(15*365)).Truncate(24 * time.Hour)
		expiryDate := issueDate.AddDate(0, 0, 365+rng.Intn(9*365))

		licenses[i] = entity.License{
			DoctorID:      doctorID,
			LicenseNumber: fmt.Sprintf("%s-%06d-%s", state, rng.Intn(1000000), randomLetters(rng, 3)),
			LicenseType:   licenseTypes[rng.Intn(len(licenseTypes))],
			State:         state,
			IssueDate:     issueDate,
			ExpiryDate:    expiryDate,
			Status:        randomLicenseStatus(rng),
		}
	}
	return licenses
}

// randomLicenseStatus draws a status with weights 0.80 Active, 0.15 Expired,
// 0.03 Suspended, 0.02 Revoked.
func randomLicenseStatus(rng *rand.Rand) entity.LicenseStatus {
	roll := rng.Float64()
	switch {
	case roll < 0.80:
		return entity.LicenseStatusActive
	case roll < 0.95:
		return entity.LicenseStatusExpired
	case roll < 0.98:
		return entity.LicenseStatusSuspended
	default:
		return entity.LicenseStatusRevoked
	}
}

func randomAffiliations(rng *rand.Rand, doctorID int, practiceIDs []int) []entity.DoctorPractice {
	if len(practiceIDs) == 0 {
		return nil
	}

	count := 1 + rng.Intn(maxPracticesPerDoctor)
	if count > len(practiceIDs) {
		count = len(practiceIDs)
	}

	// Distinct practices per doctor
	picks := rng.Perm(len(practiceIDs))[:count]

	affiliations := make([]entity.DoctorPractice, count)
	for i, pick := range picks {
		startDate := time.Now().AddDate(0, -1, -rng.Intn(10*365)).Truncate(24 * time.Hour)
		hours := 4 + rng.Intn(37)

		affiliation := entity.DoctorPractice{
			DoctorID:     doctorID,
			PracticeID:   practiceIDs[pick],
			Role:         roles[rng.Intn(len(roles))],
			StartDate:    startDate,
			IsPrimary:    i == 0,
			HoursPerWeek: &hours,
		}

		if rng.Float64() >= openEndedShare {
			endDate := startDate.AddDate(0, 0, rng.Intn(2*365))
			affiliation.EndDate = &endDate
		}

		affiliations[i] = affiliation
	}
	return affiliations
}

func randomPhone(rng *rand.Rand) string {
	return fmt.Sprintf("(%03d) %03d-%04d", 200+rng.Intn(800), 200+rng.Intn(800), rng.Intn(10000))
}

func randomLetters(rng *rand.Rand, n int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}
