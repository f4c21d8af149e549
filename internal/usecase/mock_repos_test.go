package usecase

import (
	"context"

	"provider-directory/internal/domain/entity"

	"gorm.io/gorm"
)

// ── Mock DoctorRepository ──

type mockDoctorRepo struct {
	doctors    map[int]*entity.Doctor
	dependents map[int]int64
	nextID     int
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{
		doctors:    make(map[int]*entity.Doctor),
		dependents: make(map[int]int64),
		nextID:     1,
	}
}

func (m *mockDoctorRepo) Create(_ *gorm.DB, doctor *entity.Doctor) error {
	doctor.DoctorID = m.nextID
	m.nextID++
	m.doctors[doctor.DoctorID] = doctor
	return nil
}

func (m *mockDoctorRepo) FindByID(_ *gorm.DB, id int) (*entity.Doctor, error) {
	return m.doctors[id], nil
}

func (m *mockDoctorRepo) FindAll(_ *gorm.DB) ([]entity.Doctor, error) {
	var result []entity.Doctor
	for _, d := range m.doctors {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDoctorRepo) Update(_ *gorm.DB, doctor *entity.Doctor) error {
	m.doctors[doctor.DoctorID] = doctor
	return nil
}

func (m *mockDoctorRepo) Delete(_ *gorm.DB, id int) (int64, error) {
	if _, ok := m.doctors[id]; !ok {
		return 0, nil
	}
	delete(m.doctors, id)
	return 1, nil
}

func (m *mockDoctorRepo) CountDependents(_ *gorm.DB, id int) (int64, error) {
	return m.dependents[id], nil
}

// ── Mock LicenseRepository ──

type mockLicenseRepo struct {
	licenses map[int]*entity.License
	nextID   int
}

func newMockLicenseRepo() *mockLicenseRepo {
	return &mockLicenseRepo{licenses: make(map[int]*entity.License), nextID: 1}
}

func (m *mockLicenseRepo) Create(_ *gorm.DB, license *entity.License) error {
	license.LicenseID = m.nextID
	m.nextID++
	m.licenses[license.LicenseID] = license
	return nil
}

func (m *mockLicenseRepo) FindByID(_ *gorm.DB, id int) (*entity.License, error) {
	return m.licenses[id], nil
}

func (m *mockLicenseRepo) FindByDoctorID(_ *gorm.DB, doctorID int) ([]entity.License, error) {
	var result []entity.License
	for _, l := range m.licenses {
		if l.DoctorID == doctorID {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockLicenseRepo) FindAll(_ *gorm.DB) ([]entity.License, error) {
	var result []entity.License
	for _, l := range m.licenses {
		result = append(result, *l)
	}
	return result, nil
}

func (m *mockLicenseRepo) Update(_ *gorm.DB, license *entity.License) error {
	m.licenses[license.LicenseID] = license
	return nil
}

func (m *mockLicenseRepo) Delete(_ *gorm.DB, id int) (int64, error) {
	if _, ok := m.licenses[id]; !ok {
		return 0, nil
	}
	delete(m.licenses, id)
	return 1, nil
}

// ── Mock PracticeRepository ──

type mockPracticeRepo struct {
	practices map[int]*entity.Practice
	nextID    int
}

func newMockPracticeRepo() *mockPracticeRepo {
	return &mockPracticeRepo{practices: make(map[int]*entity.Practice), nextID: 1}
}

func (m *mockPracticeRepo) Create(_ *gorm.DB, practice *entity.Practice) error {
	practice.PracticeID = m.nextID
	m.nextID++
	m.practices[practice.PracticeID] = practice
	return nil
}

func (m *mockPracticeRepo) FindByID(_ *gorm.DB, id int) (*entity.Practice, error) {
	return m.practices[id], nil
}

func (m *mockPracticeRepo) FindAll(_ *gorm.DB) ([]entity.Practice, error) {
	var result []entity.Practice
	for _, p := range m.practices {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPracticeRepo) Update(_ *gorm.DB, practice *entity.Practice) error {
	m.practices[practice.PracticeID] = practice
	return nil
}

func (m *mockPracticeRepo) Delete(_ *gorm.DB, id int) (int64, error) {
	if _, ok := m.practices[id]; !ok {
		return 0, nil
	}
	delete(m.practices, id)
	return 1, nil
}

// ── Mock DoctorPracticeRepository ──

type mockAffiliationRepo struct {
	affiliations map[int]*entity.DoctorPractice
	nextID       int
}

func newMockAffiliationRepo() *mockAffiliationRepo {
	return &mockAffiliationRepo{affiliations: make(map[int]*entity.DoctorPractice), nextID: 1}
}

func (m *mockAffiliationRepo) Create(_ *gorm.DB, affiliation *entity.DoctorPractice) error {
	affiliation.DoctorPracticeID = m.nextID
	m.nextID++
	m.affiliations[affiliation.DoctorPracticeID] = affiliation
	return nil
}

func (m *mockAffiliationRepo) FindByID(_ *gorm.DB, id int) (*entity.DoctorPractice, error) {
	return m.affiliations[id], nil
}

func (m *mockAffiliationRepo) FindByDoctorID(_ *gorm.DB, doctorID int) ([]entity.DoctorPractice, error) {
	var result []entity.DoctorPractice
	for _, a := range m.affiliations {
		if a.DoctorID == doctorID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAffiliationRepo) FindByPracticeID(_ *gorm.DB, practiceID int) ([]entity.DoctorPractice, error) {
	var result []entity.DoctorPractice
	for _, a := range m.affiliations {
		if a.PracticeID == practiceID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAffiliationRepo) Update(_ *gorm.DB, affiliation *entity.DoctorPractice) error {
	m.affiliations[affiliation.DoctorPracticeID] = affiliation
	return nil
}

func (m *mockAffiliationRepo) Delete(_ *gorm.DB, id int) (int64, error) {
	if _, ok := m.affiliations[id]; !ok {
		return 0, nil
	}
	delete(m.affiliations, id)
	return 1, nil
}

// ── Mock RosterRepository ──

type mockRosterRepo struct {
	entries []entity.RosterEntry
	err     error
	calls   int
}

func (m *mockRosterRepo) List(_ *gorm.DB) ([]entity.RosterEntry, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

// ── Mock RosterCache ──

type mockRosterCache struct {
	entries     []entity.RosterEntry
	populated   bool
	invalidated int
}

func (m *mockRosterCache) Get(_ context.Context) ([]entity.RosterEntry, bool) {
	if !m.populated {
		return nil, false
	}
	return m.entries, true
}

func (m *mockRosterCache) Set(_ context.Context, entries []entity.RosterEntry) {
	m.entries = entries
	m.populated = true
}

func (m *mockRosterCache) Invalidate(_ context.Context) {
	m.entries = nil
	m.populated = false
	m.invalidated++
}
