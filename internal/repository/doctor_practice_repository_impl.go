package repository

import (
	"errors"

	"provider-directory/internal/domain/entity"
	domainRepo "provider-directory/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorPracticeRepository struct{}

func NewDoctorPracticeRepository() domainRepo.DoctorPracticeRepository {
	return &doctorPracticeRepository{}
}

func (r *doctorPracticeRepository) Create(db *gorm.DB, affiliation *entity.DoctorPractice) error {
	return db.Omit("Doctor", "Practice").Create(affiliation).Error
}

func (r *doctorPracticeRepository) FindByID(db *gorm.DB, id int) (*entity.DoctorPractice, error) {
	var affiliation entity.DoctorPractice
	err := db.Where("doctor_practice_id = ?", id).First(&affiliation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliation, nil
}

func (r *doctorPracticeRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.DoctorPractice, error) {
	var affiliations []entity.DoctorPractice
	err := db.Where("doctor_id = ?", doctorID).Order("start_date ASC").Find(&affiliations).Error
	if err != nil {
		return nil, err
	}
	return affiliations, nil
}

func (r *doctorPracticeRepository) FindByPracticeID(db *gorm.DB, practiceID int) ([]entity.DoctorPractice, error) {
	var affiliations []entity.DoctorPractice
	err := db.Where("practice_id = ?", practiceID).Order("start_date ASC").Find(&affiliations).Error
	if err != nil {
		return nil, err
	}
	return affiliations, nil
}

func (r *doctorPracticeRepository) Update(db *gorm.DB, affiliation *entity.DoctorPractice) error {
	return db.Omit("Doctor", "Practice").Save(affiliation).Error
}

func (r *doctorPracticeRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("doctor_practice_id = ?", id).Delete(&entity.DoctorPractice{})
	return affected.RowsAffected, affected.Error
}
