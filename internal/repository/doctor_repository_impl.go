package repository

import (
	"errors"

	"provider-directory/internal/domain/entity"
	domainRepo "provider-directory/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("doctor_id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Order("last_name ASC, first_name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Licenses", "Affiliations").Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("doctor_id = ?", id).Delete(&entity.Doctor{})
	return affected.RowsAffected, affected.Error
}

// CountDependents returns the number of license and affiliation rows still
// referencing the doctor. The schema defines no cascade, so a doctor with
// dependents cannot be removed without orphaning them.
func (r *doctorRepository) CountDependents(db *gorm.DB, id int) (int64, error) {
	var licenses int64
	if err := db.Model(&entity.License{}).Where("doctor_id = ?", id).Count(&licenses).Error; err != nil {
		return 0, err
	}

	var affiliations int64
	if err := db.Model(&entity.DoctorPractice{}).Where("doctor_id = ?", id).Count(&affiliations).Error; err != nil {
		return 0, err
	}

	return licenses + affiliations, nil
}
