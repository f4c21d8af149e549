package repository

import (
	"errors"

	"provider-directory/internal/domain/entity"
	domainRepo "provider-directory/internal/domain/repository"

	"gorm.io/gorm"
)

type licenseRepository struct{}

func NewLicenseRepository() domainRepo.LicenseRepository {
	return &licenseRepository{}
}

func (r *licenseRepository) Create(db *gorm.DB, license *entity.License) error {
	return db.Omit("Doctor").Create(license).Error
}

func (r *licenseRepository) FindByID(db *gorm.DB, id int) (*entity.License, error) {
	var license entity.License
	err := db.Where("license_id = ?", id).First(&license).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &license, nil
}

func (r *licenseRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.License, error) {
	var licenses []entity.License
	err := db.Where("doctor_id = ?", doctorID).Order("expiry_date DESC").Find(&licenses).Error
	if err != nil {
		return nil, err
	}
	return licenses, nil
}

func (r *licenseRepository) FindAll(db *gorm.DB) ([]entity.License, error) {
	var licenses []entity.License
	err := db.Order("license_id ASC").Find(&licenses).Error
	if err != nil {
		return nil, err
	}
	return licenses, nil
}

func (r *licenseRepository) Update(db *gorm.DB, license *entity.License) error {
	return db.Omit("Doctor").Save(license).Error
}

func (r *licenseRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("license_id = ?", id).Delete(&entity.License{})
	return affected.RowsAffected, affected.Error
}
