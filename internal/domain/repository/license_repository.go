package repository

import (
	"provider-directory/internal/domain/entity"

	"gorm.io/gorm"
)

type LicenseRepository interface {
	Create(db *gorm.DB, license *entity.License) error
	FindByID(db *gorm.DB, id int) (*entity.License, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.License, error)
	FindAll(db *gorm.DB) ([]entity.License, error)
	Update(db *gorm.DB, license *entity.License) error
	Delete(db *gorm.DB, id int) (int64, error)
}
