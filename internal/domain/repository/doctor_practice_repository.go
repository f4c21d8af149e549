package repository

import (
	"provider-directory/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorPracticeRepository interface {
	Create(db *gorm.DB, affiliation *entity.DoctorPractice) error
	FindByID(db *gorm.DB, id int) (*entity.DoctorPractice, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.DoctorPractice, error)
	FindByPracticeID(db *gorm.DB, practiceID int) ([]entity.DoctorPractice, error)
	Update(db *gorm.DB, affiliation *entity.DoctorPractice) error
	Delete(db *gorm.DB, id int) (int64, error)
}
