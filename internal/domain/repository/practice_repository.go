package repository

import (
	"provider-directory/internal/domain/entity"

	"gorm.io/gorm"
)

type PracticeRepository interface {
	Create(db *gorm.DB, practice *entity.Practice) error
	FindByID(db *gorm.DB, id int) (*entity.Practice, error)
	FindAll(db *gorm.DB) ([]entity.Practice, error)
	Update(db *gorm.DB, practice *entity.Practice) error
	Delete(db *gorm.DB, id int) (int64, error)
}
