package repository

import (
	"errors"

	"provider-directory/internal/domain/entity"
	domainRepo "provider-directory/internal/domain/repository"

	"gorm.io/gorm"
)

type practiceRepository struct{}

func NewPracticeRepository() domainRepo.PracticeRepository {
	return &practiceRepository{}
}

func (r *practiceRepository) Create(db *gorm.DB, practice *entity.Practice) error {
	return db.Create(practice).Error
}

func (r *practiceRepository) FindByID(db *gorm.DB, id int) (*entity.Practice, error) {
	var practice entity.Practice
	err := db.Where("practice_id = ?", id).First(&practice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practice, nil
}

func (r *practiceRepository) FindAll(db *gorm.DB) ([]entity.Practice, error) {
	var practices []entity.Practice
	err := db.Order("practice_name ASC").Find(&practices).Error
	if err != nil {
		return nil, err
	}
	return practices, nil
}

func (r *practiceRepository) Update(db *gorm.DB, practice *entity.Practice) error {
	return db.Omit("Affiliations").Save(practice).Error
}

func (r *practiceRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("practice_id = ?", id).Delete(&entity.Practice{})
	return affected.RowsAffected, affected.Error
}
