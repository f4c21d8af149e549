package repository

import (
	"provider-directory/internal/domain/entity"

	"gorm.io/gorm"
)

type RosterRepository interface {
	List(db *gorm.DB) ([]entity.RosterEntry, error)
}
