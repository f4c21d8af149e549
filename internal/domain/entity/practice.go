package entity

import "time"

// Practice represents a physical or organizational medical practice
type Practice struct {
	PracticeID   int       `gorm:"primaryKey;autoIncrement" json:"practice_id"`
	PracticeName string    `gorm:"type:varchar(255);not null" json:"practice_name"`
	AddressLine1 string    `gorm:"type:varchar(255);not null" json:"address_line1"`
	AddressLine2 *string   `gorm:"type:varchar(255)" json:"address_line2,omitempty"`
	City         string    `gorm:"type:varchar(100);not null" json:"city"`
	State        string    `gorm:"type:char(2);not null" json:"state"`
	ZipCode      string    `gorm:"type:varchar(10);not null" json:"zip_code"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email        string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Website      *string   `gorm:"type:varchar(255)" json:"website,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoCreateTime;autoUpdateTime:false" json:"updated_at"`

	// Relationships
	Affiliations []DoctorPractice `gorm:"foreignKey:PracticeID" json:"affiliations,omitempty"`
}

func (Practice) TableName() string {
	return "practices"
}
