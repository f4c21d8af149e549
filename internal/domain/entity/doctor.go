package entity

import "time"

// Doctor represents a medical practitioner record
type Doctor struct {
	DoctorID    int        `gorm:"primaryKey;autoIncrement" json:"doctor_id"`
	FirstName   string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Specialty   string     `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	Email       string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone       string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	// updated_at defaults at insert only; the schema defines no auto-update
	UpdatedAt time.Time `gorm:"autoCreateTime;autoUpdateTime:false" json:"updated_at"`

	// Relationships
	Licenses     []License        `gorm:"foreignKey:DoctorID" json:"licenses,omitempty"`
	Affiliations []DoctorPractice `gorm:"foreignKey:DoctorID" json:"affiliations,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
