package entity

import "time"

// DoctorPractice represents one doctor's affiliation with one practice
// over a time interval. A null end date means the affiliation is open-ended.
type DoctorPractice struct {
	DoctorPracticeID int        `gorm:"primaryKey;autoIncrement" json:"doctor_practice_id"`
	DoctorID         int        `gorm:"not null;index" json:"doctor_id"`
	PracticeID       int        `gorm:"not null;index" json:"practice_id"`
	Role             string     `gorm:"type:varchar(100)" json:"role,omitempty"`
	StartDate        time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate          *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	IsPrimary        bool       `gorm:"not null;default:false" json:"is_primary"`
	HoursPerWeek     *int       `json:"hours_per_week,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoCreateTime;autoUpdateTime:false" json:"updated_at"`

	// Relationships
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Practice *Practice `gorm:"foreignKey:PracticeID" json:"practice,omitempty"`
}

func (DoctorPractice) TableName() string {
	return "doctor_practices"
}

// IsCurrent reports whether the affiliation is active on the given date:
// open-ended, or ending on or after that date.
func (dp *DoctorPractice) IsCurrent(on time.Time) bool {
	return dp.EndDate == nil || !dp.EndDate.Before(on)
}
