package entity

import "time"

// LicenseStatus is the closed set of professional license states
type LicenseStatus string

const (
	LicenseStatusActive    LicenseStatus = "Active"
	LicenseStatusExpired   LicenseStatus = "Expired"
	LicenseStatusSuspended LicenseStatus = "Suspended"
	LicenseStatusRevoked   LicenseStatus = "Revoked"
)

// LicenseStatuses lists every accepted status value.
var LicenseStatuses = []LicenseStatus{
	LicenseStatusActive,
	LicenseStatusExpired,
	LicenseStatusSuspended,
	LicenseStatusRevoked,
}

// IsValid reports whether the status is one of the four accepted values.
// The database CHECK constraint enforces the same set at write time.
func (s LicenseStatus) IsValid() bool {
	switch s {
	case LicenseStatusActive, LicenseStatusExpired, LicenseStatusSuspended, LicenseStatusRevoked:
		return true
	}
	return false
}

// License represents a professional credential held by exactly one doctor
type License struct {
	LicenseID     int           `gorm:"primaryKey;autoIncrement" json:"license_id"`
	DoctorID      int           `gorm:"not null;index" json:"doctor_id"`
	LicenseNumber string        `gorm:"type:varchar(50);not null" json:"license_number"`
	LicenseType   string        `gorm:"type:varchar(50);not null" json:"license_type"`
	State         string        `gorm:"type:char(2);not null" json:"state"`
	IssueDate     time.Time     `gorm:"type:date;not null" json:"issue_date"`
	ExpiryDate    time.Time     `gorm:"type:date;not null" json:"expiry_date"`
	Status        LicenseStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoCreateTime;autoUpdateTime:false" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (License) TableName() string {
	return "licenses"
}
