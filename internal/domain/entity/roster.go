package entity

import "time"

// RosterEntry is one flattened row of the doctor roster report: a doctor
// with a currently active practice affiliation, that affiliation's practice
// details, and one of the doctor's licenses.
//
// When a doctor has several concurrently active affiliations or several
// licenses, which one appears is not specified and must not be relied on.
type RosterEntry struct {
	DoctorID  int    `gorm:"column:doctor_id" json:"doctor_id"`
	FirstName string `gorm:"column:first_name" json:"first_name"`
	LastName  string `gorm:"column:last_name" json:"last_name"`
	Specialty string `gorm:"column:specialty" json:"specialty,omitempty"`
	Email     string `gorm:"column:email" json:"email,omitempty"`
	Phone     string `gorm:"column:phone" json:"phone,omitempty"`

	PracticeID    int     `gorm:"column:practice_id" json:"practice_id"`
	PracticeName  string  `gorm:"column:practice_name" json:"practice_name"`
	AddressLine1  string  `gorm:"column:address_line1" json:"address_line1"`
	AddressLine2  *string `gorm:"column:address_line2" json:"address_line2,omitempty"`
	City          string  `gorm:"column:city" json:"city"`
	State         string  `gorm:"column:state" json:"state"`
	ZipCode       string  `gorm:"column:zip_code" json:"zip_code"`
	PracticePhone string  `gorm:"column:practice_phone" json:"practice_phone,omitempty"`
	PracticeEmail string  `gorm:"column:practice_email" json:"practice_email,omitempty"`

	Role      string     `gorm:"column:role" json:"role,omitempty"`
	StartDate time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	IsPrimary bool       `gorm:"column:is_primary" json:"is_primary"`

	LicenseNumber string     `gorm:"column:license_number" json:"license_number,omitempty"`
	LicenseType   string     `gorm:"column:license_type" json:"license_type,omitempty"`
	LicenseState  string     `gorm:"column:license_state" json:"license_state,omitempty"`
	IssueDate     *time.Time `gorm:"column:issue_date" json:"issue_date,omitempty"`
	ExpiryDate    *time.Time `gorm:"column:expiry_date" json:"expiry_date,omitempty"`
	LicenseStatus string     `gorm:"column:license_status" json:"license_status,omitempty"`
}
