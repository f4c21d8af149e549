package dto

// RosterEntryResponse is one flattened roster row: a doctor, the practice of
// one current affiliation, that affiliation's details, and one license.
type RosterEntryResponse struct {
	DoctorID  int    `json:"doctor_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Specialty string `json:"specialty,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`

	PracticeID    int    `json:"practice_id"`
	PracticeName  string `json:"practice_name"`
	AddressLine1  string `json:"address_line1"`
	AddressLine2  string `json:"address_line2,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	PracticePhone string `json:"practice_phone,omitempty"`
	PracticeEmail string `json:"practice_email,omitempty"`

	Role      string `json:"role,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	IsPrimary bool   `json:"is_primary"`

	LicenseNumber string `json:"license_number,omitempty"`
	LicenseType   string `json:"license_type,omitempty"`
	LicenseState  string `json:"license_state,omitempty"`
	IssueDate     string `json:"issue_date,omitempty"`
	ExpiryDate    string `json:"expiry_date,omitempty"`
	LicenseStatus string `json:"license_status,omitempty"`
}

type RosterResponse struct {
	Entries []RosterEntryResponse `json:"entries"`
	Total   int                   `json:"total"`
}
