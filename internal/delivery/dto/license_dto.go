package dto

// Request DTOs

type CreateLicenseRequest struct {
	DoctorID      int    `json:"doctor_id" validate:"required,gt=0"`
	LicenseNumber string `json:"license_number" validate:"required,max=50"`
	LicenseType   string `json:"license_type" validate:"required,max=50"`
	State         string `json:"state" validate:"required,len=2"`
	IssueDate     string `json:"issue_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate    string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	Status        string `json:"status" validate:"required,oneof=Active Expired Suspended Revoked"`
}

type UpdateLicenseRequest struct {
	LicenseNumber string `json:"license_number" validate:"omitempty,max=50"`
	LicenseType   string `json:"license_type" validate:"omitempty,max=50"`
	State         string `json:"state" validate:"omitempty,len=2"`
	IssueDate     string `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate    string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	Status        string `json:"status" validate:"omitempty,oneof=Active Expired Suspended Revoked"`
}

// Response DTOs

type LicenseResponse struct {
	LicenseID     int    `json:"license_id"`
	DoctorID      int    `json:"doctor_id"`
	LicenseNumber string `json:"license_number"`
	LicenseType   string `json:"license_type"`
	State         string `json:"state"`
	IssueDate     string `json:"issue_date"`
	ExpiryDate    string `json:"expiry_date"`
	Status        string `json:"status"`
}

type LicenseListResponse struct {
	Licenses []LicenseResponse `json:"licenses"`
	Total    int               `json:"total"`
}
