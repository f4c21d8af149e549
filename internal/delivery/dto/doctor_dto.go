package dto

// Request DTOs

type CreateDoctorRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" validate:"required,min=1,max=100"`
	Specialty   string `json:"specialty" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateDoctorRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Specialty   string `json:"specialty" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type DoctorResponse struct {
	DoctorID    int    `json:"doctor_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Specialty   string `json:"specialty,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
