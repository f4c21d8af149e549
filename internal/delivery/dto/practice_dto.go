package dto

// Request DTOs

type CreatePracticeRequest struct {
	PracticeName string `json:"practice_name" validate:"required,min=1,max=255"`
	AddressLine1 string `json:"address_line1" validate:"required,max=255"`
	AddressLine2 string `json:"address_line2" validate:"omitempty,max=255"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,len=2"`
	ZipCode      string `json:"zip_code" validate:"required,max=10"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	Email        string `json:"email" validate:"omitempty,email"`
	Website      string `json:"website" validate:"omitempty,max=255"`
}

type UpdatePracticeRequest struct {
	PracticeName string `json:"practice_name" validate:"omitempty,min=1,max=255"`
	AddressLine1 string `json:"address_line1" validate:"omitempty,max=255"`
	AddressLine2 string `json:"address_line2" validate:"omitempty,max=255"`
	City         string `json:"city" validate:"omitempty,max=100"`
	State        string `json:"state" validate:"omitempty,len=2"`
	ZipCode      string `json:"zip_code" validate:"omitempty,max=10"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	Email        string `json:"email" validate:"omitempty,email"`
	Website      string `json:"website" validate:"omitempty,max=255"`
}

// Response DTOs

type PracticeResponse struct {
	PracticeID   int    `json:"practice_id"`
	PracticeName string `json:"practice_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Website      string `json:"website,omitempty"`
}

type PracticeListResponse struct {
	Practices []PracticeResponse `json:"practices"`
	Total     int                `json:"total"`
}
