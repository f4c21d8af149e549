package dto

// Request DTOs

type CreateAffiliationRequest struct {
	DoctorID     int    `json:"doctor_id" validate:"required,gt=0"`
	PracticeID   int    `json:"practice_id" validate:"required,gt=0"`
	Role         string `json:"role" validate:"omitempty,max=100"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsPrimary    bool   `json:"is_primary"`
	HoursPerWeek *int   `json:"hours_per_week" validate:"omitempty,gte=0"`
}

type UpdateAffiliationRequest struct {
	Role         string `json:"role" validate:"omitempty,max=100"`
	StartDate    string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsPrimary    *bool  `json:"is_primary" validate:"omitempty"`
	HoursPerWeek *int   `json:"hours_per_week" validate:"omitempty,gte=0"`
	ClearEndDate bool   `json:"clear_end_date"`
}

// Response DTOs

type AffiliationResponse struct {
	DoctorPracticeID int    `json:"doctor_practice_id"`
	DoctorID         int    `json:"doctor_id"`
	PracticeID       int    `json:"practice_id"`
	Role             string `json:"role,omitempty"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date,omitempty"`
	IsPrimary        bool   `json:"is_primary"`
	IsCurrent        bool   `json:"is_current"`
	HoursPerWeek     *int   `json:"hours_per_week,omitempty"`
}

type AffiliationListResponse struct {
	Affiliations []AffiliationResponse `json:"affiliations"`
	Total        int                   `json:"total"`
}
