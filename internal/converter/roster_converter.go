package converter

import (
	"provider-directory/internal/delivery/dto"
	"provider-directory/internal/domain/entity"
)

// RosterEntriesToResponses converts roster rows to their response DTOs
func RosterEntriesToResponses(entries []entity.RosterEntry) []dto.RosterEntryResponse {
	responses := make([]dto.RosterEntryResponse, len(entries))
	for i := range entries {
		e := &entries[i]
		responses[i] = dto.RosterEntryResponse{
			DoctorID:      e.DoctorID,
			FirstName:     e.FirstName,
			LastName:      e.LastName,
			Specialty:     e.Specialty,
			Email:         e.Email,
			Phone:         e.Phone,
			PracticeID:    e.PracticeID,
			PracticeName:  e.PracticeName,
			AddressLine1:  e.AddressLine1,
			AddressLine2:  derefString(e.AddressLine2),
			City:          e.City,
			State:         e.State,
			ZipCode:       e.ZipCode,
			PracticePhone: e.PracticePhone,
			PracticeEmail: e.PracticeEmail,
			Role:          e.Role,
			StartDate:     formatDate(e.StartDate),
			EndDate:       formatDatePtr(e.EndDate),
			IsPrimary:     e.IsPrimary,
			LicenseNumber: e.LicenseNumber,
			LicenseType:   e.LicenseType,
			LicenseState:  e.LicenseState,
			IssueDate:     formatDatePtr(e.IssueDate),
			ExpiryDate:    formatDatePtr(e.ExpiryDate),
			LicenseStatus: e.LicenseStatus,
		}
	}
	return responses
}
