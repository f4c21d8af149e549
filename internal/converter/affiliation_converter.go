package converter

import (
	"time"

	"provider-directory/internal/delivery/dto"
	"provider-directory/internal/domain/entity"
)

// AffiliationToResponse converts a DoctorPractice entity to AffiliationResponse DTO
func AffiliationToResponse(affiliation *entity.DoctorPractice) *dto.AffiliationResponse {
	if affiliation == nil {
		return nil
	}

	return &dto.AffiliationResponse{
		DoctorPracticeID: affiliation.DoctorPracticeID,
		DoctorID:         affiliation.DoctorID,
		PracticeID:       affiliation.PracticeID,
		Role:             affiliation.Role,
		StartDate:        formatDate(affiliation.StartDate),
		EndDate:          formatDatePtr(affiliation.EndDate),
		IsPrimary:        affiliation.IsPrimary,
		IsCurrent:        affiliation.IsCurrent(time.Now()),
		HoursPerWeek:     affiliation.HoursPerWeek,
	}
}

// AffiliationsToResponses converts a slice of DoctorPractice entities to AffiliationResponse DTOs
func AffiliationsToResponses(affiliations []entity.DoctorPractice) []dto.AffiliationResponse {
	responses := make([]dto.AffiliationResponse, len(affiliations))
	for i := range affiliations {
		responses[i] = *AffiliationToResponse(&affiliations[i])
	}
	return responses
}
