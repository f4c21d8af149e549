package converter

import (
	"provider-directory/internal/delivery/dto"
	"provider-directory/internal/domain/entity"
)

// PracticeToResponse converts a Practice entity to PracticeResponse DTO
func PracticeToResponse(practice *entity.Practice) *dto.PracticeResponse {
	if practice == nil {
		return nil
	}

	return &dto.PracticeResponse{
		PracticeID:   practice.PracticeID,
		PracticeName: practice.PracticeName,
		AddressLine1: practice.AddressLine1,
		AddressLine2: derefString(practice.AddressLine2),
		City:         practice.City,
		State:        practice.State,
		ZipCode:      practice.ZipCode,
		Phone:        practice.Phone,
		Email:        practice.Email,
		Website:      derefString(practice.Website),
	}
}

// PracticesToResponses converts a slice of Practice entities to PracticeResponse DTOs
func PracticesToResponses(practices []entity.Practice) []dto.PracticeResponse {
	responses := make([]dto.PracticeResponse, len(practices))
	for i := range practices {
		responses[i] = *PracticeToResponse(&practices[i])
	}
	return responses
}
