package converter

import (
	"provider-directory/internal/delivery/dto"
	"provider-directory/internal/domain/entity"
)

// LicenseToResponse converts a License entity to LicenseResponse DTO
func LicenseToResponse(license *entity.License) *dto.LicenseResponse {
	if license == nil {
		return nil
	}

	return &dto.LicenseResponse{
		LicenseID:     license.LicenseID,
		DoctorID:      license.DoctorID,
		LicenseNumber: license.LicenseNumber,
		LicenseType:   license.LicenseType,
		State:         license.State,
		IssueDate:     formatDate(license.IssueDate),
		ExpiryDate:    formatDate(license.ExpiryDate),
		Status:        string(license.Status),
	}
}

// LicensesToResponses converts a slice of License entities to LicenseResponse DTOs
func LicensesToResponses(licenses []entity.License) []dto.LicenseResponse {
	responses := make([]dto.LicenseResponse, len(licenses))
	for i := range licenses {
		responses[i] = *LicenseToResponse(&licenses[i])
	}
	return responses
}
