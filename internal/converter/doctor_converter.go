package converter

import (
	"provider-directory/internal/delivery/dto"
	"provider-directory/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		DoctorID:    doctor.DoctorID,
		FirstName:   doctor.FirstName,
		LastName:    doctor.LastName,
		Specialty:   doctor.Specialty,
		Email:       doctor.Email,
		Phone:       doctor.Phone,
		DateOfBirth: formatDatePtr(doctor.DateOfBirth),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
