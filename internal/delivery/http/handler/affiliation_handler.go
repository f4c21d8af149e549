package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"provider-directory/internal/delivery/dto"
	"provider-directory/internal/usecase"
	"provider-directory/pkg/response"
	"provider-directory/pkg/validator"

	"github.com/gorilla/mux"
)

type AffiliationHandler struct {
	affiliationUsecase usecase.AffiliationUsecase
	validator          *validator.CustomValidator
}

func NewAffiliationHandler(affiliationUsecase usecase.AffiliationUsecase, validator *validator.CustomValidator) *AffiliationHandler {
	return &AffiliationHandler{
		affiliationUsecase: affiliationUsecase,
		validator:          validator,
	}
}

func (h *AffiliationHandler) CreateAffiliation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAffiliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	affiliation, err := h.affiliationUsecase.CreateAffiliation(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.Error(w, http.StatusBadRequest, "Doctor not found", nil)
		case usecase.ErrPracticeNotFound:
			response.Error(w, http.StatusBadRequest, "Practice not found", nil)
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date value", nil)
		default:
			response.InternalServerError(w, "Failed to create affiliation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Affiliation created successfully", affiliation)
}

func (h *AffiliationHandler) GetAffiliation(w http.ResponseWriter, r *http.Request) {
	affiliationID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid affiliation ID", nil)
		return
	}

	affiliation, err := h.affiliationUsecase.GetAffiliation(r.Context(), affiliationID)
	if err != nil {
		if err == usecase.ErrAffiliationNotFound {
			response.NotFound(w, "Affiliation not found")
			return
		}
		response.InternalServerError(w, "Failed to get affiliation")
		return
	}

	response.Success(w, http.StatusOK, "Affiliation retrieved successfully", affiliation)
}

func (h *AffiliationHandler) GetAffiliationsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	affiliations, err := h.affiliationUsecase.GetAffiliationsByDoctor(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get affiliations")
		return
	}

	response.Success(w, http.StatusOK, "Affiliations retrieved successfully", affiliations)
}

func (h *AffiliationHandler) GetAffiliationsByPractice(w http.ResponseWriter, r *http.Request) {
	practiceID, err := strconv.Atoi(mux.Vars(r)["practiceId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practice ID", nil)
		return
	}

	affiliations, err := h.affiliationUsecase.GetAffiliationsByPractice(r.Context(), practiceID)
	if err != nil {
		if err == usecase.ErrPracticeNotFound {
			response.NotFound(w, "Practice not found")
			return
		}
		response.InternalServerError(w, "Failed to get affiliations")
		return
	}

	response.Success(w, http.StatusOK, "Affiliations retrieved successfully", affiliations)
}

func (h *AffiliationHandler) UpdateAffiliation(w http.ResponseWriter, r *http.Request) {
	affiliationID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid affiliation ID", nil)
		return
	}

	var req dto.UpdateAffiliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	affiliation, err := h.affiliationUsecase.UpdateAffiliation(r.Context(), affiliationID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAffiliationNotFound:
			response.NotFound(w, "Affiliation not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date value", nil)
		default:
			response.InternalServerError(w, "Failed to update affiliation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Affiliation updated successfully", affiliation)
}

func (h *AffiliationHandler) DeleteAffiliation(w http.ResponseWriter, r *http.Request) {
	affiliationID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid affiliation ID", nil)
		return
	}

	err = h.affiliationUsecase.DeleteAffiliation(r.Context(), affiliationID)
	if err != nil {
		if err == usecase.ErrAffiliationNotFound {
			response.NotFound(w, "Affiliation not found")
			return
		}
		response.InternalServerError(w, "Failed to delete affiliation")
		return
	}

	response.Success(w, http.StatusOK, "Affiliation deleted successfully", nil)
}
