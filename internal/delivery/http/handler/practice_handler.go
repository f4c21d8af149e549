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

type PracticeHandler struct {
	practiceUsecase usecase.PracticeUsecase
	validator       *validator.CustomValidator
}

func NewPracticeHandler(practiceUsecase usecase.PracticeUsecase, validator *validator.CustomValidator) *PracticeHandler {
	return &PracticeHandler{
		practiceUsecase: practiceUsecase,
		validator:       validator,
	}
}

func (h *PracticeHandler) CreatePractice(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePracticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	practice, err := h.practiceUsecase.CreatePractice(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create practice")
		return
	}

	response.Success(w, http.StatusCreated, "Practice created successfully", practice)
}

func (h *PracticeHandler) GetPractice(w http.ResponseWriter, r *http.Request) {
	practiceID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practice ID", nil)
		return
	}

	practice, err := h.practiceUsecase.GetPractice(r.Context(), practiceID)
	if err != nil {
		if err == usecase.ErrPracticeNotFound {
			response.NotFound(w, "Practice not found")
			return
		}
		response.InternalServerError(w, "Failed to get practice")
		return
	}

	response.Success(w, http.StatusOK, "Practice retrieved successfully", practice)
}

func (h *PracticeHandler) GetAllPractices(w http.ResponseWriter, r *http.Request) {
	practices, err := h.practiceUsecase.GetAllPractices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get practices")
		return
	}

	response.Success(w, http.StatusOK, "Practices retrieved successfully", practices)
}

func (h *PracticeHandler) UpdatePractice(w http.ResponseWriter, r *http.Request) {
	practiceID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practice ID", nil)
		return
	}

	var req dto.UpdatePracticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	practice, err := h.practiceUsecase.UpdatePractice(r.Context(), practiceID, &req)
	if err != nil {
		if err == usecase.ErrPracticeNotFound {
			response.NotFound(w, "Practice not found")
			return
		}
		response.InternalServerError(w, "Failed to update practice")
		return
	}

	response.Success(w, http.StatusOK, "Practice updated successfully", practice)
}

func (h *PracticeHandler) DeletePractice(w http.ResponseWriter, r *http.Request) {
	practiceID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practice ID", nil)
		return
	}

	err = h.practiceUsecase.DeletePractice(r.Context(), practiceID)
	if err != nil {
		switch err {
		case usecase.ErrPracticeNotFound:
			response.NotFound(w, "Practice not found")
		case usecase.ErrPracticeReferenced:
			response.Error(w, http.StatusConflict, "Practice still has doctor affiliations", nil)
		default:
			response.InternalServerError(w, "Failed to delete practice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Practice deleted successfully", nil)
}
