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

type LicenseHandler struct {
	licenseUsecase usecase.LicenseUsecase
	validator      *validator.CustomValidator
}

func NewLicenseHandler(licenseUsecase usecase.LicenseUsecase, validator *validator.CustomValidator) *LicenseHandler {
	return &LicenseHandler{
		licenseUsecase: licenseUsecase,
		validator:      validator,
	}
}

func (h *LicenseHandler) CreateLicense(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	license, err := h.licenseUsecase.CreateLicense(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrLicenseInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid license status", nil)
		case usecase.ErrLicenseDoctorMissing:
			response.Error(w, http.StatusBadRequest, "Doctor not found", nil)
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date value", nil)
		default:
			response.InternalServerError(w, "Failed to create license")
		}
		return
	}

	response.Success(w, http.StatusCreated, "License created successfully", license)
}

func (h *LicenseHandler) GetLicense(w http.ResponseWriter, r *http.Request) {
	licenseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid license ID", nil)
		return
	}

	license, err := h.licenseUsecase.GetLicense(r.Context(), licenseID)
	if err != nil {
		if err == usecase.ErrLicenseNotFound {
			response.NotFound(w, "License not found")
			return
		}
		response.InternalServerError(w, "Failed to get license")
		return
	}

	response.Success(w, http.StatusOK, "License retrieved successfully", license)
}

func (h *LicenseHandler) GetAllLicenses(w http.ResponseWriter, r *http.Request) {
	licenses, err := h.licenseUsecase.GetAllLicenses(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get licenses")
		return
	}

	response.Success(w, http.StatusOK, "Licenses retrieved successfully", licenses)
}

func (h *LicenseHandler) GetLicensesByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	licenses, err := h.licenseUsecase.GetLicensesByDoctor(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get licenses")
		return
	}

	response.Success(w, http.StatusOK, "Licenses retrieved successfully", licenses)
}

func (h *LicenseHandler) UpdateLicense(w http.ResponseWriter, r *http.Request) {
	licenseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid license ID", nil)
		return
	}

	var req dto.UpdateLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	license, err := h.licenseUsecase.UpdateLicense(r.Context(), licenseID, &req)
	if err != nil {
		switch err {
		case usecase.ErrLicenseNotFound:
			response.NotFound(w, "License not found")
		case usecase.ErrLicenseInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid license status", nil)
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date value", nil)
		default:
			response.InternalServerError(w, "Failed to update license")
		}
		return
	}

	response.Success(w, http.StatusOK, "License updated successfully", license)
}

func (h *LicenseHandler) DeleteLicense(w http.ResponseWriter, r *http.Request) {
	licenseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid license ID", nil)
		return
	}

	err = h.licenseUsecase.DeleteLicense(r.Context(), licenseID)
	if err != nil {
		if err == usecase.ErrLicenseNotFound {
			response.NotFound(w, "License not found")
			return
		}
		response.InternalServerError(w, "Failed to delete license")
		return
	}

	response.Success(w, http.StatusOK, "License deleted successfully", nil)
}
