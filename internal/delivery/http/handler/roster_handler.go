package handler

import (
	"net/http"

	"provider-directory/internal/usecase"
	"provider-directory/pkg/response"
)

type RosterHandler struct {
	rosterUsecase usecase.RosterUsecase
}

func NewRosterHandler(rosterUsecase usecase.RosterUsecase) *RosterHandler {
	return &RosterHandler{
		rosterUsecase: rosterUsecase,
	}
}

// GetRoster serves the flattened doctor/practice/license report. The
// operation takes no parameters.
func (h *RosterHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.rosterUsecase.GetRoster(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build roster")
		return
	}

	response.Success(w, http.StatusOK, "Roster retrieved successfully", roster)
}
