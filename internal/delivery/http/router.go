package http

import (
	"net/http"

	"provider-directory/internal/delivery/http/handler"
	"provider-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	practiceHandler     *handler.PracticeHandler
	licenseHandler      *handler.LicenseHandler
	affiliationHandler  *handler.AffiliationHandler
	rosterHandler       *handler.RosterHandler
	corsMiddleware      *middleware.CORSMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	practiceHandler *handler.PracticeHandler,
	licenseHandler *handler.LicenseHandler,
	affiliationHandler *handler.AffiliationHandler,
	rosterHandler *handler.RosterHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		practiceHandler:     practiceHandler,
		licenseHandler:      licenseHandler,
		affiliationHandler:  affiliationHandler,
		rosterHandler:       rosterHandler,
		corsMiddleware:      corsMiddleware,
		requestIDMiddleware: requestIDMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Roster report
	api.HandleFunc("/roster", r.rosterHandler.GetRoster).Methods(http.MethodGet)

	// Doctor management
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{doctorId}/licenses", r.licenseHandler.GetLicensesByDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/affiliations", r.affiliationHandler.GetAffiliationsByDoctor).Methods(http.MethodGet)

	// Practice management
	api.HandleFunc("/practices", r.practiceHandler.CreatePractice).Methods(http.MethodPost)
	api.HandleFunc("/practices", r.practiceHandler.GetAllPractices).Methods(http.MethodGet)
	api.HandleFunc("/practices/{id}", r.practiceHandler.GetPractice).Methods(http.MethodGet)
	api.HandleFunc("/practices/{id}", r.practiceHandler.UpdatePractice).Methods(http.MethodPut)
	api.HandleFunc("/practices/{id}", r.practiceHandler.DeletePractice).Methods(http.MethodDelete)
	api.HandleFunc("/practices/{practiceId}/affiliations", r.affiliationHandler.GetAffiliationsByPractice).Methods(http.MethodGet)

	// License management
	api.HandleFunc("/licenses", r.licenseHandler.CreateLicense).Methods(http.MethodPost)
	api.HandleFunc("/licenses", r.licenseHandler.GetAllLicenses).Methods(http.MethodGet)
	api.HandleFunc("/licenses/{id}", r.licenseHandler.GetLicense).Methods(http.MethodGet)
	api.HandleFunc("/licenses/{id}", r.licenseHandler.UpdateLicense).Methods(http.MethodPut)
	api.HandleFunc("/licenses/{id}", r.licenseHandler.DeleteLicense).Methods(http.MethodDelete)

	// Affiliation management
	api.HandleFunc("/affiliations", r.affiliationHandler.CreateAffiliation).Methods(http.MethodPost)
	api.HandleFunc("/affiliations/{id}", r.affiliationHandler.GetAffiliation).Methods(http.MethodGet)
	api.HandleFunc("/affiliations/{id}", r.affiliationHandler.UpdateAffiliation).Methods(http.MethodPut)
	api.HandleFunc("/affiliations/{id}", r.affiliationHandler.DeleteAffiliation).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.requestIDMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
