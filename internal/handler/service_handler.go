package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"hospital-booking-api/internal/model"
	"hospital-booking-api/internal/store"
	"hospital-booking-api/internal/validate"
)

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.store.ListServices(r.Context())
	if err != nil {
		h.serverError(w, err, "Server error while fetching services")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *Handler) getService(w http.ResponseWriter, r *http.Request) {
	service, err := h.store.GetService(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Service not found")
			return
		}
		h.serverError(w, err, "Server error while fetching service")
		return
	}
	writeJSON(w, http.StatusOK, service)
}

func (h *Handler) listServicesByHospital(w http.ResponseWriter, r *http.Request) {
	services, err := h.store.ListServicesByHospital(r.Context(), mux.Vars(r)["hospitalId"])
	if err != nil {
		h.serverError(w, err, "Server error while fetching hospital services")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *Handler) createService(w http.ResponseWriter, r *http.Request) {
	var req validate.CreateServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hospital, err := h.store.HospitalByID(r.Context(), req.HospitalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Hospital not found")
			return
		}
		h.serverError(w, err, "Server error during service creation")
		return
	}

	service := &model.Service{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    int(req.Duration),
		HospitalID:  req.HospitalID,
	}
	if err := h.store.CreateService(r.Context(), service); err != nil {
		h.serverError(w, err, "Server error during service creation")
		return
	}

	writeJSON(w, http.StatusCreated, model.ServiceWithHospital{
		Service:  *service,
		Hospital: model.HospitalRef{ID: hospital.ID, Name: hospital.Name},
	})
}

func (h *Handler) deleteService(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteService(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		var active *store.ActiveBookingsError
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Service not found")
		case errors.As(err, &active):
			writeJSON(w, http.StatusConflict, map[string]any{
				"message":        "Cannot delete service with active bookings",
				"activeBookings": active.Count,
			})
		default:
			h.serverError(w, err, "Server error while deleting service")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Service deleted successfully"})
}
