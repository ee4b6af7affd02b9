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

func (h *Handler) listHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.store.ListHospitals(r.Context())
	if err != nil {
		h.serverError(w, err, "Server error while fetching hospitals")
		return
	}
	writeJSON(w, http.StatusOK, hospitals)
}

func (h *Handler) getHospital(w http.ResponseWriter, r *http.Request) {
	hospital, err := h.store.GetHospital(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Hospital not found")
			return
		}
		h.serverError(w, err, "Server error while fetching hospital")
		return
	}
	writeJSON(w, http.StatusOK, hospital)
}

func (h *Handler) createHospital(w http.ResponseWriter, r *http.Request) {
	var req validate.CreateHospitalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// phone is required by the schema but the entity has no phone column
	hospital := &model.Hospital{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Address: req.Address,
	}
	if err := h.store.CreateHospital(r.Context(), hospital); err != nil {
		h.serverError(w, err, "Server error while creating hospital")
		return
	}
	writeJSON(w, http.StatusCreated, hospital)
}

func (h *Handler) deleteHospital(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// fetch first so a missing hospital is a clean 404
	if _, err := h.store.GetHospital(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Hospital not found")
			return
		}
		h.serverError(w, err, "Server error while deleting hospital")
		return
	}

	if err := h.store.DeleteHospital(r.Context(), id); err != nil {
		h.serverError(w, err, "Server error while deleting hospital")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hospital deleted successfully"})
}
