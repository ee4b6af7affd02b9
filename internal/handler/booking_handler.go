package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"hospital-booking-api/internal/middleware"
	"hospital-booking-api/internal/model"
	"hospital-booking-api/internal/store"
	"hospital-booking-api/internal/validate"
)

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var req validate.CreateBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// referential check before the write; not atomic with it
	if _, err := h.store.ServiceByID(r.Context(), req.ServiceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Service not found")
			return
		}
		h.serverError(w, err, "Server error during booking creation")
		return
	}

	date, _ := validate.ParseDate(req.Date)
	booking, err := h.store.CreateBooking(r.Context(), &model.Booking{
		ID:        uuid.New().String(),
		UserID:    middleware.UserID(r.Context()),
		ServiceID: req.ServiceID,
		Date:      date,
		Status:    model.StatusPending,
		Notes:     req.Notes,
	})
	if err != nil {
		h.serverError(w, err, "Server error during booking creation")
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	// ?ids=a,b or repeated ?ids= params narrow the result. Non-uuid
	// values are dropped; they cannot match a row and would fail uuid
	// parameter encoding.
	raw := r.URL.Query()["ids"]
	var ids []string
	for _, param := range raw {
		for _, id := range strings.Split(param, ",") {
			id = strings.TrimSpace(id)
			if _, err := uuid.Parse(id); err == nil {
				ids = append(ids, id)
			}
		}
	}
	// a filter that names only unknown ids matches nothing
	if len(raw) > 0 && len(ids) == 0 {
		writeJSON(w, http.StatusOK, []model.BookingDetail{})
		return
	}

	bookings, err := h.store.ListBookings(r.Context(), middleware.UserID(r.Context()), ids)
	if err != nil {
		h.serverError(w, err, "Server error while fetching bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req validate.UpdateBookingStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !model.ValidStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	booking, err := h.store.UpdateBookingStatus(r.Context(),
		middleware.UserID(r.Context()), mux.Vars(r)["id"], req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Booking not found")
			return
		}
		h.serverError(w, err, "Server error while updating booking status")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) listBookingsByHospital(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.store.ListBookingsByHospital(r.Context(),
		middleware.UserID(r.Context()), mux.Vars(r)["hospitalId"])
	if err != nil {
		h.serverError(w, err, "Server error while fetching bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
