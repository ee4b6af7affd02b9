package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"hospital-booking-api/internal/auth"
	"hospital-booking-api/internal/middleware"
	"hospital-booking-api/internal/model"
	"hospital-booking-api/internal/store"
	"hospital-booking-api/internal/validate"
)

type authResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Token string  `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req validate.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.store.UserByEmail(r.Context(), req.Email); err == nil {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.serverError(w, err, "Server error during registration")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.serverError(w, err, "Server error during registration")
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	if err := h.store.CreateUser(r.Context(), u); err != nil {
		// unique violation means a concurrent register won the race
		if errors.Is(err, store.ErrDuplicate) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.serverError(w, err, "Server error during registration")
		return
	}

	tok, err := auth.MakeToken(u.ID, h.secret, h.tokenTTL)
	if err != nil {
		h.serverError(w, err, "Server error during registration")
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{ID: u.ID, Email: u.Email, Name: u.Name, Token: tok})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req validate.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// unknown email and wrong password answer identically
	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.serverError(w, err, "Server error during login")
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	tok, err := auth.MakeToken(u.ID, h.secret, h.tokenTTL)
	if err != nil {
		h.serverError(w, err, "Server error during login")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{ID: u.ID, Email: u.Email, Name: u.Name, Token: tok})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.UserByID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.serverError(w, err, "Server error while fetching profile")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "email": u.Email, "name": u.Name})
}
