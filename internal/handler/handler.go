package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"hospital-booking-api/internal/middleware"
	"hospital-booking-api/internal/store"
)

type Handler struct {
	store    *store.Store
	secret   string
	tokenTTL time.Duration
	log      zerolog.Logger
	limiter  *middleware.RateLimiter
}

func New(st *store.Store, secret string, tokenTTL time.Duration, log zerolog.Logger, limiter *middleware.RateLimiter) *Handler {
	return &Handler{store: st, secret: secret, tokenTTL: tokenTTL, log: log, limiter: limiter}
}

// Routes builds the router. Auth endpoints are rate limited; booking and
// profile endpoints require a verified bearer token.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging(h.log))

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	authed := middleware.Auth(h.secret)

	api.Handle("/auth/register", h.limiter.Wrap(http.HandlerFunc(h.register))).Methods(http.MethodPost)
	api.Handle("/auth/login", h.limiter.Wrap(http.HandlerFunc(h.login))).Methods(http.MethodPost)
	api.Handle("/auth/profile", authed(http.HandlerFunc(h.profile))).Methods(http.MethodGet)

	api.HandleFunc("/hospitals", h.listHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals", h.createHospital).Methods(http.MethodPost)
	api.HandleFunc("/hospitals/{id}", h.getHospital).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", h.deleteHospital).Methods(http.MethodDelete)

	api.HandleFunc("/services", h.listServices).Methods(http.MethodGet)
	api.HandleFunc("/services", h.createService).Methods(http.MethodPost)
	api.HandleFunc("/services/hospital/{hospitalId}", h.listServicesByHospital).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", h.getService).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", h.deleteService).Methods(http.MethodDelete)

	api.Handle("/bookings", authed(http.HandlerFunc(h.createBooking))).Methods(http.MethodPost)
	api.Handle("/bookings", authed(http.HandlerFunc(h.listBookings))).Methods(http.MethodGet)
	api.Handle("/bookings/hospitals/{hospitalId}", authed(http.HandlerFunc(h.listBookingsByHospital))).Methods(http.MethodGet)
	api.Handle("/bookings/{id}", authed(http.HandlerFunc(h.updateBookingStatus))).Methods(http.MethodPatch)

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "Server is running"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"message": message})
}

// serverError logs the cause and hides it from the client.
func (h *Handler) serverError(w http.ResponseWriter, err error, message string) {
	h.log.Error().Err(err).Msg(message)
	writeError(w, http.StatusInternalServerError, message)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
