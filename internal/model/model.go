package model

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the three booking statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Hospital struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	HospitalID  string    `json:"hospitalId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ServiceID string    `json:"serviceId"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceSummary is the trimmed service projection nested under the
// hospital list.
type ServiceSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// HospitalOverview is a hospital with its service summaries (list view).
type HospitalOverview struct {
	Hospital
	Services []ServiceSummary `json:"services"`
}

// HospitalDetail is a hospital with its full services (detail view).
type HospitalDetail struct {
	Hospital
	Services []Service `json:"services"`
}

// HospitalRef is the parent-hospital projection attached to services and
// bookings. Fields a given projection does not select stay zero and are
// omitted from the JSON.
type HospitalRef struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type ServiceWithHospital struct {
	Service
	Hospital HospitalRef `json:"hospital"`
}

// BookingService carries the service fields a booking response is
// enriched with. Which fields are populated depends on the operation.
type BookingService struct {
	Name     string       `json:"name"`
	Price    float64      `json:"price,omitempty"`
	Duration int          `json:"duration,omitempty"`
	Hospital *HospitalRef `json:"hospital,omitempty"`
}

type UserRef struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

// BookingDetail is a booking enriched with its service (and, for the
// per-hospital listing, the requesting user). Assembled at query time,
// never persisted.
type BookingDetail struct {
	Booking
	Service BookingService `json:"service"`
	User    *UserRef       `json:"user,omitempty"`
}
