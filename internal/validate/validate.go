// Package validate holds the typed request bodies and their schema
// checks. Validate methods return the first failing check only; the
// message text goes straight back to the client.
package validate

import (
	"errors"
	"math"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dateFormats accepted for the booking date, most specific first.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a booking date/time string.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("Invalid date format")
}

type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

func (r *RegisterRequest) Validate() error {
	if !emailRx.MatchString(r.Email) {
		return errors.New("Invalid email format")
	}
	if len(r.Password) < 6 {
		return errors.New("Password must be at least 6 characters")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if !emailRx.MatchString(r.Email) {
		return errors.New("Invalid email format")
	}
	if r.Password == "" {
		return errors.New("Password is required")
	}
	return nil
}

type CreateBookingRequest struct {
	ServiceID string  `json:"serviceId"`
	Date      string  `json:"date"`
	Notes     *string `json:"notes"`
}

func (r *CreateBookingRequest) Validate() error {
	if _, err := uuid.Parse(r.ServiceID); err != nil {
		return errors.New("Invalid service ID format")
	}
	if _, err := ParseDate(r.Date); err != nil {
		return err
	}
	return nil
}

// CreateServiceRequest decodes duration as a float so a fractional value
// fails the integer check instead of the JSON decoder.
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Duration    float64 `json:"duration"`
	HospitalID  string  `json:"hospitalId"`
}

func (r *CreateServiceRequest) Validate() error {
	if len(r.Name) < 2 {
		return errors.New("Service name must be at least 2 characters")
	}
	if r.Price <= 0 {
		return errors.New("Price must be a positive number")
	}
	if r.Duration <= 0 || r.Duration != math.Trunc(r.Duration) {
		return errors.New("Duration must be a positive integer")
	}
	if _, err := uuid.Parse(r.HospitalID); err != nil {
		return errors.New("Invalid hospital ID format")
	}
	return nil
}

type CreateHospitalRequest struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Description *string `json:"description"`
}

// Validate requires phone even though the hospital entity never stores
// it; the stored contract keeps that quirk on purpose.
func (r *CreateHospitalRequest) Validate() error {
	if r.Name == "" || r.Address == "" || r.Phone == "" {
		return errors.New("Name, address, and phone are required")
	}
	return nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}
