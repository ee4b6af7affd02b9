package validate_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-booking-api/internal/validate"
)

func strPtr(s string) *string { return &s }

func TestRegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     validate.RegisterRequest
		wantErr string
	}{
		{"valid", validate.RegisterRequest{Email: "a@b.com", Password: "secret123", Name: strPtr("A")}, ""},
		{"valid without name", validate.RegisterRequest{Email: "a@b.com", Password: "secret123"}, ""},
		{"bad email", validate.RegisterRequest{Email: "not-an-email", Password: "secret123"}, "Invalid email format"},
		{"empty email", validate.RegisterRequest{Email: "", Password: "secret123"}, "Invalid email format"},
		{"short password", validate.RegisterRequest{Email: "a@b.com", Password: "12345"}, "Password must be at least 6 characters"},
		// first error wins
		{"bad email and short password", validate.RegisterRequest{Email: "nope", Password: "1"}, "Invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestLoginRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     validate.LoginRequest
		wantErr string
	}{
		{"valid", validate.LoginRequest{Email: "a@b.com", Password: "x"}, ""},
		{"bad email", validate.LoginRequest{Email: "x", Password: "x"}, "Invalid email format"},
		{"empty password", validate.LoginRequest{Email: "a@b.com", Password: ""}, "Password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestCreateBookingRequest(t *testing.T) {
	svcID := uuid.New().String()

	tests := []struct {
		name    string
		req     validate.CreateBookingRequest
		wantErr string
	}{
		{"valid rfc3339", validate.CreateBookingRequest{ServiceID: svcID, Date: "2026-09-01T10:00:00Z"}, ""},
		{"valid date only", validate.CreateBookingRequest{ServiceID: svcID, Date: "2026-09-01"}, ""},
		{"bad service id", validate.CreateBookingRequest{ServiceID: "123", Date: "2026-09-01"}, "Invalid service ID format"},
		{"bad date", validate.CreateBookingRequest{ServiceID: svcID, Date: "next tuesday"}, "Invalid date format"},
		{"empty date", validate.CreateBookingRequest{ServiceID: svcID, Date: ""}, "Invalid date format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestCreateServiceRequest(t *testing.T) {
	hospID := uuid.New().String()

	tests := []struct {
		name    string
		req     validate.CreateServiceRequest
		wantErr string
	}{
		{"valid", validate.CreateServiceRequest{Name: "Checkup", Price: 100, Duration: 30, HospitalID: hospID}, ""},
		{"short name", validate.CreateServiceRequest{Name: "X", Price: 100, Duration: 30, HospitalID: hospID}, "Service name must be at least 2 characters"},
		{"zero price", validate.CreateServiceRequest{Name: "Checkup", Price: 0, Duration: 30, HospitalID: hospID}, "Price must be a positive number"},
		{"negative price", validate.CreateServiceRequest{Name: "Checkup", Price: -5, Duration: 30, HospitalID: hospID}, "Price must be a positive number"},
		{"fractional duration", validate.CreateServiceRequest{Name: "Checkup", Price: 100, Duration: 30.5, HospitalID: hospID}, "Duration must be a positive integer"},
		{"zero duration", validate.CreateServiceRequest{Name: "Checkup", Price: 100, Duration: 0, HospitalID: hospID}, "Duration must be a positive integer"},
		{"bad hospital id", validate.CreateServiceRequest{Name: "Checkup", Price: 100, Duration: 30, HospitalID: "abc"}, "Invalid hospital ID format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestCreateHospitalRequest(t *testing.T) {
	valid := validate.CreateHospitalRequest{Name: "A", Address: "X", Phone: "555-0100"}
	assert.NoError(t, valid.Validate())

	for _, req := range []validate.CreateHospitalRequest{
		{Address: "X", Phone: "555-0100"},
		{Name: "A", Phone: "555-0100"},
		{Name: "A", Address: "X"},
	} {
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Name, address, and phone are required", err.Error())
	}
}

func TestParseDate(t *testing.T) {
	got, err := validate.ParseDate("2026-09-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = validate.ParseDate("garbage")
	assert.Error(t, err)
}
