package store

import (
	"context"

	"hospital-booking-api/internal/model"
)

// CreateBooking inserts the booking and reads back the enriched row. The
// read happens outside any transaction; a concurrent service deletion
// between the caller's existence check and this insert surfaces as a
// foreign-key error.
func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) (*model.BookingDetail, error) {
	_, err := s.db.Exec(ctx,
		`INSERT INTO bookings (id, user_id, service_id, date, status, notes)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		b.ID, b.UserID, b.ServiceID, b.Date, b.Status, b.Notes,
	)
	if err != nil {
		return nil, err
	}

	d := &model.BookingDetail{Service: model.BookingService{Hospital: &model.HospitalRef{}}}
	err = s.db.QueryRow(ctx,
		`SELECT b.id, b.user_id, b.service_id, b.date, b.status, b.notes,
		        b.created_at, b.updated_at,
		        s.name, s.price, s.duration, h.id, h.name, h.address
		 FROM bookings b
		 JOIN services s ON s.id = b.service_id
		 JOIN hospitals h ON h.id = s.hospital_id
		 WHERE b.id = $1`, b.ID,
	).Scan(&d.ID, &d.UserID, &d.ServiceID, &d.Date, &d.Status, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt,
		&d.Service.Name, &d.Service.Price, &d.Service.Duration,
		&d.Service.Hospital.ID, &d.Service.Hospital.Name, &d.Service.Hospital.Address)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return d, nil
}

// ListBookings returns the user's bookings, optionally restricted to a
// set of booking ids, newest date first. The projection carries the
// hospital name and address but not its id.
func (s *Store) ListBookings(ctx context.Context, userID string, ids []string) ([]model.BookingDetail, error) {
	q := `SELECT b.id, b.user_id, b.service_id, b.date, b.status, b.notes,
	             b.created_at, b.updated_at,
	             s.name, s.price, s.duration, h.name, h.address
	      FROM bookings b
	      JOIN services s ON s.id = b.service_id
	      JOIN hospitals h ON h.id = s.hospital_id
	      WHERE b.user_id = $1`
	args := []any{userID}
	if len(ids) > 0 {
		q += ` AND b.id = ANY($2)`
		args = append(args, ids)
	}
	q += ` ORDER BY b.date DESC`

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.BookingDetail{}
	for rows.Next() {
		d := model.BookingDetail{Service: model.BookingService{Hospital: &model.HospitalRef{}}}
		if err := rows.Scan(&d.ID, &d.UserID, &d.ServiceID, &d.Date, &d.Status, &d.Notes,
			&d.CreatedAt, &d.UpdatedAt,
			&d.Service.Name, &d.Service.Price, &d.Service.Duration,
			&d.Service.Hospital.Name, &d.Service.Hospital.Address); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateBookingStatus overwrites the status of a booking owned by userID.
// Any of the three statuses may be set from any other; there is no
// transition table.
func (s *Store) UpdateBookingStatus(ctx context.Context, userID, id, status string) (*model.BookingDetail, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3`, status, id, userID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	d := &model.BookingDetail{Service: model.BookingService{Hospital: &model.HospitalRef{}}}
	err = s.db.QueryRow(ctx,
		`SELECT b.id, b.user_id, b.service_id, b.date, b.status, b.notes,
		        b.created_at, b.updated_at, s.name, h.name
		 FROM bookings b
		 JOIN services s ON s.id = b.service_id
		 JOIN hospitals h ON h.id = s.hospital_id
		 WHERE b.id = $1`, id,
	).Scan(&d.ID, &d.UserID, &d.ServiceID, &d.Date, &d.Status, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt, &d.Service.Name, &d.Service.Hospital.Name)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return d, nil
}

// ListBookingsByHospital returns the user's bookings whose service
// belongs to the given hospital, enriched with the service fields and
// the requester's identity.
func (s *Store) ListBookingsByHospital(ctx context.Context, userID, hospitalID string) ([]model.BookingDetail, error) {
	rows, err := s.db.Query(ctx,
		`SELECT b.id, b.user_id, b.service_id, b.date, b.status, b.notes,
		        b.created_at, b.updated_at,
		        s.name, s.price, s.duration, u.id, u.name, u.email
		 FROM bookings b
		 JOIN services s ON s.id = b.service_id
		 JOIN hospitals h ON h.id = s.hospital_id
		 JOIN users u ON u.id = b.user_id
		 WHERE b.user_id = $1 AND h.id = $2
		 ORDER BY b.date DESC`, userID, hospitalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.BookingDetail{}
	for rows.Next() {
		d := model.BookingDetail{User: &model.UserRef{}}
		if err := rows.Scan(&d.ID, &d.UserID, &d.ServiceID, &d.Date, &d.Status, &d.Notes,
			&d.CreatedAt, &d.UpdatedAt,
			&d.Service.Name, &d.Service.Price, &d.Service.Duration,
			&d.User.ID, &d.User.Name, &d.User.Email); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
