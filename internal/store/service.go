package store

import (
	"context"

	"hospital-booking-api/internal/model"
)

func (s *Store) CreateService(ctx context.Context, sv *model.Service) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO services (id, name, description, price, duration, hospital_id)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING created_at, updated_at`,
		sv.ID, sv.Name, sv.Description, sv.Price, sv.Duration, sv.HospitalID,
	).Scan(&sv.CreatedAt, &sv.UpdatedAt)
}

func (s *Store) ListServices(ctx context.Context) ([]model.ServiceWithHospital, error) {
	rows, err := s.db.Query(ctx,
		`SELECT s.id, s.name, s.description, s.price, s.duration, s.hospital_id,
		        s.created_at, s.updated_at, h.id, h.name
		 FROM services s
		 JOIN hospitals h ON h.id = s.hospital_id
		 ORDER BY s.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ServiceWithHospital{}
	for rows.Next() {
		var sv model.ServiceWithHospital
		if err := rows.Scan(
			&sv.ID, &sv.Name, &sv.Description, &sv.Price, &sv.Duration, &sv.HospitalID,
			&sv.CreatedAt, &sv.UpdatedAt, &sv.Hospital.ID, &sv.Hospital.Name,
		); err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

func (s *Store) ServiceByID(ctx context.Context, id string) (*model.Service, error) {
	sv := &model.Service{}
	err := s.db.QueryRow(ctx,
		`SELECT id, name, description, price, duration, hospital_id, created_at, updated_at
		 FROM services WHERE id = $1`, id,
	).Scan(&sv.ID, &sv.Name, &sv.Description, &sv.Price, &sv.Duration, &sv.HospitalID,
		&sv.CreatedAt, &sv.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return sv, nil
}

// GetService returns one service with its parent hospital id, name and
// address.
func (s *Store) GetService(ctx context.Context, id string) (*model.ServiceWithHospital, error) {
	sv := &model.ServiceWithHospital{}
	err := s.db.QueryRow(ctx,
		`SELECT s.id, s.name, s.description, s.price, s.duration, s.hospital_id,
		        s.created_at, s.updated_at, h.id, h.name, h.address
		 FROM services s
		 JOIN hospitals h ON h.id = s.hospital_id
		 WHERE s.id = $1`, id,
	).Scan(&sv.ID, &sv.Name, &sv.Description, &sv.Price, &sv.Duration, &sv.HospitalID,
		&sv.CreatedAt, &sv.UpdatedAt, &sv.Hospital.ID, &sv.Hospital.Name, &sv.Hospital.Address)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return sv, nil
}

func (s *Store) ListServicesByHospital(ctx context.Context, hospitalID string) ([]model.Service, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, description, price, duration, hospital_id, created_at, updated_at
		 FROM services WHERE hospital_id = $1 ORDER BY name`, hospitalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Service{}
	for rows.Next() {
		var sv model.Service
		if err := rows.Scan(&sv.ID, &sv.Name, &sv.Description, &sv.Price, &sv.Duration,
			&sv.HospitalID, &sv.CreatedAt, &sv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

// DeleteService refuses to delete a service that still has pending or
// confirmed bookings; the returned error carries the count.
func (s *Store) DeleteService(ctx context.Context, id string) error {
	if _, err := s.ServiceByID(ctx, id); err != nil {
		return err
	}

	var active int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings
		 WHERE service_id = $1 AND status IN ('pending','confirmed')`, id,
	).Scan(&active)
	if err != nil {
		return err
	}
	if active > 0 {
		return &ActiveBookingsError{Count: active}
	}

	_, err = s.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	return err
}
