package store

import (
	"context"

	"hospital-booking-api/internal/model"
)

func (s *Store) CreateHospital(ctx context.Context, h *model.Hospital) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO hospitals (id, name, address, description) VALUES ($1,$2,$3,$4)
		 RETURNING created_at, updated_at`,
		h.ID, h.Name, h.Address, h.Description,
	).Scan(&h.CreatedAt, &h.UpdatedAt)
}

// ListHospitals returns every hospital with its service summaries. Two
// queries, grouped in memory; no N+1.
func (s *Store) ListHospitals(ctx context.Context) ([]model.HospitalOverview, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, address, description, created_at, updated_at
		 FROM hospitals ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.HospitalOverview{}
	index := map[string]int{}
	for rows.Next() {
		var h model.Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Description, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		index[h.ID] = len(out)
		out = append(out, model.HospitalOverview{Hospital: h, Services: []model.ServiceSummary{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	svcRows, err := s.db.Query(ctx,
		`SELECT id, name, price, duration, hospital_id FROM services ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer svcRows.Close()

	for svcRows.Next() {
		var sv model.ServiceSummary
		var hospitalID string
		if err := svcRows.Scan(&sv.ID, &sv.Name, &sv.Price, &sv.Duration, &hospitalID); err != nil {
			return nil, err
		}
		if i, ok := index[hospitalID]; ok {
			out[i].Services = append(out[i].Services, sv)
		}
	}
	return out, svcRows.Err()
}

func (s *Store) HospitalByID(ctx context.Context, id string) (*model.Hospital, error) {
	h := &model.Hospital{}
	err := s.db.QueryRow(ctx,
		`SELECT id, name, address, description, created_at, updated_at
		 FROM hospitals WHERE id = $1`, id,
	).Scan(&h.ID, &h.Name, &h.Address, &h.Description, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return h, nil
}

// GetHospital returns one hospital with its full services.
func (s *Store) GetHospital(ctx context.Context, id string) (*model.HospitalDetail, error) {
	h, err := s.HospitalByID(ctx, id)
	if err != nil {
		return nil, err
	}

	services, err := s.ListServicesByHospital(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.HospitalDetail{Hospital: *h, Services: services}, nil
}

// DeleteHospital removes the hospital row. Services cascade; there is no
// active-booking guard at the hospital level.
func (s *Store) DeleteHospital(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM hospitals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
