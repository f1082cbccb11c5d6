package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/repository"
)

type stationRepository struct {
	db *sql.DB
}

func NewStationRepository(db *sql.DB) repository.StationRepository {
	return &stationRepository{db: db}
}

const stationColumns = `id, name, address, latitude, longitude, station_type, total_slots, available_batteries, is_active, maintenance_mode, created_at, updated_at`

func (r *stationRepository) Create(ctx context.Context, s *domain.Station) error {
	query := `INSERT INTO stations (name, address, latitude, longitude, station_type, total_slots, available_batteries, is_active, maintenance_mode, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, s.Name, s.Address, s.Latitude, s.Longitude, s.Type, s.TotalSlots, s.AvailableBatteries, s.IsActive, s.MaintenanceMode, now, now).Scan(&s.ID)
}

func (r *stationRepository) GetByID(ctx context.Context, id int32) (*domain.Station, error) {
	s := &domain.Station{}
	query := `SELECT ` + stationColumns + ` FROM stations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Address, &s.Latitude, &s.Longitude, &s.Type, &s.TotalSlots, &s.AvailableBatteries, &s.IsActive, &s.MaintenanceMode, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("station %d", id)
		}
		return nil, err
	}
	return s, nil
}

func (r *stationRepository) Update(ctx context.Context, s *domain.Station) error {
	query := `UPDATE stations SET name=$1, address=$2, latitude=$3, longitude=$4, station_type=$5, total_slots=$6, is_active=$7, maintenance_mode=$8, updated_at=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.Address, s.Latitude, s.Longitude, s.Type, s.TotalSlots, s.IsActive, s.MaintenanceMode, time.Now(), s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("station %d", s.ID)
	}
	return nil
}

func (r *stationRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("station %d", id)
	}
	return nil
}

func (r *stationRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Station, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM stations`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + stationColumns + ` FROM stations ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	stations, err := collectStations(rows)
	return stations, count, err
}

func (r *stationRepository) ListActive(ctx context.Context) ([]domain.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations WHERE is_active = true ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStations(rows)
}

func collectStations(rows *sql.Rows) ([]domain.Station, error) {
	var stations []domain.Station
	for rows.Next() {
		var s domain.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Latitude, &s.Longitude, &s.Type, &s.TotalSlots, &s.AvailableBatteries, &s.IsActive, &s.MaintenanceMode, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

func (r *stationRepository) SetMaintenance(ctx context.Context, id int32, maintenance bool) error {
	query := `UPDATE stations SET maintenance_mode=$1, updated_at=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, maintenance, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("station %d", id)
	}
	return nil
}

func (r *stationRepository) ReconcileAvailableCounts(ctx context.Context) (int64, error) {
	// available_batteries drifts because rentals move batteries without
	// touching the station row. Rewrite it from the source of truth.
	query := `
		UPDATE stations s
		SET available_batteries = sub.cnt,
		    updated_at = NOW()
		FROM (
			SELECT st.id, COALESCE(b.cnt, 0) AS cnt
			FROM stations st
			LEFT JOIN (
				SELECT current_station_id, count(*) AS cnt
				FROM batteries
				WHERE status = 'available' AND current_station_id IS NOT NULL
				GROUP BY current_station_id
			) b ON b.current_station_id = st.id
		) sub
		WHERE s.id = sub.id AND s.available_batteries <> sub.cnt`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
