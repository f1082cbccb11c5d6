package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/repository"
)

type batteryRepository struct {
	db *sql.DB
}

func NewBatteryRepository(db *sql.DB) repository.BatteryRepository {
	return &batteryRepository{db: db}
}

const batteryColumns = `id, serial_number, model, status, health_status, charge_percentage, cycle_count, current_station_id, current_rental_id, created_at, updated_at`

func (r *batteryRepository) Create(ctx context.Context, b *domain.Battery) error {
	query := `INSERT INTO batteries (serial_number, model, status, health_status, charge_percentage, cycle_count, current_station_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, b.SerialNumber, b.Model, b.Status, b.Health, b.ChargePercentage, b.CycleCount, b.CurrentStationID, now, now).Scan(&b.ID)
}

func scanBattery(row interface{ Scan(...any) error }, ref string) (*domain.Battery, error) {
	b := &domain.Battery{}
	err := row.Scan(&b.ID, &b.SerialNumber, &b.Model, &b.Status, &b.Health, &b.ChargePercentage, &b.CycleCount, &b.CurrentStationID, &b.CurrentRentalID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("battery %s", ref)
		}
		return nil, err
	}
	return b, nil
}

func (r *batteryRepository) GetByID(ctx context.Context, id int32) (*domain.Battery, error) {
	query := `SELECT ` + batteryColumns + ` FROM batteries WHERE id = $1`
	return scanBattery(r.db.QueryRowContext(ctx, query, id), fmt.Sprintf("%d", id))
}

func (r *batteryRepository) GetBySerial(ctx context.Context, serial string) (*domain.Battery, error) {
	query := `SELECT ` + batteryColumns + ` FROM batteries WHERE serial_number = $1`
	return scanBattery(r.db.QueryRowContext(ctx, query, serial), serial)
}

func (r *batteryRepository) Update(ctx context.Context, b *domain.Battery) error {
	query := `UPDATE batteries SET serial_number=$1, model=$2, status=$3, health_status=$4, charge_percentage=$5, cycle_count=$6, current_station_id=$7, current_rental_id=$8, updated_at=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query, b.SerialNumber, b.Model, b.Status, b.Health, b.ChargePercentage, b.CycleCount, b.CurrentStationID, b.CurrentRentalID, time.Now(), b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("battery %d", b.ID)
	}
	return nil
}

func (r *batteryRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM batteries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("battery %d", id)
	}
	return nil
}

func (r *batteryRepository) UpdateStatus(ctx context.Context, id int32, status domain.BatteryStatus, chargePercentage int32) error {
	query := `UPDATE batteries SET status=$1, charge_percentage=$2, updated_at=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, status, chargePercentage, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("battery %d", id)
	}
	return nil
}

func (r *batteryRepository) ListByStation(ctx context.Context, stationID int32) ([]domain.Battery, error) {
	query := `SELECT ` + batteryColumns + ` FROM batteries WHERE current_station_id = $1 ORDER BY serial_number`
	rows, err := r.db.QueryContext(ctx, query, stationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBatteries(rows)
}

func (r *batteryRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Battery, int32, error) {
	query := `SELECT ` + batteryColumns + ` FROM batteries`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query += fmt.Sprintf(" ORDER BY serial_number LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	batteries, err := collectBatteries(rows)
	return batteries, count, err
}

func collectBatteries(rows *sql.Rows) ([]domain.Battery, error) {
	var batteries []domain.Battery
	for rows.Next() {
		var b domain.Battery
		if err := rows.Scan(&b.ID, &b.SerialNumber, &b.Model, &b.Status, &b.Health, &b.ChargePercentage, &b.CycleCount, &b.CurrentStationID, &b.CurrentRentalID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		batteries = append(batteries, b)
	}
	return batteries, rows.Err()
}
