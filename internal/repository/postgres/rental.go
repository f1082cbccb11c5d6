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

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, user_id, battery_id, pickup_station_id, return_station_id, start_time, end_time, hourly_rate, base_cost, total_cost, status, payment_status, created_at, updated_at`

// Start marks the battery rented and inserts the rental row in one
// transaction. The battery update is a compare-and-swap on
// status='available' so two concurrent starts on the same battery cannot
// both succeed.
func (r *rentalRepository) Start(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE batteries SET status=$1, current_station_id=NULL, updated_at=$2 WHERE id=$3 AND status=$4`,
		domain.BatteryStatusRented, time.Now(), rt.BatteryID, domain.BatteryStatusAvailable)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Conflictf("battery %d is not available", rt.BatteryID)
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO rentals (user_id, battery_id, pickup_station_id, start_time, hourly_rate, base_cost, status, payment_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		rt.UserID, rt.BatteryID, rt.PickupStationID, rt.StartTime, rt.HourlyRate, rt.BaseCost, rt.Status, rt.PaymentStatus, time.Now(), time.Now()).Scan(&rt.ID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE batteries SET current_rental_id=$1 WHERE id=$2`, rt.ID, rt.BatteryID); err != nil {
		return err
	}

	return tx.Commit()
}

// Complete closes the rental and returns the battery to the return
// station. The rental update is guarded on an open status so a second
// call cannot rewrite total_cost.
func (r *rentalRepository) Complete(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rentals SET status=$1, end_time=$2, return_station_id=$3, total_cost=$4, updated_at=$5
		 WHERE id=$6 AND status IN ($7, $8)`,
		domain.RentalStatusCompleted, rt.EndTime, rt.ReturnStationID, rt.TotalCost, time.Now(),
		rt.ID, domain.RentalStatusActive, domain.RentalStatusOverdue)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Conflictf("rental %d is already closed", rt.ID)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE batteries SET status=$1, current_station_id=$2, current_rental_id=NULL, updated_at=$3 WHERE id=$4`,
		domain.BatteryStatusAvailable, rt.ReturnStationID, time.Now(), rt.BatteryID); err != nil {
		return err
	}

	rt.Status = domain.RentalStatusCompleted
	return tx.Commit()
}

// Cancel voids an open rental and releases the battery back to its
// pickup station.
func (r *rentalRepository) Cancel(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rentals SET status=$1, end_time=$2, updated_at=$3 WHERE id=$4 AND status=$5`,
		domain.RentalStatusCancelled, time.Now(), time.Now(), rt.ID, domain.RentalStatusActive)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Conflictf("rental %d is not active", rt.ID)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE batteries SET status=$1, current_station_id=$2, current_rental_id=NULL, updated_at=$3 WHERE id=$4`,
		domain.BatteryStatusAvailable, rt.PickupStationID, time.Now(), rt.BatteryID); err != nil {
		return err
	}

	rt.Status = domain.RentalStatusCancelled
	return tx.Commit()
}

func scanRental(row interface{ Scan(...any) error }, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.UserID, &rt.BatteryID, &rt.PickupStationID, &rt.ReturnStationID, &rt.StartTime, &rt.EndTime, &rt.HourlyRate, &rt.BaseCost, &rt.TotalCost, &rt.Status, &rt.PaymentStatus, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("rental %d", id)
		}
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *rentalRepository) GetActiveByUser(ctx context.Context, userID int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE user_id = $1 AND status IN ($2, $3) ORDER BY start_time DESC LIMIT 1`
	return scanRental(r.db.QueryRowContext(ctx, query, userID, domain.RentalStatusActive, domain.RentalStatusOverdue), 0)
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE user_id = $1`
	args := []interface{}{userID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY start_time DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.BatteryID, &rt.PickupStationID, &rt.ReturnStationID, &rt.StartTime, &rt.EndTime, &rt.HourlyRate, &rt.BaseCost, &rt.TotalCost, &rt.Status, &rt.PaymentStatus, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, count, rows.Err()
}

func (r *rentalRepository) UpdatePaymentStatus(ctx context.Context, id int32, status domain.RentalPaymentStatus) error {
	query := `UPDATE rentals SET payment_status=$1, updated_at=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("rental %d", id)
	}
	return nil
}

func (r *rentalRepository) MarkOverdue(ctx context.Context, startedBefore time.Time) (int64, error) {
	query := `UPDATE rentals SET status=$1, updated_at=$2 WHERE status=$3 AND start_time < $4`
	res, err := r.db.ExecContext(ctx, query, domain.RentalStatusOverdue, time.Now(), domain.RentalStatusActive, startedBefore)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
