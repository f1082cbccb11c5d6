package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) UserSummary(ctx context.Context, userID int32) (*domain.UserDashboard, error) {
	d := &domain.UserDashboard{}

	err := r.db.QueryRowContext(ctx,
		`SELECT count(*), COALESCE(sum(total_cost), 0) FROM rentals WHERE user_id = $1 AND status = 'completed'`,
		userID).Scan(&d.TotalRentals, &d.TotalSpent)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(sum(points_earned), 0), COALESCE(sum(weight_kg), 0) FROM waste_logs WHERE user_id = $1 AND verified = true`,
		userID).Scan(&d.PointsEarned, &d.WasteKg)
	if err != nil {
		return nil, err
	}

	balance, err := r.PointsBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	d.PointsBalance = balance

	active, err := scanRental(r.db.QueryRowContext(ctx,
		`SELECT `+rentalColumns+` FROM rentals WHERE user_id = $1 AND status IN ('active', 'overdue') ORDER BY start_time DESC LIMIT 1`,
		userID), 0)
	if err == nil {
		d.ActiveRental = active
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return d, nil
}

func (r *statsRepository) AdminSummary(ctx context.Context) (*domain.AdminDashboard, error) {
	d := &domain.AdminDashboard{
		BatteriesByStatus: make(map[string]int32),
		RentalsByStatus:   make(map[string]int32),
	}

	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users WHERE is_active = true`).Scan(&d.TotalUsers); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM stations WHERE is_active = true`).Scan(&d.ActiveStations); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(sum(amount), 0) FROM payments WHERE status = 'completed'`).Scan(&d.TotalRevenue); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(sum(weight_kg), 0), COALESCE(sum(points_earned), 0) FROM waste_logs WHERE verified = true`).Scan(&d.TotalWasteKg, &d.PointsAwarded); err != nil {
		return nil, err
	}

	if err := r.countByStatus(ctx, `SELECT status, count(*) FROM batteries GROUP BY status`, d.BatteriesByStatus); err != nil {
		return nil, err
	}
	if err := r.countByStatus(ctx, `SELECT status, count(*) FROM rentals GROUP BY status`, d.RentalsByStatus); err != nil {
		return nil, err
	}

	return d, nil
}

func (r *statsRepository) countByStatus(ctx context.Context, query string, out map[string]int32) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return err
		}
		out[status] = count
	}
	return rows.Err()
}

func (r *statsRepository) PointsBalance(ctx context.Context, userID int32) (int32, error) {
	var earned, redeemed int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(sum(points_earned), 0) FROM waste_logs WHERE user_id = $1 AND verified = true`,
		userID).Scan(&earned)
	if err != nil {
		return 0, err
	}
	// Points are KES-equivalent: one point redeems one shilling.
	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(sum(amount), 0) FROM payments WHERE user_id = $1 AND payment_method = 'points' AND status IN ('pending', 'completed')`,
		userID).Scan(&redeemed)
	if err != nil {
		return 0, err
	}
	return earned - redeemed, nil
}
