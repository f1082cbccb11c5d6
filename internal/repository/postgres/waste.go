package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/repository"
)

type wasteLogRepository struct {
	db *sql.DB
}

func NewWasteLogRepository(db *sql.DB) repository.WasteLogRepository {
	return &wasteLogRepository{db: db}
}

const wasteColumns = `id, user_id, station_id, waste_type, weight_kg, points_earned, verified, verified_by, created_at, updated_at`

func (r *wasteLogRepository) Create(ctx context.Context, l *domain.WasteLog) error {
	query := `INSERT INTO waste_logs (user_id, station_id, waste_type, weight_kg, points_earned, verified, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, l.UserID, l.StationID, l.WasteType, l.WeightKg, l.PointsEarned, l.Verified, now, now).Scan(&l.ID)
}

func (r *wasteLogRepository) GetByID(ctx context.Context, id int32) (*domain.WasteLog, error) {
	l := &domain.WasteLog{}
	query := `SELECT ` + wasteColumns + ` FROM waste_logs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.UserID, &l.StationID, &l.WasteType, &l.WeightKg, &l.PointsEarned, &l.Verified, &l.VerifiedBy, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("waste log %d", id)
		}
		return nil, err
	}
	return l, nil
}

func (r *wasteLogRepository) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.WasteLog, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM waste_logs WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + wasteColumns + ` FROM waste_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs, err := collectWasteLogs(rows)
	return logs, count, err
}

func (r *wasteLogRepository) ListUnverified(ctx context.Context, page, pageSize int32) ([]domain.WasteLog, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM waste_logs WHERE verified = false`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + wasteColumns + ` FROM waste_logs WHERE verified = false ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs, err := collectWasteLogs(rows)
	return logs, count, err
}

func collectWasteLogs(rows *sql.Rows) ([]domain.WasteLog, error) {
	var logs []domain.WasteLog
	for rows.Next() {
		var l domain.WasteLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.StationID, &l.WasteType, &l.WeightKg, &l.PointsEarned, &l.Verified, &l.VerifiedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// Verify is guarded on verified=false so points are awarded exactly once.
func (r *wasteLogRepository) Verify(ctx context.Context, id, verifierID int32) error {
	query := `UPDATE waste_logs SET verified=true, verified_by=$1, updated_at=$2 WHERE id=$3 AND verified=false`
	res, err := r.db.ExecContext(ctx, query, verifierID, time.Now(), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		// Distinguish missing from already-verified for the error taxonomy.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.Conflictf("waste log %d is already verified", id)
	}
	return nil
}
