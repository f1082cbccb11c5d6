package repository

import (
	"context"
	"time"

	"ecolithswap-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateLastLogin(ctx context.Context, id int32) error
	SetActive(ctx context.Context, id int32, active bool) error
	List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
}

type StationRepository interface {
	Create(ctx context.Context, station *domain.Station) error
	GetByID(ctx context.Context, id int32) (*domain.Station, error)
	Update(ctx context.Context, station *domain.Station) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Station, int32, error)
	ListActive(ctx context.Context) ([]domain.Station, error)
	SetMaintenance(ctx context.Context, id int32, maintenance bool) error
	// ReconcileAvailableCounts rewrites available_batteries from the
	// battery table. Returns the number of stations corrected.
	ReconcileAvailableCounts(ctx context.Context) (int64, error)
}

type BatteryRepository interface {
	Create(ctx context.Context, battery *domain.Battery) error
	GetByID(ctx context.Context, id int32) (*domain.Battery, error)
	GetBySerial(ctx context.Context, serial string) (*domain.Battery, error)
	Update(ctx context.Context, battery *domain.Battery) error
	Delete(ctx context.Context, id int32) error
	UpdateStatus(ctx context.Context, id int32, status domain.BatteryStatus, chargePercentage int32) error
	ListByStation(ctx context.Context, stationID int32) ([]domain.Battery, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Battery, int32, error)
}

type RentalRepository interface {
	// Start atomically marks the battery rented and inserts the rental
	// row in one transaction. Returns domain.ErrConflict if the battery
	// was taken between the eligibility check and the write.
	Start(ctx context.Context, rental *domain.Rental) error
	// Complete atomically closes the rental and returns the battery to
	// the return station.
	Complete(ctx context.Context, rental *domain.Rental) error
	// Cancel atomically voids the rental and releases the battery back
	// to its pickup station.
	Cancel(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	GetActiveByUser(ctx context.Context, userID int32) (*domain.Rental, error)
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	UpdatePaymentStatus(ctx context.Context, id int32, status domain.RentalPaymentStatus) error
	// MarkOverdue flags active rentals started before the cutoff.
	MarkOverdue(ctx context.Context, startedBefore time.Time) (int64, error)
}

type WasteLogRepository interface {
	Create(ctx context.Context, log *domain.WasteLog) error
	GetByID(ctx context.Context, id int32) (*domain.WasteLog, error)
	ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.WasteLog, int32, error)
	ListUnverified(ctx context.Context, page, pageSize int32) ([]domain.WasteLog, int32, error)
	// Verify marks the log verified exactly once; a second call affects
	// zero rows and surfaces as domain.ErrConflict.
	Verify(ctx context.Context, id, verifierID int32) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Payment, int32, error)
	UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus, mpesaReceipt *string) error
}

type StatsRepository interface {
	UserSummary(ctx context.Context, userID int32) (*domain.UserDashboard, error)
	AdminSummary(ctx context.Context) (*domain.AdminDashboard, error)
	// PointsBalance is verified points earned minus points redeemed
	// through completed points payments.
	PointsBalance(ctx context.Context, userID int32) (int32, error)
}

// TokenDenylist invalidates refresh tokens on logout.
type TokenDenylist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	IsDenied(ctx context.Context, token string) (bool, error)
}
