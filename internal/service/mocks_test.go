package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/security"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id int32, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}

type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) Create(ctx context.Context, station *domain.Station) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}

func (m *MockStationRepository) GetByID(ctx context.Context, id int32) (*domain.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

func (m *MockStationRepository) Update(ctx context.Context, station *domain.Station) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}

func (m *MockStationRepository) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStationRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Station, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Station), args.Get(1).(int32), args.Error(2)
}

func (m *MockStationRepository) ListActive(ctx context.Context) ([]domain.Station, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Station), args.Error(1)
}

func (m *MockStationRepository) SetMaintenance(ctx context.Context, id int32, maintenance bool) error {
	args := m.Called(ctx, id, maintenance)
	return args.Error(0)
}

func (m *MockStationRepository) ReconcileAvailableCounts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBatteryRepository struct {
	mock.Mock
}

func (m *MockBatteryRepository) Create(ctx context.Context, battery *domain.Battery) error {
	args := m.Called(ctx, battery)
	return args.Error(0)
}

func (m *MockBatteryRepository) GetByID(ctx context.Context, id int32) (*domain.Battery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battery), args.Error(1)
}

func (m *MockBatteryRepository) GetBySerial(ctx context.Context, serial string) (*domain.Battery, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battery), args.Error(1)
}

func (m *MockBatteryRepository) Update(ctx context.Context, battery *domain.Battery) error {
	args := m.Called(ctx, battery)
	return args.Error(0)
}

func (m *MockBatteryRepository) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBatteryRepository) UpdateStatus(ctx context.Context, id int32, status domain.BatteryStatus, chargePercentage int32) error {
	args := m.Called(ctx, id, status, chargePercentage)
	return args.Error(0)
}

func (m *MockBatteryRepository) ListByStation(ctx context.Context, stationID int32) ([]domain.Battery, error) {
	args := m.Called(ctx, stationID)
	return args.Get(0).([]domain.Battery), args.Error(1)
}

func (m *MockBatteryRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Battery, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Battery), args.Get(1).(int32), args.Error(2)
}

type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) Start(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepository) Complete(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepository) Cancel(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) GetActiveByUser(ctx context.Context, userID int32) (*domain.Rental, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

func (m *MockRentalRepository) UpdatePaymentStatus(ctx context.Context, id int32, status domain.RentalPaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRentalRepository) MarkOverdue(ctx context.Context, startedBefore time.Time) (int64, error) {
	args := m.Called(ctx, startedBefore)
	return args.Get(0).(int64), args.Error(1)
}

type MockWasteLogRepository struct {
	mock.Mock
}

func (m *MockWasteLogRepository) Create(ctx context.Context, log *domain.WasteLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockWasteLogRepository) GetByID(ctx context.Context, id int32) (*domain.WasteLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WasteLog), args.Error(1)
}

func (m *MockWasteLogRepository) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.WasteLog, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.WasteLog), args.Get(1).(int32), args.Error(2)
}

func (m *MockWasteLogRepository) ListUnverified(ctx context.Context, page, pageSize int32) ([]domain.WasteLog, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.WasteLog), args.Get(1).(int32), args.Error(2)
}

func (m *MockWasteLogRepository) Verify(ctx context.Context, id, verifierID int32) error {
	args := m.Called(ctx, id, verifierID)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus, mpesaReceipt *string) error {
	args := m.Called(ctx, id, status, mpesaReceipt)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) UserSummary(ctx context.Context, userID int32) (*domain.UserDashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserDashboard), args.Error(1)
}

func (m *MockStatsRepository) AdminSummary(ctx context.Context) (*domain.AdminDashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminDashboard), args.Error(1)
}

func (m *MockStatsRepository) PointsBalance(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}

type MockTokenDenylist struct {
	mock.Mock
}

func (m *MockTokenDenylist) Add(ctx context.Context, token string, ttl time.Duration) error {
	args := m.Called(ctx, token, ttl)
	return args.Error(0)
}

func (m *MockTokenDenylist) IsDenied(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalReceipt(ctx context.Context, email, name string, rental *domain.Rental) error {
	args := m.Called(ctx, email, name, rental)
	return args.Error(0)
}

func (m *MockEmailService) SendWasteVerifiedNotification(ctx context.Context, email, name string, log *domain.WasteLog) error {
	args := m.Called(ctx, email, name, log)
	return args.Error(0)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string, role domain.UserRole) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
