package service

import (
	"context"

	"ecolithswap-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName, phone string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, fullName, phone string) (*domain.User, error)
	ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
	SetUserActive(ctx context.Context, userID int32, active bool) error
}

type StationService interface {
	CreateStation(ctx context.Context, station *domain.Station) error
	GetStation(ctx context.Context, id int32) (*domain.Station, error)
	UpdateStation(ctx context.Context, station *domain.Station) error
	DeleteStation(ctx context.Context, id int32) error
	ListStations(ctx context.Context, page, pageSize int32) ([]domain.Station, int32, error)
	NearbyStations(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]domain.StationDistance, error)
	SetMaintenance(ctx context.Context, id int32, maintenance bool) error
}

type BatteryService interface {
	AddBattery(ctx context.Context, battery *domain.Battery) error
	GetBattery(ctx context.Context, id int32) (*domain.Battery, error)
	UpdateBattery(ctx context.Context, battery *domain.Battery) error
	DeleteBattery(ctx context.Context, id int32) error
	UpdateBatteryStatus(ctx context.Context, id int32, status domain.BatteryStatus, chargePercentage int32) error
	ListByStation(ctx context.Context, stationID int32) ([]domain.Battery, error)
	ListBatteries(ctx context.Context, status string, page, pageSize int32) ([]domain.Battery, int32, error)
}

type RentalService interface {
	StartRental(ctx context.Context, userID, batteryID, pickupStationID int32) (*domain.Rental, error)
	EndRental(ctx context.Context, userID, rentalID, returnStationID int32) (*domain.Rental, error)
	CancelRental(ctx context.Context, userID, rentalID int32) (*domain.Rental, error)
	GetRental(ctx context.Context, userID int32, isAdmin bool, rentalID int32) (*domain.Rental, error)
	ListRentals(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
}

type WasteService interface {
	SubmitWaste(ctx context.Context, userID, stationID int32, wasteType domain.WasteType, weightKg float64) (*domain.WasteLog, error)
	ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.WasteLog, int32, error)
	ListUnverified(ctx context.Context, page, pageSize int32) ([]domain.WasteLog, int32, error)
	VerifyWaste(ctx context.Context, logID, verifierID int32) (*domain.WasteLog, error)
}

type PaymentService interface {
	CreatePayment(ctx context.Context, userID int32, rentalID *int32, amount float64, method domain.PaymentMethod) (*domain.Payment, error)
	ListPayments(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Payment, int32, error)
	UpdatePaymentStatus(ctx context.Context, paymentID int32, status domain.PaymentStatus, mpesaReceipt *string) (*domain.Payment, error)
}

type DashboardService interface {
	UserSummary(ctx context.Context, userID int32) (*domain.UserDashboard, error)
	AdminSummary(ctx context.Context) (*domain.AdminDashboard, error)
}

type EmailService interface {
	SendRentalReceipt(ctx context.Context, email, name string, rental *domain.Rental) error
	SendWasteVerifiedNotification(ctx context.Context, email, name string, log *domain.WasteLog) error
}
