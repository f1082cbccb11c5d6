package service

import (
	"context"
	"fmt"
	"time"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/logger"
	"ecolithswap-backend/internal/pricing"
	"ecolithswap-backend/internal/repository"
)

// RentalRates holds the pricing snapshot applied to new rentals.
type RentalRates struct {
	HourlyRate float64
	BaseCost   float64
}

type rentalService struct {
	rentalRepo  repository.RentalRepository
	batteryRepo repository.BatteryRepository
	stationRepo repository.StationRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	rates       RentalRates
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	batteryRepo repository.BatteryRepository,
	stationRepo repository.StationRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	rates RentalRates,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		batteryRepo: batteryRepo,
		stationRepo: stationRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		rates:       rates,
	}
}

func (s *rentalService) StartRental(ctx context.Context, userID, batteryID, pickupStationID int32) (*domain.Rental, error) {
	battery, err := s.batteryRepo.GetByID(ctx, batteryID)
	if err != nil {
		return nil, err
	}

	station, err := s.stationRepo.GetByID(ctx, pickupStationID)
	if err != nil {
		return nil, err
	}
	if !station.AcceptsReturns() {
		return nil, domain.Conflictf("station %d is not in service", pickupStationID)
	}

	if !battery.EligibleForRental() {
		return nil, domain.Conflictf("battery %s is not eligible for rental", battery.SerialNumber)
	}
	// A battery with a recorded location must be picked up there.
	if battery.CurrentStationID != nil && *battery.CurrentStationID != pickupStationID {
		return nil, domain.Conflictf("battery %s is not at station %d", battery.SerialNumber, pickupStationID)
	}

	rental := &domain.Rental{
		UserID:          userID,
		BatteryID:       batteryID,
		PickupStationID: pickupStationID,
		StartTime:       time.Now(),
		HourlyRate:      s.rates.HourlyRate,
		BaseCost:        s.rates.BaseCost,
		Status:          domain.RentalStatusActive,
		PaymentStatus:   domain.RentalPaymentPending,
	}

	// Battery flip and rental insert are one atomic unit in the
	// repository; a concurrent start loses the compare-and-swap and
	// comes back as a conflict.
	if err := s.rentalRepo.Start(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental started", "rental_id", rental.ID, "user_id", userID, "battery_id", batteryID, "station_id", pickupStationID)
	return rental, nil
}

func (s *rentalService) EndRental(ctx context.Context, userID, rentalID, returnStationID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.UserID != userID {
		return nil, fmt.Errorf("rental %d belongs to another user: %w", rentalID, domain.ErrForbidden)
	}
	if !rental.Open() {
		return nil, domain.Conflictf("rental %d is already closed", rentalID)
	}

	station, err := s.stationRepo.GetByID(ctx, returnStationID)
	if err != nil {
		return nil, err
	}
	if !station.AcceptsReturns() {
		return nil, domain.Conflictf("station %d is not accepting returns", returnStationID)
	}

	now := time.Now()
	cost, err := pricing.RentalCost(rental.StartTime, now, rental.HourlyRate, rental.BaseCost)
	if err != nil {
		return nil, err
	}

	rental.EndTime = &now
	rental.ReturnStationID = &returnStationID
	rental.TotalCost = &cost

	if err := s.rentalRepo.Complete(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental completed", "rental_id", rental.ID, "user_id", userID, "total_cost", cost)

	// Receipt emails are best effort.
	if user, uerr := s.userRepo.GetByID(ctx, userID); uerr == nil {
		if eerr := s.emailSvc.SendRentalReceipt(ctx, user.Email, user.FullName, rental); eerr != nil {
			logger.Warn("Failed to send rental receipt", "rental_id", rental.ID, "error", eerr)
		}
	}

	return rental, nil
}

func (s *rentalService) CancelRental(ctx context.Context, userID, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.UserID != userID {
		return nil, fmt.Errorf("rental %d belongs to another user: %w", rentalID, domain.ErrForbidden)
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.Conflictf("rental %d is not active", rentalID)
	}

	if err := s.rentalRepo.Cancel(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental cancelled", "rental_id", rental.ID, "user_id", userID)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, userID int32, isAdmin bool, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && rental.UserID != userID {
		return nil, fmt.Errorf("rental %d belongs to another user: %w", rentalID, domain.ErrForbidden)
	}
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.ListByUser(ctx, userID, status, page, pageSize)
}
