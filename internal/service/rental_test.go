package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecolithswap-backend/internal/domain"
)

func newRentalServiceForTest() (RentalService, *MockRentalRepository, *MockBatteryRepository, *MockStationRepository, *MockUserRepository, *MockEmailService) {
	rentalRepo := new(MockRentalRepository)
	batteryRepo := new(MockBatteryRepository)
	stationRepo := new(MockStationRepository)
	userRepo := new(MockUserRepository)
	emailSvc := new(MockEmailService)

	svc := NewRentalService(rentalRepo, batteryRepo, stationRepo, userRepo, emailSvc, RentalRates{
		HourlyRate: 25,
		BaseCost:   50,
	})
	return svc, rentalRepo, batteryRepo, stationRepo, userRepo, emailSvc
}

func availableBattery(id int32, stationID int32) *domain.Battery {
	return &domain.Battery{
		ID:               id,
		SerialNumber:     "BAT-001",
		Status:           domain.BatteryStatusAvailable,
		Health:           domain.BatteryHealthGood,
		ChargePercentage: 90,
		CurrentStationID: &stationID,
	}
}

func activeStation(id int32) *domain.Station {
	return &domain.Station{ID: id, Name: "Kibera Hub", IsActive: true}
}

func TestStartRental(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, rentalRepo, batteryRepo, stationRepo, _, _ := newRentalServiceForTest()

		batteryRepo.On("GetByID", ctx, int32(7)).Return(availableBattery(7, 3), nil)
		stationRepo.On("GetByID", ctx, int32(3)).Return(activeStation(3), nil)
		rentalRepo.On("Start", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rental, err := svc.StartRental(ctx, 1, 7, 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusActive, rental.Status)
		assert.Equal(t, domain.RentalPaymentPending, rental.PaymentStatus)
		assert.Equal(t, 25.0, rental.HourlyRate)
		assert.Equal(t, 50.0, rental.BaseCost)
		assert.Nil(t, rental.TotalCost)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("BatteryLowCharge", func(t *testing.T) {
		svc, _, batteryRepo, stationRepo, _, _ := newRentalServiceForTest()

		battery := availableBattery(7, 3)
		battery.ChargePercentage = 15
		batteryRepo.On("GetByID", ctx, int32(7)).Return(battery, nil)
		stationRepo.On("GetByID", ctx, int32(3)).Return(activeStation(3), nil)

		_, err := svc.StartRental(ctx, 1, 7, 3)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("BatteryAlreadyRented", func(t *testing.T) {
		svc, _, batteryRepo, stationRepo, _, _ := newRentalServiceForTest()

		battery := availableBattery(7, 3)
		battery.Status = domain.BatteryStatusRented
		batteryRepo.On("GetByID", ctx, int32(7)).Return(battery, nil)
		stationRepo.On("GetByID", ctx, int32(3)).Return(activeStation(3), nil)

		_, err := svc.StartRental(ctx, 1, 7, 3)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("BatteryAtDifferentStation", func(t *testing.T) {
		svc, _, batteryRepo, stationRepo, _, _ := newRentalServiceForTest()

		batteryRepo.On("GetByID", ctx, int32(7)).Return(availableBattery(7, 9), nil)
		stationRepo.On("GetByID", ctx, int32(3)).Return(activeStation(3), nil)

		_, err := svc.StartRental(ctx, 1, 7, 3)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("StationInMaintenance", func(t *testing.T) {
		svc, _, batteryRepo, stationRepo, _, _ := newRentalServiceForTest()

		station := activeStation(3)
		station.MaintenanceMode = true
		batteryRepo.On("GetByID", ctx, int32(7)).Return(availableBattery(7, 3), nil)
		stationRepo.On("GetByID", ctx, int32(3)).Return(station, nil)

		_, err := svc.StartRental(ctx, 1, 7, 3)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("BatteryNotFound", func(t *testing.T) {
		svc, _, batteryRepo, _, _, _ := newRentalServiceForTest()

		batteryRepo.On("GetByID", ctx, int32(7)).Return(nil, domain.NotFoundf("battery 7 not found"))

		_, err := svc.StartRental(ctx, 1, 7, 3)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ConcurrentStartLosesSwap", func(t *testing.T) {
		svc, rentalRepo, batteryRepo, stationRepo, _, _ := newRentalServiceForTest()

		batteryRepo.On("GetByID", ctx, int32(7)).Return(availableBattery(7, 3), nil)
		stationRepo.On("GetByID", ctx, int32(3)).Return(activeStation(3), nil)
		rentalRepo.On("Start", ctx, mock.AnythingOfType("*domain.Rental")).
			Return(domain.Conflictf("battery 7 was taken"))

		_, err := svc.StartRental(ctx, 1, 7, 3)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestEndRental(t *testing.T) {
	ctx := context.Background()

	openRental := func() *domain.Rental {
		return &domain.Rental{
			ID:              11,
			UserID:          1,
			BatteryID:       7,
			PickupStationID: 3,
			StartTime:       time.Now().Add(-2*time.Hour - 15*time.Minute),
			HourlyRate:      25,
			BaseCost:        50,
			Status:          domain.RentalStatusActive,
			PaymentStatus:   domain.RentalPaymentPending,
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, rentalRepo, _, stationRepo, userRepo, emailSvc := newRentalServiceForTest()

		rentalRepo.On("GetByID", ctx, int32(11)).Return(openRental(), nil)
		stationRepo.On("GetByID", ctx, int32(4)).Return(activeStation(4), nil)
		rentalRepo.On("Complete", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "jane@example.com", FullName: "Jane"}, nil)
		emailSvc.On("SendRentalReceipt", ctx, "jane@example.com", "Jane", mock.AnythingOfType("*domain.Rental")).Return(nil)

		rental, err := svc.EndRental(ctx, 1, 11, 4)
		assert.NoError(t, err)
		assert.NotNil(t, rental.EndTime)
		assert.Equal(t, int32(4), *rental.ReturnStationID)
		// 2h15m bills as 3 hours: 50 + 3*25
		assert.NotNil(t, rental.TotalCost)
		assert.Equal(t, 125.0, *rental.TotalCost)
		rentalRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("AlreadyCompleted", func(t *testing.T) {
		svc, rentalRepo, _, _, _, _ := newRentalServiceForTest()

		rental := openRental()
		rental.Status = domain.RentalStatusCompleted
		rentalRepo.On("GetByID", ctx, int32(11)).Return(rental, nil)

		_, err := svc.EndRental(ctx, 1, 11, 4)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("OverdueStillReturnable", func(t *testing.T) {
		svc, rentalRepo, _, stationRepo, userRepo, emailSvc := newRentalServiceForTest()

		rental := openRental()
		rental.Status = domain.RentalStatusOverdue
		rentalRepo.On("GetByID", ctx, int32(11)).Return(rental, nil)
		stationRepo.On("GetByID", ctx, int32(4)).Return(activeStation(4), nil)
		rentalRepo.On("Complete", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "jane@example.com", FullName: "Jane"}, nil)
		emailSvc.On("SendRentalReceipt", ctx, "jane@example.com", "Jane", mock.Anything).Return(nil)

		_, err := svc.EndRental(ctx, 1, 11, 4)
		assert.NoError(t, err)
	})

	t.Run("WrongUser", func(t *testing.T) {
		svc, rentalRepo, _, _, _, _ := newRentalServiceForTest()

		rentalRepo.On("GetByID", ctx, int32(11)).Return(openRental(), nil)

		_, err := svc.EndRental(ctx, 2, 11, 4)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("EmailFailureDoesNotFailReturn", func(t *testing.T) {
		svc, rentalRepo, _, stationRepo, userRepo, emailSvc := newRentalServiceForTest()

		rentalRepo.On("GetByID", ctx, int32(11)).Return(openRental(), nil)
		stationRepo.On("GetByID", ctx, int32(4)).Return(activeStation(4), nil)
		rentalRepo.On("Complete", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "jane@example.com", FullName: "Jane"}, nil)
		emailSvc.On("SendRentalReceipt", ctx, "jane@example.com", "Jane", mock.Anything).
			Return(assert.AnError)

		_, err := svc.EndRental(ctx, 1, 11, 4)
		assert.NoError(t, err)
	})
}

func TestCancelRental(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, rentalRepo, _, _, _, _ := newRentalServiceForTest()

		rental := &domain.Rental{ID: 11, UserID: 1, Status: domain.RentalStatusActive}
		rentalRepo.On("GetByID", ctx, int32(11)).Return(rental, nil)
		rentalRepo.On("Cancel", ctx, rental).Return(nil)

		_, err := svc.CancelRental(ctx, 1, 11)
		assert.NoError(t, err)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("OverdueNotCancellable", func(t *testing.T) {
		svc, rentalRepo, _, _, _, _ := newRentalServiceForTest()

		rental := &domain.Rental{ID: 11, UserID: 1, Status: domain.RentalStatusOverdue}
		rentalRepo.On("GetByID", ctx, int32(11)).Return(rental, nil)

		_, err := svc.CancelRental(ctx, 1, 11)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestGetRental(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminSeesAnyRental", func(t *testing.T) {
		svc, rentalRepo, _, _, _, _ := newRentalServiceForTest()

		rental := &domain.Rental{ID: 11, UserID: 1}
		rentalRepo.On("GetByID", ctx, int32(11)).Return(rental, nil)

		got, err := svc.GetRental(ctx, 99, true, 11)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), got.ID)
	})

	t.Run("OtherUserForbidden", func(t *testing.T) {
		svc, rentalRepo, _, _, _, _ := newRentalServiceForTest()

		rental := &domain.Rental{ID: 11, UserID: 1}
		rentalRepo.On("GetByID", ctx, int32(11)).Return(rental, nil)

		_, err := svc.GetRental(ctx, 99, false, 11)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
