package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecolithswap-backend/internal/domain"
)

func newWasteServiceForTest() (WasteService, *MockWasteLogRepository, *MockStationRepository, *MockUserRepository, *MockEmailService) {
	wasteRepo := new(MockWasteLogRepository)
	stationRepo := new(MockStationRepository)
	userRepo := new(MockUserRepository)
	emailSvc := new(MockEmailService)
	svc := NewWasteService(wasteRepo, stationRepo, userRepo, emailSvc)
	return svc, wasteRepo, stationRepo, userRepo, emailSvc
}

func TestSubmitWaste(t *testing.T) {
	ctx := context.Background()

	t.Run("PETCreditedAtTen", func(t *testing.T) {
		svc, wasteRepo, stationRepo, _, _ := newWasteServiceForTest()

		stationRepo.On("GetByID", ctx, int32(3)).Return(&domain.Station{ID: 3}, nil)
		wasteRepo.On("Create", ctx, mock.AnythingOfType("*domain.WasteLog")).Return(nil)

		log, err := svc.SubmitWaste(ctx, 1, 3, "pet", 2.5)
		assert.NoError(t, err)
		assert.Equal(t, domain.WasteTypePET, log.WasteType)
		assert.Equal(t, int32(25), log.PointsEarned)
		assert.False(t, log.Verified)
	})

	t.Run("UnknownTypeStoredAsOther", func(t *testing.T) {
		svc, wasteRepo, stationRepo, _, _ := newWasteServiceForTest()

		stationRepo.On("GetByID", ctx, int32(3)).Return(&domain.Station{ID: 3}, nil)
		wasteRepo.On("Create", ctx, mock.AnythingOfType("*domain.WasteLog")).Return(nil)

		log, err := svc.SubmitWaste(ctx, 1, 3, "styrofoam-ish", 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.WasteTypeOther, log.WasteType)
		assert.Equal(t, int32(4), log.PointsEarned)
	})

	t.Run("NonPositiveWeight", func(t *testing.T) {
		svc, _, _, _, _ := newWasteServiceForTest()

		_, err := svc.SubmitWaste(ctx, 1, 3, "PET", 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("UnknownStation", func(t *testing.T) {
		svc, _, stationRepo, _, _ := newWasteServiceForTest()

		stationRepo.On("GetByID", ctx, int32(3)).Return(nil, domain.NotFoundf("station 3 not found"))

		_, err := svc.SubmitWaste(ctx, 1, 3, "PET", 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVerifyWaste(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, wasteRepo, _, userRepo, emailSvc := newWasteServiceForTest()

		verified := &domain.WasteLog{ID: 5, UserID: 1, WasteType: domain.WasteTypePET, PointsEarned: 25, Verified: true}
		wasteRepo.On("Verify", ctx, int32(5), int32(2)).Return(nil)
		wasteRepo.On("GetByID", ctx, int32(5)).Return(verified, nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "jane@example.com", FullName: "Jane"}, nil)
		emailSvc.On("SendWasteVerifiedNotification", ctx, "jane@example.com", "Jane", verified).Return(nil)

		log, err := svc.VerifyWaste(ctx, 5, 2)
		assert.NoError(t, err)
		assert.True(t, log.Verified)
		wasteRepo.AssertExpectations(t)
	})

	t.Run("SecondVerifyConflicts", func(t *testing.T) {
		svc, wasteRepo, _, _, _ := newWasteServiceForTest()

		wasteRepo.On("Verify", ctx, int32(5), int32(2)).
			Return(domain.Conflictf("waste log 5 already verified"))

		_, err := svc.VerifyWaste(ctx, 5, 2)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
