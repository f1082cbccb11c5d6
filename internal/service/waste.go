package service

import (
	"context"
	"strings"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/logger"
	"ecolithswap-backend/internal/pricing"
	"ecolithswap-backend/internal/repository"
)

type wasteService struct {
	wasteRepo   repository.WasteLogRepository
	stationRepo repository.StationRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewWasteService(
	wasteRepo repository.WasteLogRepository,
	stationRepo repository.StationRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) WasteService {
	return &wasteService{
		wasteRepo:   wasteRepo,
		stationRepo: stationRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

func (s *wasteService) SubmitWaste(ctx context.Context, userID, stationID int32, wasteType domain.WasteType, weightKg float64) (*domain.WasteLog, error) {
	if weightKg <= 0 {
		return nil, domain.Validationf("weight must be positive, got %f", weightKg)
	}
	// Unrecognized categories are accepted and credited at the
	// fallback rate, but stored as OTHER.
	wasteType = domain.WasteType(strings.ToUpper(string(wasteType)))
	if !wasteType.Valid() {
		wasteType = domain.WasteTypeOther
	}

	if _, err := s.stationRepo.GetByID(ctx, stationID); err != nil {
		return nil, err
	}

	log := &domain.WasteLog{
		UserID:       userID,
		StationID:    stationID,
		WasteType:    wasteType,
		WeightKg:     weightKg,
		PointsEarned: pricing.WasteCredits(wasteType, weightKg),
		Verified:     false,
	}
	if err := s.wasteRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	logger.Info("Waste submitted", "waste_log_id", log.ID, "user_id", userID, "type", wasteType, "weight_kg", weightKg, "points", log.PointsEarned)
	return log, nil
}

func (s *wasteService) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.WasteLog, int32, error) {
	return s.wasteRepo.ListByUser(ctx, userID, page, pageSize)
}

func (s *wasteService) ListUnverified(ctx context.Context, page, pageSize int32) ([]domain.WasteLog, int32, error) {
	return s.wasteRepo.ListUnverified(ctx, page, pageSize)
}

func (s *wasteService) VerifyWaste(ctx context.Context, logID, verifierID int32) (*domain.WasteLog, error) {
	if err := s.wasteRepo.Verify(ctx, logID, verifierID); err != nil {
		return nil, err
	}

	log, err := s.wasteRepo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}

	logger.Info("Waste verified", "waste_log_id", logID, "verified_by", verifierID, "points", log.PointsEarned)

	if user, uerr := s.userRepo.GetByID(ctx, log.UserID); uerr == nil {
		if eerr := s.emailSvc.SendWasteVerifiedNotification(ctx, user.Email, user.FullName, log); eerr != nil {
			logger.Warn("Failed to send verification notice", "waste_log_id", logID, "error", eerr)
		}
	}

	return log, nil
}
