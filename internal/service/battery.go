package service

import (
	"context"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/repository"
)

type batteryService struct {
	batteryRepo repository.BatteryRepository
	stationRepo repository.StationRepository
}

func NewBatteryService(batteryRepo repository.BatteryRepository, stationRepo repository.StationRepository) BatteryService {
	return &batteryService{batteryRepo: batteryRepo, stationRepo: stationRepo}
}

func (s *batteryService) AddBattery(ctx context.Context, b *domain.Battery) error {
	if b.SerialNumber == "" {
		return domain.Validationf("serial number is required")
	}
	if !b.Status.Valid() {
		return domain.Validationf("invalid battery status %q", b.Status)
	}
	if !b.Health.Valid() {
		return domain.Validationf("invalid battery health %q", b.Health)
	}
	if b.ChargePercentage < 0 || b.ChargePercentage > 100 {
		return domain.Validationf("charge percentage %d out of range", b.ChargePercentage)
	}
	if b.CurrentStationID != nil {
		if _, err := s.stationRepo.GetByID(ctx, *b.CurrentStationID); err != nil {
			return err
		}
	}
	return s.batteryRepo.Create(ctx, b)
}

func (s *batteryService) GetBattery(ctx context.Context, id int32) (*domain.Battery, error) {
	return s.batteryRepo.GetByID(ctx, id)
}

func (s *batteryService) UpdateBattery(ctx context.Context, b *domain.Battery) error {
	if !b.Status.Valid() {
		return domain.Validationf("invalid battery status %q", b.Status)
	}
	if !b.Health.Valid() {
		return domain.Validationf("invalid battery health %q", b.Health)
	}
	return s.batteryRepo.Update(ctx, b)
}

func (s *batteryService) DeleteBattery(ctx context.Context, id int32) error {
	b, err := s.batteryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status == domain.BatteryStatusRented {
		return domain.Conflictf("battery %d has an open rental", id)
	}
	return s.batteryRepo.Delete(ctx, id)
}

func (s *batteryService) UpdateBatteryStatus(ctx context.Context, id int32, status domain.BatteryStatus, chargePercentage int32) error {
	if !status.Valid() {
		return domain.Validationf("invalid battery status %q", status)
	}
	if chargePercentage < 0 || chargePercentage > 100 {
		return domain.Validationf("charge percentage %d out of range", chargePercentage)
	}
	b, err := s.batteryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Rented batteries transition through EndRental, not manual edits.
	if b.Status == domain.BatteryStatusRented && status != domain.BatteryStatusRented {
		return domain.Conflictf("battery %d has an open rental", id)
	}
	return s.batteryRepo.UpdateStatus(ctx, id, status, chargePercentage)
}

func (s *batteryService) ListByStation(ctx context.Context, stationID int32) ([]domain.Battery, error) {
	if _, err := s.stationRepo.GetByID(ctx, stationID); err != nil {
		return nil, err
	}
	return s.batteryRepo.ListByStation(ctx, stationID)
}

func (s *batteryService) ListBatteries(ctx context.Context, status string, page, pageSize int32) ([]domain.Battery, int32, error) {
	return s.batteryRepo.List(ctx, status, page, pageSize)
}
