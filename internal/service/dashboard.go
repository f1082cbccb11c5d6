package service

import (
	"context"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/repository"
)

type dashboardService struct {
	statsRepo repository.StatsRepository
}

func NewDashboardService(statsRepo repository.StatsRepository) DashboardService {
	return &dashboardService{statsRepo: statsRepo}
}

func (s *dashboardService) UserSummary(ctx context.Context, userID int32) (*domain.UserDashboard, error) {
	return s.statsRepo.UserSummary(ctx, userID)
}

func (s *dashboardService) AdminSummary(ctx context.Context) (*domain.AdminDashboard, error) {
	return s.statsRepo.AdminSummary(ctx)
}
