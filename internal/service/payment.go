package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/logger"
	"ecolithswap-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	rentalRepo  repository.RentalRepository
	statsRepo   repository.StatsRepository
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	rentalRepo repository.RentalRepository,
	statsRepo repository.StatsRepository,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		rentalRepo:  rentalRepo,
		statsRepo:   statsRepo,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, userID int32, rentalID *int32, amount float64, method domain.PaymentMethod) (*domain.Payment, error) {
	if amount <= 0 {
		return nil, domain.Validationf("amount must be positive, got %f", amount)
	}
	if !method.Valid() {
		return nil, domain.Validationf("invalid payment method %q", method)
	}

	if rentalID != nil {
		rental, err := s.rentalRepo.GetByID(ctx, *rentalID)
		if err != nil {
			return nil, err
		}
		if rental.UserID != userID {
			return nil, fmt.Errorf("rental %d belongs to another user: %w", *rentalID, domain.ErrForbidden)
		}
		if rental.PaymentStatus == domain.RentalPaymentCompleted {
			return nil, domain.Conflictf("rental %d is already paid", *rentalID)
		}
	}

	// Points redeem against the verified-waste balance.
	if method == domain.PaymentMethodPoints {
		balance, err := s.statsRepo.PointsBalance(ctx, userID)
		if err != nil {
			return nil, err
		}
		if float64(balance) < amount {
			return nil, domain.Conflictf("insufficient points: balance %d, needed %.0f", balance, amount)
		}
	}

	// Cash and points settle immediately; mpesa, card and bank
	// transfers stay pending until the gateway callback confirms them.
	status := domain.PaymentStatusPending
	if method == domain.PaymentMethodCash || method == domain.PaymentMethodPoints {
		status = domain.PaymentStatusCompleted
	}

	payment := &domain.Payment{
		UserID:    userID,
		RentalID:  rentalID,
		Amount:    amount,
		Currency:  "KES",
		Method:    method,
		Status:    status,
		Reference: uuid.NewString(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if rentalID != nil && status == domain.PaymentStatusCompleted {
		if err := s.rentalRepo.UpdatePaymentStatus(ctx, *rentalID, domain.RentalPaymentCompleted); err != nil {
			logger.Warn("Failed to flag rental paid", "rental_id", *rentalID, "error", err)
		}
	}

	logger.Info("Payment created", "payment_id", payment.ID, "user_id", userID, "method", method, "status", status, "amount", amount)
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Payment, int32, error) {
	return s.paymentRepo.ListByUser(ctx, userID, page, pageSize)
}

func (s *paymentService) UpdatePaymentStatus(ctx context.Context, paymentID int32, status domain.PaymentStatus, mpesaReceipt *string) (*domain.Payment, error) {
	if !status.Valid() {
		return nil, domain.Validationf("invalid payment status %q", status)
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentStatusCompleted && status == domain.PaymentStatusCompleted {
		return nil, domain.Conflictf("payment %d is already completed", paymentID)
	}

	if err := s.paymentRepo.UpdateStatus(ctx, paymentID, status, mpesaReceipt); err != nil {
		return nil, err
	}

	if payment.RentalID != nil {
		switch status {
		case domain.PaymentStatusCompleted:
			if err := s.rentalRepo.UpdatePaymentStatus(ctx, *payment.RentalID, domain.RentalPaymentCompleted); err != nil {
				logger.Warn("Failed to flag rental paid", "rental_id", *payment.RentalID, "error", err)
			}
		case domain.PaymentStatusFailed:
			if err := s.rentalRepo.UpdatePaymentStatus(ctx, *payment.RentalID, domain.RentalPaymentFailed); err != nil {
				logger.Warn("Failed to flag rental payment failed", "rental_id", *payment.RentalID, "error", err)
			}
		case domain.PaymentStatusRefunded:
			if err := s.rentalRepo.UpdatePaymentStatus(ctx, *payment.RentalID, domain.RentalPaymentRefunded); err != nil {
				logger.Warn("Failed to flag rental refunded", "rental_id", *payment.RentalID, "error", err)
			}
		}
	}

	return s.paymentRepo.GetByID(ctx, paymentID)
}
