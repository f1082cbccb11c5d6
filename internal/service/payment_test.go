package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecolithswap-backend/internal/domain"
)

func newPaymentServiceForTest() (PaymentService, *MockPaymentRepository, *MockRentalRepository, *MockStatsRepository) {
	paymentRepo := new(MockPaymentRepository)
	rentalRepo := new(MockRentalRepository)
	statsRepo := new(MockStatsRepository)
	svc := NewPaymentService(paymentRepo, rentalRepo, statsRepo)
	return svc, paymentRepo, rentalRepo, statsRepo
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()
	rentalID := int32(11)

	t.Run("MpesaStaysPending", func(t *testing.T) {
		svc, paymentRepo, rentalRepo, _ := newPaymentServiceForTest()

		rentalRepo.On("GetByID", ctx, rentalID).Return(&domain.Rental{
			ID: rentalID, UserID: 1, PaymentStatus: domain.RentalPaymentPending,
		}, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)

		payment, err := svc.CreatePayment(ctx, 1, &rentalID, 125, domain.PaymentMethodMpesa)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, payment.Status)
		assert.Equal(t, "KES", payment.Currency)
		assert.NotEmpty(t, payment.Reference)
	})

	t.Run("CashSettlesAndFlagsRentalPaid", func(t *testing.T) {
		svc, paymentRepo, rentalRepo, _ := newPaymentServiceForTest()

		rentalRepo.On("GetByID", ctx, rentalID).Return(&domain.Rental{
			ID: rentalID, UserID: 1, PaymentStatus: domain.RentalPaymentPending,
		}, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
		rentalRepo.On("UpdatePaymentStatus", ctx, rentalID, domain.RentalPaymentCompleted).Return(nil)

		payment, err := svc.CreatePayment(ctx, 1, &rentalID, 125, domain.PaymentMethodCash)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("PointsRequireSufficientBalance", func(t *testing.T) {
		svc, _, rentalRepo, statsRepo := newPaymentServiceForTest()

		rentalRepo.On("GetByID", ctx, rentalID).Return(&domain.Rental{
			ID: rentalID, UserID: 1, PaymentStatus: domain.RentalPaymentPending,
		}, nil)
		statsRepo.On("PointsBalance", ctx, int32(1)).Return(int32(100), nil)

		_, err := svc.CreatePayment(ctx, 1, &rentalID, 125, domain.PaymentMethodPoints)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("AlreadyPaidRental", func(t *testing.T) {
		svc, _, rentalRepo, _ := newPaymentServiceForTest()

		rentalRepo.On("GetByID", ctx, rentalID).Return(&domain.Rental{
			ID: rentalID, UserID: 1, PaymentStatus: domain.RentalPaymentCompleted,
		}, nil)

		_, err := svc.CreatePayment(ctx, 1, &rentalID, 125, domain.PaymentMethodMpesa)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("SomeoneElsesRental", func(t *testing.T) {
		svc, _, rentalRepo, _ := newPaymentServiceForTest()

		rentalRepo.On("GetByID", ctx, rentalID).Return(&domain.Rental{
			ID: rentalID, UserID: 2, PaymentStatus: domain.RentalPaymentPending,
		}, nil)

		_, err := svc.CreatePayment(ctx, 1, &rentalID, 125, domain.PaymentMethodMpesa)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		svc, _, _, _ := newPaymentServiceForTest()

		_, err := svc.CreatePayment(ctx, 1, nil, 0, domain.PaymentMethodCash)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("BadMethod", func(t *testing.T) {
		svc, _, _, _ := newPaymentServiceForTest()

		_, err := svc.CreatePayment(ctx, 1, nil, 10, "barter")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()
	rentalID := int32(11)
	receipt := "QA12B3C4D5"

	t.Run("MpesaConfirmationFlagsRental", func(t *testing.T) {
		svc, paymentRepo, rentalRepo, _ := newPaymentServiceForTest()

		pending := &domain.Payment{ID: 8, UserID: 1, RentalID: &rentalID, Status: domain.PaymentStatusPending}
		completed := &domain.Payment{ID: 8, UserID: 1, RentalID: &rentalID, Status: domain.PaymentStatusCompleted, MpesaReceipt: &receipt}

		paymentRepo.On("GetByID", ctx, int32(8)).Return(pending, nil).Once()
		paymentRepo.On("UpdateStatus", ctx, int32(8), domain.PaymentStatusCompleted, &receipt).Return(nil)
		rentalRepo.On("UpdatePaymentStatus", ctx, rentalID, domain.RentalPaymentCompleted).Return(nil)
		paymentRepo.On("GetByID", ctx, int32(8)).Return(completed, nil).Once()

		payment, err := svc.UpdatePaymentStatus(ctx, 8, domain.PaymentStatusCompleted, &receipt)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("DoubleCompleteConflicts", func(t *testing.T) {
		svc, paymentRepo, _, _ := newPaymentServiceForTest()

		done := &domain.Payment{ID: 8, Status: domain.PaymentStatusCompleted}
		paymentRepo.On("GetByID", ctx, int32(8)).Return(done, nil)

		_, err := svc.UpdatePaymentStatus(ctx, 8, domain.PaymentStatusCompleted, nil)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
