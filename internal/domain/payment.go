package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodMpesa        PaymentMethod = "mpesa"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodPoints       PaymentMethod = "points"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMpesa, PaymentMethodCard, PaymentMethodCash,
		PaymentMethodPoints, PaymentMethodBankTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed,
		PaymentStatusCancelled, PaymentStatusRefunded:
		return true
	}
	return false
}

type Payment struct {
	ID       int32  `json:"id"`
	UserID   int32  `json:"user_id"`
	RentalID *int32 `json:"rental_id,omitempty"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   PaymentMethod `json:"payment_method"`
	Status   PaymentStatus `json:"status"`
	// Reference is a uuid assigned at creation and quoted on receipts.
	Reference    string    `json:"reference"`
	MpesaReceipt *string   `json:"mpesa_receipt,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
