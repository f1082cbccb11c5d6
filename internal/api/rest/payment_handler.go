package rest

import (
	"net/http"

	"ecolithswap-backend/internal/service"
)

// PaymentHandler serves payment creation, history and status update
// endpoints.
type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	var req createPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	payment, err := h.payments.CreatePayment(r.Context(), claims.UserID, req.RentalID, req.Amount, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	page, pageSize := pagination(r)

	payments, total, err := h.payments.ListPayments(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: payments, Total: total, Page: page})
}

// UpdateStatus records the outcome of an external payment, such as an
// M-Pesa callback relayed by an operator.
func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req paymentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	payment, err := h.payments.UpdatePaymentStatus(r.Context(), id, req.Status, req.MpesaReceipt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
