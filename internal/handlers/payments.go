package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/services"
)

// Payer defines the interface that the service must implement.
type Payer interface {
	CreateRequest(ctx context.Context, merchantUserID uuid.UUID, amount int64, description string) (*models.PaymentRequestDB, error)
	Get(ctx context.Context, referenceCode string) (*models.PaymentRequestDB, error)
	Pay(ctx context.Context, payerUserID uuid.UUID, referenceCode string, kind models.WalletKind, otpCode string) (*models.PaymentRequestDB, error)
}

// CreatePaymentRequest represents the JSON body for opening a payment request
// swagger:model CreatePaymentRequest
type CreatePaymentRequest struct {
	// Amount in rials
	// required: true
	// default: 250000
	Amount int64 `json:"amount"`

	// Description
	Description string `json:"description"`
}

// PayRequest represents the JSON body for paying a payment request
// swagger:model PayRequest
type PayRequest struct {
	// Paying wallet kind: cash or credit
	// required: true
	// default: cash
	WalletKind string `json:"wallet_kind"`

	// One-time code sent to the payer's phone
	// required: true
	// default: 123456
	OTPCode string `json:"otp_code"`
}

// PaymentRequestResponse represents a payment request
// swagger:model PaymentRequestResponse
type PaymentRequestResponse struct {
	// Payment request reference code
	// default: PR26010212345678
	ReferenceCode string `json:"reference_code"`

	// Amount in rials
	Amount int64 `json:"amount"`

	// Status: created, completed or expired
	Status string `json:"status"`

	// Description
	Description string `json:"description,omitempty"`

	// Payment deadline
	ExpiresAt time.Time `json:"expires_at"`

	// Completion time
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

func newPaymentRequestResponse(pr *models.PaymentRequestDB) PaymentRequestResponse {
	return PaymentRequestResponse{
		ReferenceCode: pr.ReferenceCode,
		Amount:        pr.Amount,
		Status:        string(pr.Status),
		Description:   pr.Description,
		ExpiresAt:     pr.ExpiresAt,
		PaidAt:        pr.PaidAt,
	}
}

// NewCreatePaymentHandler returns an HTTP handler opening a payment request.
// @Summary Create a payment request
// @Description Opens a payment request against the authenticated merchant's gateway wallet.
// @Tags payment
// @Accept json
// @Produce json
// @Param createPaymentRequest body handlers.CreatePaymentRequest true "Payment request"
// @Success 201 {object} handlers.PaymentRequestResponse "Payment request created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / not a merchant"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /payments [post]
// @Security BearerAuth
func NewCreatePaymentHandler(svc Payer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		var req CreatePaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Amount <= 0 {
			writeError(w, http.StatusBadRequest, "Amount must be positive")
			return
		}

		pr, err := svc.CreateRequest(r.Context(), userID, req.Amount, req.Description)
		if err != nil {
			switch err {
			case services.ErrPaymentNotMerchant:
				writeError(w, http.StatusBadRequest, "Payment requests require a merchant gateway wallet")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, newPaymentRequestResponse(pr))
	}
}

// NewGetPaymentHandler returns an HTTP handler reading one payment request.
// @Summary Get a payment request
// @Description Returns a payment request by reference code. A created request past its deadline reads as expired.
// @Tags payment
// @Produce json
// @Param referenceCode path string true "Payment request reference code"
// @Success 200 {object} handlers.PaymentRequestResponse "Payment request"
// @Failure 404 {object} handlers.ErrorResponse "Payment request not found"
// @Router /payments/{referenceCode} [get]
// @Security BearerAuth
func NewGetPaymentHandler(svc Payer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := authUserID(w, r, tokener); !ok {
			return
		}

		pr, err := svc.Get(r.Context(), chi.URLParam(r, "referenceCode"))
		if err != nil {
			switch err {
			case services.ErrPaymentNotFound:
				writeError(w, http.StatusNotFound, "Payment request not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newPaymentRequestResponse(pr))
	}
}

// NewPayHandler returns an HTTP handler paying a payment request.
// @Summary Pay a payment request
// @Description Pays a created request from the user's cash or credit wallet after OTP verification. A cash wallet moves funds immediately; a credit wallet places an authorization hold until the merchant settles.
// @Tags payment
// @Accept json
// @Produce json
// @Param referenceCode path string true "Payment request reference code"
// @Param payRequest body handlers.PayRequest true "Payment details"
// @Success 200 {object} handlers.PaymentRequestResponse "Payment accepted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized / invalid code"
// @Failure 404 {object} handlers.ErrorResponse "Payment request not found"
// @Failure 409 {object} handlers.ErrorResponse "Payment request not payable / hold already placed"
// @Failure 422 {object} handlers.ErrorResponse "Insufficient funds"
// @Router /payments/{referenceCode}/pay [post]
// @Security BearerAuth
func NewPayHandler(svc Payer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		var req PayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		pr, err := svc.Pay(r.Context(), userID, chi.URLParam(r, "referenceCode"), models.WalletKind(req.WalletKind), req.OTPCode)
		if err != nil {
			switch err {
			case services.ErrPaymentNotFound:
				writeError(w, http.StatusNotFound, "Payment request not found")
			case services.ErrPaymentNotPayable:
				writeError(w, http.StatusConflict, "Payment request is not payable")
			case services.ErrAuthorizationExists:
				writeError(w, http.StatusConflict, "An authorization hold is already placed")
			case services.ErrPaymentInvalidKind:
				writeError(w, http.StatusBadRequest, "Wallet kind must be cash or credit")
			case services.ErrWalletNotFound:
				writeError(w, http.StatusBadRequest, "Payer has no wallet of this kind")
			case services.ErrOTPInvalid:
				writeError(w, http.StatusUnauthorized, "Invalid or expired code")
			case services.ErrInsufficientFunds:
				writeError(w, http.StatusUnprocessableEntity, "Insufficient funds")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newPaymentRequestResponse(pr))
	}
}

// RegisterPaymentHandlers registers the payment routes.
func RegisterPaymentHandlers(r chi.Router, create, get, pay http.HandlerFunc) {
	r.Post("/payments", create)
	r.Get("/payments/{referenceCode}", get)
	r.Post("/payments/{referenceCode}/pay", pay)
}
