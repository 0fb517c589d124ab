package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/services"
)

// CreditResolver defines the interface that the service must implement.
type CreditResolver interface {
	Settle(ctx context.Context, merchantUserID, paymentRequestID uuid.UUID) (*models.CreditAuthorizationDB, error)
	Release(ctx context.Context, userID, paymentRequestID uuid.UUID) (*models.CreditAuthorizationDB, error)
}

// AuthorizationResponse represents a credit authorization hold
// swagger:model AuthorizationResponse
type AuthorizationResponse struct {
	// Authorization reference code
	// default: AUTH26010212345678
	ReferenceCode string `json:"reference_code"`

	// Held amount in rials
	Amount int64 `json:"amount"`

	// Status: active, settled, released or expired
	Status string `json:"status"`

	// Hold deadline
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func newAuthorizationResponse(auth *models.CreditAuthorizationDB) AuthorizationResponse {
	return AuthorizationResponse{
		ReferenceCode: auth.ReferenceCode,
		Amount:        auth.Amount,
		Status:        string(auth.Status),
		ExpiresAt:     auth.ExpiresAt,
	}
}

// NewSettleAuthorizationHandler returns an HTTP handler settling a hold.
// @Summary Settle a credit authorization
// @Description Moves the held amount from the payer's credit wallet to the merchant wallet and completes the payment request. Merchant only.
// @Tags credit
// @Produce json
// @Param paymentRequestID path string true "Payment request ID"
// @Success 200 {object} handlers.AuthorizationResponse "Authorization settled"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the merchant"
// @Failure 404 {object} handlers.ErrorResponse "No active authorization"
// @Failure 409 {object} handlers.ErrorResponse "Authorization no longer active"
// @Router /credit/{paymentRequestID}/settle [post]
// @Security BearerAuth
func NewSettleAuthorizationHandler(svc CreditResolver, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		paymentRequestID, err := uuid.Parse(chi.URLParam(r, "paymentRequestID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid payment request ID")
			return
		}

		auth, err := svc.Settle(r.Context(), userID, paymentRequestID)
		if err != nil {
			writeAuthorizationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newAuthorizationResponse(auth))
	}
}

// NewReleaseAuthorizationHandler returns an HTTP handler lifting a hold.
// @Summary Release a credit authorization
// @Description Lifts the hold without moving funds. Allowed for the merchant owning the payment request and for the payer holding the authorization.
// @Tags credit
// @Produce json
// @Param paymentRequestID path string true "Payment request ID"
// @Success 200 {object} handlers.AuthorizationResponse "Authorization released"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Authorization involves another user"
// @Failure 404 {object} handlers.ErrorResponse "No active authorization"
// @Failure 409 {object} handlers.ErrorResponse "Authorization no longer active"
// @Router /credit/{paymentRequestID}/release [post]
// @Security BearerAuth
func NewReleaseAuthorizationHandler(svc CreditResolver, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		paymentRequestID, err := uuid.Parse(chi.URLParam(r, "paymentRequestID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid payment request ID")
			return
		}

		auth, err := svc.Release(r.Context(), userID, paymentRequestID)
		if err != nil {
			writeAuthorizationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newAuthorizationResponse(auth))
	}
}

func writeAuthorizationError(w http.ResponseWriter, err error) {
	switch err {
	case services.ErrPaymentNotFound:
		writeError(w, http.StatusNotFound, "Payment request not found")
	case services.ErrAuthorizationNotFound:
		writeError(w, http.StatusNotFound, "No active authorization for this payment request")
	case services.ErrAuthorizationForbidden:
		writeError(w, http.StatusForbidden, "Authorization involves another user")
	case services.ErrAuthorizationNotActive:
		writeError(w, http.StatusConflict, "Authorization is no longer active")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// RegisterCreditHandlers registers the credit authorization routes.
func RegisterCreditHandlers(r chi.Router, settle, release http.HandlerFunc) {
	r.Post("/credit/{paymentRequestID}/settle", settle)
	r.Post("/credit/{paymentRequestID}/release", release)
}
