package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/services"
)

// OTPSender defines the interface that the service must implement.
type OTPSender interface {
	Send(ctx context.Context, phoneNumber, purpose string) error
}

// PhoneReader resolves the phone number of the authenticated user.
type PhoneReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// OTPResponse represents a successful OTP send response
// swagger:model OTPResponse
type OTPResponse struct {
	// Success message
	// default: Code sent
	Message string `json:"message"`
}

// NewSendOTPHandler returns an HTTP handler issuing a payment OTP to the
// authenticated user's phone.
// @Summary Send a payment confirmation code
// @Description Sends a one-time code to the user's registered phone number. The code is required by the pay endpoint.
// @Tags otp
// @Produce json
// @Success 200 {object} handlers.OTPResponse "Code sent"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /otp/send [post]
// @Security BearerAuth
func NewSendOTPHandler(svc OTPSender, users PhoneReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if err != nil || user == nil {
			logger.Log.Errorw("failed to resolve user for otp", "user_id", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := svc.Send(r.Context(), user.PhoneNumber, services.OTPPurposePayment); err != nil {
			logger.Log.Errorw("failed to send otp", "user_id", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, OTPResponse{Message: "Code sent"})
	}
}

// RegisterSendOTPHandler registers the OTP send route.
func RegisterSendOTPHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/otp/send", h)
}
