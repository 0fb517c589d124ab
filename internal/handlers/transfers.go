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

// Transferer defines the interface that the service must implement.
type Transferer interface {
	Create(ctx context.Context, senderUserID uuid.UUID, receiverPhone string, amount int64, description string) (*models.TransferRequestDB, error)
	Confirm(ctx context.Context, receiverUserID, transferID uuid.UUID) (*models.TransferRequestDB, error)
	Reject(ctx context.Context, receiverUserID, transferID uuid.UUID) (*models.TransferRequestDB, error)
	Get(ctx context.Context, userID, transferID uuid.UUID) (*models.TransferRequestDB, error)
}

// CreateTransferRequest represents the JSON body for opening a transfer
// swagger:model CreateTransferRequest
type CreateTransferRequest struct {
	// Receiver phone number
	// required: true
	// default: 09121112233
	ReceiverPhoneNumber string `json:"receiver_phone_number"`

	// Amount in rials
	// required: true
	// default: 50000
	Amount int64 `json:"amount"`

	// Description
	Description string `json:"description"`
}

// TransferResponse represents a transfer request
// swagger:model TransferResponse
type TransferResponse struct {
	// Transfer ID
	TransferID string `json:"transfer_id"`

	// Transfer reference code
	// default: WT26010212345678
	ReferenceCode string `json:"reference_code"`

	// Amount in rials
	Amount int64 `json:"amount"`

	// Status: pending, success, rejected or expired
	Status string `json:"status"`

	// Description
	Description string `json:"description,omitempty"`

	// Confirmation deadline
	ExpiresAt time.Time `json:"expires_at"`
}

func newTransferResponse(t *models.TransferRequestDB) TransferResponse {
	return TransferResponse{
		TransferID:    t.TransferID.String(),
		ReferenceCode: t.ReferenceCode,
		Amount:        t.Amount,
		Status:        string(t.Status),
		Description:   t.Description,
		ExpiresAt:     t.ExpiresAt,
	}
}

// NewCreateTransferHandler returns an HTTP handler opening a transfer.
// @Summary Create a transfer
// @Description Opens a transfer to the user owning the given phone number. The amount is reserved on the sender's cash wallet until the receiver confirms or rejects.
// @Tags transfer
// @Accept json
// @Produce json
// @Param createTransferRequest body handlers.CreateTransferRequest true "Transfer request"
// @Success 201 {object} handlers.TransferResponse "Transfer created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Receiver not found"
// @Failure 422 {object} handlers.ErrorResponse "Insufficient funds"
// @Router /transfers [post]
// @Security BearerAuth
func NewCreateTransferHandler(svc Transferer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		var req CreateTransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Amount <= 0 {
			writeError(w, http.StatusBadRequest, "Amount must be positive")
			return
		}

		transfer, err := svc.Create(r.Context(), userID, req.ReceiverPhoneNumber, req.Amount, req.Description)
		if err != nil {
			switch err {
			case services.ErrReceiverNotFound:
				writeError(w, http.StatusNotFound, "Receiver not found")
			case services.ErrTransferToSelf:
				writeError(w, http.StatusBadRequest, "Cannot transfer to own wallet")
			case services.ErrWalletNotFound, services.ErrTransferNotCash:
				writeError(w, http.StatusBadRequest, "Sender has no cash wallet")
			case services.ErrInsufficientFunds:
				writeError(w, http.StatusUnprocessableEntity, "Insufficient funds")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, newTransferResponse(transfer))
	}
}

// NewConfirmTransferHandler returns an HTTP handler settling a transfer.
// @Summary Confirm a transfer
// @Description Settles a pending transfer into the authenticated receiver's cash wallet.
// @Tags transfer
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} handlers.TransferResponse "Transfer settled"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Transfer addressed to another user"
// @Failure 404 {object} handlers.ErrorResponse "Transfer not found"
// @Failure 409 {object} handlers.ErrorResponse "Transfer already resolved"
// @Failure 410 {object} handlers.ErrorResponse "Transfer expired"
// @Router /transfers/{transferID}/confirm [post]
// @Security BearerAuth
func NewConfirmTransferHandler(svc Transferer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		transferID, err := uuid.Parse(chi.URLParam(r, "transferID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid transfer ID")
			return
		}

		transfer, err := svc.Confirm(r.Context(), userID, transferID)
		if err != nil {
			writeTransferError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newTransferResponse(transfer))
	}
}

// NewRejectTransferHandler returns an HTTP handler declining a transfer.
// @Summary Reject a transfer
// @Description Declines a pending transfer and releases the sender's reservation.
// @Tags transfer
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} handlers.TransferResponse "Transfer rejected"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Transfer addressed to another user"
// @Failure 404 {object} handlers.ErrorResponse "Transfer not found"
// @Failure 409 {object} handlers.ErrorResponse "Transfer already resolved"
// @Router /transfers/{transferID}/reject [post]
// @Security BearerAuth
func NewRejectTransferHandler(svc Transferer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		transferID, err := uuid.Parse(chi.URLParam(r, "transferID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid transfer ID")
			return
		}

		transfer, err := svc.Reject(r.Context(), userID, transferID)
		if err != nil {
			writeTransferError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newTransferResponse(transfer))
	}
}

// NewGetTransferHandler returns an HTTP handler reading one transfer.
// @Summary Get a transfer
// @Description Returns a transfer visible to the authenticated user: its sender or its receiver.
// @Tags transfer
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} handlers.TransferResponse "Transfer"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Transfer involves another user"
// @Failure 404 {object} handlers.ErrorResponse "Transfer not found"
// @Router /transfers/{transferID} [get]
// @Security BearerAuth
func NewGetTransferHandler(svc Transferer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		transferID, err := uuid.Parse(chi.URLParam(r, "transferID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid transfer ID")
			return
		}

		transfer, err := svc.Get(r.Context(), userID, transferID)
		if err != nil {
			writeTransferError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newTransferResponse(transfer))
	}
}

func writeTransferError(w http.ResponseWriter, err error) {
	switch err {
	case services.ErrTransferNotFound:
		writeError(w, http.StatusNotFound, "Transfer not found")
	case services.ErrTransferForbidden:
		writeError(w, http.StatusForbidden, "Transfer involves another user")
	case services.ErrTransferNotPending:
		writeError(w, http.StatusConflict, "Transfer already resolved")
	case services.ErrTransferExpired:
		writeError(w, http.StatusGone, "Transfer expired")
	case services.ErrInsufficientFunds:
		writeError(w, http.StatusUnprocessableEntity, "Insufficient funds")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// RegisterTransferHandlers registers the transfer routes.
func RegisterTransferHandlers(r chi.Router, create, confirm, reject, get http.HandlerFunc) {
	r.Post("/transfers", create)
	r.Post("/transfers/{transferID}/confirm", confirm)
	r.Post("/transfers/{transferID}/reject", reject)
	r.Get("/transfers/{transferID}", get)
}
