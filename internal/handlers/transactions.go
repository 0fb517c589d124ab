package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/services"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context, userID, walletID uuid.UUID, limit, offset int) ([]models.TransactionDB, error)
}

// TransactionResponse represents one ledger record
// swagger:model TransactionResponse
type TransactionResponse struct {
	// Transaction reference code
	// default: TRX26010212345678
	ReferenceCode string `json:"reference_code"`

	// Source wallet ID
	FromWalletID string `json:"from_wallet_id"`

	// Destination wallet ID
	ToWalletID string `json:"to_wallet_id"`

	// Amount in rials
	Amount int64 `json:"amount"`

	// Status
	Status string `json:"status"`

	// Purpose: transfer, payment or settlement
	Purpose string `json:"purpose"`

	// Payment request ID, when the movement settled a payment
	PaymentRequestID string `json:"payment_request_id,omitempty"`

	// Description
	Description string `json:"description,omitempty"`

	// Creation time
	CreatedAt time.Time `json:"created_at"`
}

// TransactionsResponse represents a page of wallet history
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// NewListTransactionsHandler returns an HTTP handler for wallet history.
// @Summary List wallet transactions
// @Description Returns the ledger history of a wallet the user owns, newest first.
// @Tags wallet
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Param limit query int false "Page size, default 50, max 100"
// @Param offset query int false "Page offset"
// @Success 200 {object} handlers.TransactionsResponse "Wallet history"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Wallet belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Router /wallets/{walletID}/transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		walletID, err := uuid.Parse(chi.URLParam(r, "walletID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid wallet ID")
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		txns, err := svc.ListTransactions(r.Context(), userID, walletID, limit, offset)
		if err != nil {
			switch err {
			case services.ErrWalletNotFound:
				writeError(w, http.StatusNotFound, "Wallet not found")
			case services.ErrWalletForbidden:
				writeError(w, http.StatusForbidden, "Wallet belongs to another user")
			default:
				logger.Log.Errorw("failed to list transactions", "wallet_id", walletID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		resp := TransactionsResponse{Transactions: make([]TransactionResponse, 0, len(txns))}
		for i := range txns {
			item := TransactionResponse{
				ReferenceCode: txns[i].ReferenceCode,
				FromWalletID:  txns[i].FromWalletID.String(),
				ToWalletID:    txns[i].ToWalletID.String(),
				Amount:        txns[i].Amount,
				Status:        string(txns[i].Status),
				Purpose:       string(txns[i].Purpose),
				Description:   txns[i].Description,
				CreatedAt:     txns[i].CreatedAt,
			}
			if txns[i].PaymentRequestID != nil {
				item.PaymentRequestID = txns[i].PaymentRequestID.String()
			}
			resp.Transactions = append(resp.Transactions, item)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterListTransactionsHandler registers the wallet history route.
func RegisterListTransactionsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/wallets/{walletID}/transactions", h)
}
