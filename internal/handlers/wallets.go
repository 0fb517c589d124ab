package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
)

// WalletLister defines the interface that the service must implement.
type WalletLister interface {
	ListWallets(ctx context.Context, userID uuid.UUID) ([]models.WalletDB, error)
}

// WalletResponse represents one wallet of the user
// swagger:model WalletResponse
type WalletResponse struct {
	// Wallet ID
	WalletID string `json:"wallet_id"`

	// External wallet number
	// default: 601234567890
	WalletNumber string `json:"wallet_number"`

	// Wallet kind: cash, credit, cashback or merchant_gateway
	Kind string `json:"kind"`

	// Total balance in rials
	Balance int64 `json:"balance"`

	// Amount reserved for pending obligations
	ReservedBalance int64 `json:"reserved_balance"`

	// Spendable balance: total minus reserved
	AvailableBalance int64 `json:"available_balance"`
}

// WalletsResponse represents the list of the user's wallets
// swagger:model WalletsResponse
type WalletsResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// NewListWalletsHandler returns an HTTP handler listing the user's wallets.
// @Summary List wallets
// @Description Returns all wallets of the authenticated user with their balances.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.WalletsResponse "User wallets"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /wallets [get]
// @Security BearerAuth
func NewListWalletsHandler(svc WalletLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		wallets, err := svc.ListWallets(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list wallets", "user_id", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := WalletsResponse{Wallets: make([]WalletResponse, 0, len(wallets))}
		for i := range wallets {
			resp.Wallets = append(resp.Wallets, WalletResponse{
				WalletID:         wallets[i].WalletID.String(),
				WalletNumber:     wallets[i].WalletNumber,
				Kind:             string(wallets[i].Kind),
				Balance:          wallets[i].Balance,
				ReservedBalance:  wallets[i].ReservedBalance,
				AvailableBalance: wallets[i].AvailableBalance(),
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterListWalletsHandler registers the wallet list route.
func RegisterListWalletsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/wallets", h)
}
