package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListWalletsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	cashWalletID := uuid.New()
	creditWalletID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockWalletLister(ctrl)
		mockSvc.EXPECT().
			ListWallets(gomock.Any(), userID).
			Return([]models.WalletDB{
				{
					WalletID:        cashWalletID,
					UserID:          userID,
					Kind:            models.WalletKindCash,
					Balance:         150000,
					ReservedBalance: 50000,
					WalletNumber:    "101234567890",
				},
				{
					WalletID:     creditWalletID,
					UserID:       userID,
					Kind:         models.WalletKindCredit,
					Balance:      200000,
					WalletNumber: "201234567890",
				},
			}, nil)

		handler := NewListWalletsHandler(mockSvc, newAuthedTokener(ctrl, userID))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/wallets", nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp WalletsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Wallets, 2)
		assert.Equal(t, "cash", resp.Wallets[0].Kind)
		assert.Equal(t, int64(150000), resp.Wallets[0].Balance)
		assert.Equal(t, int64(50000), resp.Wallets[0].ReservedBalance)
		assert.Equal(t, int64(100000), resp.Wallets[0].AvailableBalance)
		assert.Equal(t, "credit", resp.Wallets[1].Kind)
		assert.Equal(t, int64(200000), resp.Wallets[1].AvailableBalance)
	})

	t.Run("unauthorized", func(t *testing.T) {
		handler := NewListWalletsHandler(NewMockWalletLister(ctrl), newDeniedTokener(ctrl))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/wallets", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockWalletLister(ctrl)
		mockSvc.EXPECT().
			ListWallets(gomock.Any(), userID).
			Return(nil, errors.New("database failure"))

		handler := NewListWalletsHandler(mockSvc, newAuthedTokener(ctrl, userID))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/wallets", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
