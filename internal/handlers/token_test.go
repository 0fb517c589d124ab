package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/jwt"
	"github.com/stretchr/testify/assert"
)

// newAuthedTokener returns a tokener resolving every request to userID.
func newAuthedTokener(ctrl *gomock.Controller, userID uuid.UUID) *MockTokener {
	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("token", nil).
		AnyTimes()
	tokener.EXPECT().
		GetClaims(gomock.Any(), "token").
		Return(&jwt.Claims{UserID: userID}, nil).
		AnyTimes()
	return tokener
}

// newDeniedTokener returns a tokener rejecting every request.
func newDeniedTokener(ctrl *gomock.Controller) *MockTokener {
	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("", errors.New("missing authorization header")).
		AnyTimes()
	return tokener
}

func TestAuthUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/wallets", nil)

		got, ok := authUserID(rr, req, newAuthedTokener(ctrl, userID))

		assert.True(t, ok)
		assert.Equal(t, userID, got)
	})

	t.Run("missing token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/wallets", nil)

		_, ok := authUserID(rr, req, newDeniedTokener(ctrl))

		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("bad claims", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		tokener.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("token", nil)
		tokener.EXPECT().
			GetClaims(gomock.Any(), "token").
			Return(nil, errors.New("token is expired"))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/wallets", nil)

		_, ok := authUserID(rr, req, tokener)

		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
