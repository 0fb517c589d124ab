package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/services"
	"github.com/stretchr/testify/assert"
)

func newCreditRouter(ctrl *gomock.Controller, svc CreditResolver, userID uuid.UUID) *chi.Mux {
	r := chi.NewRouter()
	tokener := newAuthedTokener(ctrl, userID)
	RegisterCreditHandlers(r,
		NewSettleAuthorizationHandler(svc, tokener),
		NewReleaseAuthorizationHandler(svc, tokener),
	)
	return r
}

func TestSettleAuthorizationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	merchantID := uuid.New()
	paymentRequestID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockCreditResolver)
		expectedCode int
	}{
		{
			name: "settled",
			mockSetup: func(m *MockCreditResolver) {
				m.EXPECT().
					Settle(gomock.Any(), merchantID, paymentRequestID).
					Return(&models.CreditAuthorizationDB{
						ReferenceCode: "AUTH26010212345678",
						Amount:        250000,
						Status:        models.AuthorizationStatusSettled,
					}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "caller is not the merchant",
			mockSetup: func(m *MockCreditResolver) {
				m.EXPECT().
					Settle(gomock.Any(), merchantID, paymentRequestID).
					Return(nil, services.ErrAuthorizationForbidden)
			},
			expectedCode: 403,
		},
		{
			name: "no active authorization",
			mockSetup: func(m *MockCreditResolver) {
				m.EXPECT().
					Settle(gomock.Any(), merchantID, paymentRequestID).
					Return(nil, services.ErrAuthorizationNotFound)
			},
			expectedCode: 404,
		},
		{
			name: "authorization no longer active",
			mockSetup: func(m *MockCreditResolver) {
				m.EXPECT().
					Settle(gomock.Any(), merchantID, paymentRequestID).
					Return(nil, services.ErrAuthorizationNotActive)
			},
			expectedCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCreditResolver(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/credit/"+paymentRequestID.String()+"/settle", nil)
			newCreditRouter(ctrl, mockSvc, merchantID).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp AuthorizationResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "settled", resp.Status)
				assert.Equal(t, int64(250000), resp.Amount)
			}
		})
	}

	t.Run("invalid payment request id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/credit/not-a-uuid/settle", nil)
		newCreditRouter(ctrl, NewMockCreditResolver(ctrl), merchantID).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestReleaseAuthorizationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payerID := uuid.New()
	paymentRequestID := uuid.New()

	t.Run("released", func(t *testing.T) {
		mockSvc := NewMockCreditResolver(ctrl)
		mockSvc.EXPECT().
			Release(gomock.Any(), payerID, paymentRequestID).
			Return(&models.CreditAuthorizationDB{
				ReferenceCode: "AUTH26010212345678",
				Amount:        250000,
				Status:        models.AuthorizationStatusReleased,
			}, nil)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/credit/"+paymentRequestID.String()+"/release", nil)
		newCreditRouter(ctrl, mockSvc, payerID).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp AuthorizationResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "released", resp.Status)
	})

	t.Run("stranger", func(t *testing.T) {
		mockSvc := NewMockCreditResolver(ctrl)
		mockSvc.EXPECT().
			Release(gomock.Any(), payerID, paymentRequestID).
			Return(nil, services.ErrAuthorizationForbidden)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/credit/"+paymentRequestID.String()+"/release", nil)
		newCreditRouter(ctrl, mockSvc, payerID).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
