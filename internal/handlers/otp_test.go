package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSendOTPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, PhoneNumber: "09121112233"}

	t.Run("success", func(t *testing.T) {
		users := NewMockPhoneReader(ctrl)
		users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)

		sender := NewMockOTPSender(ctrl)
		sender.EXPECT().
			Send(gomock.Any(), "09121112233", services.OTPPurposePayment).
			Return(nil)

		handler := NewSendOTPHandler(sender, users, newAuthedTokener(ctrl, userID))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/otp/send", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unauthorized", func(t *testing.T) {
		handler := NewSendOTPHandler(NewMockOTPSender(ctrl), NewMockPhoneReader(ctrl), newDeniedTokener(ctrl))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/otp/send", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := NewMockPhoneReader(ctrl)
		users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		handler := NewSendOTPHandler(NewMockOTPSender(ctrl), users, newAuthedTokener(ctrl, userID))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/otp/send", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("send failure", func(t *testing.T) {
		users := NewMockPhoneReader(ctrl)
		users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)

		sender := NewMockOTPSender(ctrl)
		sender.EXPECT().
			Send(gomock.Any(), "09121112233", services.OTPPurposePayment).
			Return(errors.New("redis down"))

		handler := NewSendOTPHandler(sender, users, newAuthedTokener(ctrl, userID))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/otp/send", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
