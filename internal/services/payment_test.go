package services_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/reference"
	"github.com/saeedpay/wallet-ledger/internal/services"
	"github.com/stretchr/testify/assert"
)

type paymentMocks struct {
	reader  *services.MockPaymentRequestReader
	writer  *services.MockPaymentRequestWriter
	wallets *services.MockWalletResolver
	funds   *services.MockWalletFundsMover
	txns    *services.MockTransactionCreator
	auths   *services.MockAuthorizationCreator
	users   *services.MockUserPhoneReader
	otp     *services.MockOTPVerifier
	kafka   *services.MockKafkaWriter
}

func newPaymentService(t *testing.T) (*services.PaymentService, paymentMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		reader:  services.NewMockPaymentRequestReader(ctrl),
		writer:  services.NewMockPaymentRequestWriter(ctrl),
		wallets: services.NewMockWalletResolver(ctrl),
		funds:   services.NewMockWalletFundsMover(ctrl),
		txns:    services.NewMockTransactionCreator(ctrl),
		auths:   services.NewMockAuthorizationCreator(ctrl),
		users:   services.NewMockUserPhoneReader(ctrl),
		otp:     services.NewMockOTPVerifier(ctrl),
		kafka:   services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewPaymentService(
		m.reader, m.writer, m.wallets, m.funds, m.txns, m.auths, m.users, m.otp,
		reference.NewGenerator(8), m.kafka, 30*time.Minute, time.Hour,
	)
	return svc, m, ctrl
}

func TestPaymentService_CreateRequest(t *testing.T) {
	merchantUserID := uuid.New()
	gateway := &models.WalletDB{
		WalletID: uuid.New(), UserID: merchantUserID,
		OwnerType: models.OwnerTypeMerchant, Kind: models.WalletKindMerchantGateway,
	}

	t.Run("merchant opens a request", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		m.wallets.EXPECT().
			GetByOwner(gomock.Any(), merchantUserID, models.OwnerTypeMerchant, models.WalletKindMerchantGateway).
			Return(gateway, nil)
		m.reader.EXPECT().ReferenceCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.writer.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pr *models.PaymentRequestDB) error {
				assert.Equal(t, gateway.WalletID, pr.MerchantWalletID)
				assert.Equal(t, models.PaymentRequestStatusCreated, pr.Status)
				return nil
			})

		pr, err := svc.CreateRequest(context.Background(), merchantUserID, 25000, "order 42")
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentRequestStatusCreated, pr.Status)
		assert.Contains(t, pr.ReferenceCode, reference.PrefixPaymentRequest)
	})

	t.Run("customer without a gateway wallet is refused", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		m.wallets.EXPECT().
			GetByOwner(gomock.Any(), merchantUserID, models.OwnerTypeMerchant, models.WalletKindMerchantGateway).
			Return(nil, nil)

		_, err := svc.CreateRequest(context.Background(), merchantUserID, 25000, "")
		assert.ErrorIs(t, err, services.ErrPaymentNotMerchant)
	})
}

func TestPaymentService_Get(t *testing.T) {
	t.Run("created past deadline reads as expired", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		expiresAt := time.Now().Add(-time.Minute)
		pr := &models.PaymentRequestDB{
			PaymentRequestID: uuid.New(),
			ReferenceCode:    "PR26082612345678",
			Status:           models.PaymentRequestStatusCreated,
			ExpiresAt:        expiresAt,
		}
		m.reader.EXPECT().GetByReferenceCode(gomock.Any(), pr.ReferenceCode).Return(pr, nil)
		m.writer.EXPECT().MarkExpired(gomock.Any(), pr.PaymentRequestID).Return(true, nil)

		got, err := svc.Get(context.Background(), pr.ReferenceCode)
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentRequestStatusExpired, got.Status)
	})

	t.Run("unknown reference code", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		m.reader.EXPECT().GetByReferenceCode(gomock.Any(), "PR000").Return(nil, nil)

		_, err := svc.Get(context.Background(), "PR000")
		assert.ErrorIs(t, err, services.ErrPaymentNotFound)
	})
}

func TestPaymentService_Pay(t *testing.T) {
	payerUserID := uuid.New()
	payer := &models.UserDB{UserID: payerUserID, PhoneNumber: "09121112233"}
	merchantWalletID := uuid.New()
	cashWallet := &models.WalletDB{
		WalletID: uuid.New(), UserID: payerUserID,
		OwnerType: models.OwnerTypeCustomer, Kind: models.WalletKindCash,
	}
	creditWallet := &models.WalletDB{
		WalletID: uuid.New(), UserID: payerUserID,
		OwnerType: models.OwnerTypeCustomer, Kind: models.WalletKindCredit,
	}

	createdRequest := func() *models.PaymentRequestDB {
		return &models.PaymentRequestDB{
			PaymentRequestID: uuid.New(),
			ReferenceCode:    "PR26082612345678",
			MerchantWalletID: merchantWalletID,
			Amount:           25000,
			Status:           models.PaymentRequestStatusCreated,
			ExpiresAt:        time.Now().Add(20 * time.Minute),
		}
	}

	expectOTP := func(m paymentMocks, err error) {
		m.users.EXPECT().GetByID(gomock.Any(), payerUserID).Return(payer, nil)
		m.otp.EXPECT().
			Verify(gomock.Any(), payer.PhoneNumber, services.OTPPurposePayment, "123456").
			Return(err)
	}

	t.Run("cash payment moves funds and completes the request", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		pr := createdRequest()
		expectOTP(m, nil)
		m.reader.EXPECT().GetByReferenceCode(gomock.Any(), pr.ReferenceCode).Return(pr, nil)
		m.writer.EXPECT().GetForUpdate(gomock.Any(), pr.PaymentRequestID).Return(pr, nil)
		m.wallets.EXPECT().
			GetByOwner(gomock.Any(), payerUserID, models.OwnerTypeCustomer, models.WalletKindCash).
			Return(cashWallet, nil)
		m.funds.EXPECT().GetForUpdate(gomock.Any(), cashWallet.WalletID).Return(cashWallet, nil)
		m.funds.EXPECT().Debit(gomock.Any(), cashWallet.WalletID, int64(25000)).Return(nil)
		m.funds.EXPECT().Credit(gomock.Any(), merchantWalletID, int64(25000)).Return(nil)
		m.txns.EXPECT().ReferenceCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.txns.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn *models.TransactionDB) error {
				assert.Equal(t, models.TransactionPurposePayment, txn.Purpose)
				assert.Equal(t, pr.PaymentRequestID, *txn.PaymentRequestID)
				return nil
			})
		m.writer.EXPECT().
			MarkCompleted(gomock.Any(), pr.PaymentRequestID, payerUserID, cashWallet.WalletID, gomock.Any()).
			Return(true, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Pay(context.Background(), payerUserID, pr.ReferenceCode, models.WalletKindCash, "123456")
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentRequestStatusCompleted, got.Status)
		assert.Equal(t, payerUserID, *got.PaidByUserID)
		assert.Equal(t, cashWallet.WalletID, *got.PaidWalletID)
	})

	t.Run("credit payment places a hold and leaves the request created", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		pr := createdRequest()
		expectOTP(m, nil)
		m.reader.EXPECT().GetByReferenceCode(gomock.Any(), pr.ReferenceCode).Return(pr, nil)
		m.writer.EXPECT().GetForUpdate(gomock.Any(), pr.PaymentRequestID).Return(pr, nil)
		m.wallets.EXPECT().
			GetByOwner(gomock.Any(), payerUserID, models.OwnerTypeCustomer, models.WalletKindCredit).
			Return(creditWallet, nil)
		m.funds.EXPECT().GetForUpdate(gomock.Any(), creditWallet.WalletID).Return(creditWallet, nil)
		m.funds.EXPECT().Reserve(gomock.Any(), creditWallet.WalletID, int64(25000)).Return(nil)
		m.auths.EXPECT().ReferenceCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.auths.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, auth *models.CreditAuthorizationDB) error {
				assert.Equal(t, payerUserID, auth.UserID)
				assert.Equal(t, pr.PaymentRequestID, auth.PaymentRequestID)
				assert.Equal(t, models.AuthorizationStatusActive, auth.Status)
				assert.NotNil(t, auth.ExpiresAt)
				return nil
			})

		got, err := svc.Pay(context.Background(), payerUserID, pr.ReferenceCode, models.WalletKindCredit, "123456")
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentRequestStatusCreated, got.Status)
	})

	t.Run("second active hold is refused", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		pr := createdRequest()
		expectOTP(m, nil)
		m.reader.EXPECT().GetByReferenceCode(gomock.Any(), pr.ReferenceCode).Return(pr, nil)
		m.writer.EXPECT().GetForUpdate(gomock.Any(), pr.PaymentRequestID).Return(pr, nil)
		m.wallets.EXPECT().
			GetByOwner(gomock.Any(), payerUserID, models.OwnerTypeCustomer, models.WalletKindCredit).
			Return(creditWallet, nil)
		m.funds.EXPECT().GetForUpdate(gomock.Any(), creditWallet.WalletID).Return(creditWallet, nil)
		m.funds.EXPECT().Reserve(gomock.Any(), creditWallet.WalletID, int64(25000)).Return(nil)
		m.auths.EXPECT().ReferenceCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.auths.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505"})

		_, err := svc.Pay(context.Background(), payerUserID, pr.ReferenceCode, models.WalletKindCredit, "123456")
		assert.ErrorIs(t, err, services.ErrAuthorizationExists)
	})

	t.Run("already completed request is not payable again", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		pr := createdRequest()
		completed := *pr
		completed.Status = models.PaymentRequestStatusCompleted
		expectOTP(m, nil)
		m.reader.EXPECT().GetByReferenceCode(gomock.Any(), pr.ReferenceCode).Return(pr, nil)
		m.writer.EXPECT().GetForUpdate(gomock.Any(), pr.PaymentRequestID).Return(&completed, nil)

		_, err := svc.Pay(context.Background(), payerUserID, pr.ReferenceCode, models.WalletKindCash, "123456")
		assert.ErrorIs(t, err, services.ErrPaymentNotPayable)
	})

	t.Run("expired request is not payable", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		pr := createdRequest()
		pr.ExpiresAt = time.Now().Add(-time.Minute)
		expectOTP(m, nil)
		m.reader.EXPECT().GetByReferenceCode(gomock.Any(), pr.ReferenceCode).Return(pr, nil)
		m.writer.EXPECT().GetForUpdate(gomock.Any(), pr.PaymentRequestID).Return(pr, nil)
		m.writer.EXPECT().MarkExpired(gomock.Any(), pr.PaymentRequestID).Return(true, nil)

		_, err := svc.Pay(context.Background(), payerUserID, pr.ReferenceCode, models.WalletKindCash, "123456")
		assert.ErrorIs(t, err, services.ErrPaymentNotPayable)
	})

	t.Run("wrong otp stops before touching the request", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		expectOTP(m, services.ErrOTPInvalid)

		_, err := svc.Pay(context.Background(), payerUserID, "PR26082612345678", models.WalletKindCash, "123456")
		assert.ErrorIs(t, err, services.ErrOTPInvalid)
	})

	t.Run("insufficient cash funds", func(t *testing.T) {
		svc, m, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		pr := createdRequest()
		expectOTP(m, nil)
		m.reader.EXPECT().GetByReferenceCode(gomock.Any(), pr.ReferenceCode).Return(pr, nil)
		m.writer.EXPECT().GetForUpdate(gomock.Any(), pr.PaymentRequestID).Return(pr, nil)
		m.wallets.EXPECT().
			GetByOwner(gomock.Any(), payerUserID, models.OwnerTypeCustomer, models.WalletKindCash).
			Return(cashWallet, nil)
		m.funds.EXPECT().GetForUpdate(gomock.Any(), cashWallet.WalletID).Return(cashWallet, nil)
		m.funds.EXPECT().Debit(gomock.Any(), cashWallet.WalletID, int64(25000)).Return(sql.ErrNoRows)

		_, err := svc.Pay(context.Background(), payerUserID, pr.ReferenceCode, models.WalletKindCash, "123456")
		assert.ErrorIs(t, err, services.ErrInsufficientFunds)
	})

	t.Run("cashback wallet cannot pay", func(t *testing.T) {
		svc, _, ctrl := newPaymentService(t)
		defer ctrl.Finish()

		_, err := svc.Pay(context.Background(), payerUserID, "PR26082612345678", models.WalletKindCashback, "123456")
		assert.ErrorIs(t, err, services.ErrPaymentInvalidKind)
	})
}

func TestPaymentService_ExpireStale(t *testing.T) {
	svc, m, ctrl := newPaymentService(t)
	defer ctrl.Finish()

	stale := []models.PaymentRequestDB{
		{PaymentRequestID: uuid.New()},
		{PaymentRequestID: uuid.New()},
	}
	m.reader.EXPECT().ListCreatedExpired(gomock.Any(), gomock.Any()).Return(stale, nil)
	m.writer.EXPECT().MarkExpired(gomock.Any(), stale[0].PaymentRequestID).Return(true, nil)
	// Second row was completed between the list and the update.
	m.writer.EXPECT().MarkExpired(gomock.Any(), stale[1].PaymentRequestID).Return(false, nil)

	expired, err := svc.ExpireStale(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, expired)
}
