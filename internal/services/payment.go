package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/reference"
	"github.com/saeedpay/wallet-ledger/internal/repositories"
)

// Error variables
var (
	ErrPaymentNotFound     = errors.New("payment request not found")
	ErrPaymentNotPayable   = errors.New("payment request is not payable")
	ErrPaymentNotMerchant  = errors.New("payment requests require a merchant gateway wallet")
	ErrPaymentInvalidKind  = errors.New("payment wallet must be cash or credit")
	ErrAuthorizationExists = errors.New("an active authorization already exists for this payment request")
)

// PaymentRequestReader defines read-only payment-request operations.
type PaymentRequestReader interface {
	GetByReferenceCode(ctx context.Context, code string) (*models.PaymentRequestDB, error)
	ReferenceCodeExists(ctx context.Context, code string) (bool, error)
	ListCreatedExpired(ctx context.Context, now time.Time) ([]models.PaymentRequestDB, error)
}

// PaymentRequestWriter defines payment-request mutations.
type PaymentRequestWriter interface {
	Create(ctx context.Context, pr *models.PaymentRequestDB) error
	GetForUpdate(ctx context.Context, paymentRequestID uuid.UUID) (*models.PaymentRequestDB, error)
	MarkCompleted(ctx context.Context, paymentRequestID, paidByUserID, paidWalletID uuid.UUID, paidAt time.Time) (bool, error)
	MarkExpired(ctx context.Context, paymentRequestID uuid.UUID) (bool, error)
}

// AuthorizationCreator places credit holds.
type AuthorizationCreator interface {
	Create(ctx context.Context, auth *models.CreditAuthorizationDB) error
	ReferenceCodeExists(ctx context.Context, code string) (bool, error)
}

// UserPhoneReader resolves a user's phone number for OTP checks.
type UserPhoneReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// OTPVerifier checks one-time codes.
type OTPVerifier interface {
	Verify(ctx context.Context, phoneNumber, purpose, code string) error
}

// PaymentService handles merchant payment requests: creation, expiry and
// the customer-facing pay operation with its cash and credit branches.
type PaymentService struct {
	reader      PaymentRequestReader
	writer      PaymentRequestWriter
	wallets     WalletResolver
	funds       WalletFundsMover
	txns        TransactionCreator
	auths       AuthorizationCreator
	users       UserPhoneReader
	otp         OTPVerifier
	refs        *reference.Generator
	kafkaWriter KafkaWriter
	expiry      time.Duration
	authExpiry  time.Duration
	now         func() time.Time
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	reader PaymentRequestReader,
	writer PaymentRequestWriter,
	wallets WalletResolver,
	funds WalletFundsMover,
	txns TransactionCreator,
	auths AuthorizationCreator,
	users UserPhoneReader,
	otp OTPVerifier,
	refs *reference.Generator,
	kafkaWriter KafkaWriter,
	expiry, authExpiry time.Duration,
) *PaymentService {
	return &PaymentService{
		reader:      reader,
		writer:      writer,
		wallets:     wallets,
		funds:       funds,
		txns:        txns,
		auths:       auths,
		users:       users,
		otp:         otp,
		refs:        refs,
		kafkaWriter: kafkaWriter,
		expiry:      expiry,
		authExpiry:  authExpiry,
		now:         time.Now,
	}
}

// WithNow pins the clock. Used by tests.
func (svc *PaymentService) WithNow(now func() time.Time) *PaymentService {
	svc.now = now
	return svc
}

// CreateRequest opens a payment request against the merchant's gateway
// wallet.
func (svc *PaymentService) CreateRequest(
	ctx context.Context, merchantUserID uuid.UUID, amount int64, description string,
) (*models.PaymentRequestDB, error) {
	wallet, err := svc.wallets.GetByOwner(ctx, merchantUserID, models.OwnerTypeMerchant, models.WalletKindMerchantGateway)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrPaymentNotMerchant
	}

	code, err := svc.refs.Generate(ctx, reference.PrefixPaymentRequest, svc.reader.ReferenceCodeExists)
	if err != nil {
		return nil, err
	}

	pr := &models.PaymentRequestDB{
		PaymentRequestID: uuid.New(),
		ReferenceCode:    code,
		MerchantWalletID: wallet.WalletID,
		Amount:           amount,
		Description:      description,
		Status:           models.PaymentRequestStatusCreated,
		ExpiresAt:        svc.now().Add(svc.expiry),
	}
	if err := svc.writer.Create(ctx, pr); err != nil {
		return nil, err
	}

	logger.Log.Infow("payment request created",
		"payment_request_id", pr.PaymentRequestID,
		"reference_code", code,
		"amount", amount,
	)
	return pr, nil
}

// Get returns a payment request by reference code. A created request past
// its deadline is expired lazily before being returned.
func (svc *PaymentService) Get(ctx context.Context, referenceCode string) (*models.PaymentRequestDB, error) {
	pr, err := svc.reader.GetByReferenceCode(ctx, referenceCode)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, ErrPaymentNotFound
	}

	if pr.Status == models.PaymentRequestStatusCreated && pr.IsExpired(svc.now()) {
		if _, err := svc.writer.MarkExpired(ctx, pr.PaymentRequestID); err != nil {
			return nil, err
		}
		pr.Status = models.PaymentRequestStatusExpired
	}
	return pr, nil
}

// Pay settles a payment request from the payer's wallet after verifying
// the OTP sent to their phone. A cash wallet moves funds immediately; a
// credit wallet places an authorization hold and the request stays created
// until the merchant settles it. Paying a non-created or expired request
// fails without a second ledger record.
func (svc *PaymentService) Pay(
	ctx context.Context, payerUserID uuid.UUID, referenceCode string, kind models.WalletKind, otpCode string,
) (*models.PaymentRequestDB, error) {
	if kind != models.WalletKindCash && kind != models.WalletKindCredit {
		return nil, ErrPaymentInvalidKind
	}

	payer, err := svc.users.GetByID(ctx, payerUserID)
	if err != nil {
		return nil, err
	}
	if payer == nil {
		return nil, ErrUserDoesNotExist
	}
	if err := svc.otp.Verify(ctx, payer.PhoneNumber, OTPPurposePayment, otpCode); err != nil {
		return nil, err
	}

	pr, err := svc.reader.GetByReferenceCode(ctx, referenceCode)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, ErrPaymentNotFound
	}

	// Re-read under lock: the snapshot above may already be stale.
	pr, err = svc.writer.GetForUpdate(ctx, pr.PaymentRequestID)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, ErrPaymentNotFound
	}
	if pr.IsExpired(svc.now()) {
		if _, err := svc.writer.MarkExpired(ctx, pr.PaymentRequestID); err != nil {
			return nil, err
		}
		return nil, ErrPaymentNotPayable
	}
	if !pr.CanPay(svc.now()) {
		return nil, ErrPaymentNotPayable
	}

	wallet, err := svc.wallets.GetByOwner(ctx, payerUserID, models.OwnerTypeCustomer, kind)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	if kind == models.WalletKindCredit {
		return svc.payWithCredit(ctx, pr, payerUserID, wallet)
	}
	return svc.payWithCash(ctx, pr, payerUserID, wallet)
}

// ExpireStale flips created requests past their deadline to expired.
func (svc *PaymentService) ExpireStale(ctx context.Context) (int, error) {
	prs, err := svc.reader.ListCreatedExpired(ctx, svc.now())
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range prs {
		ok, err := svc.writer.MarkExpired(ctx, prs[i].PaymentRequestID)
		if err != nil {
			logger.Log.Errorw("failed to expire payment request", "payment_request_id", prs[i].PaymentRequestID, "err", err)
			continue
		}
		if ok {
			expired++
		}
	}

	if expired > 0 {
		logger.Log.Infow("expired payment requests", "count", expired)
	}
	return expired, nil
}

// payWithCash atomically debits the payer and credits the merchant wallet,
// inserting the ledger record in the same transaction.
func (svc *PaymentService) payWithCash(
	ctx context.Context, pr *models.PaymentRequestDB, payerUserID uuid.UUID, wallet *models.WalletDB,
) (*models.PaymentRequestDB, error) {
	if _, err := svc.funds.GetForUpdate(ctx, wallet.WalletID); err != nil {
		return nil, err
	}
	if err := svc.funds.Debit(ctx, wallet.WalletID, pr.Amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}
	if err := svc.funds.Credit(ctx, pr.MerchantWalletID, pr.Amount); err != nil {
		return nil, err
	}

	code, err := svc.refs.Generate(ctx, reference.PrefixTransaction, svc.txns.ReferenceCodeExists)
	if err != nil {
		return nil, err
	}
	txn := &models.TransactionDB{
		TransactionID:    uuid.New(),
		ReferenceCode:    code,
		FromWalletID:     wallet.WalletID,
		ToWalletID:       pr.MerchantWalletID,
		Amount:           pr.Amount,
		Status:           models.TransactionStatusSuccess,
		Purpose:          models.TransactionPurposePayment,
		PaymentRequestID: &pr.PaymentRequestID,
		Description:      pr.Description,
		CreatedAt:        svc.now(),
	}
	if err := svc.txns.Create(ctx, txn); err != nil {
		return nil, err
	}

	paidAt := svc.now()
	ok, err := svc.writer.MarkCompleted(ctx, pr.PaymentRequestID, payerUserID, wallet.WalletID, paidAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPaymentNotPayable
	}

	pr.Status = models.PaymentRequestStatusCompleted
	pr.PaidByUserID = &payerUserID
	pr.PaidWalletID = &wallet.WalletID
	pr.PaidAt = &paidAt

	publishTransaction(ctx, svc.kafkaWriter, txn)

	logger.Log.Infow("payment completed",
		"payment_request_id", pr.PaymentRequestID,
		"transaction_id", txn.TransactionID,
		"amount", pr.Amount,
	)
	return pr, nil
}

// payWithCredit reserves the amount on the credit wallet and places an
// authorization hold. No funds move; the request stays created until the
// merchant settles or releases the hold.
func (svc *PaymentService) payWithCredit(
	ctx context.Context, pr *models.PaymentRequestDB, payerUserID uuid.UUID, wallet *models.WalletDB,
) (*models.PaymentRequestDB, error) {
	if _, err := svc.funds.GetForUpdate(ctx, wallet.WalletID); err != nil {
		return nil, err
	}
	if err := svc.funds.Reserve(ctx, wallet.WalletID, pr.Amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}

	code, err := svc.refs.Generate(ctx, reference.PrefixAuthorization, svc.auths.ReferenceCodeExists)
	if err != nil {
		return nil, err
	}
	expiresAt := svc.now().Add(svc.authExpiry)
	auth := &models.CreditAuthorizationDB{
		AuthorizationID:  uuid.New(),
		ReferenceCode:    code,
		UserID:           payerUserID,
		PaymentRequestID: pr.PaymentRequestID,
		Amount:           pr.Amount,
		Status:           models.AuthorizationStatusActive,
		ExpiresAt:        &expiresAt,
	}
	if err := svc.auths.Create(ctx, auth); err != nil {
		// The partial unique index is the source of truth for the
		// one-active-hold invariant.
		if repositories.IsUniqueViolation(err) {
			return nil, ErrAuthorizationExists
		}
		return nil, err
	}

	logger.Log.Infow("credit authorization placed",
		"payment_request_id", pr.PaymentRequestID,
		"authorization_id", auth.AuthorizationID,
		"amount", pr.Amount,
	)
	return pr, nil
}
