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
)

// Error variables
var (
	ErrAuthorizationNotFound  = errors.New("no active authorization for this payment request")
	ErrAuthorizationNotActive = errors.New("authorization is no longer active")
	ErrAuthorizationForbidden = errors.New("authorization does not involve the user")
)

// AuthorizationReader defines read-only authorization operations.
type AuthorizationReader interface {
	GetByID(ctx context.Context, authorizationID uuid.UUID) (*models.CreditAuthorizationDB, error)
	ListActiveExpired(ctx context.Context, now time.Time) ([]models.CreditAuthorizationDB, error)
}

// AuthorizationWriter defines authorization mutations.
type AuthorizationWriter interface {
	GetActiveForUpdate(ctx context.Context, paymentRequestID uuid.UUID) (*models.CreditAuthorizationDB, error)
	MarkTerminal(ctx context.Context, authorizationID uuid.UUID, status models.AuthorizationStatus) (bool, error)
}

// CreditService resolves credit authorization holds: merchant settle,
// release, and expiry of stale actives.
type CreditService struct {
	reader      AuthorizationReader
	writer      AuthorizationWriter
	payments    PaymentRequestWriter
	wallets     WalletResolver
	funds       WalletFundsMover
	txns        TransactionCreator
	refs        *reference.Generator
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewCreditService creates a new CreditService.
func NewCreditService(
	reader AuthorizationReader,
	writer AuthorizationWriter,
	payments PaymentRequestWriter,
	wallets WalletResolver,
	funds WalletFundsMover,
	txns TransactionCreator,
	refs *reference.Generator,
	kafkaWriter KafkaWriter,
) *CreditService {
	return &CreditService{
		reader:      reader,
		writer:      writer,
		payments:    payments,
		wallets:     wallets,
		funds:       funds,
		txns:        txns,
		refs:        refs,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// WithNow pins the clock. Used by tests.
func (svc *CreditService) WithNow(now func() time.Time) *CreditService {
	svc.now = now
	return svc
}

// Settle moves the held amount from the payer's credit wallet to the
// merchant wallet, completes the payment request and marks the
// authorization settled. Merchant only.
func (svc *CreditService) Settle(ctx context.Context, merchantUserID, paymentRequestID uuid.UUID) (*models.CreditAuthorizationDB, error) {
	pr, err := svc.payments.GetForUpdate(ctx, paymentRequestID)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, ErrPaymentNotFound
	}
	// The request row is locked, so the status cannot flip under us. A
	// request the sweeper already expired must not settle.
	if pr.Status != models.PaymentRequestStatusCreated {
		return nil, ErrPaymentNotPayable
	}

	merchantWallet, err := svc.wallets.GetByID(ctx, pr.MerchantWalletID)
	if err != nil {
		return nil, err
	}
	if merchantWallet == nil || merchantWallet.UserID != merchantUserID {
		return nil, ErrAuthorizationForbidden
	}

	auth, err := svc.writer.GetActiveForUpdate(ctx, paymentRequestID)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, ErrAuthorizationNotFound
	}
	// The stored status is not trusted past the deadline.
	if !auth.IsActive(svc.now()) {
		if err := svc.expireHold(ctx, auth); err != nil {
			return nil, err
		}
		return nil, ErrAuthorizationNotActive
	}

	creditWallet, err := svc.wallets.GetByOwner(ctx, auth.UserID, models.OwnerTypeCustomer, models.WalletKindCredit)
	if err != nil {
		return nil, err
	}
	if creditWallet == nil {
		return nil, ErrWalletNotFound
	}

	if _, err := svc.funds.GetForUpdate(ctx, creditWallet.WalletID); err != nil {
		return nil, err
	}
	if err := svc.funds.DebitReserved(ctx, creditWallet.WalletID, auth.Amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}
	if err := svc.funds.Credit(ctx, pr.MerchantWalletID, auth.Amount); err != nil {
		return nil, err
	}

	code, err := svc.refs.Generate(ctx, reference.PrefixTransaction, svc.txns.ReferenceCodeExists)
	if err != nil {
		return nil, err
	}
	txn := &models.TransactionDB{
		TransactionID:    uuid.New(),
		ReferenceCode:    code,
		FromWalletID:     creditWallet.WalletID,
		ToWalletID:       pr.MerchantWalletID,
		Amount:           auth.Amount,
		Status:           models.TransactionStatusSuccess,
		Purpose:          models.TransactionPurposeSettlement,
		PaymentRequestID: &pr.PaymentRequestID,
		Description:      pr.Description,
		CreatedAt:        svc.now(),
	}
	if err := svc.txns.Create(ctx, txn); err != nil {
		return nil, err
	}

	ok, err := svc.writer.MarkTerminal(ctx, auth.AuthorizationID, models.AuthorizationStatusSettled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthorizationNotActive
	}
	completed, err := svc.payments.MarkCompleted(ctx, pr.PaymentRequestID, auth.UserID, creditWallet.WalletID, svc.now())
	if err != nil {
		return nil, err
	}
	if !completed {
		// The conditional update found the request no longer created.
		// Abort so the surrounding transaction rolls the movement back.
		return nil, ErrPaymentNotPayable
	}

	auth.Status = models.AuthorizationStatusSettled

	publishTransaction(ctx, svc.kafkaWriter, txn)

	logger.Log.Infow("authorization settled",
		"authorization_id", auth.AuthorizationID,
		"payment_request_id", pr.PaymentRequestID,
		"transaction_id", txn.TransactionID,
		"amount", auth.Amount,
	)
	return auth, nil
}

// Release lifts the hold without moving funds. Allowed for the merchant
// owning the payment request and for the payer holding the authorization.
func (svc *CreditService) Release(ctx context.Context, userID, paymentRequestID uuid.UUID) (*models.CreditAuthorizationDB, error) {
	pr, err := svc.payments.GetForUpdate(ctx, paymentRequestID)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, ErrPaymentNotFound
	}

	auth, err := svc.writer.GetActiveForUpdate(ctx, paymentRequestID)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, ErrAuthorizationNotFound
	}

	if auth.UserID != userID {
		merchantWallet, err := svc.wallets.GetByID(ctx, pr.MerchantWalletID)
		if err != nil {
			return nil, err
		}
		if merchantWallet == nil || merchantWallet.UserID != userID {
			return nil, ErrAuthorizationForbidden
		}
	}

	ok, err := svc.writer.MarkTerminal(ctx, auth.AuthorizationID, models.AuthorizationStatusReleased)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthorizationNotActive
	}
	if err := svc.releaseReservation(ctx, auth); err != nil {
		return nil, err
	}

	auth.Status = models.AuthorizationStatusReleased
	logger.Log.Infow("authorization released", "authorization_id", auth.AuthorizationID)
	return auth, nil
}

// ExpireStale marks active holds past their deadline expired and releases
// their reservations. Runs periodically as a background sweep.
func (svc *CreditService) ExpireStale(ctx context.Context) (int, error) {
	auths, err := svc.reader.ListActiveExpired(ctx, svc.now())
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range auths {
		if err := svc.expireHold(ctx, &auths[i]); err != nil {
			logger.Log.Errorw("failed to expire authorization", "authorization_id", auths[i].AuthorizationID, "err", err)
			continue
		}
		expired++
	}

	if expired > 0 {
		logger.Log.Infow("expired authorizations", "count", expired)
	}
	return expired, nil
}

// expireHold claims the hold via the conditional update, then releases the
// reservation. Two sweeps never double-release.
func (svc *CreditService) expireHold(ctx context.Context, auth *models.CreditAuthorizationDB) error {
	ok, err := svc.writer.MarkTerminal(ctx, auth.AuthorizationID, models.AuthorizationStatusExpired)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return svc.releaseReservation(ctx, auth)
}

func (svc *CreditService) releaseReservation(ctx context.Context, auth *models.CreditAuthorizationDB) error {
	creditWallet, err := svc.wallets.GetByOwner(ctx, auth.UserID, models.OwnerTypeCustomer, models.WalletKindCredit)
	if err != nil {
		return err
	}
	if creditWallet == nil {
		return ErrWalletNotFound
	}
	return svc.funds.Release(ctx, creditWallet.WalletID, auth.Amount)
}
