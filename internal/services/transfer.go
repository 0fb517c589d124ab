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
	ErrTransferNotFound   = errors.New("transfer request not found")
	ErrTransferNotPending = errors.New("transfer request is not pending")
	ErrTransferExpired    = errors.New("transfer request has expired")
	ErrTransferForbidden  = errors.New("transfer request is not addressed to the user")
	ErrTransferToSelf     = errors.New("cannot transfer to own wallet")
	ErrTransferNotCash    = errors.New("transfers are allowed from cash wallets only")
	ErrReceiverNotFound   = errors.New("receiver not found")
)

// TransferReader defines read-only transfer operations.
type TransferReader interface {
	GetByID(ctx context.Context, transferID uuid.UUID) (*models.TransferRequestDB, error)
	ReferenceCodeExists(ctx context.Context, code string) (bool, error)
	ListPendingExpired(ctx context.Context, now time.Time) ([]models.TransferRequestDB, error)
}

// TransferWriter defines transfer mutations.
type TransferWriter interface {
	Create(ctx context.Context, transfer *models.TransferRequestDB) error
	GetForUpdate(ctx context.Context, transferID uuid.UUID) (*models.TransferRequestDB, error)
	MarkSuccess(ctx context.Context, transferID, receiverWalletID, transactionID uuid.UUID) (bool, error)
	MarkTerminal(ctx context.Context, transferID uuid.UUID, status models.TransferStatus) (bool, error)
}

// WalletFundsMover defines the balance mutations money flows need.
type WalletFundsMover interface {
	GetForUpdate(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
	Reserve(ctx context.Context, walletID uuid.UUID, amount int64) error
	Release(ctx context.Context, walletID uuid.UUID, amount int64) error
	DebitReserved(ctx context.Context, walletID uuid.UUID, amount int64) error
	Debit(ctx context.Context, walletID uuid.UUID, amount int64) error
	Credit(ctx context.Context, walletID uuid.UUID, amount int64) error
}

// WalletResolver defines the wallet lookups money flows need.
type WalletResolver interface {
	GetByID(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
	GetByOwner(ctx context.Context, userID uuid.UUID, ownerType models.OwnerType, kind models.WalletKind) (*models.WalletDB, error)
	GetCashWalletByPhone(ctx context.Context, phoneNumber string) (*models.WalletDB, error)
}

// TransactionCreator inserts ledger records.
type TransactionCreator interface {
	Create(ctx context.Context, txn *models.TransactionDB) error
	ReferenceCodeExists(ctx context.Context, code string) (bool, error)
}

// TransferService handles peer-to-peer transfers. The amount is reserved
// on the sender wallet when the request is created and either settled
// (confirm) or released (reject, expiry).
type TransferService struct {
	reader      TransferReader
	writer      TransferWriter
	wallets     WalletResolver
	funds       WalletFundsMover
	txns        TransactionCreator
	refs        *reference.Generator
	kafkaWriter KafkaWriter
	expiry      time.Duration
	now         func() time.Time
}

// NewTransferService creates a new TransferService.
func NewTransferService(
	reader TransferReader,
	writer TransferWriter,
	wallets WalletResolver,
	funds WalletFundsMover,
	txns TransactionCreator,
	refs *reference.Generator,
	kafkaWriter KafkaWriter,
	expiry time.Duration,
) *TransferService {
	return &TransferService{
		reader:      reader,
		writer:      writer,
		wallets:     wallets,
		funds:       funds,
		txns:        txns,
		refs:        refs,
		kafkaWriter: kafkaWriter,
		expiry:      expiry,
		now:         time.Now,
	}
}

// WithNow pins the clock. Used by tests.
func (svc *TransferService) WithNow(now func() time.Time) *TransferService {
	svc.now = now
	return svc
}

// Create opens a transfer from the sender's cash wallet to the cash wallet
// of the user owning receiverPhone. The amount is reserved immediately and
// the request stays pending until the receiver confirms or rejects it.
func (svc *TransferService) Create(
	ctx context.Context, senderUserID uuid.UUID, receiverPhone string, amount int64, description string,
) (*models.TransferRequestDB, error) {
	sender, err := svc.wallets.GetByOwner(ctx, senderUserID, models.OwnerTypeCustomer, models.WalletKindCash)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, ErrWalletNotFound
	}
	if sender.Kind != models.WalletKindCash {
		return nil, ErrTransferNotCash
	}

	receiver, err := svc.wallets.GetCashWalletByPhone(ctx, receiverPhone)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrReceiverNotFound
	}
	if receiver.UserID == senderUserID {
		return nil, ErrTransferToSelf
	}

	if _, err := svc.funds.GetForUpdate(ctx, sender.WalletID); err != nil {
		return nil, err
	}
	if err := svc.funds.Reserve(ctx, sender.WalletID, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to reserve transfer amount", "wallet_id", sender.WalletID, "err", err)
		return nil, err
	}

	code, err := svc.refs.Generate(ctx, reference.PrefixTransfer, svc.reader.ReferenceCodeExists)
	if err != nil {
		return nil, err
	}

	transfer := &models.TransferRequestDB{
		TransferID:          uuid.New(),
		ReferenceCode:       code,
		SenderWalletID:      sender.WalletID,
		ReceiverPhoneNumber: &receiverPhone,
		Amount:              amount,
		Description:         description,
		Status:              models.TransferStatusPending,
		ExpiresAt:           svc.now().Add(svc.expiry),
	}
	if err := svc.writer.Create(ctx, transfer); err != nil {
		return nil, err
	}

	logger.Log.Infow("transfer created",
		"transfer_id", transfer.TransferID,
		"reference_code", code,
		"sender_wallet_id", sender.WalletID,
		"amount", amount,
	)
	return transfer, nil
}

// Confirm settles a pending transfer into the caller's cash wallet.
// Exactly one of several concurrent confirms wins; the rest get
// ErrTransferNotPending.
func (svc *TransferService) Confirm(ctx context.Context, receiverUserID, transferID uuid.UUID) (*models.TransferRequestDB, error) {
	transfer, err := svc.writer.GetForUpdate(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, ErrTransferNotFound
	}
	if transfer.Status != models.TransferStatusPending {
		return nil, ErrTransferNotPending
	}

	receiver, err := svc.resolveReceiver(ctx, receiverUserID, transfer)
	if err != nil {
		return nil, err
	}

	if transfer.IsExpired(svc.now()) {
		if err := svc.expireLocked(ctx, transfer); err != nil {
			return nil, err
		}
		return nil, ErrTransferExpired
	}

	txn, err := svc.settle(ctx, transfer, receiver.WalletID)
	if err != nil {
		return nil, err
	}

	transfer.Status = models.TransferStatusSuccess
	transfer.ReceiverWalletID = &receiver.WalletID
	transfer.TransactionID = &txn.TransactionID

	publishTransaction(ctx, svc.kafkaWriter, txn)

	logger.Log.Infow("transfer confirmed",
		"transfer_id", transfer.TransferID,
		"receiver_wallet_id", receiver.WalletID,
		"transaction_id", txn.TransactionID,
	)
	return transfer, nil
}

// Reject declines a pending transfer and releases the sender reservation.
// Only the addressed receiver may reject.
func (svc *TransferService) Reject(ctx context.Context, receiverUserID, transferID uuid.UUID) (*models.TransferRequestDB, error) {
	transfer, err := svc.writer.GetForUpdate(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, ErrTransferNotFound
	}
	if transfer.Status != models.TransferStatusPending {
		return nil, ErrTransferNotPending
	}

	if _, err := svc.resolveReceiver(ctx, receiverUserID, transfer); err != nil {
		return nil, err
	}

	ok, err := svc.writer.MarkTerminal(ctx, transfer.TransferID, models.TransferStatusRejected)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTransferNotPending
	}
	if err := svc.funds.Release(ctx, transfer.SenderWalletID, transfer.Amount); err != nil {
		logger.Log.Errorw("failed to release reservation on reject", "transfer_id", transfer.TransferID, "err", err)
		return nil, err
	}

	transfer.Status = models.TransferStatusRejected
	logger.Log.Infow("transfer rejected", "transfer_id", transfer.TransferID)
	return transfer, nil
}

// Get returns a transfer visible to the caller: its sender or the
// addressed receiver. Expiry is applied lazily at read time.
func (svc *TransferService) Get(ctx context.Context, userID, transferID uuid.UUID) (*models.TransferRequestDB, error) {
	transfer, err := svc.reader.GetByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, ErrTransferNotFound
	}

	allowed, err := svc.visibleTo(ctx, userID, transfer)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrTransferForbidden
	}

	if transfer.Status == models.TransferStatusPending && transfer.IsExpired(svc.now()) {
		if err := svc.expireLocked(ctx, transfer); err != nil {
			return nil, err
		}
		transfer.Status = models.TransferStatusExpired
	}
	return transfer, nil
}

// ExpirePending releases the reservations of pending transfers past their
// deadline. Runs periodically as a background sweep.
func (svc *TransferService) ExpirePending(ctx context.Context) (int, error) {
	transfers, err := svc.reader.ListPendingExpired(ctx, svc.now())
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range transfers {
		if err := svc.expireLocked(ctx, &transfers[i]); err != nil {
			logger.Log.Errorw("failed to expire transfer", "transfer_id", transfers[i].TransferID, "err", err)
			continue
		}
		expired++
	}

	if expired > 0 {
		logger.Log.Infow("expired pending transfers", "count", expired)
	}
	return expired, nil
}

// settle moves the reserved amount to the receiver and flips the request
// to success. The ledger record and the balance mutations share the
// per-request transaction.
func (svc *TransferService) settle(ctx context.Context, transfer *models.TransferRequestDB, receiverWalletID uuid.UUID) (*models.TransactionDB, error) {
	if _, err := svc.funds.GetForUpdate(ctx, transfer.SenderWalletID); err != nil {
		return nil, err
	}
	if err := svc.funds.DebitReserved(ctx, transfer.SenderWalletID, transfer.Amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}
	if err := svc.funds.Credit(ctx, receiverWalletID, transfer.Amount); err != nil {
		return nil, err
	}

	code, err := svc.refs.Generate(ctx, reference.PrefixTransaction, svc.txns.ReferenceCodeExists)
	if err != nil {
		return nil, err
	}
	txn := &models.TransactionDB{
		TransactionID: uuid.New(),
		ReferenceCode: code,
		FromWalletID:  transfer.SenderWalletID,
		ToWalletID:    receiverWalletID,
		Amount:        transfer.Amount,
		Status:        models.TransactionStatusSuccess,
		Purpose:       models.TransactionPurposeTransfer,
		Description:   transfer.Description,
		CreatedAt:     svc.now(),
	}
	if err := svc.txns.Create(ctx, txn); err != nil {
		return nil, err
	}

	ok, err := svc.writer.MarkSuccess(ctx, transfer.TransferID, receiverWalletID, txn.TransactionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTransferNotPending
	}
	return txn, nil
}

// expireLocked flips a pending transfer to expired and releases the
// reservation. The conditional update claims the row first so two sweeps
// never double-release.
func (svc *TransferService) expireLocked(ctx context.Context, transfer *models.TransferRequestDB) error {
	ok, err := svc.writer.MarkTerminal(ctx, transfer.TransferID, models.TransferStatusExpired)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return svc.funds.Release(ctx, transfer.SenderWalletID, transfer.Amount)
}

// resolveReceiver checks the caller is the addressed receiver and returns
// their cash wallet.
func (svc *TransferService) resolveReceiver(ctx context.Context, receiverUserID uuid.UUID, transfer *models.TransferRequestDB) (*models.WalletDB, error) {
	if transfer.ReceiverPhoneNumber == nil {
		return nil, ErrTransferForbidden
	}
	receiver, err := svc.wallets.GetCashWalletByPhone(ctx, *transfer.ReceiverPhoneNumber)
	if err != nil {
		return nil, err
	}
	if receiver == nil || receiver.UserID != receiverUserID {
		return nil, ErrTransferForbidden
	}
	return receiver, nil
}

// visibleTo reports whether the user is the sender or addressed receiver.
func (svc *TransferService) visibleTo(ctx context.Context, userID uuid.UUID, transfer *models.TransferRequestDB) (bool, error) {
	sender, err := svc.wallets.GetByID(ctx, transfer.SenderWalletID)
	if err != nil {
		return false, err
	}
	if sender != nil && sender.UserID == userID {
		return true, nil
	}
	if transfer.ReceiverPhoneNumber != nil {
		receiver, err := svc.wallets.GetCashWalletByPhone(ctx, *transfer.ReceiverPhoneNumber)
		if err != nil {
			return false, err
		}
		if receiver != nil && receiver.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
