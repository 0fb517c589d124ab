package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/reference"
)

// Error variables
var (
	// ErrInsufficientFunds is returned when the available balance cannot
	// cover a debit or reservation.
	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrWalletNotFound  = errors.New("wallet not found")
	ErrWalletForbidden = errors.New("wallet does not belong to the user")
)

// walletNumberLength is the total length of an external wallet number,
// kind prefix included.
const walletNumberLength = 12

// WalletReader defines read-only wallet operations.
type WalletReader interface {
	GetByID(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
	GetByOwner(ctx context.Context, userID uuid.UUID, ownerType models.OwnerType, kind models.WalletKind) (*models.WalletDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WalletDB, error)
	WalletNumberExists(ctx context.Context, walletNumber string) (bool, error)
}

// WalletCreator defines wallet creation.
type WalletCreator interface {
	Create(ctx context.Context, wallet *models.WalletDB) error
}

// TransactionLister defines ledger read operations.
type TransactionLister interface {
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]models.TransactionDB, error)
}

// WalletService resolves wallets, provisions defaults at registration and
// serves per-wallet ledger history.
type WalletService struct {
	reader  WalletReader
	creator WalletCreator
	txns    TransactionLister
	refs    *reference.Generator
}

// NewWalletService creates a new WalletService.
func NewWalletService(reader WalletReader, creator WalletCreator, txns TransactionLister, refs *reference.Generator) *WalletService {
	return &WalletService{
		reader:  reader,
		creator: creator,
		txns:    txns,
		refs:    refs,
	}
}

// CreateDefaultWallets provisions the wallets every fresh owner gets:
// customers a cash, credit and cashback wallet, merchants a gateway wallet.
func (svc *WalletService) CreateDefaultWallets(ctx context.Context, userID uuid.UUID, ownerType models.OwnerType) error {
	for _, kind := range models.DefaultWallets[ownerType] {
		number, err := svc.refs.GenerateWalletNumber(ctx, models.WalletKindPrefix[kind], walletNumberLength, svc.reader.WalletNumberExists)
		if err != nil {
			logger.Log.Errorw("failed to generate wallet number", "user_id", userID, "kind", kind, "err", err)
			return err
		}

		wallet := &models.WalletDB{
			WalletID:     uuid.New(),
			UserID:       userID,
			OwnerType:    ownerType,
			Kind:         kind,
			WalletNumber: number,
		}
		if err := svc.creator.Create(ctx, wallet); err != nil {
			logger.Log.Errorw("failed to create wallet", "user_id", userID, "kind", kind, "err", err)
			return err
		}
	}
	return nil
}

// ListWallets returns all wallets of a user.
func (svc *WalletService) ListWallets(ctx context.Context, userID uuid.UUID) ([]models.WalletDB, error) {
	return svc.reader.ListByUser(ctx, userID)
}

// GetWallet resolves the user's wallet of the given kind.
func (svc *WalletService) GetWallet(ctx context.Context, userID uuid.UUID, ownerType models.OwnerType, kind models.WalletKind) (*models.WalletDB, error) {
	wallet, err := svc.reader.GetByOwner(ctx, userID, ownerType, kind)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

// ListTransactions returns the ledger history of a wallet the user owns.
func (svc *WalletService) ListTransactions(ctx context.Context, userID, walletID uuid.UUID, limit, offset int) ([]models.TransactionDB, error) {
	wallet, err := svc.reader.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	if wallet.UserID != userID {
		return nil, ErrWalletForbidden
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return svc.txns.ListByWallet(ctx, walletID, limit, offset)
}
