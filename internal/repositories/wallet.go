package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
)

const walletColumns = `
	wallet_id, user_id, owner_type, kind, balance, reserved_balance,
	wallet_number, created_at, updated_at
`

// WalletReadRepository handles wallet read operations
type WalletReadRepository struct {
	db *sqlx.DB
}

func NewWalletReadRepository(db *sqlx.DB) *WalletReadRepository {
	return &WalletReadRepository{db: db}
}

// GetByID returns a wallet by primary key, nil if absent.
func (r *WalletReadRepository) GetByID(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1`

	var wallet models.WalletDB
	err := r.db.GetContext(ctx, &wallet, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// GetByOwner resolves the single wallet for (user, owner_type, kind).
// The schema's unique constraint guarantees the result is unambiguous.
func (r *WalletReadRepository) GetByOwner(
	ctx context.Context, userID uuid.UUID, ownerType models.OwnerType, kind models.WalletKind,
) (*models.WalletDB, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE user_id = $1 AND owner_type = $2 AND kind = $3
	`

	var wallet models.WalletDB
	err := r.db.GetContext(ctx, &wallet, query, userID, ownerType, kind)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, ownerType, kind},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// GetCashWalletByPhone resolves the cash wallet of the user owning the
// given phone number. Used to route transfers addressed by phone.
func (r *WalletReadRepository) GetCashWalletByPhone(ctx context.Context, phoneNumber string) (*models.WalletDB, error) {
	query := `
		SELECT w.wallet_id, w.user_id, w.owner_type, w.kind, w.balance,
		       w.reserved_balance, w.wallet_number, w.created_at, w.updated_at
		FROM wallets w
		JOIN users u ON u.user_id = w.user_id
		WHERE u.phone_number = $1 AND w.kind = $2
	`

	var wallet models.WalletDB
	err := r.db.GetContext(ctx, &wallet, query, phoneNumber, models.WalletKindCash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{phoneNumber},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// ListByUser returns all wallets of a user.
func (r *WalletReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WalletDB, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE user_id = $1
		ORDER BY kind
	`

	var wallets []models.WalletDB
	err := r.db.SelectContext(ctx, &wallets, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(wallets),
		"error", err,
	)

	return wallets, err
}

// WalletNumberExists reports whether an external wallet number is taken.
func (r *WalletReadRepository) WalletNumberExists(ctx context.Context, walletNumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wallets WHERE wallet_number = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, walletNumber)
	return exists, err
}

// WalletWriteRepository handles balance-affecting wallet operations. All
// methods run on the per-request transaction when one is present so that
// wallet mutations and their ledger records commit together.
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter TxGetter) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new wallet with zero balances.
func (r *WalletWriteRepository) Create(ctx context.Context, wallet *models.WalletDB) error {
	query := `
		INSERT INTO wallets (wallet_id, user_id, owner_type, kind, balance, reserved_balance, wallet_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, 0, $5, NOW(), NOW())
	`
	args := []any{wallet.WalletID, wallet.UserID, wallet.OwnerType, wallet.Kind, wallet.WalletNumber}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GetForUpdate loads a wallet under a row lock. Concurrent mutations on
// the same wallet serialize here; call only inside a transaction.
func (r *WalletWriteRepository) GetForUpdate(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1 FOR UPDATE`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &wallet, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Reserve earmarks amount on a wallet. The guard keeps the available
// balance non-negative; sql.ErrNoRows means insufficient funds.
func (r *WalletWriteRepository) Reserve(ctx context.Context, walletID uuid.UUID, amount int64) error {
	query := `
		UPDATE wallets
		SET reserved_balance = reserved_balance + $2, updated_at = NOW()
		WHERE wallet_id = $1 AND balance - reserved_balance >= $2
		RETURNING reserved_balance
	`

	var reserved int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &reserved, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", reserved,
		"error", err,
	)

	return err
}

// Release lifts a reservation without moving funds.
func (r *WalletWriteRepository) Release(ctx context.Context, walletID uuid.UUID, amount int64) error {
	query := `
		UPDATE wallets
		SET reserved_balance = reserved_balance - $2, updated_at = NOW()
		WHERE wallet_id = $1 AND reserved_balance >= $2
		RETURNING reserved_balance
	`

	var reserved int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &reserved, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", reserved,
		"error", err,
	)

	return err
}

// DebitReserved settles a previously reserved amount: both balance and
// reservation drop together.
func (r *WalletWriteRepository) DebitReserved(ctx context.Context, walletID uuid.UUID, amount int64) error {
	query := `
		UPDATE wallets
		SET balance = balance - $2, reserved_balance = reserved_balance - $2, updated_at = NOW()
		WHERE wallet_id = $1 AND balance >= $2 AND reserved_balance >= $2
		RETURNING balance
	`

	var balance int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", balance,
		"error", err,
	)

	return err
}

// Debit removes spendable funds. The guard is on the available balance so
// reserved funds can never be spent; sql.ErrNoRows means insufficient.
func (r *WalletWriteRepository) Debit(ctx context.Context, walletID uuid.UUID, amount int64) error {
	query := `
		UPDATE wallets
		SET balance = balance - $2, updated_at = NOW()
		WHERE wallet_id = $1 AND balance - reserved_balance >= $2
		RETURNING balance
	`

	var balance int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", balance,
		"error", err,
	)

	return err
}

// Credit adds funds to a wallet.
func (r *WalletWriteRepository) Credit(ctx context.Context, walletID uuid.UUID, amount int64) error {
	query := `
		UPDATE wallets
		SET balance = balance + $2, updated_at = NOW()
		WHERE wallet_id = $1
		RETURNING balance
	`

	var balance int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", balance,
		"error", err,
	)

	return err
}
