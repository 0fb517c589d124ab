package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
)

// TransactionWriteRepository inserts ledger records. Transactions are
// immutable once terminal; there is deliberately no update method.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter TxGetter) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a transaction row. Must be called in the same database
// transaction that mutates the wallet balances.
func (r *TransactionWriteRepository) Create(ctx context.Context, txn *models.TransactionDB) error {
	query := `
		INSERT INTO transactions (transaction_id, reference_code, from_wallet_id, to_wallet_id, amount, status, purpose, payment_request_id, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	args := []any{
		txn.TransactionID, txn.ReferenceCode, txn.FromWalletID, txn.ToWalletID,
		txn.Amount, txn.Status, txn.Purpose, txn.PaymentRequestID, txn.Description,
	}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// TransactionReadRepository handles ledger reads.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ReferenceCodeExists reports whether a candidate reference code is taken.
func (r *TransactionReadRepository) ReferenceCodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM transactions WHERE reference_code = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, code)
	return exists, err
}

// ListByWallet returns movements touching a wallet, newest first.
func (r *TransactionReadRepository) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]models.TransactionDB, error) {
	query := `
		SELECT transaction_id, reference_code, from_wallet_id, to_wallet_id,
		       amount, status, purpose, payment_request_id, description,
		       created_at, updated_at
		FROM transactions
		WHERE from_wallet_id = $1 OR to_wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, walletID, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, limit, offset},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
