package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
)

const transferColumns = `
	transfer_id, reference_code, sender_wallet_id, receiver_wallet_id,
	receiver_phone_number, amount, description, status, transaction_id,
	expires_at, created_at, updated_at
`

// TransferReadRepository handles transfer-request reads.
type TransferReadRepository struct {
	db *sqlx.DB
}

func NewTransferReadRepository(db *sqlx.DB) *TransferReadRepository {
	return &TransferReadRepository{db: db}
}

// GetByID returns a transfer request, nil if absent.
func (r *TransferReadRepository) GetByID(ctx context.Context, transferID uuid.UUID) (*models.TransferRequestDB, error) {
	query := `SELECT ` + transferColumns + ` FROM transfer_requests WHERE transfer_id = $1`

	var transfer models.TransferRequestDB
	err := r.db.GetContext(ctx, &transfer, query, transferID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transferID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

// ReferenceCodeExists reports whether a candidate reference code is taken.
func (r *TransferReadRepository) ReferenceCodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM transfer_requests WHERE reference_code = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, code)
	return exists, err
}

// ListPendingExpired returns pending transfers whose deadline has passed.
func (r *TransferReadRepository) ListPendingExpired(ctx context.Context, now time.Time) ([]models.TransferRequestDB, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfer_requests
		WHERE status = $1 AND expires_at < $2
	`

	var transfers []models.TransferRequestDB
	err := r.db.SelectContext(ctx, &transfers, query, models.TransferStatusPending, now)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{now},
		"result", len(transfers),
		"error", err,
	)

	return transfers, err
}

// TransferWriteRepository handles transfer-request mutations.
type TransferWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransferWriteRepository(db *sqlx.DB, txGetter TxGetter) *TransferWriteRepository {
	return &TransferWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a transfer request.
func (r *TransferWriteRepository) Create(ctx context.Context, transfer *models.TransferRequestDB) error {
	query := `
		INSERT INTO transfer_requests (transfer_id, reference_code, sender_wallet_id, receiver_wallet_id, receiver_phone_number, amount, description, status, transaction_id, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	args := []any{
		transfer.TransferID, transfer.ReferenceCode, transfer.SenderWalletID,
		transfer.ReceiverWalletID, transfer.ReceiverPhoneNumber, transfer.Amount,
		transfer.Description, transfer.Status, transfer.TransactionID, transfer.ExpiresAt,
	}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GetForUpdate loads a transfer request under a row lock.
func (r *TransferWriteRepository) GetForUpdate(ctx context.Context, transferID uuid.UUID) (*models.TransferRequestDB, error) {
	query := `SELECT ` + transferColumns + ` FROM transfer_requests WHERE transfer_id = $1 FOR UPDATE`

	var transfer models.TransferRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &transfer, query, transferID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transferID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

// MarkSuccess flips a pending transfer to success, attaching the receiver
// wallet and the ledger record. The status predicate makes concurrent
// confirms race-safe: exactly one caller sees an affected row.
func (r *TransferWriteRepository) MarkSuccess(
	ctx context.Context, transferID, receiverWalletID, transactionID uuid.UUID,
) (bool, error) {
	query := `
		UPDATE transfer_requests
		SET status = $2, receiver_wallet_id = $3, transaction_id = $4, updated_at = NOW()
		WHERE transfer_id = $1 AND status = $5
	`
	args := []any{transferID, models.TransferStatusSuccess, receiverWalletID, transactionID, models.TransferStatusPending}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", affected,
		"error", err,
	)

	return affected == 1, err
}

// MarkTerminal flips a pending transfer to rejected or expired.
func (r *TransferWriteRepository) MarkTerminal(
	ctx context.Context, transferID uuid.UUID, status models.TransferStatus,
) (bool, error) {
	query := `
		UPDATE transfer_requests
		SET status = $2, updated_at = NOW()
		WHERE transfer_id = $1 AND status = $3
	`
	args := []any{transferID, status, models.TransferStatusPending}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", affected,
		"error", err,
	)

	return affected == 1, err
}
