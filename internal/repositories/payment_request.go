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

const paymentRequestColumns = `
	payment_request_id, reference_code, merchant_wallet_id, amount,
	description, status, paid_by_user_id, paid_wallet_id, expires_at,
	paid_at, created_at, updated_at
`

// PaymentRequestReadRepository handles payment-request reads.
type PaymentRequestReadRepository struct {
	db *sqlx.DB
}

func NewPaymentRequestReadRepository(db *sqlx.DB) *PaymentRequestReadRepository {
	return &PaymentRequestReadRepository{db: db}
}

// GetByReferenceCode returns a payment request, nil if absent.
func (r *PaymentRequestReadRepository) GetByReferenceCode(ctx context.Context, code string) (*models.PaymentRequestDB, error) {
	query := `SELECT ` + paymentRequestColumns + ` FROM payment_requests WHERE reference_code = $1`

	var pr models.PaymentRequestDB
	err := r.db.GetContext(ctx, &pr, query, code)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// ReferenceCodeExists reports whether a candidate reference code is taken.
func (r *PaymentRequestReadRepository) ReferenceCodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM payment_requests WHERE reference_code = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, code)
	return exists, err
}

// ListCreatedExpired returns created requests whose deadline has passed.
func (r *PaymentRequestReadRepository) ListCreatedExpired(ctx context.Context, now time.Time) ([]models.PaymentRequestDB, error) {
	query := `
		SELECT ` + paymentRequestColumns + `
		FROM payment_requests
		WHERE status = $1 AND expires_at < $2
	`

	var prs []models.PaymentRequestDB
	err := r.db.SelectContext(ctx, &prs, query, models.PaymentRequestStatusCreated, now)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{now},
		"result", len(prs),
		"error", err,
	)

	return prs, err
}

// PaymentRequestWriteRepository handles payment-request mutations.
type PaymentRequestWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPaymentRequestWriteRepository(db *sqlx.DB, txGetter TxGetter) *PaymentRequestWriteRepository {
	return &PaymentRequestWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a payment request.
func (r *PaymentRequestWriteRepository) Create(ctx context.Context, pr *models.PaymentRequestDB) error {
	query := `
		INSERT INTO payment_requests (payment_request_id, reference_code, merchant_wallet_id, amount, description, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	args := []any{
		pr.PaymentRequestID, pr.ReferenceCode, pr.MerchantWalletID,
		pr.Amount, pr.Description, pr.Status, pr.ExpiresAt,
	}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GetForUpdate loads a payment request under a row lock.
func (r *PaymentRequestWriteRepository) GetForUpdate(ctx context.Context, paymentRequestID uuid.UUID) (*models.PaymentRequestDB, error) {
	query := `SELECT ` + paymentRequestColumns + ` FROM payment_requests WHERE payment_request_id = $1 FOR UPDATE`

	var pr models.PaymentRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &pr, query, paymentRequestID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{paymentRequestID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// MarkCompleted flips a created request to completed, recording the payer.
// The status predicate guarantees a second confirm sees no affected row,
// so a completed request can never be charged twice.
func (r *PaymentRequestWriteRepository) MarkCompleted(
	ctx context.Context, paymentRequestID, paidByUserID, paidWalletID uuid.UUID, paidAt time.Time,
) (bool, error) {
	query := `
		UPDATE payment_requests
		SET status = $2, paid_by_user_id = $3, paid_wallet_id = $4, paid_at = $5, updated_at = NOW()
		WHERE payment_request_id = $1 AND status = $6
	`
	args := []any{
		paymentRequestID, models.PaymentRequestStatusCompleted,
		paidByUserID, paidWalletID, paidAt, models.PaymentRequestStatusCreated,
	}

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

// MarkExpired flips a created request to expired.
func (r *PaymentRequestWriteRepository) MarkExpired(ctx context.Context, paymentRequestID uuid.UUID) (bool, error) {
	query := `
		UPDATE payment_requests
		SET status = $2, updated_at = NOW()
		WHERE payment_request_id = $1 AND status = $3
	`
	args := []any{paymentRequestID, models.PaymentRequestStatusExpired, models.PaymentRequestStatusCreated}

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
