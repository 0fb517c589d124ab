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

const authorizationColumns = `
	authorization_id, reference_code, user_id, payment_request_id,
	amount, status, expires_at, created_at, updated_at
`

// AuthorizationReadRepository handles credit-authorization reads.
type AuthorizationReadRepository struct {
	db *sqlx.DB
}

func NewAuthorizationReadRepository(db *sqlx.DB) *AuthorizationReadRepository {
	return &AuthorizationReadRepository{db: db}
}

// GetByID returns an authorization, nil if absent.
func (r *AuthorizationReadRepository) GetByID(ctx context.Context, authorizationID uuid.UUID) (*models.CreditAuthorizationDB, error) {
	query := `SELECT ` + authorizationColumns + ` FROM credit_authorizations WHERE authorization_id = $1`

	var auth models.CreditAuthorizationDB
	err := r.db.GetContext(ctx, &auth, query, authorizationID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authorizationID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// ReferenceCodeExists reports whether a candidate reference code is taken.
func (r *AuthorizationReadRepository) ReferenceCodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM credit_authorizations WHERE reference_code = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, code)
	return exists, err
}

// ListActiveExpired returns active holds whose deadline has passed.
func (r *AuthorizationReadRepository) ListActiveExpired(ctx context.Context, now time.Time) ([]models.CreditAuthorizationDB, error) {
	query := `
		SELECT ` + authorizationColumns + `
		FROM credit_authorizations
		WHERE status = $1 AND expires_at IS NOT NULL AND expires_at < $2
	`

	var auths []models.CreditAuthorizationDB
	err := r.db.SelectContext(ctx, &auths, query, models.AuthorizationStatusActive, now)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{now},
		"result", len(auths),
		"error", err,
	)

	return auths, err
}

// AuthorizationWriteRepository handles credit-authorization mutations.
type AuthorizationWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAuthorizationWriteRepository(db *sqlx.DB, txGetter TxGetter) *AuthorizationWriteRepository {
	return &AuthorizationWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts an authorization. When an active hold already exists for
// the payment request, the partial unique index rejects the insert; callers
// check the error with IsUniqueViolation.
func (r *AuthorizationWriteRepository) Create(ctx context.Context, auth *models.CreditAuthorizationDB) error {
	query := `
		INSERT INTO credit_authorizations (authorization_id, reference_code, user_id, payment_request_id, amount, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	args := []any{
		auth.AuthorizationID, auth.ReferenceCode, auth.UserID,
		auth.PaymentRequestID, auth.Amount, auth.Status, auth.ExpiresAt,
	}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GetActiveForUpdate locks the active hold on a payment request, nil when
// no active hold exists.
func (r *AuthorizationWriteRepository) GetActiveForUpdate(ctx context.Context, paymentRequestID uuid.UUID) (*models.CreditAuthorizationDB, error) {
	query := `
		SELECT ` + authorizationColumns + `
		FROM credit_authorizations
		WHERE payment_request_id = $1 AND status = $2
		FOR UPDATE
	`

	var auth models.CreditAuthorizationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &auth, query, paymentRequestID, models.AuthorizationStatusActive)

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
	return &auth, nil
}

// MarkTerminal flips an active hold to settled, released or expired. The
// status predicate makes concurrent settle/release race-safe.
func (r *AuthorizationWriteRepository) MarkTerminal(
	ctx context.Context, authorizationID uuid.UUID, status models.AuthorizationStatus,
) (bool, error) {
	query := `
		UPDATE credit_authorizations
		SET status = $2, updated_at = NOW()
		WHERE authorization_id = $1 AND status = $3
	`
	args := []any{authorizationID, status, models.AuthorizationStatusActive}

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
