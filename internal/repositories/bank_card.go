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

const bankCardColumns = `
	card_id, user_id, bank_name, card_number, card_holder_name, is_default,
	status, is_active, sheba, rejection_reason, last_used, created_at, updated_at
`

// BankCardReadRepository handles bank-card reads.
type BankCardReadRepository struct {
	db *sqlx.DB
}

func NewBankCardReadRepository(db *sqlx.DB) *BankCardReadRepository {
	return &BankCardReadRepository{db: db}
}

// GetByID returns an active card, nil if absent or soft-deleted.
func (r *BankCardReadRepository) GetByID(ctx context.Context, cardID uuid.UUID) (*models.BankCardDB, error) {
	query := `SELECT ` + bankCardColumns + ` FROM bank_cards WHERE card_id = $1 AND is_active`

	var card models.BankCardDB
	err := r.db.GetContext(ctx, &card, query, cardID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{cardID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// ListByUser returns a user's active cards, default first.
func (r *BankCardReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BankCardDB, error) {
	query := `
		SELECT ` + bankCardColumns + `
		FROM bank_cards
		WHERE user_id = $1 AND is_active
		ORDER BY is_default DESC, created_at DESC
	`

	var cards []models.BankCardDB
	err := r.db.SelectContext(ctx, &cards, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(cards),
		"error", err,
	)

	return cards, err
}

// ListStalePending returns active pending cards older than the threshold.
// The validation sweep re-enqueues them.
func (r *BankCardReadRepository) ListStalePending(ctx context.Context, olderThan time.Time) ([]models.BankCardDB, error) {
	query := `
		SELECT ` + bankCardColumns + `
		FROM bank_cards
		WHERE status = $1 AND is_active AND updated_at < $2
	`

	var cards []models.BankCardDB
	err := r.db.SelectContext(ctx, &cards, query, models.BankCardStatusPending, olderThan)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{olderThan},
		"result", len(cards),
		"error", err,
	)

	return cards, err
}

// BankCardWriteRepository handles bank-card mutations.
type BankCardWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBankCardWriteRepository(db *sqlx.DB, txGetter TxGetter) *BankCardWriteRepository {
	return &BankCardWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a card in pending status. A card number already held by
// an active card trips the partial unique index; callers check the error
// with IsUniqueViolation.
func (r *BankCardWriteRepository) Create(ctx context.Context, card *models.BankCardDB) error {
	query := `
		INSERT INTO bank_cards (card_id, user_id, bank_name, card_number, card_holder_name, is_default, status, is_active, sheba, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8, NOW(), NOW())
	`
	args := []any{
		card.CardID, card.UserID, card.BankName, card.CardNumber,
		card.CardHolderName, card.IsDefault, card.Status, card.Sheba,
	}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SetDefault makes one card the user's default. Clearing the previous
// default first keeps the partial unique index satisfied mid-statement.
func (r *BankCardWriteRepository) SetDefault(ctx context.Context, userID, cardID uuid.UUID) (bool, error) {
	clearQuery := `
		UPDATE bank_cards
		SET is_default = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND is_default AND card_id <> $2
	`
	if _, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, clearQuery, userID, cardID); err != nil {
		return false, err
	}

	query := `
		UPDATE bank_cards
		SET is_default = TRUE, updated_at = NOW()
		WHERE card_id = $1 AND user_id = $2 AND is_active
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, cardID, userID)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{cardID, userID},
		"result", affected,
		"error", err,
	)

	return affected == 1, err
}

// UpdateStatusIfPending records a validation outcome. The status predicate
// discards outcomes that arrive after the card left pending, so a stale
// worker result cannot overwrite a later edit.
func (r *BankCardWriteRepository) UpdateStatusIfPending(
	ctx context.Context, cardID uuid.UUID, status models.BankCardStatus, bankName, sheba, rejectionReason *string,
) (bool, error) {
	query := `
		UPDATE bank_cards
		SET status = $2, bank_name = COALESCE($3, bank_name), sheba = COALESCE($4, sheba), rejection_reason = $5, updated_at = NOW()
		WHERE card_id = $1 AND status = $6
	`
	args := []any{cardID, status, bankName, sheba, rejectionReason, models.BankCardStatusPending}

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

// ResetForEdit rewrites a rejected card's details and resubmits it as
// pending. Only rejected cards are editable.
func (r *BankCardWriteRepository) ResetForEdit(
	ctx context.Context, cardID, userID uuid.UUID, cardNumber, cardHolderName string, sheba *string,
) (bool, error) {
	query := `
		UPDATE bank_cards
		SET card_number = $3, card_holder_name = $4, sheba = $5,
		    status = $6, rejection_reason = NULL, bank_name = NULL, updated_at = NOW()
		WHERE card_id = $1 AND user_id = $2 AND status = $7 AND is_active
	`
	args := []any{
		cardID, userID, cardNumber, cardHolderName, sheba,
		models.BankCardStatusPending, models.BankCardStatusRejected,
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

// SoftDelete deactivates a card. The default flag drops with it so the
// partial unique index frees up for the next default.
func (r *BankCardWriteRepository) SoftDelete(ctx context.Context, cardID, userID uuid.UUID) (bool, error) {
	query := `
		UPDATE bank_cards
		SET is_active = FALSE, is_default = FALSE, updated_at = NOW()
		WHERE card_id = $1 AND user_id = $2 AND is_active
	`
	args := []any{cardID, userID}

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
