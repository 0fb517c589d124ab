package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/stretchr/testify/assert"
)

func createCard(t *testing.T, conn *sqlx.DB, writer *BankCardWriteRepository, userID uuid.UUID, cardNumber string, isDefault bool) uuid.UUID {
	t.Helper()
	cardID := uuid.New()
	err := writer.Create(context.Background(), &models.BankCardDB{
		CardID:         cardID,
		UserID:         userID,
		CardNumber:     cardNumber,
		CardHolderName: "holder",
		IsDefault:      isDefault,
		Status:         models.BankCardStatusPending,
	})
	assert.NoError(t, err)
	return cardID
}

func TestBankCardDefaultUniquePerUser(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "cardholder1", "09124000001")

	writer := NewBankCardWriteRepository(conn, nil)
	reader := NewBankCardReadRepository(conn)

	firstID := createCard(t, conn, writer, userID, "6037991234567890", true)
	secondID := createCard(t, conn, writer, userID, "6219861234567890", false)

	// A direct second default insert violates the partial unique index.
	err := writer.Create(ctx, &models.BankCardDB{
		CardID:         uuid.New(),
		UserID:         userID,
		CardNumber:     "5022291234567890",
		CardHolderName: "holder",
		IsDefault:      true,
		Status:         models.BankCardStatusPending,
	})
	assert.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	// SetDefault moves the flag atomically within the transaction.
	ok, err := writer.SetDefault(ctx, userID, secondID)
	assert.NoError(t, err)
	assert.True(t, ok)

	cards, err := reader.ListByUser(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, secondID, cards[0].CardID)
	assert.True(t, cards[0].IsDefault)

	first, err := reader.GetByID(ctx, firstID)
	assert.NoError(t, err)
	assert.False(t, first.IsDefault)
}

func TestBankCardUpdateStatusIfPending(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "cardholder2", "09124000002")

	writer := NewBankCardWriteRepository(conn, nil)
	reader := NewBankCardReadRepository(conn)

	cardID := createCard(t, conn, writer, userID, "6037991234567891", false)

	bankName := "Bank Melli"
	sheba := "IR123456789012345678901234"
	ok, err := writer.UpdateStatusIfPending(ctx, cardID, models.BankCardStatusVerified, &bankName, &sheba, nil)
	assert.NoError(t, err)
	assert.True(t, ok)

	// A stale worker outcome arriving later is discarded.
	reason := "name mismatch"
	ok, err = writer.UpdateStatusIfPending(ctx, cardID, models.BankCardStatusRejected, nil, nil, &reason)
	assert.NoError(t, err)
	assert.False(t, ok)

	card, err := reader.GetByID(ctx, cardID)
	assert.NoError(t, err)
	assert.Equal(t, models.BankCardStatusVerified, card.Status)
	assert.NotNil(t, card.BankName)
	assert.Equal(t, bankName, *card.BankName)
	assert.NotNil(t, card.Sheba)
	assert.Equal(t, sheba, *card.Sheba)
	assert.Nil(t, card.RejectionReason)
}

func TestBankCardActiveNumberUnique(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	aliceID := createUser(t, conn, "cardholder3", "09124000003")
	bobID := createUser(t, conn, "cardholder4", "09124000004")

	writer := NewBankCardWriteRepository(conn, nil)

	const cardNumber = "6037991234567892"
	aliceCard := createCard(t, conn, writer, aliceID, cardNumber, false)

	// The same number cannot be registered again while an active card
	// holds it, regardless of owner.
	err := writer.Create(ctx, &models.BankCardDB{
		CardID:         uuid.New(),
		UserID:         bobID,
		CardNumber:     cardNumber,
		CardHolderName: "holder",
		Status:         models.BankCardStatusPending,
	})
	assert.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	// Soft-deleting the holder frees the number for re-registration.
	ok, err := writer.SoftDelete(ctx, aliceCard, aliceID)
	assert.NoError(t, err)
	assert.True(t, ok)

	createCard(t, conn, writer, bobID, cardNumber, false)
}

func TestBankCardResetForEdit(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "cardholder5", "09124000005")

	writer := NewBankCardWriteRepository(conn, nil)
	reader := NewBankCardReadRepository(conn)

	cardID := createCard(t, conn, writer, userID, "6037991234567893", false)

	// Pending cards are not editable.
	ok, err := writer.ResetForEdit(ctx, cardID, userID, "6219861234567893", "new holder", nil)
	assert.NoError(t, err)
	assert.False(t, ok)

	reason := "invalid card"
	ok, err = writer.UpdateStatusIfPending(ctx, cardID, models.BankCardStatusRejected, nil, nil, &reason)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = writer.ResetForEdit(ctx, cardID, userID, "6219861234567893", "new holder", nil)
	assert.NoError(t, err)
	assert.True(t, ok)

	card, err := reader.GetByID(ctx, cardID)
	assert.NoError(t, err)
	assert.Equal(t, models.BankCardStatusPending, card.Status)
	assert.Equal(t, "6219861234567893", card.CardNumber)
	assert.Equal(t, "new holder", card.CardHolderName)
	assert.Nil(t, card.RejectionReason)
}

func TestBankCardSoftDelete(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "cardholder6", "09124000006")
	otherID := createUser(t, conn, "cardholder7", "09124000007")

	writer := NewBankCardWriteRepository(conn, nil)
	reader := NewBankCardReadRepository(conn)

	cardID := createCard(t, conn, writer, userID, "6037991234567894", true)

	// Another user cannot delete the card.
	ok, err := writer.SoftDelete(ctx, cardID, otherID)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = writer.SoftDelete(ctx, cardID, userID)
	assert.NoError(t, err)
	assert.True(t, ok)

	card, err := reader.GetByID(ctx, cardID)
	assert.NoError(t, err)
	assert.Nil(t, card)

	cards, err := reader.ListByUser(ctx, userID)
	assert.NoError(t, err)
	assert.Empty(t, cards)

	// Deletion frees the default slot for a new card.
	createCard(t, conn, writer, userID, "6219861234567894", true)
}

func TestBankCardListStalePending(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "cardholder8", "09124000008")

	writer := NewBankCardWriteRepository(conn, nil)
	reader := NewBankCardReadRepository(conn)

	staleID := createCard(t, conn, writer, userID, "6037991234567895", false)
	createCard(t, conn, writer, userID, "6219861234567895", false)

	_, err := conn.Exec(`UPDATE bank_cards SET updated_at = NOW() - INTERVAL '1 hour' WHERE card_id = $1`, staleID)
	assert.NoError(t, err)

	cards, err := reader.ListStalePending(ctx, time.Now().Add(-30*time.Minute))
	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, staleID, cards[0].CardID)
}
