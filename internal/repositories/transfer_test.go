package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/stretchr/testify/assert"
)

func createTransfer(t *testing.T, conn *sqlx.DB, writer *TransferWriteRepository, senderWalletID uuid.UUID, amount int64, expiresAt time.Time) uuid.UUID {
	t.Helper()
	transferID := uuid.New()
	err := writer.Create(context.Background(), &models.TransferRequestDB{
		TransferID:     transferID,
		ReferenceCode:  "WT" + transferID.String()[:10],
		SenderWalletID: senderWalletID,
		Amount:         amount,
		Status:         models.TransferStatusPending,
		ExpiresAt:      expiresAt,
	})
	assert.NoError(t, err)
	return transferID
}

func TestTransferCreateAndGet(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "sender", "09121000001")
	senderWalletID := createWallet(t, conn, userID, models.WalletKindCash, 1000)

	writer := NewTransferWriteRepository(conn, nil)
	reader := NewTransferReadRepository(conn)

	transferID := createTransfer(t, conn, writer, senderWalletID, 300, time.Now().Add(time.Hour))

	transfer, err := reader.GetByID(ctx, transferID)
	assert.NoError(t, err)
	assert.NotNil(t, transfer)
	assert.Equal(t, models.TransferStatusPending, transfer.Status)
	assert.Nil(t, transfer.ReceiverWalletID)
	assert.Nil(t, transfer.TransactionID)

	missing, err := reader.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTransferMarkSuccessOnce(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	senderID := createUser(t, conn, "sender2", "09121000002")
	receiverID := createUser(t, conn, "receiver2", "09121000003")
	senderWalletID := createWallet(t, conn, senderID, models.WalletKindCash, 1000)
	receiverWalletID := createWallet(t, conn, receiverID, models.WalletKindCash, 0)

	writer := NewTransferWriteRepository(conn, nil)
	transferID := createTransfer(t, conn, writer, senderWalletID, 300, time.Now().Add(time.Hour))

	txnID := uuid.New()
	_, err := conn.Exec(
		`INSERT INTO transactions (transaction_id, reference_code, from_wallet_id, to_wallet_id, amount, status, purpose) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		txnID, "TRX"+txnID.String()[:10], senderWalletID, receiverWalletID, 300, models.TransactionStatusSuccess, models.TransactionPurposeTransfer)
	assert.NoError(t, err)

	ok, err := writer.MarkSuccess(ctx, transferID, receiverWalletID, txnID)
	assert.NoError(t, err)
	assert.True(t, ok)

	// A second confirm finds no pending row.
	ok, err = writer.MarkSuccess(ctx, transferID, receiverWalletID, txnID)
	assert.NoError(t, err)
	assert.False(t, ok)

	// So does a late reject.
	ok, err = writer.MarkTerminal(ctx, transferID, models.TransferStatusRejected)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestTransferConcurrentConfirm(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	senderID := createUser(t, conn, "sender3", "09121000004")
	receiverID := createUser(t, conn, "receiver3", "09121000005")
	senderWalletID := createWallet(t, conn, senderID, models.WalletKindCash, 1000)
	receiverWalletID := createWallet(t, conn, receiverID, models.WalletKindCash, 0)

	writer := NewTransferWriteRepository(conn, nil)
	transferID := createTransfer(t, conn, writer, senderWalletID, 300, time.Now().Add(time.Hour))

	txnID := uuid.New()
	_, err := conn.Exec(
		`INSERT INTO transactions (transaction_id, reference_code, from_wallet_id, to_wallet_id, amount, status, purpose) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		txnID, "TRX"+txnID.String()[:10], senderWalletID, receiverWalletID, 300, models.TransactionStatusSuccess, models.TransactionPurposeTransfer)
	assert.NoError(t, err)

	const numGoroutines = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	confirmed := 0

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			ok, err := writer.MarkSuccess(ctx, transferID, receiverWalletID, txnID)
			if err == nil && ok {
				mu.Lock()
				confirmed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, confirmed)
}

func TestTransferListPendingExpired(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "sender4", "09121000006")
	senderWalletID := createWallet(t, conn, userID, models.WalletKindCash, 1000)

	writer := NewTransferWriteRepository(conn, nil)
	reader := NewTransferReadRepository(conn)

	expiredID := createTransfer(t, conn, writer, senderWalletID, 100, time.Now().Add(-time.Minute))
	createTransfer(t, conn, writer, senderWalletID, 100, time.Now().Add(time.Hour))

	transfers, err := reader.ListPendingExpired(ctx, time.Now())
	assert.NoError(t, err)
	assert.Len(t, transfers, 1)
	assert.Equal(t, expiredID, transfers[0].TransferID)
}
