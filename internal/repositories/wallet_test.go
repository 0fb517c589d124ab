package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/saeedpay/wallet-ledger/internal/db"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var conn *sqlx.DB
	for i := 0; i < 10; i++ {
		conn, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	conn.SetMaxOpenConns(20)
	conn.SetMaxIdleConns(10)
	conn.SetConnMaxLifetime(5 * time.Minute)

	assert.NoError(t, db.Migrate(ctx, conn))

	return conn, func() {
		conn.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func createUser(t *testing.T, conn *sqlx.DB, username, phone string) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	_, err := conn.Exec(`INSERT INTO users (user_id, username, phone_number, password_hash) VALUES ($1, $2, $3, $4)`,
		userID, username, phone, "hash")
	assert.NoError(t, err)
	return userID
}

func createWallet(t *testing.T, conn *sqlx.DB, userID uuid.UUID, kind models.WalletKind, balance int64) uuid.UUID {
	t.Helper()
	walletID := uuid.New()
	_, err := conn.Exec(
		`INSERT INTO wallets (wallet_id, user_id, owner_type, kind, balance, reserved_balance, wallet_number) VALUES ($1, $2, $3, $4, $5, 0, $6)`,
		walletID, userID, models.OwnerTypeCustomer, kind, balance, models.WalletKindPrefix[kind]+walletID.String()[:10])
	assert.NoError(t, err)
	return walletID
}

func getWallet(t *testing.T, conn *sqlx.DB, walletID uuid.UUID) models.WalletDB {
	t.Helper()
	var w models.WalletDB
	err := conn.Get(&w, `SELECT `+walletColumns+` FROM wallets WHERE wallet_id = $1`, walletID)
	assert.NoError(t, err)
	return w
}

// --- Reserve / Release ---
func TestReserveAndRelease(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "alice", "09120000001")
	walletID := createWallet(t, conn, userID, models.WalletKindCash, 1000)

	writer := NewWalletWriteRepository(conn, nil)

	assert.NoError(t, writer.Reserve(ctx, walletID, 400))
	w := getWallet(t, conn, walletID)
	assert.Equal(t, int64(1000), w.Balance)
	assert.Equal(t, int64(400), w.ReservedBalance)
	assert.Equal(t, int64(600), w.AvailableBalance())

	// Only the available part can be reserved again.
	err := writer.Reserve(ctx, walletID, 700)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, writer.Release(ctx, walletID, 400))
	w = getWallet(t, conn, walletID)
	assert.Equal(t, int64(1000), w.Balance)
	assert.Equal(t, int64(0), w.ReservedBalance)

	err = writer.Release(ctx, walletID, 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

// --- Debit / Credit ---
func TestDebitRespectsReservation(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "bob", "09120000002")
	walletID := createWallet(t, conn, userID, models.WalletKindCash, 1000)

	writer := NewWalletWriteRepository(conn, nil)

	assert.NoError(t, writer.Reserve(ctx, walletID, 800))

	// Reserved funds are not spendable.
	err := writer.Debit(ctx, walletID, 300)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, writer.Debit(ctx, walletID, 200))
	w := getWallet(t, conn, walletID)
	assert.Equal(t, int64(800), w.Balance)
	assert.Equal(t, int64(800), w.ReservedBalance)
	assert.Equal(t, int64(0), w.AvailableBalance())
}

func TestDebitReserved(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "carol", "09120000003")
	walletID := createWallet(t, conn, userID, models.WalletKindCash, 1000)

	writer := NewWalletWriteRepository(conn, nil)

	assert.NoError(t, writer.Reserve(ctx, walletID, 600))
	assert.NoError(t, writer.DebitReserved(ctx, walletID, 600))

	w := getWallet(t, conn, walletID)
	assert.Equal(t, int64(400), w.Balance)
	assert.Equal(t, int64(0), w.ReservedBalance)

	// Without a matching reservation the settle is refused.
	err := writer.DebitReserved(ctx, walletID, 100)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCredit(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "dave", "09120000004")
	walletID := createWallet(t, conn, userID, models.WalletKindCash, 0)

	writer := NewWalletWriteRepository(conn, nil)

	assert.NoError(t, writer.Credit(ctx, walletID, 250))
	assert.NoError(t, writer.Credit(ctx, walletID, 250))

	w := getWallet(t, conn, walletID)
	assert.Equal(t, int64(500), w.Balance)
}

// --- Concurrency ---
func TestReserveConcurrency(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "concurrent", "09120000005")
	walletID := createWallet(t, conn, userID, models.WalletKindCash, 100)

	writer := NewWalletWriteRepository(conn, nil)

	const numGoroutines = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			if err := writer.Reserve(ctx, walletID, 10); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Only 10 reservations of 10 fit into a balance of 100.
	assert.Equal(t, 10, succeeded)
	w := getWallet(t, conn, walletID)
	assert.Equal(t, int64(100), w.ReservedBalance)
	assert.Equal(t, int64(0), w.AvailableBalance())
}

// --- Reads ---
func TestWalletReadRepository(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, conn, "erin", "09120000006")
	cashID := createWallet(t, conn, userID, models.WalletKindCash, 100)
	createWallet(t, conn, userID, models.WalletKindCredit, 0)

	reader := NewWalletReadRepository(conn)

	t.Run("GetByID", func(t *testing.T) {
		w, err := reader.GetByID(ctx, cashID)
		assert.NoError(t, err)
		assert.NotNil(t, w)
		assert.Equal(t, int64(100), w.Balance)

		w, err = reader.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, w)
	})

	t.Run("GetByOwner", func(t *testing.T) {
		w, err := reader.GetByOwner(ctx, userID, models.OwnerTypeCustomer, models.WalletKindCredit)
		assert.NoError(t, err)
		assert.NotNil(t, w)
		assert.Equal(t, models.WalletKindCredit, w.Kind)
	})

	t.Run("GetCashWalletByPhone", func(t *testing.T) {
		w, err := reader.GetCashWalletByPhone(ctx, "09120000006")
		assert.NoError(t, err)
		assert.NotNil(t, w)
		assert.Equal(t, cashID, w.WalletID)

		w, err = reader.GetCashWalletByPhone(ctx, "09129999999")
		assert.NoError(t, err)
		assert.Nil(t, w)
	})

	t.Run("ListByUser", func(t *testing.T) {
		wallets, err := reader.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, wallets, 2)
	})
}
