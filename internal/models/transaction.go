package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the status of a ledger movement.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// TransactionPurpose tags what a movement was for.
type TransactionPurpose string

const (
	TransactionPurposeTransfer   TransactionPurpose = "transfer"
	TransactionPurposePayment    TransactionPurpose = "payment"
	TransactionPurposeSettlement TransactionPurpose = "settlement"
)

// TransactionDB is an immutable record of a balance movement between two
// wallets. Rows are inserted in the same database transaction that mutates
// the wallet balances and are never updated once terminal.
type TransactionDB struct {
	TransactionID    uuid.UUID          `db:"transaction_id"`
	ReferenceCode    string             `db:"reference_code"`
	FromWalletID     uuid.UUID          `db:"from_wallet_id"`
	ToWalletID       uuid.UUID          `db:"to_wallet_id"`
	Amount           int64              `db:"amount"`
	Status           TransactionStatus  `db:"status"`
	Purpose          TransactionPurpose `db:"purpose"`
	PaymentRequestID *uuid.UUID         `db:"payment_request_id"`
	Description      string             `db:"description"`
	CreatedAt        time.Time          `db:"created_at"`
	UpdatedAt        time.Time          `db:"updated_at"`
}
