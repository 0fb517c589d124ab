package models

import (
	"time"

	"github.com/google/uuid"
)

// TransferStatus transitions: pending -> success | rejected | expired.
type TransferStatus string

const (
	TransferStatusPending  TransferStatus = "pending"
	TransferStatusSuccess  TransferStatus = "success"
	TransferStatusRejected TransferStatus = "rejected"
	TransferStatusExpired  TransferStatus = "expired"
)

// TransferRequestDB is a peer-to-peer transfer proposal. The amount is
// reserved on the sender wallet at creation time and released (or settled)
// when the request reaches a terminal status.
type TransferRequestDB struct {
	TransferID          uuid.UUID      `db:"transfer_id"`
	ReferenceCode       string         `db:"reference_code"`
	SenderWalletID      uuid.UUID      `db:"sender_wallet_id"`
	ReceiverWalletID    *uuid.UUID     `db:"receiver_wallet_id"`
	ReceiverPhoneNumber *string        `db:"receiver_phone_number"`
	Amount              int64          `db:"amount"`
	Description         string         `db:"description"`
	Status              TransferStatus `db:"status"`
	TransactionID       *uuid.UUID     `db:"transaction_id"`
	ExpiresAt           time.Time      `db:"expires_at"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

// IsExpired reports whether the request is past its confirmation deadline.
func (t *TransferRequestDB) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}
