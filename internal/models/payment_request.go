package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRequestStatus transitions one-directionally:
// created -> completed | expired | cancelled.
type PaymentRequestStatus string

const (
	PaymentRequestStatusCreated   PaymentRequestStatus = "created"
	PaymentRequestStatusCompleted PaymentRequestStatus = "completed"
	PaymentRequestStatusExpired   PaymentRequestStatus = "expired"
	PaymentRequestStatusCancelled PaymentRequestStatus = "cancelled"
)

// PaymentRequestDB is a merchant-issued request for a customer to pay a
// fixed amount from a wallet.
type PaymentRequestDB struct {
	PaymentRequestID uuid.UUID            `db:"payment_request_id"`
	ReferenceCode    string               `db:"reference_code"`
	MerchantWalletID uuid.UUID            `db:"merchant_wallet_id"`
	Amount           int64                `db:"amount"`
	Description      string               `db:"description"`
	Status           PaymentRequestStatus `db:"status"`
	PaidByUserID     *uuid.UUID           `db:"paid_by_user_id"`
	PaidWalletID     *uuid.UUID           `db:"paid_wallet_id"`
	ExpiresAt        time.Time            `db:"expires_at"`
	PaidAt           *time.Time           `db:"paid_at"`
	CreatedAt        time.Time            `db:"created_at"`
	UpdatedAt        time.Time            `db:"updated_at"`
}

// IsExpired reports whether the request is past its deadline. Expiry is
// checked lazily at read/confirm time; a sweep keeps list views consistent.
func (p *PaymentRequestDB) IsExpired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && now.After(p.ExpiresAt)
}

// CanPay reports whether the request is payable right now. Balance is
// checked separately, under lock.
func (p *PaymentRequestDB) CanPay(now time.Time) bool {
	return p.Status == PaymentRequestStatusCreated && !p.IsExpired(now)
}
