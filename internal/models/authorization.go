package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizationStatus transitions: active -> settled | released | expired.
type AuthorizationStatus string

const (
	AuthorizationStatusActive   AuthorizationStatus = "active"
	AuthorizationStatusSettled  AuthorizationStatus = "settled"
	AuthorizationStatusReleased AuthorizationStatus = "released"
	AuthorizationStatusExpired  AuthorizationStatus = "expired"
)

// CreditAuthorizationDB is a hold placed against a payment request without
// immediately moving funds. At most one active row may exist per payment
// request; a partial unique index enforces this.
type CreditAuthorizationDB struct {
	AuthorizationID  uuid.UUID           `db:"authorization_id"`
	ReferenceCode    string              `db:"reference_code"`
	UserID           uuid.UUID           `db:"user_id"`
	PaymentRequestID uuid.UUID           `db:"payment_request_id"`
	Amount           int64               `db:"amount"`
	Status           AuthorizationStatus `db:"status"`
	ExpiresAt        *time.Time          `db:"expires_at"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}

// IsActive is a computed check: the stored status alone is not trusted once
// expires_at has passed. Callers must use this before honouring a hold.
func (a *CreditAuthorizationDB) IsActive(now time.Time) bool {
	if a.Status != AuthorizationStatusActive {
		return false
	}
	if a.ExpiresAt != nil && !now.Before(*a.ExpiresAt) {
		return false
	}
	return true
}
