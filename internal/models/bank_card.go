package models

import (
	"time"

	"github.com/google/uuid"
)

// BankCardStatus transitions: pending -> verified | rejected,
// rejected -> pending (on edit, which resubmits for validation).
type BankCardStatus string

const (
	BankCardStatusPending  BankCardStatus = "pending"
	BankCardStatusVerified BankCardStatus = "verified"
	BankCardStatusRejected BankCardStatus = "rejected"
)

// BankCardDB represents a user's bank card. Cards are soft-deleted via
// is_active. Only one default card may exist per user, and only one
// verified row per raw card number across all users; both are partial
// unique indexes.
type BankCardDB struct {
	CardID          uuid.UUID      `db:"card_id"`
	UserID          uuid.UUID      `db:"user_id"`
	BankName        *string        `db:"bank_name"`
	CardNumber      string         `db:"card_number"`
	CardHolderName  string         `db:"card_holder_name"`
	IsDefault       bool           `db:"is_default"`
	Status          BankCardStatus `db:"status"`
	IsActive        bool           `db:"is_active"`
	Sheba           *string        `db:"sheba"`
	RejectionReason *string        `db:"rejection_reason"`
	LastUsed        *time.Time     `db:"last_used"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}
