package models

import (
	"time"

	"github.com/google/uuid"
)

// OwnerType distinguishes customer and merchant wallet owners.
type OwnerType string

const (
	OwnerTypeCustomer OwnerType = "customer"
	OwnerTypeMerchant OwnerType = "merchant"
)

// WalletKind scopes multiple wallets per owner.
type WalletKind string

const (
	WalletKindCash            WalletKind = "cash"
	WalletKindCredit          WalletKind = "credit"
	WalletKindCashback        WalletKind = "cashback"
	WalletKindMerchantGateway WalletKind = "merchant_gateway"
)

// WalletKindPrefix maps a kind to the leading digits of its wallet number.
var WalletKindPrefix = map[WalletKind]string{
	WalletKindCash:            "60",
	WalletKindCredit:          "61",
	WalletKindCashback:        "62",
	WalletKindMerchantGateway: "70",
}

// DefaultWallets lists the wallets provisioned at registration per owner type.
var DefaultWallets = map[OwnerType][]WalletKind{
	OwnerTypeCustomer: {WalletKindCash, WalletKindCredit, WalletKindCashback},
	OwnerTypeMerchant: {WalletKindMerchantGateway},
}

// WalletDB represents a wallet row. Balances are integer rials
// (smallest currency unit).
type WalletDB struct {
	WalletID        uuid.UUID  `db:"wallet_id"`
	UserID          uuid.UUID  `db:"user_id"`
	OwnerType       OwnerType  `db:"owner_type"`
	Kind            WalletKind `db:"kind"`
	Balance         int64      `db:"balance"`
	ReservedBalance int64      `db:"reserved_balance"`
	WalletNumber    string     `db:"wallet_number"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// AvailableBalance is the spendable part of the balance: total minus the
// amount reserved for pending obligations. The schema guarantees
// reserved_balance <= balance, so this is never negative.
func (w *WalletDB) AvailableBalance() int64 {
	return w.Balance - w.ReservedBalance
}
