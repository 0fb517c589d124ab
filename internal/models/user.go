package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row.
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`
	Username     string    `db:"username"`
	PhoneNumber  string    `db:"phone_number"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
