package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saeedpay/wallet-ledger/internal/logger"
)

// ErrOTPNotFound is returned when no code is stored for the key, either
// because none was sent or because it expired.
var ErrOTPNotFound = errors.New("otp not found")

// OTPRepository stores one-time codes in Redis with a TTL. Expiry is
// handled entirely by Redis; a vanished key means the code lapsed.
type OTPRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewOTPRepository creates a repository with the given code lifetime.
func NewOTPRepository(client *redis.Client, expiration time.Duration) *OTPRepository {
	return &OTPRepository{
		client: client,
		exp:    expiration,
	}
}

func otpKey(phoneNumber, purpose string) string {
	return fmt.Sprintf("otp:%s:%s", purpose, phoneNumber)
}

// Set stores a code for the phone number, replacing any previous one.
func (r *OTPRepository) Set(ctx context.Context, phoneNumber, purpose, code string) error {
	key := otpKey(phoneNumber, purpose)
	err := r.client.Set(ctx, key, code, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Get returns the stored code, ErrOTPNotFound if absent or expired.
func (r *OTPRepository) Get(ctx context.Context, phoneNumber, purpose string) (string, error) {
	key := otpKey(phoneNumber, purpose)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrOTPNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Delete removes a code. Called after a successful verification so the
// code is single-use.
func (r *OTPRepository) Delete(ctx context.Context, phoneNumber, purpose string) error {
	key := otpKey(phoneNumber, purpose)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
