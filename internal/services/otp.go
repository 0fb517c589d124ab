package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/repositories"
)

// Error variables
var (
	ErrOTPInvalid = errors.New("invalid or expired otp code")
)

// OTPPurposePayment scopes payment-confirmation codes.
const OTPPurposePayment = "payment"

// OTPStore defines the code store operations.
type OTPStore interface {
	Set(ctx context.Context, phoneNumber, purpose, code string) error
	Get(ctx context.Context, phoneNumber, purpose string) (string, error)
	Delete(ctx context.Context, phoneNumber, purpose string) error
}

// OTPService issues and verifies one-time codes. Actual SMS delivery is out
// of scope; codes are stored and logged.
type OTPService struct {
	store  OTPStore
	digits int
	rand   *rand.Rand
}

// NewOTPService creates an OTPService emitting codes of the given length.
func NewOTPService(store OTPStore, digits int) *OTPService {
	return &OTPService{
		store:  store,
		digits: digits,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand pins the random source. Used by tests.
func (svc *OTPService) WithRand(r *rand.Rand) *OTPService {
	svc.rand = r
	return svc
}

// Send stores a fresh code for the phone number, replacing any previous
// one. The store's TTL bounds the code lifetime.
func (svc *OTPService) Send(ctx context.Context, phoneNumber, purpose string) error {
	code := svc.code()
	if err := svc.store.Set(ctx, phoneNumber, purpose, code); err != nil {
		logger.Log.Errorw("failed to store otp", "phone_number", phoneNumber, "err", err)
		return err
	}

	logger.Log.Infow("otp issued", "phone_number", phoneNumber, "purpose", purpose, "code", code)
	return nil
}

// Verify checks the submitted code. The code is consumed on success only;
// a mismatch leaves it in place and the TTL caps retries.
func (svc *OTPService) Verify(ctx context.Context, phoneNumber, purpose, code string) error {
	stored, err := svc.store.Get(ctx, phoneNumber, purpose)
	if errors.Is(err, repositories.ErrOTPNotFound) {
		return ErrOTPInvalid
	}
	if err != nil {
		logger.Log.Errorw("failed to read otp", "phone_number", phoneNumber, "err", err)
		return err
	}
	if stored != code {
		return ErrOTPInvalid
	}

	if err := svc.store.Delete(ctx, phoneNumber, purpose); err != nil {
		logger.Log.Errorw("failed to consume otp", "phone_number", phoneNumber, "err", err)
		return err
	}
	return nil
}

func (svc *OTPService) code() string {
	max := int64(1)
	for i := 0; i < svc.digits; i++ {
		max *= 10
	}
	return fmt.Sprintf("%0*d", svc.digits, svc.rand.Int63n(max))
}
