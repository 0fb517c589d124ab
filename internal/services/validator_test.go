package services_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSandboxCardValidator_Validate(t *testing.T) {
	card := &models.BankCardDB{
		CardID:         uuid.New(),
		CardNumber:     "4111111111111111",
		CardHolderName: "Ali Rezaei",
		Status:         models.BankCardStatusPending,
	}

	t.Run("approval fills bank details", func(t *testing.T) {
		v := services.NewSandboxCardValidator(0).WithRand(rand.New(rand.NewSource(1)))

		var approved *services.ValidationResult
		for i := 0; i < 20; i++ {
			result, err := v.Validate(context.Background(), card)
			assert.NoError(t, err)
			if result.Approved {
				approved = result
				break
			}
		}

		assert.NotNil(t, approved)
		assert.NotEmpty(t, approved.BankName)
		assert.Equal(t, card.CardHolderName, approved.CardHolderName)
		assert.Len(t, approved.Sheba, 26)
		assert.Equal(t, "IR", approved.Sheba[:2])
	})

	t.Run("rejection carries a reason", func(t *testing.T) {
		v := services.NewSandboxCardValidator(0).WithRand(rand.New(rand.NewSource(1)))

		var rejected *services.ValidationResult
		for i := 0; i < 50; i++ {
			result, err := v.Validate(context.Background(), card)
			assert.NoError(t, err)
			if !result.Approved {
				rejected = result
				break
			}
		}

		assert.NotNil(t, rejected)
		assert.NotEmpty(t, rejected.Reason)
	})

	t.Run("cancelled context aborts the delay", func(t *testing.T) {
		v := services.NewSandboxCardValidator(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := v.Validate(ctx, card)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func pendingCard() *models.BankCardDB {
	return &models.BankCardDB{
		CardID:         uuid.New(),
		UserID:         uuid.New(),
		CardNumber:     "4111111111111111",
		CardHolderName: "Ali Rezaei",
		Status:         models.BankCardStatusPending,
		IsActive:       true,
	}
}

func newRunner(validator services.CardValidator, store services.CardValidationStore, sleeps *[]time.Duration) *services.CardValidationRunner {
	policy := services.RetryPolicy{
		MaxAttempts: 3,
		BackoffBase: time.Second,
		Sleep: func(_ context.Context, d time.Duration) error {
			if sleeps != nil {
				*sleeps = append(*sleeps, d)
			}
			return nil
		},
	}
	return services.NewCardValidationRunner(validator, store, nil, policy, time.Hour)
}

func TestCardValidationRunner_Run(t *testing.T) {
	t.Run("approval marks the card verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		validator := services.NewMockCardValidator(ctrl)
		store := services.NewMockCardValidationStore(ctrl)
		runner := newRunner(validator, store, nil)

		card := pendingCard()
		store.EXPECT().GetByID(gomock.Any(), card.CardID).Return(card, nil)
		validator.EXPECT().Validate(gomock.Any(), card).Return(&services.ValidationResult{
			Approved:       true,
			BankName:       "Bank Melli",
			CardHolderName: card.CardHolderName,
			Sheba:          "IR123456789012345678901234",
		}, nil)
		store.EXPECT().
			UpdateStatusIfPending(gomock.Any(), card.CardID, models.BankCardStatusVerified, gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.BankCardStatus, bankName, sheba, _ *string) (bool, error) {
				assert.Equal(t, "Bank Melli", *bankName)
				assert.Equal(t, "IR123456789012345678901234", *sheba)
				return true, nil
			})

		runner.Run(context.Background(), card.CardID)
	})

	t.Run("system failures retry with exponential backoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		validator := services.NewMockCardValidator(ctrl)
		store := services.NewMockCardValidationStore(ctrl)
		var sleeps []time.Duration
		runner := newRunner(validator, store, &sleeps)

		card := pendingCard()
		store.EXPECT().GetByID(gomock.Any(), card.CardID).Return(card, nil)
		validator.EXPECT().Validate(gomock.Any(), card).Return(nil, errors.New("bank gateway timeout")).Times(2)
		validator.EXPECT().Validate(gomock.Any(), card).Return(&services.ValidationResult{
			Approved: false,
			Reason:   "card could not be verified with the issuing bank",
		}, nil)
		store.EXPECT().
			UpdateStatusIfPending(gomock.Any(), card.CardID, models.BankCardStatusRejected, gomock.Nil(), gomock.Nil(), gomock.Any()).
			Return(true, nil)

		runner.Run(context.Background(), card.CardID)
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeps)
	})

	t.Run("exhausted retries force a rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		validator := services.NewMockCardValidator(ctrl)
		store := services.NewMockCardValidationStore(ctrl)
		runner := newRunner(validator, store, nil)

		card := pendingCard()
		store.EXPECT().GetByID(gomock.Any(), card.CardID).Return(card, nil)
		validator.EXPECT().Validate(gomock.Any(), card).Return(nil, errors.New("bank gateway down")).Times(3)
		store.EXPECT().
			UpdateStatusIfPending(gomock.Any(), card.CardID, models.BankCardStatusRejected, gomock.Nil(), gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.BankCardStatus, _, _, reason *string) (bool, error) {
				assert.Equal(t, "validation system failure", *reason)
				return true, nil
			})

		runner.Run(context.Background(), card.CardID)
	})

	t.Run("stale outcome is discarded when the card left pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		validator := services.NewMockCardValidator(ctrl)
		store := services.NewMockCardValidationStore(ctrl)
		runner := newRunner(validator, store, nil)

		card := pendingCard()
		store.EXPECT().GetByID(gomock.Any(), card.CardID).Return(card, nil)
		validator.EXPECT().Validate(gomock.Any(), card).Return(&services.ValidationResult{
			Approved: true, BankName: "Bank Melli", Sheba: "IR123456789012345678901234",
		}, nil)
		// The user edited the card while validation was in flight.
		store.EXPECT().
			UpdateStatusIfPending(gomock.Any(), card.CardID, models.BankCardStatusVerified, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(false, nil)

		runner.Run(context.Background(), card.CardID)
	})

	t.Run("non-pending card is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		validator := services.NewMockCardValidator(ctrl)
		store := services.NewMockCardValidationStore(ctrl)
		runner := newRunner(validator, store, nil)

		card := pendingCard()
		card.Status = models.BankCardStatusVerified
		store.EXPECT().GetByID(gomock.Any(), card.CardID).Return(card, nil)

		runner.Run(context.Background(), card.CardID)
	})
}

func TestCardValidationRunner_SweepStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validator := services.NewMockCardValidator(ctrl)
	store := services.NewMockCardValidationStore(ctrl)
	pool := services.NewMockCardJobSubmitter(ctrl)

	policy := services.NewRetryPolicy(3, time.Second)
	runner := services.NewCardValidationRunner(validator, store, pool, policy, time.Hour)

	stale := []models.BankCardDB{
		{CardID: uuid.New(), Status: models.BankCardStatusPending},
		{CardID: uuid.New(), Status: models.BankCardStatusPending},
	}
	store.EXPECT().
		ListStalePending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, olderThan time.Time) ([]models.BankCardDB, error) {
			assert.True(t, olderThan.Before(time.Now()))
			return stale, nil
		})
	pool.EXPECT().Submit(gomock.Any()).Times(2)

	count, err := runner.SweepStale(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
