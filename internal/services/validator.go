package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/metrics"
	"github.com/saeedpay/wallet-ledger/internal/models"
)

// systemFailureReason is recorded when validation could not complete after
// all retries. A card must never stay pending forever.
const systemFailureReason = "validation system failure"

// ValidationResult is the outcome of a card validation attempt.
type ValidationResult struct {
	Approved       bool
	BankName       string
	CardHolderName string
	Sheba          string
	Reason         string // rejection reason when not approved
}

// CardValidator checks a card against the banking network. A returned
// error is a system failure and retryable; a rejection is not an error.
type CardValidator interface {
	Validate(ctx context.Context, card *models.BankCardDB) (*ValidationResult, error)
}

// sandboxBanks is the bank pool the sandbox validator assigns on approval.
var sandboxBanks = []string{"Bank Melli", "Bank Mellat", "Bank Saderat", "Bank Tejarat", "Bank Pasargad"}

// SandboxCardValidator simulates the banking network: a short delay, then
// an 80/20 approve/reject split. Used outside production.
type SandboxCardValidator struct {
	delay       time.Duration
	approveRate float64
	rand        *rand.Rand
}

// NewSandboxCardValidator creates a sandbox validator with the given
// simulated network delay.
func NewSandboxCardValidator(delay time.Duration) *SandboxCardValidator {
	return &SandboxCardValidator{
		delay:       delay,
		approveRate: 0.8,
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand pins the random source. Used by tests.
func (v *SandboxCardValidator) WithRand(r *rand.Rand) *SandboxCardValidator {
	v.rand = r
	return v
}

// Validate simulates a validation round trip.
func (v *SandboxCardValidator) Validate(ctx context.Context, card *models.BankCardDB) (*ValidationResult, error) {
	select {
	case <-time.After(v.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if v.rand.Float64() >= v.approveRate {
		return &ValidationResult{
			Approved: false,
			Reason:   "card could not be verified with the issuing bank",
		}, nil
	}

	sheba := "IR"
	for i := 0; i < 24; i++ {
		sheba += fmt.Sprintf("%d", v.rand.Intn(10))
	}
	return &ValidationResult{
		Approved:       true,
		BankName:       sandboxBanks[v.rand.Intn(len(sandboxBanks))],
		CardHolderName: card.CardHolderName,
		Sheba:          sheba,
	}, nil
}

// ProductionCardValidator is the placeholder for the real banking
// integration. It always fails as a system error so the retry policy and
// terminal-failure handling apply.
type ProductionCardValidator struct{}

func NewProductionCardValidator() *ProductionCardValidator {
	return &ProductionCardValidator{}
}

func (v *ProductionCardValidator) Validate(ctx context.Context, card *models.BankCardDB) (*ValidationResult, error) {
	return nil, errors.New("production card validator not configured")
}

// RetryPolicy bounds validation retries with exponential backoff.
// Sleep is injectable so tests run without waiting.
type RetryPolicy struct {
	MaxAttempts int
	BackoffBase time.Duration
	Sleep       func(ctx context.Context, d time.Duration) error
}

// NewRetryPolicy creates a policy sleeping BackoffBase * 2^attempt between
// attempts.
func NewRetryPolicy(maxAttempts int, backoffBase time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		BackoffBase: backoffBase,
		Sleep: func(ctx context.Context, d time.Duration) error {
			select {
			case <-time.After(d):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	return p.BackoffBase * (1 << attempt)
}

// CardJobSubmitter hands validation jobs to the worker pool.
type CardJobSubmitter interface {
	Submit(f func())
}

// CardValidationStore is the repository surface the runner needs.
type CardValidationStore interface {
	GetByID(ctx context.Context, cardID uuid.UUID) (*models.BankCardDB, error)
	UpdateStatusIfPending(ctx context.Context, cardID uuid.UUID, status models.BankCardStatus, bankName, sheba, rejectionReason *string) (bool, error)
	ListStalePending(ctx context.Context, olderThan time.Time) ([]models.BankCardDB, error)
}

// CardValidationRunner drives async card validation through the worker
// pool: retry with backoff on system failures, forced rejection when the
// budget is exhausted, and a sweep re-enqueueing stale pendings.
type CardValidationRunner struct {
	validator      CardValidator
	store          CardValidationStore
	pool           CardJobSubmitter
	policy         RetryPolicy
	staleThreshold time.Duration
	now            func() time.Time
}

// NewCardValidationRunner creates a runner.
func NewCardValidationRunner(
	validator CardValidator,
	store CardValidationStore,
	pool CardJobSubmitter,
	policy RetryPolicy,
	staleThreshold time.Duration,
) *CardValidationRunner {
	return &CardValidationRunner{
		validator:      validator,
		store:          store,
		pool:           pool,
		policy:         policy,
		staleThreshold: staleThreshold,
		now:            time.Now,
	}
}

// Enqueue schedules a card for validation.
func (r *CardValidationRunner) Enqueue(cardID uuid.UUID) {
	r.pool.Submit(func() {
		r.Run(context.Background(), cardID)
	})
}

// Run validates one card synchronously, honouring the retry policy. The
// conditional status update re-checks pending immediately before mutating,
// so a result for a card edited mid-flight is discarded.
func (r *CardValidationRunner) Run(ctx context.Context, cardID uuid.UUID) {
	card, err := r.store.GetByID(ctx, cardID)
	if err != nil {
		logger.Log.Errorw("failed to load card for validation", "card_id", cardID, "err", err)
		return
	}
	if card == nil || card.Status != models.BankCardStatusPending {
		return
	}

	for attempt := 0; attempt < r.policy.MaxAttempts; attempt++ {
		result, err := r.validator.Validate(ctx, card)
		if err != nil {
			logger.Log.Warnw("card validation attempt failed",
				"card_id", cardID, "attempt", attempt+1, "err", err)
			if attempt+1 < r.policy.MaxAttempts {
				if err := r.policy.Sleep(ctx, r.policy.backoff(attempt)); err != nil {
					return
				}
			}
			continue
		}

		r.apply(ctx, cardID, result)
		return
	}

	// Retry budget exhausted: force rejection, never indefinite pending.
	reason := systemFailureReason
	ok, err := r.store.UpdateStatusIfPending(ctx, cardID, models.BankCardStatusRejected, nil, nil, &reason)
	if err != nil {
		logger.Log.Errorw("failed to record validation failure", "card_id", cardID, "err", err)
		return
	}
	if ok {
		metrics.CardValidationsTotal.WithLabelValues("failed").Inc()
		logger.Log.Errorw("card validation exhausted retries, card rejected", "card_id", cardID)
	}
}

// SweepStale re-enqueues cards stuck pending beyond the staleness
// threshold.
func (r *CardValidationRunner) SweepStale(ctx context.Context) (int, error) {
	cards, err := r.store.ListStalePending(ctx, r.now().Add(-r.staleThreshold))
	if err != nil {
		return 0, err
	}
	for i := range cards {
		r.Enqueue(cards[i].CardID)
	}
	if len(cards) > 0 {
		logger.Log.Infow("re-enqueued stale pending cards", "count", len(cards))
	}
	return len(cards), nil
}

func (r *CardValidationRunner) apply(ctx context.Context, cardID uuid.UUID, result *ValidationResult) {
	var (
		status   models.BankCardStatus
		bankName *string
		sheba    *string
		reason   *string
		outcome  string
	)
	if result.Approved {
		status = models.BankCardStatusVerified
		bankName = &result.BankName
		sheba = &result.Sheba
		outcome = "verified"
	} else {
		status = models.BankCardStatusRejected
		reason = &result.Reason
		outcome = "rejected"
	}

	ok, err := r.store.UpdateStatusIfPending(ctx, cardID, status, bankName, sheba, reason)
	if err != nil {
		logger.Log.Errorw("failed to record validation outcome", "card_id", cardID, "err", err)
		return
	}
	if !ok {
		// The card left pending while we were validating.
		logger.Log.Infow("validation outcome discarded, card no longer pending", "card_id", cardID)
		return
	}

	metrics.CardValidationsTotal.WithLabelValues(outcome).Inc()
	logger.Log.Infow("card validation finished", "card_id", cardID, "status", status)
}
