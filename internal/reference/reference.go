package reference

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Reference-code prefixes by record type. Codes are unique, human-readable
// identifiers distinct from the internal primary keys.
const (
	PrefixTransaction    = "TRX"
	PrefixPaymentRequest = "PR"
	PrefixTransfer       = "WT"
	PrefixAuthorization  = "AUTH"
)

// ErrGenerationFailed is returned when the collision-retry budget is
// exhausted. This is fatal: callers must not retry automatically.
var ErrGenerationFailed = errors.New("reference code generation failed")

// maxAttempts is a deliberate collision-avoidance budget, not a
// correctness mechanism; uniqueness is ultimately enforced by the database.
const maxAttempts = 5

// ExistsFunc reports whether a candidate code is already taken.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generator produces reference codes of the form
// <prefix><yymmdd><N random digits>.
type Generator struct {
	digits int
	rand   *rand.Rand
	now    func() time.Time
}

// Option configures a Generator. Used by tests to pin randomness and time.
type Option func(*Generator)

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rand = r }
}

// WithNow sets the clock.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a Generator emitting the given number of random digits.
func NewGenerator(digits int, opts ...Option) *Generator {
	g := &Generator{
		digits: digits,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Code returns a single candidate code without a uniqueness check.
func (g *Generator) Code(prefix string) string {
	datePart := g.now().Format("060102")
	low := pow10(g.digits - 1)
	high := pow10(g.digits) - 1
	randPart := low + g.rand.Int63n(high-low+1)
	return fmt.Sprintf("%s%s%d", prefix, datePart, randPart)
}

// Generate returns a code that the exists check did not find, retrying up
// to the attempt budget. Exhausting the budget returns ErrGenerationFailed.
func (g *Generator) Generate(ctx context.Context, prefix string, exists ExistsFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		code := g.Code(prefix)
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrGenerationFailed
}

// WalletNumber returns a candidate wallet number of the given total length:
// the kind prefix followed by random digits. Uniqueness is checked by the
// caller against the wallets table.
func (g *Generator) WalletNumber(prefix string, length int) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i := len(prefix); i < length; i++ {
		b.WriteByte(byte('0' + g.rand.Intn(10)))
	}
	return b.String()
}

// GenerateWalletNumber retries WalletNumber against the exists check with
// the same budget as reference codes.
func (g *Generator) GenerateWalletNumber(ctx context.Context, prefix string, length int, exists ExistsFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		number := g.WalletNumber(prefix, length)
		taken, err := exists(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", ErrGenerationFailed
}

func pow10(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
