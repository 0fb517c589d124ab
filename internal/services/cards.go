package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/repositories"
)

// Error variables
var (
	ErrCardNotFound      = errors.New("bank card not found")
	ErrCardNumberInvalid = errors.New("card number is invalid")
	ErrCardNotVerified   = errors.New("only verified cards can be set as default")
	ErrCardNotEditable   = errors.New("only rejected cards can be edited")
	ErrCardPending       = errors.New("pending cards cannot be modified")
	ErrCardDuplicate     = errors.New("card number already registered")
)

// BankCardReader defines read-only card operations.
type BankCardReader interface {
	GetByID(ctx context.Context, cardID uuid.UUID) (*models.BankCardDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BankCardDB, error)
}

// BankCardWriter defines card mutations.
type BankCardWriter interface {
	Create(ctx context.Context, card *models.BankCardDB) error
	SetDefault(ctx context.Context, userID, cardID uuid.UUID) (bool, error)
	ResetForEdit(ctx context.Context, cardID, userID uuid.UUID, cardNumber, cardHolderName string, sheba *string) (bool, error)
	SoftDelete(ctx context.Context, cardID, userID uuid.UUID) (bool, error)
}

// ValidationEnqueuer schedules a card for async validation.
type ValidationEnqueuer interface {
	Enqueue(cardID uuid.UUID)
}

// BankCardService manages a user's cards and their validation lifecycle.
type BankCardService struct {
	reader    BankCardReader
	writer    BankCardWriter
	validator ValidationEnqueuer
}

// NewBankCardService creates a new BankCardService.
func NewBankCardService(reader BankCardReader, writer BankCardWriter, validator ValidationEnqueuer) *BankCardService {
	return &BankCardService{
		reader:    reader,
		writer:    writer,
		validator: validator,
	}
}

// Create registers a card in pending status and enqueues validation. The
// number must pass the Luhn check before anything is stored.
func (svc *BankCardService) Create(ctx context.Context, userID uuid.UUID, cardNumber, cardHolderName string) (*models.BankCardDB, error) {
	if !luhnValid(cardNumber) {
		return nil, ErrCardNumberInvalid
	}

	card := &models.BankCardDB{
		CardID:         uuid.New(),
		UserID:         userID,
		CardNumber:     cardNumber,
		CardHolderName: cardHolderName,
		Status:         models.BankCardStatusPending,
		IsActive:       true,
	}
	if err := svc.writer.Create(ctx, card); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrCardDuplicate
		}
		logger.Log.Errorw("failed to create card", "user_id", userID, "err", err)
		return nil, err
	}

	svc.validator.Enqueue(card.CardID)

	logger.Log.Infow("card created, validation queued", "card_id", card.CardID, "user_id", userID)
	return card, nil
}

// List returns the user's active cards.
func (svc *BankCardService) List(ctx context.Context, userID uuid.UUID) ([]models.BankCardDB, error) {
	return svc.reader.ListByUser(ctx, userID)
}

// SetDefault marks a verified card as the user's default.
func (svc *BankCardService) SetDefault(ctx context.Context, userID, cardID uuid.UUID) error {
	card, err := svc.ownedCard(ctx, userID, cardID)
	if err != nil {
		return err
	}
	if card.Status != models.BankCardStatusVerified {
		return ErrCardNotVerified
	}

	ok, err := svc.writer.SetDefault(ctx, userID, cardID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCardNotFound
	}

	logger.Log.Infow("default card set", "card_id", cardID, "user_id", userID)
	return nil
}

// Edit rewrites a rejected card's details and resubmits it for validation.
func (svc *BankCardService) Edit(ctx context.Context, userID, cardID uuid.UUID, cardNumber, cardHolderName string) (*models.BankCardDB, error) {
	if !luhnValid(cardNumber) {
		return nil, ErrCardNumberInvalid
	}

	card, err := svc.ownedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	if card.Status != models.BankCardStatusRejected {
		return nil, ErrCardNotEditable
	}

	ok, err := svc.writer.ResetForEdit(ctx, cardID, userID, cardNumber, cardHolderName, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The card left rejected between the read and the update.
		return nil, ErrCardNotEditable
	}

	card.CardNumber = cardNumber
	card.CardHolderName = cardHolderName
	card.Status = models.BankCardStatusPending
	card.BankName = nil
	card.Sheba = nil
	card.RejectionReason = nil

	svc.validator.Enqueue(cardID)

	logger.Log.Infow("card edited, validation requeued", "card_id", cardID, "user_id", userID)
	return card, nil
}

// Delete soft-deletes a card. Pending cards stay until validation settles.
func (svc *BankCardService) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	card, err := svc.ownedCard(ctx, userID, cardID)
	if err != nil {
		return err
	}
	if card.Status == models.BankCardStatusPending {
		return ErrCardPending
	}

	ok, err := svc.writer.SoftDelete(ctx, cardID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCardNotFound
	}

	logger.Log.Infow("card deleted", "card_id", cardID, "user_id", userID)
	return nil
}

func (svc *BankCardService) ownedCard(ctx context.Context, userID, cardID uuid.UUID) (*models.BankCardDB, error) {
	card, err := svc.reader.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil || card.UserID != userID {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// luhnValid reports whether a 16-digit card number passes the Luhn
// checksum.
func luhnValid(number string) bool {
	if len(number) != 16 {
		return false
	}
	sum := 0
	for i, r := range number {
		if r < '0' || r > '9' {
			return false
		}
		d := int(r - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}
