package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/services"
)

// CardManager defines the interface that the service must implement.
type CardManager interface {
	Create(ctx context.Context, userID uuid.UUID, cardNumber, cardHolderName string) (*models.BankCardDB, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.BankCardDB, error)
	SetDefault(ctx context.Context, userID, cardID uuid.UUID) error
	Edit(ctx context.Context, userID, cardID uuid.UUID, cardNumber, cardHolderName string) (*models.BankCardDB, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
}

// CardRequest represents the JSON body for registering or editing a card
// swagger:model CardRequest
type CardRequest struct {
	// 16-digit card number
	// required: true
	// default: 6037991234567890
	CardNumber string `json:"card_number"`

	// Card holder name
	// required: true
	// default: John Doe
	CardHolderName string `json:"card_holder_name"`
}

// CardResponse represents one bank card
// swagger:model CardResponse
type CardResponse struct {
	// Card ID
	CardID string `json:"card_id"`

	// Masked card number
	// default: 603799******7890
	CardNumber string `json:"card_number"`

	// Card holder name
	CardHolderName string `json:"card_holder_name"`

	// Status: pending, verified or rejected
	Status string `json:"status"`

	// Issuing bank, set on verification
	BankName string `json:"bank_name,omitempty"`

	// IBAN, set on verification
	Sheba string `json:"sheba,omitempty"`

	// Rejection reason, set on rejection
	RejectionReason string `json:"rejection_reason,omitempty"`

	// Whether this is the user's default card
	IsDefault bool `json:"is_default"`
}

// CardMessageResponse represents a success message
// swagger:model CardMessageResponse
type CardMessageResponse struct {
	// Success message
	Message string `json:"message"`
}

func newCardResponse(card *models.BankCardDB) CardResponse {
	resp := CardResponse{
		CardID:         card.CardID.String(),
		CardNumber:     maskCardNumber(card.CardNumber),
		CardHolderName: card.CardHolderName,
		Status:         string(card.Status),
		IsDefault:      card.IsDefault,
	}
	if card.BankName != nil {
		resp.BankName = *card.BankName
	}
	if card.Sheba != nil {
		resp.Sheba = *card.Sheba
	}
	if card.RejectionReason != nil {
		resp.RejectionReason = *card.RejectionReason
	}
	return resp
}

// maskCardNumber hides the middle digits of a 16-digit card number.
func maskCardNumber(number string) string {
	if len(number) != 16 {
		return number
	}
	return number[:6] + "******" + number[12:]
}

// NewCreateCardHandler returns an HTTP handler registering a card.
// @Summary Register a bank card
// @Description Registers a card in pending status and queues it for validation with the issuing bank.
// @Tags card
// @Accept json
// @Produce json
// @Param cardRequest body handlers.CardRequest true "Card details"
// @Success 201 {object} handlers.CardResponse "Card registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid card number / duplicate"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /cards [post]
// @Security BearerAuth
func NewCreateCardHandler(svc CardManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		var req CardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		card, err := svc.Create(r.Context(), userID, req.CardNumber, req.CardHolderName)
		if err != nil {
			writeCardError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newCardResponse(card))
	}
}

// NewListCardsHandler returns an HTTP handler listing the user's cards.
// @Summary List bank cards
// @Description Returns the user's active cards, default card first.
// @Tags card
// @Produce json
// @Success 200 {array} handlers.CardResponse "Cards"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /cards [get]
// @Security BearerAuth
func NewListCardsHandler(svc CardManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		cards, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list cards", "user_id", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := make([]CardResponse, 0, len(cards))
		for i := range cards {
			resp = append(resp, newCardResponse(&cards[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewSetDefaultCardHandler returns an HTTP handler marking a default card.
// @Summary Set the default card
// @Description Marks a verified card as the user's default. The previous default is cleared.
// @Tags card
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} handlers.CardMessageResponse "Default card set"
// @Failure 400 {object} handlers.ErrorResponse "Card is not verified"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Card not found"
// @Router /cards/{cardID}/default [post]
// @Security BearerAuth
func NewSetDefaultCardHandler(svc CardManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid card ID")
			return
		}

		if err := svc.SetDefault(r.Context(), userID, cardID); err != nil {
			writeCardError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, CardMessageResponse{Message: "Default card set"})
	}
}

// NewEditCardHandler returns an HTTP handler editing a rejected card.
// @Summary Edit a rejected card
// @Description Rewrites a rejected card's details and resubmits it for validation.
// @Tags card
// @Accept json
// @Produce json
// @Param cardID path string true "Card ID"
// @Param cardRequest body handlers.CardRequest true "New card details"
// @Success 200 {object} handlers.CardResponse "Card resubmitted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid card number / card not editable"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Card not found"
// @Router /cards/{cardID} [put]
// @Security BearerAuth
func NewEditCardHandler(svc CardManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid card ID")
			return
		}

		var req CardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		card, err := svc.Edit(r.Context(), userID, cardID, req.CardNumber, req.CardHolderName)
		if err != nil {
			writeCardError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newCardResponse(card))
	}
}

// NewDeleteCardHandler returns an HTTP handler removing a card.
// @Summary Delete a card
// @Description Soft-deletes a card. Pending cards stay until validation settles.
// @Tags card
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} handlers.CardMessageResponse "Card deleted"
// @Failure 400 {object} handlers.ErrorResponse "Card is pending validation"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Card not found"
// @Router /cards/{cardID} [delete]
// @Security BearerAuth
func NewDeleteCardHandler(svc CardManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authUserID(w, r, tokener)
		if !ok {
			return
		}

		cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid card ID")
			return
		}

		if err := svc.Delete(r.Context(), userID, cardID); err != nil {
			writeCardError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, CardMessageResponse{Message: "Card deleted"})
	}
}

func writeCardError(w http.ResponseWriter, err error) {
	switch err {
	case services.ErrCardNotFound:
		writeError(w, http.StatusNotFound, "Card not found")
	case services.ErrCardNumberInvalid:
		writeError(w, http.StatusBadRequest, "Card number is invalid")
	case services.ErrCardDuplicate:
		writeError(w, http.StatusBadRequest, "Card number already registered")
	case services.ErrCardNotVerified:
		writeError(w, http.StatusBadRequest, "Only verified cards can be set as default")
	case services.ErrCardNotEditable:
		writeError(w, http.StatusBadRequest, "Only rejected cards can be edited")
	case services.ErrCardPending:
		writeError(w, http.StatusBadRequest, "Pending cards cannot be modified")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// RegisterCardHandlers registers the card routes.
func RegisterCardHandlers(r chi.Router, create, list, setDefault, edit, del http.HandlerFunc) {
	r.Post("/cards", create)
	r.Get("/cards", list)
	r.Post("/cards/{cardID}/default", setDefault)
	r.Put("/cards/{cardID}", edit)
	r.Delete("/cards/{cardID}", del)
}
