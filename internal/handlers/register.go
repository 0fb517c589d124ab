package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, phoneNumber, password string, ownerType models.OwnerType) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Phone number
	// required: true
	// default: 09121112233
	PhoneNumber string `json:"phone_number"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Owner type: customer or merchant
	// default: customer
	OwnerType string `json:"owner_type"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with its default wallets. Customers get cash, credit and cashback wallets; merchants get a gateway wallet.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username or phone number already exists / invalid request"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		ownerType := models.OwnerType(req.OwnerType)
		if ownerType == "" {
			ownerType = models.OwnerTypeCustomer
		}
		if ownerType != models.OwnerTypeCustomer && ownerType != models.OwnerTypeMerchant {
			writeError(w, http.StatusBadRequest, "Owner type must be customer or merchant")
			return
		}

		err := svc.Register(r.Context(), req.Username, req.PhoneNumber, req.Password, ownerType)
		if err != nil {
			switch err {
			case services.ErrUserAlreadyExists:
				writeError(w, http.StatusBadRequest, "Username or phone number already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
		})
	}
}

// RegisterRegisterHandler registers the registration route.
func RegisterRegisterHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/register", h)
}
