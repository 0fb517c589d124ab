package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/saeedpay/wallet-ledger/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or phone number already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByPhone(ctx context.Context, phoneNumber string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
}

// WalletProvisioner provisions the default wallets of a fresh user.
type WalletProvisioner interface {
	CreateDefaultWallets(ctx context.Context, userID uuid.UUID, ownerType models.OwnerType) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	provisioner WalletProvisioner
	jwt         JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, provisioner WalletProvisioner, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		provisioner: provisioner,
		jwt:         jwt,
	}
}

// Register creates a user and provisions the default wallets for the owner
// type. Runs inside the per-request transaction so a wallet provisioning
// failure rolls the user back too.
func (svc *AuthService) Register(ctx context.Context, username, phoneNumber, password string, ownerType models.OwnerType) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user == nil {
		if user, err = svc.reader.GetByPhone(ctx, phoneNumber); err != nil {
			logger.Log.Errorw("failed to check phone exists", "err", err)
			return err
		}
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "phone_number", phoneNumber)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	newUser := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		PhoneNumber:  phoneNumber,
		PasswordHash: string(hashedPassword),
	}
	if err := svc.writer.Create(ctx, newUser); err != nil {
		// The unique constraint wins a create/create race the existence
		// check above cannot see.
		if repositories.IsUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	if err := svc.provisioner.CreateDefaultWallets(ctx, newUser.UserID, ownerType); err != nil {
		logger.Log.Errorw("failed to provision default wallets", "user_id", newUser.UserID, "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
