package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/sleep-tracker/internal/models"
	"github.com/sbilibin2017/sleep-tracker/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email string, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles signup and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	log    *zap.SugaredLogger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		log:    log,
	}
}

// Signup registers a new user with a bcrypt-hashed password.
// The email must not already be taken.
func (svc *AuthService) Signup(ctx context.Context, email, password string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		svc.log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		svc.log.Errorw("user already exists", "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		svc.log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, email, string(hashedPassword)); err != nil {
		// Concurrent signup of the same email loses to the UNIQUE constraint.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			svc.log.Errorw("user already exists", "email", email)
			return ErrUserAlreadyExists
		}
		svc.log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		svc.log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		svc.log.Errorw("user does not exist", "email", email)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		svc.log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		svc.log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
