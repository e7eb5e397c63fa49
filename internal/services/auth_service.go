package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/terraincognita07/fitlog/internal/models"
	"go.uber.org/zap"
)

type CredentialRepository interface {
	ReadOwnedBy(username string) []models.User
	Append(rows []models.User) (int, error)
}

// Session identifies the signed-in user for one run of the application. It is
// passed to every user-scoped operation instead of living in a global.
type Session struct {
	ID        string
	Username  string
	StartedAt time.Time
}

type AuthService struct {
	users  CredentialRepository
	logger *zap.Logger
}

func NewAuthService(users CredentialRepository, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, logger: logger}
}

func ValidateCredentialsInput(username string, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrCredentialsRequired
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func ValidateSignupInput(username string, password string, confirm string) error {
	if err := ValidateCredentialsInput(username, password); err != nil {
		return err
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

func (service *AuthService) UsernameExists(username string) bool {
	return len(service.users.ReadOwnedBy(username)) > 0
}

func (service *AuthService) Register(username string, password string) error {
	if err := ValidateCredentialsInput(username, password); err != nil {
		return err
	}
	if service.UsernameExists(username) {
		return ErrUsernameTaken
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUserSaveFailed, err)
	}

	if _, err := service.users.Append([]models.User{{Username: username, PasswordHash: passwordHash}}); err != nil {
		service.logger.Error("register user failed", zap.String("username", username), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrUserSaveFailed, err)
	}

	service.logger.Info("user registered", zap.String("username", username))
	return nil
}

// Authenticate fails closed: an unreadable Users collection reads as empty.
func (service *AuthService) Authenticate(username string, password string) bool {
	users := service.users.ReadOwnedBy(username)
	if len(users) == 0 {
		return false
	}
	return VerifyPassword(users[0].PasswordHash, password)
}

func (service *AuthService) Login(username string, password string, now time.Time) (Session, error) {
	if err := ValidateCredentialsInput(username, password); err != nil {
		return Session{}, err
	}
	if !service.Authenticate(username, password) {
		service.logger.Warn("login rejected", zap.String("username", username))
		return Session{}, ErrAuthCredentialsInvalid
	}

	session := Session{
		ID:        xid.New().String(),
		Username:  username,
		StartedAt: now,
	}
	service.logger.Info("session started", zap.String("username", username), zap.String("session", session.ID))
	return session, nil
}
