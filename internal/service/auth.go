package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shenikar/ireporter/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=auth.go -destination=mocks/mock_auth.go -package=mocks

// AuthService определяет контракт регистрации, входа и проверки токенов
type AuthService interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.AuthResult, error)
	Login(ctx context.Context, username, password string) (*models.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error)
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type authService struct {
	users  UserRepository
	tokens TokenManager
	hasher PasswordHasher
	logger *logrus.Logger
}

func NewAuthService(users UserRepository, tokens TokenManager, hasher PasswordHasher, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

// Register регистрирует пользователя и выдает пару токенов
func (s *authService) Register(ctx context.Context, input models.RegisterInput) (*models.AuthResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Register",
		"username": input.Username,
	})
	log.Info("Attempting to register a new user")

	if err := validateRegisterInput(input); err != nil {
		log.WithError(err).Warn("Registration input rejected")
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		OtherNames:   strings.TrimSpace(input.OtherNames),
		Email:        strings.TrimSpace(input.Email),
		PhoneNumber:  strings.TrimSpace(input.PhoneNumber),
		Username:     NormalizeUsername(input.Username),
		IsAdmin:      input.IsAdmin,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrUserAlreadyExists) {
			log.Warn("Username is already taken")
		} else {
			log.WithError(err).Error("Failed to create user in repository")
		}
		return nil, fmt.Errorf("service: could not register user %q: %w", user.Username, err)
	}

	tokens, err := s.tokens.IssuePair(user.Username)
	if err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		return nil, fmt.Errorf("service: could not issue tokens: %w", err)
	}

	log.WithFields(logrus.Fields{"user_id": user.ID, "is_admin": user.IsAdmin}).Info("User registered successfully")
	return &models.AuthResult{User: user, Tokens: tokens}, nil
}

// Login проверяет учетные данные и выдает новую пару токенов
func (s *authService) Login(ctx context.Context, username, password string) (*models.AuthResult, error) {
	username = NormalizeUsername(username)
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		log.WithError(err).Warn("Login for unknown user")
		return nil, fmt.Errorf("service: could not log in %q: %w", username, err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Warn("Wrong password on login")
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.tokens.IssuePair(user.Username)
	if err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		return nil, fmt.Errorf("service: could not issue tokens: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return &models.AuthResult{User: user, Tokens: tokens}, nil
}

// Refresh выдает новый access-токен по refresh-токену
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error) {
	username, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("service: %v: %w", err, ErrInvalidToken)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("service: refresh for unknown user %q: %w", username, ErrInvalidToken)
	}

	access, err := s.tokens.IssueAccess(user.Username)
	if err != nil {
		s.logger.WithError(err).WithField("method", "Refresh").Error("Failed to issue access token")
		return nil, fmt.Errorf("service: could not issue access token: %w", err)
	}

	return &models.AuthResult{
		User:   user,
		Tokens: models.TokenPair{AccessToken: access, RefreshToken: refreshToken},
	}, nil
}

// Authenticate возвращает пользователя, которому принадлежит access-токен
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	username, err := s.tokens.ParseAccess(accessToken)
	if err != nil {
		return nil, fmt.Errorf("service: %v: %w", err, ErrInvalidToken)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("service: token subject %q: %w", username, ErrInvalidToken)
	}
	return user, nil
}

// ListUsers возвращает всех зарегистрированных пользователей
func (s *authService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListUsers").Error("Failed to list users from repository")
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

func validateRegisterInput(input models.RegisterInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"firstname", input.FirstName},
		{"lastname", input.LastName},
		{"othernames", input.OtherNames},
		{"email", input.Email},
		{"phoneNumber", input.PhoneNumber},
		{"username", input.Username},
		{"password", input.Password},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("service: %s cannot be blank: %w", field.name, ErrValidation)
		}
	}

	if !HasNonDigit(input.Username) {
		return fmt.Errorf("service: username cannot be made of digits only: %w", ErrValidation)
	}
	return nil
}

// NormalizeUsername приводит имя пользователя к виду, в котором оно хранится
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// HasNonDigit сообщает, содержит ли строка хотя бы один символ, отличный от цифры
func HasNonDigit(s string) bool {
	for _, r := range strings.TrimSpace(s) {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
