package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/ireporter/internal/models"
	"github.com/shenikar/ireporter/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authMocks struct {
	users  *mocks.MockUserRepository
	tokens *mocks.MockTokenManager
	hasher *mocks.MockPasswordHasher
}

func newTestAuthService(t *testing.T) (*authService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		users:  mocks.NewMockUserRepository(ctrl),
		tokens: mocks.NewMockTokenManager(ctrl),
		hasher: mocks.NewMockPasswordHasher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewAuthService(m.users, m.tokens, m.hasher, logger)
	return service.(*authService), m
}

func validRegisterInput() models.RegisterInput {
	return models.RegisterInput{
		FirstName:   "Jon",
		LastName:    "Do",
		OtherNames:  "Doe",
		Email:       "jondo@example.com",
		PhoneNumber: "0700000000",
		Username:    "jondo",
		Password:    "secret",
	}
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAuthService(t)
	ctx := context.Background()
	pair := models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	// Ожидания
	m.hasher.EXPECT().Hash("secret").Return("hashed", nil).Times(1)
	m.users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, "jondo", user.Username)
			user.ID = 1
			return nil
		}).Times(1)
	m.tokens.EXPECT().IssuePair("jondo").Return(pair, nil).Times(1)

	// Действие
	result, err := service.Register(ctx, validRegisterInput())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.User.ID)
	assert.Equal(t, pair, result.Tokens)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.RegisterInput)
	}{
		{"blank firstname", func(in *models.RegisterInput) { in.FirstName = "" }},
		{"blank email", func(in *models.RegisterInput) { in.Email = "  " }},
		{"blank username", func(in *models.RegisterInput) { in.Username = "" }},
		{"blank password", func(in *models.RegisterInput) { in.Password = "" }},
		{"digits only username", func(in *models.RegisterInput) { in.Username = "12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestAuthService(t)
			m.hasher.EXPECT().Hash(gomock.Any()).Times(0)
			m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			input := validRegisterInput()
			tt.modify(&input)

			result, err := service.Register(context.Background(), input)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	// Подготовка
	service, m := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	m.hasher.EXPECT().Hash("secret").Return("hashed", nil).Times(1)
	m.users.EXPECT().
		Create(ctx, gomock.Any()).
		Return(fmt.Errorf("username %q: %w", "jondo", models.ErrUserAlreadyExists)).
		Times(1)
	m.tokens.EXPECT().IssuePair(gomock.Any()).Times(0)

	// Действие
	_, err := service.Register(ctx, validRegisterInput())

	// Проверки
	assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAuthService(t)
	ctx := context.Background()
	stored := &models.User{ID: 1, Username: "jondo", PasswordHash: "hashed"}
	pair := models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	// Ожидания
	m.users.EXPECT().GetByUsername(ctx, "jondo").Return(stored, nil).Times(1)
	m.hasher.EXPECT().Compare("hashed", "secret").Return(nil).Times(1)
	m.tokens.EXPECT().IssuePair("jondo").Return(pair, nil).Times(1)

	// Действие
	result, err := service.Login(ctx, "jondo", "secret")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stored, result.User)
	assert.Equal(t, pair, result.Tokens)
}

func TestLogin_TrimsUsername(t *testing.T) {
	// Подготовка
	service, m := newTestAuthService(t)
	ctx := context.Background()
	stored := &models.User{ID: 1, Username: "jondo", PasswordHash: "hashed"}

	// Ожидания
	m.users.EXPECT().GetByUsername(ctx, "jondo").Return(stored, nil).Times(1)
	m.hasher.EXPECT().Compare("hashed", "secret").Return(nil).Times(1)
	m.tokens.EXPECT().IssuePair("jondo").Return(models.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil).Times(1)

	// Действие
	result, err := service.Login(ctx, " jondo ", "secret")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "jondo", result.User.Username)
}

func TestLogin_UnknownUser(t *testing.T) {
	// Подготовка
	service, m := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	m.users.EXPECT().GetByUsername(ctx, "ghost").Return(nil, models.ErrUserNotFound).Times(1)
	m.hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.Login(ctx, "ghost", "secret")

	// Проверки
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	service, m := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	m.users.EXPECT().
		GetByUsername(ctx, "jondo").
		Return(&models.User{ID: 1, Username: "jondo", PasswordHash: "hashed"}, nil).
		Times(1)
	m.hasher.EXPECT().Compare("hashed", "wrong").Return(errors.New("mismatch")).Times(1)
	m.tokens.EXPECT().IssuePair(gomock.Any()).Times(0)

	// Действие
	_, err := service.Login(ctx, "jondo", "wrong")

	// Проверки
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	m.tokens.EXPECT().ParseRefresh("refresh").Return("jondo", nil).Times(1)
	m.users.EXPECT().GetByUsername(ctx, "jondo").Return(&models.User{ID: 1, Username: "jondo"}, nil).Times(1)
	m.tokens.EXPECT().IssueAccess("jondo").Return("new-access", nil).Times(1)

	// Действие
	result, err := service.Refresh(ctx, "refresh")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "new-access", result.Tokens.AccessToken)
	assert.Equal(t, "refresh", result.Tokens.RefreshToken)
}

func TestRefresh_InvalidToken(t *testing.T) {
	// Подготовка
	service, m := newTestAuthService(t)

	// Ожидания
	m.tokens.EXPECT().ParseRefresh("access").Return("", errors.New("wrong token type")).Times(1)
	m.users.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.Refresh(context.Background(), "access")

	// Проверки
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAuthService(t)
	ctx := context.Background()
	stored := &models.User{ID: 3, Username: "admin", IsAdmin: true}

	// Ожидания
	m.tokens.EXPECT().ParseAccess("token").Return("admin", nil).Times(1)
	m.users.EXPECT().GetByUsername(ctx, "admin").Return(stored, nil).Times(1)

	// Действие
	user, err := service.Authenticate(ctx, "token")

	// Проверки
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	// Подготовка
	service, m := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	m.tokens.EXPECT().ParseAccess("token").Return("ghost", nil).Times(1)
	m.users.EXPECT().GetByUsername(ctx, "ghost").Return(nil, models.ErrUserNotFound).Times(1)

	// Действие
	_, err := service.Authenticate(ctx, "token")

	// Проверки
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, models.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	service, m := newTestAuthService(t)
	expected := []*models.User{{ID: 1, Username: "jondo"}}
	m.users.EXPECT().List(gomock.Any()).Return(expected, nil).Times(1)

	users, err := service.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestHasNonDigit(t *testing.T) {
	assert.True(t, HasNonDigit("jondo"))
	assert.True(t, HasNonDigit("j0nd0"))
	assert.False(t, HasNonDigit("12345"))
	assert.False(t, HasNonDigit(""))
	assert.False(t, HasNonDigit(" 42 "))
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "jondo", NormalizeUsername(" jondo "))
	assert.Equal(t, "jondo", NormalizeUsername("\tjondo\n"))
	assert.Equal(t, "jon do", NormalizeUsername("jon do"))
	assert.Equal(t, "", NormalizeUsername("   "))
}
