package service

import (
	"context"

	"github.com/shenikar/ireporter/internal/models"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// IncidentRepository определяет контракт хранилища инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id int64) (*models.Incident, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Incident, error)
	// Update возвращает копии инцидента до и после применения патча
	Update(ctx context.Context, id int64, patch models.IncidentPatch) (previous, updated *models.Incident, err error)
}

// UserRepository определяет контракт хранилища пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

// TokenManager выпускает и проверяет bearer-токены, subject токена - username
type TokenManager interface {
	IssuePair(username string) (models.TokenPair, error)
	IssueAccess(username string) (string, error)
	ParseAccess(token string) (string, error)
	ParseRefresh(token string) (string, error)
}

// PasswordHasher хэширует и проверяет пароли
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
