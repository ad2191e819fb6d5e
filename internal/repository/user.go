package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shenikar/ireporter/internal/models"
	"github.com/shenikar/ireporter/internal/service"
)

// UserRepository хранит пользователей в памяти процесса с индексом по username
type UserRepository struct {
	mu         sync.RWMutex
	users      map[int64]*models.User
	byUsername map[string]int64
	lastID     int64
	now        func() time.Time
}

func NewUserRepository() service.UserRepository {
	return newUserRepository()
}

func newUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[int64]*models.User),
		byUsername: make(map[string]int64),
		now:        time.Now,
	}
}

// Create сохраняет пользователя, проверка уникальности username и вставка атомарны
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[user.Username]; taken {
		return fmt.Errorf("username %q: %w", user.Username, models.ErrUserAlreadyExists)
	}

	r.lastID++
	user.ID = r.lastID
	user.RegisteredAt = r.now().UTC()

	r.users[user.ID] = user.Clone()
	r.byUsername[user.Username] = user.ID
	return nil
}

// GetByID возвращает копию пользователя по id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %d: %w", id, models.ErrUserNotFound)
	}
	return user.Clone(), nil
}

// GetByUsername возвращает копию пользователя по username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, models.ErrUserNotFound)
	}
	return r.users[id].Clone(), nil
}

// List возвращает копии всех пользователей, упорядоченные по id
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user.Clone())
	}
	slices.SortFunc(users, func(a, b *models.User) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return users, nil
}
