package repo

import (
	"context"
	"strings"
	"sync"

	"github.com/givehope/givehope/internal/domain"
)

// UserRepositoryMem implements domain.UserRepository in memory.
type UserRepositoryMem struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

// NewUserRepository creates a user repo pre-filled with seed accounts.
func NewUserRepository(seed []domain.User) *UserRepositoryMem {
	r := &UserRepositoryMem{
		byID:    make(map[string]domain.User, len(seed)),
		byEmail: make(map[string]string, len(seed)),
	}
	for _, u := range seed {
		r.byID[u.ID] = u
		r.byEmail[strings.ToLower(u.Email)] = u.ID
	}
	return r
}

// Create stores a new account.
func (r *UserRepositoryMem) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(user.Email)
	if _, taken := r.byEmail[email]; taken {
		return domain.ErrEmailTaken
	}
	r.byID[user.ID] = *user
	r.byEmail[email] = user.ID
	return nil
}

// GetByID fetches an account by id.
func (r *UserRepositoryMem) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

// GetByEmail fetches an account by its (case-insensitive) email.
func (r *UserRepositoryMem) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

// Update replaces an existing account's profile fields.
func (r *UserRepositoryMem) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.byID[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if !strings.EqualFold(prev.Email, user.Email) {
		email := strings.ToLower(user.Email)
		if _, taken := r.byEmail[email]; taken {
			return domain.ErrEmailTaken
		}
		delete(r.byEmail, strings.ToLower(prev.Email))
		r.byEmail[email] = user.ID
	}
	r.byID[user.ID] = *user
	return nil
}
