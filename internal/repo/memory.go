package repo

import (
	"context"
	"sync"

	"github.com/AstroBookings/api-system/internal/model"
	"github.com/AstroBookings/api-system/internal/pkg/apperr"
)

// MemoryUserRepository keeps user records in process memory. It is the
// default store for development and tests. A single mutex serializes
// writers, so duplicate-email detection in Save is atomic.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]model.User
	byEmail map[string]string
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) Save(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return apperr.ErrConflict
	}
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, user.Email)
	return nil
}
