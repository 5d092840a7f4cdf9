package repository

import (
	"context"
	"sync"

	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/domain"
)

// MemoryRepository holds all users and their exercise sequences for
// the lifetime of the process. A single RWMutex guards every
// read-modify-write sequence; handlers run concurrently.
type MemoryRepository struct {
	mu        sync.RWMutex
	users     []domain.User
	byID      map[domain.ID]int
	exercises map[domain.ID][]domain.Exercise
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:      make(map[domain.ID]int),
		exercises: make(map[domain.ID][]domain.Exercise),
	}
}

func (r *MemoryRepository) CreateUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; ok {
		return ErrUserAlreadyExists
	}

	r.byID[user.ID] = len(r.users)
	r.users = append(r.users, user)
	r.exercises[user.ID] = []domain.Exercise{}

	return nil
}

// ListUsers returns users in insertion order.
func (r *MemoryRepository) ListUsers(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemoryRepository) FindUserByID(_ context.Context, id domain.ID) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return r.users[idx], nil
}

func (r *MemoryRepository) AddExercise(_ context.Context, userID domain.ID, exercise domain.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[userID]; !ok {
		return ErrUserNotFound
	}

	r.exercises[userID] = append(r.exercises[userID], exercise)
	return nil
}

// ListExercises returns the full stored sequence in insertion order.
func (r *MemoryRepository) ListExercises(_ context.Context, userID domain.ID) ([]domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.byID[userID]; !ok {
		return nil, ErrUserNotFound
	}

	stored := r.exercises[userID]
	out := make([]domain.Exercise, len(stored))
	copy(out, stored)
	return out, nil
}
