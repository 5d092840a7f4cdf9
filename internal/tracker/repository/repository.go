package repository

import (
	"context"
	"errors"

	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/domain"
)

type Repository interface {
	CreateUser(ctx context.Context, user domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	FindUserByID(ctx context.Context, id domain.ID) (domain.User, error)
	AddExercise(ctx context.Context, userID domain.ID, exercise domain.Exercise) error
	ListExercises(ctx context.Context, userID domain.ID) ([]domain.Exercise, error)
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user id already exists")
)
