package service_test

import (
	"context"

	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/domain"
	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/repository"
)

type mockRepository struct {
	createUserFunc    func(ctx context.Context, user domain.User) error
	listUsersFunc     func(ctx context.Context) ([]domain.User, error)
	findUserByIDFunc  func(ctx context.Context, id domain.ID) (domain.User, error)
	addExerciseFunc   func(ctx context.Context, userID domain.ID, exercise domain.Exercise) error
	listExercisesFunc func(ctx context.Context, userID domain.ID) ([]domain.Exercise, error)
}

func (m *mockRepository) CreateUser(ctx context.Context, user domain.User) error {
	if m.createUserFunc != nil {
		return m.createUserFunc(ctx, user)
	}
	return nil
}

func (m *mockRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) FindUserByID(ctx context.Context, id domain.ID) (domain.User, error) {
	if m.findUserByIDFunc != nil {
		return m.findUserByIDFunc(ctx, id)
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (m *mockRepository) AddExercise(ctx context.Context, userID domain.ID, exercise domain.Exercise) error {
	if m.addExerciseFunc != nil {
		return m.addExerciseFunc(ctx, userID, exercise)
	}
	return nil
}

func (m *mockRepository) ListExercises(ctx context.Context, userID domain.ID) ([]domain.Exercise, error) {
	if m.listExercisesFunc != nil {
		return m.listExercisesFunc(ctx, userID)
	}
	return nil, nil
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "mock1id", nil
}
