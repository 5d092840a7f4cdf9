package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dkurenkov/exercise-tracker/backend/internal/common/clock"
	"github.com/dkurenkov/exercise-tracker/backend/internal/common/constants"
	"github.com/dkurenkov/exercise-tracker/backend/internal/common/crypto"
	"github.com/dkurenkov/exercise-tracker/backend/internal/common/logger"
	"github.com/dkurenkov/exercise-tracker/backend/internal/observability/metrics"
	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/domain"
	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/repository"
)

type TrackerService struct {
	repo      repository.Repository
	ids       crypto.IDGenerator
	clock     clock.Clock
	log       *logger.Logger
	validator InputValidator
}

func NewTrackerService(
	repo repository.Repository,
	ids crypto.IDGenerator,
	clk clock.Clock,
	log *logger.Logger,
) *TrackerService {
	return &TrackerService{
		repo:      repo,
		ids:       ids,
		clock:     clk,
		log:       log,
		validator: NewInputValidator(),
	}
}

func (s *TrackerService) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	if err := s.validator.ValidateCreateUser(in); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "create_user_invalid",
		}).Warn("create user failed: missing username")
		return domain.User{}, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	user := domain.User{
		ID:        domain.ID(id),
		Username:  in.Username,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.UsersCreatedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"user_id": id,
		"action":  "user_created",
	}).Info("user created")

	return user, nil
}

func (s *TrackerService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *TrackerService) AddExercise(ctx context.Context, in AddExerciseInput) (domain.User, domain.Exercise, error) {
	if err := s.validator.ValidateAddExercise(in); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": in.UserID,
			"action":  "add_exercise_invalid",
		}).Warn("add exercise failed: invalid input")
		return domain.User{}, domain.Exercise{}, err
	}

	user, err := s.findUser(ctx, in.UserID)
	if err != nil {
		return domain.User{}, domain.Exercise{}, err
	}

	duration, err := strconv.Atoi(in.Duration)
	if err != nil || duration <= 0 {
		return domain.User{}, domain.Exercise{}, ErrInvalidDuration
	}

	date, err := s.exerciseDate(in.Date)
	if err != nil {
		return domain.User{}, domain.Exercise{}, err
	}

	exercise := domain.Exercise{
		Description: in.Description,
		Duration:    duration,
		Date:        date,
	}

	if err := s.repo.AddExercise(ctx, user.ID, exercise); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, domain.Exercise{}, ErrUserNotFound
		}
		return domain.User{}, domain.Exercise{}, fmt.Errorf("failed to add exercise: %w", err)
	}

	metrics.ExercisesLoggedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"user_id": string(user.ID),
		"action":  "exercise_logged",
	}).Info("exercise logged")

	return user, exercise, nil
}

// GetLog returns the user and their exercise sequence narrowed by the
// optional from/to/limit values.
func (s *TrackerService) GetLog(ctx context.Context, in LogInput) (domain.User, []domain.Exercise, error) {
	if err := s.validator.ValidateLogQuery(in); err != nil {
		return domain.User{}, nil, err
	}

	user, err := s.findUser(ctx, in.UserID)
	if err != nil {
		return domain.User{}, nil, err
	}

	exercises, err := s.repo.ListExercises(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, nil, ErrUserNotFound
		}
		return domain.User{}, nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	filtered := FilterLog(exercises, ParseLogFilter(in))

	metrics.LogQueriesTotal.Inc()

	return user, filtered, nil
}

func (s *TrackerService) findUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.repo.FindUserByID(ctx, domain.ID(id))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"user_id": id,
				"action":  "user_not_found",
			}).Warn("user lookup failed: not found")
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// exerciseDate resolves the optional date field: absent means today.
// Unparseable dates are rejected rather than stored as a sentinel that
// would poison later log filtering.
func (s *TrackerService) exerciseDate(value string) (time.Time, error) {
	if value == "" {
		return DateOnly(s.clock.Now()), nil
	}

	date, err := time.ParseInLocation(constants.ExerciseDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate.WithCause(err)
	}
	return date, nil
}

// DateOnly truncates a timestamp to its calendar date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
