package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type CreateUserInput struct {
	Username string `validate:"required"`
}

type AddExerciseInput struct {
	UserID      string `validate:"required"`
	Description string `validate:"required"`
	Duration    string `validate:"required,number"`
	Date        string
}

type LogInput struct {
	UserID string `validate:"required"`
	From   string
	To     string
	Limit  string
}

// InputValidator rejects malformed inputs before any store mutation.
type InputValidator struct {
	validate *validator.Validate
}

func NewInputValidator() InputValidator {
	return InputValidator{validate: validator.New()}
}

func (v InputValidator) ValidateCreateUser(in CreateUserInput) error {
	return v.mapFieldErrors(v.validate.Struct(in))
}

func (v InputValidator) ValidateAddExercise(in AddExerciseInput) error {
	return v.mapFieldErrors(v.validate.Struct(in))
}

func (v InputValidator) ValidateLogQuery(in LogInput) error {
	return v.mapFieldErrors(v.validate.Struct(in))
}

func (v InputValidator) mapFieldErrors(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "Username":
				return ErrUsernameRequired.WithCause(err)
			case "Description":
				return ErrDescriptionRequired.WithCause(err)
			case "Duration":
				return ErrInvalidDuration.WithCause(err)
			case "UserID":
				// An empty path id can never match a stored user.
				return ErrUserNotFound.WithCause(err)
			}
		}
	}

	return ErrValidation.WithCause(err)
}
