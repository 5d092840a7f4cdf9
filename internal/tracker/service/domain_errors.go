package service

import (
	"net/http"

	commonerrors "github.com/dkurenkov/exercise-tracker/backend/internal/common/errors"
)

var (
	ErrUsernameRequired = commonerrors.NewDomainError(
		"USERNAME_REQUIRED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"username is required",
	)

	ErrDescriptionRequired = commonerrors.NewDomainError(
		"DESCRIPTION_REQUIRED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"description is required",
	)

	ErrInvalidDuration = commonerrors.NewDomainError(
		"INVALID_DURATION",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"duration must be a positive integer",
	)

	ErrInvalidDate = commonerrors.NewDomainError(
		"INVALID_DATE",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"date must be in YYYY-MM-DD format",
	)

	// The original API reports unknown users as a client error, not 404.
	ErrUserNotFound = commonerrors.NewDomainError(
		"USER_NOT_FOUND",
		commonerrors.CategoryNotFound,
		http.StatusBadRequest,
		"user not found",
	)

	ErrValidation = commonerrors.NewDomainError(
		"VALIDATION_FAILED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"validation failed",
	)
)
