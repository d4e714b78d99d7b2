package services

import (
	"errors"
	"fmt"

	"taskhub-api/internal/models"
	"taskhub-api/internal/storage"
	"taskhub-api/internal/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// MapRepoError maps storage errors to service errors
func MapRepoError(logger *zap.Logger, err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		// storage.ErrDuplicateEmail and ErrDuplicateUsername land here too.
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	logger.Error("unexpected repository error", zap.String("operation", operation), zap.Error(err))
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// validate runs the struct rules and converts failures into a ValidationError.
func validate(v *validator.Validate, req any) error {
	if err := v.Struct(req); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fmt.Errorf("validate request: %w", err)
		}
		return &ValidationError{Fields: validation.FieldErrors(err)}
	}
	return nil
}

// mapTransitionError translates relationship rule violations into service errors.
func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, models.ErrNoRelationship):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, models.ErrRelationshipExists):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, models.ErrRelationshipBlock):
		return fmt.Errorf("%w: %v", ErrForbidden, err)
	case errors.Is(err, models.ErrInvalidTransition):
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	return err
}
