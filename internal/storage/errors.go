package storage

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource conflict (e.g., duplicate key)")

	ErrDuplicateEmail    = fmt.Errorf("duplicate email: %w", ErrConflict)
	ErrDuplicateUsername = fmt.Errorf("duplicate username: %w", ErrConflict)
)
