package domain

import (
	"errors"
	"fmt"
)

// Outcome taxonomy. NotFound and Conflict are expected, caller-recoverable
// outcomes; Validation flags malformed input. Callers branch with errors.Is.
var (
	ErrNotFound   = errors.New("entity not found")
	ErrConflict   = errors.New("uniqueness conflict")
	ErrValidation = errors.New("invalid input")
)

var (
	ErrCafeNotFound       = fmt.Errorf("cafe: %w", ErrNotFound)
	ErrCafeNameTaken      = fmt.Errorf("cafe name already in use: %w", ErrConflict)
	ErrEmployeeNotFound   = fmt.Errorf("employee: %w", ErrNotFound)
	ErrEmployeeIDTaken    = fmt.Errorf("employee id already in use: %w", ErrConflict)
	ErrContactTaken       = fmt.Errorf("email or phone already in use: %w", ErrConflict)
	ErrAssignmentNotFound = fmt.Errorf("assignment: %w", ErrNotFound)
	ErrAlreadyAssigned    = fmt.Errorf("employee already actively assigned to cafe: %w", ErrConflict)
)
