package services

import (
	"errors"
	"strings"
)

// Sentinel errors shared across services and mapped to HTTP statuses in
// the handler layer.
var (
	// Registration validation
	ErrValidationFailed    = errors.New("validation failed")
	ErrInvalidTaxID        = errors.New("invalid CPF")
	ErrDuplicateTaxID      = errors.New("CPF already registered in this team")
	ErrRosterFull          = errors.New("team roster is full")
	ErrPositionFull        = errors.New("position quota already filled in this roster")
	ErrTeamLimitReached    = errors.New("team registration limit reached")
	ErrPositionUnavailable = errors.New("no remaining slots for the chosen position")

	// Auth
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrAuthEmailTaken         = errors.New("email is already taken")
	ErrPasswordTooShort       = errors.New("password is too short")

	// Entity lookups
	ErrJogadoraNotFound = errors.New("jogadora not found")
	ErrUserNotFound     = errors.New("user not found")
)

// RosterValidationError carries every reason a roster fails the active
// composition rule, in the fixed position enumeration order.
type RosterValidationError struct {
	Reasons []string
}

func (e *RosterValidationError) Error() string {
	return "roster does not satisfy composition rules: " + strings.Join(e.Reasons, "; ")
}
