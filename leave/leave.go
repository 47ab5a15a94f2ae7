// Package leave implements the leave balance ledger, the request workflow
// (submit, approve, reject) and the read-side availability projection.
package leave

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrInsufficientBalance: requested hours exceed the current balance
	// for the request kind.
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	// ErrInvalidState: the request already left the pending state.
	ErrInvalidState = errors.New("request is not pending")
	// ErrNotFound: the referenced request or balance row does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a missing or malformed field for the chosen
// request kind. It is raised before any persistence attempt.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func invalid(field, msg string) error { return &ValidationError{Field: field, Msg: msg} }

// Engine binds the leave logic to a database. WorkDayHours is the hour
// value of one full leave day. StrictBalance treats a missing balance row
// as a zero balance; the default mirrors the legacy behavior of skipping
// the check entirely when no row exists.
type Engine struct {
	db            *gorm.DB
	WorkDayHours  float64
	StrictBalance bool
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db, WorkDayHours: 8}
}
