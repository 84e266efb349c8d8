/*
errors.go - Centralized error types for the commission engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers (api, insights) branch on these with errors.Is/errors.As.

ERROR CATEGORIES:
  1. Goal errors - no goal defined for a month, no goal set for a user.
     These are recoverable states, not faults: callers render a guidance
     message instead of a score.
  2. Roster errors - unknown user, delete preconditions
  3. Store errors - missing records

USAGE:
    stmt, err := engine.UserStatement(ctx, userID, month)
    if errors.Is(err, commission.ErrNoGoalDefined) {
        // render "define goals for this month first"
    }
*/
package commission

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNoGoalDefined is returned when a month has no Goal record. Scoring
	// cannot proceed for that month; this is a guidance state, not a fault.
	ErrNoGoalDefined = errors.New("no goal defined for month")

	// ErrNoUserGoal is returned when the month's Goal has no goal set for
	// a given user. Same treatment as ErrNoGoalDefined, scoped to one user.
	ErrNoUserGoal = errors.New("no goal set for user")

	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserHasSales is returned when deleting a user that is referenced
	// by historical sales. The delete must not proceed.
	ErrUserHasSales = errors.New("user has associated sales")

	// ErrRecordNotFound is returned by stores for a missing record id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrRoleMismatch is returned when an operation expects a different role
	// (e.g. asking for a seller statement for a cashier).
	ErrRoleMismatch = errors.New("operation not valid for role")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// NoUserGoalError reports which user and month lacked a goal set.
type NoUserGoalError struct {
	UserID string
	Month  Month
}

func (e *NoUserGoalError) Error() string {
	return fmt.Sprintf("no goal set for user %s in %s", e.UserID, e.Month)
}

func (e *NoUserGoalError) Unwrap() error { return ErrNoUserGoal }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrRecordNotFound)
}

// IsGuidance returns true for the recoverable "no goal" states that should
// be rendered as guidance messages rather than failures.
func IsGuidance(err error) bool {
	return errors.Is(err, ErrNoGoalDefined) ||
		errors.Is(err, ErrNoUserGoal)
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUserHasSales) ||
		errors.Is(err, ErrRoleMismatch)
}
