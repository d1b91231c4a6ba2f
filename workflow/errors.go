package workflow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBoardNotConfigured is returned when no board identifier was configured.
// It never reaches the board API.
var ErrBoardNotConfigured = errors.New("board id not configured")

// ValidationError reports a required request field that is empty after
// trimming. No external call is made when validation fails.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// UnknownTemplateError reports a client-supplied checklist template id that
// is not in the registry. Available carries the full set of valid ids.
type UnknownTemplateError struct {
	Requested string
	Available []string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown checklist template %q (available: %s)", e.Requested, strings.Join(e.Available, ", "))
}

// UnknownCountryError reports a canonical country with no matching board
// list. Suggestions carries every list name on the board, in board order.
type UnknownCountryError struct {
	Country     string
	Suggestions []string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("no board list matches country %q", e.Country)
}
