package draft

import (
	"errors"
	"fmt"
)

// ErrRosterFull is returned when a draft action would exceed roster capacity.
var ErrRosterFull = errors.New("roster is full")

// NotFoundError reports a name with no match in the pool. Suggestion, when
// non-empty, is the closest-named pool player.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("player %q not found (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("player %q not found", e.Name)
}

// AlreadyDraftedError reports a draft action on a name already claimed by
// either side. Re-drafting is an explicit error, never a no-op.
type AlreadyDraftedError struct {
	Name string
}

func (e *AlreadyDraftedError) Error() string {
	return fmt.Sprintf("%s has already been drafted", e.Name)
}
