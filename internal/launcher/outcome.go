package launcher

import (
	"errors"
	"fmt"
)

// Outcome classifies the result of a dispatch.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeEntryNotFound
	OutcomeEntryPointMissing
	OutcomeAccessDenied
	OutcomeArgumentMismatch
	OutcomeInvocationFailure
)

var outcomeNames = map[Outcome]string{
	OutcomeOK:                "ok",
	OutcomeEntryNotFound:     "entry-not-found",
	OutcomeEntryPointMissing: "entry-point-missing",
	OutcomeAccessDenied:      "access-denied",
	OutcomeArgumentMismatch:  "argument-mismatch",
	OutcomeInvocationFailure: "invocation-failure",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

var (
	ErrEntryNotFound     = errors.New("entry not found")
	ErrEntryPointMissing = errors.New("entry point missing")
	ErrAccessDenied      = errors.New("entry point not accessible")
	ErrArgumentMismatch  = errors.New("entry point does not accept forwarded arguments")
	ErrInvocationFailure = errors.New("entry point failed")
)

var outcomeErrs = map[Outcome]error{
	OutcomeEntryNotFound:     ErrEntryNotFound,
	OutcomeEntryPointMissing: ErrEntryPointMissing,
	OutcomeAccessDenied:      ErrAccessDenied,
	OutcomeArgumentMismatch:  ErrArgumentMismatch,
	OutcomeInvocationFailure: ErrInvocationFailure,
}

// DispatchError is returned by Dispatch for every failed outcome. Err
// carries the stack captured where the failure was detected.
type DispatchError struct {
	Outcome Outcome
	Entry   string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Outcome, e.Entry, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// Is matches the sentinel error of the outcome, so callers can write
// errors.Is(err, ErrEntryNotFound) regardless of the wrapped cause.
func (e *DispatchError) Is(target error) bool {
	sentinel, ok := outcomeErrs[e.Outcome]
	return ok && target == sentinel
}

// OutcomeOf classifies err as returned by Dispatch.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	var de *DispatchError
	if errors.As(err, &de) {
		return de.Outcome
	}
	return OutcomeInvocationFailure
}
