package formula

// ============================================================================
// FORMULA ERRORS — Typed failures for validation, binding and evaluation
// ============================================================================

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFormula is returned when a formula is empty or whitespace-only.
var ErrEmptyFormula = errors.New("formula is empty")

// UnknownChannelsError reports every referenced channel missing from the
// available set, with optional near-miss suggestions per name.
type UnknownChannelsError struct {
	Missing     []string
	Suggestions map[string][]string
}

// Error lists all missing channels in one message so the user can fix the
// whole formula in one pass.
func (e *UnknownChannelsError) Error() string {
	var b strings.Builder
	b.WriteString("unknown channel(s): ")
	b.WriteString(strings.Join(e.Missing, ", "))
	for _, name := range e.Missing {
		if hints := e.Suggestions[name]; len(hints) > 0 {
			fmt.Fprintf(&b, "; did you mean %q for %q", hints[0], name)
		}
	}
	return b.String()
}

// BindingError reports a referenced channel that could not be resolved to
// a column of the current log.
type BindingError struct {
	Channel string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("channel %q not found in log", e.Channel)
}

// EvalError wraps a math-engine failure with the stage it occurred in.
// The engine's own message is preserved verbatim.
type EvalError struct {
	Stage string // "parse" or "eval"
	Err   error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("formula %s error: %v", e.Stage, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }
