package formula

// ============================================================================
// RESERVED NAMES — Builtin functions and constants
// ============================================================================
// A bare identifier that names a builtin is part of the math language, not
// a channel. "sin" in "sin(RPM)" must never be looked up in the log. The
// comparison is case-insensitive so "Sin(" does not silently become a
// missing channel; quoting always forces channel interpretation.
// ============================================================================

import "strings"

// DefaultReservedNames are the builtin function and constant names
// recognized by the evaluator. Extraction skips bare identifiers matching
// any of these, case-insensitively.
var DefaultReservedNames = []string{
	"sin", "cos", "tan",
	"asin", "acos", "atan", "atan2",
	"sinh", "cosh", "tanh",
	"asinh", "acosh", "atanh",
	"sqrt", "abs", "exp",
	"ln", "log", "log2", "log10",
	"floor", "ceil", "round", "trunc",
	"fract", "signum",
	"min", "max",
	"pi", "e", "tau", "phi",
}

// reservedSet builds a lowercase lookup set from a name list.
func reservedSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = struct{}{}
	}
	return set
}
