package formula

// ============================================================================
// FORMULA TYPES — References and time shifts
// ============================================================================
// A formula is plain text like:
//
//	("Manifold Pressure" + 14.7) / 14.7
//	RPM - RPM[-1]
//	Boost@-0.1s * 0.0689476
//
// Extraction turns the text into References; each carries the channel name,
// an optional time shift, and the exact source substring so the evaluator
// can substitute it back out deterministically.
// ============================================================================

import "fmt"

// ShiftKind discriminates the three ways a reference can be displaced
// from the current record.
type ShiftKind int

const (
	// ShiftNone reads the current record.
	ShiftNone ShiftKind = iota
	// ShiftSamples reads a record displaced by a whole number of rows,
	// clamped to the log's bounds.
	ShiftSamples
	// ShiftSeconds reads the record nearest to the current timestamp
	// plus an offset in seconds.
	ShiftSeconds
)

// TimeShift displaces a channel reference in time. The zero value means
// "no shift".
type TimeShift struct {
	Kind    ShiftKind
	Samples int     // valid when Kind == ShiftSamples
	Seconds float64 // valid when Kind == ShiftSeconds
}

// NoShift is the unshifted TimeShift.
var NoShift = TimeShift{}

// BySamples returns a whole-record displacement. Negative looks back.
func BySamples(n int) TimeShift {
	return TimeShift{Kind: ShiftSamples, Samples: n}
}

// BySeconds returns a wall-clock displacement. Negative looks back.
func BySeconds(s float64) TimeShift {
	return TimeShift{Kind: ShiftSeconds, Seconds: s}
}

// String renders the shift the way it is written in formulas.
func (ts TimeShift) String() string {
	switch ts.Kind {
	case ShiftSamples:
		return fmt.Sprintf("[%+d]", ts.Samples)
	case ShiftSeconds:
		return fmt.Sprintf("@%+gs", ts.Seconds)
	default:
		return ""
	}
}

// Reference is one channel mention inside a formula.
type Reference struct {
	// Name is the channel name as written, without quotes or shift suffix.
	Name string
	// Shift displaces the read in time; zero value reads the current record.
	Shift TimeShift
	// FullMatch is the exact substring of the formula that produced this
	// reference, including quotes and shift suffix. Substitution replaces
	// exactly this text.
	FullMatch string
}

// Shifted reports whether this reference reads anywhere but the current
// record.
func (r Reference) Shifted() bool {
	return r.Shift.Kind != ShiftNone
}

// String renders the reference roughly as written.
func (r Reference) String() string {
	return r.FullMatch
}
