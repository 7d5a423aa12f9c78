package formula

// ============================================================================
// FORMULA EVALUATION — One output sample per log record
// ============================================================================
// The expression is compiled once, then executed per record with the
// environment's reference slots rewritten in place. Time shifts resolve to
// a concrete source row first:
//
//	RPM[-1]     row r-1, clamped to the log's edges
//	RPM@-0.1s   row nearest times[r]-0.1, binary searched
//
// A record that fails — engine error, NaN, ±Inf, ragged row — contributes
// 0.0 instead of aborting, so one bad sample cannot blank a whole plotted
// channel. Structural problems (syntax, unresolved bindings, missing time
// vector) still fail the whole call.
// ============================================================================

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
)

// Evaluate computes the formula once per record of data and returns a
// vector of len(data) samples. bindings must resolve every reference name
// (see BuildBindings); times must parallel data when the formula uses
// seconds-based shifts. Per-record failures yield 0.0.
func Evaluate(text string, bindings map[string]int, data [][]float64, times []float64, opts ...Option) ([]float64, error) {
	out, _, err := evaluateAll(text, bindings, data, times, applyOptions(opts), false)
	return out, err
}

// EvaluateWithDiagnostics is Evaluate plus a parallel vector marking the
// records that degraded to 0.0.
func EvaluateWithDiagnostics(text string, bindings map[string]int, data [][]float64, times []float64, opts ...Option) ([]float64, []bool, error) {
	return evaluateAll(text, bindings, data, times, applyOptions(opts), true)
}

// Preview returns the first n samples of a full evaluation, for quick
// feedback while a formula is being typed. The whole log is evaluated so
// shifted references read the same rows they would under Evaluate; only
// the returned vector is truncated. n is clamped to the available rows.
func Preview(text string, bindings map[string]int, data [][]float64, times []float64, n int, opts ...Option) ([]float64, error) {
	out, _, err := evaluateAll(text, bindings, data, times, applyOptions(opts), false)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(out) {
		n = len(out)
	}
	return out[:n], nil
}

func evaluateAll(text string, bindings map[string]int, data [][]float64, times []float64, cfg *config, wantDiag bool) ([]float64, []bool, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, ErrEmptyFormula
	}

	refs, spans := scanRefs(text, cfg.Reserved)

	// Resolve every reference to its column up front; a missing binding
	// is a structural failure, not a bad sample.
	cols := make([]int, len(refs))
	for i, ref := range refs {
		col, ok := bindings[ref.Name]
		if !ok || col < 0 {
			return nil, nil, &BindingError{Channel: ref.Name}
		}
		cols[i] = col
	}

	needsTimes := false
	for _, ref := range refs {
		if ref.Shift.Kind == ShiftSeconds {
			needsTimes = true
			break
		}
	}
	if needsTimes && len(times) != len(data) {
		return nil, nil, fmt.Errorf("time vector has %d entries, want %d", len(times), len(data))
	}

	ids := identifiersFor(refs)
	prepared := substitute(text, spans, ids)
	env := baseEnv()
	slots := make([]string, len(refs))
	for i, ref := range refs {
		slots[i] = ids[ref.FullMatch]
		env[slots[i]] = 0.0
	}

	program, err := expr.Compile(prepared, expr.Env(env))
	if err != nil {
		return nil, nil, &EvalError{Stage: "parse", Err: err}
	}

	rows := len(data)
	out := make([]float64, rows)
	var degraded []bool
	if wantDiag {
		degraded = make([]bool, rows)
	}
	fail := func(r int) {
		out[r] = 0
		if wantDiag {
			degraded[r] = true
		}
	}

	for r := 0; r < rows; r++ {
		ok := true
		for i, ref := range refs {
			src := resolveRow(ref.Shift, r, rows, times)
			rec := data[src]
			if cols[i] >= len(rec) {
				ok = false
				break
			}
			env[slots[i]] = rec[cols[i]]
		}
		if !ok {
			fail(r)
			continue
		}
		res, err := expr.Run(program, env)
		if err != nil {
			fail(r)
			continue
		}
		v, numeric := toFloat(res)
		if !numeric || math.IsNaN(v) || math.IsInf(v, 0) {
			fail(r)
			continue
		}
		out[r] = v
	}
	return out, degraded, nil
}

// resolveRow maps a shift at record r to the source row to read.
func resolveRow(shift TimeShift, r, rows int, times []float64) int {
	switch shift.Kind {
	case ShiftSamples:
		idx := r + shift.Samples
		if shift.Samples > 0 && idx < r { // wrapped past MaxInt
			idx = rows - 1
		}
		if shift.Samples < 0 && idx > r {
			idx = 0
		}
		if idx < 0 {
			idx = 0
		}
		if idx > rows-1 {
			idx = rows - 1
		}
		return idx
	case ShiftSeconds:
		return NearestTimeIndex(times, times[r]+shift.Seconds)
	default:
		return r
	}
}

// NearestTimeIndex returns the index of the timestamp closest to target.
// times must be sorted non-decreasing. The target is clamped to the vector's
// span, exact hits return the lowest matching index, and equidistant
// neighbors resolve to the lower index.
func NearestTimeIndex(times []float64, target float64) int {
	n := len(times)
	if n == 0 || math.IsNaN(target) {
		return 0
	}
	if target <= times[0] {
		return 0
	}
	if target >= times[n-1] {
		return n - 1
	}
	idx := sort.SearchFloat64s(times, target)
	if idx >= n {
		return n - 1
	}
	if times[idx] == target {
		return idx
	}
	if target-times[idx-1] <= times[idx]-target {
		return idx - 1
	}
	return idx
}

// toFloat widens any numeric result to float64. Anything else (bool,
// string, nil) reports false.
func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
