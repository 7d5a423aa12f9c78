package formula

// ============================================================================
// REFERENCE EXTRACTION — Single-pass formula scanner
// ============================================================================
// One left-to-right scan classifies every token:
//
//	"Manifold Pressure"[-2]   quoted reference, index shift
//	RPM@-0.1s                 bare reference, seconds shift
//	sin( ... pi               reserved builtins, skipped
//	3.5 + * ( )               literals and operators, ignored
//
// A quoted span is consumed whole, so operators or builtin names inside
// quotes can never be re-tokenized. A shift suffix counts only when it
// starts immediately after the name; "RPM [-1]" is a plain reference
// followed by stray text the math engine will reject.
//
// The scanner records the position of every occurrence, and substitution
// rewrites those exact spans. Identifier text can therefore never be
// re-matched as a reference, no matter how channels are named.
// ============================================================================

import (
	"sort"
	"strconv"
	"strings"
)

// span is one occurrence of a reference in the formula text.
type span struct {
	start, end int
	match      string // == text[start:end]
}

// Extract returns every channel reference in text, deduplicated by exact
// source text and sorted longest source text first (ties keep scan order).
// Bare identifiers naming builtins are not references.
func Extract(text string, opts ...Option) []Reference {
	cfg := applyOptions(opts)
	refs, _ := scanRefs(text, cfg.Reserved)
	return refs
}

// scanRefs scans text once and returns the deduplicated references plus
// the position of every occurrence in scan order.
func scanRefs(text string, reserved map[string]struct{}) ([]Reference, []span) {
	var refs []Reference
	var spans []span
	seen := make(map[string]bool)

	emit := func(r Reference, start, end int) {
		spans = append(spans, span{start: start, end: end, match: r.FullMatch})
		if !seen[r.FullMatch] {
			seen[r.FullMatch] = true
			refs = append(refs, r)
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '"':
			name, end, ok := scanQuoted(text, i)
			if !ok {
				// Unterminated or empty quotes: treat the quote as a
				// stray character and keep scanning after it.
				i++
				continue
			}
			shift, next := scanShift(text, end)
			emit(Reference{Name: name, Shift: shift, FullMatch: text[i:next]}, i, next)
			i = next
		case isIdentStart(c):
			start := i
			for i < len(text) && isIdentChar(text[i]) {
				i++
			}
			name := text[start:i]
			if _, ok := reserved[strings.ToLower(name)]; ok {
				continue
			}
			shift, next := scanShift(text, i)
			emit(Reference{Name: name, Shift: shift, FullMatch: text[start:next]}, start, next)
			i = next
		default:
			i++
		}
	}

	// Longest source text first; scan order breaks ties.
	sort.SliceStable(refs, func(a, b int) bool {
		return len(refs[a].FullMatch) > len(refs[b].FullMatch)
	})
	return refs, spans
}

// scanQuoted reads a quoted channel name starting at the opening quote.
// It returns the name, the index just past the closing quote, and whether
// a non-empty quoted name was found.
func scanQuoted(text string, start int) (name string, end int, ok bool) {
	rel := strings.IndexByte(text[start+1:], '"')
	if rel < 0 {
		return "", 0, false
	}
	closing := start + 1 + rel
	if closing == start+1 {
		return "", 0, false // "" holds no name
	}
	return text[start+1 : closing], closing + 1, true
}

// scanShift parses an optional shift suffix at position i. It returns the
// shift and the index just past the consumed suffix. When no well-formed
// suffix starts exactly at i, nothing is consumed.
//
// A suffix whose shape is right but whose number does not parse (an index
// offset beyond 32 bits) is still consumed and degrades to no shift, so
// the reference stays usable.
func scanShift(text string, i int) (TimeShift, int) {
	if i >= len(text) {
		return NoShift, i
	}
	switch text[i] {
	case '[':
		body, end, ok := scanIndexSuffix(text, i)
		if !ok {
			return NoShift, i
		}
		n, err := strconv.ParseInt(body, 10, 32)
		if err != nil {
			return NoShift, end
		}
		return BySamples(int(n)), end
	case '@':
		body, end, ok := scanSecondsSuffix(text, i)
		if !ok {
			return NoShift, i
		}
		s, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return NoShift, end
		}
		return BySeconds(s), end
	default:
		return NoShift, i
	}
}

// scanIndexSuffix matches [±int] starting at the '[' and returns the
// signed digit string plus the index past the ']'.
func scanIndexSuffix(text string, i int) (body string, end int, ok bool) {
	j := i + 1
	if j < len(text) && (text[j] == '+' || text[j] == '-') {
		j++
	}
	digits := j
	for j < len(text) && isDigit(text[j]) {
		j++
	}
	if j == digits || j >= len(text) || text[j] != ']' {
		return "", 0, false
	}
	return text[i+1 : j], j + 1, true
}

// scanSecondsSuffix matches @±float s starting at the '@' and returns the
// number string plus the index past the mandatory trailing 's'.
func scanSecondsSuffix(text string, i int) (body string, end int, ok bool) {
	j := i + 1
	if j < len(text) && (text[j] == '+' || text[j] == '-') {
		j++
	}
	intDigits := j
	for j < len(text) && isDigit(text[j]) {
		j++
	}
	sawInt := j > intDigits
	sawFrac := false
	if j < len(text) && text[j] == '.' {
		j++
		fracDigits := j
		for j < len(text) && isDigit(text[j]) {
			j++
		}
		sawFrac = j > fracDigits
	}
	if !sawInt && !sawFrac {
		return "", 0, false
	}
	if j >= len(text) || text[j] != 's' {
		return "", 0, false
	}
	return text[i+1 : j], j + 1, true
}

// substitute rewrites every reference occurrence with its identifier.
// spans come from scanRefs in scan order, so they are strictly increasing
// and never overlap.
func substitute(text string, spans []span, ids map[string]string) string {
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, sp := range spans {
		b.WriteString(text[last:sp.start])
		b.WriteString(ids[sp.match])
		last = sp.end
	}
	b.WriteString(text[last:])
	return b.String()
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
