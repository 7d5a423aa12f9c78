package formula

// ============================================================================
// IDENTIFIER SANITIZATION — Formula text → math-engine variable names
// ============================================================================
// The math engine only accepts plain identifiers, so every reference's
// exact source text is mapped to one: quotes, brackets, signs and spaces
// all become underscores, and a leading digit gets a "v_" prefix.
//
//	"Manifold Pressure"   →  _Manifold_Pressure_
//	RPM[-1]               →  RPM__1_
//	Boost@-0.1s           →  Boost__0_1s
//
// Distinct source texts can still collide ("RPM[+1]" and "RPM[-1]" both
// map to RPM__1_), so identifiers are assigned per formula with a
// deterministic numeric suffix on collision. Validation and evaluation
// run the same assignment over the same reference order and therefore
// always agree.
// ============================================================================

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeIdent maps an exact reference text to a math-engine identifier.
// Letters and digits pass through, everything else becomes '_', and a
// leading digit is guarded with "v_". The mapping is deterministic but
// not injective; identifiersFor resolves collisions per formula.
func SanitizeIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		return "_"
	}
	if r, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(r) {
		return "v_" + out
	}
	return out
}

// identifiersFor assigns a unique identifier to every reference, keyed by
// exact source text. refs must be in extraction order (longest first) so
// collision suffixes land on the same references every time.
func identifiersFor(refs []Reference) map[string]string {
	ids := make(map[string]string, len(refs))
	used := make(map[string]bool, len(refs))
	for _, ref := range refs {
		base := SanitizeIdent(ref.FullMatch)
		id := base
		for n := 2; used[id]; n++ {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		used[id] = true
		ids[ref.FullMatch] = id
	}
	return ids
}
