package formula

// ============================================================================
// FORMULA VALIDATION — Editor-time checks, no sample data required
// ============================================================================
// Two stages, cheapest first:
//
//  1. every referenced channel must exist in the available set
//  2. the prepared expression must compile and produce a number when every
//     reference is bound to a placeholder value
//
// Stage 1 collects ALL missing names before failing so the user fixes the
// whole formula in one round trip, and decorates each with a did-you-mean
// drawn from the real channel list. ValidateSyntax runs stage 2 alone for
// callers that have no log loaded yet.
// ============================================================================

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Validate checks text against the channels available in a log. It returns
// nil when the formula references only known channels, parses, and yields
// a number under placeholder inputs. Failures are typed: ErrEmptyFormula,
// *UnknownChannelsError, or *EvalError.
func Validate(text string, channels []string, opts ...Option) error {
	cfg := applyOptions(opts)
	if strings.TrimSpace(text) == "" {
		return ErrEmptyFormula
	}

	refs, spans := scanRefs(text, cfg.Reserved)

	var missing []string
	checked := make(map[string]bool)
	for _, ref := range refs {
		if checked[ref.Name] {
			continue
		}
		checked[ref.Name] = true
		if _, ok := matchChannel(ref.Name, channels); !ok {
			missing = append(missing, ref.Name)
		}
	}
	if len(missing) > 0 {
		suggestions := make(map[string][]string, len(missing))
		for _, name := range missing {
			if hints := suggestionsFor(name, channels, cfg.Suggest); len(hints) > 0 {
				suggestions[name] = hints
			}
		}
		return &UnknownChannelsError{Missing: missing, Suggestions: suggestions}
	}
	return dryRun(text, refs, spans, cfg)
}

// ValidateSyntax is Validate without the channel-existence stage, for
// checking a formula before any log is loaded. Reference names bind to
// the placeholder unchecked; a wrong name surfaces later, at Validate or
// binding time.
func ValidateSyntax(text string, opts ...Option) error {
	cfg := applyOptions(opts)
	if strings.TrimSpace(text) == "" {
		return ErrEmptyFormula
	}
	refs, spans := scanRefs(text, cfg.Reserved)
	return dryRun(text, refs, spans, cfg)
}

// dryRun binds every reference to a placeholder and executes the prepared
// expression once. This smokes out syntax errors, unknown functions and
// non-numeric results without needing a single log row.
func dryRun(text string, refs []Reference, spans []span, cfg *config) error {
	ids := identifiersFor(refs)
	prepared := substitute(text, spans, ids)
	env := baseEnv()
	for _, id := range ids {
		env[id] = cfg.DummyValue
	}
	program, err := expr.Compile(prepared, expr.Env(env))
	if err != nil {
		return &EvalError{Stage: "parse", Err: err}
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return &EvalError{Stage: "eval", Err: err}
	}
	if _, ok := toFloat(out); !ok {
		return &EvalError{Stage: "eval", Err: fmt.Errorf("result is %T, want a number", out)}
	}
	return nil
}

// suggestionsFor ranks channels that fuzzily match name and returns up to
// limit of the closest ones.
func suggestionsFor(name string, channels []string, limit int) []string {
	if limit <= 0 || len(channels) == 0 {
		return nil
	}
	ranks := fuzzy.RankFindFold(name, channels)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})
	if limit > len(ranks) {
		limit = len(ranks)
	}
	out := make([]string, 0, limit)
	for _, r := range ranks[:limit] {
		out = append(out, r.Target)
	}
	return out
}
