package formula

// ============================================================================
// CHANNEL BINDINGS — Reference names → log column indices
// ============================================================================
// Bindings are per log file. The same template evaluated against two logs
// resolves independently, so a channel living in column 3 of one file and
// column 7 of another just works.
// ============================================================================

import "strings"

// BuildBindings resolves every reference name to a column index in
// channels. Matching is case-insensitive and the first matching column
// wins. All references to the same name share one binding. The first
// unresolvable name aborts with a *BindingError.
func BuildBindings(refs []Reference, channels []string) (map[string]int, error) {
	bindings := make(map[string]int, len(refs))
	for _, ref := range refs {
		if _, done := bindings[ref.Name]; done {
			continue
		}
		idx, ok := matchChannel(ref.Name, channels)
		if !ok {
			return nil, &BindingError{Channel: ref.Name}
		}
		bindings[ref.Name] = idx
	}
	return bindings, nil
}

// matchChannel returns the index of the first channel equal to name under
// case folding.
func matchChannel(name string, channels []string) (int, bool) {
	for i, ch := range channels {
		if strings.EqualFold(ch, name) {
			return i, true
		}
	}
	return 0, false
}
