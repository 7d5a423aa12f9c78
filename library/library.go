package library

// ============================================================================
// LIBRARY — Versioned collection of computed-channel templates
// ============================================================================

import "strings"

// CurrentVersion is the on-disk schema version written by Save. Older or
// missing versions load as-is; unknown fields are ignored.
const CurrentVersion = 1

// Library holds every saved template. The zero value is unusable; call
// New or Load.
type Library struct {
	Version   int        `json:"version"`
	Templates []Template `json:"templates"`
}

// New returns an empty library at the current schema version.
func New() *Library {
	return &Library{Version: CurrentVersion, Templates: []Template{}}
}

// Len returns the number of stored templates.
func (l *Library) Len() int {
	return len(l.Templates)
}

// Add appends a template. IDs are the caller's concern; NewTemplate mints
// them.
func (l *Library) Add(t Template) {
	l.Templates = append(l.Templates, t)
}

// Get returns the template with the given ID.
func (l *Library) Get(id string) (Template, bool) {
	for _, t := range l.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Update replaces the stored template matching t.ID. The original ID and
// CreatedAt are preserved and ModifiedAt is bumped. Returns false when no
// template has that ID.
func (l *Library) Update(t Template) bool {
	for i := range l.Templates {
		if l.Templates[i].ID == t.ID {
			t.CreatedAt = l.Templates[i].CreatedAt
			t.ModifiedAt = now().Unix()
			l.Templates[i] = t
			return true
		}
	}
	return false
}

// Remove deletes the template with the given ID and returns a copy of it.
// The bool is false when no template has that ID.
func (l *Library) Remove(id string) (Template, bool) {
	for i := range l.Templates {
		if l.Templates[i].ID == id {
			removed := l.Templates[i]
			l.Templates = append(l.Templates[:i], l.Templates[i+1:]...)
			return removed, true
		}
	}
	return Template{}, false
}

// FindByName returns the first template whose name matches under case
// folding. Names are not unique; this is a convenience for CLI lookups.
func (l *Library) FindByName(name string) (Template, bool) {
	for _, t := range l.Templates {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Template{}, false
}
