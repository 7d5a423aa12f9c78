package library

// ============================================================================
// TEMPLATE — A saved computed-channel definition
// ============================================================================
// A template is formula-first and file-agnostic: it names channels, never
// column indices, so one template applies to any log that carries the
// channels it references.
// ============================================================================

import (
	"time"

	"github.com/google/uuid"
)

// Template is one saved computed-channel definition. Timestamps are Unix
// seconds. Names are display labels and need not be unique; ID is the
// stable handle.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Formula     string `json:"formula"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
	ModifiedAt  int64  `json:"modified_at"`
}

// now is swappable so tests can pin timestamps.
var now = time.Now

// NewTemplate mints a template with a fresh ID and current timestamps.
func NewTemplate(name, formula, unit, description string) Template {
	ts := now().Unix()
	return Template{
		ID:          uuid.New().String(),
		Name:        name,
		Formula:     formula,
		Unit:        unit,
		Description: description,
		CreatedAt:   ts,
		ModifiedAt:  ts,
	}
}
