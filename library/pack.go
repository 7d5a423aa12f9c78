package library

// ============================================================================
// FORMULA PACKS — Shareable YAML bundles of templates
// ============================================================================
// Packs carry only what travels well: name, formula, unit, description.
// IDs and timestamps are local history and stay out of the file; importing
// mints fresh ones so a shared pack can never collide with or overwrite
// anything already in the library.
// ============================================================================

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pack is a portable bundle of formula definitions.
type Pack struct {
	Name      string         `yaml:"name,omitempty"`
	Templates []PackTemplate `yaml:"templates"`
}

// PackTemplate is one formula inside a pack.
type PackTemplate struct {
	Name        string `yaml:"name"`
	Formula     string `yaml:"formula"`
	Unit        string `yaml:"unit,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// ExportPack writes every template in the library as a YAML pack.
func (l *Library) ExportPack(w io.Writer, name string) error {
	pack := Pack{Name: name, Templates: make([]PackTemplate, 0, len(l.Templates))}
	for _, t := range l.Templates {
		pack.Templates = append(pack.Templates, PackTemplate{
			Name:        t.Name,
			Formula:     t.Formula,
			Unit:        t.Unit,
			Description: t.Description,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(pack); err != nil {
		_ = enc.Close()
		return fmt.Errorf("encode formula pack: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush formula pack: %w", err)
	}
	return nil
}

// ImportPack merges a YAML pack into the library, minting a fresh ID and
// timestamps for every entry. Entries missing a name or formula are
// skipped. Returns how many templates were added.
func (l *Library) ImportPack(r io.Reader) (int, error) {
	var pack Pack
	if err := yaml.NewDecoder(r).Decode(&pack); err != nil {
		return 0, fmt.Errorf("decode formula pack: %w", err)
	}
	added := 0
	for _, pt := range pack.Templates {
		if strings.TrimSpace(pt.Name) == "" || strings.TrimSpace(pt.Formula) == "" {
			continue
		}
		l.Add(NewTemplate(pt.Name, pt.Formula, pt.Unit, pt.Description))
		added++
	}
	return added, nil
}
