// Package schema holds the static catalog describing every UI component
// type the client can render: its category, its property set and whether
// it accepts children. The catalog is pure data, initialized once, and is
// consumed by the builder frontend for autocomplete and by the validate
// command for advisory linting. It is never mutated after startup.
package schema

import "fmt"

// PropSpec describes a single component property.
type PropSpec struct {
	Type     string   `json:"type"`
	Required bool     `json:"required,omitempty"`
	Default  any      `json:"default,omitempty"`
	Values   []string `json:"values,omitempty"`
	Items    any      `json:"items,omitempty"`
}

// ComponentSpec describes one component type.
type ComponentSpec struct {
	Type        string              `json:"type"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
	HasChildren bool                `json:"hasChildren,omitempty"`
	Props       map[string]PropSpec `json:"props"`
}

// Catalog groups component specs by category.
type Catalog struct {
	Templates []ComponentSpec `json:"templates"`
	Atoms     []ComponentSpec `json:"atoms"`
	Molecules []ComponentSpec `json:"molecules"`
	Layouts   []ComponentSpec `json:"layouts"`
}

// All returns every spec in the catalog, category order preserved.
func (c Catalog) All() []ComponentSpec {
	out := make([]ComponentSpec, 0, len(c.Templates)+len(c.Atoms)+len(c.Molecules)+len(c.Layouts))
	out = append(out, c.Templates...)
	out = append(out, c.Atoms...)
	out = append(out, c.Molecules...)
	out = append(out, c.Layouts...)
	return out
}

// Lookup returns the spec for a component type, if known.
func (c Catalog) Lookup(componentType string) (ComponentSpec, bool) {
	for _, spec := range c.All() {
		if spec.Type == componentType {
			return spec, true
		}
	}
	return ComponentSpec{}, false
}

// Validate checks the catalog invariant: type keys are unique across
// every category.
func (c Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, spec := range c.All() {
		if spec.Type == "" {
			return fmt.Errorf("component spec with empty type (label %q)", spec.Label)
		}
		if seen[spec.Type] {
			return fmt.Errorf("duplicate component type %q", spec.Type)
		}
		seen[spec.Type] = true
	}
	return nil
}

// Default returns the process-wide catalog. The returned value shares the
// underlying slices; callers must treat it as read-only.
func Default() Catalog {
	return defaultCatalog
}
