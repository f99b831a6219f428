package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Catalog is the read-only list of prior engagements. It is loaded once at
// startup and never mutated, so concurrent readers need no locking.
type Catalog struct {
	entries []Engagement
}

type catalogFile struct {
	Engagements []Engagement `yaml:"engagements"`
}

// New builds a catalog from a copy of the provided entries.
func New(entries []Engagement) (*Catalog, error) {
	seen := make(map[int]struct{}, len(entries))
	copied := make([]Engagement, 0, len(entries))
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("duplicate engagement id %d", e.ID)
		}
		seen[e.ID] = struct{}{}
		e.Tags = append([]string(nil), e.Tags...)
		copied = append(copied, e)
	}
	return &Catalog{entries: copied}, nil
}

// Default returns the built-in catalog of five legal engagements.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(file.Engagements)
}

// Load reads a YAML catalog from path. An empty path selects the built-in catalog.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %q: %w", path, err)
	}

	return Parse(data)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// All returns the engagements in insertion order. The slice is a copy.
func (c *Catalog) All() []Engagement {
	if c == nil {
		return nil
	}
	out := make([]Engagement, len(c.entries))
	for i, e := range c.entries {
		e.Tags = append([]string(nil), e.Tags...)
		out[i] = e
	}
	return out
}

// Find returns the engagement with the given id.
func (c *Catalog) Find(id int) (Engagement, bool) {
	if c == nil {
		return Engagement{}, false
	}
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Engagement{}, false
}
