// Package catalog holds the static intent registry the pipeline routes against.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"intent-router/internal/model"
)

//go:embed intents.yaml
var defaultCatalogYAML []byte

type document struct {
	Intents []model.Intent `yaml:"intents"`
}

// Catalog is an immutable, ordered set of intents.
type Catalog struct {
	intents []model.Intent
	byName  map[string]int
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Load reads a catalog file. An empty path returns Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML catalog document.
func Parse(raw []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Intents)
}

// New validates intents and builds a Catalog that preserves their order.
func New(intents []model.Intent) (*Catalog, error) {
	if len(intents) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		intents: make([]model.Intent, 0, len(intents)),
		byName:  make(map[string]int, len(intents)),
	}
	ids := make(map[string]struct{}, len(intents))

	for i, in := range intents {
		if in.ID == "" || in.Name == "" || in.Agent == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrMissingField, i)
		}
		if len(in.TrainingPhrases) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoTrainingPhrases, in.Name)
		}
		if _, dup := ids[in.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, in.ID)
		}
		if _, dup := c.byName[in.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, in.Name)
		}
		ids[in.ID] = struct{}{}
		c.byName[in.Name] = len(c.intents)

		in.TrainingPhrases = append([]string(nil), in.TrainingPhrases...)
		in.Keywords = append([]string(nil), in.Keywords...)
		c.intents = append(c.intents, in)
	}

	return c, nil
}

// All returns the intents in catalog order.
func (c *Catalog) All() []model.Intent {
	out := make([]model.Intent, len(c.intents))
	copy(out, c.intents)
	return out
}

func (c *Catalog) Len() int { return len(c.intents) }

// PhraseCount is the number of training phrases across all intents.
func (c *Catalog) PhraseCount() int {
	n := 0
	for _, in := range c.intents {
		n += len(in.TrainingPhrases)
	}
	return n
}

func (c *Catalog) ByName(name string) (model.Intent, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.Intent{}, false
	}
	return c.intents[i], true
}

// Categories lists category names in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, in := range c.intents {
		if _, ok := seen[in.Category]; ok {
			continue
		}
		seen[in.Category] = struct{}{}
		out = append(out, in.Category)
	}
	return out
}

// ByCategory groups intents by category, keeping catalog order inside each group.
func (c *Catalog) ByCategory() map[string][]model.Intent {
	out := make(map[string][]model.Intent)
	for _, in := range c.intents {
		out[in.Category] = append(out[in.Category], in)
	}
	return out
}
