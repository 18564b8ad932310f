// Package category assigns estimating files to trade categories by matching
// keywords against the filename.
package category

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Unknown is the sentinel category for files no rule matches.
const Unknown = "Unknown"

// Rule maps a category name to the keywords that select it.
type Rule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Rules is an ordered rule list. Order matters: the first matching rule wins,
// so rules must never be stored in a map.
type Rules []Rule

// rulesFile is the on-disk shape of categories.yaml.
type rulesFile struct {
	Categories []Rule `yaml:"categories"`
}

// Load reads category rules from a categories.yaml file.
func Load(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing categories file %s: %w", path, err)
	}

	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("categories file %s defines no categories", path)
	}
	for i, r := range f.Categories {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("categories file %s: category %d has no name", path, i+1)
		}
	}
	return f.Categories, nil
}

// Save writes rules to a categories.yaml file.
func Save(path string, rules Rules) error {
	data, err := yaml.Marshal(rulesFile{Categories: rules})
	if err != nil {
		return fmt.Errorf("marshaling categories: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing categories file: %w", err)
	}
	return nil
}

// Detect returns the first category whose keyword appears in the filename
// stem, comparing case-insensitively, or Unknown when nothing matches.
func Detect(stem string, rules Rules) string {
	name := strings.ToLower(stem)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(name, strings.ToLower(kw)) {
				return r.Name
			}
		}
	}
	return Unknown
}

// Default returns a starter rule set for common construction trades.
func Default() Rules {
	return Rules{
		{Name: "Electrical", Keywords: []string{"electrical", "elec"}},
		{Name: "Plumbing", Keywords: []string{"plumbing", "plumb"}},
		{Name: "HVAC", Keywords: []string{"hvac", "mechanical"}},
		{Name: "Concrete", Keywords: []string{"concrete", "foundation"}},
		{Name: "Framing", Keywords: []string{"framing", "lumber"}},
	}
}
