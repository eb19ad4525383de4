package catalog

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/section-mapper/models"
)

// KeywordRule maps a set of lowercase keywords to an archetype.
type KeywordRule struct {
	Archetype models.Archetype `yaml:"archetype" json:"archetype"`
	Keywords  []string         `yaml:"keywords" json:"keywords"`
}

// KeywordTable is an ordered list of rules; earlier rules win.
type KeywordTable []KeywordRule

// Match returns the archetype of the first rule with a keyword contained in
// text, compared case-insensitively.
func (t KeywordTable) Match(text string) (models.Archetype, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return "", false
	}
	for _, rule := range t {
		for _, kw := range rule.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(text, strings.ToLower(kw)) {
				return rule.Archetype, true
			}
		}
	}
	return "", false
}

// validate checks every rule references a catalog archetype.
func (t KeywordTable) validate(c *Catalog) error {
	for i, rule := range t {
		if !c.Has(rule.Archetype) {
			return fmt.Errorf("keyword rule %d references unknown archetype %q: %w", i, rule.Archetype, ErrInvalidCatalog)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("keyword rule %d for %q has no keywords: %w", i, rule.Archetype, ErrInvalidCatalog)
		}
	}
	return nil
}
