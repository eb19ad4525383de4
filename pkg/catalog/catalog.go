// Package catalog holds the archetype taxonomy and keyword tables used to
// classify page sections. Catalogs are built once and passed by reference;
// nothing in this package keeps global mutable state.
package catalog

import (
	"errors"
	"fmt"

	"github.com/dtnitsch/section-mapper/models"
)

// ErrInvalidCatalog is wrapped by every validation failure.
var ErrInvalidCatalog = errors.New("invalid archetype catalog")

// Entry describes one archetype and the layout variants it allows.
type Entry struct {
	Name     models.Archetype `yaml:"name" json:"name"`
	Variants []string         `yaml:"variants" json:"variants"`
	Purpose  string           `yaml:"purpose" json:"purpose"`
}

// Catalog is an ordered, read-only list of archetype entries.
type Catalog struct {
	entries []Entry
	byName  map[models.Archetype]int
}

// New validates entries and builds a catalog from them.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no archetypes declared: %w", ErrInvalidCatalog)
	}

	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[models.Archetype]int, len(entries)),
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d has no name: %w", i, ErrInvalidCatalog)
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, fmt.Errorf("duplicate archetype %q: %w", e.Name, ErrInvalidCatalog)
		}
		if len(e.Variants) == 0 {
			return nil, fmt.Errorf("archetype %q declares no variants: %w", e.Name, ErrInvalidCatalog)
		}
		c.byName[e.Name] = len(c.entries)
		c.entries = append(c.entries, Entry{
			Name:     e.Name,
			Variants: append([]string(nil), e.Variants...),
			Purpose:  e.Purpose,
		})
	}
	return c, nil
}

// Entries returns a copy of the catalog entries in declared order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = Entry{Name: e.Name, Variants: append([]string(nil), e.Variants...), Purpose: e.Purpose}
	}
	return out
}

// Len returns the number of archetypes.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Has reports whether the archetype is declared.
func (c *Catalog) Has(name models.Archetype) bool {
	_, ok := c.byName[name]
	return ok
}

// Lookup returns the entry for name.
func (c *Catalog) Lookup(name models.Archetype) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// HasVariant reports whether variant is allowed for the archetype.
func (c *Catalog) HasVariant(name models.Archetype, variant string) bool {
	e, ok := c.Lookup(name)
	if !ok {
		return false
	}
	for _, v := range e.Variants {
		if v == variant {
			return true
		}
	}
	return false
}

// FirstVariant returns the first declared variant of name. Unknown archetypes
// fall back to the first variant of the first catalog entry.
func (c *Catalog) FirstVariant(name models.Archetype) string {
	if e, ok := c.Lookup(name); ok {
		return e.Variants[0]
	}
	return c.entries[0].Variants[0]
}
