// Package classifier assigns an archetype, variant and confidence to each
// page section using an ordered cascade of signals. The first signal that
// matches decides; later signals never override it.
package classifier

import (
	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/catalog"
)

// Classifier is immutable once built and safe for concurrent use.
type Classifier struct {
	catalog  *catalog.Catalog
	signals  []Signal
	fallback models.Archetype
}

// New builds a classifier with the default signal cascade.
func New(s *catalog.Settings) *Classifier {
	return NewWithSignals(s.Catalog, s.Fallback, DefaultSignals(s.Keywords, s.Fallback))
}

// NewWithSignals builds a classifier with a custom cascade. Sections that no
// signal matches get the fallback archetype with zero confidence.
func NewWithSignals(cat *catalog.Catalog, fallback models.Archetype, signals []Signal) *Classifier {
	return &Classifier{
		catalog:  cat,
		signals:  append([]Signal(nil), signals...),
		fallback: fallback,
	}
}

// Fallback returns the generic archetype.
func (c *Classifier) Fallback() models.Archetype {
	return c.fallback
}

// Classify runs the cascade for one section.
func (c *Classifier) Classify(in Input) models.MappedSection {
	for _, sig := range c.signals {
		a, ok := sig.Resolve(in)
		if !ok {
			continue
		}
		return c.mapped(in.Section, a, sig.Confidence, sig.Method)
	}
	return c.mapped(in.Section, c.fallback, 0, models.MethodFallback)
}

func (c *Classifier) mapped(s models.Section, a models.Archetype, conf float64, m models.Method) models.MappedSection {
	return models.MappedSection{
		Section:    s,
		Archetype:  a,
		Variant:    SelectVariant(c.catalog, a, s),
		Confidence: conf,
		Method:     m,
	}
}

// ClassifyAll classifies sections in order, feeding each result into the
// position rules of the next. texts may be nil.
func (c *Classifier) ClassifyAll(sections []models.Section, texts []models.TextEntity) []models.MappedSection {
	out := make([]models.MappedSection, 0, len(sections))
	for i, s := range sections {
		out = append(out, c.Classify(Input{
			Section:  s,
			Position: i,
			Total:    len(sections),
			Prior:    out,
			Texts:    texts,
		}))
	}
	return out
}
