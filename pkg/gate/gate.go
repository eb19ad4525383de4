// Package gate buckets classified sections into confidence tiers, relabels
// the lowest tier to a generic fallback and builds the re-analysis worklist.
package gate

import (
	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/catalog"
)

// Tier lower bounds.
const (
	HighThreshold   = 0.70
	MediumThreshold = 0.50
	LowThreshold    = 0.30
)

// Notes attached per tier.
const (
	NoteHigh     = "HIGH: follow the archetype template closely"
	NoteMedium   = "MEDIUM: content signals take precedence over the archetype template"
	NoteLow      = "LOW: archetype is uncertain, verify against section content"
	NoteFallback = "FALLBACK: confidence too low, defaulted"
)

// Options configures the gate. Unset fields take the catalog defaults.
type Options struct {
	// MinConfidence is the acceptance threshold for the worklist. It is
	// independent of the tier bounds. Nil means catalog.DefaultMinConfidence.
	MinConfidence *float64
	// Fallback and FallbackVariant replace the classification of NONE-tier sections.
	Fallback        models.Archetype
	FallbackVariant string
}

func (o *Options) defaults() {
	if o.MinConfidence == nil {
		v := catalog.DefaultMinConfidence
		o.MinConfidence = &v
	}
	if o.Fallback == "" {
		o.Fallback = catalog.DefaultFallback
	}
	if o.FallbackVariant == "" {
		o.FallbackVariant = catalog.Default().FirstVariant(o.Fallback)
	}
}

// OptionsFrom derives gate options from catalog settings.
func OptionsFrom(s *catalog.Settings) Options {
	minConf := s.MinConfidence
	return Options{
		MinConfidence:   &minConf,
		Fallback:        s.Fallback,
		FallbackVariant: s.Catalog.FirstVariant(s.Fallback),
	}
}

// Result is the gate output handed to downstream builders.
type Result struct {
	Sections        []models.GatedSection   `json:"sections" yaml:"sections"`
	Stats           models.GateStats        `json:"stats" yaml:"stats"`
	NeedsReanalysis []models.ReanalysisItem `json:"needs_reanalysis" yaml:"needs_reanalysis"`
}

// TierFor buckets a confidence score.
func TierFor(confidence float64) models.Tier {
	switch {
	case confidence >= HighThreshold:
		return models.TierHigh
	case confidence >= MediumThreshold:
		return models.TierMedium
	case confidence >= LowThreshold:
		return models.TierLow
	default:
		return models.TierNone
	}
}

// Apply gates every section in order. The input slice is not modified.
func Apply(mapped []models.MappedSection, opts Options) Result {
	opts.defaults()
	res := Result{
		Sections:        make([]models.GatedSection, 0, len(mapped)),
		NeedsReanalysis: []models.ReanalysisItem{},
	}

	for _, m := range mapped {
		g := gateOne(m, opts)
		res.Sections = append(res.Sections, g)
		res.Stats.Add(g.ConfidenceTier)

		if m.Confidence < *opts.MinConfidence {
			res.NeedsReanalysis = append(res.NeedsReanalysis, models.ReanalysisItem{
				Index:            g.Index,
				CurrentArchetype: g.Archetype,
				CurrentVariant:   g.Variant,
				Confidence:       g.Confidence,
				Method:           g.Method,
				Label:            g.Label,
				Rect:             g.Rect,
				Tier:             g.ConfidenceTier,
			})
		}
	}

	res.Stats.Total = len(res.Sections)
	res.Stats.NeedsReanalysis = len(res.NeedsReanalysis)
	return res
}

func gateOne(m models.MappedSection, opts Options) models.GatedSection {
	g := models.GatedSection{
		MappedSection:     m,
		ConfidenceTier:    TierFor(m.Confidence),
		OriginalArchetype: m.Archetype,
		OriginalVariant:   m.Variant,
	}

	switch g.ConfidenceTier {
	case models.TierNone:
		g.Archetype = opts.Fallback
		g.Variant = opts.FallbackVariant
		g.ConfidenceNote = NoteFallback
	case models.TierLow:
		g.ConfidenceNote = NoteLow
	case models.TierMedium:
		g.ConfidenceNote = NoteMedium
	case models.TierHigh:
		g.ConfidenceNote = NoteHigh
	}
	return g
}
