package models

// Tier is a coarse confidence bucket.
type Tier string

const (
	TierHigh   Tier = "HIGH"
	TierMedium Tier = "MEDIUM"
	TierLow    Tier = "LOW"
	TierNone   Tier = "NONE"
)

// GatedSection is a MappedSection after the confidence gate ran.
// For TierNone, Archetype/Variant hold the fallback and the Original* fields
// keep what the classifier produced.
type GatedSection struct {
	MappedSection     `yaml:",inline"`
	ConfidenceTier    Tier      `json:"confidence_tier" yaml:"confidence_tier"`
	ConfidenceNote    string    `json:"confidence_note,omitempty" yaml:"confidence_note,omitempty"`
	OriginalArchetype Archetype `json:"original_archetype" yaml:"original_archetype"`
	OriginalVariant   string    `json:"original_variant" yaml:"original_variant"`
}

// ReanalysisItem is a worklist entry for a section below the acceptance threshold.
type ReanalysisItem struct {
	Index            int       `json:"index" yaml:"index"`
	CurrentArchetype Archetype `json:"current_archetype" yaml:"current_archetype"`
	CurrentVariant   string    `json:"current_variant" yaml:"current_variant"`
	Confidence       float64   `json:"confidence" yaml:"confidence"`
	Method           Method    `json:"method" yaml:"method"`
	Label            string    `json:"label" yaml:"label"`
	Rect             Rect      `json:"rect" yaml:"rect"`
	Tier             Tier      `json:"tier" yaml:"tier"`
}

// GateStats tallies tiers across a gated run.
type GateStats struct {
	Total           int `json:"total" yaml:"total"`
	High            int `json:"high" yaml:"high"`
	Medium          int `json:"medium" yaml:"medium"`
	Low             int `json:"low" yaml:"low"`
	None            int `json:"none" yaml:"none"`
	NeedsReanalysis int `json:"needs_reanalysis" yaml:"needs_reanalysis"`
}

// Add counts one section in tier t. Total is not touched.
func (s *GateStats) Add(t Tier) {
	switch t {
	case TierHigh:
		s.High++
	case TierMedium:
		s.Medium++
	case TierLow:
		s.Low++
	case TierNone:
		s.None++
	}
}
