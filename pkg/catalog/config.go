package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dtnitsch/section-mapper/models"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultMinConfidence is the acceptance threshold below which sections
	// go to the re-analysis worklist.
	DefaultMinConfidence = 0.5
	// DefaultFallback is the generic archetype used by the position fallback
	// and by the confidence gate.
	DefaultFallback = models.ArchetypeFeatures
)

// Config is the on-disk shape of a catalog configuration file. Every field is
// optional; zero values take the built-in defaults.
type Config struct {
	MinConfidence *float64         `yaml:"min_confidence,omitempty" json:"min_confidence,omitempty"`
	Fallback      models.Archetype `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Archetypes    []Entry          `yaml:"archetypes,omitempty" json:"archetypes,omitempty"`
	Keywords      KeywordTable     `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// Settings is a validated, ready-to-inject configuration.
type Settings struct {
	Catalog       *Catalog
	Keywords      KeywordTable
	MinConfidence float64
	Fallback      models.Archetype
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Catalog:       Default(),
		Keywords:      DefaultKeywords(),
		MinConfidence: DefaultMinConfidence,
		Fallback:      DefaultFallback,
	}
}

// LoadFile reads and validates a YAML configuration file.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog config: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML configuration, fills defaults and validates the result.
// Unknown fields are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (*Settings, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if len(bytes.TrimSpace(data)) == 0 {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to decode catalog config: %w", err)
	}
	return cfg.Resolve()
}

// Resolve applies defaults to unset fields and validates the configuration.
func (cfg Config) Resolve() (*Settings, error) {
	s := Defaults()

	if cfg.Archetypes != nil {
		c, err := New(cfg.Archetypes)
		if err != nil {
			return nil, err
		}
		s.Catalog = c
	}
	if cfg.Keywords != nil {
		s.Keywords = cfg.Keywords
	}
	if cfg.Fallback != "" {
		s.Fallback = cfg.Fallback
	}
	if cfg.MinConfidence != nil {
		s.MinConfidence = *cfg.MinConfidence
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings are internally consistent.
func (s *Settings) Validate() error {
	if s.Catalog == nil || s.Catalog.Len() == 0 {
		return fmt.Errorf("empty catalog: %w", ErrInvalidCatalog)
	}
	if !s.Catalog.Has(s.Fallback) {
		return fmt.Errorf("fallback archetype %q not in catalog: %w", s.Fallback, ErrInvalidCatalog)
	}
	if s.MinConfidence < 0 || s.MinConfidence > 1 {
		return fmt.Errorf("min_confidence %.2f outside [0,1]: %w", s.MinConfidence, ErrInvalidCatalog)
	}
	return s.Keywords.validate(s.Catalog)
}

// Config converts settings back to their file representation.
func (s *Settings) Config() Config {
	minConf := s.MinConfidence
	return Config{
		MinConfidence: &minConf,
		Fallback:      s.Fallback,
		Archetypes:    s.Catalog.Entries(),
		Keywords:      s.Keywords,
	}
}

// MarshalYAML renders the settings as a configuration file.
func (s *Settings) MarshalYAML() (interface{}, error) {
	return s.Config(), nil
}
