// Package pipeline wires segmentation, filtering, assignment, classification,
// dedup and gating into one pure pass over a materialized page snapshot.
// Run performs no I/O and shares no state between calls.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/dtnitsch/section-mapper/models"
	"github.com/dtnitsch/section-mapper/pkg/assigner"
	"github.com/dtnitsch/section-mapper/pkg/catalog"
	"github.com/dtnitsch/section-mapper/pkg/classifier"
	"github.com/dtnitsch/section-mapper/pkg/gate"
	"github.com/dtnitsch/section-mapper/pkg/segmenter"
)

// ErrNoSettings is returned when Run is called without catalog settings.
var ErrNoSettings = errors.New("pipeline: catalog settings required")

// Input is a materialized snapshot as seen by the core.
type Input struct {
	Root       segmenter.Container
	PageHeight float64
	Styles     []models.StyleSample
	Texts      []models.TextEntity
	Images     []models.ImageEntity
}

// Config holds the injected catalog settings and segmentation thresholds.
type Config struct {
	Settings  *catalog.Settings
	Segmenter segmenter.Options
}

// Assignments are the page-level entities attributed to sections.
type Assignments struct {
	Styles assigner.Groups[models.StyleSample] `json:"styles" yaml:"styles"`
	Texts  assigner.Groups[models.TextEntity]  `json:"texts" yaml:"texts"`
	Images assigner.Groups[models.ImageEntity] `json:"images" yaml:"images"`
}

// Result carries every stage's output.
type Result struct {
	// Segments is the raw segmenter output, before the wrapper post-filter.
	Segments []models.Section `json:"-" yaml:"-"`
	// Sections is the filtered section list that classification and
	// assignment both consume.
	Sections []models.Section `json:"-" yaml:"-"`
	// Mapped is the classifier output before dedup.
	Mapped []models.MappedSection `json:"-" yaml:"-"`
	// Deduped is Mapped after adjacent-duplicate collapse.
	Deduped []models.MappedSection `json:"-" yaml:"-"`

	Gated       gate.Result `json:"gated" yaml:"gated"`
	Assignments Assignments `json:"assignments" yaml:"assignments"`
}

// Run executes the full pipeline. The only error is missing or invalid
// configuration; any snapshot, however sparse, produces a result.
func Run(in Input, cfg Config) (*Result, error) {
	if cfg.Settings == nil {
		return nil, ErrNoSettings
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	res := &Result{}
	res.Segments = segmenter.SegmentWithOptions(in.Root, in.PageHeight, cfg.Segmenter)
	res.Sections = segmenter.FilterWrappers(res.Segments, in.PageHeight)

	a := assigner.New(res.Sections)
	res.Assignments = Assignments{
		Styles: assigner.AssignStyles(a, in.Styles),
		Texts:  assigner.AssignTexts(a, in.Texts),
		Images: assigner.AssignImages(a, in.Images),
	}

	c := classifier.New(cfg.Settings)
	res.Mapped = c.ClassifyAll(res.Sections, in.Texts)
	res.Deduped = classifier.Dedup(res.Mapped, c.Fallback())
	res.Gated = gate.Apply(res.Deduped, gate.OptionsFrom(cfg.Settings))

	return res, nil
}
