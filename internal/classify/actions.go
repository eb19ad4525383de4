package classify

import (
	"fmt"
	"os"

	"github.com/dtnitsch/section-mapper/internal/common"
	"github.com/dtnitsch/section-mapper/pkg/catalog"
	dbpkg "github.com/dtnitsch/section-mapper/pkg/db"
	"github.com/dtnitsch/section-mapper/pkg/detector"
	"github.com/dtnitsch/section-mapper/pkg/gate"
	"github.com/dtnitsch/section-mapper/pkg/pipeline"
	"github.com/dtnitsch/section-mapper/pkg/snapshot"
	"github.com/dtnitsch/section-mapper/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Output is what classify writes.
type Output struct {
	URL         string                `json:"url,omitempty" yaml:"url,omitempty"`
	PageHeight  float64               `json:"page_height" yaml:"page_height"`
	Metadata    detector.PageMetadata `json:"metadata" yaml:"metadata"`
	gate.Result `yaml:",inline"`
	Assignments pipeline.Assignments `json:"assignments" yaml:"assignments"`
	RunID       int64                `json:"run_id,omitempty" yaml:"run_id,omitempty"`
}

// InputFrom adapts a loaded snapshot to the pipeline.
func InputFrom(s *snapshot.Snapshot) pipeline.Input {
	return pipeline.Input{
		Root:       s.Container(),
		PageHeight: s.PageHeight,
		Styles:     s.Styles,
		Texts:      s.Texts,
		Images:     s.Images,
	}
}

// Classify runs the pipeline and page metadata detection over one snapshot.
func Classify(snap *snapshot.Snapshot, settings *catalog.Settings) (*Output, *pipeline.Result, error) {
	res, err := pipeline.Run(InputFrom(snap), pipeline.Config{Settings: settings})
	if err != nil {
		return nil, nil, err
	}

	meta := detector.Analyze(detector.Page{URL: snap.URL, Title: snap.Title, HTML: snap.HTML}, res.Sections)
	return &Output{
		URL:         snap.URL,
		PageHeight:  snap.PageHeight,
		Metadata:    meta,
		Result:      res.Gated,
		Assignments: res.Assignments,
	}, res, nil
}

// ClassifyAction classifies the sections of a snapshot file and writes the result.
func ClassifyAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	format, err := common.ParseFormat(c.String("format"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	snapshotPath := c.String("snapshot")
	if snapshotPath == "" {
		return cli.Exit("no snapshot provided via --snapshot flag", 2)
	}

	settings, err := common.LoadSettings(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("min-confidence") {
		settings.MinConfidence = c.Float64("min-confidence")
		if err := settings.Validate(); err != nil {
			return cli.Exit(err.Error(), 2)
		}
	}

	s := &storage.Storage{}
	data, err := s.ReadFile(snapshotPath)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	snap, err := snapshot.Parse(snapshotPath, data)
	if err != nil {
		return fmt.Errorf("failed to load snapshot %s: %w", snapshotPath, err)
	}
	logger.Info("Loaded snapshot", "path", snapshotPath, "url", snap.URL, "page_height", snap.PageHeight)

	out, res, err := Classify(snap, settings)
	if err != nil {
		return err
	}
	logger.Info("Segmented page",
		"segments", len(res.Segments),
		"sections", len(res.Sections),
		"deduped", len(res.Deduped))
	logger.Info("Gated sections",
		"high", out.Stats.High,
		"medium", out.Stats.Medium,
		"low", out.Stats.Low,
		"none", out.Stats.None,
		"needs_reanalysis", out.Stats.NeedsReanalysis)

	if c.Bool("save") {
		runID, existing, err := saveRun(c.String("db"), data, snap, settings, out)
		if err != nil {
			return err
		}
		out.RunID = runID
		logger.Info("Saved run", "run_id", runID, "existing", existing)
	}

	var v interface{} = out
	if fields := c.String("fields"); fields != "" {
		v = common.FilterResultFields(out, fields)
	}
	encoded, err := common.Encode(v, format)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if outputPath := c.String("output"); outputPath != "" {
		if err := s.SaveFile(outputPath, encoded); err != nil {
			return err
		}
		logger.Info("Wrote result", "path", outputPath, "bytes", len(encoded))
		return nil
	}
	_, err = os.Stdout.Write(encoded)
	return err
}

// saveRun persists the gated result. The run key hashes the snapshot bytes
// together with the effective settings.
func saveRun(dbPath string, data []byte, snap *snapshot.Snapshot, settings *catalog.Settings, out *Output) (int64, bool, error) {
	database, err := dbpkg.Open(dbPath)
	if err != nil {
		return 0, false, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	cfg, err := yaml.Marshal(settings)
	if err != nil {
		return 0, false, fmt.Errorf("failed to encode settings: %w", err)
	}

	runID, existing, err := database.InsertRun(dbpkg.RunRecord{
		SnapshotHash:  common.ContentHash(data, cfg),
		URL:           snap.URL,
		Title:         out.Metadata.Title,
		Language:      out.Metadata.Language,
		PageHeight:    snap.PageHeight,
		MinConfidence: settings.MinConfidence,
		Fallback:      settings.Fallback,
	}, out.Result)
	if err != nil {
		return 0, false, fmt.Errorf("failed to save run: %w", err)
	}
	return runID, existing, nil
}

// CatalogAction prints the effective catalog configuration as YAML.
func CatalogAction(c *cli.Context) error {
	settings, err := common.LoadSettings(c.String("config"))
	if err != nil {
		return err
	}

	if c.Bool("names") {
		for _, e := range settings.Catalog.Entries() {
			fmt.Printf("%-18s %s\n", e.Name, e.Purpose)
		}
		return nil
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
