package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/dtnitsch/section-mapper/internal/common"
	dbpkg "github.com/dtnitsch/section-mapper/pkg/db"
	"github.com/urfave/cli/v2"
)

// RunsAction lists saved runs, newest first
func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-9s %-6s %-6s %-6s %-6s %-8s %-40s\n",
		"ID", "Created", "Sections", "High", "Med", "Low", "None", "Rework", "URL")
	fmt.Println(strings.Repeat("-", 120))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-9d %-6d %-6d %-6d %-6d %-8d %-40s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Stats.Total,
			r.Stats.High,
			r.Stats.Medium,
			r.Stats.Low,
			r.Stats.None,
			r.Stats.NeedsReanalysis,
			r.URL,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'section-mapper db show <id>' to see details\n")

	return nil
}

// ShowAction prints the gated sections of a run
func ShowAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRun(runID)
	if err != nil {
		return err
	}
	sections, err := database.GetRunSections(runID)
	if err != nil {
		return fmt.Errorf("failed to get run sections: %w", err)
	}

	if c.String("format") != "" {
		format, err := common.ParseFormat(c.String("format"))
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		data, err := common.Encode(sections, format)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:        %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("URL:            %s\n", run.URL)
	fmt.Printf("Title:          %s\n", run.Title)
	fmt.Printf("Language:       %s\n", run.Language)
	fmt.Printf("Page height:    %.0f\n", run.PageHeight)
	fmt.Printf("Min confidence: %.2f (fallback %s)\n", run.MinConfidence, run.Fallback)

	fmt.Printf("\nSections (%d):\n", len(sections))
	fmt.Println(strings.Repeat("-", 60))
	for _, s := range sections {
		fmt.Printf("%2d. %-17s %-20s %.2f %-7s %s\n",
			s.Index, s.Archetype, s.Variant, s.Confidence, s.ConfidenceTier, s.Method)
		if s.Label != "" {
			fmt.Printf("    Label: %s\n", s.Label)
		}
		if s.OriginalArchetype != s.Archetype {
			fmt.Printf("    Was: %s/%s\n", s.OriginalArchetype, s.OriginalVariant)
		}
	}

	fmt.Printf("\nTip: Use 'section-mapper db worklist %d' to see sections needing re-analysis\n", runID)

	return nil
}

// WorklistAction prints the re-analysis worklist of a run
func WorklistAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	items, err := database.GetWorklist(runID)
	if err != nil {
		return err
	}

	format, err := common.ParseFormat(c.String("format"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	data, err := common.Encode(items, format)
	if err != nil {
		return err
	}

	if format == common.FormatYAML {
		fmt.Printf("# Run: %d\n", runID)
	}
	_, err = os.Stdout.Write(data)
	return err
}
