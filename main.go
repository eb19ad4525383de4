package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/section-mapper/internal/classify"
	"github.com/dtnitsch/section-mapper/internal/db"
	"github.com/dtnitsch/section-mapper/pkg/catalog"
	"github.com/dtnitsch/section-mapper/pkg/help"
	"github.com/urfave/cli/v2"
)

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "db",
		Usage: "SQLite database path (default: section-mapper.db next to the binary)",
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Catalog configuration YAML (archetypes, keywords, min_confidence, fallback)",
	}
}

func main() {
	app := &cli.App{
		Name:  "section-mapper",
		Usage: "Segment a rendered page snapshot into sections and classify each into a layout archetype",
		Commands: []*cli.Command{
			{
				Name:   "classify",
				Usage:  "Classify the sections of a page snapshot",
				Action: classify.ClassifyAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "snapshot",
						Aliases:  []string{"s"},
						Usage:    "Snapshot file (.json render tree or .html with geometry attributes)",
						Required: true,
					},
					configFlag(),
					&cli.Float64Flag{
						Name:  "min-confidence",
						Usage: fmt.Sprintf("Sections below this confidence go to the re-analysis worklist (default %.1f)", catalog.DefaultMinConfidence),
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.StringFlag{
						Name:  "fields",
						Usage: "Comma-separated top-level fields to output (e.g. sections,stats)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the result to a file instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "Persist the run to the database",
					},
					dbFlag(),
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Only log errors",
					},
				},
			},
			{
				Name:   "catalog",
				Usage:  "Print the effective archetype catalog",
				Action: classify.CatalogAction,
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "names",
						Usage: "Print archetype names and purposes only",
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a YAML quick start",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:  "db",
				Usage: "Inspect saved classification runs",
				Subcommands: []*cli.Command{
					{
						Name:   "runs",
						Usage:  "List recent runs",
						Action: db.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "Maximum runs to list (0 for all)",
							},
							dbFlag(),
						},
					},
					{
						Name:      "show",
						Usage:     "Show the gated sections of a run (latest if no ID)",
						ArgsUsage: "[run-id]",
						Action:    db.ShowAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "format",
								Usage: "Print sections as json or yaml instead of a summary",
							},
							dbFlag(),
						},
					},
					{
						Name:      "worklist",
						Usage:     "Print the re-analysis worklist of a run (latest if no ID)",
						ArgsUsage: "[run-id]",
						Action:    db.WorklistAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "format",
								Value: "yaml",
								Usage: "Output format: json or yaml",
							},
							dbFlag(),
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
