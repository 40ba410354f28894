package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/diffsight/internal/config"
	"github.com/diffsight/internal/diff"
	"github.com/diffsight/pkg/models"
)

// DiffCommand returns the diff command
func DiffCommand() *cli.Command {
	return &cli.Command{
		Name:  "diff",
		Usage: "Compare two files line by line (or word by word)",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "word",
				Aliases: []string{"w"},
				Usage:   "Produce an inline word-level diff instead of a line diff",
			},
			&cli.IntFlag{
				Name:  "context",
				Value: -1,
				Usage: "Unchanged lines kept around each change when collapsing (-1 uses the configured value)",
			},
			&cli.BoolFlag{
				Name:  "no-collapse",
				Usage: "Show every unchanged line instead of folding long runs",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: pretty or json (defaults to the configured value)",
			},
			&cli.BoolFlag{
				Name:  "stats-only",
				Usage: "Print only the change summary",
			},
		},
		ArgsUsage: "OLD_FILE NEW_FILE",
		Action:    runDiff,
	}
}

func runDiff(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected exactly two file arguments, got %d", c.NArg())
	}

	oldPath := c.Args().Get(0)
	newPath := c.Args().Get(1)

	oldData, err := os.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", oldPath, err)
	}
	newData, err := os.ReadFile(newPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", newPath, err)
	}

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	format := cfg.Output.Format
	if override := c.String("output"); override != "" {
		format = override
	}

	if c.Bool("word") {
		return runWordDiff(string(oldData), string(newData), format)
	}

	result := diff.GenerateLineDiff(string(oldData), string(newData))
	log.Debug().
		Str("old", oldPath).
		Str("new", newPath).
		Int("lines", len(result.Lines)).
		Msg("computed line diff")

	changed := result.Stats.Additions > 0 || result.Stats.Deletions > 0

	if c.Bool("stats-only") {
		if err := writeStats(os.Stdout, result.Stats, format); err != nil {
			return err
		}
		return exitCode(changed)
	}

	contextSize := cfg.Diff.Context
	if c.Int("context") >= 0 {
		contextSize = c.Int("context")
	}
	collapse := cfg.Diff.Collapse && !c.Bool("no-collapse")

	var display []models.DisplayItem
	if collapse {
		display = diff.Collapse(result.Lines, contextSize)
	} else {
		display = expandAll(result.Lines)
	}

	switch format {
	case "json":
		out := struct {
			Lines   []models.DiffLine    `json:"lines"`
			Stats   models.DiffStats     `json:"stats"`
			Display []models.DisplayItem `json:"display,omitempty"`
		}{Lines: result.Lines, Stats: result.Stats}
		if collapse {
			out.Display = display
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			return err
		}

	case "pretty":
		renderDisplay(os.Stdout, display)
		fmt.Println(diff.FormatStats(result.Stats))

	default:
		return fmt.Errorf("invalid output format: %s (must be pretty or json)", format)
	}

	return exitCode(changed)
}

func runWordDiff(oldText, newText, format string) error {
	segments := diff.GenerateWordDiff(oldText, newText)

	changed := false
	for _, seg := range segments {
		if seg.Type != models.Unchanged {
			changed = true
			break
		}
	}

	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(segments); err != nil {
			return err
		}

	case "pretty":
		fmt.Println(renderWordSegments(segments))

	default:
		return fmt.Errorf("invalid output format: %s (must be pretty or json)", format)
	}

	return exitCode(changed)
}

// exitCode follows the diff tool convention: exit 1 when the inputs differ.
func exitCode(changed bool) error {
	if changed {
		return cli.Exit("", 1)
	}
	return nil
}

// expandAll converts lines to display items verbatim, with no folding.
func expandAll(lines []models.DiffLine) []models.DisplayItem {
	items := make([]models.DisplayItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.DisplayItem{
			Type:          line.Type,
			Content:       line.Content,
			OldLineNumber: line.OldLineNumber,
			NewLineNumber: line.NewLineNumber,
		})
	}
	return items
}
