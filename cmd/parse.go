package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/diffsight/internal/config"
	"github.com/diffsight/internal/diff"
	"github.com/diffsight/pkg/models"
)

// ParseCommand returns the parse command
func ParseCommand() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Parse a unified diff from a file or stdin",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: pretty or json (defaults to the configured value)",
			},
			&cli.BoolFlag{
				Name:  "paths",
				Usage: "Print only the file paths from the diff header",
			},
		},
		ArgsUsage: "[FILE]",
		Action:    runParse,
	}
}

func runParse(c *cli.Context) error {
	var data []byte
	var err error
	if c.NArg() > 0 {
		data, err = os.ReadFile(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", c.Args().Get(0), err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	text := string(data)

	if c.Bool("paths") {
		paths := diff.ExtractFilePaths(text)
		if paths.OldPath == nil || paths.NewPath == nil {
			return fmt.Errorf("no file paths found in diff header")
		}
		fmt.Printf("old: %s\nnew: %s\n", *paths.OldPath, *paths.NewPath)
		return nil
	}

	if !diff.IsUnifiedDiff(text) {
		return fmt.Errorf("input is not a unified diff")
	}

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	format := cfg.Output.Format
	if override := c.String("output"); override != "" {
		format = override
	}

	hunks := diff.ParseUnifiedDiff(text)

	var all []models.DiffLine
	for _, hunk := range hunks {
		all = append(all, hunk.Lines...)
	}
	stats := diff.CalculateStats(all)

	switch format {
	case "json":
		out := struct {
			Paths models.FilePaths  `json:"paths"`
			Hunks []models.DiffHunk `json:"hunks"`
			Stats models.DiffStats  `json:"stats"`
		}{Paths: diff.ExtractFilePaths(text), Hunks: hunks, Stats: stats}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)

	case "pretty":
		paths := diff.ExtractFilePaths(text)
		if paths.OldPath != nil && paths.NewPath != nil {
			fmt.Printf("--- %s\n+++ %s\n", *paths.OldPath, *paths.NewPath)
		}
		for _, hunk := range hunks {
			renderHunk(os.Stdout, hunk)
		}
		fmt.Printf("%d hunk%s, %s\n", len(hunks), plural(len(hunks)), diff.FormatStats(stats))
		return nil

	default:
		return fmt.Errorf("invalid output format: %s (must be pretty or json)", format)
	}
}
