package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/diffsight/internal/config"
)

// ConfigCommand returns the config command
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage diffsight configuration",
		Subcommands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Write a sample configuration file",
				ArgsUsage: "[PATH]",
				Action:    runConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: runConfigShow,
			},
		},
	}
}

func runConfigInit(c *cli.Context) error {
	path := "diffsight.toml"
	if c.NArg() > 0 {
		path = c.Args().Get(0)
	}

	if err := config.InitConfig(path); err != nil {
		return err
	}

	fmt.Printf("Wrote sample configuration to %s\n", path)
	return nil
}

func runConfigShow(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
