package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/diffsight/internal/api"
	"github.com/diffsight/internal/config"
)

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the diff HTTP API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Override the configured listen port",
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if port := c.Int("port"); port != 0 {
		cfg.Server.Port = port
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.Info().
		Int("port", cfg.Server.Port).
		Int("context", cfg.Diff.Context).
		Bool("collapse", cfg.Diff.Collapse).
		Msg("starting diff API server")

	return api.NewServer(cfg).Start()
}
