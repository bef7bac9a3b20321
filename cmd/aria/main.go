package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jedisct1/go-aria/internal/config"
	"github.com/jedisct1/go-aria/internal/log"
)

var Version = "dev"

const configKey = "config"

func newApp() *cli.App {
	return &cli.App{
		Name:    "aria",
		Usage:   "encrypt and decrypt single 128-bit blocks with ARIA-128",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the configuration `FILE` (default: aria.yaml in ., $HOME/.aria, /etc/aria)",
			},
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   "128-bit key as 32 hex digits `KEY` (or ARIA_KEY)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Block encoding `FORMAT`: hex or base64",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log `LEVEL`: debug, info, warn, error",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			encryptCommand,
			decryptCommand,
			scheduleCommand,
			benchCommand,
		},
	}
}

// setup loads the configuration, applying global flags as overrides, and
// configures logging before any command runs.
func setup(c *cli.Context) error {
	overrides := map[string]any{}
	for flag, key := range map[string]string{
		"key":       "key",
		"format":    "format",
		"log-level": "log_level",
	} {
		if c.IsSet(flag) {
			overrides[key] = c.String(flag)
		}
	}

	cfg, err := config.Load(c.String("config"), overrides)
	if err != nil {
		return err
	}

	log.SetConsole(c.App.ErrWriter)
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.ConfigFile != "" {
		log.Debug().Str("file", cfg.ConfigFile).Msg("using config file")
	}

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]any{}
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

func main() {
	app := newApp()
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "aria: %v\n", err)
		os.Exit(1)
	}
}
