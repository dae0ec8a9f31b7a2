// Command hhc encodes and decodes hexahexacontadecimal (base 66) values.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/hhc/internal/config"
	"github.com/arloliu/hhc/internal/logging"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// runtimeEnv carries state shared by all commands of one invocation.
type runtimeEnv struct {
	cfg       *config.Config
	log       *log.Logger
	verbosity int
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "hhc: %v\n", err)
		os.Exit(1)
	}
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	env := &runtimeEnv{
		cfg: config.Default(),
		log: log.New(),
	}

	return &cli.App{
		Name:                      "hhc",
		Usage:                     "Compact URL-safe base 66 encoding of integers and bytes",
		Version:                   Version,
		UseShortOptionHandling:    true,
		DisableSliceFlagSeparator: true,
		Reader:                    in,
		Writer:                    out,
		ErrWriter:                 errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file path",
				EnvVars: []string{"HHC_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Increase log verbosity (repeatable)",
				Count:   &env.verbosity,
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: text or json",
				Value: logging.FormatText,
			},
		},
		Before: func(c *cli.Context) error {
			if err := logging.Setup(env.log, logging.Options{
				Verbosity: env.verbosity,
				Format:    c.String("log-format"),
				Output:    c.App.ErrWriter,
			}); err != nil {
				return err
			}

			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			env.cfg = cfg
			env.log.WithFields(log.Fields{
				"config":  c.String("config"),
				"legacy":  cfg.Encode.Legacy,
				"width":   cfg.Encode.Width,
				"workers": cfg.Batch.Workers,
			}).Debug("Configuration loaded")

			return nil
		},
		Commands: []*cli.Command{
			encodeCommand(env),
			decodeCommand(env),
			quoteCommand(env),
			idCommand(env),
			packCommand(env),
			unpackCommand(env),
			batchCommand(env),
		},
	}
}
