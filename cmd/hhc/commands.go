package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/arloliu/hhc"
	"github.com/arloliu/hhc/codec"
	"github.com/arloliu/hhc/id"
	"github.com/arloliu/hhc/internal/config"
	"github.com/arloliu/hhc/payload"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var errMissingArgs = errors.New("missing arguments")

func legacyFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "legacy",
		Aliases: []string{"l"},
		Usage:   "Use the legacy (non-sortable) alphabet",
	}
}

func widthFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"w"},
			Usage:   "Left-pad output to this width (0 disables padding)",
		},
		&cli.BoolFlag{
			Name:  "allow-special",
			Usage: "Allow the outputs \".\" and \"..\"",
		},
	}
}

// withFlags returns a copy of the loaded config with every flag set on c applied.
func (env *runtimeEnv) withFlags(c *cli.Context) config.Config {
	cfg := *env.cfg
	if c.IsSet("legacy") {
		cfg.Encode.Legacy = c.Bool("legacy")
	}
	if c.IsSet("width") {
		cfg.Encode.Width = c.Int("width")
	}
	if c.IsSet("allow-special") {
		allow := c.Bool("allow-special")
		cfg.Encode.AllowSpecial = &allow
	}
	if c.IsSet("compression") {
		cfg.Payload.Compression = c.String("compression")
	}
	if c.IsSet("checksum") {
		cfg.Payload.Checksum = c.Bool("checksum")
	}
	if c.IsSet("workers") {
		cfg.Batch.Workers = c.Int("workers")
	}

	return cfg
}

// encoding builds the codec from the config file, overridden by any flags set on c.
func (env *runtimeEnv) encoding(c *cli.Context) (codec.Encoding, error) {
	cfg := env.withFlags(c)
	enc, err := cfg.Encoding()
	if err != nil {
		return codec.Encoding{}, err
	}

	width := enc.Width()
	if enc.IsSortable() && !enc.AllowSpecial() && width > 0 && width < codec.MinSafeWidth {
		env.log.Warnf("Width %d is below %d, outputs for 1 and 67 will be wider", width, codec.MinSafeWidth)
	}

	return enc, nil
}

func parseInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}

	return n, nil
}

func encodeCommand(env *runtimeEnv) *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Aliases:   []string{"e"},
		Usage:     "Encode decimal integers",
		ArgsUsage: "<int>...",
		Flags: append([]cli.Flag{
			legacyFlag(),
			&cli.BoolFlag{
				Name:    "quote",
				Aliases: []string{"q"},
				Usage:   "Percent-encode the output for use in a URL",
			},
		}, widthFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: expected at least one integer", errMissingArgs)
			}
			enc, err := env.encoding(c)
			if err != nil {
				return err
			}

			for _, arg := range c.Args().Slice() {
				n, err := parseInt(arg)
				if err != nil {
					return err
				}
				s := enc.Encode(n)
				if c.Bool("quote") {
					s = hhc.URLQuote(s, "")
				}
				fmt.Fprintln(c.App.Writer, s)
			}

			return nil
		},
	}
}

func decodeCommand(env *runtimeEnv) *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Aliases:   []string{"d"},
		Usage:     "Decode HHC strings to decimal integers",
		ArgsUsage: "<hhc>...",
		Flags:     []cli.Flag{legacyFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: expected at least one HHC string", errMissingArgs)
			}
			enc, err := env.encoding(c)
			if err != nil {
				return err
			}

			for _, arg := range c.Args().Slice() {
				n, err := enc.Decode(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, n.String())
			}

			return nil
		},
	}
}

func quoteCommand(_ *runtimeEnv) *cli.Command {
	return &cli.Command{
		Name:      "quote",
		Usage:     "Percent-encode strings for use in a URL",
		ArgsUsage: "<string>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "safe",
				Usage: "Extra characters to leave unescaped",
			},
		},
		Action: func(c *cli.Context) error {
			for _, arg := range c.Args().Slice() {
				fmt.Fprintln(c.App.Writer, hhc.URLQuote(arg, c.String("safe")))
			}

			return nil
		},
	}
}

func idCommand(env *runtimeEnv) *cli.Command {
	return &cli.Command{
		Name:  "id",
		Usage: "Generate or inspect sortable identifiers",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "key",
				Usage: "Print the key ID of this string instead of a new ID (repeatable)",
			},
			&cli.StringFlag{
				Name:  "parse",
				Usage: "Print the ULID and creation time of this ID",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of IDs to generate",
				Value:   1,
			},
		},
		Action: func(c *cli.Context) error {
			w := c.App.Writer
			switch {
			case c.IsSet("parse"):
				u, err := id.Parse(c.String("parse"))
				if err != nil {
					return err
				}
				created, err := id.Time(c.String("parse"))
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s %s\n", u, created.UTC().Format(time.RFC3339Nano))
			case c.IsSet("key"):
				keys := c.StringSlice("key")
				ids, collided, err := id.FromKeys(keys)
				if err != nil {
					return err
				}
				if collided {
					env.log.Warn("Two keys share a key ID")
				}
				for i, k := range ids {
					if len(keys) == 1 {
						fmt.Fprintln(w, k)
					} else {
						fmt.Fprintf(w, "%s %s\n", k, keys[i])
					}
				}
			default:
				count := c.Int("count")
				if count < 1 {
					return fmt.Errorf("count must be positive, got %d", count)
				}
				for i := 0; i < count; i++ {
					fmt.Fprintln(w, id.New())
				}
				env.log.Debugf("Generated %d IDs", count)
			}

			return nil
		},
	}
}

func packCommand(env *runtimeEnv) *cli.Command {
	return &cli.Command{
		Name:  "pack",
		Usage: "Encode stdin bytes as a single HHC token",
		Flags: []cli.Flag{
			legacyFlag(),
			&cli.StringFlag{
				Name:  "compression",
				Usage: "Body compression: none, zstd, s2 or lz4",
			},
			&cli.BoolFlag{
				Name:  "checksum",
				Usage: "Append a checksum to the token",
			},
		},
		Action: func(c *cli.Context) error {
			data, err := io.ReadAll(c.App.Reader)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			cfg := env.withFlags(c)
			opts, err := cfg.PayloadOptions()
			if err != nil {
				return err
			}

			token, stats, err := payload.EncodeWithStats(data, opts...)
			if err != nil {
				return err
			}

			env.log.WithFields(log.Fields{
				"algorithm":  stats.Algorithm,
				"original":   stats.OriginalSize,
				"compressed": stats.CompressedSize,
				"savings":    fmt.Sprintf("%.1f%%", stats.SpaceSavings()),
				"token":      len(token),
			}).Info("Packed payload")
			fmt.Fprintln(c.App.Writer, token)

			return nil
		},
	}
}

func unpackCommand(env *runtimeEnv) *cli.Command {
	return &cli.Command{
		Name:      "unpack",
		Usage:     "Decode an HHC token produced by pack and write the bytes to stdout",
		ArgsUsage: "[token]",
		Flags:     []cli.Flag{legacyFlag()},
		Action: func(c *cli.Context) error {
			token := c.Args().First()
			if token == "" {
				line, err := bufio.NewReader(c.App.Reader).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("read input: %w", err)
				}
				token = strings.TrimSpace(line)
			}
			if token == "" {
				return fmt.Errorf("%w: expected a token", errMissingArgs)
			}

			cfg := env.withFlags(c)
			data, err := payload.Decode(token, payload.WithVariant(cfg.Variant()))
			if err != nil {
				return err
			}
			env.log.Debugf("Unpacked %d bytes", len(data))

			_, err = c.App.Writer.Write(data)

			return err
		},
	}
}
