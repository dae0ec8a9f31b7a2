package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/arloliu/hhc/codec"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func batchCommand(env *runtimeEnv) *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Encode (or decode) one value per stdin line concurrently",
		Flags: append([]cli.Flag{
			legacyFlag(),
			&cli.BoolFlag{
				Name:  "decode",
				Usage: "Decode HHC lines instead of encoding integers",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Maximum number of lines processed at once",
			},
		}, widthFlags()...),
		Action: func(c *cli.Context) error {
			enc, err := env.encoding(c)
			if err != nil {
				return err
			}

			workers := env.withFlags(c).Batch.Workers
			if workers < 1 {
				return fmt.Errorf("workers must be positive, got %d", workers)
			}

			var lines []string
			scanner := bufio.NewScanner(c.App.Reader)
			scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					lines = append(lines, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			results, err := runBatch(c, enc, lines, c.Bool("decode"), workers)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(c.App.Writer)
			for _, r := range results {
				fmt.Fprintln(w, r)
			}
			env.log.WithFields(log.Fields{
				"lines":   len(lines),
				"workers": workers,
				"decode":  c.Bool("decode"),
			}).Info("Batch completed")

			return w.Flush()
		},
	}
}

// runBatch converts every line with at most workers goroutines. results[i]
// always corresponds to lines[i]; the first failure cancels the rest.
func runBatch(c *cli.Context, enc codec.Encoding, lines []string, decode bool, workers int) ([]string, error) {
	results := make([]string, len(lines))

	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(workers)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if decode {
				n, err := enc.Decode(line)
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				results[i] = n.String()

				return nil
			}

			n, err := parseInt(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = enc.Encode(n)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
