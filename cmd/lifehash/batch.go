package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"lifehash/internal/render"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func runBatch(stdout, stderr io.Writer, args []string) error {
	var o options
	var outDir string
	var keepGoing bool
	fs := pflag.NewFlagSet("batch", pflag.ContinueOnError)
	o.addFlags(fs)
	fs.StringVarP(&outDir, "out-dir", "o", "", "directory for generated images (required)")
	fs.BoolVarP(&keepGoing, "keep-going", "k", false, "log failed lines and continue")
	rest, err := o.parse(fs, args, stderr)
	if errors.Is(err, errHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if outDir == "" {
		return fmt.Errorf("--out-dir is required")
	}
	if len(rest) > 1 {
		return fmt.Errorf("usage: lifehash batch [flags] [FILE]")
	}

	var in io.Reader = os.Stdin
	if len(rest) == 1 && rest[0] != "-" {
		f, err := os.Open(rest[0])
		if err != nil {
			return fmt.Errorf("opening input list: %w", err)
		}
		defer f.Close()
		in = f
	}
	lines, err := readLines(in)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	c, err := o.newCache()
	if err != nil {
		return err
	}
	workers := o.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var written, failed atomic.Int64
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for _, line := range lines {
		g.Go(func() error {
			path, err := func() (string, error) {
				fp, err := o.resolve(line)
				if err != nil {
					return "", err
				}
				img, err := c.Get(ctx, fp.Digest, o.ver)
				if err != nil {
					return "", err
				}
				name := fp.Identifier(16) + "-" + o.ver.String() + o.imgFmt.Extension()
				path := filepath.Join(outDir, name)
				return path, render.WriteFile(path, render.Fingerprint(img, o.cfg.ModuleSize), o.imgFmt)
			}()
			if err != nil {
				failed.Add(1)
				if keepGoing {
					o.logger.Warn("skipping input", "input", line, "error", err)
					return nil
				}
				return fmt.Errorf("input %q: %w", line, err)
			}
			written.Add(1)
			o.logger.Debug("wrote fingerprint", "input", line, "path", path)
			return nil
		})
	}
	err = g.Wait()

	stats := c.Stats()
	o.logger.Info("batch complete",
		"inputs", len(lines),
		"written", written.Load(),
		"failed", failed.Load(),
		"workers", workers,
		"cache_hits", stats.Hits,
		"store_hits", stats.StoreHits,
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d written, %d failed\n", written.Load(), failed.Load())
	return nil
}

// readLines returns the non-blank lines of r, trimmed. Lines starting with
// '#' are comments.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input list: %w", err)
	}
	return lines, nil
}
