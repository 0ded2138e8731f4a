// lifehash-sweep measures how fingerprints react to single-bit changes in
// the input digest. For each random sample it flips one bit and reports
// the fraction of output pixels that changed, along with the spread of
// gradients, patterns and generation counts.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"lifehash/internal/config"
	"lifehash/internal/digest"
	"lifehash/internal/fingerprint"
	"lifehash/internal/sweep"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("lifehash-sweep", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file (default $"+config.EnvVar+")")
	samples := fs.IntP("samples", "n", 200, "random digests per version")
	workers := fs.IntP("workers", "j", 0, "worker goroutines (0 = config, then one per CPU)")
	seed := fs.Int64("seed", 1, "sample generator seed")
	versionList := fs.StringSlice("versions", nil, "versions to sweep (default all)")
	verbose := fs.Bool("verbose", false, "print gradient and pattern histograms")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if *samples <= 0 {
		return fmt.Errorf("--samples must be positive, got %d", *samples)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if !fs.Changed("workers") {
		*workers = cfg.Workers
	}

	versions := fingerprint.Versions()
	if len(*versionList) > 0 {
		versions = versions[:0:0]
		for _, name := range *versionList {
			v, err := fingerprint.ParseVersion(name)
			if err != nil {
				return err
			}
			versions = append(versions, v)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("sweeping", "versions", len(versions), "samples", *samples, "workers", *workers, "seed", *seed)
	start := time.Now()
	results, err := sweep.Run(ctx, versions, sweep.Samples(*seed, *samples, digest.Size), *workers)
	if err != nil {
		return err
	}
	logger.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSAMPLES\tMEAN DIFF\tMIN\tMAX\tMEAN GENS\tCYCLED")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.3f\t%.1f\t%d\n",
			r.Version, r.Samples, r.MeanDiff, r.MinDiff, r.MaxDiff, r.MeanGenerations, r.Cycled)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if *verbose {
		for _, r := range results {
			fmt.Fprintf(stdout, "\n%s\n  strategies: %s\n  patterns:   %s\n",
				r.Version, strings.Join(sweep.Counts(r.Strategies), " "), strings.Join(sweep.Counts(r.Patterns), " "))
		}
	}
	return nil
}
