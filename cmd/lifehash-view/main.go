// lifehash-view opens a window showing a fingerprint next to a replay of
// the Life run behind it.
//
// Keys: Space pauses, N steps one generation, Enter restarts playback,
// V cycles versions, R picks a random digest, 1 and 2 toggle the live-cell
// and density overlays, Q or Esc quits.
//
// The window needs the ebiten build tag:
//
//	go run -tags ebiten ./cmd/lifehash-view [flags] [INPUT]
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"lifehash/internal/app"
	"lifehash/internal/config"
	"lifehash/internal/digest"
	pcore "lifehash/pkg/core"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, app.ErrNoGUI) {
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifehash-view` or build with `-tags ebiten`.")
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("lifehash-view", pflag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (default $"+config.EnvVar+")")
	version := fs.String("version", "", "initial fingerprint version")
	input := fs.StringP("input", "i", "auto", "input kind: auto, hex, string, file or uuid")
	scale := fs.Int("scale", 8, "screen pixels per cell of the largest output")
	tps := fs.Int("tps", 15, "playback generations per second")
	hudWidth := fs.Int("hud-width", 260, "parameter panel width (0 hides it)")
	seed := fs.Int64("seed", 1, "seed for random digests")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if fs.Changed("version") {
		cfg.Version = *version
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ver, _ := cfg.FingerprintVersion()
	alg, _ := cfg.HashAlgorithm()

	var fp digest.Fingerprint
	switch fs.NArg() {
	case 0:
		fp = digest.Fingerprint{Digest: pcore.NewRNG(*seed).Digest(digest.Size)}
	case 1:
		kind, err := digest.ParseKind(*input)
		if err != nil {
			return err
		}
		if fp, err = digest.Resolve(fs.Arg(0), kind, alg); err != nil {
			return err
		}
	default:
		return errors.New("usage: lifehash-view [flags] [INPUT]")
	}

	play, err := app.NewPlayback(logger, fp, ver)
	if err != nil {
		return err
	}
	return app.Run(play, app.Options{
		Scale:    *scale,
		TPS:      *tps,
		HUDWidth: *hudWidth,
		Seed:     *seed + 1,
		Logger:   logger,
	})
}
