package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"lifehash/internal/cache"
	"lifehash/internal/config"
	"lifehash/internal/digest"
	"lifehash/internal/fingerprint"
	"lifehash/internal/render"
	"lifehash/internal/store"

	"github.com/spf13/pflag"
)

// options holds the flags shared by every command. Flags left unset fall
// back to the config file.
type options struct {
	configPath string
	version    string
	input      string
	hash       string
	module     int
	format     string
	workers    int

	cfg    *config.Config
	logger *slog.Logger
	ver    fingerprint.Version
	alg    digest.Algorithm
	kind   digest.Kind
	imgFmt render.Format
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "YAML config file (default $"+config.EnvVar+")")
	fs.StringVar(&o.version, "version", "", "fingerprint version (see 'lifehash versions')")
	fs.StringVarP(&o.input, "input", "i", "auto", "input kind: auto, hex, string, file or uuid")
	fs.StringVar(&o.hash, "hash", "", "hash for non-digest inputs: sha256, blake3 or blake2b")
	fs.IntVarP(&o.module, "module", "m", 0, "pixel size of each cell")
	fs.StringVarP(&o.format, "format", "f", "", "image format: png or bmp")
	fs.IntVarP(&o.workers, "workers", "j", 0, "concurrent generations (batch only, 0 = one per CPU)")
}

// parse parses args and resolves configuration. It returns the positional
// arguments. A help request yields errHelp after printing usage.
func (o *options) parse(fs *pflag.FlagSet, args []string, stderr io.Writer) ([]string, error) {
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, errHelp
		}
		return nil, err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if fs.Changed("version") {
		cfg.Version = o.version
	}
	if fs.Changed("hash") {
		cfg.Hash = o.hash
	}
	if fs.Changed("module") {
		cfg.ModuleSize = o.module
	}
	if fs.Changed("format") {
		cfg.Format = o.format
	}
	if fs.Changed("workers") {
		cfg.Workers = o.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if o.kind, err = digest.ParseKind(o.input); err != nil {
		return nil, err
	}

	level, _ := cfg.LogLevel()
	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	o.cfg = cfg
	o.ver, _ = cfg.FingerprintVersion()
	o.alg, _ = cfg.HashAlgorithm()
	o.imgFmt, _ = cfg.ImageFormat()
	return fs.Args(), nil
}

var errHelp = errors.New("help requested")

// resolve turns one positional argument into a fingerprint.
func (o *options) resolve(arg string) (digest.Fingerprint, error) {
	return digest.Resolve(arg, o.kind, o.alg)
}

// newCache builds the cache described by the configuration, backed by the
// on-disk store when cache.dir is set.
func (o *options) newCache() (*cache.Cache, error) {
	opts := cache.Options{Entries: o.cfg.Cache.MemoryEntries, Logger: o.logger}
	if o.cfg.Cache.Dir != "" {
		compression, _ := o.cfg.StoreCompression()
		s, err := store.Open(o.cfg.Cache.Dir, store.Options{Compression: compression, Logger: o.logger})
		if err != nil {
			return nil, err
		}
		opts.Store = s
		o.logger.Debug("using fingerprint store", "root", s.Root(), "compression", compression.String())
	}
	return cache.New(opts), nil
}

// single checks that exactly one positional argument was given.
func single(args []string, usage string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s", usage)
	}
	return args[0], nil
}
