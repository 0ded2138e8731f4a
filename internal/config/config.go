// Package config loads lifehash settings.
//
// Settings come from a single YAML file named by the --config flag or the
// LIFEHASH_CONFIG environment variable. There is no discovery: without
// either, the defaults apply. Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"lifehash/internal/digest"
	"lifehash/internal/fingerprint"
	"lifehash/internal/render"
	"lifehash/internal/store"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "LIFEHASH_CONFIG"

// DebugEnvVar forces debug logging when set to a non-empty value.
const DebugEnvVar = "LIFEHASH_DEBUG"

// Config is the full set of lifehash settings.
type Config struct {
	// Version is the fingerprint version name, e.g. "version2".
	Version string `yaml:"version"`

	// ModuleSize is the pixel edge length of each rendered cell.
	ModuleSize int `yaml:"module_size"`

	// Format is the image encoding: png or bmp.
	Format string `yaml:"format"`

	// Hash is applied to non-digest inputs: sha256, blake3 or blake2b.
	Hash string `yaml:"hash"`

	// Workers bounds concurrent generation in batch and sweep runs.
	// Zero means one per CPU.
	Workers int `yaml:"workers"`

	Cache CacheConfig `yaml:"cache"`
	Log   LogConfig   `yaml:"log"`
}

// CacheConfig configures the fingerprint cache.
type CacheConfig struct {
	// MemoryEntries bounds the in-memory LRU.
	MemoryEntries int `yaml:"memory_entries"`

	// Dir enables the on-disk store when non-empty. ${HOME} and other
	// ${VAR} references are expanded.
	Dir string `yaml:"dir"`

	// Compression is none, lz4 or zstd.
	Compression string `yaml:"compression"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Version:    fingerprint.Version2.String(),
		ModuleSize: 1,
		Format:     string(render.FormatPNG),
		Hash:       digest.SHA256.String(),
		Cache: CacheConfig{
			MemoryEntries: 256,
			Compression:   store.CompressionLZ4.String(),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the file named by path, or by LIFEHASH_CONFIG when path is
// empty. With neither set it returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads settings from path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Cache.Dir = expandVars(cfg.Cache.Dir)
	return cfg, nil
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns from the
// environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.FingerprintVersion(); err != nil {
		errs = append(errs, err)
	}
	if c.ModuleSize < 1 {
		errs = append(errs, fmt.Errorf("module_size must be at least 1, got %d", c.ModuleSize))
	}
	if _, err := c.ImageFormat(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.HashAlgorithm(); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.Cache.MemoryEntries < 0 {
		errs = append(errs, fmt.Errorf("cache.memory_entries must not be negative, got %d", c.Cache.MemoryEntries))
	}
	if _, err := c.StoreCompression(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// FingerprintVersion resolves Version.
func (c *Config) FingerprintVersion() (fingerprint.Version, error) {
	return fingerprint.ParseVersion(c.Version)
}

// ImageFormat resolves Format.
func (c *Config) ImageFormat() (render.Format, error) {
	return render.ParseFormat(c.Format)
}

// HashAlgorithm resolves Hash.
func (c *Config) HashAlgorithm() (digest.Algorithm, error) {
	return digest.ParseAlgorithm(c.Hash)
}

// StoreCompression resolves Cache.Compression.
func (c *Config) StoreCompression() (store.Compression, error) {
	return store.ParseCompression(c.Cache.Compression)
}

// LogLevel resolves Log.Level. LIFEHASH_DEBUG forces debug.
func (c *Config) LogLevel() (slog.Level, error) {
	if os.Getenv(DebugEnvVar) != "" {
		return slog.LevelDebug, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
