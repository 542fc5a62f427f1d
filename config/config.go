// Package config loads sparsecalc settings with koanf.
//
// Layers, later wins:
//  1. embedded defaults (embedded/defaults.toml)
//  2. a TOML file: LoadOptions.File, else sparsecalc.toml in LoadOptions.Dir
//  3. SPARSECALC_<SECTION>_<KEY> environment variables
//  4. LoadOptions.Overrides (flags the user actually set)
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/sparsecalc/sparse"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SPARSECALC_"
	// DefaultFileName is looked up in LoadOptions.Dir when no file is given.
	DefaultFileName = "sparsecalc.toml"
)

// Configuration keys, usable in LoadOptions.Overrides.
const (
	KeyOutputDir         = "output.dir"
	KeyOutputPattern     = "output.pattern"
	KeyOutputSorted      = "output.sorted"
	KeyMultiplyAlgorithm = "multiply.algorithm"
	KeyParseStrict       = "parse.strict"
	KeyLogVerbosity      = "log.verbosity"
	KeyLogFile           = "log.file"
)

// ErrInvalidConfig marks a configuration that loaded but failed Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config is the resolved configuration.
type Config struct {
	Output   OutputConfig   `koanf:"output"`
	Multiply MultiplyConfig `koanf:"multiply"`
	Parse    ParseConfig    `koanf:"parse"`
	Log      LogConfig      `koanf:"log"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Dir     string `koanf:"dir"`
	Pattern string `koanf:"pattern"`
	Sorted  bool   `koanf:"sorted"`
}

// MultiplyConfig selects the multiplication kernel.
type MultiplyConfig struct {
	Algorithm string `koanf:"algorithm"`
}

// ParseConfig controls input validation.
type ParseConfig struct {
	Strict bool `koanf:"strict"`
}

// LogConfig controls logging.
type LogConfig struct {
	Verbosity int    `koanf:"verbosity"`
	File      string `koanf:"file"`
}

// LoadOptions selects the optional layers.
type LoadOptions struct {
	File      string                 // explicit TOML file; must exist when set
	Dir       string                 // directory searched for DefaultFileName ("" means ".")
	Overrides map[string]interface{} // final layer, keyed by Key* constants
}

// Load resolves all layers into a validated Config.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	path, err := configPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Env vars
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// unmarshal decodes k into a Config. Unknown keys are an error so that a
// misspelled setting does not silently fall back to its default.
func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(trimStringHookFunc()),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}

// trimStringHookFunc strips surrounding whitespace from string values
// (environment variables often carry a trailing space or newline).
func trimStringHookFunc() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(data.(string)), nil
	}
}

// configPath returns the file layer to load, or "" when there is none.
func configPath(opts LoadOptions) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.File, err)
		}
		return opts.File, nil
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

// Validate rejects settings the runner cannot honor.
func (c *Config) Validate() error {
	if _, err := sparse.ParseAlgorithm(c.Multiply.Algorithm); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyMultiplyAlgorithm, err)
	}
	if strings.Count(c.Output.Pattern, "%s") != 1 {
		return fmt.Errorf("%w: %s %q must contain exactly one %%s", ErrInvalidConfig, KeyOutputPattern, c.Output.Pattern)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("%w: %s must be >= 0", ErrInvalidConfig, KeyLogVerbosity)
	}
	return nil
}

// Algorithm returns the configured multiplication kernel.
// It cannot fail on a Config returned by Load.
func (c *Config) Algorithm() sparse.Algorithm {
	alg, err := sparse.ParseAlgorithm(c.Multiply.Algorithm)
	if err != nil {
		return sparse.AlgorithmSparse
	}
	return alg
}

// Default returns the embedded defaults only.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}
