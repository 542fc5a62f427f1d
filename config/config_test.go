package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/sparse"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "result_%s.txt", cfg.Output.Pattern)
	assert.False(t, cfg.Output.Sorted)
	assert.Equal(t, "sparse", cfg.Multiply.Algorithm)
	assert.Equal(t, sparse.AlgorithmSparse, cfg.Algorithm())
	assert.False(t, cfg.Parse.Strict)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileInDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[output]
sorted = true
pattern = "out-%s.txt"

[multiply]
algorithm = "naive"
`)

	cfg, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)
	assert.True(t, cfg.Output.Sorted)
	assert.Equal(t, "out-%s.txt", cfg.Output.Pattern)
	assert.Equal(t, sparse.AlgorithmNaive, cfg.Algorithm())
	// untouched keys keep their defaults
	assert.Equal(t, ".", cfg.Output.Dir)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[parse]\nstrict = true\n"), 0o644))

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)
	assert.True(t, cfg.Parse.Strict)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "nope.toml")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadToml(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output\nsorted = ")

	_, err := Load(LoadOptions{Dir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from")
}

func TestLoad_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output]\nsortd = true\n")

	_, err := Load(LoadOptions{Dir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sortd")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[log]\nverbosity = 1\n")
	t.Setenv("SPARSECALC_LOG_VERBOSITY", "3")
	t.Setenv("SPARSECALC_OUTPUT_SORTED", "true")
	t.Setenv("SPARSECALC_MULTIPLY_ALGORITHM", " naive\n")

	cfg, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Log.Verbosity)
	assert.True(t, cfg.Output.Sorted)
	assert.Equal(t, "naive", cfg.Multiply.Algorithm)
}

func TestLoad_OverridesWin(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output]\nsorted = false\n")
	t.Setenv("SPARSECALC_OUTPUT_DIR", "from-env")

	cfg, err := Load(LoadOptions{
		Dir: dir,
		Overrides: map[string]interface{}{
			KeyOutputDir:    "from-flag",
			KeyOutputSorted: true,
			KeyLogVerbosity: 2,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Output.Dir)
	assert.True(t, cfg.Output.Sorted)
	assert.Equal(t, 2, cfg.Log.Verbosity)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty algorithm means sparse", mutate: func(c *Config) { c.Multiply.Algorithm = "" }},
		{
			name:    "unknown algorithm",
			mutate:  func(c *Config) { c.Multiply.Algorithm = "strassen" },
			wantErr: KeyMultiplyAlgorithm,
		},
		{
			name:    "pattern without verb",
			mutate:  func(c *Config) { c.Output.Pattern = "result.txt" },
			wantErr: KeyOutputPattern,
		},
		{
			name:    "pattern with two verbs",
			mutate:  func(c *Config) { c.Output.Pattern = "%s_%s.txt" },
			wantErr: KeyOutputPattern,
		},
		{
			name:    "negative verbosity",
			mutate:  func(c *Config) { c.Log.Verbosity = -1 },
			wantErr: KeyLogVerbosity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidFromEnv(t *testing.T) {
	t.Setenv("SPARSECALC_MULTIPLY_ALGORITHM", "strassen")

	_, err := Load(LoadOptions{Dir: t.TempDir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
