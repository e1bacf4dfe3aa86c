package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eca-density/internal/core"
	"eca-density/internal/eval"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 149, cfg.Experiment.Size)
	assert.Equal(t, 7, cfg.Experiment.Arity)
	assert.Equal(t, 320, cfg.Experiment.MaxSteps)
	assert.Equal(t, 0.5, cfg.Experiment.Threshold)
	assert.Equal(t, 100, cfg.Experiment.Trials)
	assert.Equal(t, eval.DefaultSeedSchedule, cfg.Params().Seeds)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eca.yaml")
	content := `
experiment:
  size: 59
  arity: 5
  trials: 12
  seed:
    offset: 7
output:
  formats: [json, yaml]
  sqlite_path: runs.db
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 59, cfg.Experiment.Size)
	assert.Equal(t, 5, cfg.Experiment.Arity)
	assert.Equal(t, 12, cfg.Experiment.Trials)
	assert.Equal(t, 320, cfg.Experiment.MaxSteps, "unset fields keep defaults")
	assert.Equal(t, uint64(9876), cfg.Experiment.Seed.Multiplier)
	assert.Equal(t, uint64(7), cfg.Experiment.Seed.Offset)
	assert.Equal(t, []string{"json", "yaml"}, cfg.Output.Formats)
	assert.Equal(t, "runs.db", cfg.Output.SQLitePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEmptyPathAndErrors(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("experiment: [1, 2"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyOverrides(map[string]string{
		"n":         "99",
		"v":         "3",
		"m":         "50",
		"d":         "0.4",
		"s":         "10",
		"workers":   "4",
		"out":       "/tmp/x",
		"formats":   "yaml, json",
		"log_level": "DEBUG",
	})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	p := cfg.Params()
	assert.Equal(t, 99, p.Size)
	assert.Equal(t, 50, p.MaxSteps)
	assert.Equal(t, 0.4, p.Threshold)
	assert.Equal(t, 10, p.Trials)
	assert.Equal(t, 4, p.Workers)
	assert.Equal(t, 3, cfg.Experiment.Arity)
	assert.Equal(t, []string{"yaml", "json"}, cfg.Output.Formats)
	assert.Equal(t, "debug", cfg.Logging.Level)

	assert.ErrorIs(t, cfg.ApplyOverrides(map[string]string{"bogus": "1"}), core.ErrInvalidParameter)
	assert.ErrorIs(t, cfg.ApplyOverrides(map[string]string{"n": "many"}), core.ErrInvalidParameter)
}

func TestApplyOverridesRejectsAliasConflicts(t *testing.T) {
	for _, kv := range []map[string]string{
		{"out": "/tmp/a", "dir": "/tmp/b"},
		{"n": "21", "size": "23"},
		{"s": "5", "trials": "5"},
	} {
		cfg := Default()
		err := cfg.ApplyOverrides(kv)
		assert.ErrorIs(t, err, core.ErrInvalidParameter, "%v", kv)
		assert.Equal(t, Default(), cfg, "nothing applied on conflict")
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyOverrides(map[string]string{"size": "21", "dir": "/tmp/b"}))
	assert.Equal(t, 21, cfg.Experiment.Size)
	assert.Equal(t, "/tmp/b", cfg.Output.Dir)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"even arity":     func(c *Config) { c.Experiment.Arity = 6 },
		"huge arity":     func(c *Config) { c.Experiment.Arity = 23 },
		"zero size":      func(c *Config) { c.Experiment.Size = 0 },
		"negative m":     func(c *Config) { c.Experiment.MaxSteps = -1 },
		"threshold > 1":  func(c *Config) { c.Experiment.Threshold = 1.2 },
		"zero trials":    func(c *Config) { c.Experiment.Trials = 0 },
		"zero workers":   func(c *Config) { c.Experiment.Workers = 0 },
		"zero offset":    func(c *Config) { c.Experiment.Seed.Offset = 0 },
		"unknown format": func(c *Config) { c.Output.Formats = []string{"xml"} },
		"unknown level":  func(c *Config) { c.Logging.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidParameter)
		})
	}
}

func TestParameters(t *testing.T) {
	snap := Default().Parameters()
	require.Len(t, snap.Groups, 3)

	p, ok := snap.Lookup("n")
	require.True(t, ok)
	assert.Equal(t, "149", p.Value)
	assert.Equal(t, core.ParamTypeInt, p.Type)

	p, ok = snap.Lookup("d")
	require.True(t, ok)
	assert.Equal(t, "0.5", p.Value)

	p, ok = snap.Lookup("formats")
	require.True(t, ok)
	assert.Equal(t, "json", p.Value)
}
