// Package config holds the explicit configuration value for an evaluation:
// automaton shape, trial budget, seeds, output and logging. It is built once
// from defaults, an optional YAML file and key=value overrides, then passed
// down; nothing reads global state.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"eca-density/internal/core"
	"eca-density/internal/eval"
)

// Config is the full configuration.
type Config struct {
	Experiment Experiment `yaml:"experiment"`
	Output     Output     `yaml:"output"`
	Logging    Logging    `yaml:"logging"`
}

// Experiment fixes the automaton and the trial batch.
type Experiment struct {
	// Size is the number of cells N.
	Size int `yaml:"size" validate:"gt=0"`
	// Arity is the neighborhood width V.
	Arity int `yaml:"arity" validate:"gt=0,lte=21,odd"`
	// MaxSteps is the per-trial iteration budget M.
	MaxSteps int `yaml:"max_steps" validate:"gte=0"`
	// Threshold is the density threshold D.
	Threshold float64 `yaml:"threshold" validate:"gte=0,lte=1"`
	// Trials is the trial count S.
	Trials int `yaml:"trials" validate:"gt=0"`
	// Workers is the number of trials evaluated concurrently.
	Workers int  `yaml:"workers" validate:"gte=1"`
	Seed    Seed `yaml:"seed"`
}

// Seed is the affine schedule index*Multiplier + Offset. Offset must be
// non-zero: seed 0 would draw from the entropy source.
type Seed struct {
	Multiplier uint64 `yaml:"multiplier"`
	Offset     uint64 `yaml:"offset" validate:"gt=0"`
}

// Output configures where reports go.
type Output struct {
	Dir         string   `yaml:"dir" validate:"required_with=Formats"`
	Formats     []string `yaml:"formats" validate:"dive,oneof=json yaml"`
	SQLitePath  string   `yaml:"sqlite_path"`
	MetricsFile string   `yaml:"metrics_file"`
}

// Logging configures the operational logger.
type Logging struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Experiment: Experiment{
			Size:      149,
			Arity:     7,
			MaxSteps:  320,
			Threshold: 0.5,
			Trials:    100,
			Workers:   1,
			Seed: Seed{
				Multiplier: eval.DefaultSeedSchedule.Multiplier,
				Offset:     eval.DefaultSeedSchedule.Offset,
			},
		},
		Output: Output{
			Dir:     "results",
			Formats: []string{"json"},
		},
		Logging: Logging{Level: "info"},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// aliases maps short override keys to their long form.
var aliases = map[string]string{
	"n":   "size",
	"v":   "arity",
	"m":   "max_steps",
	"d":   "threshold",
	"s":   "trials",
	"out": "dir",
}

// ApplyOverrides sets fields from flag-style key/value pairs. Keys are
// applied in sorted order; naming one field twice through an alias is an
// error.
func (c *Config) ApplyOverrides(kv map[string]string) error {
	keys := slices.Sorted(maps.Keys(kv))
	seen := make(map[string]string, len(keys))
	for _, key := range keys {
		name := key
		if long, ok := aliases[key]; ok {
			name = long
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q and %q set the same field", core.ErrInvalidParameter, prev, key)
		}
		seen[name] = key
	}
	for _, key := range keys {
		if err := c.set(key, kv[key]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) set(key, v string) error {
	e := &c.Experiment
	name := key
	if long, ok := aliases[key]; ok {
		name = long
	}
	var err error
	switch name {
	case "size":
		e.Size, err = strconv.Atoi(v)
	case "arity":
		e.Arity, err = strconv.Atoi(v)
	case "max_steps":
		e.MaxSteps, err = strconv.Atoi(v)
	case "threshold":
		e.Threshold, err = strconv.ParseFloat(v, 64)
	case "trials":
		e.Trials, err = strconv.Atoi(v)
	case "workers":
		e.Workers, err = strconv.Atoi(v)
	case "seed_multiplier":
		e.Seed.Multiplier, err = strconv.ParseUint(v, 10, 64)
	case "seed_offset":
		e.Seed.Offset, err = strconv.ParseUint(v, 10, 64)
	case "dir":
		c.Output.Dir = v
	case "formats":
		c.Output.Formats = splitList(v)
	case "sqlite":
		c.Output.SQLitePath = v
	case "metrics_file":
		c.Output.MetricsFile = v
	case "log_level":
		c.Logging.Level = strings.ToLower(v)
	default:
		return fmt.Errorf("%w: unknown key %q", core.ErrInvalidParameter, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", core.ErrInvalidParameter, key, v, err)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("odd", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 != 0
	})
	return v
}

// Validate checks every field constraint and reports all violations.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", core.ErrInvalidParameter, strings.Join(msgs, "; "))
}

// Params converts the experiment section into harness parameters.
func (c *Config) Params() eval.Params {
	e := c.Experiment
	return eval.Params{
		Size:      e.Size,
		MaxSteps:  e.MaxSteps,
		Threshold: e.Threshold,
		Trials:    e.Trials,
		Workers:   e.Workers,
		Seeds:     eval.SeedSchedule{Multiplier: e.Seed.Multiplier, Offset: e.Seed.Offset},
	}
}
