package config

import (
	"strconv"
	"strings"

	"eca-density/internal/core"
)

// Parameters returns the configuration as grouped, printable parameters.
func (c *Config) Parameters() core.ParameterSnapshot {
	e := c.Experiment
	groups := []core.ParameterGroup{
		{
			Name: "Automaton",
			Params: []core.Parameter{
				intParam("n", "Cells", e.Size),
				intParam("v", "Neighborhood width", e.Arity),
			},
		},
		{
			Name: "Evaluation",
			Params: []core.Parameter{
				intParam("m", "Iteration budget", e.MaxSteps),
				floatParam("d", "Density threshold", e.Threshold),
				intParam("s", "Trials", e.Trials),
				intParam("workers", "Workers", e.Workers),
				uintParam("seed_multiplier", "Seed multiplier", e.Seed.Multiplier),
				uintParam("seed_offset", "Seed offset", e.Seed.Offset),
			},
			Summary: "trial i uses seed i*seed_multiplier+seed_offset",
		},
		{
			Name: "Output",
			Params: []core.Parameter{
				stringParam("out", "Directory", c.Output.Dir),
				stringParam("formats", "Formats", strings.Join(c.Output.Formats, ",")),
				stringParam("sqlite", "SQLite database", c.Output.SQLitePath),
				stringParam("metrics_file", "Metrics file", c.Output.MetricsFile),
				stringParam("log_level", "Log level", c.Logging.Level),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
