package elementary

import (
	"fmt"
	"strconv"

	"eca-density/internal/core"
)

// Arity is the fixed window width of a Wolfram-coded rule.
const Arity = 3

// Config holds parameters for an elementary rule.
type Config struct {
	Rule uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["rule"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 || parsed > 255 {
			return c, fmt.Errorf("%w: rule %q must be in [0, 255]", core.ErrInvalidParameter, v)
		}
		c.Rule = uint8(parsed)
	}
	return c, nil
}

// Elementary implements a radius-1 rule identified by its Wolfram code.
type Elementary struct {
	code uint8
}

// New creates a rule for the given Wolfram code.
func New(code uint8) *Elementary {
	return &Elementary{code: code}
}

// Code returns the Wolfram code.
func (e *Elementary) Code() uint8 { return e.code }

// Arity returns the window width.
func (e *Elementary) Arity() int { return Arity }

// Apply selects the code bit addressed by the (left, center, right) window.
func (e *Elementary) Apply(window []uint8) uint8 {
	idx := (window[0] << 2) | (window[1] << 1) | window[2]
	return (e.code >> idx) & 1
}

func init() {
	core.Register("elementary", func(arity int, cfg map[string]string) (core.Rule, error) {
		if arity != Arity {
			return nil, fmt.Errorf("%w: elementary rules have arity %d, requested %d", core.ErrArityMismatch, Arity, arity)
		}
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c.Rule), nil
	})
}
