// Package config holds process configuration for the bvcalc CLI: catalogue
// path, worker count, per-unit timeout, and corpus tolerance thresholds.
// The teacher carries no config package of its own, so this follows its
// plain struct-with-defaults idiom rather than pulling in a configuration
// framework no example repo in the pack actually imports.
package config

import "time"

// Config is the resolved process configuration, built from CLI flags by
// cmd/bvcalc with these defaults as the fallback.
type Config struct {
	CataloguePath string
	InputDir      string
	ReferencePath string
	OutPath       string

	Diagnostics bool
	Workers     int
	UnitTimeout time.Duration

	// WithinTolerancePercent is the delta threshold the CLI treats as
	// "acceptable" for its exit-code decision (spec default: 1%).
	WithinTolerancePercent float64
}

// Default returns the zero-config fallback: no worker cap (runtime decides),
// no per-unit timeout, 1% tolerance.
func Default() Config {
	return Config{
		Workers:                0,
		UnitTimeout:            0,
		WithinTolerancePercent: 1.0,
	}
}
