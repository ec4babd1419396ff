// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package polyfit

// config.go carries the reconstruction configuration by value into
// Reconstruct: a plain value struct, no functional options and no
// process-global state.

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config carries every reconstruction tunable.
type Config struct {
	// FitWeight, CoverageWeight and ComplexityWeight are the three
	// objective weights of the selection program. They must sum to 1.
	FitWeight        float64
	CoverageWeight   float64
	ComplexityWeight float64

	// AlphaScale multiplies the mean nearest-neighbor distance to derive
	// the auto-alpha used by the alpha-shape extractor.
	AlphaScale float64

	// ResidualTolerance is ε in the support-term scoring formula.
	// Zero means "derive from mean point spacing, 3x".
	ResidualTolerance float64

	// BBoxMargin inflates the bounding box used to seed the arrangement,
	// as a fraction of the box diagonal.
	BBoxMargin float64

	// IncludeBBoxFaces allows bounding-box-only faces into the output
	// mesh; false forces an open surface when the
	// input doesn't close.
	IncludeBBoxFaces bool

	// SolverTimeLimitSeconds bounds the branch-and-bound search. Zero
	// means unlimited.
	SolverTimeLimitSeconds float64

	// SolverGap is the acceptable optimality gap, 0 meaning "prove
	// optimal".
	SolverGap float64
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		FitWeight:              0.43,
		CoverageWeight:         0.27,
		ComplexityWeight:       0.30,
		AlphaScale:             5.0,
		ResidualTolerance:      0,
		BBoxMargin:             0.05,
		IncludeBBoxFaces:       false,
		SolverTimeLimitSeconds: 0,
		SolverGap:              0,
	}
}

// yamlConfig maps the yaml configuration keys to Config fields. The keys
// are the documented snake_case option names; pointer fields distinguish "key
// absent, keep the default" from an explicit zero.
type yamlConfig struct {
	FitWeight              *float64 `yaml:"fit_weight"`
	CoverageWeight         *float64 `yaml:"coverage_weight"`
	ComplexityWeight       *float64 `yaml:"complexity_weight"`
	AlphaScale             *float64 `yaml:"alpha_scale"`
	ResidualTolerance      *float64 `yaml:"residual_tolerance"`
	BBoxMargin             *float64 `yaml:"bbox_margin"`
	IncludeBBoxFaces       *bool    `yaml:"include_bbox_faces"`
	SolverTimeLimitSeconds *float64 `yaml:"solver_time_limit_seconds"`
	SolverGap              *float64 `yaml:"solver_gap"`
}

// LoadConfig parses a yaml reconstruction configuration, starting from
// DefaultConfig and overriding only the keys present in data. The yaml is
// string-keyed with the snake_case option names so saved settings
// stay readable. The result is validated before being returned.
func LoadConfig(data []byte) (Config, error) {
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: yaml %v: %w", err, ErrInvalidInput)
	}
	c := DefaultConfig()
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&c.FitWeight, yc.FitWeight)
	setF(&c.CoverageWeight, yc.CoverageWeight)
	setF(&c.ComplexityWeight, yc.ComplexityWeight)
	setF(&c.AlphaScale, yc.AlphaScale)
	setF(&c.ResidualTolerance, yc.ResidualTolerance)
	setF(&c.BBoxMargin, yc.BBoxMargin)
	setF(&c.SolverTimeLimitSeconds, yc.SolverTimeLimitSeconds)
	setF(&c.SolverGap, yc.SolverGap)
	if yc.IncludeBBoxFaces != nil {
		c.IncludeBBoxFaces = *yc.IncludeBBoxFaces
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the configuration invariants: the three objective
// weights must lie in [0,1] and sum to 1 (within floating tolerance),
// and the remaining scalars must be in range.
func (c Config) Validate() error {
	const tol = 1e-9
	weights := []struct {
		name string
		val  float64
	}{
		{"fit_weight", c.FitWeight},
		{"coverage_weight", c.CoverageWeight},
		{"complexity_weight", c.ComplexityWeight},
	}
	sum := 0.0
	for _, w := range weights {
		if w.val < 0 || w.val > 1 {
			return fmt.Errorf("%s=%v out of [0,1]: %w", w.name, w.val, ErrInvalidInput)
		}
		sum += w.val
	}
	if sum < 1-tol || sum > 1+tol {
		return fmt.Errorf("weights sum to %v, want 1: %w", sum, ErrInvalidInput)
	}
	if c.AlphaScale <= 0 {
		return fmt.Errorf("alpha_scale=%v must be > 0: %w", c.AlphaScale, ErrInvalidInput)
	}
	if c.BBoxMargin < 0 || c.BBoxMargin > 1 {
		return fmt.Errorf("bbox_margin=%v out of [0,1]: %w", c.BBoxMargin, ErrInvalidInput)
	}
	if c.SolverTimeLimitSeconds < 0 {
		return fmt.Errorf("solver_time_limit_seconds=%v must be >= 0: %w", c.SolverTimeLimitSeconds, ErrInvalidInput)
	}
	if c.SolverGap < 0 || c.SolverGap > 1 {
		return fmt.Errorf("solver_gap=%v out of [0,1]: %w", c.SolverGap, ErrInvalidInput)
	}
	return nil
}
