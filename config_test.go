// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package polyfit

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default configuration must validate, got %v", err)
	}
}

func TestValidateWeightSum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComplexityWeight = 0.5
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v want ErrInvalidInput", err)
	}
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative weight", func(c *Config) { c.FitWeight = -0.1; c.CoverageWeight = 0.8 }},
		{"alpha scale", func(c *Config) { c.AlphaScale = 0 }},
		{"bbox margin", func(c *Config) { c.BBoxMargin = 1.5 }},
		{"time limit", func(c *Config) { c.SolverTimeLimitSeconds = -1 }},
		{"solver gap", func(c *Config) { c.SolverGap = 2 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: got %v want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestLoadConfigPartial(t *testing.T) {
	data := []byte("alpha_scale: 3.5\ninclude_bbox_faces: true\n")
	cfg, err := LoadConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AlphaScale != 3.5 {
		t.Errorf("alpha_scale got %g want 3.5", cfg.AlphaScale)
	}
	if !cfg.IncludeBBoxFaces {
		t.Error("include_bbox_faces not applied")
	}
	// Untouched keys keep their defaults.
	if cfg.FitWeight != 0.43 || cfg.BBoxMargin != 0.05 {
		t.Errorf("defaults disturbed: fit=%g margin=%g", cfg.FitWeight, cfg.BBoxMargin)
	}
}

func TestLoadConfigInvalidWeights(t *testing.T) {
	data := []byte("fit_weight: 0.9\n")
	if _, err := LoadConfig(data); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v want ErrInvalidInput", err)
	}
}

func TestLoadConfigBadYaml(t *testing.T) {
	if _, err := LoadConfig([]byte("fit_weight: [oops")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v want ErrInvalidInput", err)
	}
}
