// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"encoding/json"

	"github.com/cpmech/gosl/io"
)

// Config holds the run's JSON sidecar configuration (spec §6.3 [ADD]),
// read the way inp.ReadSim reads a simulation's .sim JSON file: open,
// unmarshal, apply defaults, validate.
// Config does not carry gamma: fluidstate.Gamma is a fixed constant of
// the ideal-gas closure (spec §4.6), not a per-run knob (see DESIGN.md).
type Config struct {
	Dt          float64 `json:"dt"`          // time step
	NSteps      int     `json:"nsteps"`      // number of steps to run
	ShadowDepth int     `json:"shadowDepth"` // ghost halo depth
	LogLevel    string  `json:"logLevel"`    // "quiet" or "verbose"
}

// DefaultConfig returns a Config with every field at its spec-mandated
// default
func DefaultConfig() Config {
	return Config{
		Dt:          1e-3,
		NSteps:      1,
		ShadowDepth: DefaultShadowDepth,
		LogLevel:    "verbose",
	}
}

// ReadConfig reads a JSON sidecar file at path, following defaults for
// any field not present. A missing file is not an error: the caller gets
// DefaultConfig() back (the sidecar is optional per spec §6.3).
func ReadConfig(path string) (Config, *Error) {
	cfg := DefaultConfig()
	b, err := io.ReadFile(path)
	if err != nil {
		return cfg, nil
	}
	if e := json.Unmarshal(b, &cfg); e != nil {
		return cfg, Errf(InputMalformed, "cannot parse config file %q: %v", path, e)
	}
	if cfg.Dt <= 0 {
		return cfg, Errf(InputMalformed, "config %q: dt must be positive, got %v", path, cfg.Dt)
	}
	if cfg.NSteps < 0 {
		return cfg, Errf(InputMalformed, "config %q: nsteps must be non-negative, got %v", path, cfg.NSteps)
	}
	if cfg.ShadowDepth <= 0 {
		return cfg, Errf(InputMalformed, "config %q: shadowDepth must be positive, got %v", path, cfg.ShadowDepth)
	}
	return cfg, nil
}
