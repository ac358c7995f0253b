// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package godunov implements the first-order finite-volume update: the
// per-cell flux accumulation, pluggable Riemann averaging, and the
// two-layer current/next state machine of spec §4.6.
package godunov

import "github.com/cpmech/hydro/fluidstate"

// Averager is the pluggable Riemann solver interface: given the
// normal-form states on the left and right of a face, return a single
// centered normal-form state. More sophisticated solvers replace
// AverageSolver without touching Step.
type Averager interface {
	Average(left, right fluidstate.State) fluidstate.State
}

// AverageSolver is the baseline Riemann averager: the arithmetic mean of
// each scalar and of each velocity component
type AverageSolver struct{}

// Average implements Averager
func (AverageSolver) Average(left, right fluidstate.State) fluidstate.State {
	return fluidstate.State{
		R: 0.5 * (left.R + right.R),
		V: left.V.Mid(right.V),
		E: 0.5 * (left.E + right.E),
		P: 0.5 * (left.P + right.P),
	}
}
