// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/hydro/fluidstate"
	"github.com/cpmech/hydro/geom"
)

// Cell holds the per-cell geometric and fluid-dynamic data: center
// coordinate, volume, the six face areas and the two-layer fluid state.
type Cell struct {
	Center geom.Point3
	Volume float64
	Areas  [6]float64 // indexed by Direction
	States [2]fluidstate.State // indexed by layer bit
}

// Cur returns the current-layer state
func (c *Cell) Cur(layer int) *fluidstate.State { return &c.States[layer] }

// Nxt returns the next-layer state
func (c *Cell) Nxt(layer int) *fluidstate.State { return &c.States[1-layer] }
