// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/hydro/timer"

// Grid is the top-level registry holding the block array, the interface
// array, the current layer bit and the shadow-exchange timer. Blocks are
// referred to by zero-based position in Blocks; the loader assigns the
// position to match input order (spec §3 Grid invariant).
type Grid struct {
	Rank   int // this worker's rank
	NProc  int // cohort size

	Blocks     []*Block
	Interfaces []*Interface

	Layer int // 0 or 1; flips each step

	ExchangeTimer *timer.Timer
}

// NewGrid creates an empty Grid for the given worker rank and cohort size
func NewGrid(rank, nproc int) *Grid {
	return &Grid{Rank: rank, NProc: nproc, ExchangeTimer: timer.New("halo exchange")}
}

// SwapLayer flips the current layer bit (0<->1)
func (g *Grid) SwapLayer() {
	g.Layer = 1 - g.Layer
}

// Block returns the block at the given registry position
func (g *Grid) Block(idx int) *Block { return g.Blocks[idx] }
