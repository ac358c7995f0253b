// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gosl/io"

// Report prints a summary of the grid structure (blocks, ranks, facet
// border symbols) and the cumulative halo-exchange timer, the way
// inp.Mesh's String()/Print() helpers render mesh structure with io.Pf.
func (g *Grid) Report() {
	io.Pf("grid: %d blocks, %d interfaces, %d ranks (this rank=%d)\n", len(g.Blocks), len(g.Interfaces), g.NProc, g.Rank)
	for _, b := range g.Blocks {
		active := " "
		if b.Active() {
			active = "*"
		}
		io.Pf("  block %2d%s rank=%d  (%d x %d x %d cells)\n", b.Id, active, b.Rank, b.Ni, b.Nj, b.Nk)
		if b.Active() {
			min, max := b.Bounds()
			io.Pf("    bounds: (%g,%g,%g) -> (%g,%g,%g)\n", min.X, min.Y, min.Z, max.X, max.Y, max.Z)
		}
		for _, d := range directions {
			f := b.Facets[d]
			io.Pf("    %s: %s\n", d, facetSymbols(f))
		}
	}
	io.Pf("halo exchange total: %v\n", g.ExchangeTimer.Total())
}

// facetSymbols renders a Facet's Border grid as a row-major run of '0'/'I'/'C'
func facetSymbols(f *Facet) string {
	buf := make([]byte, 0, f.H*f.W+f.H)
	for u := 0; u < f.H; u++ {
		for v := 0; v < f.W; v++ {
			buf = append(buf, f.Symbol(u, v))
		}
	}
	return string(buf)
}
