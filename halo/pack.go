// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halo

import "github.com/cpmech/hydro/grid"

// Pack fills every cross-rank interface's halo buffer, on the side about
// to send, with this worker's own interior cells adjacent to the shared
// face. It must run before Exchange each step. Co-located pairs need no
// packing: the flux step reads the neighbor block's cells directly
// (spec §5, "direct neighbor reads are permitted").
func Pack(g *grid.Grid) {
	for p := 0; p+1 < len(g.Interfaces); p += 2 {
		packHalf(g, g.Interfaces[p], g.Interfaces[p+1])
		packHalf(g, g.Interfaces[p+1], g.Interfaces[p])
	}
}

// packHalf packs iface's halo buffer if this worker owns iface's neighbor
// block and the source block lives elsewhere (the cross-rank send case).
// mate gives the face direction on the neighbor block.
func packHalf(g *grid.Grid, iface, mate *grid.Interface) {
	if iface.IsSrcActive(g) || !iface.IsNbrActive(g) {
		return // either co-located (no send needed) or we're the receiver
	}
	nbrBlock := g.Blocks[iface.NbrBlock]
	du, dv := iface.PatchDims()
	for u := 0; u < du; u++ {
		for v := 0; v < dv; v++ {
			for d := 0; d < iface.ShadowDepth; d++ {
				cell := nbrBlock.BoundaryCell(mate.Direction, u, v, d)
				iface.SetGhost(u, v, d, cell.States[g.Layer])
			}
		}
	}
}
