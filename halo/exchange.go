// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package halo implements the non-blocking shadow-cell exchange protocol
// that keeps ghost regions consistent before each Godunov step (spec
// §4.5), built on github.com/cpmech/gosl/mpi -- the same transport the
// teacher's FEM.Run guards with mpi.IsOn()/mpi.Rank()/mpi.Size().
package halo

import (
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/hydro/grid"
)

// Exchange walks g's interface registry with the pair-aware posting loop
// of spec §4.5 and blocks until every posted request completes. It is a
// collective call: every worker in the cohort must call Exchange once per
// step, in lockstep.
//
// When mpi.IsOn() is false (serial smoke tests, single-rank runs), every
// interface takes the co-located fast path: both endpoints are active on
// the lone worker, so the loop only ever executes the paired-skip branch
// and no transport call is made.
func Exchange(g *grid.Grid) *grid.Error {
	g.ExchangeTimer.Start()
	defer g.ExchangeTimer.Stop()

	posted := 0
	n := len(g.Interfaces)
	for i := 0; i < n; {
		p := g.Interfaces[i]
		srcActive := p.IsSrcActive(g)
		nbrActive := p.IsNbrActive(g)

		switch {
		case srcActive && nbrActive:
			// co-located: both halves live on this worker, no transport needed
			i += 2

		case srcActive && !nbrActive:
			// receive from the neighbor's owner
			if err := postIrecv(g, p); err != nil {
				return err
			}
			posted++
			i++

		case !srcActive && nbrActive:
			// send to the source's owner
			if err := postIsend(g, p); err != nil {
				return err
			}
			posted++
			i++

		default:
			// neither half is local: paired skip
			i += 2
		}
	}

	if posted > 0 {
		if err := mpi.WaitAll(); err != nil {
			return grid.Errf(grid.TransportFailure, "halo exchange: WaitAll failed: %v", err)
		}
	}
	return nil
}

// postIrecv posts a receive of the neighbor's interior into p's halo
// buffer; the source endpoint is active here and awaits the neighbor's
// owner
func postIrecv(g *grid.Grid, p *grid.Interface) *grid.Error {
	fromRank := g.Blocks[p.NbrBlock].Rank
	if err := mpi.Irecv([]float64(p.Halo), fromRank, p.Id); err != nil {
		return grid.Errf(grid.TransportFailure, "halo exchange: Irecv for interface %d failed: %v", p.Id, err)
	}
	return nil
}

// postIsend posts a send of this worker's interior (already packed into
// p's halo buffer) to the source endpoint's owner
func postIsend(g *grid.Grid, p *grid.Interface) *grid.Error {
	toRank := g.Blocks[p.SrcBlock].Rank
	if err := mpi.Isend([]float64(p.Halo), toRank, p.Id); err != nil {
		return grid.Errf(grid.TransportFailure, "halo exchange: Isend for interface %d failed: %v", p.Id, err)
	}
	return nil
}
