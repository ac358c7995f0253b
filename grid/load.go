// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// LoadOptions bundles the inputs Load needs beyond the .pfg/.ibc pair
type LoadOptions struct {
	Rank        int
	NProc       int
	ShadowDepth int     // 0 means DefaultShadowDepth
	Lx, Ly, Lz  float64 // physical extents applied uniformly to every block's Cartesian construction
}

// Load reads a .pfg block file and its paired .ibc interface file, builds
// the full Grid (every block and interface, on every worker), balances
// blocks across ranks with LPT, activates and constructs the blocks owned
// by this worker, and binds interfaces into source-block facets (spec
// §4.1). Every worker must call Load with the same basename and the same
// nproc so the balancer computes an identical assignment without
// communication.
func Load(pfgPath, ibcPath string, opts LoadOptions) (*Grid, *Error) {
	shadowDepth := opts.ShadowDepth
	if shadowDepth <= 0 {
		shadowDepth = DefaultShadowDepth
	}

	specs, err := readPfg(pfgPath)
	if err != nil {
		return nil, err
	}
	rawIfaces, err := readIbc(ibcPath)
	if err != nil {
		return nil, err
	}
	ordered, err := pairConsecutive(rawIfaces)
	if err != nil {
		return nil, err
	}

	g := NewGrid(opts.Rank, opts.NProc)

	// blocks, in input order (Grid invariant: position == input order)
	g.Blocks = make([]*Block, len(specs))
	for i, s := range specs {
		g.Blocks[i] = NewBlock(i, s.Ni, s.Nj, s.Nk)
	}

	// deterministic balancing; every worker computes the same result
	Balance(g.Blocks, opts.NProc)
	for _, b := range g.Blocks {
		if b.Rank < 0 || b.Rank >= opts.NProc {
			return nil, Errf(InvariantViolation, "block %d got invalid rank %d", b.Id, b.Rank)
		}
		if b.Rank == opts.Rank {
			b.Activate()
			b.BuildCartesian(opts.Lx, opts.Ly, opts.Lz)
		}
	}

	// interfaces, pair-consecutive order preserved
	g.Interfaces = make([]*Interface, len(ordered))
	for i, r := range ordered {
		src := g.Blocks[r.Bid-1]
		iface := NewInterface(r.Id, r.Bid-1, r.Nid-1, r.I0, r.I1, r.J0, r.J1, r.K0, r.K1, src.Ni+1, src.Nj+1, src.Nk+1, shadowDepth)
		iface.Position = i
		iface.AllocateHalo(g)
		g.Interfaces[i] = iface
	}

	// facet binding: push each interface into its source block's facet
	for _, iface := range g.Interfaces {
		src := g.Blocks[iface.SrcBlock]
		facet := src.Facets[iface.Direction]
		axis := iface.Direction.Axis()
		a0, a1 := inPlaneAxes[axis][0], inPlaneAxes[axis][1]
		lo0, hi0 := iface.nodeRange(a0)
		lo1, hi1 := iface.nodeRange(a1)
		facet.SetInterface(iface, lo0, hi0, lo1, hi1)
	}

	// every facet cell left unclaimed by an interface is a physical
	// boundary; reflecting walls are the only kind this engine implements
	for _, b := range g.Blocks {
		for _, facet := range b.Facets {
			facet.FillDefault(BoundaryCondition{Kind: Reflecting})
		}
	}

	return g, nil
}
