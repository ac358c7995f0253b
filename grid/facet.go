// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gosl/chk"

// inPlaneAxes gives, for a face direction's axis, the two axes that vary
// across the facet. This single lookup table is what lets one Facet type
// serve all three face orientations instead of three Facet_I/J/K subtypes
// (see DESIGN.md).
var inPlaneAxes = [3][2]int{
	{1, 2}, // I faces vary over (j,k)
	{0, 2}, // J faces vary over (i,k)
	{0, 1}, // K faces vary over (i,j)
}

// Facet is one grid face of a block: an (H,W) array of Border slots in
// the facet's own local (u,v) coordinates, row-major.
type Facet struct {
	Direction Direction
	H, W      int
	Borders   []Border // len H*W; nil entry means "none"
}

// NewFacet allocates a Facet of (h,w) cells, all borders unset
func NewFacet(dir Direction, h, w int) *Facet {
	return &Facet{Direction: dir, H: h, W: w, Borders: make([]Border, h*w)}
}

func (f *Facet) idx(u, v int) int {
	if u < 0 || u >= f.H || v < 0 || v >= f.W {
		chk.Panic("grid: facet index out of range: u=%d v=%d H=%d W=%d", u, v, f.H, f.W)
	}
	return u*f.W + v
}

// At returns the Border at (u,v), or nil if none
func (f *Facet) At(u, v int) Border {
	return f.Borders[f.idx(u, v)]
}

// IsIface returns whether the slot at (u,v) holds an Interface
func (f *Facet) IsIface(u, v int) bool {
	b := f.At(u, v)
	return b != nil && b.IsInterface()
}

// Symbol returns the reporting symbol of the slot at (u,v): '0','I','C'
func (f *Facet) Symbol(u, v int) byte {
	b := f.At(u, v)
	if b == nil {
		return '0'
	}
	return b.Symbol()
}

// SetBorder writes border into every (u,v) with u0<=u<u1, v0<=v<v1
func (f *Facet) SetBorder(border Border, u0, u1, v0, v1 int) {
	for u := u0; u < u1; u++ {
		for v := v0; v < v1; v++ {
			f.Borders[f.idx(u, v)] = border
		}
	}
}

// SetInterface marks every cell of the patch (u0:u1, v0:v1) as belonging
// to iface
func (f *Facet) SetInterface(iface *Interface, u0, u1, v0, v1 int) {
	f.SetBorder(iface, u0, u1, v0, v1)
}

// FillDefault writes border into every slot that has none set. Any
// facet cell the .ibc file doesn't claim as an interface is a physical
// boundary (spec §4.1): the loader calls this once all interfaces are
// bound, with a reflecting wall as the default condition.
func (f *Facet) FillDefault(border Border) {
	for i, b := range f.Borders {
		if b == nil {
			f.Borders[i] = border
		}
	}
}
