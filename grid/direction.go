// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the block/interface data model, the domain
// loader and LPT partitioner described for the structured-grid solver
package grid

import "github.com/cpmech/gosl/chk"

// Direction is the closed enumeration of the six block face directions
type Direction int

// face directions
const (
	IMinus Direction = iota
	IPlus
	JMinus
	JPlus
	KMinus
	KPlus
)

// directions is the ordered list of all six face directions, in the order
// a Block stores its Facets
var directions = [6]Direction{IMinus, IPlus, JMinus, JPlus, KMinus, KPlus}

// Axis returns 0,1,2 for I,J,K
func (d Direction) Axis() int {
	return int(d) / 2
}

// IsLow returns true for I-,J-,K- (the "minus" faces)
func (d Direction) IsLow() bool {
	return int(d)%2 == 0
}

// Opposite returns the direction on the other side of the same axis
func (d Direction) Opposite() Direction {
	if d.IsLow() {
		return d + 1
	}
	return d - 1
}

// String returns a short human-readable tag, e.g. "I-", "K+"
func (d Direction) String() string {
	axis := "IJK"[d.Axis()]
	if d.IsLow() {
		return string(axis) + "-"
	}
	return string(axis) + "+"
}

// directionFromDegenerateAxis derives a Direction from the axis that is
// degenerate in an interface's node-coordinate patch (lo==hi on that axis)
// and whether that shared coordinate sits at the low or high end of the
// block's own node range along the axis (see spec §4.1, E6).
func directionFromDegenerateAxis(axis int, coord, nodesOnAxis int) Direction {
	switch axis {
	case 0:
		if coord == 0 {
			return IMinus
		}
		if coord == nodesOnAxis-1 {
			return IPlus
		}
	case 1:
		if coord == 0 {
			return JMinus
		}
		if coord == nodesOnAxis-1 {
			return JPlus
		}
	case 2:
		if coord == 0 {
			return KMinus
		}
		if coord == nodesOnAxis-1 {
			return KPlus
		}
	}
	chk.Panic("grid: interface patch is not on a block boundary: axis=%d coord=%d nodes=%d", axis, coord, nodesOnAxis)
	return IMinus
}
