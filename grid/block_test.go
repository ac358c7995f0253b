// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_block_cartesian01(tst *testing.T) {

	chk.PrintTitle("block_cartesian01")

	b := NewBlock(0, 2, 3, 4)
	b.Activate()
	b.BuildCartesian(2, 3, 4)

	chk.IntAssert(b.NCells(), 24)

	min, max := b.Bounds()
	chk.Scalar(tst, "min.X", 1e-15, min.X, 0)
	chk.Scalar(tst, "max.X", 1e-15, max.X, 2)
	chk.Scalar(tst, "max.Y", 1e-15, max.Y, 3)
	chk.Scalar(tst, "max.Z", 1e-15, max.Z, 4)

	c := b.Cell(0, 0, 0)
	chk.Scalar(tst, "cell volume", 1e-12, c.Volume, 1.0)
	chk.Scalar(tst, "areaI", 1e-12, c.Areas[IMinus], 1.0)
}

func Test_block_boundary_cell01(tst *testing.T) {

	chk.PrintTitle("block_boundary_cell01")

	b := NewBlock(0, 4, 4, 4)
	b.Activate()
	b.BuildCartesian(4, 4, 4)

	u, v := b.FaceCellCoord(IPlus, 3, 1, 2)
	chk.IntAssert(u, 1)
	chk.IntAssert(v, 2)

	// depth 0 at the I+ face is the last cell along i
	bc := b.BoundaryCell(IPlus, 1, 2, 0)
	if bc != b.Cell(3, 1, 2) {
		tst.Errorf("BoundaryCell(IPlus, depth=0) should be the last i-layer cell")
	}

	// depth 0 at the I- face is the first cell along i
	bc2 := b.BoundaryCell(IMinus, 1, 2, 0)
	if bc2 != b.Cell(0, 1, 2) {
		tst.Errorf("BoundaryCell(IMinus, depth=0) should be the first i-layer cell")
	}
}
