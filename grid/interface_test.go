// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_interface_halo_len_E501 exercises spec §8's E5 with concrete
// numbers: a patch spanning 4 cells in j and 5 cells in k, shadow depth
// 3, must report a 540-float (4320-byte) halo buffer. Test_halo_buffer_
// roundtrip01 in load_test.go only checks len(f.Halo) == f.HaloLen(),
// which holds even if HaloLen's formula itself is wrong; this test pins
// the formula to the spec's literal numbers instead.
func Test_interface_halo_len_E501(tst *testing.T) {

	chk.PrintTitle("interface_halo_len_E501")

	// degenerate on I (I0==I1==0, a low face); J spans 4 cells, K spans 5
	f := NewInterface(1, 0, 1, 0, 0, 0, 4, 0, 5, 2, 5, 6, 3)

	chk.IntAssert(int(f.Direction), int(IMinus))

	du, dv := f.PatchDims()
	chk.IntAssert(du, 4)
	chk.IntAssert(dv, 5)

	chk.IntAssert(f.PatchCells(), 20)
	chk.IntAssert(f.HaloLen(), 540)

	const bytesPerFloat64 = 8
	chk.IntAssert(f.HaloLen()*bytesPerFloat64, 4320)
}
