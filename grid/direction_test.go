// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_direction01(tst *testing.T) {

	chk.PrintTitle("direction01")

	chk.IntAssert(IMinus.Axis(), 0)
	chk.IntAssert(IPlus.Axis(), 0)
	chk.IntAssert(JMinus.Axis(), 1)
	chk.IntAssert(KPlus.Axis(), 2)

	if !IMinus.IsLow() {
		tst.Errorf("IMinus should be low")
	}
	if IPlus.IsLow() {
		tst.Errorf("IPlus should not be low")
	}

	if IMinus.Opposite() != IPlus {
		tst.Errorf("IMinus.Opposite() should be IPlus")
	}
	if KPlus.Opposite() != KMinus {
		tst.Errorf("KPlus.Opposite() should be KMinus")
	}

	if IMinus.String() != "I-" {
		tst.Errorf("IMinus.String() = %q, want I-", IMinus.String())
	}
	if KPlus.String() != "K+" {
		tst.Errorf("KPlus.String() = %q, want K+", KPlus.String())
	}
}

func Test_direction_from_degenerate01(tst *testing.T) {

	chk.PrintTitle("direction_from_degenerate01")

	if directionFromDegenerateAxis(0, 0, 5) != IMinus {
		tst.Errorf("expected IMinus")
	}
	if directionFromDegenerateAxis(0, 4, 5) != IPlus {
		tst.Errorf("expected IPlus")
	}
	if directionFromDegenerateAxis(2, 0, 3) != KMinus {
		tst.Errorf("expected KMinus")
	}
	if directionFromDegenerateAxis(2, 2, 3) != KPlus {
		tst.Errorf("expected KPlus")
	}
}
