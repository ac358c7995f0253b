// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vector01(tst *testing.T) {

	chk.PrintTitle("vector01")

	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: 5, Z: 6}

	chk.Scalar(tst, "dot", 1e-15, a.Dot(b), 32)
	chk.Scalar(tst, "norm", 1e-15, Vector3{X: 3, Y: 4, Z: 0}.Norm(), 5)

	mid := a.Mid(b)
	chk.Scalar(tst, "mid.X", 1e-15, mid.X, 2.5)
	chk.Scalar(tst, "mid.Y", 1e-15, mid.Y, 3.5)
	chk.Scalar(tst, "mid.Z", 1e-15, mid.Z, 4.5)

	c := a.WithComponent(1, 99)
	chk.Scalar(tst, "WithComponent leaves X", 1e-15, c.X, a.X)
	chk.Scalar(tst, "WithComponent sets Y", 1e-15, c.Y, 99)
	chk.Scalar(tst, "Component reads it back", 1e-15, c.Component(1), 99)
}
