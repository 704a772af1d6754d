// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesher

import (
	"testing"

	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/chk"
)

func Test_retriangulate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("retriangulate01")

	m := &Mesh{
		P: []geom.Point{
			{X: 0, Y: 0, Class: geom.Corner},
			{X: 1, Y: 0, Class: geom.Corner},
			{X: 1, Y: 1, Class: geom.Corner},
			{X: 0, Y: 1, Class: geom.Corner},
		},
		L0: []float64{0.5, 0.5, 0.5, 0.5},
	}
	if err := m.retriangulate(1.2); err != nil {
		tst.Fatalf("retriangulate failed: %v", err)
	}
	if len(m.T) == 0 {
		tst.Errorf("expected at least one triangle")
	}
	if len(m.B) == 0 {
		tst.Errorf("expected at least one bar")
	}
	chk.IntAssert(len(m.L0Bar), len(m.B))
	for _, l := range m.L0Bar {
		chk.Scalar(tst, "L0Bar", 1e-12, l, 1.2*0.5)
	}
}

func Test_clone01_isDeep(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clone01_isDeep")

	m := &Mesh{P: []geom.Point{{X: 0, Y: 0}}, L0: []float64{1}}
	c := m.clone()
	c.P[0].X = 99
	if m.P[0].X == 99 {
		tst.Errorf("mutating the clone should not affect the original")
	}
}
