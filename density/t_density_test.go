// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"testing"

	"github.com/cpmech/gomesher/bars"
	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/chk"
)

func Test_reject01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reject01")

	// a line of 3 interior points; bars 0-1 and 1-2 both badly compressed.
	// node 1 is adjacent to both candidates, so once node 0 is rejected
	// (processed first, most-compressed-first with ties broken by index),
	// node 1 is marked ineligible and survives; node 2 is not adjacent to
	// node 0 and is rejected too.
	P := []geom.Point{
		{X: 0, Y: 0, Class: geom.Interior},
		{X: 0.1, Y: 0, Class: geom.Interior},
		{X: 0.2, Y: 0, Class: geom.Interior},
	}
	Bars := []bars.Bar{{0, 1}, {1, 2}}
	L := []float64{0.1, 0.1}
	L0Bar := []float64{1.0, 1.0}

	toDelete := Reject(P, Bars, L, L0Bar, DefaultAlphaReject)
	chk.IntAssert(len(toDelete), 2)
	deleted := map[int]bool{}
	for _, i := range toDelete {
		deleted[i] = true
	}
	if deleted[1] {
		tst.Errorf("node 1 should have been marked ineligible once one of its neighbours was rejected, got %v", toDelete)
	}
}

func Test_reject02_boundarySkipped(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reject02_boundarySkipped")

	P := []geom.Point{
		{X: 0, Y: 0, Class: geom.Corner},
		{X: 0.01, Y: 0, Class: geom.Corner},
	}
	Bars := []bars.Bar{{0, 1}}
	L := []float64{0.01}
	L0Bar := []float64{1.0}

	toDelete := Reject(P, Bars, L, L0Bar, DefaultAlphaReject)
	chk.IntAssert(len(toDelete), 0)
}

func Test_add01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("add01")

	P := []geom.Point{
		{X: 0, Y: 0, Class: geom.BoundaryBottom},
		{X: 2, Y: 0, Class: geom.BoundaryBottom},
		{X: 0, Y: 1, Class: geom.Interior},
		{X: 2, Y: 1, Class: geom.Interior},
	}
	Bars := []bars.Bar{{0, 1}, {2, 3}}
	L := []float64{2.0, 2.0}
	L0Bar := []float64{1.0, 1.0}

	out, err := Add(P, Bars, L, L0Bar, DefaultAlphaAdd, 1e-6)
	if err != nil {
		tst.Fatalf("Add failed: %v", err)
	}
	chk.IntAssert(len(out), 2)
	if out[0].Class != geom.BoundaryBottom {
		tst.Errorf("midpoint of a bottom-boundary bar should be classified BoundaryBottom, got %v", out[0].Class)
	}
	if out[1].Class != geom.Interior {
		tst.Errorf("midpoint of an interior bar should be classified Interior, got %v", out[1].Class)
	}
	chk.Scalar(tst, "mid.x", 1e-12, out[0].X, 1.0)
}

func Test_add02_dedup(tst *testing.T) {

	//verbose()
	chk.PrintTitle("add02_dedup")

	// two overlong bars sharing (nearly) the same midpoint
	P := []geom.Point{
		{X: 0, Y: 0, Class: geom.Interior},
		{X: 2, Y: 0, Class: geom.Interior},
		{X: 1 - 1e-9, Y: 1e-9, Class: geom.Interior},
		{X: 1 + 1e-9, Y: -1e-9, Class: geom.Interior},
	}
	Bars := []bars.Bar{{0, 1}, {2, 3}}
	L := []float64{2.0, 2.0e-9 * 2}
	L0Bar := []float64{1.0, 1e-12}

	out, err := Add(P, Bars, L, L0Bar, DefaultAlphaAdd, 1e-6)
	if err != nil {
		tst.Fatalf("Add failed: %v", err)
	}
	chk.IntAssert(len(out), 1)
}
