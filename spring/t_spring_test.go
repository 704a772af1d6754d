// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spring

import (
	"testing"

	"github.com/cpmech/gomesher/bars"
	"github.com/cpmech/gomesher/delaunay"
	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/chk"
)

func Test_assembleBar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembleBar01")

	// two points 1.0 apart, rest length 0.8 => bar is stretched, tension
	// pulls the points together
	P := []geom.Point{
		{X: 0, Y: 0, Class: geom.Corner},
		{X: 1, Y: 0, Class: geom.Corner},
	}
	asm := &Assembler{
		P:     P,
		Bars:  []bars.Bar{{0, 1}},
		L0Bar: []float64{0.8},
		Flags: DefaultFlags(),
	}
	_, rhs := asm.Build()

	// rhs on point 0 (x) should be negative (pulled towards point 1, +x)
	if rhs[dofX(0)] >= 0 {
		tst.Errorf("expected negative x-residual at point 0, got %v", rhs[dofX(0)])
	}
	// rhs on point 1 (x) should be positive in magnitude equal and opposite
	chk.Scalar(tst, "rhs symmetry", 1e-12, rhs[dofX(0)], -rhs[dofX(1)])
	// no y-component for a horizontal bar
	chk.Scalar(tst, "rhs y@0", 1e-12, rhs[dofY(0)], 0)
	chk.Scalar(tst, "rhs y@1", 1e-12, rhs[dofY(1)], 0)
}

func Test_fixedDOFs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fixedDOFs01")

	fx, fy := FixedDOFs(geom.Corner)
	if !fx || !fy {
		tst.Errorf("corner DOFs should both be fixed")
	}
	fx, fy = FixedDOFs(geom.BoundaryBottom)
	if fx || !fy {
		tst.Errorf("bottom boundary should fix y only, got fixX=%v fixY=%v", fx, fy)
	}
	fx, fy = FixedDOFs(geom.BoundaryLeft)
	if !fx || fy {
		tst.Errorf("left boundary should fix x only, got fixX=%v fixY=%v", fx, fy)
	}
	fx, fy = FixedDOFs(geom.Interior)
	if fx || fy {
		tst.Errorf("interior points should be unconstrained")
	}
}

func Test_addBalloon01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("addBalloon01")

	// a thin, nearly-collinear CCW triangle: apex barely above the base
	P := []geom.Point{
		{X: 0.5, Y: 0.01, Class: geom.Interior}, // apex
		{X: 0, Y: 0, Class: geom.Corner},
		{X: 1, Y: 0, Class: geom.Corner},
	}
	asm := &Assembler{
		P:     P,
		Bars:  []bars.Bar{{0, 1}, {0, 2}, {1, 2}},
		L0Bar: []float64{0.5, 0.5, 1.0},
		L0:    []float64{0.5, 0.5, 0.5},
		T:     []delaunay.Triangle{{0, 1, 2}},
		Flags: Flags{Balloon: true, BalloonCoef: 1.0},
	}
	_, rhs := asm.Build()

	// the apex must be pushed further away from the base it is nearly
	// sitting on, not collapsed onto it
	if rhs[dofY(0)] <= 0 {
		tst.Errorf("expected balloon force on the apex to point away from the opposite (base) edge, got rhs_y=%v", rhs[dofY(0)])
	}
}

func Test_penaltyDOF01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("penaltyDOF01")

	P := []geom.Point{
		{X: 0, Y: 0, Class: geom.Corner},
		{X: 1, Y: 0, Class: geom.BoundaryBottom},
	}
	asm := &Assembler{P: P, Bars: []bars.Bar{{0, 1}}, L0Bar: []float64{0.5}, Flags: DefaultFlags()}
	K, rhs := asm.Build()
	PenaltyDOF{}.Apply(K, rhs, P)

	// all of point 0's DOFs and point 1's y DOF must be zeroed in rhs
	chk.Scalar(tst, "rhs x@0", 1e-12, rhs[dofX(0)], 0)
	chk.Scalar(tst, "rhs y@0", 1e-12, rhs[dofY(0)], 0)
	chk.Scalar(tst, "rhs y@1", 1e-12, rhs[dofY(1)], 0)
}
