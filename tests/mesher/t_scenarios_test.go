// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesher_test holds end-to-end scenario tests exercising the
// full driver, mirroring the teacher's tests/solid layout.
package mesher_test

import (
	"context"
	"testing"

	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gomesher/guide"
	"github.com/cpmech/gomesher/mesher"
	"github.com/cpmech/gomesher/place"
	"github.com/cpmech/gosl/chk"
)

func Test_scenario01_unitSquareRegular(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario01_unitSquareRegular")

	s := mesher.Settings{H0: 0.1, Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1, QTol: 0.6, MeanQTol: 0.85}
	dom := place.Rectangle{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1}
	d, err := mesher.NewDriver(s, dom, nil, place.InteriorOptions{})
	if err != nil {
		tst.Fatalf("NewDriver failed: %v", err)
	}
	if err := d.Run(context.Background()); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	if !d.Report.Converged {
		tst.Fatalf("expected convergence on a unit square with h0=0.1, worst_q=%.4f mean_q=%.4f", d.Report.WorstQ, d.Report.MeanQ)
	}
	// an 11x11 regular grid on the unit square has 121 boundary+interior
	// nodes; allow the density controller some slack around that count
	n := len(d.Mesh.P)
	if n < 100 || n > 145 {
		tst.Errorf("expected roughly 121 nodes for a unit square with h0=0.1, got %d", n)
	}
	checkUniversalInvariants(tst, d)
}

func Test_scenario03_degenerateGuideMesh(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario03_degenerateGuideMesh")

	g, err := guide.NewRegular(0, 1, 0, 1, 0.1)
	if err != nil {
		tst.Fatalf("NewRegular failed: %v", err)
	}
	s := mesher.Settings{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1, Refinement: mesher.RefinementGuideMesh, QTol: 0.6, MeanQTol: 0.85}
	dom := place.Rectangle{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1}
	dGuide, err := mesher.NewDriver(s, dom, g, place.InteriorOptions{})
	if err != nil {
		tst.Fatalf("NewDriver (guide) failed: %v", err)
	}

	sReg := mesher.Settings{H0: 0.1, Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1, QTol: 0.6, MeanQTol: 0.85}
	dReg, err := mesher.NewDriver(sReg, dom, nil, place.InteriorOptions{})
	if err != nil {
		tst.Fatalf("NewDriver (regular) failed: %v", err)
	}

	nGuide := len(dGuide.Mesh.P)
	nReg := len(dReg.Mesh.P)
	diff := float64(nGuide-nReg) / float64(nReg)
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.01 {
		tst.Errorf("degenerate guide mesh node count (%d) should match regular mode (%d) within 1%%, diff=%.4f", nGuide, nReg, diff)
	}
}

func Test_scenario02_guideRefinedWindowDensity(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario02_guideRefinedWindowDensity")

	win := guide.ZoneWindow{Xmin: 0.35, Xmax: 0.65, Ymin: 0.35, Ymax: 0.65}
	g, err := guide.NewZoned(0, 1, 0, 1, win, 0.1, 0.025) // 4x finer inside the window
	if err != nil {
		tst.Fatalf("NewZoned failed: %v", err)
	}

	s := mesher.Settings{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1, Refinement: mesher.RefinementGuideMesh, QTol: 0.55, MeanQTol: 0.80}
	dom := place.Rectangle{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1}
	d, err := mesher.NewDriver(s, dom, g, place.InteriorOptions{})
	if err != nil {
		tst.Fatalf("NewDriver failed: %v", err)
	}
	if err := d.Run(context.Background()); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	checkUniversalInvariants(tst, d)

	inWindow := func(xmin, xmax, ymin, ymax float64) int {
		n := 0
		for _, p := range d.Mesh.P {
			if p.X >= xmin && p.X <= xmax && p.Y >= ymin && p.Y <= ymax {
				n++
			}
		}
		return n
	}
	refined := inWindow(0.35, 0.65, 0.35, 0.65)
	// equal-area (0.3x0.3) window in a corner, away from the refinement
	corner := inWindow(0, 0.3, 0, 0.3)
	if corner == 0 {
		tst.Fatalf("corner window unexpectedly empty, cannot compare densities")
	}
	if refined < 8*corner {
		tst.Errorf("refined-window node count (%d) should be at least 8x the equal-area corner window (%d)", refined, corner)
	}
}

func Test_scenario04_rectangleBoundaryCounts(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario04_rectangleBoundaryCounts")

	dom := place.Rectangle{Xmin: 0, Xmax: 2, Ymin: 0, Ymax: 1}
	h := func(x, y float64) float64 { return 0.25 }
	pts := dom.DiscretizeBoundary(h)

	corners, bottom, top, left, right := 0, 0, 0, 0, 0
	for _, p := range pts {
		switch p.Class {
		case geom.Corner:
			corners++
		case geom.BoundaryBottom:
			bottom++
		case geom.BoundaryTop:
			top++
		case geom.BoundaryLeft:
			left++
		case geom.BoundaryRight:
			right++
		}
	}
	chk.IntAssert(corners, 4)
	// long sides (length 2, h=0.25): round(2/0.25)+1 = 9 points including
	// corners, so 7 non-corner bottom/top points
	chk.IntAssert(bottom, 7)
	chk.IntAssert(top, 7)
	// short sides (length 1, h=0.25): round(1/0.25)+1 = 5 points including
	// corners, so 3 non-corner left/right points
	chk.IntAssert(left, 3)
	chk.IntAssert(right, 3)
}

// checkUniversalInvariants asserts the properties spec.md §8 requires of
// every returned mesh.
func checkUniversalInvariants(tst *testing.T, d *mesher.Driver) {
	m := d.Mesh
	for _, t := range m.T {
		if geom.SignedArea(m.P[t[0]], m.P[t[1]], m.P[t[2]]) <= 0 {
			tst.Errorf("triangle %v has non-positive signed area", t)
		}
	}
	seen := make(map[[2]int]bool)
	for _, b := range m.B {
		if b[0] >= b[1] {
			tst.Errorf("bar %v is not canonicalized (a<b)", b)
		}
		key := [2]int{b[0], b[1]}
		if seen[key] {
			tst.Errorf("bar %v is duplicated", b)
		}
		seen[key] = true
	}
	if d.Report.Converged {
		if d.Report.WorstQ < d.Settings.QTol {
			tst.Errorf("converged but worst_q=%.4f < q_tol=%.4f", d.Report.WorstQ, d.Settings.QTol)
		}
		if d.Report.MeanQ < d.Settings.MeanQTol {
			tst.Errorf("converged but mean_q=%.4f < mean_q_tol=%.4f", d.Report.MeanQ, d.Settings.MeanQTol)
		}
	}
}
