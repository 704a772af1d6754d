// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guide

import (
	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/chk"
)

// NewRegular builds a degenerate guide mesh covering [xmin,xmax]x[ymin,ymax]
// with a single constant desired length l0 everywhere (spec.md §8
// scenario 3: "degenerate guide mesh (all l0 equal)"). The four domain
// corners are triangulated into two triangles.
func NewRegular(xmin, xmax, ymin, ymax, l0 float64) (*Mesh, error) {
	if l0 <= 0 {
		return nil, chk.Err("guide: l0=%v must be > 0", l0)
	}
	v := []geom.Point{
		{X: xmin, Y: ymin},
		{X: xmax, Y: ymin},
		{X: xmax, Y: ymax},
		{X: xmin, Y: ymax},
	}
	l := []float64{l0, l0, l0, l0}
	return NewFromPoints(v, l)
}

// ZoneWindow describes the axis-aligned refined window at the centre of
// the domain used by NewZoned (spec.md §8 scenario 2).
type ZoneWindow struct {
	Xmin, Xmax, Ymin, Ymax float64
}

// NewZoned builds a coarse/transition/refined guide mesh over
// [xmin,xmax]x[ymin,ymax]: l0Coarse far from the window, l0Refined
// inside it, with a one-ring of transition vertices carrying l0Coarse
// (per spec.md §4.2, "transition vertices carry l0_coarse ... to ensure
// C⁰ continuity of L0 across the interface") so the field is continuous
// across the coarse/transition boundary while still dropping sharply
// into the refined window.
func NewZoned(xmin, xmax, ymin, ymax float64, win ZoneWindow, l0Coarse, l0Refined float64) (*Mesh, error) {
	if l0Coarse <= 0 || l0Refined <= 0 {
		return nil, chk.Err("guide: l0Coarse=%v and l0Refined=%v must both be > 0", l0Coarse, l0Refined)
	}
	if win.Xmin <= xmin || win.Xmax >= xmax || win.Ymin <= ymin || win.Ymax >= ymax {
		return nil, chk.Err("guide: refined window must lie strictly inside the domain")
	}

	// transition ring: a margin around the window, same width as half the
	// gap to the domain boundary on the tighter side, carries l0Coarse
	marginX := 0.5 * minOf2(win.Xmin-xmin, xmax-win.Xmax)
	marginY := 0.5 * minOf2(win.Ymin-ymin, ymax-win.Ymax)
	tXmin, tXmax := win.Xmin-marginX, win.Xmax+marginX
	tYmin, tYmax := win.Ymin-marginY, win.Ymax+marginY

	var v []geom.Point
	var l0 []float64
	add := func(x, y, l float64) {
		v = append(v, geom.Point{X: x, Y: y})
		l0 = append(l0, l)
	}

	// outer (coarse) corners
	add(xmin, ymin, l0Coarse)
	add(xmax, ymin, l0Coarse)
	add(xmax, ymax, l0Coarse)
	add(xmin, ymax, l0Coarse)

	// transition ring corners (coarse L0, ensures continuity at the
	// coarse/transition interface)
	add(tXmin, tYmin, l0Coarse)
	add(tXmax, tYmin, l0Coarse)
	add(tXmax, tYmax, l0Coarse)
	add(tXmin, tYmax, l0Coarse)

	// refined window corners
	add(win.Xmin, win.Ymin, l0Refined)
	add(win.Xmax, win.Ymin, l0Refined)
	add(win.Xmax, win.Ymax, l0Refined)
	add(win.Xmin, win.Ymax, l0Refined)

	return NewFromPoints(v, l0)
}

func minOf2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
