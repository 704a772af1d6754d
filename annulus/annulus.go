// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package annulus implements the cylindrical-annulus domain variant
// mentioned but not specified by spec.md §1: a sector of an annulus
// bounded by an inner radius, an outer radius and an angular span. It
// implements place.Domain so the rectangle's seeding algorithm
// (place.Seed) applies unchanged; boundary classes are reused from
// geom.Class (BoundaryBottom/Top/Left/Right stand for inner-radius,
// outer-radius, start-edge, end-edge respectively) rather than adding
// four annulus-only constants, so every package that already
// understands geom.Class keeps working.
package annulus

import (
	"math"

	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gomesher/place"
)

// Domain is a sector [ThetaStart,ThetaEnd] of an annulus with inner
// radius Rin and outer radius Rout, centered at (Cx,Cy). Angles are in
// radians, measured from the +x axis, ThetaEnd > ThetaStart.
type Domain struct {
	Cx, Cy               float64
	Rin, Rout            float64
	ThetaStart, ThetaEnd float64
}

// class aliases: the annulus reuses geom.Class's four boundary slots.
const (
	InnerRadius = geom.BoundaryBottom
	OuterRadius = geom.BoundaryTop
	StartEdge   = geom.BoundaryLeft
	EndEdge     = geom.BoundaryRight
)

// Extents implements place.Domain: the axis-aligned box covering the
// sector, computed by sampling the four corners and, when the sector
// spans a cardinal direction, the corresponding extreme point on the
// outer arc.
func (d Domain) Extents() (xmin, xmax, ymin, ymax float64) {
	pts := []geom.Point{
		d.polar(d.Rin, d.ThetaStart), d.polar(d.Rin, d.ThetaEnd),
		d.polar(d.Rout, d.ThetaStart), d.polar(d.Rout, d.ThetaEnd),
	}
	xmin, xmax = pts[0].X, pts[0].X
	ymin, ymax = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
		ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
	}
	for _, axis := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if axis >= d.ThetaStart && axis <= d.ThetaEnd {
			p := d.polar(d.Rout, axis)
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
	}
	return
}

// Contains implements place.Domain.
func (d Domain) Contains(x, y float64) bool {
	r := math.Hypot(x-d.Cx, y-d.Cy)
	if r < d.Rin-1e-12 || r > d.Rout+1e-12 {
		return false
	}
	theta := d.normalizeTheta(math.Atan2(y-d.Cy, x-d.Cx))
	return theta >= d.ThetaStart-1e-12 && theta <= d.ThetaEnd+1e-12
}

// Centroid implements place.Domain: the midpoint in (r,theta), mapped
// back to (x,y) -- the representative point place.Interior evaluates
// HFunc at for uniform lattice spacing (spec.md §4.3).
func (d Domain) Centroid() (x, y float64) {
	rMid := 0.5 * (d.Rin + d.Rout)
	thetaMid := 0.5 * (d.ThetaStart + d.ThetaEnd)
	p := d.polar(rMid, thetaMid)
	return p.X, p.Y
}

// DiscretizeBoundary implements place.Domain: the inner arc, the outer
// arc, and the two straight radial edges, each placed with
// round(length/h)+1 points per spec.md §4.3, stitched so corners are
// shared between adjacent sides exactly as place.Rectangle does.
func (d Domain) DiscretizeBoundary(h place.HFunc) []geom.Point {
	arc := func(r, t0, t1 float64, class geom.Class) []geom.Point {
		mid := d.polar(r, 0.5*(t0+t1))
		hLen := h(mid.X, mid.Y)
		length := r * (t1 - t0)
		n := int(math.Round(length/hLen)) + 1
		if n < 2 {
			n = 2
		}
		pts := make([]geom.Point, n)
		for i := 0; i < n; i++ {
			t := t0 + float64(i)/float64(n-1)*(t1-t0)
			pts[i] = d.polar(r, t)
			pts[i].Class = class
		}
		pts[0].Class = geom.Corner
		pts[n-1].Class = geom.Corner
		return pts
	}
	radial := func(t, r0, r1 float64, class geom.Class) []geom.Point {
		p0, p1 := d.polar(r0, t), d.polar(r1, t)
		mx, my := 0.5*(p0.X+p1.X), 0.5*(p0.Y+p1.Y)
		hLen := h(mx, my)
		length := r1 - r0
		n := int(math.Round(length/hLen)) + 1
		if n < 2 {
			n = 2
		}
		pts := make([]geom.Point, n)
		for i := 0; i < n; i++ {
			s := float64(i) / float64(n-1)
			pts[i] = d.polar(r0+s*(r1-r0), t)
			pts[i].Class = class
		}
		pts[0].Class = geom.Corner
		pts[n-1].Class = geom.Corner
		return pts
	}

	inner := arc(d.Rin, d.ThetaStart, d.ThetaEnd, InnerRadius)
	end := radial(d.ThetaEnd, d.Rin, d.Rout, EndEdge)
	outer := arc(d.Rout, d.ThetaEnd, d.ThetaStart, OuterRadius)
	start := radial(d.ThetaStart, d.Rout, d.Rin, StartEdge)

	var out []geom.Point
	out = append(out, inner...)
	out = append(out, end[1:]...)
	out = append(out, outer[1:]...)
	out = append(out, start[1:len(start)-1]...)
	return out
}

func (d Domain) polar(r, theta float64) geom.Point {
	return geom.Point{X: d.Cx + r*math.Cos(theta), Y: d.Cy + r*math.Sin(theta)}
}

// normalizeTheta shifts theta into [ThetaStart, ThetaStart+2π) so a
// sector crossing the +x axis branch cut still compares correctly.
func (d Domain) normalizeTheta(theta float64) float64 {
	for theta < d.ThetaStart {
		theta += 2 * math.Pi
	}
	for theta >= d.ThetaStart+2*math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}
