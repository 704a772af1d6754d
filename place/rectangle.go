// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package place

import (
	"math"

	"github.com/cpmech/gomesher/geom"
)

// Rectangle is the domain of spec.md's primary mesher target: an
// axis-aligned box [Xmin,Xmax]x[Ymin,Ymax].
type Rectangle struct {
	Xmin, Xmax, Ymin, Ymax float64
}

// Extents implements Domain.
func (r Rectangle) Extents() (xmin, xmax, ymin, ymax float64) {
	return r.Xmin, r.Xmax, r.Ymin, r.Ymax
}

// Contains implements Domain.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.Xmin && x <= r.Xmax && y >= r.Ymin && y <= r.Ymax
}

// Centroid implements Domain.
func (r Rectangle) Centroid() (x, y float64) {
	return 0.5 * (r.Xmin + r.Xmax), 0.5 * (r.Ymin + r.Ymax)
}

// DiscretizeBoundary implements Domain. Along each side, round(length/h)+1
// equally spaced points are placed, where h is evaluated at the side's
// midpoint (spec.md §4.3). Corners are shared between adjacent sides and
// are emitted exactly once, classed Corner.
func (r Rectangle) DiscretizeBoundary(h HFunc) []geom.Point {
	var out []geom.Point

	side := func(x0, y0, x1, y1 float64, midClass geom.Class) []geom.Point {
		mx, my := 0.5*(x0+x1), 0.5*(y0+y1)
		hLen := h(mx, my)
		length := math.Hypot(x1-x0, y1-y0)
		n := int(math.Round(length/hLen)) + 1
		if n < 2 {
			n = 2
		}
		pts := make([]geom.Point, n)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)
			pts[i] = geom.Point{X: x0 + t*(x1-x0), Y: y0 + t*(y1-y0), Class: midClass}
		}
		pts[0].Class = geom.Corner
		pts[n-1].Class = geom.Corner
		return pts
	}

	bottom := side(r.Xmin, r.Ymin, r.Xmax, r.Ymin, geom.BoundaryBottom)
	right := side(r.Xmax, r.Ymin, r.Xmax, r.Ymax, geom.BoundaryRight)
	top := side(r.Xmax, r.Ymax, r.Xmin, r.Ymax, geom.BoundaryTop)
	left := side(r.Xmin, r.Ymax, r.Xmin, r.Ymin, geom.BoundaryLeft)

	// stitch the four sides, dropping the duplicated corner at the start
	// of each side after the first
	out = append(out, bottom...)
	out = append(out, right[1:]...)
	out = append(out, top[1:]...)
	out = append(out, left[1:len(left)-1]...) // left's last point == bottom's first (shared corner)

	return out
}
