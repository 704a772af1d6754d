// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package delaunay wraps an external Delaunay triangulation primitive,
// treating it as the opaque collaborator described in spec.md §6: it
// returns a list of CCW triangle index triples for a 2D point set, and
// nothing else in the mesher depends on how that triangulation is
// computed.
package delaunay

import (
	fogleman "github.com/fogleman/delaunay"

	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/chk"
)

// Triangle is a CCW-ordered triple of indices into the point slice that
// was triangulated.
type Triangle [3]int

// Triangulate computes the 2D Delaunay triangulation of pts and returns
// the resulting triangles, each guaranteed counter-clockwise. Returns a
// DegenerateGeometry-flavoured error (via chk.Err) if fewer than 3 points
// are given, or if the underlying library reports zero triangles (all
// points collinear).
func Triangulate(pts []geom.Point) ([]Triangle, error) {
	if len(pts) < 3 {
		return nil, chk.Err("delaunay: need at least 3 points, got %d", len(pts))
	}

	fpts := make([]fogleman.Point, len(pts))
	for i, p := range pts {
		fpts[i] = fogleman.Point{X: p.X, Y: p.Y}
	}

	tri, err := fogleman.Triangulate(fpts)
	if err != nil {
		return nil, chk.Err("delaunay: triangulation failed: %v", err)
	}
	if len(tri.Triangles) == 0 {
		return nil, chk.Err("delaunay: degenerate point set (all points collinear)")
	}

	ntri := len(tri.Triangles) / 3
	out := make([]Triangle, 0, ntri)
	seen := make([]bool, len(pts))
	for t := 0; t < ntri; t++ {
		i := tri.Triangles[3*t]
		j := tri.Triangles[3*t+1]
		k := tri.Triangles[3*t+2]
		a, b, c := pts[i], pts[j], pts[k]
		if geom.SignedArea(a, b, c) < 0 {
			// the underlying library does not promise a winding order;
			// flip to CCW so every caller can rely on it
			j, k = k, j
		}
		out = append(out, Triangle{i, j, k})
		seen[i], seen[j], seen[k] = true, true, true
	}

	for i, ok := range seen {
		if !ok {
			return nil, chk.Err("delaunay: point %d (%.6f,%.6f) is not covered by any triangle", i, pts[i].X, pts[i].Y)
		}
	}
	return out, nil
}
