// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package guide implements the guide mesh described in spec.md §4.2: a
// small static triangulation carrying a scalar desired-length field
// (L0) per vertex, queried by point location + barycentric
// interpolation. It is never mutated by the core iteration loop.
package guide

import (
	"github.com/cpmech/gomesher/delaunay"
	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/chk"
)

// Mesh is a static (x,y) triangulation with an L0 scalar per vertex.
type Mesh struct {
	V   []geom.Point      // vertices (only X,Y are meaningful)
	L0  []float64         // desired length at each vertex, L0[i] > 0
	T   []delaunay.Triangle // triangles over V
	loc locator
}

// locator resolves (x,y) to a containing triangle index, or the index of
// the nearest triangle when (x,y) is outside the convex hull.
type locator interface {
	Locate(m *Mesh, x, y float64) (triIdx int)
}

// New builds a guide mesh from explicit vertices, per-vertex L0 values
// and a pre-computed triangulation. Use NewFromPoints to triangulate a
// raw vertex set instead.
func New(v []geom.Point, l0 []float64, t []delaunay.Triangle) (*Mesh, error) {
	if len(v) == 0 {
		return nil, chk.Err("guide: empty guide mesh")
	}
	if len(t) == 0 {
		return nil, chk.Err("guide: guide mesh has no triangles")
	}
	if len(v) != len(l0) {
		return nil, chk.Err("guide: len(V)=%d != len(L0)=%d", len(v), len(l0))
	}
	for i, l := range l0 {
		if l <= 0 {
			return nil, chk.Err("guide: L0[%d]=%v must be > 0", i, l)
		}
	}
	m := &Mesh{V: v, L0: l0, T: t}
	m.loc = bruteForceLocator{}
	return m, nil
}

// NewFromPoints triangulates v by Delaunay and builds the guide mesh.
func NewFromPoints(v []geom.Point, l0 []float64) (*Mesh, error) {
	if len(v) < 3 {
		return nil, chk.Err("guide: need at least 3 vertices to triangulate, got %d", len(v))
	}
	t, err := delaunay.Triangulate(v)
	if err != nil {
		return nil, chk.Err("guide: triangulation of guide mesh failed: %v", err)
	}
	return New(v, l0, t)
}

// UseBinLocator swaps the point-location strategy to a gm.Bins-backed
// locator, appropriate for larger guide meshes (spec.md §9: "precompute
// triangle AABBs + a flat BVH, or accept O(N_g) scan for small guide
// meshes"). The default (brute force) is appropriate for the guide
// meshes spec.md targets.
func (m *Mesh) UseBinLocator() error {
	l, err := newBinLocator(m)
	if err != nil {
		return err
	}
	m.loc = l
	return nil
}

// Interpolate returns the desired length L0 at (x,y): locate the
// containing triangle, compute barycentric weights, return the weighted
// sum of L0 at that triangle's vertices. Points outside the convex hull
// of V are clamped to the nearest triangle.
func (m *Mesh) Interpolate(x, y float64) float64 {
	ti := m.loc.Locate(m, x, y)
	t := m.T[ti]
	p1, p2, p3 := m.V[t[0]], m.V[t[1]], m.V[t[2]]
	w1, w2, w3, ok := geom.Barycentric(x, y, p1, p2, p3)
	if !ok {
		// degenerate triangle (shouldn't happen for a valid Delaunay
		// guide mesh); fall back to the nearest vertex's L0
		return m.nearestVertexL0(x, y)
	}
	if !geom.InTriangle(w1, w2, w3, 1e-6) {
		// clamp weights to the triangle (point was outside the hull)
		w1, w2, w3 = clamp(w1), clamp(w2), clamp(w3)
		sum := w1 + w2 + w3
		if sum > 0 {
			w1, w2, w3 = w1/sum, w2/sum, w3/sum
		}
	}
	return w1*m.L0[t[0]] + w2*m.L0[t[1]] + w3*m.L0[t[2]]
}

func clamp(w float64) float64 {
	if w < 0 {
		return 0
	}
	return w
}

func (m *Mesh) nearestVertexL0(x, y float64) float64 {
	best, bestD := 0, -1.0
	for i, v := range m.V {
		d := geom.Dist(v, geom.Point{X: x, Y: y})
		if bestD < 0 || d < bestD {
			best, bestD = i, d
		}
	}
	return m.L0[best]
}
