// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guide

import (
	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/chk"
)

// bruteForceLocator scans every triangle; adequate at guide-mesh sizes
// per spec.md §4.2/§9.
type bruteForceLocator struct{}

func (bruteForceLocator) Locate(m *Mesh, x, y float64) int {
	best, bestSlack := -1, -1.0
	for i, t := range m.T {
		p1, p2, p3 := m.V[t[0]], m.V[t[1]], m.V[t[2]]
		w1, w2, w3, ok := geom.Barycentric(x, y, p1, p2, p3)
		if !ok {
			continue
		}
		if geom.InTriangle(w1, w2, w3, 1e-9) {
			return i
		}
		// not inside: remember the triangle whose worst (most negative)
		// weight is least bad, to use as a clamp target if (x,y) turns
		// out to be outside the hull entirely
		slack := minOf3(w1, w2, w3)
		if best < 0 || slack > bestSlack {
			best, bestSlack = i, slack
		}
	}
	if best < 0 {
		// m.T is guaranteed non-empty by New/NewFromPoints
		return 0
	}
	return best
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// binLocator narrows the brute-force scan using a gm.Bins-backed index
// over triangle centroids: it tests the one triangle whose centroid is
// closest to (x,y) before falling back to a full scan. This is
// the BVH-lite strategy spec.md §9 allows in place of a true AABB tree,
// grounded on the same gm.Bins dependency used elsewhere (geom.ProximityIndex).
type binLocator struct {
	idx       *geom.ProximityIndex
	centroids []geom.Point
}

func newBinLocator(m *Mesh) (*binLocator, error) {
	if len(m.T) == 0 {
		return nil, chk.Err("guide: cannot build bin locator for an empty guide mesh")
	}
	xmin, xmax, ymin, ymax := bounds(m.V)
	idx, err := geom.NewProximityIndex(xmin, xmax, ymin, ymax, estimateNdiv(len(m.T)))
	if err != nil {
		return nil, err
	}
	cs := make([]geom.Point, len(m.T))
	for i, t := range m.T {
		p1, p2, p3 := m.V[t[0]], m.V[t[1]], m.V[t[2]]
		cx := (p1.X + p2.X + p3.X) / 3
		cy := (p1.Y + p2.Y + p3.Y) / 3
		cs[i] = geom.Point{X: cx, Y: cy}
		if err := idx.Append(cs[i], i); err != nil {
			return nil, err
		}
	}
	return &binLocator{idx: idx, centroids: cs}, nil
}

func (l *binLocator) Locate(m *Mesh, x, y float64) int {
	if ti, _, ok := l.idx.Closest(x, y); ok {
		t := m.T[ti]
		p1, p2, p3 := m.V[t[0]], m.V[t[1]], m.V[t[2]]
		if w1, w2, w3, ok2 := geom.Barycentric(x, y, p1, p2, p3); ok2 && geom.InTriangle(w1, w2, w3, 1e-9) {
			return ti
		}
	}
	// fall back to a full scan; the nearest centroid is not always the
	// containing triangle for obtuse/irregular guide meshes
	return bruteForceLocator{}.Locate(m, x, y)
}

func bounds(v []geom.Point) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = v[0].X, v[0].X
	ymin, ymax = v[0].Y, v[0].Y
	for _, p := range v[1:] {
		if p.X < xmin {
			xmin = p.X
		}
		if p.X > xmax {
			xmax = p.X
		}
		if p.Y < ymin {
			ymin = p.Y
		}
		if p.Y > ymax {
			ymax = p.Y
		}
	}
	return
}

func estimateNdiv(ntri int) int {
	n := 1
	for n*n < ntri {
		n++
	}
	if n < 2 {
		n = 2
	}
	return n
}
