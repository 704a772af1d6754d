// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesher ties geom, guide, place, delaunay, bars, spring,
// density, smooth and quality together into the fixed-point
// spring-relaxation loop (spec.md §4.1), owning the one mutable Mesh
// value the way fem.Domain owns a simulation's mutable state.
package mesher

import (
	"github.com/cpmech/gomesher/bars"
	"github.com/cpmech/gomesher/delaunay"
	"github.com/cpmech/gomesher/geom"
)

// Mesh is the central, exclusively-driver-owned data model of spec.md
// §3. Kernels (quality.Evaluate's parallel fan-out, spring's serial
// assembly) only ever receive read-only views of its slices; writes happen in
// Driver.Run alone (spec.md §5 "Shared resources").
type Mesh struct {
	P     []geom.Point        // node positions + class + stable id
	T     []delaunay.Triangle // current Delaunay triangulation of P
	B     []bars.Bar          // unique undirected bars derived from T
	L0    []float64           // per-point desired length, from the guide mesh
	L     []float64           // per-bar actual length (post-solve)
	L0Bar []float64           // per-bar rest length = factor*(L0[a]+L0[b])/2
	Q     []float64           // per-triangle quality, aligned with T
}

// clone returns a deep copy of m, used by Driver for the snapshot/
// rollback discipline spec.md §9 requires around the density and
// smoothing sub-phases.
func (m *Mesh) clone() *Mesh {
	c := &Mesh{
		P:     append([]geom.Point(nil), m.P...),
		T:     append([]delaunay.Triangle(nil), m.T...),
		B:     append([]bars.Bar(nil), m.B...),
		L0:    append([]float64(nil), m.L0...),
		L:     append([]float64(nil), m.L...),
		L0Bar: append([]float64(nil), m.L0Bar...),
		Q:     append([]float64(nil), m.Q...),
	}
	return c
}

// retriangulate re-derives T, B and L0Bar from the current P (spec.md
// §3 "T is a Delaunay triangulation of P after every connectivity
// refresh"). L0Bar is rebuilt from L0 and barLengthFactor; L and Q are
// left to the caller (they depend on the spring solve / quality pass
// that follow a connectivity refresh).
func (m *Mesh) retriangulate(barLengthFactor float64) error {
	T, err := delaunay.Triangulate(m.P)
	if err != nil {
		return err
	}
	m.T = T
	m.B = bars.Extract(T)
	m.L0Bar = make([]float64, len(m.B))
	for i, b := range m.B {
		m.L0Bar[i] = barLengthFactor * 0.5 * (m.L0[b[0]] + m.L0[b[1]])
	}
	return nil
}

// barLengths recomputes L from the current P and B.
func (m *Mesh) barLengths() []float64 {
	L := make([]float64, len(m.B))
	for i, b := range m.B {
		L[i] = geom.Dist(m.P[b[0]], m.P[b[1]])
	}
	return L
}
