// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package smooth implements the weighted-Laplacian interior smoother of
// spec.md §4.7: a single sweep moving every interior node to the
// weighted centroid of its neighbours, rejecting any move that inverts
// a triangle.
package smooth

import (
	"github.com/cpmech/gomesher/bars"
	"github.com/cpmech/gomesher/delaunay"
	"github.com/cpmech/gomesher/geom"
)

// Result reports what a Sweep call did: how many nodes moved and how
// many moves were undone. Report.RollbackCount does not include these.
type Result struct {
	Moved      int // interior nodes actually relocated
	RolledBack int // nodes whose move was undone because it inverted a triangle
}

// Sweep performs one Laplacian smoothing pass over P in place: every
// interior point is moved to Σ w_ij p_j / Σ w_ij with w_ij = 1/L0Bar_ij
// (spec.md §4.7), then T (the current triangulation, used only to
// detect inversion) is checked triangle-by-triangle; any triangle that
// would invert (signed area <= 0) because one of its vertices moved
// causes that vertex's move to be rolled back to its pre-sweep
// position. Corners and boundary points never move (spec.md §3: class
// is immutable).
func Sweep(P []geom.Point, T []delaunay.Triangle, Bars []bars.Bar, L0Bar []float64) Result {
	n := len(P)
	sumW := make([]float64, n)
	sumX := make([]float64, n)
	sumY := make([]float64, n)

	for bi, b := range Bars {
		w := 1.0 / L0Bar[bi]
		i, j := b[0], b[1]
		sumW[i] += w
		sumX[i] += w * P[j].X
		sumY[i] += w * P[j].Y
		sumW[j] += w
		sumX[j] += w * P[i].X
		sumY[j] += w * P[i].Y
	}

	old := make([]geom.Point, n)
	copy(old, P)

	var res Result
	for i := range P {
		if P[i].Class.IsFixed() || P[i].Class.IsBoundary() {
			continue
		}
		if sumW[i] == 0 {
			continue
		}
		P[i].X = sumX[i] / sumW[i]
		P[i].Y = sumY[i] / sumW[i]
		res.Moved++
	}

	// reject per-node: undo any moved vertex that is incident to an
	// inverted triangle, then re-check every triangle, until no more
	// rollbacks occur or every moved node has been rolled back.
	for {
		rolledThisPass := false
		for _, t := range T {
			if geom.SignedArea(P[t[0]], P[t[1]], P[t[2]]) > 0 {
				continue
			}
			for _, v := range t {
				if P[v].X != old[v].X || P[v].Y != old[v].Y {
					P[v] = old[v]
					res.Moved--
					res.RolledBack++
					rolledThisPass = true
				}
			}
		}
		if !rolledThisPass {
			break
		}
	}
	return res
}
