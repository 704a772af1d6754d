// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spring

import (
	"github.com/cpmech/gomesher/bars"
	"github.com/cpmech/gomesher/delaunay"
	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/la"
)

// stiffness is k_i in spec.md §4.5: every bar has unit stiffness in
// normalized units; relative edge stiffness variation comes entirely
// from the rest length L0Bar.
const stiffness = 1.0

// dofX, dofY return the global equation numbers of point i's x,y DOFs.
func dofX(i int) int { return 2 * i }
func dofY(i int) int { return 2*i + 1 }

// Assembler builds the global stiffness triplet and body-force vector
// for the current point set, bar list and rest lengths. One Assembler is
// used per solver call (spec.md §4.5); it holds no state across calls.
type Assembler struct {
	P     []geom.Point // current nodal positions
	Bars  []bars.Bar   // bar list (from bars.Extract)
	L0Bar []float64    // rest length per bar, aligned with Bars
	Flags Flags

	// T and triangle-local L0 are only needed when Flags.CrossBars or
	// Flags.Balloon is set.
	T  []delaunay.Triangle
	L0 []float64 // per-point desired length, for balloon target area
}

// nDOF returns the total number of degrees of freedom, 2 per point.
func (o *Assembler) nDOF() int { return 2 * len(o.P) }

// Build assembles K (2N x 2N, symmetric positive semi-definite before
// constraints) and rhs (the residual body-force vector, spec.md §4.5)
// from the current bars and, if enabled, cross-bars and balloon forces.
// The returned triplet has not yet had boundary constraints applied; see
// ConstraintApplier.
func (o *Assembler) Build() (*la.Triplet, []float64) {
	n := o.nDOF()
	// rough upper bound on non-zeros: 16 per bar (4x4 block) plus
	// 108 per cross-bar triangle (three 3-node couplings of 36 each) plus
	// headroom of 10 per point for constraint and regularization entries
	nnz := 16*len(o.Bars) + 10*len(o.P)
	if o.Flags.CrossBars {
		nnz += 108 * len(o.T)
	}
	K := new(la.Triplet)
	K.Init(n, n, nnz)
	rhs := make([]float64, n)

	for bi, b := range o.Bars {
		o.addBar(K, rhs, b[0], b[1], stiffness, o.L0Bar[bi])
	}
	if o.Flags.CrossBars {
		o.addCrossBars(K, rhs)
	}
	if o.Flags.Balloon {
		o.addBalloon(rhs)
	}
	return K, rhs
}

// addBar scatters one axial spring's contribution into K and rhs,
// grounded on fem/e_rod.go's AddToKb/AddToRhs pattern: a local tangent
// block plus a local internal-force vector, both scattered via the
// bar's 4-entry DOF map (Umap in the teacher's rod element).
func (o *Assembler) addBar(K *la.Triplet, rhs []float64, a, b int, k, l0 float64) {
	pa, pb := o.P[a], o.P[b]
	dx, dy := geom.Sub(pa, pb)
	L := geom.Dist(pa, pb)
	if L < 1e-14 {
		return // coincident nodes: no well-defined direction, skip (guarded upstream)
	}
	ex, ey := dx/L, dy/L

	// local 4x4 tangent block, in order [ax, ay, bx, by]
	exx, exy, eyy := ex*ex, ex*ey, ey*ey
	local := [4][4]float64{
		{k * exx, k * exy, -k * exx, -k * exy},
		{k * exy, k * eyy, -k * exy, -k * eyy},
		{-k * exx, -k * exy, k * exx, k * exy},
		{-k * exy, -k * eyy, k * exy, k * eyy},
	}
	umap := [4]int{dofX(a), dofY(a), dofX(b), dofY(b)}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			K.Put(umap[i], umap[j], local[i][j])
		}
	}

	// internal force: tension (L > l0) pulls a towards b
	f := k * (L - l0)
	rhs[dofX(a)] += f * ex
	rhs[dofY(a)] += f * ey
	rhs[dofX(b)] -= f * ex
	rhs[dofY(b)] -= f * ey
}

// addCrossBars injects, for each interior triangle, three virtual
// springs from each vertex to the midpoint of the opposite edge
// (spec.md §4.5). Since the midpoint is not itself a node, its
// displacement is modeled as the average of its two defining vertices'
// displacements: the local 2-node axial block above is distributed with
// weight 1 on the vertex and weight 1/2 on each of the edge's endpoints.
func (o *Assembler) addCrossBars(K *la.Triplet, rhs []float64) {
	mult := o.Flags.CrossBarStiffness
	if mult == 0 {
		mult = 1
	}
	for _, t := range o.T {
		for v := 0; v < 3; v++ {
			i := t[v]
			j := t[(v+1)%3]
			k := t[(v+2)%3]
			o.addMidpointSpring(K, rhs, i, j, k, mult*stiffness)
		}
	}
}

// addMidpointSpring assembles a spring from vertex i to the midpoint of
// (j,k). The virtual bar has no entry in Bars/L0Bar, so its rest length
// is taken as half the average of the current lengths of the two real
// edges (i,j) and (i,k).
func (o *Assembler) addMidpointSpring(K *la.Triplet, rhs []float64, i, j, k int, kstiff float64) {
	pi := o.P[i]
	mx, my := geom.Midpoint(o.P[j], o.P[k])
	dx := mx - pi.X
	dy := my - pi.Y
	L := geom.Dist(pi, geom.Point{X: mx, Y: my})
	if L < 1e-14 {
		return
	}
	ex, ey := dx/L, dy/L
	l0 := 0.5 * (geom.Dist(o.P[i], o.P[j]) + geom.Dist(o.P[i], o.P[k])) * 0.5 // target: roughly the average half-edge length

	// weights: vertex i has weight 1, midpoint endpoints j,k each weight 0.5
	wi, wj, wk := 1.0, 0.5, 0.5
	dofs := [3]int{i, j, k}
	weights := [3]float64{wi, -wj, -wk} // midpoint displacement subtracts from i's relative motion, split across j,k

	exx, exy, eyy := ex*ex, ex*ey, ey*ey
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			wab := kstiff * weights[a] * weights[b]
			K.Put(dofX(dofs[a]), dofX(dofs[b]), wab*exx)
			K.Put(dofX(dofs[a]), dofY(dofs[b]), wab*exy)
			K.Put(dofY(dofs[a]), dofX(dofs[b]), wab*exy)
			K.Put(dofY(dofs[a]), dofY(dofs[b]), wab*eyy)
		}
	}

	f := kstiff * (L - l0)
	rhs[dofX(i)] += f * ex
	rhs[dofY(i)] += f * ey
	rhs[dofX(j)] -= 0.5 * f * ex
	rhs[dofY(j)] -= 0.5 * f * ey
	rhs[dofX(k)] -= 0.5 * f * ex
	rhs[dofY(k)] -= 0.5 * f * ey
}

// addBalloon adds, for every triangle, an outward force on each vertex
// proportional to (L0_target² − A_triangle), directed from the opposite
// edge's midpoint towards the vertex (spec.md §4.5), to push nearly-
// collinear triangles apart. This is a pure body-force term: it has no
// stiffness contribution, the same way gravity loads enter fb in the
// teacher's element AddToRhs without touching AddToKb.
func (o *Assembler) addBalloon(rhs []float64) {
	coef := o.Flags.BalloonCoef
	if coef == 0 {
		coef = 0.1
	}
	for _, t := range o.T {
		p := [3]geom.Point{o.P[t[0]], o.P[t[1]], o.P[t[2]]}
		l0 := [3]float64{o.L0[t[0]], o.L0[t[1]], o.L0[t[2]]}
		l0Target := (l0[0] + l0[1] + l0[2]) / 3
		A := geom.SignedArea(p[0], p[1], p[2])
		pressure := coef * (l0Target*l0Target - A)
		for v := 0; v < 3; v++ {
			opp1 := p[(v+1)%3]
			opp2 := p[(v+2)%3]
			// normal of the edge opposite vertex v; for a CCW triangle,
			// rotating the edge direction 90° CCW gives the normal
			// pointing into the triangle (toward v)
			ex, ey := geom.Sub(opp1, opp2)
			nx, ny := -ey, ex
			norm := geom.Dist(geom.Point{}, geom.Point{X: nx, Y: ny})
			if norm < 1e-14 {
				continue
			}
			nx, ny = nx/norm, ny/norm
			// flip so the normal points from the opposite edge's midpoint
			// towards v, i.e. away from the edge (outward, pushing v
			// further from the edge it is collapsing onto)
			mx, my := geom.Midpoint(opp1, opp2)
			if (mx-p[v].X)*nx+(my-p[v].Y)*ny > 0 {
				nx, ny = -nx, -ny
			}
			idx := t[v]
			rhs[dofX(idx)] += pressure * nx
			rhs[dofY(idx)] += pressure * ny
		}
	}
}
