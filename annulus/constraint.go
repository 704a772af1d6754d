// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annulus

import (
	"math"

	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/la"
)

// RadialConstraint implements spring.ConstraintApplier for an annulus
// domain (SPEC_FULL.md supplement): instead of pinning a Cartesian x or
// y DOF as the rectangle's spring.PenaltyDOF does, it pins the local
// radial displacement component on the inner/outer arcs and the local
// angular (tangential) displacement component on the two straight radial
// edges -- the same "large-diagonal penalty" idea as spec.md §4.5,
// applied in a rotated (radial, tangential) frame and projected back
// onto the global (x,y) DOFs.
type RadialConstraint struct {
	Center Domain  // supplies Cx, Cy; Rin/Rout/ThetaStart/ThetaEnd unused here
	Pen    float64 // default 1e12 if zero
}

// Apply implements spring.ConstraintApplier.
func (o RadialConstraint) Apply(K *la.Triplet, rhs []float64, P []geom.Point) {
	pen := o.Pen
	if pen == 0 {
		pen = 1e12
	}
	for i, p := range P {
		switch p.Class {
		case geom.Corner:
			o.pinAxis(K, rhs, i, 1, 0, pen)
			o.pinAxis(K, rhs, i, 0, 1, pen)
		case InnerRadius, OuterRadius:
			nx, ny := o.radialUnit(p)
			o.pinAxis(K, rhs, i, nx, ny, pen)
		case StartEdge, EndEdge:
			nx, ny := o.radialUnit(p)
			// tangential direction is the radial direction rotated 90deg
			o.pinAxis(K, rhs, i, -ny, nx, pen)
		}
	}
}

// pinAxis penalizes displacement along unit direction (nx,ny) at point
// i by adding pen*n*nᵀ to the local 2x2 block of K and zeroing the
// projection of rhs onto that direction -- a rank-1 penalty instead of
// spring.PenaltyDOF's axis-aligned diagonal penalty, since the
// constrained direction is not generally a coordinate axis here.
func (o RadialConstraint) pinAxis(K *la.Triplet, rhs []float64, i int, nx, ny, pen float64) {
	dx, dy := 2*i, 2*i+1
	K.Put(dx, dx, pen*nx*nx)
	K.Put(dx, dy, pen*nx*ny)
	K.Put(dy, dx, pen*nx*ny)
	K.Put(dy, dy, pen*ny*ny)
	proj := rhs[dx]*nx + rhs[dy]*ny
	rhs[dx] -= proj * nx
	rhs[dy] -= proj * ny
}

// radialUnit returns the outward radial unit vector at p, measured from
// o.Center.
func (o RadialConstraint) radialUnit(p geom.Point) (nx, ny float64) {
	dx, dy := p.X-o.Center.Cx, p.Y-o.Center.Cy
	r := math.Hypot(dx, dy)
	if r < 1e-14 {
		return 1, 0
	}
	return dx / r, dy / r
}
