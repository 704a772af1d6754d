// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spring

import (
	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/la"
)

// ConstraintApplier enforces spec.md §4.5's boundary constraints: corner
// DOFs pinned in both directions, horizontal-boundary y pinned, vertical-
// boundary x pinned. PenaltyDOF is the one strategy provided, simpler
// than the teacher's Lagrange-multiplier EssentialBcs (fem/essenbcs.go)
// since the mesher has no multi-point constraints to justify that
// machinery.
type ConstraintApplier interface {
	// Apply mutates K in place (adding penalty/elimination terms) and
	// zeroes the corresponding rhs entries so that the solved
	// displacement leaves constrained DOFs at (approximately) zero.
	Apply(K *la.Triplet, rhs []float64, P []geom.Point)
}

// FixedDOFs returns, for point p, whether its x and y DOFs are pinned.
func FixedDOFs(c geom.Class) (fixX, fixY bool) {
	switch c {
	case geom.Corner:
		return true, true
	case geom.BoundaryBottom, geom.BoundaryTop:
		return false, true
	case geom.BoundaryLeft, geom.BoundaryRight:
		return true, false
	default:
		return false, false
	}
}

// PenaltyDOF enforces constraints by adding a large diagonal term to
// each pinned DOF's row and zeroing its rhs entry, grounded on
// fem/essenbcs.go's general "augment the assembled system to enforce
// A·y=c" idea, simplified to a diagonal single-point penalty (c=0: no
// displacement) instead of a Lagrange-multiplier block.
type PenaltyDOF struct {
	Penalty float64 // default 1e12 if zero
}

// Apply implements ConstraintApplier.
func (o PenaltyDOF) Apply(K *la.Triplet, rhs []float64, P []geom.Point) {
	pen := o.Penalty
	if pen == 0 {
		pen = 1e12
	}
	for i, p := range P {
		fixX, fixY := FixedDOFs(p.Class)
		if fixX {
			K.Put(dofX(i), dofX(i), pen)
			rhs[dofX(i)] = 0
		}
		if fixY {
			K.Put(dofY(i), dofY(i), pen)
			rhs[dofY(i)] = 0
		}
	}
}
