// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spring implements the spring assembler and solver of spec.md
// §4.5: every bar is modeled as a linear axial spring; the global
// stiffness matrix and body-force vector are assembled into a sparse
// triplet (github.com/cpmech/gosl/la.Triplet, the same assembly
// convention the teacher's finite elements use for AddToKb/AddToRhs),
// boundary constraints are applied, and the resulting displacement is
// obtained from a sparse SPD solve.
package spring

// Flags enables optional assembly terms. Per spec.md §9's design note,
// these are configuration toggles on the assembler, not subclasses.
type Flags struct {
	CrossBars         bool    // inject virtual vertex-to-opposite-midpoint springs
	CrossBarStiffness float64 // multiplier on the cross-bar stiffness; default 1
	Balloon           bool    // inject outward balloon forces per triangle
	BalloonCoef       float64 // small coefficient scaling the balloon force
}

// DefaultFlags returns the spec.md defaults: both optional terms off.
func DefaultFlags() Flags {
	return Flags{CrossBarStiffness: 1, BalloonCoef: 0.1}
}
