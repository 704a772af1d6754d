// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spring

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// SingularSystemError reports that the sparse solve failed (spec.md §7).
// The iteration driver, not this package, owns the half-step retry
// policy, since recovery needs to blend positions it does not have
// access to here.
type SingularSystemError struct {
	Msg string
}

func (e *SingularSystemError) Error() string { return e.Msg }

// Solve solves K·x = rhs for an SPD (after constraints) sparse K, using
// github.com/cpmech/gosl/la's sparse solver -- the same "assemble into a
// Triplet, convert, factorise, solve" path the teacher's FE domain uses
// for its global Jacobian (fem/domain.go: la.GetSolver(sim.LinSol.Name)).
// x is the nodal displacement vector, not an absolute position (spec.md
// §4.5).
func Solve(K *la.Triplet, rhs []float64) ([]float64, error) {
	n := len(rhs)
	solver := la.GetSolver("umfpack")
	defer solver.Free()

	symmetric := true
	verbose := false
	timing := false
	if err := solver.Init(K, symmetric, verbose, timing, "", nil); err != nil {
		return nil, &SingularSystemError{Msg: chk.Err("spring: solver init failed: %v", err).Error()}
	}
	if err := solver.Fact(); err != nil {
		return nil, &SingularSystemError{Msg: chk.Err("spring: factorisation failed (system may be singular): %v", err).Error()}
	}
	x := make([]float64, n)
	if err := solver.Solve(x, rhs, false); err != nil {
		return nil, &SingularSystemError{Msg: chk.Err("spring: solve failed: %v", err).Error()}
	}
	return x, nil
}
