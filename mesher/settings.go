// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesher

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Refinement selects how the desired-length field L0 is supplied
// (spec.md §6).
type Refinement string

const (
	RefinementRegular   Refinement = "regular"    // constant h0 everywhere
	RefinementGuideMesh Refinement = "guide_mesh" // interpolated from a guide.Mesh
)

// Settings holds every core-visible knob recognized by the driver
// (spec.md §6). It is a plain JSON-tagged struct, grounded on the
// teacher's `inp.Simulation`/`inp.Data` (inp/sim.go): the host owns
// reading a file (out of scope per spec.md §1), Settings only owns
// defaulting (Init) and validation (Validate).
type Settings struct {
	Itmax                  int        `json:"itmax"`
	QTol                   float64    `json:"q_tol"`
	MeanQTol               float64    `json:"mean_q_tol"`
	MeanMisfitBarLengthTol float64    `json:"mean_misfit_bar_length_tol"`
	H0                     float64    `json:"h0"`
	Refinement             Refinement `json:"refinement"`
	CrossBarsEnabled       bool       `json:"cross_bars_enabled"`
	BalloonForcesEnabled   bool       `json:"balloon_forces_enabled"`
	AlphaAdd               float64    `json:"alpha_add"`
	AlphaReject            float64    `json:"alpha_reject"`
	Xmin                   float64    `json:"x_min"`
	Xmax                   float64    `json:"x_max"`
	Ymin                   float64    `json:"y_min"`
	Ymax                   float64    `json:"y_max"`

	// BarLengthFactor scales L0_bar = factor*(L0[a]+L0[b])/2 (spec.md §9
	// open question, resolved at 1.2: a bar's rest length is slightly
	// longer than the average of its endpoints' desired lengths, which
	// biases the spring system toward filling space rather than
	// collapsing it, matching distmesh-family mesher behaviour).
	BarLengthFactor float64 `json:"bar_length_factor"`

	// DensityRatioThreshold is spec.md §4.1 step 3's 0.40 cutoff between
	// the "aggressive" and "monotone" density sub-phases.
	DensityRatioThreshold float64 `json:"density_ratio_threshold"`

	// RestLengthMisfitTol is spec.md §4.6/§4.1's 50% bar-misfit cutoff
	// used by the density sub-phase's monotone-progress guard.
	RestLengthMisfitTol float64 `json:"rest_length_misfit_tol"`

	Verbose bool `json:"verbose"`

	// LengthFunc, when set, overrides the desired-length field h(x,y)
	// entirely, taking priority over both RefinementRegular and
	// RefinementGuideMesh. Not JSON-serializable: a host wires this in
	// code, the same way fem.FEM.Run takes a dtFunc fun.Func rather
	// than reading one out of the .sim file.
	LengthFunc fun.Func `json:"-"`
}

// Init fills every zero-valued field with its spec.md §6 default.
func (s *Settings) Init() {
	if s.Itmax == 0 {
		s.Itmax = 10
	}
	if s.QTol == 0 {
		s.QTol = 0.60
	}
	if s.MeanQTol == 0 {
		s.MeanQTol = 0.90
	}
	if s.MeanMisfitBarLengthTol == 0 {
		s.MeanMisfitBarLengthTol = 0.15
	}
	if s.Refinement == "" {
		s.Refinement = RefinementRegular
	}
	if s.AlphaAdd == 0 {
		s.AlphaAdd = 1.4
	}
	if s.AlphaReject == 0 {
		s.AlphaReject = 0.6
	}
	if s.BarLengthFactor == 0 {
		s.BarLengthFactor = 1.2
	}
	if s.DensityRatioThreshold == 0 {
		s.DensityRatioThreshold = 0.40
	}
	if s.RestLengthMisfitTol == 0 {
		s.RestLengthMisfitTol = 0.50
	}
}

// Validate checks the recognized options against spec.md §6/§7's
// constraints, raising a *ConfigError via chk.Err when violated.
func (s *Settings) Validate() error {
	if s.Itmax < 1 {
		return &ConfigError{Msg: chk.Err("mesher: itmax must be >= 1, got %d", s.Itmax).Error()}
	}
	if s.QTol <= 0 || s.QTol > 1 {
		return &ConfigError{Msg: chk.Err("mesher: q_tol must be in (0,1], got %v", s.QTol).Error()}
	}
	if s.MeanQTol <= 0 || s.MeanQTol > 1 {
		return &ConfigError{Msg: chk.Err("mesher: mean_q_tol must be in (0,1], got %v", s.MeanQTol).Error()}
	}
	if s.MeanMisfitBarLengthTol <= 0 {
		return &ConfigError{Msg: chk.Err("mesher: mean_misfit_bar_length_tol must be > 0, got %v", s.MeanMisfitBarLengthTol).Error()}
	}
	if s.Refinement != RefinementRegular && s.Refinement != RefinementGuideMesh {
		return &ConfigError{Msg: chk.Err("mesher: unknown refinement mode %q", s.Refinement).Error()}
	}
	if s.Refinement == RefinementRegular && s.H0 <= 0 {
		return &ConfigError{Msg: chk.Err("mesher: h0 must be > 0 in regular refinement mode").Error()}
	}
	if s.Xmax <= s.Xmin || s.Ymax <= s.Ymin {
		return &ConfigError{Msg: chk.Err("mesher: domain extents invalid: [%v,%v]x[%v,%v]", s.Xmin, s.Xmax, s.Ymin, s.Ymax).Error()}
	}
	if s.AlphaAdd <= 1 {
		return &ConfigError{Msg: chk.Err("mesher: alpha_add must be > 1, got %v", s.AlphaAdd).Error()}
	}
	if s.AlphaReject <= 0 || s.AlphaReject >= 1 {
		return &ConfigError{Msg: chk.Err("mesher: alpha_reject must be in (0,1), got %v", s.AlphaReject).Error()}
	}
	return nil
}
