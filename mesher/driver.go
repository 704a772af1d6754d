// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesher

import (
	"context"
	"errors"
	"math"

	"github.com/cpmech/gomesher/density"
	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gomesher/guide"
	"github.com/cpmech/gomesher/place"
	"github.com/cpmech/gomesher/quality"
	"github.com/cpmech/gomesher/smooth"
	"github.com/cpmech/gomesher/spring"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// maxSubPhaseIters bounds the density/smoothing monotone sub-loops
// (spec.md §4.1 steps 3-4): a safety cap so a misbehaving mesh cannot
// spin the driver forever when the monotone-progress guard never
// triggers a rollback.
const maxSubPhaseIters = 50

// Driver orchestrates the fixed-point loop of spec.md §4.1, mirroring
// the shape of the teacher's FEM/msolid.Driver: one struct holding
// Settings, the current Mesh and a diagnostic Report, with a single
// Run entry point.
type Driver struct {
	Settings   Settings
	Domain     place.Domain
	Guide      *guide.Mesh // nil in RefinementRegular mode
	Flags      spring.Flags
	Constraint spring.ConstraintApplier // defaults to spring.PenaltyDOF{}
	Mesh       *Mesh
	Report     Report
}

// NewDriver validates settings and seeds the initial mesh (spec.md
// §4.3): boundary discretization, hex-lattice interior placement, an
// initial Delaunay, and the first quality pass. guideMesh is ignored
// (may be nil) when Settings.Refinement is RefinementRegular.
func NewDriver(settings Settings, dom place.Domain, guideMesh *guide.Mesh, opts place.InteriorOptions) (*Driver, error) {
	settings.Init()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.Refinement == RefinementGuideMesh && guideMesh == nil {
		return nil, &ConfigError{Msg: chk.Err("mesher: refinement=guide_mesh requires a non-nil guide mesh").Error()}
	}

	d := &Driver{Settings: settings, Domain: dom, Guide: guideMesh, Flags: spring.DefaultFlags(), Constraint: spring.PenaltyDOF{}}
	d.Flags.CrossBars = settings.CrossBarsEnabled
	d.Flags.Balloon = settings.BalloonForcesEnabled

	h := d.hfunc()
	P, err := place.Seed(dom, h, opts)
	if err != nil {
		return nil, err
	}
	L0 := make([]float64, len(P))
	for i, p := range P {
		L0[i] = h(p.X, p.Y)
	}
	m := &Mesh{P: P, L0: L0}
	if err := m.retriangulate(settings.BarLengthFactor); err != nil {
		return nil, err
	}
	m.L = m.barLengths()
	st := quality.Evaluate(m.P, m.T)
	m.Q = st.Q
	d.Mesh = m
	return d, nil
}

// hfunc returns the desired-length function for the configured
// refinement mode (spec.md §4.3: a constant h0 in regular mode, or a
// guide-mesh interpolation otherwise). Settings.LengthFunc, when set,
// takes priority over both modes.
func (d *Driver) hfunc() place.HFunc {
	if d.Settings.LengthFunc != nil {
		lf := d.Settings.LengthFunc
		return func(x, y float64) float64 { return lf.F(0, []float64{x, y}) }
	}
	if d.Settings.Refinement == RefinementGuideMesh {
		return d.Guide.Interpolate
	}
	h0 := d.Settings.H0
	return func(x, y float64) float64 { return h0 }
}

// Run executes the fixed-point loop (spec.md §4.1) until either
// iter > itmax or both quality tolerances are met. Cancellation is
// checked once per iteration boundary (spec.md §5); the Mesh is always
// left in a consistent state (T a valid Delaunay of P) when Run
// returns, whatever the reason.
func (d *Driver) Run(ctx context.Context) error {
	s := d.Settings
	m := d.Mesh

	iter := 0
	for {
		iter++
		if iter > s.Itmax {
			break
		}
		select {
		case <-ctx.Done():
			d.Report = Report{Iterations: iter - 1, WorstQ: worst(m.Q), MeanQ: mean(m.Q), Converged: false}
			return ctx.Err()
		default:
		}

		if err := d.solveStep(); err != nil {
			var inv *InvertedTriangleError
			if errors.As(err, &inv) {
				break // abort the iteration, keep the last good mesh
			}
			return err
		}

		meanMisfit := mean(mapF(relChange(m.L, m.L0Bar), math.Abs))
		if meanMisfit >= s.MeanMisfitBarLengthTol {
			if err := d.densityPhase(); err != nil {
				return err
			}
		} else {
			if err := d.smoothingPhase(); err != nil {
				return err
			}
		}
		m = d.Mesh // density/smoothing rollback may have swapped the Mesh pointer

		st := quality.Evaluate(m.P, m.T)
		m.Q = st.Q
		if s.Verbose {
			io.Pf("> iter %d: worst_q=%.4f mean_q=%.4f mean_misfit=%.4f\n", iter, st.Worst, st.Mean, meanMisfit)
		}
		if st.Worst >= s.QTol && st.Mean >= s.MeanQTol {
			d.Report = Report{Iterations: iter, WorstQ: st.Worst, MeanQ: st.Mean, MeanMisfit: meanMisfit, Converged: true, RollbackCount: d.Report.RollbackCount}
			if s.Verbose {
				io.PfGreen("> converged after %d iterations\n", iter)
			}
			return nil
		}
		d.Report.Iterations = iter
		d.Report.WorstQ = st.Worst
		d.Report.MeanQ = st.Mean
		d.Report.MeanMisfit = meanMisfit
	}

	if s.Verbose {
		io.PfRed("> did not converge within %d iterations\n", s.Itmax)
	}
	return nil
}

// solveStep assembles and solves one spring-equilibrium step, applies
// the resulting displacement, and refreshes L/L0Bar (spec.md §4.5
// "Post-solve"). On a SingularSystem, it retries once with a small
// diagonal regularization and a halved displacement step (spec.md §7);
// on a second failure it aborts without moving any point.
func (d *Driver) solveStep() error {
	m := d.Mesh
	s := d.Settings

	asm := &spring.Assembler{P: m.P, Bars: m.B, L0Bar: m.L0Bar, Flags: d.Flags, T: m.T, L0: m.L0}
	K, rhs := asm.Build()
	d.Constraint.Apply(K, rhs, m.P)

	disp, err := spring.Solve(K, rhs)
	scale := 1.0
	if err != nil {
		var sing *spring.SingularSystemError
		if !errors.As(err, &sing) {
			return err
		}
		regularize(K, len(m.P))
		disp, err = spring.Solve(K, rhs)
		if err != nil {
			return err // second failure: caller aborts this iteration
		}
		scale = 0.5
	}

	old := append([]geom.Point(nil), m.P...)
	applyAndCheck := func(interiorScl float64) bool {
		for i := range m.P {
			scl := scale
			if m.P[i].Class == geom.Interior {
				scl = interiorScl
			}
			m.P[i].X = old[i].X + scl*disp[2*i]
			m.P[i].Y = old[i].Y + scl*disp[2*i+1]
		}
		if err := m.retriangulate(d.Settings.BarLengthFactor); err != nil {
			return false
		}
		for _, t := range m.T {
			if geom.SignedArea(m.P[t[0]], m.P[t[1]], m.P[t[2]]) <= 0 {
				return false
			}
		}
		return true
	}

	if !applyAndCheck(scale) {
		// halve the displacement of all interior nodes and reassess once
		// before giving up (spec.md §7 InvertedTriangle recovery)
		if !applyAndCheck(scale * 0.5) {
			m.P = old
			if err := m.retriangulate(s.BarLengthFactor); err != nil {
				return err
			}
			return &InvertedTriangleError{NodeIndex: -1}
		}
	}
	m.L = m.barLengths()
	return nil
}

// regularize adds a small uniform diagonal term to every DOF of K,
// Tikhonov-style, so a retried factorisation has a better chance of
// succeeding after a singular first attempt (spec.md §7's "halve the
// implicit step" recovery).
func regularize(K interface{ Put(i, j int, x float64) }, n int) {
	const eps = 1e-8
	for i := 0; i < 2*n; i++ {
		K.Put(i, i, eps)
	}
}

// densityPhase implements spec.md §4.1 step 3: branch on how far the
// current rms nodal density has drifted from the desired density.
func (d *Driver) densityPhase() error {
	m := d.Mesh
	s := d.Settings
	h := d.hfunc()

	ratio := densityRatio(m.L, m.L0Bar)
	if ratio > s.DensityRatioThreshold {
		for i := 0; i < maxSubPhaseIters && ratio > s.DensityRatioThreshold; i++ {
			changed, err := d.applyAddReject(h)
			if err != nil {
				return err
			}
			if !changed {
				break
			}
			ratio = densityRatio(m.L, m.L0Bar)
		}
		return nil
	}

	prevPct := misfitPercent(m.L, m.L0Bar, s.RestLengthMisfitTol)
	for i := 0; i < maxSubPhaseIters; i++ {
		snap := m.clone()
		changed, err := d.applyAddReject(h)
		if err != nil {
			return err
		}
		if !changed {
			break
		}
		newPct := misfitPercent(m.L, m.L0Bar, s.RestLengthMisfitTol)
		if newPct < prevPct {
			prevPct = newPct
			continue
		}
		d.Mesh = snap
		d.Report.RollbackCount++
		break
	}
	return nil
}

// applyAddReject computes and applies one round of insertions/deletions
// (spec.md §4.6), retriangulating and recomputing L/L0Bar/L0 for any
// affected node. changed reports whether anything was inserted/deleted.
func (d *Driver) applyAddReject(h place.HFunc) (changed bool, err error) {
	m := d.Mesh
	s := d.Settings

	toDelete := density.Reject(m.P, m.B, m.L, m.L0Bar, s.AlphaReject)
	newPts, err := density.Add(m.P, m.B, m.L, m.L0Bar, s.AlphaAdd, 1e-9)
	if err != nil {
		return false, err
	}
	if len(toDelete) == 0 && len(newPts) == 0 {
		return false, nil
	}

	del := make(map[int]bool, len(toDelete))
	for _, i := range toDelete {
		del[i] = true
	}

	newP := make([]geom.Point, 0, len(m.P)-len(toDelete)+len(newPts))
	newL0 := make([]float64, 0, cap(newP))
	id := 0
	for i, p := range m.P {
		if del[i] {
			continue
		}
		p.Id = id
		newP = append(newP, p)
		newL0 = append(newL0, m.L0[i])
		id++
	}
	for _, np := range newPts {
		newP = append(newP, geom.Point{X: np.X, Y: np.Y, Class: np.Class, Id: id})
		newL0 = append(newL0, h(np.X, np.Y))
		id++
	}

	m.P = newP
	m.L0 = newL0
	if err := m.retriangulate(s.BarLengthFactor); err != nil {
		return false, err
	}
	m.L = m.barLengths()
	return true, nil
}

// smoothingPhase implements spec.md §4.1 step 4: run Laplacian sweeps
// while the percentage of below-tolerance triangles strictly decreases,
// with the same rollback discipline as the density phase.
func (d *Driver) smoothingPhase() error {
	m := d.Mesh
	s := d.Settings

	st := quality.Evaluate(m.P, m.T)
	prevPct := quality.PercentBelow(st.Q, s.QTol)
	if st.Worst >= s.QTol && st.Mean >= s.MeanQTol {
		return nil // already meets both targets, nothing to do
	}

	for i := 0; i < maxSubPhaseIters; i++ {
		snap := m.clone()
		smooth.Sweep(m.P, m.T, m.B, m.L0Bar)
		if err := m.retriangulate(s.BarLengthFactor); err != nil {
			return err
		}
		m.L = m.barLengths()
		st = quality.Evaluate(m.P, m.T)
		newPct := quality.PercentBelow(st.Q, s.QTol)
		if newPct < prevPct {
			prevPct = newPct
			if st.Worst >= s.QTol && st.Mean >= s.MeanQTol {
				break
			}
			continue
		}
		d.Mesh = snap
		d.Report.RollbackCount++
		break
	}
	return nil
}

func densityRatio(L, L0Bar []float64) float64 {
	rho := mapF(L, func(l float64) float64 { return math.Sqrt2 / (l * l) })
	rho0 := mapF(L0Bar, func(l float64) float64 { return math.Sqrt2 / (l * l) })
	r := rmsOf(rho)
	if r == 0 {
		return 0
	}
	return math.Abs(r-rmsOf(rho0)) / r
}

func misfitPercent(L, L0Bar []float64, tol float64) float64 {
	if len(L) == 0 {
		return 0
	}
	n := 0
	for i := range L {
		if math.Abs((L[i]-L0Bar[i])/L0Bar[i]) >= tol {
			n++
		}
	}
	return float64(n) / float64(len(L))
}

func relChange(L, L0Bar []float64) []float64 {
	out := make([]float64, len(L))
	for i := range L {
		out[i] = (L[i] - L0Bar[i]) / L0Bar[i]
	}
	return out
}

func mapF(in []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func rmsOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(vals)))
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func worst(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	w := vals[0]
	for _, v := range vals[1:] {
		if v < w {
			w = v
		}
	}
	return w
}
