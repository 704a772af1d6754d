// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesher

// Report is the diagnostic record returned alongside the final Mesh
// (spec.md §7: NonConvergence is non-fatal and surfaces as Converged
// == false rather than as an error). Grounded on the teacher's
// `fem.Summary`, trimmed to what a mesher run needs to report.
type Report struct {
	Iterations    int     // number of completed outer iterations
	WorstQ        float64 // worst_q at the last iteration boundary
	MeanQ         float64 // mean_q at the last iteration boundary
	MeanMisfit    float64 // mean_misfit_bar_length at the last iteration boundary
	Converged     bool    // worst_q >= q_tol && mean_q >= mean_q_tol
	RollbackCount int     // number of snapshot rollbacks across the run
}
