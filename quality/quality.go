// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quality implements the per-triangle quality metric and
// aggregate statistics of spec.md §4.8.
package quality

import (
	"runtime"
	"sync"

	"github.com/cpmech/gomesher/delaunay"
	"github.com/cpmech/gomesher/geom"
)

// Stats holds the aggregate quality metrics spec.md §4.1 tracks.
type Stats struct {
	Q     []float64 // per-triangle quality, aligned with the triangle list
	Worst float64   // min(Q)
	Mean  float64   // mean(Q)
}

// Evaluate computes the quality factor of every triangle in T (spec.md
// §4.8) and the aggregate Worst/Mean statistics. Evaluation is
// embarrassingly parallel over triangles (spec.md §5): work is fanned
// out over chunks across GOMAXPROCS goroutines, each writing only to its
// own slice of Q, then reduced serially -- no shared mutable state
// crosses a goroutine boundary.
func Evaluate(P []geom.Point, T []delaunay.Triangle) Stats {
	n := len(T)
	q := make([]float64, n)
	if n == 0 {
		return Stats{Q: q}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for t := lo; t < hi; t++ {
				tri := T[t]
				q[t] = geom.TriangleQuality(P[tri[0]], P[tri[1]], P[tri[2]])
			}
		}(lo, hi)
	}
	wg.Wait()

	worst, sum := q[0], 0.0
	for _, v := range q {
		if v < worst {
			worst = v
		}
		sum += v
	}
	return Stats{Q: q, Worst: worst, Mean: sum / float64(n)}
}

// PercentBelow returns the fraction (0..1) of triangles with quality
// strictly below tol, used by the smoothing sub-loop's monotone-progress
// guard (spec.md §4.1 step 4).
func PercentBelow(q []float64, tol float64) float64 {
	if len(q) == 0 {
		return 0
	}
	n := 0
	for _, v := range q {
		if v < tol {
			n++
		}
	}
	return float64(n) / float64(len(q))
}
