// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package place

import (
	"math"

	"github.com/cpmech/gomesher/geom"
	"github.com/cpmech/gosl/rnd"
)

// rejectFactor is the spec.md §4.3 proximity threshold (0.7·h) used to
// discard hex-lattice points too close to a boundary node.
const rejectFactor = 0.7

// InteriorOptions configures hex-lattice interior seeding.
type InteriorOptions struct {
	// JitterFraction perturbs each lattice point by up to this fraction
	// of h along each axis before the boundary-proximity rejection test
	// (SPEC_FULL.md domain-stack supplement, grounded on gosl/rnd). Zero
	// disables jitter and reproduces the plain hex lattice of spec.md §4.3.
	JitterFraction float64

	// RandomSeed seeds the jitter generator for reproducible meshes.
	RandomSeed int64
}

// Interior tiles dom's bounding box with a hexagonal lattice of spacing
// h (h is evaluated once, at dom's centroid, per spec.md §4.3), rejects
// lattice points within 0.7·h of any boundary node in `boundary`, and
// returns the survivors classed Interior.
func Interior(dom Domain, h HFunc, boundary []geom.Point, opts InteriorOptions) ([]geom.Point, error) {
	xmin, xmax, ymin, ymax := dom.Extents()
	cx, cy := dom.Centroid()
	spacing := h(cx, cy)
	if spacing <= 0 {
		spacing = 1e-9 // guarded upstream by Settings.Validate; defensive floor only
	}

	idx, err := geom.NewProximityIndex(xmin, xmax, ymin, ymax, estimateNdivFor(len(boundary)))
	if err != nil {
		return nil, err
	}
	for i, p := range boundary {
		if err := idx.Append(p, i); err != nil {
			return nil, err
		}
	}

	jitter := opts.JitterFraction > 0
	if jitter {
		rnd.Init(opts.RandomSeed)
	}

	dx := spacing
	dy := spacing * math.Sqrt(3) / 2

	var out []geom.Point
	row := 0
	for y := ymin; y <= ymax; y += dy {
		xOff := 0.0
		if row%2 == 1 {
			xOff = dx / 2
		}
		for x := xmin + xOff; x <= xmax; x += dx {
			px, py := x, y
			if jitter {
				amp := opts.JitterFraction * spacing
				px += rnd.Float64(-amp, amp)
				py += rnd.Float64(-amp, amp)
			}
			if !dom.Contains(px, py) {
				continue
			}
			if idx.WithinRadius(px, py, rejectFactor*spacing) {
				continue
			}
			out = append(out, geom.Point{X: px, Y: py, Class: geom.Interior})
		}
		row++
	}
	return out, nil
}

func estimateNdivFor(n int) int {
	k := 1
	for k*k < n {
		k++
	}
	if k < 4 {
		k = 4
	}
	return k
}
