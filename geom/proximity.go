// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// ProximityIndex answers "is there a point within radius r of (x,y)?" and
// "what is the closest known point to (x,y)?" using a spatial bin grid
// (github.com/cpmech/gosl/gm.Bins) instead of an O(n) scan. It backs the
// guide mesh's coarse locator, the initial placement's boundary-proximity
// rejection and the density controller's insertion dedup -- three
// consumers sharing one gm.Bins-backed index.
type ProximityIndex struct {
	bins gm.Bins
	ids  []int // the ids appended so far, in insertion order
}

// NewProximityIndex builds an index covering [xmin,xmax]x[ymin,ymax] with
// approximately ndiv bins per axis. A small halo is added around the
// extents so that points exactly on the boundary are not dropped by
// rounding.
func NewProximityIndex(xmin, xmax, ymin, ymax float64, ndiv int) (*ProximityIndex, error) {
	if ndiv < 1 {
		ndiv = 20
	}
	halo := 1e-8 * (1 + xmax - xmin + ymax - ymin)
	o := &ProximityIndex{}
	err := o.bins.Init([]float64{xmin - halo, ymin - halo}, []float64{xmax + halo, ymax + halo}, ndiv)
	if err != nil {
		return nil, chk.Err("cannot initialise proximity bins: %v", err)
	}
	return o, nil
}

// Append records point p (with identity id) in the index.
func (o *ProximityIndex) Append(p Point, id int) error {
	if err := o.bins.Append([]float64{p.X, p.Y}, id); err != nil {
		return chk.Err("cannot append point %d to proximity index: %v", id, err)
	}
	o.ids = append(o.ids, id)
	return nil
}

// WithinRadius returns whether any indexed point lies within r of (x,y).
func (o *ProximityIndex) WithinRadius(x, y, r float64) bool {
	id, distSq := o.bins.FindClosest([]float64{x, y})
	if id < 0 {
		return false
	}
	return distSq <= r*r
}

// Closest returns the id and distance of the nearest indexed point to
// (x,y); ok is false if the index is empty.
func (o *ProximityIndex) Closest(x, y float64) (id int, dist float64, ok bool) {
	id, distSq := o.bins.FindClosest([]float64{x, y})
	if id < 0 {
		return 0, 0, false
	}
	return id, sqrtSafe(distSq), true
}

func sqrtSafe(v float64) float64 {
	if v < 0 {
		return 0
	}
	return math.Sqrt(v)
}
