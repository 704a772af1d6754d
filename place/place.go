// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package place

import "github.com/cpmech/gomesher/geom"

// Seed produces the initial point set for dom: boundary discretization
// followed by interior hex-lattice seeding (spec.md §4.3), with stable
// Ids assigned in that order (corners and boundary points first, so the
// iteration driver's "corners never move" invariant can be checked by Id
// range alone).
func Seed(dom Domain, h HFunc, opts InteriorOptions) ([]geom.Point, error) {
	boundary := dom.DiscretizeBoundary(h)
	interior, err := Interior(dom, h, boundary, opts)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Point, 0, len(boundary)+len(interior))
	id := 0
	for _, p := range boundary {
		p.Id = id
		out = append(out, p)
		id++
	}
	for _, p := range interior {
		p.Id = id
		out = append(out, p)
		id++
	}
	return out, nil
}
