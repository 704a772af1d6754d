// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package place implements initial point placement (spec.md §4.3):
// boundary discretization plus interior seeding by hexagonal
// circle-packing, over an abstract Domain so that the rectangle (spec.md's
// primary target) and the cylindrical-annulus variant (SPEC_FULL.md
// supplement, package annulus) share one seeding algorithm.
package place

import "github.com/cpmech/gomesher/geom"

// HFunc returns the desired edge length at (x,y); it is either a constant
// (regular mode, h0) or a guide-mesh interpolation (guide.Mesh.Interpolate).
type HFunc func(x, y float64) float64

// Domain abstracts the shape being meshed. Rectangle is spec.md's
// primary domain; annulus.Domain is the cylindrical-annulus variant.
type Domain interface {

	// Extents returns an axis-aligned bounding box covering the domain.
	Extents() (xmin, xmax, ymin, ymax float64)

	// Contains returns whether (x,y) lies in the closed domain.
	Contains(x, y float64) bool

	// Centroid returns a representative interior point, used to evaluate
	// HFunc once for uniform interior lattice spacing (spec.md §4.3).
	Centroid() (x, y float64)

	// DiscretizeBoundary returns the ordered boundary points (corners
	// included, each with its correct Class) for the given edge-length
	// function. Corners are shared between adjacent sides.
	DiscretizeBoundary(h HFunc) []geom.Point
}
