// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements 2D geometry primitives shared by the mesh
// generator: points, classes, distances, signed area, triangle quality
// and barycentric interpolation.
package geom

import "math"

// Class identifies where a point sits with respect to a domain boundary.
type Class int

// point classes
const (
	Interior Class = iota
	Corner
	BoundaryBottom
	BoundaryTop
	BoundaryLeft
	BoundaryRight
)

// IsBoundary returns whether c is any boundary (or corner) class.
func (c Class) IsBoundary() bool {
	return c != Interior
}

// IsFixed returns whether points of class c are immutable w.r.t. the driver
// (corners never move at all).
func (c Class) IsFixed() bool {
	return c == Corner
}

// String implements fmt.Stringer
func (c Class) String() string {
	switch c {
	case Corner:
		return "corner"
	case BoundaryBottom:
		return "boundary-bottom"
	case BoundaryTop:
		return "boundary-top"
	case BoundaryLeft:
		return "boundary-left"
	case BoundaryRight:
		return "boundary-right"
	default:
		return "interior"
	}
}

// Point is a 2D coordinate with a class and a stable identity.
type Point struct {
	X, Y  float64
	Class Class
	Id    int // stable identity; indexes into Mesh.P
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Sub returns b - a as a vector (dx, dy)
func Sub(a, b Point) (dx, dy float64) {
	return b.X - a.X, b.Y - a.Y
}

// Midpoint returns the midpoint of a and b.
func Midpoint(a, b Point) (x, y float64) {
	return 0.5 * (a.X + b.X), 0.5 * (a.Y + b.Y)
}
