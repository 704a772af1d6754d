// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// sqrt3 is √3, precomputed for TriangleQuality.
var sqrt3 = math.Sqrt(3.0)

// SignedArea returns the signed area of triangle (p1,p2,p3); positive
// when the vertices are in counter-clockwise order.
func SignedArea(p1, p2, p3 Point) float64 {
	return 0.5 * ((p2.X-p1.X)*(p3.Y-p1.Y) - (p3.X-p1.X)*(p2.Y-p1.Y))
}

// TriangleQuality returns q = 4·√3·A / (a²+b²+c²) for the triangle with
// vertices p1,p2,p3 and signed area A, where a,b,c are the side lengths.
// q is 1 for an equilateral triangle and tends to 0 as the triangle
// degenerates. A degenerate (zero side-length-sum) triangle returns 0.
func TriangleQuality(p1, p2, p3 Point) float64 {
	A := SignedArea(p1, p2, p3)
	a := Dist(p2, p3)
	b := Dist(p3, p1)
	c := Dist(p1, p2)
	sum := a*a + b*b + c*c
	if sum <= 0 {
		return 0
	}
	return 4 * sqrt3 * A / sum
}

// Barycentric returns the barycentric weights (w1,w2,w3) of point (x,y)
// with respect to triangle (p1,p2,p3). The weights sum to 1; any weight
// outside [0,1] (within tol) indicates the point lies outside the
// triangle.
func Barycentric(x, y float64, p1, p2, p3 Point) (w1, w2, w3 float64, ok bool) {
	detT := (p2.Y-p3.Y)*(p1.X-p3.X) + (p3.X-p2.X)*(p1.Y-p3.Y)
	if math.Abs(detT) < 1e-15 {
		return 0, 0, 0, false
	}
	w1 = ((p2.Y-p3.Y)*(x-p3.X) + (p3.X-p2.X)*(y-p3.Y)) / detT
	w2 = ((p3.Y-p1.Y)*(x-p3.X) + (p1.X-p3.X)*(y-p3.Y)) / detT
	w3 = 1 - w1 - w2
	return w1, w2, w3, true
}

// InTriangle returns whether the barycentric weights place (x,y) inside
// the closed triangle, within tolerance tol.
func InTriangle(w1, w2, w3, tol float64) bool {
	return w1 >= -tol && w2 >= -tol && w3 >= -tol
}
