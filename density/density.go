// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package density implements the add/reject nodal density controller of
// spec.md §4.6: nodes are inserted in sparse regions (long bars) and
// deleted in dense regions (short bars), using the post-solve actual
// length L and rest length L0Bar.
package density

import (
	"sort"

	"github.com/cpmech/gomesher/bars"
	"github.com/cpmech/gomesher/geom"
)

// DefaultAlphaReject and DefaultAlphaAdd are spec.md §4.6's defaults.
const (
	DefaultAlphaReject = 0.6
	DefaultAlphaAdd    = 1.4
)

// Reject returns the indices of interior points that should be deleted:
// every incident bar is compressed below alphaReject·L0Bar. Candidates
// are processed most-compressed first; once a node is deleted its
// neighbours are marked ineligible for this pass, to avoid cascading
// collapse (spec.md §4.6).
func Reject(P []geom.Point, Bars []bars.Bar, L, L0Bar []float64, alphaReject float64) []int {
	if alphaReject == 0 {
		alphaReject = DefaultAlphaReject
	}

	adj := buildAdjacency(len(P), Bars)

	// worstRatio[i] = min over incident bars of L/L0Bar (most compressed
	// bar determines whether i is a candidate, and the deletion order)
	worstRatio := make([]float64, len(P))
	for i := range worstRatio {
		worstRatio[i] = 1 // neutral; only overwritten for points with bars
	}
	isCandidate := make([]bool, len(P))
	for i, p := range P {
		if p.Class.IsBoundary() {
			continue
		}
		incident := adj[i]
		if len(incident) == 0 {
			continue
		}
		allCompressed := true
		worst := 1.0
		for _, bi := range incident {
			ratio := L[bi] / L0Bar[bi]
			if ratio >= alphaReject {
				allCompressed = false
			}
			if ratio < worst {
				worst = ratio
			}
		}
		if allCompressed {
			isCandidate[i] = true
			worstRatio[i] = worst
		}
	}

	order := make([]int, 0, len(P))
	for i, c := range isCandidate {
		if c {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return worstRatio[order[a]] < worstRatio[order[b]] })

	ineligible := make([]bool, len(P))
	var toDelete []int
	for _, i := range order {
		if ineligible[i] {
			continue
		}
		toDelete = append(toDelete, i)
		ineligible[i] = true
		for _, bi := range adj[i] {
			b := Bars[bi]
			other := b[0]
			if other == i {
				other = b[1]
			}
			ineligible[other] = true
		}
	}
	return toDelete
}

// NewPoint describes a node to be inserted at a bar's midpoint.
type NewPoint struct {
	X, Y  float64
	Class geom.Class
	Bar   bars.Bar // the overlong bar that produced this point
}

// Add returns the midpoints of every bar longer than alphaAdd·L0Bar,
// classified from the bar's endpoint classes (a bar on a boundary
// produces a new boundary node on that segment; otherwise interior),
// deduplicated against each other via a proximity index so that two
// overlong bars sharing a near-identical midpoint only produce one node
// (spec.md §4.6). `tol` is the minimum separation below which two
// proposed midpoints are considered the same insertion.
func Add(P []geom.Point, Bars []bars.Bar, L, L0Bar []float64, alphaAdd, tol float64) ([]NewPoint, error) {
	if alphaAdd == 0 {
		alphaAdd = DefaultAlphaAdd
	}
	if tol <= 0 {
		tol = 1e-9
	}

	xmin, xmax, ymin, ymax := bboxOf(P)
	idx, err := geom.NewProximityIndex(xmin, xmax, ymin, ymax, estimateNdiv(len(Bars)))
	if err != nil {
		return nil, err
	}

	var out []NewPoint
	id := 0
	for bi, b := range Bars {
		if L[bi] <= alphaAdd*L0Bar[bi] {
			continue
		}
		pa, pb := P[b[0]], P[b[1]]
		mx, my := geom.Midpoint(pa, pb)
		if idx.WithinRadius(mx, my, tol) {
			continue // near-duplicate of an already-accepted insertion
		}
		np := NewPoint{X: mx, Y: my, Class: midpointClass(pa.Class, pb.Class), Bar: b}
		out = append(out, np)
		if err := idx.Append(geom.Point{X: mx, Y: my}, id); err != nil {
			return nil, err
		}
		id++
	}
	return out, nil
}

// midpointClass derives the class of a bar's midpoint from its endpoint
// classes: a bar lying entirely on one boundary side produces a new node
// on that same side; any other combination (including a boundary-to-
// interior bar, or a bar spanning two different sides through the
// interior) produces an interior node.
func midpointClass(a, b geom.Class) geom.Class {
	if a == b && a.IsBoundary() && a != geom.Corner {
		return a
	}
	if a == geom.Corner && b.IsBoundary() && b != geom.Corner {
		return b
	}
	if b == geom.Corner && a.IsBoundary() && a != geom.Corner {
		return a
	}
	return geom.Interior
}

func buildAdjacency(n int, Bars []bars.Bar) [][]int {
	adj := make([][]int, n)
	for bi, b := range Bars {
		adj[b[0]] = append(adj[b[0]], bi)
		adj[b[1]] = append(adj[b[1]], bi)
	}
	return adj
}

func bboxOf(P []geom.Point) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = P[0].X, P[0].X
	ymin, ymax = P[0].Y, P[0].Y
	for _, p := range P[1:] {
		if p.X < xmin {
			xmin = p.X
		}
		if p.X > xmax {
			xmax = p.X
		}
		if p.Y < ymin {
			ymin = p.Y
		}
		if p.Y > ymax {
			ymax = p.Y
		}
	}
	return
}

func estimateNdiv(n int) int {
	k := 1
	for k*k < n {
		k++
	}
	if k < 4 {
		k = 4
	}
	return k
}
