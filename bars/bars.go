// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bars derives the unique undirected edges (bars) of a
// triangulation from its triangle list, per spec.md §4.4.
package bars

import (
	"sort"

	"github.com/cpmech/gomesher/delaunay"
	"github.com/cpmech/gosl/utl"
)

// Bar is a canonical (a<b) undirected edge, indexing into the point slice.
type Bar [2]int

// Extract returns the unique bars of triangle list T, each canonicalised
// so that Bar[0] < Bar[1], in a stable lexicographic order (by first
// index, then second) so bar-indexed arrays can be diffed across
// iterations.
func Extract(T []delaunay.Triangle) []Bar {
	seen := make(map[Bar]bool, 3*len(T))
	out := make([]Bar, 0, 3*len(T))
	add := func(i, j int) {
		b := Bar{i, j}
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	for _, t := range T {
		// canonicalise the triangle's own vertex triple first (as
		// inp/msh.go does for its triangle cells with IntSort3), so
		// every edge extracted from it is already in a<b order
		a, b, c := t[0], t[1], t[2]
		utl.IntSort3(&a, &b, &c)
		add(a, b)
		add(b, c)
		add(a, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// Index builds a lookup from canonical bar to its position in bs, for
// O(1) rest-length / actual-length access by callers that iterate bars
// in a different order (e.g. per-triangle cross-bar assembly).
func Index(bs []Bar) map[Bar]int {
	idx := make(map[Bar]int, len(bs))
	for i, b := range bs {
		idx[b] = i
	}
	return idx
}
