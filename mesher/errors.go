// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesher

import "fmt"

// ConfigError reports an invalid Settings value (spec.md §7). Fatal,
// returned by Settings.Validate and NewDriver before any iteration starts.
type ConfigError struct{ Msg string }

func (e *ConfigError) Error() string { return e.Msg }

// DegenerateGeometryError reports that Delaunay returned fewer than one
// triangle, or that the point set is entirely collinear (spec.md §7).
// Fatal.
type DegenerateGeometryError struct{ Msg string }

func (e *DegenerateGeometryError) Error() string { return e.Msg }

// InvertedTriangleError reports that a step (solver half-step or
// smoother sweep) produced an inverted triangle that recovery could not
// resolve (spec.md §7). NodeIndex identifies the offending point where
// known; -1 if the inversion could not be attributed to one node.
type InvertedTriangleError struct{ NodeIndex int }

func (e *InvertedTriangleError) Error() string {
	return fmt.Sprintf("mesher: inverted triangle could not be resolved (node %d)", e.NodeIndex)
}
