// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package gfx describes the shapes that the engine can draw: closed
// polygonal outlines with a solid fill color and a fill rule. Curved shape
// kinds are normalized to polygonal outlines before they reach the
// tessellator.
package gfx

import (
	"slices"

	"honnef.co/go/curve"
)

// DefaultTolerance is the flattening tolerance used when converting curved
// shapes to outlines. It is small enough that the deviation is invisible in
// UI rendering.
const DefaultTolerance = 0.1

// Shape describes one filled outline in pixel coordinates. The edge from
// the last point back to the first is implicit. A shape is a value; the
// engine copies outlines on submission and never aliases caller memory.
//
// Shapes with fewer than three points, or with no enclosed area, are valid
// and simply don't cover anything.
type Shape struct {
	Outline []curve.Point
	Fill    Fill
	Color   RGBA
}

// Polygon returns a shape for an arbitrary closed polygon. The point slice
// is copied. The outline may be concave or self-intersecting; fill decides
// what counts as inside.
func Polygon(pts []curve.Point, b Brush, fill Fill) Shape {
	return Shape{
		Outline: slices.Clone(pts),
		Fill:    fill,
		Color:   b.premul(),
	}
}

// FromShape flattens any curve.Shape (curve.Circle, curve.Rect,
// curve.Ellipse, curve.BezPath, ...) into a polygonal outline with the
// given tolerance and returns the corresponding filled shape.
//
// Only the first sub-path is used. Holes are not supported; additional
// sub-paths are ignored.
func FromShape(shape curve.Shape, tolerance float64, b Brush, fill Fill) Shape {
	c := b.premul()
	var pts []curve.Point
	for el := range curve.Flatten(shape.PathElements(tolerance), tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			if len(pts) > 0 {
				// Second sub-path; stop.
				return newShape(pts, c, fill)
			}
			pts = append(pts, el.P0)
		case curve.LineToKind:
			pts = append(pts, el.P0)
		case curve.ClosePathKind:
			return newShape(pts, c, fill)
		}
	}
	return newShape(pts, c, fill)
}

func newShape(pts []curve.Point, c RGBA, fill Fill) Shape {
	// Closed paths commonly end on a copy of their first point; the closing
	// edge is implicit in Shape, so drop it.
	if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	return Shape{
		Outline: pts,
		Fill:    fill,
		Color:   c,
	}
}
