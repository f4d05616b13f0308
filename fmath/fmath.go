// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package fmath provides the small amount of geometry and layout math shared
// by the tessellator and the GPU engine.
package fmath

import (
	"math"

	"golang.org/x/exp/constraints"
	"honnef.co/go/curve"
)

const Epsilon = 1e-9

// AlignUp rounds n up to the next multiple of alignment. alignment has to be
// a power of two.
func AlignUp[T constraints.Integer](n, alignment T) T {
	return (n + alignment - 1) & -alignment
}

// NDC maps an absolute coordinate in [0, length] to a normalized device
// coordinate in [-1, 1].
func NDC(v float64, length uint32) float32 {
	return float32(v/float64(length)*2 - 1)
}

// ToNDC maps a point in pixel space (origin top left, y growing downwards)
// to normalized device coordinates (origin center, y growing upwards).
func ToNDC(p curve.Point, width, height uint32) [2]float32 {
	return [2]float32{NDC(p.X, width), -NDC(p.Y, height)}
}

// Cross returns the z component of the cross product of the vectors ab and
// ac. In pixel space (y growing downwards), a negative value means that the
// triangle abc is counterclockwise once the y axis has been flipped for
// device coordinates.
func Cross(a, b, c curve.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// SignedArea computes the signed shoelace area of a closed polygon. The sign
// follows the same convention as Cross.
func SignedArea(pts []curve.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// IsConvex reports whether the closed polygon is convex. Collinear runs of
// vertices are allowed; self-intersecting outlines are not convex.
func IsConvex(pts []curve.Point) bool {
	if len(pts) < 3 {
		return false
	}
	// A polygon is convex iff all turns have the same sign and the total
	// turning is one full revolution. The second condition rules out
	// outlines that wind around more than once, like a pentagram given in
	// point order, whose turns are all the same sign too.
	var sign, total float64
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		c := pts[(i+2)%len(pts)]
		d1 := curve.Vec2{X: b.X - a.X, Y: b.Y - a.Y}
		d2 := curve.Vec2{X: c.X - b.X, Y: c.Y - b.Y}
		if (d1.X == 0 && d1.Y == 0) || (d2.X == 0 && d2.Y == 0) {
			// Repeated vertex.
			continue
		}
		cr := d1.X*d2.Y - d1.Y*d2.X
		dot := d1.X*d2.X + d1.Y*d2.Y
		if math.Abs(cr) <= Epsilon {
			if dot < 0 {
				// The outline reverses onto itself.
				return false
			}
			continue
		}
		if sign == 0 {
			sign = cr
		} else if (cr < 0) != (sign < 0) {
			return false
		}
		total += math.Atan2(cr, dot)
	}
	if sign == 0 {
		// All vertices collinear.
		return false
	}
	return math.Abs(total) < 3*math.Pi
}

// SegmentIntersection returns the intersection point of the open segments
// a0a1 and b0b1, if any. Touching endpoints don't count as intersections.
func SegmentIntersection(a0, a1, b0, b1 curve.Point) (curve.Point, bool) {
	d1 := curve.Vec2{X: a1.X - a0.X, Y: a1.Y - a0.Y}
	d2 := curve.Vec2{X: b1.X - b0.X, Y: b1.Y - b0.Y}
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) <= Epsilon {
		return curve.Point{}, false
	}
	t := ((b0.X-a0.X)*d2.Y - (b0.Y-a0.Y)*d2.X) / denom
	u := ((b0.X-a0.X)*d1.Y - (b0.Y-a0.Y)*d1.X) / denom
	if t <= Epsilon || t >= 1-Epsilon || u <= Epsilon || u >= 1-Epsilon {
		return curve.Point{}, false
	}
	return curve.Point{X: a0.X + t*d1.X, Y: a0.Y + t*d1.Y}, true
}
