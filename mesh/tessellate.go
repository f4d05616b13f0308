// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package mesh

import (
	"cmp"
	"math"
	"slices"

	"honnef.co/go/curve"
	"honnef.co/go/facet/fmath"
	"honnef.co/go/facet/gfx"
)

// Tessellate converts a shape into a triangle mesh covering exactly the
// filled interior under the shape's fill rule.
//
// Degenerate outlines (fewer than three points, or no enclosed area)
// produce an empty mesh, never an error. Convex outlines of n points
// produce a fan of exactly n-2 triangles. Concave and self-intersecting
// outlines go through a scanline sweep that resolves coverage with the
// declared fill rule; self-intersections never fail, they simply resolve to
// whatever the rule says is inside.
//
// Tessellate is deterministic: the same outline, fill rule and color always
// produce an identical mesh.
func Tessellate(shape gfx.Shape) Mesh {
	pts := shape.Outline
	if len(pts) < 3 {
		return Mesh{}
	}
	if fmath.IsConvex(pts) {
		return fan(pts, shape.Color)
	}
	return sweep(pts, shape.Fill, shape.Color)
}

// fan triangulates a convex polygon around its first vertex. The outline
// orientation is normalized so that emitted triangles are counterclockwise
// in device coordinates.
func fan(pts []curve.Point, c gfx.RGBA) Mesh {
	if fmath.SignedArea(pts) > 0 {
		rev := make([]curve.Point, len(pts))
		for i, p := range pts {
			rev[len(pts)-1-i] = p
		}
		pts = rev
	}
	verts := make([]Vertex, len(pts))
	for i, p := range pts {
		verts[i] = Vertex{
			Pos:   [2]float32{float32(p.X), float32(p.Y)},
			Color: c,
		}
	}
	idxs := make([]uint32, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		// Collinear runs in the outline make some fan triangles
		// zero-area; they cover nothing and would violate the mesh's
		// strict winding.
		if math.Abs(fmath.Cross(pts[0], pts[i], pts[i+1])) <= fmath.Epsilon {
			continue
		}
		idxs = append(idxs, 0, uint32(i), uint32(i+1))
	}
	return Mesh{Vertices: verts, Indices: idxs}
}

// edge is one non-horizontal outline edge, oriented top to bottom. dir
// tracks the original direction for the nonzero winding count: +1 when the
// outline ran downwards, -1 when it ran upwards.
type edge struct {
	top, bot curve.Point
	dir      int
}

func (e *edge) xAt(y float64) float64 {
	t := (y - e.top.Y) / (e.bot.Y - e.top.Y)
	return e.top.X + t*(e.bot.X-e.top.X)
}

// crossing is one edge intersecting the current scan band, evaluated at the
// band's top, middle and bottom.
type crossing struct {
	xMid, xTop, xBot float64
	dir              int
	idx              int
}

// sweep decomposes the polygon's interior into trapezoids, one scan band at
// a time, and triangulates them. Band boundaries are placed at every vertex
// y and at every edge/edge intersection y, so within a band the left-to-
// right order of edges cannot change and winding numbers are constant
// between neighboring edges.
func sweep(pts []curve.Point, fill gfx.Fill, c gfx.RGBA) Mesh {
	var edges []edge
	for i := range pts {
		p0 := pts[i]
		p1 := pts[(i+1)%len(pts)]
		if math.Abs(p0.Y-p1.Y) <= fmath.Epsilon {
			// Horizontal edges never cross a band midline.
			continue
		}
		if p0.Y < p1.Y {
			edges = append(edges, edge{top: p0, bot: p1, dir: 1})
		} else {
			edges = append(edges, edge{top: p1, bot: p0, dir: -1})
		}
	}
	if len(edges) < 2 {
		return Mesh{}
	}

	ys := make([]float64, 0, 2*len(edges))
	for _, e := range edges {
		ys = append(ys, e.top.Y, e.bot.Y)
	}
	for i := range pts {
		a0 := pts[i]
		a1 := pts[(i+1)%len(pts)]
		for j := i + 1; j < len(pts); j++ {
			b0 := pts[j]
			b1 := pts[(j+1)%len(pts)]
			if p, ok := fmath.SegmentIntersection(a0, a1, b0, b1); ok {
				ys = append(ys, p.Y)
			}
		}
	}
	slices.Sort(ys)
	ys = slices.CompactFunc(ys, func(a, b float64) bool {
		return math.Abs(a-b) <= fmath.Epsilon
	})

	var m Mesh
	var crossings []crossing
	for band := 0; band < len(ys)-1; band++ {
		y0 := ys[band]
		y1 := ys[band+1]
		yMid := (y0 + y1) / 2

		crossings = crossings[:0]
		for i := range edges {
			e := &edges[i]
			if e.top.Y-fmath.Epsilon > yMid || e.bot.Y+fmath.Epsilon < yMid {
				continue
			}
			crossings = append(crossings, crossing{
				xMid: e.xAt(yMid),
				xTop: e.xAt(y0),
				xBot: e.xAt(y1),
				dir:  e.dir,
				idx:  i,
			})
		}
		slices.SortFunc(crossings, func(a, b crossing) int {
			if c := cmp.Compare(a.xMid, b.xMid); c != 0 {
				return c
			}
			if c := cmp.Compare(a.xTop, b.xTop); c != 0 {
				return c
			}
			return cmp.Compare(a.idx, b.idx)
		})

		winding := 0
		for i := 0; i < len(crossings)-1; i++ {
			winding += crossings[i].dir
			var inside bool
			switch fill {
			case gfx.NonZero:
				inside = winding != 0
			case gfx.EvenOdd:
				inside = (i+1)%2 == 1
			}
			if inside {
				m.trapezoid(
					crossings[i].xTop, crossings[i+1].xTop, y0,
					crossings[i].xBot, crossings[i+1].xBot, y1,
					c,
				)
			}
		}
	}
	return m
}

// trapezoid appends the band slab with top edge (xl0,y0)-(xr0,y0) and
// bottom edge (xl1,y1)-(xr1,y1). Either edge may be degenerate, in which
// case a single triangle is emitted.
func (m *Mesh) trapezoid(xl0, xr0, y0, xl1, xr1, y1 float64, c gfx.RGBA) {
	tl := curve.Point{X: xl0, Y: y0}
	tr := curve.Point{X: xr0, Y: y0}
	br := curve.Point{X: xr1, Y: y1}
	bl := curve.Point{X: xl1, Y: y1}

	base := uint32(len(m.Vertices))
	for _, p := range [4]curve.Point{tl, tr, br, bl} {
		m.Vertices = append(m.Vertices, Vertex{
			Pos:   [2]float32{float32(p.X), float32(p.Y)},
			Color: c,
		})
	}
	n := len(m.Indices)
	m.triangle(base, base+1, base+2, tl, tr, br)
	m.triangle(base, base+2, base+3, tl, br, bl)
	if len(m.Indices) == n {
		// Both triangles degenerate; drop the unused vertices again.
		m.Vertices = m.Vertices[:base]
	}
}

// triangle appends one triangle, skipping degenerate ones and flipping the
// vertex order where needed to keep the mesh's winding uniform.
func (m *Mesh) triangle(i0, i1, i2 uint32, p0, p1, p2 curve.Point) {
	cr := fmath.Cross(p0, p1, p2)
	if math.Abs(cr) <= fmath.Epsilon {
		return
	}
	if cr > 0 {
		i1, i2 = i2, i1
	}
	m.Indices = append(m.Indices, i0, i1, i2)
}
