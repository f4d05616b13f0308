// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package mesh

import (
	"math"
	"reflect"
	"testing"

	"honnef.co/go/curve"
	"honnef.co/go/facet/gfx"
)

var red = gfx.RGBA{1, 0, 0, 1}

func poly(fill gfx.Fill, pts ...curve.Point) gfx.Shape {
	return gfx.Polygon(pts, red, fill)
}

// coveredArea sums the unsigned areas of all triangles in the mesh. As long
// as triangles don't overlap, this is the area covered by the mesh.
func coveredArea(m Mesh) float64 {
	var sum float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Pos
		b := m.Vertices[m.Indices[i+1]].Pos
		c := m.Vertices[m.Indices[i+2]].Pos
		sum += math.Abs(cross(a, b, c)) / 2
	}
	return sum
}

func cross(a, b, c [2]float32) float64 {
	return (float64(b[0])-float64(a[0]))*(float64(c[1])-float64(a[1])) -
		(float64(b[1])-float64(a[1]))*(float64(c[0])-float64(a[0]))
}

func checkMesh(t *testing.T, m Mesh) {
	t.Helper()
	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range for %d vertices", idx, len(m.Vertices))
		}
	}
	// All triangles share one winding, so that a single cull mode can be
	// used for the entire mesh.
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Pos
		b := m.Vertices[m.Indices[i+1]].Pos
		c := m.Vertices[m.Indices[i+2]].Pos
		if cr := cross(a, b, c); cr >= 0 {
			t.Errorf("triangle %d has cross product %v, want negative", i/3, cr)
		}
	}
}

func TestTessellateTriangle(t *testing.T) {
	m := Tessellate(poly(gfx.NonZero, curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(0, 1)))
	checkMesh(t, m)
	if len(m.Vertices) != 3 {
		t.Errorf("got %d vertices, want 3", len(m.Vertices))
	}
	if got := len(m.Indices) / 3; got != 1 {
		t.Errorf("got %d triangles, want 1", got)
	}
	if area := coveredArea(m); math.Abs(area-0.5) > 1e-6 {
		t.Errorf("covered area = %v, want 0.5", area)
	}
	for _, v := range m.Vertices {
		if v.Color != red {
			t.Errorf("vertex color = %v, want %v", v.Color, red)
		}
	}
}

func TestTessellateSquare(t *testing.T) {
	m := Tessellate(poly(gfx.NonZero, curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(1, 1), curve.Pt(0, 1)))
	checkMesh(t, m)
	if len(m.Vertices) != 4 {
		t.Errorf("got %d vertices, want 4", len(m.Vertices))
	}
	if got := len(m.Indices) / 3; got != 2 {
		t.Errorf("got %d triangles, want 2", got)
	}
	if area := coveredArea(m); math.Abs(area-1) > 1e-6 {
		t.Errorf("covered area = %v, want 1", area)
	}
}

func TestTessellateConvexFan(t *testing.T) {
	// Convex n-gons become fans of exactly n-2 triangles, regardless of the
	// outline's orientation.
	for n := 3; n <= 12; n++ {
		for _, flip := range []bool{false, true} {
			pts := make([]curve.Point, n)
			for i := range pts {
				a := 2 * math.Pi * float64(i) / float64(n)
				if flip {
					a = -a
				}
				pts[i] = curve.Pt(100+50*math.Cos(a), 100+50*math.Sin(a))
			}
			m := Tessellate(poly(gfx.NonZero, pts...))
			checkMesh(t, m)
			if len(m.Vertices) != n {
				t.Errorf("n=%d flip=%v: got %d vertices, want %d", n, flip, len(m.Vertices), n)
			}
			if got := len(m.Indices) / 3; got != n-2 {
				t.Errorf("n=%d flip=%v: got %d triangles, want %d", n, flip, got, n-2)
			}
		}
	}
}

func TestTessellateConvexCollinear(t *testing.T) {
	// 2x2 squares with a collinear midpoint on the bottom edge. Zero-area
	// fan triangles are dropped, so the triangle count depends on where
	// the fan's apex falls relative to the collinear run.
	tests := []struct {
		name          string
		pts           []curve.Point
		wantTriangles int
	}{
		{
			"run away from the apex",
			[]curve.Point{curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(2, 0), curve.Pt(2, 2), curve.Pt(0, 2)},
			3,
		},
		{
			"run ending at the apex",
			[]curve.Point{curve.Pt(1, 0), curve.Pt(2, 0), curve.Pt(2, 2), curve.Pt(0, 2), curve.Pt(0, 0)},
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Tessellate(poly(gfx.NonZero, tt.pts...))
			checkMesh(t, m)
			if len(m.Vertices) != 5 {
				t.Errorf("got %d vertices, want 5", len(m.Vertices))
			}
			if got := len(m.Indices) / 3; got != tt.wantTriangles {
				t.Errorf("got %d triangles, want %d", got, tt.wantTriangles)
			}
			if area := coveredArea(m); math.Abs(area-4) > 1e-6 {
				t.Errorf("covered area = %v, want 4", area)
			}
		})
	}
}

func TestTessellateDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		shape gfx.Shape
	}{
		{"empty", poly(gfx.NonZero)},
		{"single point", poly(gfx.NonZero, curve.Pt(1, 1))},
		{"two points", poly(gfx.NonZero, curve.Pt(0, 0), curve.Pt(1, 1))},
		{"collinear", poly(gfx.NonZero, curve.Pt(0, 0), curve.Pt(1, 1), curve.Pt(2, 2))},
		{"zero area sliver", poly(gfx.NonZero, curve.Pt(0, 0), curve.Pt(2, 0), curve.Pt(1, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Tessellate(tt.shape)
			if !m.IsEmpty() {
				t.Errorf("got %d vertices, %d indices, want empty mesh", len(m.Vertices), len(m.Indices))
			}
		})
	}
}

func TestTessellateConcave(t *testing.T) {
	// L shape, 2x2 with the top right 1x1 square missing.
	m := Tessellate(poly(gfx.NonZero,
		curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(1, 1),
		curve.Pt(2, 1), curve.Pt(2, 2), curve.Pt(0, 2),
	))
	checkMesh(t, m)
	if area := coveredArea(m); math.Abs(area-3) > 1e-6 {
		t.Errorf("covered area = %v, want 3", area)
	}
}

func TestTessellateBowtie(t *testing.T) {
	// Self-intersecting hourglass. Both lobes have winding magnitude 1 and
	// crossing parity 1, so both fill rules cover both lobes.
	outline := []curve.Point{curve.Pt(0, 0), curve.Pt(2, 0), curve.Pt(0, 2), curve.Pt(2, 2)}
	for _, fill := range []gfx.Fill{gfx.NonZero, gfx.EvenOdd} {
		m := Tessellate(gfx.Polygon(outline, red, fill))
		checkMesh(t, m)
		if area := coveredArea(m); math.Abs(area-2) > 1e-6 {
			t.Errorf("fill=%v: covered area = %v, want 2", fill, area)
		}
	}
}

func TestTessellateFillRules(t *testing.T) {
	// A square traversed twice has winding number two everywhere: nonzero
	// fills it, evenodd fills nothing.
	outline := []curve.Point{
		curve.Pt(0, 0), curve.Pt(2, 0), curve.Pt(2, 2), curve.Pt(0, 2),
		curve.Pt(0, 0), curve.Pt(2, 0), curve.Pt(2, 2), curve.Pt(0, 2),
	}

	m := Tessellate(gfx.Polygon(outline, red, gfx.NonZero))
	checkMesh(t, m)
	if area := coveredArea(m); math.Abs(area-4) > 1e-6 {
		t.Errorf("nonzero: covered area = %v, want 4", area)
	}

	m = Tessellate(gfx.Polygon(outline, red, gfx.EvenOdd))
	checkMesh(t, m)
	if area := coveredArea(m); area > 1e-6 {
		t.Errorf("evenodd: covered area = %v, want 0", area)
	}
}

func TestTessellateDeterministic(t *testing.T) {
	shapes := []gfx.Shape{
		poly(gfx.NonZero, curve.Pt(0, 0), curve.Pt(10, 0), curve.Pt(5, 8)),
		poly(gfx.NonZero,
			curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(1, 1),
			curve.Pt(2, 1), curve.Pt(2, 2), curve.Pt(0, 2),
		),
		poly(gfx.EvenOdd, curve.Pt(0, 0), curve.Pt(2, 0), curve.Pt(0, 2), curve.Pt(2, 2)),
	}
	for i, s := range shapes {
		m1 := Tessellate(s)
		m2 := Tessellate(s)
		if !reflect.DeepEqual(m1, m2) {
			t.Errorf("shape %d: repeated tessellation produced a different mesh", i)
		}
	}
}
