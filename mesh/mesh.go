// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package mesh turns shape outlines into triangle meshes that the GPU
// engine can draw.
package mesh

import (
	"structs"
)

// Vertex matches the render pipeline's vertex buffer layout: attribute
// location 0 is the position, location 1 the premultiplied color.
type Vertex struct {
	_ structs.HostLayout

	Pos   [2]float32
	Color [4]float32
}

// VertexStride is the size of a Vertex in bytes.
const VertexStride = 24

// Mesh is a list of triangles. Invariants: every index is smaller than
// len(Vertices), len(Indices) is a multiple of three, and all triangles
// share one winding direction (counterclockwise once the y axis has been
// flipped for device coordinates).
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func (m Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Triangles returns the number of triangles in the mesh.
func (m Mesh) Triangles() int {
	return len(m.Indices) / 3
}
