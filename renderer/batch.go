// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package renderer

import (
	"encoding/binary"
	"hash/fnv"

	"honnef.co/go/curve"
	"honnef.co/go/facet/fmath"
	"honnef.co/go/facet/mesh"
)

// BatchHandle identifies one shape submission. Handles are only compared
// for equality; a new handle means the batch composition may have changed.
type BatchHandle uint64

// Batch packs any number of meshes into a single pair of vertex/index
// lists, ready to be uploaded into one GPU allocation and drawn with one
// indexed draw call. Vertices are appended verbatim except that positions
// are converted from pixel space to normalized device coordinates for the
// batch's target extent; each mesh's indices are shifted by the vertex
// count of the meshes before it.
type Batch struct {
	Vertices []mesh.Vertex
	Indices  []uint32
	// Spans locates each appended mesh within Indices. The frame renderer
	// draws the whole batch with one call; the spans allow redrawing
	// individual meshes.
	Spans []DrawSpan

	width, height uint32
	hash          uint64
}

// DrawSpan is the index range of one mesh within a batch.
type DrawSpan struct {
	FirstIndex uint32
	IndexCount uint32
}

// Reset empties the batch and sets the target extent for the next build.
// Allocated capacity is kept.
func (b *Batch) Reset(width, height uint32) {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
	b.Spans = b.Spans[:0]
	b.width = width
	b.height = height

	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:], width)
	binary.LittleEndian.PutUint32(buf[4:], height)
	h.Write(buf[:])
	b.hash = h.Sum64()
}

// Append adds one mesh to the batch. id and version identify the mesh's
// geometry and feed the content hash that upload skipping is based on.
func (b *Batch) Append(id ShapeID, version uint64, m mesh.Mesh) {
	offset := uint32(len(b.Vertices))
	for _, v := range m.Vertices {
		v.Pos = fmath.ToNDC(curve.Point{
			X: float64(v.Pos[0]),
			Y: float64(v.Pos[1]),
		}, b.width, b.height)
		b.Vertices = append(b.Vertices, v)
	}
	b.Spans = append(b.Spans, DrawSpan{
		FirstIndex: uint32(len(b.Indices)),
		IndexCount: uint32(len(m.Indices)),
	})
	for _, idx := range m.Indices {
		b.Indices = append(b.Indices, idx+offset)
	}

	h := fnv.New64a()
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], b.hash)
	binary.LittleEndian.PutUint64(buf[8:], uint64(id))
	binary.LittleEndian.PutUint64(buf[16:], version)
	h.Write(buf[:])
	b.hash = h.Sum64()
}

// Hash is a content hash over the batch's composition (shape identities,
// geometry versions, order) and target extent. Two builds with the same
// hash contain the same geometry, so an upload may be skipped.
func (b *Batch) Hash() uint64 {
	return b.hash
}

// Meshes returns the number of meshes appended since the last Reset,
// including empty ones.
func (b *Batch) Meshes() int {
	return len(b.Spans)
}
