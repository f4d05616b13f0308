// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package wgpu_engine

import (
	"honnef.co/go/facet/fmath"
	"honnef.co/go/facet/renderer"
	"honnef.co/go/safeish"
	"honnef.co/go/wgpu"
)

// Buffers start at this many bytes so that small scenes don't trigger a
// cascade of reallocations.
const minGeometryBytes = 1 << 12

// wgpu buffer sizes and write ranges must be multiples of 4 bytes.
const bufferAlignment = 4

// geometryBuffer owns the engine's single live GPU vertex/index
// allocation. Capacity only grows: when a batch needs more room, a new
// buffer of at least twice the previous capacity is allocated and the old
// one is released. Running out of capacity is never visible to callers;
// every upload rewrites the full batch, so growth doesn't need to preserve
// old contents.
type geometryBuffer struct {
	vertices *wgpu.Buffer
	indices  *wgpu.Buffer
	// capacities and used lengths, in bytes
	vertexCap, indexCap uint64
	vertexLen, indexLen uint64

	indexCount uint32
}

// upload refreshes the GPU buffers with the batch's contents, growing them
// as needed.
func (g *geometryBuffer) upload(dev *wgpu.Device, queue *wgpu.Queue, batch *renderer.Batch) {
	vbytes := safeish.SliceCast[[]byte](batch.Vertices)
	ibytes := safeish.SliceCast[[]byte](batch.Indices)

	g.vertices = ensureBuffer(dev, g.vertices, &g.vertexCap, uint64(len(vbytes)),
		wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst, "geometry vertices")
	g.indices = ensureBuffer(dev, g.indices, &g.indexCap, uint64(len(ibytes)),
		wgpu.BufferUsageIndex|wgpu.BufferUsageCopyDst, "geometry indices")

	if len(vbytes) > 0 {
		queue.WriteBuffer(g.vertices, 0, vbytes)
	}
	if len(ibytes) > 0 {
		queue.WriteBuffer(g.indices, 0, ibytes)
	}
	g.vertexLen = uint64(len(vbytes))
	g.indexLen = uint64(len(ibytes))
	g.indexCount = uint32(len(batch.Indices))
}

func ensureBuffer(dev *wgpu.Device, buf *wgpu.Buffer, capacity *uint64, need uint64, usage wgpu.BufferUsage, label string) *wgpu.Buffer {
	if buf != nil && *capacity >= need {
		return buf
	}
	if buf != nil {
		buf.Release()
	}
	*capacity = growCapacity(*capacity, need)
	return dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  *capacity,
		Usage: usage,
	})
}

func growCapacity(capacity, need uint64) uint64 {
	return fmath.AlignUp(max(2*capacity, need, minGeometryBytes), bufferAlignment)
}

func (g *geometryBuffer) release() {
	if g.vertices != nil {
		g.vertices.Release()
		g.vertices = nil
	}
	if g.indices != nil {
		g.indices.Release()
		g.indices = nil
	}
	g.vertexCap = 0
	g.indexCap = 0
	g.vertexLen = 0
	g.indexLen = 0
	g.indexCount = 0
}
