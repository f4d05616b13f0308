// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package wgpu_engine draws filled 2D vector shapes with wgpu. The engine
// receives the device, queue and surface from the embedding application,
// builds its render pipeline once, and turns submitted shapes into batched
// indexed draw calls, one frame per RenderFrame call.
//
// The engine expects a single calling goroutine and starts none of its own.
// Embedders that render from multiple goroutines have to serialize access
// themselves.
package wgpu_engine

import (
	"fmt"

	"honnef.co/go/facet/gfx"
	"honnef.co/go/facet/mem"
	"honnef.co/go/facet/profiler"
	"honnef.co/go/facet/renderer"
	"honnef.co/go/wgpu"
)

type Options struct {
	// Profiler receives per-frame timing spans. Nil disables profiling.
	Profiler profiler.ProfilerGroup
}

// Engine owns the connection to the rendering device for its lifetime: the
// device, queue, the configured surface binding, exactly one render
// pipeline, and one live geometry allocation.
type Engine struct {
	dev     *wgpu.Device
	queue   *wgpu.Queue
	surface Surface

	width, height uint32

	pipeline *fillPipeline
	geometry geometryBuffer

	scene        renderer.Scene
	cache        *renderer.Cache
	batch        renderer.Batch
	dirty        bool
	uploadedHash uint64
	handle       renderer.BatchHandle

	arena *mem.Arena
	prof  profiler.ProfilerGroup
}

// New creates an engine bound to the given surface. The device and queue
// come from the embedding application, which keeps them shared with
// whatever else it renders. Construction failures are fatal and returned
// as *DeviceInitError; New never retries.
func New(dev *wgpu.Device, queue *wgpu.Queue, surface Surface, width, height uint32, opts *Options) (*Engine, error) {
	if dev == nil {
		return nil, &DeviceInitError{Reason: "no device"}
	}
	if queue == nil {
		return nil, &DeviceInitError{Reason: "no queue"}
	}
	if surface == nil {
		return nil, &DeviceInitError{Reason: "no surface"}
	}
	if width == 0 || height == 0 {
		return nil, &DeviceInitError{Reason: fmt.Sprintf("invalid initial dimensions %dx%d", width, height)}
	}
	if err := surface.Configure(dev, width, height); err != nil {
		return nil, &DeviceInitError{Reason: "configuring surface", Err: err}
	}

	var prof profiler.ProfilerGroup = profiler.Nop()
	if opts != nil && opts.Profiler != nil {
		prof = opts.Profiler
	}

	return &Engine{
		dev:      dev,
		queue:    queue,
		surface:  surface,
		width:    width,
		height:   height,
		pipeline: newFillPipeline(dev, surface.Format()),
		cache:    renderer.NewCache(),
		dirty:    true,
		arena:    mem.NewArena(),
		prof:     prof,
	}, nil
}

// SubmitShapes replaces the engine's shapes with the given ones, in draw
// order, and returns a handle identifying the new batch. Tessellation
// happens lazily during the next RenderFrame, through the mesh cache.
func (eng *Engine) SubmitShapes(shapes []gfx.Shape) renderer.BatchHandle {
	eng.dropCachedMeshes()
	eng.scene.Clear()
	for _, s := range shapes {
		eng.scene.Add(0, s)
	}
	eng.dirty = true
	eng.handle++
	return eng.handle
}

// AddShape inserts a single shape into the given layer. Layers draw in
// ascending order; within a layer, shapes draw in insertion order.
func (eng *Engine) AddShape(layer int, s gfx.Shape) renderer.Key {
	eng.dirty = true
	return eng.scene.Add(layer, s)
}

// Shape returns the shape stored under key.
func (eng *Engine) Shape(key renderer.Key) (gfx.Shape, bool) {
	return eng.scene.Shape(key)
}

// UpdateShape replaces the shape stored under key and bumps its geometry
// version, so that its mesh is re-tessellated on the next frame.
func (eng *Engine) UpdateShape(key renderer.Key, s gfx.Shape) bool {
	if !eng.scene.Update(key, s) {
		return false
	}
	eng.dirty = true
	return true
}

// RemoveShape deletes a single shape and its cached mesh. Shapes after it
// in the same layer shift down by one index. It reports whether the key was
// valid.
func (eng *Engine) RemoveShape(key renderer.Key) bool {
	id, ok := eng.scene.Remove(key)
	if !ok {
		return false
	}
	eng.cache.Remove(id)
	eng.dirty = true
	return true
}

// RemoveLayer deletes a layer and all shapes in it, along with their cached
// meshes. It reports whether the layer existed.
func (eng *Engine) RemoveLayer(layer int) bool {
	ids := eng.scene.RemoveLayer(layer)
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		eng.cache.Remove(id)
	}
	eng.dirty = true
	return true
}

// ClearShapes removes all shapes.
func (eng *Engine) ClearShapes() {
	eng.dropCachedMeshes()
	eng.scene.Clear()
	eng.dirty = true
}

func (eng *Engine) dropCachedMeshes() {
	for id := range eng.scene.All() {
		eng.cache.Remove(id)
	}
}

// Resize rebinds the surface for new target dimensions. Only the
// surface-dependent state changes; the pipeline and geometry buffers stay
// untouched, and vertex data is re-normalized for the new extent on the
// next frame.
func (eng *Engine) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return &ReconfigureError{Width: width, Height: height}
	}
	if err := eng.surface.Configure(eng.dev, width, height); err != nil {
		return &ReconfigureError{Width: width, Height: height, Err: err}
	}
	eng.width = width
	eng.height = height
	eng.dirty = true
	return nil
}

// Size returns the current target dimensions.
func (eng *Engine) Size() (width, height uint32) {
	return eng.width, eng.height
}

// Release frees the engine's GPU resources. The engine must not be used
// afterwards.
func (eng *Engine) Release() {
	eng.geometry.release()
	if eng.pipeline != nil {
		eng.pipeline.Pipeline.Release()
		eng.pipeline = nil
	}
}
