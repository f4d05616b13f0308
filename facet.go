// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package facet is a 2D rendering engine that draws filled vector shapes
// with the GPU. Shapes are described as flat outlines with a fill rule and
// a solid color, tessellated into triangle meshes on the CPU, cached, and
// drawn as one batched indexed draw call per frame.
//
// The engine doesn't open windows or create devices; the embedding
// application supplies the wgpu device, queue, and a render surface, and
// drives frames by calling RenderFrame.
package facet

import (
	"honnef.co/go/curve"
	"honnef.co/go/facet/engine/wgpu_engine"
	"honnef.co/go/facet/gfx"
	"honnef.co/go/facet/renderer"
	"honnef.co/go/wgpu"
)

type (
	Context = wgpu_engine.Engine
	Options = wgpu_engine.Options
	Surface = wgpu_engine.Surface

	Shape      = gfx.Shape
	Fill       = gfx.Fill
	RGBA       = gfx.RGBA
	Brush      = gfx.Brush
	SolidBrush = gfx.SolidBrush

	Key         = renderer.Key
	BatchHandle = renderer.BatchHandle

	DeviceInitError     = wgpu_engine.DeviceInitError
	SurfaceAcquireError = wgpu_engine.SurfaceAcquireError
	ReconfigureError    = wgpu_engine.ReconfigureError
)

const (
	NonZero = gfx.NonZero
	EvenOdd = gfx.EvenOdd
)

// New creates a rendering context for the given device, queue, and surface.
func New(dev *wgpu.Device, queue *wgpu.Queue, surface Surface, width, height uint32, opts *Options) (*Context, error) {
	return wgpu_engine.New(dev, queue, surface, width, height, opts)
}

// Polygon returns a shape for an arbitrary closed polygon in pixel
// coordinates.
func Polygon(pts []curve.Point, b Brush, fill Fill) Shape {
	return gfx.Polygon(pts, b, fill)
}

// FromShape flattens any curve.Shape into a filled polygonal shape.
func FromShape(shape curve.Shape, tolerance float64, b Brush, fill Fill) Shape {
	return gfx.FromShape(shape, tolerance, b, fill)
}
