// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package wgpu_engine

import (
	"honnef.co/go/wgpu"
)

// Surface is the platform render surface, owned by the embedding
// application together with the window it belongs to. The engine only
// configures it, acquires per-frame target textures from it, and presents.
type Surface interface {
	// Configure (re)binds the surface to the device at the given size.
	// It is called once during engine construction and again on every
	// resize.
	Configure(dev *wgpu.Device, width, height uint32) error

	// Format returns the texture format of target textures acquired from
	// this surface.
	Format() wgpu.TextureFormat

	// Acquire returns the next target texture to render into. It returns
	// an error if the surface has no texture available, for example
	// because it is busy or has been lost; the engine then skips the
	// frame.
	Acquire() (*wgpu.SurfaceTexture, error)

	// Present schedules the most recently acquired texture for display.
	Present()
}
