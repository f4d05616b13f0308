// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package wgpu_engine

import (
	"honnef.co/go/color"
	"honnef.co/go/facet/gfx"
	"honnef.co/go/facet/mem"
	"honnef.co/go/facet/profiler"
	"honnef.co/go/wgpu"
)

// RenderFrame renders and presents exactly one frame: acquire the surface
// target, refresh the geometry buffers, clear, draw the current batch with
// one indexed draw call, submit, present.
//
// If no target texture is available the frame is skipped and a
// *SurfaceAcquireError is returned; nothing has been uploaded or submitted
// at that point and the next call starts fresh. RenderFrame does no pacing;
// the embedding application controls how often it is called. Submission is
// asynchronous, the call doesn't wait for the GPU to finish.
//
// A nil clear color clears to opaque black.
func (eng *Engine) RenderFrame(clear *color.Color) error {
	pgroup := eng.prof.Start("RenderFrame")
	defer pgroup.End()

	surfTex, err := eng.surface.Acquire()
	if err != nil {
		return &SurfaceAcquireError{Err: err}
	}

	eng.refreshGeometry(pgroup)

	clearValue := wgpu.Color{A: 1}
	if clear != nil {
		c := gfx.Premul32(clear)
		clearValue = wgpu.Color{
			R: float64(c[0]),
			G: float64(c[1]),
			B: float64(c[2]),
			A: float64(c[3]),
		}
	}

	view := surfTex.Texture.CreateView(nil)
	defer view.Release()

	encoder := eng.dev.CreateCommandEncoder(mem.Make(eng.arena, wgpu.CommandEncoderDescriptor{
		Label: "frame",
	}))
	defer encoder.Release()

	pass := encoder.BeginRenderPass(mem.Make(eng.arena, wgpu.RenderPassDescriptor{
		ColorAttachments: mem.Varargs(eng.arena, wgpu.RenderPassColorAttachment{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: clearValue,
		}),
	}))
	if eng.geometry.indexCount > 0 {
		pass.SetPipeline(eng.pipeline.Pipeline)
		pass.SetVertexBuffer(0, eng.geometry.vertices, 0, eng.geometry.vertexLen)
		pass.SetIndexBuffer(eng.geometry.indices, wgpu.IndexFormatUint32, 0, eng.geometry.indexLen)
		pass.DrawIndexed(eng.geometry.indexCount, 1, 0, 0, 0)
	}
	pass.End()
	pass.Release()

	cmd := encoder.Finish(nil)
	defer cmd.Release()
	eng.queue.Submit(cmd)
	eng.surface.Present()

	eng.arena.Reset()
	return nil
}

// refreshGeometry re-tessellates and re-uploads only what changed: the
// batch is rebuilt when shapes or the target extent changed, and uploaded
// only when its content hash differs from what the GPU already holds.
func (eng *Engine) refreshGeometry(pgroup profiler.ProfilerGroup) {
	g := pgroup.Start("geometry")
	defer g.End()

	if !eng.dirty {
		return
	}
	eng.batch.Reset(eng.width, eng.height)
	for id, inst := range eng.scene.All() {
		m := eng.cache.Lookup(id, inst.Version, inst.Shape)
		eng.batch.Append(id, inst.Version, m)
	}
	eng.dirty = false

	if eng.batch.Hash() == eng.uploadedHash {
		return
	}
	eng.geometry.upload(eng.dev, eng.queue, &eng.batch)
	eng.uploadedHash = eng.batch.Hash()
}
