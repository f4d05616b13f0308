// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package wgpu_engine

import (
	"honnef.co/go/facet/mesh"
	"honnef.co/go/wgpu"
)

// The fill pipeline draws solid-colored triangle lists. Vertex positions
// arrive already in normalized device coordinates and pass straight through
// to clip space; the fragment stage returns the interpolated vertex color.
// Future brush kinds (gradients, images) get their own pipelines; this one
// stays as it is.
const fillWGSL = `
		struct VertexIn {
			@location(0) position: vec2<f32>,
			@location(1) color: vec4<f32>,
		}

		struct VertexOut {
			@builtin(position) position: vec4<f32>,
			@location(0) color: vec4<f32>,
		}

		@vertex
		fn vs_main(in: VertexIn) -> VertexOut {
			var out: VertexOut;
			out.position = vec4(in.position, 0.0, 1.0);
			out.color = in.color;
			return out;
		}

		@fragment
		fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
			return in.color;
		}`

type fillPipeline struct {
	Pipeline *wgpu.RenderPipeline
}

func newFillPipeline(dev *wgpu.Device, format wgpu.TextureFormat) *fillPipeline {
	shader := dev.CreateShaderModule(wgpu.ShaderModuleDescriptor{
		Label:  "fill shaders",
		Source: wgpu.ShaderSourceWGSL(fillWGSL),
	})
	pipelineLayout := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "fill pipeline layout",
	})
	pipeline := dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "fill pipeline",
		Layout: pipelineLayout,
		Vertex: &wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: mesh.VertexStride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         0,
							ShaderLocation: 0,
						},
						{
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         8,
							ShaderLocation: 1,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: &wgpu.PrimitiveState{
			Topology:         wgpu.PrimitiveTopologyTriangleList,
			StripIndexFormat: ^wgpu.IndexFormat(0),
			FrontFace:        wgpu.FrontFaceCCW,
			CullMode:         wgpu.CullModeBack,
		},
		Multisample: &wgpu.MultisampleState{
			Count:                  1,
			Mask:                   ^uint32(0),
			AlphaToCoverageEnabled: false,
		},
	})
	pipelineLayout.Release()
	return &fillPipeline{Pipeline: pipeline}
}
