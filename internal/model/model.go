// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package model implements the per-engine-variant model and mesh
// managers: VS-individual (one vkCmdDrawIndexed per model), VS-indirect
// (GPU frustum culling feeding vkCmdDrawIndexedIndirectCount), and MS
// (mesh-shader draws via vkCmdDrawMeshTasksEXT). There is no direct
// teacher file for any of this — the draw/dispatch recording idiom is
// grounded on the teacher's command-recording style (struct-literal
// arguments into `cmds.Cmd*` wrappers) and its compute-dispatch tests.
package model

import (
	"github.com/terra-gfx/terra/internal/handle"
)

// Vertex is the engine's single fixed vertex layout, matching the
// attribute bindings internal/pipeline.BuildGraphicsPipeline wires up
// for non-mesh-shader pipelines: tightly packed (vec3 position, vec3
// normal, vec2 uv).
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// AABB is an axis-aligned bounding box, stored GPU-side as two padded
// vec4s (std430 alignment) so the culling compute shader can index it
// directly.
type AABB struct {
	Min [3]float32
	_   float32
	Max [3]float32
	_   float32
}

// InstanceData is one model's per-frame GPU record: its world transform
// (row-major 4x4) and the index of the mesh it draws. Padded to 16
// bytes past the matrix for std430 alignment.
type InstanceData struct {
	Transform [16]float32
	MeshIndex uint32
	_         [3]uint32
}

// Identity returns a 4x4 identity transform in row-major order.
func Identity() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MeshHandle identifies a mesh registered with a mesh manager.
type MeshHandle = handle.Handle[meshRecord]

// ModelHandle identifies a model registered with a model manager.
type ModelHandle = handle.Handle[modelRecord]

type meshRecord struct {
	// VS-individual / VS-indirect geometry range within the shared
	// vertex/index buffers.
	VertexOffset uint32
	VertexCount  uint32
	IndexOffset  uint32
	IndexCount   uint32
	AABBIndex    uint32

	// MS geometry range within the four mesh-shader shared buffers.
	VertexIndexOffset    uint32
	VertexIndexCount     uint32
	PrimitiveIndexOffset uint32
	PrimitiveIndexCount  uint32
	MeshletOffset        uint32
	MeshletCount         uint32
}

type modelRecord struct {
	Mesh      MeshHandle
	Transform [16]float32
}

// CameraFrustum carries the six clip-space frustum planes the culling
// compute shader tests each model's AABB against.
type CameraFrustum struct {
	Planes [6][4]float32
}

func ceilDiv(n, d uint32) uint32 {
	if n == 0 {
		return 0
	}
	return (n + d - 1) / d
}

// PipelineDetails groups the models one graphics pipeline draws into
// bundles, letting the render loop iterate (bundle, local index) →
// model without re-scanning the full model container per pipeline.
// PipelineGlobal is the slot index a pipeline.Manager returned for this
// pipeline; ModelBundleIndices holds each bundle's model indices
// concatenated, and PipelineLocalIndices is the parallel per-entry
// local index within its bundle (e.g. which draw call inside a batched
// indirect dispatch).
type PipelineDetails struct {
	PipelineGlobal       int
	ModelBundleIndices   []uint32
	PipelineLocalIndices []uint32
}

// Each calls fn once per (bundle, local index, model index) entry, in
// ModelBundleIndices order.
func (p PipelineDetails) Each(fn func(localIndex int, modelIndex uint32)) {
	for i, modelIndex := range p.ModelBundleIndices {
		fn(int(p.PipelineLocalIndices[i]), modelIndex)
	}
}
