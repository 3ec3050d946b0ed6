// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/terra-gfx/terra/internal/model"
	"github.com/terra-gfx/terra/internal/pipeline"
)

// Variant tags which of the three render engine variants an instance
// runs as. Per SPEC_FULL's dynamic-dispatch design note, RenderEngine is
// a tagged struct rather than an interface hierarchy: the host picks one
// variant at construction time and it never changes.
type Variant int

const (
	VariantVSIndividual Variant = iota
	VariantVSIndirect
	VariantMS
)

func (v Variant) String() string {
	switch v {
	case VariantVSIndividual:
		return "vs-individual"
	case VariantVSIndirect:
		return "vs-indirect"
	case VariantMS:
		return "mesh-shader"
	default:
		return "unknown"
	}
}

// ExternalGraphicsPipeline is the host-facing, comparable pipeline
// description add_graphics_pipeline accepts. It is exactly
// pipeline.GraphicsDescription: both the field set and the Equals-based
// lookup pipeline.Manager.AddOrGet performs are already what spec.md §4.7
// describes, so Terra does not wrap it in a second type.
type ExternalGraphicsPipeline = pipeline.GraphicsDescription

// MeshData is one mesh's host-supplied geometry within a
// MeshBundleTemporary, shaped for the VS variants: a run of vertices, a
// run of 32-bit indices, and a single AABB.
type MeshData struct {
	Vertices []model.Vertex
	Indices  []uint32
	AABB     model.AABB
}

// MeshletDetail describes one meshlet's slice of the bundle's
// vertex-index/primitive-index ranges, per spec.md §4.9's MS draw
// (meshlet_count, 1, 1) with push constant (model_index, meshlet_offset).
type MeshletDetail struct {
	VertexOffset    uint32
	VertexCount     uint32
	PrimitiveOffset uint32
	PrimitiveCount  uint32
}

// MeshDataMS is one mesh's host-supplied geometry within a
// MeshBundleTemporary for the MS variant: vertex, vertex-index and
// primitive-index runs plus the meshlet descriptor table.
type MeshDataMS struct {
	Vertices         []model.Vertex
	VertexIndices    []uint32
	PrimitiveIndices []uint32
	Meshlets         []MeshletDetail
}

// MeshBundleTemporary is the host's add_mesh_bundle input: a batch of
// meshes uploaded and registered together, freed together by
// remove_mesh_bundle. Exactly one of VS/MS is populated, matching the
// engine's variant.
type MeshBundleTemporary struct {
	VS []MeshData
	MS []MeshDataMS
}

// ModelBundleEntry places one mesh (by its index within the owning
// MeshBundleTemporary) at a world transform, bound to a pipeline.
type ModelBundleEntry struct {
	MeshIndex int
	Transform [16]float32
	PipelineID uint32
}

// ModelBundle is the host's add_model_bundle input: a named mesh bundle
// plus a list of model instances drawing from it.
type ModelBundle struct {
	MeshBundleID uint32
	Models       []ModelBundleEntry
}

// meshBundleRecord tracks the mesh handles a mesh bundle registered, so
// remove_mesh_bundle can free every member mesh as one unit.
type meshBundleRecord struct {
	meshes []model.MeshHandle
}

// modelBundleRecord tracks the model handles (and their pipeline
// bindings) a model bundle registered, so remove_model_bundle and
// change_model_pipeline_in_bundle can address individual members.
type modelBundleRecord struct {
	models     []model.ModelHandle
	pipelineID []uint32
}
