// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/gpusync"
	"github.com/terra-gfx/terra/internal/handle"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/model"
	"github.com/terra-gfx/terra/internal/pipeline"
	"github.com/terra-gfx/terra/internal/staging"
)

// RenderEngine is the tagged struct SPEC_FULL's dynamic-dispatch note
// calls for: one of three variant-specific mesh/model manager pairs,
// plus the graphics pipeline manager every variant shares and the
// compute pipeline manager only VS-indirect populates.
type RenderEngine struct {
	variant Variant

	device vk.Device
	cmds   *vk.Commands

	meshesVS *model.MeshManagerVSIndividual
	modelsVS *model.ModelManagerVSIndividual

	meshesVSIndirect *model.MeshManagerVSIndividual
	modelsVSIndirect *model.ModelManagerVSIndirect
	cullPipelines    *pipeline.Manager[pipeline.ComputeDescription]

	meshesMS *model.MeshManagerMS
	modelsMS *model.ModelManagerMS

	graphicsPipelines *pipeline.Manager[pipeline.GraphicsDescription]

	meshBundles  *handle.Arena[meshBundleRecord]
	modelBundles *handle.Arena[modelBundleRecord]

	framesInFlight int
}

// NewRenderEngine creates the mesh/model managers for variant and a
// shared graphics pipeline manager bound to layout/shaderRoot.
func NewRenderEngine(variant Variant, device vk.Device, cmds *vk.Commands, mem *memory.Manager,
	framesInFlight int, graphicsLayout, cullLayout vk.PipelineLayout, shaderRoot string) (*RenderEngine, error) {

	e := &RenderEngine{
		variant:        variant,
		device:         device,
		cmds:           cmds,
		framesInFlight: framesInFlight,
		meshBundles:    handle.NewArena[meshBundleRecord](),
		modelBundles:   handle.NewArena[modelBundleRecord](),
	}
	e.graphicsPipelines = pipeline.NewManager[pipeline.GraphicsDescription](device, cmds, graphicsLayout, shaderRoot, pipeline.BuildGraphicsPipeline(device, cmds))

	const initialVertices, initialIndices, initialMeshes = 4096, 4096, 256

	var err error
	switch variant {
	case VariantVSIndividual:
		e.meshesVS, err = model.NewMeshManagerVSIndividual(device, cmds, mem, initialVertices, initialIndices, initialMeshes)
		if err != nil {
			return nil, newError(ErrOutOfDeviceMemory, "render engine: vs mesh manager", err)
		}
		e.modelsVS, err = model.NewModelManagerVSIndividual(device, cmds, mem, e.meshesVS, framesInFlight, initialMeshes)
		if err != nil {
			return nil, newError(ErrOutOfDeviceMemory, "render engine: vs model manager", err)
		}
	case VariantVSIndirect:
		e.meshesVSIndirect, err = model.NewMeshManagerVSIndividual(device, cmds, mem, initialVertices, initialIndices, initialMeshes)
		if err != nil {
			return nil, newError(ErrOutOfDeviceMemory, "render engine: indirect mesh manager", err)
		}
		e.modelsVSIndirect, err = model.NewModelManagerVSIndirect(device, cmds, mem, e.meshesVSIndirect, framesInFlight, initialMeshes)
		if err != nil {
			return nil, newError(ErrOutOfDeviceMemory, "render engine: indirect model manager", err)
		}
		e.cullPipelines = pipeline.NewManager[pipeline.ComputeDescription](device, cmds, cullLayout, shaderRoot, pipeline.BuildComputePipeline(device, cmds))
	case VariantMS:
		e.meshesMS, err = model.NewMeshManagerMS(device, cmds, mem, initialVertices, initialVertices, initialVertices*3, initialMeshes*8)
		if err != nil {
			return nil, newError(ErrOutOfDeviceMemory, "render engine: ms mesh manager", err)
		}
		e.modelsMS = model.NewModelManagerMS(e.meshesMS)
	}
	return e, nil
}

// AddGraphicsPipeline registers desc with the shared graphics pipeline
// manager, returning the slot index the host treats as a pipeline id.
func (e *RenderEngine) AddGraphicsPipeline(desc ExternalGraphicsPipeline) (uint32, error) {
	slot, err := e.graphicsPipelines.AddOrGet(desc)
	if err != nil {
		return 0, newError(ErrPipelineBuildFailure, "add_graphics_pipeline", err)
	}
	return uint32(slot), nil
}

// RemoveGraphicsPipeline marks pid's slot overwritable; it is reused by
// the next AddGraphicsPipeline miss rather than shrinking the vector.
func (e *RenderEngine) RemoveGraphicsPipeline(pid uint32) {
	e.graphicsPipelines.SetOverwritable(int(pid))
}

// RecreateGraphicsPipelines rebuilds every live graphics pipeline
// against a new shader root, for set_shader_path.
func (e *RenderEngine) RecreateGraphicsPipelines(shaderRoot string) error {
	if err := e.graphicsPipelines.RecreateAll(shaderRoot); err != nil {
		return newError(ErrPipelineBuildFailure, "set_shader_path: graphics", err)
	}
	if e.cullPipelines != nil {
		if err := e.cullPipelines.RecreateAll(shaderRoot); err != nil {
			return newError(ErrPipelineBuildFailure, "set_shader_path: compute", err)
		}
	}
	return nil
}

// AddMeshBundle registers bundle's meshes with the variant's mesh
// manager, queues the geometry uploads through staging, and returns a
// bundle id remove_mesh_bundle later uses to free every member mesh.
func (e *RenderEngine) AddMeshBundle(bundle MeshBundleTemporary, stagingMgr *staging.Manager) (uint32, []model.MeshHandle, error) {
	rec := meshBundleRecord{}

	switch e.variant {
	case VariantVSIndividual, VariantVSIndirect:
		meshes := e.meshesVS
		if e.variant == VariantVSIndirect {
			meshes = e.meshesVSIndirect
		}
		for _, md := range bundle.VS {
			h, vtxRange, idxRange, aabbRange, err := meshes.RegisterMesh(uint32(len(md.Vertices)), uint32(len(md.Indices)), md.AABB)
			if err != nil {
				return 0, nil, newError(ErrOutOfDeviceMemory, "add_mesh_bundle: register vs mesh", err)
			}
			stagingMgr.AddBuffer(vertexBytes(md.Vertices), meshes.VertexBuffer(), vtxRange.Offset, staging.Target{}, nil)
			stagingMgr.AddBuffer(indexBytes(md.Indices), meshes.IndexBuffer(), idxRange.Offset, staging.Target{}, nil)
			stagingMgr.AddBuffer(asBytes([]model.AABB{md.AABB}), meshes.AABBBuffer(), aabbRange.Offset, staging.Target{}, nil)
			rec.meshes = append(rec.meshes, h)
		}
	case VariantMS:
		for _, md := range bundle.MS {
			h, vtxRange, viRange, piRange, mlRange, err := e.meshesMS.RegisterMesh(
				uint32(len(md.Vertices)), uint32(len(md.VertexIndices)), uint32(len(md.PrimitiveIndices)), uint32(len(md.Meshlets)))
			if err != nil {
				return 0, nil, newError(ErrOutOfDeviceMemory, "add_mesh_bundle: register ms mesh", err)
			}
			stagingMgr.AddBuffer(vertexBytes(md.Vertices), e.meshesMS.VertexBuffer(), vtxRange.Offset, staging.Target{}, nil)
			stagingMgr.AddBuffer(indexBytes(md.VertexIndices), e.meshesMS.VertexIndexBuffer(), viRange.Offset, staging.Target{}, nil)
			stagingMgr.AddBuffer(indexBytes(md.PrimitiveIndices), e.meshesMS.PrimitiveIndexBuffer(), piRange.Offset, staging.Target{}, nil)
			stagingMgr.AddBuffer(meshletBytes(md.Meshlets), e.meshesMS.MeshletBuffer(), mlRange.Offset, staging.Target{}, nil)
			rec.meshes = append(rec.meshes, h)
		}
	}

	h := e.meshBundles.Insert(rec)
	return h.Index(), rec.meshes, nil
}

// RemoveMeshBundle frees every mesh a bundle registered.
func (e *RenderEngine) RemoveMeshBundle(id uint32) {
	rec, ok := e.meshBundles.ByIndex(id)
	if !ok {
		return
	}
	for _, mh := range rec.meshes {
		switch e.variant {
		case VariantVSIndividual:
			e.meshesVS.UnregisterMesh(mh)
		case VariantVSIndirect:
			e.meshesVSIndirect.UnregisterMesh(mh)
		case VariantMS:
			e.meshesMS.UnregisterMesh(mh)
		}
	}
	e.meshBundles.RemoveByIndex(id)
}

// AddModelBundle instances bundle.Models against the meshes bundle.MeshBundleID registered.
func (e *RenderEngine) AddModelBundle(bundle ModelBundle) (uint32, error) {
	meshRec, ok := e.meshBundles.ByIndex(bundle.MeshBundleID)
	if !ok {
		return 0, newError(ErrUnknown, "add_model_bundle: unknown mesh bundle", nil)
	}

	rec := modelBundleRecord{}
	for _, entry := range bundle.Models {
		if entry.MeshIndex < 0 || entry.MeshIndex >= len(meshRec.meshes) {
			continue
		}
		mesh := meshRec.meshes[entry.MeshIndex]
		var mh model.ModelHandle
		switch e.variant {
		case VariantVSIndividual:
			mh = e.modelsVS.AddModel(mesh, entry.Transform)
		case VariantVSIndirect:
			mh = e.modelsVSIndirect.AddModel(mesh, entry.Transform)
		case VariantMS:
			mh = e.modelsMS.AddModel(mesh, entry.Transform)
		}
		rec.models = append(rec.models, mh)
		rec.pipelineID = append(rec.pipelineID, entry.PipelineID)
	}

	h2 := e.modelBundles.Insert(rec)
	return h2.Index(), nil
}

// RemoveModelBundle removes every model a bundle instanced.
func (e *RenderEngine) RemoveModelBundle(id uint32) {
	rec, ok := e.modelBundles.ByIndex(id)
	if !ok {
		return
	}
	for _, mh := range rec.models {
		switch e.variant {
		case VariantVSIndividual:
			e.modelsVS.RemoveModel(mh)
		case VariantVSIndirect:
			e.modelsVSIndirect.RemoveModel(mh)
		case VariantMS:
			e.modelsMS.RemoveModel(mh)
		}
	}
	e.modelBundles.RemoveByIndex(id)
}

// ChangeModelPipelineInBundle re-tags model's pipeline id within bundle,
// for change_model_pipeline_in_bundle. Draw does not group models by
// this id (every Draw covers the variant's full live model set), so
// this only updates the bookkeeping.
func (e *RenderEngine) ChangeModelPipelineInBundle(bundleID uint32, modelIndex int, newPipelineID uint32) bool {
	rec, ok := e.modelBundles.ByIndex(bundleID)
	if !ok || modelIndex < 0 || modelIndex >= len(rec.pipelineID) {
		return false
	}
	rec.pipelineID[modelIndex] = newPipelineID
	return e.modelBundles.SetByIndex(bundleID, rec)
}

// UpdateFrame recomputes frameIndex's per-frame instance/culling buffers
// from the live model containers.
func (e *RenderEngine) UpdateFrame(frameIndex int) error {
	switch e.variant {
	case VariantVSIndividual:
		return e.modelsVS.UpdateFrame(frameIndex)
	case VariantVSIndirect:
		return e.modelsVSIndirect.UpdateFrame(frameIndex)
	}
	return nil
}

// Cull dispatches the VS-indirect variant's frustum-culling compute
// pass for frameIndex; a no-op for the other two variants.
func (e *RenderEngine) Cull(cmd *gpusync.CommandBuffer, frameIndex int, cullPipelineSlot int) {
	if e.variant != VariantVSIndirect {
		return
	}
	e.modelsVSIndirect.Cull(cmd, frameIndex, e.cullPipelines.Get(cullPipelineSlot))
}

// Draw records the variant's draw calls for frameIndex, binding the
// shared geometry buffers once.
func (e *RenderEngine) Draw(cmd *gpusync.CommandBuffer, frameIndex int, layout vk.PipelineLayout, modelIndexOf func(model.ModelHandle) uint32) {
	switch e.variant {
	case VariantVSIndividual:
		e.modelsVS.Draw(cmd, frameIndex)
	case VariantVSIndirect:
		e.modelsVSIndirect.Draw(cmd, frameIndex)
	case VariantMS:
		e.modelsMS.Draw(cmd, layout, modelIndexOf)
	}
}

// EachModelMS iterates every live model the mesh-shader variant holds,
// for the renderer's shared model buffer. A no-op for the other two
// variants, which keep their own per-frame instance buffers internally.
func (e *RenderEngine) EachModelMS(fn func(h model.ModelHandle, transform [16]float32, mesh model.MeshHandle)) {
	if e.variant != VariantMS || e.modelsMS == nil {
		return
	}
	e.modelsMS.Each(fn)
}

// PipelineHandle returns the built VkPipeline for a graphics pipeline
// slot index (as returned by AddGraphicsPipeline).
func (e *RenderEngine) PipelineHandle(slot uint32) vk.Pipeline {
	return e.graphicsPipelines.Get(int(slot))
}

// GraphicsLayout returns the pipeline layout every graphics pipeline in
// this engine shares.
func (e *RenderEngine) GraphicsLayout() vk.PipelineLayout {
	return e.graphicsPipelines.Layout()
}

func (e *RenderEngine) Variant() Variant { return e.variant }

// Destroy releases every variant-specific manager and the pipeline
// managers.
func (e *RenderEngine) Destroy() {
	if e.meshesVS != nil {
		e.meshesVS.Destroy()
	}
	if e.modelsVS != nil {
		e.modelsVS.Destroy()
	}
	if e.meshesVSIndirect != nil {
		e.meshesVSIndirect.Destroy()
	}
	if e.modelsVSIndirect != nil {
		e.modelsVSIndirect.Destroy()
	}
	if e.meshesMS != nil {
		e.meshesMS.Destroy()
	}
	if e.cullPipelines != nil {
		e.cullPipelines.Destroy()
	}
	if e.graphicsPipelines != nil {
		e.graphicsPipelines.Destroy()
	}
}

