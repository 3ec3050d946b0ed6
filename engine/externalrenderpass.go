// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/external"
	"github.com/terra-gfx/terra/internal/gpusync"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/model"
	"github.com/terra-gfx/terra/internal/renderpass"
	"github.com/terra-gfx/terra/internal/resource"
)

const (
	stageColorAttachmentOutput = 0x00000400
	stageEarlyFragmentTests    = 0x00000100
	stageLateFragmentTests     = 0x00000200

	accessColorAttachmentWrite        = 0x00000100
	accessDepthStencilAttachmentWrite = 0x00000400
)

// attachmentDesc is one attachment's binding to an engine.TextureManager/
// external.Factory texture, by id, plus the dynamic-rendering load/store
// ops add_external_render_pass needs per attachment.
type attachmentDesc struct {
	textureID uint32
	loadOp    vk.AttachmentLoadOp
	storeOp   vk.AttachmentStoreOp
	clear     vk.ClearValue
}

// viewKey caches an external texture's VkImageView by (texture, aspect)
// rather than packing the two into one integer: external.Factory creates
// textures without views (spec.md §4.10 only asks for the image/memory),
// so ExternalRenderPass owns the view lifetime itself.
type viewKey struct {
	texture uint32
	aspect  vk.ImageAspectFlags
}

// ExternalRenderPass is the host-facing declarative layer spec.md §3/§6
// describe on top of internal/renderpass.Manager: a named set of colour/
// depth/stencil attachments (referencing external.Factory textures by
// id) and the list of graphics pipelines it draws, recorded once per
// frame by Record. One instance backs add_external_render_pass; a second,
// distinguished instance (marked by SetSwapchainTarget) backs
// set_swapchain_external_render_pass and owns the offscreen colour image
// EndPassForSwapchain blits into the acquired swapchain backbuffer.
type ExternalRenderPass struct {
	device vk.Device
	cmds   *vk.Commands
	mem    *memory.Manager

	manager *renderpass.Manager
	views   map[viewKey]*resource.ImageView

	colour  []attachmentDesc
	depth   *attachmentDesc
	stencil *attachmentDesc

	pipelines []model.PipelineDetails

	swapchainTarget bool
	offscreenColour *resource.Texture
	offscreenView   *resource.ImageView
	offscreenFormat vk.Format
}

// NewExternalRenderPass creates an empty render pass over the
// dynamic-rendering manager renderpass.NewManager builds.
func NewExternalRenderPass(device vk.Device, cmds *vk.Commands, mem *memory.Manager) *ExternalRenderPass {
	return &ExternalRenderPass{
		device:  device,
		cmds:    cmds,
		mem:     mem,
		manager: renderpass.NewManager(),
		views:   make(map[viewKey]*resource.ImageView),
	}
}

// AddColourAttachment appends a colour attachment bound to an
// external.Factory texture, returning its index (for later AddPipeline
// bookkeeping or host-side reference).
func (rp *ExternalRenderPass) AddColourAttachment(textureID uint32, loadOp vk.AttachmentLoadOp, storeOp vk.AttachmentStoreOp, clear [4]float32) int {
	rp.colour = append(rp.colour, attachmentDesc{
		textureID: textureID, loadOp: loadOp, storeOp: storeOp,
		clear: vk.ClearValueColor(clear[0], clear[1], clear[2], clear[3]),
	})
	return len(rp.colour) - 1
}

// SetDepthAttachment installs the pass's depth attachment.
func (rp *ExternalRenderPass) SetDepthAttachment(textureID uint32, loadOp vk.AttachmentLoadOp, storeOp vk.AttachmentStoreOp, clearDepth float32) {
	rp.depth = &attachmentDesc{textureID: textureID, loadOp: loadOp, storeOp: storeOp, clear: vk.ClearValueDepthStencil(clearDepth, 0)}
}

// SetStencilAttachment installs the pass's stencil attachment.
func (rp *ExternalRenderPass) SetStencilAttachment(textureID uint32, loadOp vk.AttachmentLoadOp, storeOp vk.AttachmentStoreOp, clearStencil uint32) {
	rp.stencil = &attachmentDesc{textureID: textureID, loadOp: loadOp, storeOp: storeOp, clear: vk.ClearValueDepthStencil(0, clearStencil)}
}

// AddPipeline registers a pipeline's (model_bundle_index, pipeline_local_index)
// draw list against this pass, for change_model_pipeline_in_bundle-style
// bookkeeping. Per DESIGN.md's Open Question decision, the list itself is
// not consulted to filter draws: Record's caller binds each listed
// pipeline in turn and draws the render engine's full live model set.
func (rp *ExternalRenderPass) AddPipeline(details model.PipelineDetails) {
	rp.pipelines = append(rp.pipelines, details)
}

// Pipelines returns the pass's registered pipeline draw lists, in
// add_graphics_pipeline binding order.
func (rp *ExternalRenderPass) Pipelines() []model.PipelineDetails { return rp.pipelines }

// SetSwapchainTarget marks this pass as the swapchain pass and
// (re)creates its offscreen colour target at extent/format, for
// set_swapchain_external_render_pass. Record blits this target into the
// acquired backbuffer via EndPassForSwapchain instead of ending the pass
// directly, since the swapchain image is never itself a colour
// attachment (no VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT).
func (rp *ExternalRenderPass) SetSwapchainTarget(format vk.Format, extent vk.Extent2D) error {
	rp.swapchainTarget = true
	if rp.offscreenColour != nil && rp.offscreenFormat == format &&
		rp.offscreenColour.Extent().Width == extent.Width && rp.offscreenColour.Extent().Height == extent.Height {
		return nil
	}

	if rp.offscreenView != nil {
		rp.offscreenView.Destroy()
		rp.offscreenView = nil
	}
	if rp.offscreenColour != nil {
		rp.offscreenColour.Destroy()
		rp.offscreenColour = nil
	}

	tex, err := resource.NewTexture(rp.device, rp.cmds, rp.mem, vk.Extent3D{Width: extent.Width, Height: extent.Height, Depth: 1},
		format, vk.ImageUsageColorAttachmentBit|vk.ImageUsageTransferSrcBit, 1, vk.SampleCount1Bit)
	if err != nil {
		return newError(ErrOutOfDeviceMemory, "set_swapchain_external_render_pass: offscreen target", err)
	}
	view, err := resource.NewImageView(rp.device, rp.cmds, tex, vk.ImageAspectColorBit)
	if err != nil {
		tex.Destroy()
		return newError(ErrPipelineBuildFailure, "set_swapchain_external_render_pass: offscreen view", err)
	}

	rp.offscreenColour = tex
	rp.offscreenView = view
	rp.offscreenFormat = format
	return nil
}

// viewFor resolves textureID's VkImageView for aspect, creating and
// caching it on first use.
func (rp *ExternalRenderPass) viewFor(factory *external.Factory, textureID uint32, aspect vk.ImageAspectFlags) (*resource.ImageView, error) {
	key := viewKey{texture: textureID, aspect: aspect}
	if v, ok := rp.views[key]; ok {
		return v, nil
	}
	tex, ok := factory.Texture(textureID)
	if !ok {
		return nil, newError(ErrUnknown, "external render pass: unknown texture", nil)
	}
	view, err := resource.NewImageView(rp.device, rp.cmds, tex, aspect)
	if err != nil {
		return nil, newError(ErrPipelineBuildFailure, "external render pass: attachment view", err)
	}
	rp.views[key] = view
	return view, nil
}

// Record rebuilds the wrapped renderpass.Manager's attachment state for
// this frame, resolves every attachment's view through factory, adds a
// pre-pass layout transition for the colour and depth attachments (the
// stencil attachment gets none), begins dynamic rendering, invokes draw
// (which binds pipelines/descriptors and issues the render engine's draw
// calls), and ends the pass — blitting into backbuffer when this is the
// swapchain pass.
func (rp *ExternalRenderPass) Record(cmd *gpusync.CommandBuffer, factory *external.Factory, renderArea vk.Rect2D,
	backbuffer vk.Image, backbufferExtent vk.Extent3D, draw func()) error {

	rp.manager.Reset()

	for _, c := range rp.colour {
		view, err := rp.viewFor(factory, c.textureID, vk.ImageAspectColorBit)
		if err != nil {
			return err
		}
		idx := rp.manager.AddColour(view.Handle(), c.clear, c.loadOp, c.storeOp)
		if barrier, ok := factory.TransitionState(c.textureID, accessColorAttachmentWrite, vk.ImageLayoutColorAttachmentOptimal, stageColorAttachmentOutput); ok {
			bi := rp.manager.AddStartImageBarrier(renderpass.StartBarrier{
				Image: barrier.Image, Aspect: vk.ImageAspectColorBit,
				OldLayout: barrier.OldLayout, NewLayout: barrier.NewLayout,
				SrcStageMask: barrier.SrcStageMask, DstStageMask: barrier.DstStageMask,
				SrcAccessMask: barrier.SrcAccessMask, DstAccessMask: barrier.DstAccessMask,
			})
			_ = bi
		}
		_ = idx
	}

	if rp.depth != nil {
		view, err := rp.viewFor(factory, rp.depth.textureID, vk.ImageAspectDepthBit)
		if err != nil {
			return err
		}
		depthClear := float32(0)
		rp.manager.SetDepth(view.Handle(), depthClear, rp.depth.loadOp, rp.depth.storeOp, -1)
		if barrier, ok := factory.TransitionState(rp.depth.textureID, accessDepthStencilAttachmentWrite, vk.ImageLayoutDepthStencilAttachmentOptimal, stageEarlyFragmentTests|stageLateFragmentTests); ok {
			rp.manager.AddStartImageBarrier(renderpass.StartBarrier{
				Image: barrier.Image, Aspect: vk.ImageAspectDepthBit,
				OldLayout: barrier.OldLayout, NewLayout: barrier.NewLayout,
				SrcStageMask: barrier.SrcStageMask, DstStageMask: barrier.DstStageMask,
				SrcAccessMask: barrier.SrcAccessMask, DstAccessMask: barrier.DstAccessMask,
			})
		}
	}
	if rp.stencil != nil {
		view, err := rp.viewFor(factory, rp.stencil.textureID, vk.ImageAspectStencilBit)
		if err != nil {
			return err
		}
		rp.manager.SetStencil(view.Handle(), 0, rp.stencil.loadOp, rp.stencil.storeOp, -1)
	}

	if rp.swapchainTarget {
		rp.manager.SetColourView(0, rp.offscreenView.Handle())
	}

	rp.manager.StartPass(cmd, renderArea)
	draw()

	if rp.swapchainTarget {
		rp.manager.EndPassForSwapchain(cmd, rp.offscreenColour.Handle(), backbuffer, backbufferExtent)
	} else {
		rp.manager.EndPass(cmd)
	}
	return nil
}

// Destroy releases the pass's cached attachment views and, if this is
// the swapchain pass, its offscreen colour target.
func (rp *ExternalRenderPass) Destroy() {
	for _, v := range rp.views {
		v.Destroy()
	}
	rp.views = nil
	if rp.offscreenView != nil {
		rp.offscreenView.Destroy()
	}
	if rp.offscreenColour != nil {
		rp.offscreenColour.Destroy()
	}
}
