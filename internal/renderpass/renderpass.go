// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package renderpass builds and records VkRenderingInfo-based dynamic
// rendering passes. It deliberately never creates a VkRenderPass or
// VkFramebuffer object: Terra targets VK_KHR_dynamic_rendering
// directly, accepting the documented Intel driver caveat that older
// Intel Vulkan drivers handle dynamic rendering less efficiently than
// a cached render pass object.
package renderpass

import (
	"math"
	"unsafe"

	"github.com/terra-gfx/terra/internal/gpusync"

	"github.com/terra-gfx/terra/vk"
)

// Synchronization2 stage/access bits needed here. Each package in this
// module defines the handful of VK_PIPELINE_STAGE_2_*/VK_ACCESS_2_* bits
// it actually uses rather than sharing a central table.
const (
	stageTopOfPipe             = 0x00000001
	stageBottomOfPipe          = 0x00002000
	stageColorAttachmentOutput = 0x00000400
	stageTransfer              = 1 << 32

	accessNone          = 0
	accessColorWrite    = 0x00000100
	accessTransferWrite = 0x00001000
)

// ColourAttachment is one colour attachment of a dynamic rendering pass.
type ColourAttachment struct {
	View     vk.ImageView
	Clear    vk.ClearValue
	LoadOp   vk.AttachmentLoadOp
	StoreOp  vk.AttachmentStoreOp
	ImageLayout vk.ImageLayout
}

// DepthStencilAttachment covers both the depth and stencil planes of a
// dynamic rendering pass; Manager keeps one for depth and one for
// stencil since the spec lets them target different views (e.g.
// separate depth and stencil images) and carry independent clear
// values.
type DepthStencilAttachment struct {
	View    vk.ImageView
	Clear   float32 // depth value, or stencil value reinterpreted via SetStencilClearColour
	LoadOp  vk.AttachmentLoadOp
	StoreOp vk.AttachmentStoreOp

	// BarrierIndex optionally names a start barrier (see
	// AddStartImageBarrier) that transitions this attachment's image
	// before the pass begins. -1 means no associated barrier.
	BarrierIndex int
}

// StartBarrier is one image barrier recorded immediately before
// vkCmdBeginRendering, batched into a single VkDependencyInfo.
type StartBarrier struct {
	Image     vk.Image
	Aspect    vk.ImageAspectFlags
	OldLayout vk.ImageLayout
	NewLayout vk.ImageLayout

	SrcStageMask, DstStageMask   uint64
	SrcAccessMask, DstAccessMask uint64
}

func (b StartBarrier) isNoop() bool {
	return b.OldLayout == b.NewLayout && b.SrcAccessMask == b.DstAccessMask
}

func (b StartBarrier) toVk() vk.ImageMemoryBarrier2 {
	return vk.ImageMemoryBarrier2{
		SType:         vk.StructureTypeImageMemoryBarrier2,
		SrcStageMask:  b.SrcStageMask,
		SrcAccessMask: b.SrcAccessMask,
		DstStageMask:  b.DstStageMask,
		DstAccessMask: b.DstAccessMask,
		OldLayout:     b.OldLayout,
		NewLayout:     b.NewLayout,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:         b.Image,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: b.Aspect,
			LevelCount: 1,
			LayerCount: 1,
		},
	}
}

// NoBarrier is returned by AddStartImageBarrier when the requested
// transition is a no-op and was not recorded.
const NoBarrier = math.MaxUint32

// Manager holds one dynamic rendering pass's attachment state and start
// barriers. It is rebuilt (attachments replaced) every frame by the
// render engine rather than cached, since VkRenderingInfo has no
// identity worth keying on the way a VkRenderPass did.
type Manager struct {
	colour  []ColourAttachment
	depth   *DepthStencilAttachment
	stencil *DepthStencilAttachment

	barriers []StartBarrier
}

// NewManager returns an empty render-pass builder.
func NewManager() *Manager {
	return &Manager{}
}

// AddColour appends a colour attachment and returns its index.
func (m *Manager) AddColour(view vk.ImageView, clear vk.ClearValue, loadOp vk.AttachmentLoadOp, storeOp vk.AttachmentStoreOp) int {
	m.colour = append(m.colour, ColourAttachment{
		View: view, Clear: clear, LoadOp: loadOp, StoreOp: storeOp,
		ImageLayout: vk.ImageLayoutColorAttachmentOptimal,
	})
	return len(m.colour) - 1
}

// SetColourView replaces the image view of an existing colour attachment.
func (m *Manager) SetColourView(i int, view vk.ImageView) {
	if i >= 0 && i < len(m.colour) {
		m.colour[i].View = view
	}
}

// SetColourClear replaces the clear value of an existing colour attachment.
func (m *Manager) SetColourClear(i int, clear vk.ClearValue) {
	if i >= 0 && i < len(m.colour) {
		m.colour[i].Clear = clear
	}
}

// SetDepth installs the depth attachment.
func (m *Manager) SetDepth(view vk.ImageView, clear float32, loadOp vk.AttachmentLoadOp, storeOp vk.AttachmentStoreOp, barrierIndex int) {
	m.depth = &DepthStencilAttachment{View: view, Clear: clear, LoadOp: loadOp, StoreOp: storeOp, BarrierIndex: barrierIndex}
}

// SetStencil installs the stencil attachment.
func (m *Manager) SetStencil(view vk.ImageView, clear float32, loadOp vk.AttachmentLoadOp, storeOp vk.AttachmentStoreOp, barrierIndex int) {
	m.stencil = &DepthStencilAttachment{View: view, Clear: clear, LoadOp: loadOp, StoreOp: storeOp, BarrierIndex: barrierIndex}
}

func (m *Manager) SetDepthView(view vk.ImageView) {
	if m.depth != nil {
		m.depth.View = view
	}
}

func (m *Manager) SetStencilView(view vk.ImageView) {
	if m.stencil != nil {
		m.stencil.View = view
	}
}

func (m *Manager) SetDepthClearColour(v float32) {
	if m.depth != nil {
		m.depth.Clear = v
	}
}

func (m *Manager) SetStencilClearColour(v float32) {
	if m.stencil != nil {
		m.stencil.Clear = v
	}
}

// AddStartImageBarrier appends a barrier recorded just before
// vkCmdBeginRendering. It returns NoBarrier instead of an index when
// old/new layout and src/dst access masks are identical, since such a
// barrier does nothing.
func (m *Manager) AddStartImageBarrier(b StartBarrier) uint32 {
	if b.isNoop() {
		return NoBarrier
	}
	m.barriers = append(m.barriers, b)
	return uint32(len(m.barriers) - 1)
}

// SetBarrierImage updates the target image of a previously added start
// barrier (the spec calls this set_barrier_image_view, since the image
// is usually recovered from a texture's current view).
func (m *Manager) SetBarrierImage(idx uint32, image vk.Image) {
	if idx == NoBarrier || int(idx) >= len(m.barriers) {
		return
	}
	m.barriers[idx].Image = image
}

// SetSrcStage updates the source pipeline stage of a previously added
// start barrier.
func (m *Manager) SetSrcStage(idx uint32, stage uint64) {
	if idx == NoBarrier || int(idx) >= len(m.barriers) {
		return
	}
	m.barriers[idx].SrcStageMask = stage
}

// StartPass records any pending start barriers as a single dependency,
// then begins dynamic rendering over renderArea.
func (m *Manager) StartPass(cmd *gpusync.CommandBuffer, renderArea vk.Rect2D) {
	if len(m.barriers) > 0 {
		vkBarriers := make([]vk.ImageMemoryBarrier2, len(m.barriers))
		for i, b := range m.barriers {
			vkBarriers[i] = b.toVk()
		}
		dep := vk.DependencyInfo{
			SType:                   vk.StructureTypeDependencyInfo,
			ImageMemoryBarrierCount: uint32(len(vkBarriers)),
			PImageMemoryBarriers:    uintptr(unsafe.Pointer(&vkBarriers[0])),
		}
		cmd.PipelineBarrier(&dep)
	}

	colourInfos := make([]vk.RenderingAttachmentInfo, len(m.colour))
	for i, c := range m.colour {
		colourInfos[i] = vk.RenderingAttachmentInfo{
			SType:       vk.StructureTypeRenderingAttachmentInfo,
			ImageView:   c.View,
			ImageLayout: c.ImageLayout,
			LoadOp:      c.LoadOp,
			StoreOp:     c.StoreOp,
			ClearValue:  c.Clear,
		}
	}

	info := vk.RenderingInfo{
		SType:      vk.StructureTypeRenderingInfo,
		RenderArea: renderArea,
		LayerCount: 1,
	}
	if len(colourInfos) > 0 {
		info.ColorAttachmentCount = uint32(len(colourInfos))
		info.PColorAttachments = uintptr(unsafe.Pointer(&colourInfos[0]))
	}
	if m.depth != nil {
		depthInfo := vk.RenderingAttachmentInfo{
			SType:       vk.StructureTypeRenderingAttachmentInfo,
			ImageView:   m.depth.View,
			ImageLayout: vk.ImageLayoutDepthStencilAttachmentOptimal,
			LoadOp:      m.depth.LoadOp,
			StoreOp:     m.depth.StoreOp,
			ClearValue:  vk.ClearValueDepthStencil(m.depth.Clear, 0),
		}
		info.PDepthAttachment = uintptr(unsafe.Pointer(&depthInfo))
	}
	if m.stencil != nil {
		stencilInfo := vk.RenderingAttachmentInfo{
			SType:       vk.StructureTypeRenderingAttachmentInfo,
			ImageView:   m.stencil.View,
			ImageLayout: vk.ImageLayoutDepthStencilAttachmentOptimal,
			LoadOp:      m.stencil.LoadOp,
			StoreOp:     m.stencil.StoreOp,
			ClearValue:  vk.ClearValueDepthStencil(0, uint32(m.stencil.Clear)),
		}
		info.PStencilAttachment = uintptr(unsafe.Pointer(&stencilInfo))
	}

	cmd.BeginRendering(&info)
}

// EndPass records vkCmdEndRendering.
func (m *Manager) EndPass(cmd *gpusync.CommandBuffer) {
	cmd.EndRendering()
}

// EndPassForSwapchain ends rendering, blits src into backbuffer, and
// transitions backbuffer to PRESENT_SRC_KHR. src is the engine's
// internal colour target and backbuffer is the acquired swapchain
// image; they may differ in usage flags (the swapchain image is never
// a colour attachment itself), which is why this is a copy rather than
// a shared render target.
func (m *Manager) EndPassForSwapchain(cmd *gpusync.CommandBuffer, src, backbuffer vk.Image, srcExtent vk.Extent3D) {
	cmd.EndRendering()

	preBlit := []vk.ImageMemoryBarrier2{
		{
			SType:         vk.StructureTypeImageMemoryBarrier2,
			SrcStageMask:  stageColorAttachmentOutput,
			SrcAccessMask: accessColorWrite,
			DstStageMask:  stageTransfer,
			DstAccessMask: accessTransferWrite,
			OldLayout:     vk.ImageLayoutColorAttachmentOptimal,
			NewLayout:     vk.ImageLayoutTransferSrcOptimal,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:         src,
			SubresourceRange: vk.ImageSubresourceRange{AspectMask: vk.ImageAspectColorBit, LevelCount: 1, LayerCount: 1},
		},
		{
			SType:         vk.StructureTypeImageMemoryBarrier2,
			SrcStageMask:  stageTopOfPipe,
			SrcAccessMask: accessNone,
			DstStageMask:  stageTransfer,
			DstAccessMask: accessTransferWrite,
			OldLayout:     vk.ImageLayoutUndefined,
			NewLayout:     vk.ImageLayoutTransferDstOptimal,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:         backbuffer,
			SubresourceRange: vk.ImageSubresourceRange{AspectMask: vk.ImageAspectColorBit, LevelCount: 1, LayerCount: 1},
		},
	}
	cmd.PipelineBarrier(&vk.DependencyInfo{
		SType:                   vk.StructureTypeDependencyInfo,
		ImageMemoryBarrierCount: uint32(len(preBlit)),
		PImageMemoryBarriers:    uintptr(unsafe.Pointer(&preBlit[0])),
	})

	region := vk.ImageCopy{
		SrcSubresource: vk.ImageSubresourceLayers{AspectMask: vk.ImageAspectColorBit, LayerCount: 1},
		DstSubresource: vk.ImageSubresourceLayers{AspectMask: vk.ImageAspectColorBit, LayerCount: 1},
		Extent:         srcExtent,
	}
	cmd.CopyImage(src, vk.ImageLayoutTransferSrcOptimal, backbuffer, vk.ImageLayoutTransferDstOptimal, []vk.ImageCopy{region})

	postBlit := vk.ImageMemoryBarrier2{
		SType:         vk.StructureTypeImageMemoryBarrier2,
		SrcStageMask:  stageTransfer,
		SrcAccessMask: accessTransferWrite,
		DstStageMask:  stageBottomOfPipe,
		DstAccessMask: accessNone,
		OldLayout:     vk.ImageLayoutTransferDstOptimal,
		NewLayout:     vk.ImageLayoutPresentSrcKhr,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:         backbuffer,
		SubresourceRange: vk.ImageSubresourceRange{AspectMask: vk.ImageAspectColorBit, LevelCount: 1, LayerCount: 1},
	}
	cmd.PipelineBarrier(&vk.DependencyInfo{
		SType:                   vk.StructureTypeDependencyInfo,
		ImageMemoryBarrierCount: 1,
		PImageMemoryBarriers:    uintptr(unsafe.Pointer(&postBlit)),
	})
}

// Reset clears all attachments and barriers so the manager can be
// reused for the next frame.
func (m *Manager) Reset() {
	m.colour = m.colour[:0]
	m.depth = nil
	m.stencil = nil
	m.barriers = m.barriers[:0]
}
