// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package external implements Terra's external resource factory: reusable
// vectors of host-application-owned buffers and textures, named by stable
// u32 handles instead of internal/handle.Handle[T] — the host only ever
// hands the index back, never a generation, so every lookup here goes
// through internal/handle.Arena.ByIndex rather than Arena.Get. Grounded on
// hal/vulkan/resource.go's Buffer/Texture wrapper shape (handle + memory +
// device back-pointer + Destroy()); the per-texture (access, layout,
// stage) state triple generalizes that file's Texture.usage/isExternal
// fields into the explicit triple transition_state needs.
package external

import (
	"fmt"
	"sync"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/handle"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/resource"
)

// BufferType selects an external buffer's memory type and usage flags,
// per spec.md §4.10's table.
type BufferType int

const (
	GPUOnly BufferType = iota
	CPUVisibleUniform
	CPUVisibleSSBO
)

type bufferProfile struct {
	usageHint   memory.UsageFlags
	bufferUsage vk.BufferUsageFlags
}

var bufferProfiles = map[BufferType]bufferProfile{
	GPUOnly: {
		usageHint:   memory.UsageFastDeviceAccess,
		bufferUsage: vk.BufferUsageStorageBufferBit | vk.BufferUsageTransferDstBit | vk.BufferUsageTransferSrcBit,
	},
	CPUVisibleUniform: {
		usageHint:   memory.UsageUpload,
		bufferUsage: vk.BufferUsageUniformBufferBit,
	},
	CPUVisibleSSBO: {
		usageHint:   memory.UsageUpload,
		bufferUsage: vk.BufferUsageStorageBufferBit,
	},
}

// TextureType selects an external texture's attachment usage and aspect.
type TextureType int

const (
	RenderTarget TextureType = iota
	Depth
	Stencil
)

func (t TextureType) attachmentUsageAndAspect() (vk.ImageUsageFlags, vk.ImageAspectFlags) {
	switch t {
	case Depth:
		return vk.ImageUsageDepthStencilAttachmentBit, vk.ImageAspectDepthBit
	case Stencil:
		return vk.ImageUsageDepthStencilAttachmentBit, vk.ImageAspectStencilBit
	default:
		return vk.ImageUsageColorAttachmentBit, vk.ImageAspectColorBit
	}
}

// TextureFlags OR extra usage bits onto a texture's attachment usage.
type TextureFlags uint32

const (
	CopySrc TextureFlags = 1 << iota
	CopyDst
	SampleTexture
)

func (f TextureFlags) toUsage() vk.ImageUsageFlags {
	var u vk.ImageUsageFlags
	if f&CopySrc != 0 {
		u |= vk.ImageUsageTransferSrcBit
	}
	if f&CopyDst != 0 {
		u |= vk.ImageUsageTransferDstBit
	}
	if f&SampleTexture != 0 {
		u |= vk.ImageUsageSampledBit
	}
	return u
}

// StateTriple is one external texture's current (access, layout, stage),
// the state transition_state reads and atomically replaces.
type StateTriple struct {
	Access uint64 // VkAccessFlags2
	Layout vk.ImageLayout
	Stage  uint64 // VkPipelineStageFlags2
}

type bufferRecord struct {
	typ    BufferType
	buffer *resource.Buffer
}

type textureRecord struct {
	typ     TextureType
	aspect  vk.ImageAspectFlags
	texture *resource.Texture
	state   StateTriple
}

// Factory owns the reusable vectors of external buffers and textures.
// create_external_buffer/create_external_texture return a stable u32
// handle the host application holds onto for the resource's lifetime.
type Factory struct {
	device vk.Device
	cmds   *vk.Commands
	mem    *memory.Manager

	mu       sync.Mutex
	buffers  *handle.Arena[*bufferRecord]
	textures *handle.Arena[*textureRecord]
}

// NewFactory creates an empty external resource factory.
func NewFactory(device vk.Device, cmds *vk.Commands, mem *memory.Manager) *Factory {
	return &Factory{
		device:   device,
		cmds:     cmds,
		mem:      mem,
		buffers:  handle.NewArena[*bufferRecord](),
		textures: handle.NewArena[*textureRecord](),
	}
}

// CreateExternalBuffer allocates a buffer of size bytes using typ's
// memory/usage profile and returns its stable u32 handle.
func (f *Factory) CreateExternalBuffer(typ BufferType, size uint64) (uint32, error) {
	profile, ok := bufferProfiles[typ]
	if !ok {
		return 0, fmt.Errorf("external: create_external_buffer: unknown buffer type %d", typ)
	}

	buf, err := resource.NewBuffer(f.device, f.cmds, f.mem, size, profile.bufferUsage, profile.usageHint)
	if err != nil {
		return 0, fmt.Errorf("external: create_external_buffer: %w", err)
	}

	f.mu.Lock()
	h := f.buffers.Insert(&bufferRecord{typ: typ, buffer: buf})
	f.mu.Unlock()
	return h.Index(), nil
}

// Buffer resolves idx to its backing resource.Buffer, or false if idx is
// unknown or was removed.
func (f *Factory) Buffer(idx uint32) (*resource.Buffer, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.buffers.ByIndex(idx)
	if !ok {
		return nil, false
	}
	return rec.buffer, true
}

// BufferType reports the BufferType idx was created with, or false if
// idx is unknown.
func (f *Factory) BufferType(idx uint32) (BufferType, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.buffers.ByIndex(idx)
	if !ok {
		return 0, false
	}
	return rec.typ, true
}

// RemoveExternalBuffer destroys the buffer at idx and frees its slot.
func (f *Factory) RemoveExternalBuffer(idx uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.buffers.ByIndex(idx)
	if !ok {
		return
	}
	rec.buffer.Destroy()
	f.buffers.RemoveByIndex(idx)
}

// CreateExternalTexture allocates a 2D texture of extent/format using
// typ's attachment usage plus flags's extra usage bits, and returns its
// stable u32 handle. New textures start in StateTriple{0, Undefined, 0}
// (top-of-pipe, no access), matching VK_IMAGE_LAYOUT_UNDEFINED's
// creation-time meaning.
func (f *Factory) CreateExternalTexture(format vk.Format, extent vk.Extent3D, typ TextureType, flags TextureFlags) (uint32, error) {
	baseUsage, aspect := typ.attachmentUsageAndAspect()
	usage := baseUsage | flags.toUsage()

	tex, err := resource.NewTexture(f.device, f.cmds, f.mem, extent, format, usage, 1, 0)
	if err != nil {
		return 0, fmt.Errorf("external: create_external_texture: %w", err)
	}

	f.mu.Lock()
	h := f.textures.Insert(&textureRecord{
		typ:     typ,
		aspect:  aspect,
		texture: tex,
		state:   StateTriple{Layout: vk.ImageLayoutUndefined},
	})
	f.mu.Unlock()
	return h.Index(), nil
}

// Texture resolves idx to its backing resource.Texture, or false if idx
// is unknown or was removed.
func (f *Factory) Texture(idx uint32) (*resource.Texture, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.textures.ByIndex(idx)
	if !ok {
		return nil, false
	}
	return rec.texture, true
}

// RemoveExternalTexture destroys the texture at idx and frees its slot.
func (f *Factory) RemoveExternalTexture(idx uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.textures.ByIndex(idx)
	if !ok {
		return
	}
	rec.texture.Destroy()
	f.textures.RemoveByIndex(idx)
}

// TransitionState builds a VkImageMemoryBarrier2 transitioning idx's
// texture from its previously stored (access, layout, stage) triple to
// (newAccess, newLayout, newStage), then atomically replaces the stored
// triple. Reports false if idx is unknown.
func (f *Factory) TransitionState(idx uint32, newAccess uint64, newLayout vk.ImageLayout, newStage uint64) (vk.ImageMemoryBarrier2, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.textures.ByIndex(idx)
	if !ok {
		return vk.ImageMemoryBarrier2{}, false
	}
	old := rec.state

	barrier := vk.ImageMemoryBarrier2{
		SType:               vk.StructureTypeImageMemoryBarrier2,
		SrcStageMask:        old.Stage,
		SrcAccessMask:       old.Access,
		DstStageMask:        newStage,
		DstAccessMask:       newAccess,
		OldLayout:           old.Layout,
		NewLayout:           newLayout,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               rec.texture.Handle(),
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: rec.aspect,
			LevelCount: 1,
			LayerCount: 1,
		},
	}

	rec.state = StateTriple{Access: newAccess, Layout: newLayout, Stage: newStage}
	return barrier, true
}

// State returns idx's current (access, layout, stage) triple, or false
// if idx is unknown.
func (f *Factory) State(idx uint32) (StateTriple, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.textures.ByIndex(idx)
	if !ok {
		return StateTriple{}, false
	}
	return rec.state, true
}
