// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package resource wraps Vulkan buffers, images, image views and samplers,
// binding each to an internal/memory allocation and carrying a back-pointer
// device handle for Destroy().
package resource

import (
	"fmt"
	"unsafe"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/memory"
)

// Buffer owns one VkBuffer bound to a suballocated region of an
// internal/memory pool.
type Buffer struct {
	handle vk.Buffer
	alloc  memory.Allocation
	size   uint64
	usage  vk.BufferUsageFlags

	device vk.Device
	cmds   *vk.Commands
	mem    *memory.Manager
}

// NewBuffer creates a VkBuffer of the given size/usage and binds it to a
// fresh allocation from mem selected by usageHint.
func NewBuffer(device vk.Device, cmds *vk.Commands, mem *memory.Manager, size uint64, bufferUsage vk.BufferUsageFlags, usageHint memory.UsageFlags) (*Buffer, error) {
	info := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(size),
		Usage:       bufferUsage,
		SharingMode: vk.SharingModeExclusive,
	}

	var handle vk.Buffer
	if result := cmds.CreateBuffer(device, &info, nil, &handle); result != vk.Success {
		return nil, fmt.Errorf("resource: vkCreateBuffer: %d", result)
	}

	var reqs vk.MemoryRequirements
	cmds.GetBufferMemoryRequirements(device, handle, &reqs)

	alloc, err := mem.Allocate(memory.AllocationRequest{
		Size:           uint64(reqs.Size),
		Alignment:      uint64(reqs.Alignment),
		Usage:          usageHint,
		MemoryTypeBits: reqs.MemoryTypeBits,
	})
	if err != nil {
		cmds.DestroyBuffer(device, handle, nil)
		return nil, err
	}

	memHandle, ok := mem.Memory(alloc.MemoryID)
	if !ok {
		cmds.DestroyBuffer(device, handle, nil)
		return nil, fmt.Errorf("resource: unknown memory id %d", alloc.MemoryID)
	}

	if result := cmds.BindBufferMemory(device, handle, memHandle, vk.DeviceSize(alloc.GPUOffset)); result != vk.Success {
		mem.Free(&alloc)
		cmds.DestroyBuffer(device, handle, nil)
		return nil, fmt.Errorf("resource: vkBindBufferMemory: %d", result)
	}

	return &Buffer{
		handle: handle,
		alloc:  alloc,
		size:   size,
		usage:  bufferUsage,
		device: device,
		cmds:   cmds,
		mem:    mem,
	}, nil
}

// Destroy releases the buffer and returns its memory region to the manager.
func (b *Buffer) Destroy() {
	if b == nil || b.cmds == nil {
		return
	}
	b.cmds.DestroyBuffer(b.device, b.handle, nil)
	if b.mem != nil {
		b.mem.Free(&b.alloc)
	}
}

// Handle returns the VkBuffer handle.
func (b *Buffer) Handle() vk.Buffer { return b.handle }

// Size returns the buffer's size in bytes.
func (b *Buffer) Size() uint64 { return b.size }

// HostPointer returns a pointer to the buffer's mapped CPU range, or nil if
// the buffer's memory is not host-visible.
func (b *Buffer) HostPointer() unsafe.Pointer {
	if !b.alloc.HostVisible {
		return nil
	}
	return unsafe.Pointer(b.alloc.CPUOffset)
}

// Texture owns one VkImage bound to a suballocated region of an
// internal/memory pool. isExternal textures (e.g. swapchain images) do not
// own their memory and Destroy is a no-op for the image handle itself.
type Texture struct {
	handle    vk.Image
	alloc     memory.Allocation
	extent    vk.Extent3D
	format    vk.Format
	usage     vk.ImageUsageFlags
	mipLevels uint32
	samples   vk.SampleCountFlagBits

	isExternal bool

	device vk.Device
	cmds   *vk.Commands
	mem    *memory.Manager
}

// NewTexture creates a VkImage of the given parameters and binds it to a
// fresh device-local allocation from mem.
func NewTexture(device vk.Device, cmds *vk.Commands, mem *memory.Manager, extent vk.Extent3D, format vk.Format, usage vk.ImageUsageFlags, mipLevels uint32, samples vk.SampleCountFlagBits) (*Texture, error) {
	if samples == 0 {
		samples = vk.SampleCount1Bit
	}
	if mipLevels == 0 {
		mipLevels = 1
	}

	info := vk.ImageCreateInfo{
		SType:         vk.StructureTypeImageCreateInfo,
		ImageType:     vk.ImageType2d,
		Format:        format,
		Extent:        extent,
		MipLevels:     mipLevels,
		ArrayLayers:   1,
		Samples:       samples,
		Usage:         usage,
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	}

	var handle vk.Image
	if result := cmds.CreateImage(device, &info, nil, &handle); result != vk.Success {
		return nil, fmt.Errorf("resource: vkCreateImage: %d", result)
	}

	var reqs vk.MemoryRequirements
	cmds.GetImageMemoryRequirements(device, handle, &reqs)

	alloc, err := mem.Allocate(memory.AllocationRequest{
		Size:           uint64(reqs.Size),
		Alignment:      uint64(reqs.Alignment),
		Usage:          memory.UsageFastDeviceAccess,
		MemoryTypeBits: reqs.MemoryTypeBits,
	})
	if err != nil {
		cmds.DestroyImage(device, handle, nil)
		return nil, err
	}

	memHandle, ok := mem.Memory(alloc.MemoryID)
	if !ok {
		cmds.DestroyImage(device, handle, nil)
		return nil, fmt.Errorf("resource: unknown memory id %d", alloc.MemoryID)
	}

	if result := cmds.BindImageMemory(device, handle, memHandle, vk.DeviceSize(alloc.GPUOffset)); result != vk.Success {
		mem.Free(&alloc)
		cmds.DestroyImage(device, handle, nil)
		return nil, fmt.Errorf("resource: vkBindImageMemory: %d", result)
	}

	return &Texture{
		handle:    handle,
		alloc:     alloc,
		extent:    extent,
		format:    format,
		usage:     usage,
		mipLevels: mipLevels,
		samples:   samples,
		device:    device,
		cmds:      cmds,
		mem:       mem,
	}, nil
}

// WrapExternal wraps a VkImage this package does not own, e.g. a swapchain
// image. Destroy is a no-op; the owning swapchain is responsible for it.
func WrapExternal(handle vk.Image, extent vk.Extent3D, format vk.Format) *Texture {
	return &Texture{handle: handle, extent: extent, format: format, mipLevels: 1, samples: vk.SampleCount1Bit, isExternal: true}
}

// Destroy releases the image and returns its memory region to the manager.
// A no-op for external (non-owned) textures.
func (t *Texture) Destroy() {
	if t == nil || t.isExternal || t.cmds == nil {
		return
	}
	t.cmds.DestroyImage(t.device, t.handle, nil)
	if t.mem != nil {
		t.mem.Free(&t.alloc)
	}
}

// Handle returns the VkImage handle.
func (t *Texture) Handle() vk.Image { return t.handle }

// Extent returns the texture's dimensions.
func (t *Texture) Extent() vk.Extent3D { return t.extent }

// Format returns the texture's pixel format.
func (t *Texture) Format() vk.Format { return t.format }

// IsExternal reports whether this texture's memory is owned elsewhere.
func (t *Texture) IsExternal() bool { return t.isExternal }

// ImageView wraps a VkImageView created against a Texture.
type ImageView struct {
	handle  vk.ImageView
	texture *Texture

	device vk.Device
	cmds   *vk.Commands
}

// NewImageView creates a 2D view over the full mip/array range of texture.
func NewImageView(device vk.Device, cmds *vk.Commands, texture *Texture, aspect vk.ImageAspectFlags) (*ImageView, error) {
	info := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    texture.handle,
		ViewType: vk.ImageViewType2d,
		Format:   texture.format,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     aspect,
			BaseMipLevel:   0,
			LevelCount:     texture.mipLevels,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	}

	var handle vk.ImageView
	if result := cmds.CreateImageView(device, &info, nil, &handle); result != vk.Success {
		return nil, fmt.Errorf("resource: vkCreateImageView: %d", result)
	}

	return &ImageView{handle: handle, texture: texture, device: device, cmds: cmds}, nil
}

// Destroy releases the view. The underlying texture is untouched.
func (v *ImageView) Destroy() {
	if v == nil || v.cmds == nil {
		return
	}
	v.cmds.DestroyImageView(v.device, v.handle, nil)
}

// Handle returns the VkImageView handle.
func (v *ImageView) Handle() vk.ImageView { return v.handle }

// Texture returns the view's backing texture.
func (v *ImageView) Texture() *Texture { return v.texture }

// Sampler wraps a VkSampler.
type Sampler struct {
	handle vk.Sampler

	device vk.Device
	cmds   *vk.Commands
}

// NewSampler creates a sampler from the given create-info.
func NewSampler(device vk.Device, cmds *vk.Commands, info vk.SamplerCreateInfo) (*Sampler, error) {
	info.SType = vk.StructureTypeSamplerCreateInfo

	var handle vk.Sampler
	if result := cmds.CreateSampler(device, &info, nil, &handle); result != vk.Success {
		return nil, fmt.Errorf("resource: vkCreateSampler: %d", result)
	}

	return &Sampler{handle: handle, device: device, cmds: cmds}, nil
}

// Destroy releases the sampler.
func (s *Sampler) Destroy() {
	if s == nil || s.cmds == nil {
		return
	}
	s.cmds.DestroySampler(s.device, s.handle, nil)
}

// Handle returns the VkSampler handle.
func (s *Sampler) Handle() vk.Sampler { return s.handle }
