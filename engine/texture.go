// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/descriptor"
	"github.com/terra-gfx/terra/internal/handle"
	"github.com/terra-gfx/terra/internal/memory"
	"github.com/terra-gfx/terra/internal/resource"
	"github.com/terra-gfx/terra/internal/sharedbuf"
	"github.com/terra-gfx/terra/internal/staging"
)

// textureDescriptorSet is the descriptor set index every sampled
// material texture binds into; the bindless array of combined
// image/samplers lives at a single binding slot within it.
const (
	textureDescriptorSet  = 1
	textureDescriptorSlot = 0
)

// textureRecord is a realised GPU texture awaiting a bind_texture call.
type textureRecord struct {
	texture *resource.Texture
	view    *resource.ImageView
}

// descriptorWriter is the subset of *internal/descriptor.Manager
// TextureManager needs to publish a bound texture's descriptor,
// satisfied structurally by the real manager and substitutable with a
// recording fake in tests.
type descriptorWriter interface {
	SetCombinedImageDescriptor(set int, slot, index uint32, sampler vk.Sampler, view vk.ImageView, layout vk.ImageLayout) error
}

// TextureManager implements spec.md §6's add_texture/bind_texture/
// unbind_texture/remove_texture quartet. Textures are created in GPU
// memory, with their pixel upload queued on the staging manager, as soon
// as add_texture is called; binding only assigns them a descriptor slot
// in the bindless combined-image-sampler array.
//
// Slot 0 of the descriptor array is reserved for the default sampler so
// that, per
// spec.md §8's boundary property, binding and unbinding N textures in
// reverse order always leaves the array back at "empty, default sampler
// still at slot 0".
type TextureManager struct {
	device vk.Device
	cmds   *vk.Commands
	mem    *memory.Manager
	stage  *staging.Manager
	desc   descriptorWriter

	textures *handle.Arena[*textureRecord]
	sampler  *resource.Sampler

	slots    *handle.Arena[uint64] // index 0 reserved for the default sampler, value is a texture id (handle index)
	slotOfID map[uint64]uint32     // texture id -> bound slot, only while bound
}

// NewTextureManager creates the manager's default 1x1 sampler and
// reserves descriptor slot 0 for it.
func NewTextureManager(device vk.Device, cmds *vk.Commands, mem *memory.Manager, stage *staging.Manager, desc *descriptor.Manager) (*TextureManager, error) {
	sampler, err := resource.NewSampler(device, cmds, vk.SamplerCreateInfo{
		MagFilter:    vk.FilterLinear,
		MinFilter:    vk.FilterLinear,
		MipmapMode:   vk.SamplerMipmapModeLinear,
		AddressModeU: vk.SamplerAddressModeRepeat,
		AddressModeV: vk.SamplerAddressModeRepeat,
		AddressModeW: vk.SamplerAddressModeRepeat,
		MaxLod:       1,
	})
	if err != nil {
		return nil, newError(ErrPipelineBuildFailure, "default texture sampler", err)
	}

	tm := &TextureManager{
		device:   device,
		cmds:     cmds,
		mem:      mem,
		stage:    stage,
		desc:     desc,
		textures: handle.NewArena[*textureRecord](),
		sampler:  sampler,
		slots:    handle.NewArena[uint64](),
		slotOfID: make(map[uint64]uint32),
	}
	tm.slots.Insert(0) // slot 0: default sampler, never removed
	return tm, nil
}

// AddTexture creates a sampled 2D texture, queues its pixel upload, and
// returns its id. Pixels are expected in the texture's format's native
// byte layout (RGBA8 for FormatR8g8b8a8Unorm); upload is not realised
// until a subsequent CopyAndClear/Present cycle drains the staging queue.
func (tm *TextureManager) AddTexture(pixels []byte, width, height uint32, temp *sharedbuf.TemporaryDataBuffer) (uint64, error) {
	extent := vk.Extent3D{Width: width, Height: height, Depth: 1}
	tex, err := resource.NewTexture(tm.device, tm.cmds, tm.mem, extent, vk.FormatR8g8b8a8Unorm,
		vk.ImageUsageSampledBit|vk.ImageUsageTransferDstBit, 1, vk.SampleCount1Bit)
	if err != nil {
		return 0, newError(ErrOutOfDeviceMemory, "add_texture", err)
	}

	view, err := resource.NewImageView(tm.device, tm.cmds, tex, vk.ImageAspectColorBit)
	if err != nil {
		tex.Destroy()
		return 0, newError(ErrPipelineBuildFailure, "add_texture view", err)
	}

	tm.stage.AddTexture(pixels, tex.Handle(), extent, vk.ImageAspectColorBit, staging.Target{}, temp)

	h := tm.textures.Insert(&textureRecord{texture: tex, view: view})
	return uint64(h.Index()), nil
}

// BindTexture assigns id a reusable descriptor slot in the bindless
// combined-image-sampler array and returns the slot index, per spec.md
// §6's bind_texture. Binding the same id twice returns its existing slot.
func (tm *TextureManager) BindTexture(id uint64) (uint32, error) {
	if slot, ok := tm.slotOfID[id]; ok {
		return slot, nil
	}

	rec, ok := tm.textures.ByIndex(handle.Index(id))
	if !ok {
		return 0, newError(ErrUnknown, "bind_texture: unknown id", nil)
	}

	h := tm.slots.Insert(id)
	slot := h.Index()

	if err := tm.desc.SetCombinedImageDescriptor(textureDescriptorSet, textureDescriptorSlot, slot,
		tm.sampler.Handle(), rec.view.Handle(), vk.ImageLayoutShaderReadOnlyOptimal); err != nil {
		tm.slots.RemoveByIndex(slot)
		return 0, newError(ErrPipelineBuildFailure, "bind_texture descriptor write", err)
	}

	tm.slotOfID[id] = slot
	return slot, nil
}

// UnbindTexture releases id's descriptor slot without destroying the
// underlying GPU texture, per spec.md §6's unbind_texture.
func (tm *TextureManager) UnbindTexture(id uint64) {
	slot, ok := tm.slotOfID[id]
	if !ok {
		return
	}
	tm.slots.RemoveByIndex(slot)
	delete(tm.slotOfID, id)
}

// RemoveTexture unbinds (if bound) and destroys id's GPU texture, per
// spec.md §6's remove_texture.
func (tm *TextureManager) RemoveTexture(id uint64) {
	tm.UnbindTexture(id)
	rec, ok := tm.textures.ByIndex(handle.Index(id))
	if !ok {
		return
	}
	rec.view.Destroy()
	rec.texture.Destroy()
	tm.textures.RemoveByIndex(handle.Index(id))
}

// Destroy releases every texture still registered, the shared sampler,
// and the descriptor slot reservations.
func (tm *TextureManager) Destroy() {
	tm.textures.Each(func(_ handle.Handle[*textureRecord], rec *textureRecord) {
		rec.view.Destroy()
		rec.texture.Destroy()
	})
	tm.sampler.Destroy()
}
