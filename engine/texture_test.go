// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"testing"

	"github.com/terra-gfx/terra/internal/handle"
	"github.com/terra-gfx/terra/internal/resource"
	"github.com/terra-gfx/terra/vk"
)

// fakeDescriptorWriter records SetCombinedImageDescriptor calls instead
// of touching a real descriptor buffer.
type fakeDescriptorWriter struct {
	writes int
}

func (f *fakeDescriptorWriter) SetCombinedImageDescriptor(set int, slot, index uint32, sampler vk.Sampler, view vk.ImageView, layout vk.ImageLayout) error {
	f.writes++
	return nil
}

// newTestTextureManager builds a TextureManager whose bookkeeping
// (arena, slot map) is real but whose GPU-backed fields (sampler,
// descriptor writer) are stand-ins, since add_texture/the real sampler
// both require a live device. BindTexture/UnbindTexture/RemoveTexture
// never dereference tm.textures' resource.Texture/ImageView fields, so
// nil placeholders are safe here.
func newTestTextureManager() (*TextureManager, *fakeDescriptorWriter) {
	fd := &fakeDescriptorWriter{}
	tm := &TextureManager{
		desc:     fd,
		sampler:  &resource.Sampler{},
		textures: handle.NewArena[*textureRecord](),
		slots:    handle.NewArena[uint64](),
		slotOfID: make(map[uint64]uint32),
	}
	tm.slots.Insert(0) // slot 0: default sampler, never removed
	return tm, fd
}

// TestTextureManagerBindUnbindRoundTrip is spec.md §8's boundary
// property: binding N textures and then unbinding them in reverse
// order always leaves the descriptor slot array back at empty, with
// the default sampler still reserved at slot 0.
func TestTextureManagerBindUnbindRoundTrip(t *testing.T) {
	tm, fd := newTestTextureManager()

	const n = 4
	ids := make([]uint64, n)
	for i := 0; i < n; i++ {
		h := tm.textures.Insert(&textureRecord{})
		ids[i] = uint64(h.Index())
	}

	slots := make([]uint32, n)
	for i, id := range ids {
		slot, err := tm.BindTexture(id)
		if err != nil {
			t.Fatalf("BindTexture(%d) = %v", id, err)
		}
		if slot == 0 {
			t.Fatalf("BindTexture(%d) returned reserved default slot 0", id)
		}
		slots[i] = slot
	}
	if fd.writes != n {
		t.Fatalf("got %d descriptor writes, want %d", fd.writes, n)
	}
	if tm.slots.Len() != n+1 {
		t.Fatalf("slots.Len() = %d, want %d (default + %d bound)", tm.slots.Len(), n+1, n)
	}

	for i := n - 1; i >= 0; i-- {
		tm.UnbindTexture(ids[i])
	}

	if tm.slots.Len() != 1 {
		t.Fatalf("after unbinding all textures, slots.Len() = %d, want 1 (default sampler only)", tm.slots.Len())
	}
	if len(tm.slotOfID) != 0 {
		t.Fatalf("after unbinding all textures, slotOfID has %d entries, want 0", len(tm.slotOfID))
	}
	if _, ok := tm.slots.ByIndex(0); !ok {
		t.Fatal("default sampler slot 0 was freed by UnbindTexture")
	}
}

// TestTextureManagerBindTextureIsIdempotent verifies binding an
// already-bound id returns its existing slot rather than allocating a
// second one, per spec.md §6's bind_texture.
func TestTextureManagerBindTextureIsIdempotent(t *testing.T) {
	tm, fd := newTestTextureManager()
	h := tm.textures.Insert(&textureRecord{})
	id := uint64(h.Index())

	first, err := tm.BindTexture(id)
	if err != nil {
		t.Fatalf("first BindTexture: %v", err)
	}
	second, err := tm.BindTexture(id)
	if err != nil {
		t.Fatalf("second BindTexture: %v", err)
	}
	if first != second {
		t.Fatalf("BindTexture returned different slots on repeat bind: %d, then %d", first, second)
	}
	if fd.writes != 1 {
		t.Fatalf("got %d descriptor writes for a repeat bind, want 1", fd.writes)
	}
}

// TestTextureManagerUnbindUnknownIsNoop mirrors unbind_texture's
// documented behavior for an id that was never bound (or already
// unbound): no panic, no slot freed.
func TestTextureManagerUnbindUnknownIsNoop(t *testing.T) {
	tm, _ := newTestTextureManager()
	tm.UnbindTexture(12345)
	if tm.slots.Len() != 1 {
		t.Fatalf("slots.Len() = %d after unbinding an unknown id, want 1", tm.slots.Len())
	}
}

// TestTextureManagerRemoveTextureUnbindsAndFreesID is spec.md §6's
// remove_texture: removing a bound texture both frees its descriptor
// slot and drops the id from the texture arena, so a later ByIndex
// lookup reports it gone.
func TestTextureManagerRemoveTextureUnbindsAndFreesID(t *testing.T) {
	tm, _ := newTestTextureManager()
	h := tm.textures.Insert(&textureRecord{})
	id := uint64(h.Index())

	if _, err := tm.BindTexture(id); err != nil {
		t.Fatalf("BindTexture: %v", err)
	}
	tm.RemoveTexture(id)

	if tm.slots.Len() != 1 {
		t.Fatalf("slots.Len() = %d after RemoveTexture, want 1 (default sampler only)", tm.slots.Len())
	}
	if _, ok := tm.textures.ByIndex(handle.Index(id)); ok {
		t.Fatalf("texture id %d still present in the arena after RemoveTexture", id)
	}
}
