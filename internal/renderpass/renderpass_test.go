// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package renderpass

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
)

func TestAddColourReturnsIndex(t *testing.T) {
	m := NewManager()
	i0 := m.AddColour(1, vk.ClearValue{}, 0, 0)
	i1 := m.AddColour(2, vk.ClearValue{}, 0, 0)
	if i0 != 0 || i1 != 1 {
		t.Fatalf("AddColour indices = %d, %d; want 0, 1", i0, i1)
	}
	if len(m.colour) != 2 {
		t.Fatalf("len(colour) = %d, want 2", len(m.colour))
	}
}

func TestSetColourViewAndClear(t *testing.T) {
	m := NewManager()
	m.AddColour(1, vk.ClearValue{}, 0, 0)
	m.SetColourView(0, 42)
	if m.colour[0].View != 42 {
		t.Errorf("View = %d, want 42", m.colour[0].View)
	}
}

func TestAddStartImageBarrierNoopReturnsNoBarrier(t *testing.T) {
	m := NewManager()
	idx := m.AddStartImageBarrier(StartBarrier{
		OldLayout: 5, NewLayout: 5,
		SrcAccessMask: 1, DstAccessMask: 1,
	})
	if idx != NoBarrier {
		t.Errorf("no-op barrier should return NoBarrier, got %d", idx)
	}
	if len(m.barriers) != 0 {
		t.Errorf("no-op barrier should not be recorded, len(barriers) = %d", len(m.barriers))
	}
}

func TestAddStartImageBarrierRealTransitionRecorded(t *testing.T) {
	m := NewManager()
	idx := m.AddStartImageBarrier(StartBarrier{
		OldLayout: 0, NewLayout: 2,
		SrcAccessMask: 0, DstAccessMask: 1,
	})
	if idx != 0 {
		t.Errorf("first real barrier should be index 0, got %d", idx)
	}
	if len(m.barriers) != 1 {
		t.Fatalf("len(barriers) = %d, want 1", len(m.barriers))
	}

	m.SetBarrierImage(idx, 99)
	if m.barriers[0].Image != 99 {
		t.Errorf("SetBarrierImage did not update image")
	}
	m.SetSrcStage(idx, 123)
	if m.barriers[0].SrcStageMask != 123 {
		t.Errorf("SetSrcStage did not update stage")
	}
}

func TestSetBarrierImageIgnoresNoBarrierIndex(t *testing.T) {
	m := NewManager()
	m.SetBarrierImage(NoBarrier, 7) // must not panic
}

func TestResetClearsState(t *testing.T) {
	m := NewManager()
	m.AddColour(1, vk.ClearValue{}, 0, 0)
	m.SetDepth(1, 1.0, 0, 0, -1)
	m.AddStartImageBarrier(StartBarrier{OldLayout: 0, NewLayout: 2, DstAccessMask: 1})

	m.Reset()
	if len(m.colour) != 0 || m.depth != nil || len(m.barriers) != 0 {
		t.Error("Reset did not clear all state")
	}
}
