// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package descriptor

import "testing"

func TestAlignUp(t *testing.T) {
	tests := []struct {
		v, align, want uint64
	}{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{17, 16, 32},
		{100, 0, 100},
	}
	for _, tt := range tests {
		if got := alignUp(tt.v, tt.align); got != tt.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", tt.v, tt.align, got, tt.want)
		}
	}
}

func TestPropertiesDescriptorSize(t *testing.T) {
	p := Properties{
		UniformBufferDescriptorSize: 16,
		StorageBufferDescriptorSize: 8,
	}
	if got := p.descriptorSize(0x6); got != 16 { // DescriptorTypeUniformBuffer = 6
		t.Errorf("descriptorSize(UniformBuffer) = %d, want 16", got)
	}
	if got := p.descriptorSize(0x7); got != 8 { // DescriptorTypeStorageBuffer = 7
		t.Errorf("descriptorSize(StorageBuffer) = %d, want 8", got)
	}
}

func TestManagerAddAndUpdateBinding(t *testing.T) {
	m := NewManager(0, nil, nil, Properties{})
	m.AddBinding(0, Binding{Slot: 0, Type: 6, Count: 1})
	m.AddBinding(2, Binding{Slot: 1, Type: 7, Count: 1})

	if len(m.sets) != 3 {
		t.Fatalf("len(sets) = %d, want 3 (set 2 forces growth through index 1)", len(m.sets))
	}
	if len(m.sets[1].bindings) != 0 {
		t.Errorf("set 1 should have no bindings, got %d", len(m.sets[1].bindings))
	}

	if err := m.UpdateBinding(0, Binding{Slot: 0, Type: 6, Count: 4}); err != nil {
		t.Fatalf("UpdateBinding: %v", err)
	}
	if got := m.sets[0].bindings[0].Count; got != 4 {
		t.Errorf("updated binding Count = %d, want 4", got)
	}

	if err := m.UpdateBinding(0, Binding{Slot: 9}); err == nil {
		t.Error("UpdateBinding with unknown slot should error")
	}
	if err := m.UpdateBinding(5, Binding{}); err == nil {
		t.Error("UpdateBinding with unadded set should error")
	}
}
