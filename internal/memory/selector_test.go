// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
)

func testProperties() DeviceMemoryProperties {
	return DeviceMemoryProperties{
		MemoryTypes: []vk.MemoryType{
			{PropertyFlags: vk.MemoryPropertyDeviceLocalBit, HeapIndex: 0},
			{PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit, HeapIndex: 1},
			{PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCachedBit, HeapIndex: 1},
		},
		MemoryHeaps: []vk.MemoryHeap{
			{Size: 4 << 30, Flags: 0},
			{Size: 8 << 30, Flags: 0},
		},
	}
}

func TestNewMemoryTypeSelector(t *testing.T) {
	selector := NewMemoryTypeSelector(testProperties())
	if selector == nil {
		t.Fatal("NewMemoryTypeSelector returned nil")
	}
	if selector.validTypes != 0b111 {
		t.Errorf("validTypes = %b, want %b", selector.validTypes, 0b111)
	}
}

func TestSelectMemoryType(t *testing.T) {
	selector := NewMemoryTypeSelector(testProperties())

	tests := []struct {
		name      string
		req       AllocationRequest
		wantIndex uint32
		wantFound bool
	}{
		{
			name:      "fast device access prefers device local",
			req:       AllocationRequest{Size: 1024, Usage: UsageFastDeviceAccess, MemoryTypeBits: 0b111},
			wantIndex: 0,
			wantFound: true,
		},
		{
			name:      "upload prefers host visible + coherent",
			req:       AllocationRequest{Size: 1024, Usage: UsageUpload, MemoryTypeBits: 0b111},
			wantIndex: 1,
			wantFound: true,
		},
		{
			name:      "download prefers host visible + cached",
			req:       AllocationRequest{Size: 1024, Usage: UsageDownload, MemoryTypeBits: 0b111},
			wantIndex: 2,
			wantFound: true,
		},
		{
			name:      "host access requires host visible",
			req:       AllocationRequest{Size: 1024, Usage: UsageHostAccess, MemoryTypeBits: 0b111},
			wantIndex: 1,
			wantFound: true,
		},
		{
			name:      "restrictive type bits exclude preferred type",
			req:       AllocationRequest{Size: 1024, Usage: UsageUpload, MemoryTypeBits: 0b100},
			wantIndex: 2,
			wantFound: true,
		},
		{
			name:      "no allowed types",
			req:       AllocationRequest{Size: 1024, Usage: UsageFastDeviceAccess, MemoryTypeBits: 0},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, found := selector.SelectMemoryType(tt.req)
			if found != tt.wantFound {
				t.Fatalf("SelectMemoryType() found = %v, want %v", found, tt.wantFound)
			}
			if found && idx != tt.wantIndex {
				t.Errorf("SelectMemoryType() index = %d, want %d", idx, tt.wantIndex)
			}
		})
	}
}

func TestIsHostVisibleIsDeviceLocal(t *testing.T) {
	selector := NewMemoryTypeSelector(testProperties())

	if !selector.IsDeviceLocal(0) {
		t.Error("type 0 should be device local")
	}
	if selector.IsHostVisible(0) {
		t.Error("type 0 should not be host visible")
	}
	if !selector.IsHostVisible(1) {
		t.Error("type 1 should be host visible")
	}
	if selector.IsDeviceLocal(1) {
		t.Error("type 1 should not be device local")
	}
	if _, ok := selector.GetMemoryType(99); ok {
		t.Error("GetMemoryType(99) should fail for out-of-range index")
	}
}
