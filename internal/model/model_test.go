// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package model

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
	"github.com/terra-gfx/terra/internal/memory"
)

func testMemoryProperties() memory.DeviceMemoryProperties {
	return memory.DeviceMemoryProperties{
		MemoryTypes: []vk.MemoryType{
			{PropertyFlags: vk.MemoryPropertyDeviceLocalBit, HeapIndex: 0},
			{PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit, HeapIndex: 1},
		},
		MemoryHeaps: []vk.MemoryHeap{
			{Size: 4 << 30, Flags: 0},
			{Size: 8 << 30, Flags: 0},
		},
	}
}

func testMemoryManager() *memory.Manager {
	return memory.NewManager(vk.Device(1), vk.NewCommands(), testMemoryProperties(), memory.DefaultConfig())
}

func TestCeilDiv(t *testing.T) {
	tests := []struct{ n, d, want uint32 }{
		{0, 64, 0},
		{1, 64, 1},
		{64, 64, 1},
		{65, 64, 2},
		{128, 64, 2},
	}
	for _, tt := range tests {
		if got := ceilDiv(tt.n, tt.d); got != tt.want {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
		}
	}
}

func TestIdentity(t *testing.T) {
	m := Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if got := m[i*4+j]; got != want {
				t.Errorf("Identity()[%d][%d] = %f, want %f", i, j, got, want)
			}
		}
	}
}

func TestPipelineDetailsEach(t *testing.T) {
	details := PipelineDetails{
		PipelineGlobal:       3,
		ModelBundleIndices:   []uint32{10, 11, 12},
		PipelineLocalIndices: []uint32{0, 1, 0},
	}
	type call struct {
		local int
		model uint32
	}
	var got []call
	details.Each(func(localIndex int, modelIndex uint32) {
		got = append(got, call{localIndex, modelIndex})
	})
	want := []call{{0, 10}, {1, 11}, {0, 12}}
	if len(got) != len(want) {
		t.Fatalf("Each produced %d calls, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestNewMeshManagerVSIndividualFailsWithoutDevice(t *testing.T) {
	mem := testMemoryManager()
	_, err := NewMeshManagerVSIndividual(vk.Device(1), vk.NewCommands(), mem, 64, 64, 4)
	if err == nil {
		t.Fatal("expected an error when the underlying device cannot create a buffer")
	}
}

func TestNewMeshManagerMSFailsWithoutDevice(t *testing.T) {
	mem := testMemoryManager()
	_, err := NewMeshManagerMS(vk.Device(1), vk.NewCommands(), mem, 64, 64, 64, 4)
	if err == nil {
		t.Fatal("expected an error when the underlying device cannot create a buffer")
	}
}
