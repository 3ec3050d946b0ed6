// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpusync

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
)

func TestFencePoolSignalFailsWithoutDevice(t *testing.T) {
	p := &fencePool{}
	if _, err := p.signal(vk.NewCommands(), vk.Device(1), 1); err == nil {
		t.Fatal("expected an error when vkCreateFence has no function pointer loaded")
	}
}

func TestFencePoolWaitNoopsBelowLastCompleted(t *testing.T) {
	p := &fencePool{lastCompleted: 5}
	if err := p.wait(vk.NewCommands(), vk.Device(1), 3, 0); err != nil {
		t.Fatalf("wait(3) with lastCompleted=5 = %v, want nil", err)
	}
}

func TestFencePoolWaitForLatestNoopsWhenEmpty(t *testing.T) {
	p := &fencePool{}
	if err := p.waitForLatest(vk.NewCommands(), vk.Device(1), 0); err != nil {
		t.Fatalf("waitForLatest() on empty pool = %v, want nil", err)
	}
}

func TestFencePoolDestroyClearsState(t *testing.T) {
	p := &fencePool{active: []fenceEntry{{value: 1, fence: vk.Fence(1)}}, free: []vk.Fence{vk.Fence(2)}, lastCompleted: 1}
	p.destroy(vk.NewCommands(), vk.Device(1))
	if len(p.active) != 0 || len(p.free) != 0 || p.lastCompleted != 0 {
		t.Fatal("destroy did not clear pool state")
	}
}
