// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpusync

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
)

func TestNewFenceFallsBackToBinaryPoolWithoutTimelineSemaphore(t *testing.T) {
	f, err := NewFence(vk.Device(1), vk.NewCommands())
	if err != nil {
		t.Fatalf("NewFence: %v", err)
	}
	if f.IsTimeline() {
		t.Fatal("expected binary fence pool fallback when no function pointers are loaded")
	}
	if f.Semaphore() != 0 {
		t.Fatal("expected zero semaphore handle in binary fallback mode")
	}
}

func TestFenceNextSignalValueIncrements(t *testing.T) {
	f, err := NewFence(vk.Device(1), vk.NewCommands())
	if err != nil {
		t.Fatalf("NewFence: %v", err)
	}
	if got := f.NextSignalValue(); got != 1 {
		t.Fatalf("first signal value = %d, want 1", got)
	}
	if got := f.NextSignalValue(); got != 2 {
		t.Fatalf("second signal value = %d, want 2", got)
	}
	if got := f.CurrentSignalValue(); got != 2 {
		t.Fatalf("CurrentSignalValue() = %d, want 2", got)
	}
}

func TestFenceBinaryFenceForFailsWithoutDevice(t *testing.T) {
	f, err := NewFence(vk.Device(1), vk.NewCommands())
	if err != nil {
		t.Fatalf("NewFence: %v", err)
	}
	if _, err := f.BinaryFenceFor(1); err == nil {
		t.Fatal("expected an error when vkCreateFence has no function pointer loaded")
	}
}

func TestFenceWaitReturnsNilForAlreadyCompletedOrZeroValue(t *testing.T) {
	f, err := NewFence(vk.Device(1), vk.NewCommands())
	if err != nil {
		t.Fatalf("NewFence: %v", err)
	}
	if err := f.Wait(0, 0); err != nil {
		t.Fatalf("Wait(0, ...) = %v, want nil", err)
	}
}

func TestFenceWaitForLatestIsNilWhenNothingSubmitted(t *testing.T) {
	f, err := NewFence(vk.Device(1), vk.NewCommands())
	if err != nil {
		t.Fatalf("NewFence: %v", err)
	}
	if err := f.WaitForLatest(0); err != nil {
		t.Fatalf("WaitForLatest() = %v, want nil", err)
	}
}

func TestFenceDestroyIsIdempotent(t *testing.T) {
	f, err := NewFence(vk.Device(1), vk.NewCommands())
	if err != nil {
		t.Fatalf("NewFence: %v", err)
	}
	f.Destroy()
	f.Destroy()
}
