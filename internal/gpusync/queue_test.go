// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpusync

import (
	"testing"

	"github.com/terra-gfx/terra/vk"
)

func TestNewQueueFailsWhenCommandPoolCreationFails(t *testing.T) {
	_, err := NewQueue(vk.Device(1), vk.NewCommands(), 0, 0, 2, 4)
	if err == nil {
		t.Fatal("expected an error propagated from NewCommandPool without a device")
	}
}

func TestQueueWaitIdleFailsWithoutDevice(t *testing.T) {
	q := &Queue{device: vk.Device(1), cmds: vk.NewCommands(), handle: vk.Queue(1)}
	if err := q.WaitIdle(); err == nil {
		t.Fatal("expected an error when vkQueueWaitIdle has no function pointer loaded")
	}
}

func TestQueueDestroyIsSafeWithNoPools(t *testing.T) {
	q := &Queue{}
	q.Destroy()
}

func TestQueueFamilyIndexAndHandleAccessors(t *testing.T) {
	q := &Queue{handle: vk.Queue(9), familyIndex: 3}
	if q.Handle() != vk.Queue(9) {
		t.Fatal("Handle() mismatch")
	}
	if q.FamilyIndex() != 3 {
		t.Fatal("FamilyIndex() mismatch")
	}
}

func TestSubmissionBuilderResetClearsAccumulatedState(t *testing.T) {
	b := &SubmissionBuilder{}
	b.Wait(WaitPoint{Semaphore: vk.Semaphore(1), Stage: 1})
	b.AddCommandBuffer(&CommandBuffer{handle: vk.CommandBuffer(1)})
	b.Signal(SignalPoint{Semaphore: vk.Semaphore(2), Stage: 1})

	if len(b.waits) != 1 || len(b.cmds) != 1 || len(b.signals) != 1 {
		t.Fatal("expected one accumulated wait, command buffer and signal")
	}

	b.Reset()
	if len(b.waits) != 0 || len(b.cmds) != 0 || len(b.signals) != 0 {
		t.Fatal("Reset did not clear accumulated submission state")
	}
}

func TestSubmissionBuilderSubmitFailsWithoutDevice(t *testing.T) {
	q := &Queue{device: vk.Device(1), cmds: vk.NewCommands(), handle: vk.Queue(1)}
	b := &SubmissionBuilder{}
	b.AddCommandBuffer(&CommandBuffer{handle: vk.CommandBuffer(1)})

	if err := b.Submit(q, 0); err == nil {
		t.Fatal("expected an error when vkQueueSubmit2 has no function pointer loaded")
	}
}
