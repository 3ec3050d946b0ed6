// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package sharedbuf

import "testing"

type fakeDestroyer struct{ destroyed *bool }

func (f fakeDestroyer) Destroy() { *f.destroyed = true }

func TestTemporaryDataBufferAddAndClear(t *testing.T) {
	temp := NewTemporaryDataBuffer()

	var d1, d2 bool
	temp.Add(fakeDestroyer{&d1})
	temp.Add("a plain CPU blob with no Destroy method")
	temp.Add(fakeDestroyer{&d2})

	if got := temp.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	temp.Clear()

	if !d1 || !d2 {
		t.Error("Clear() should call Destroy on every destroyer item")
	}
	if got := temp.Len(); got != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", got)
	}
	if got := temp.State(); got != stateUnused {
		t.Errorf("State() after Clear() = %v, want stateUnused", got)
	}
}

func TestTemporaryDataBufferMarkUsed(t *testing.T) {
	temp := NewTemporaryDataBuffer()

	if got := temp.State(); got != stateUnused {
		t.Fatalf("initial State() = %v, want stateUnused", got)
	}
	temp.MarkUsed()
	if got := temp.State(); got != stateUsed {
		t.Errorf("State() after MarkUsed() = %v, want stateUsed", got)
	}
}
