// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package handle

import "testing"

func TestArenaInsertGet(t *testing.T) {
	a := NewArena[string]()

	h0 := a.Insert("zero")
	h1 := a.Insert("one")

	if v, ok := a.Get(h0); !ok || v != "zero" {
		t.Errorf("Get(h0) = %q, %v, want %q, true", v, ok, "zero")
	}
	if v, ok := a.Get(h1); !ok || v != "one" {
		t.Errorf("Get(h1) = %q, %v, want %q, true", v, ok, "one")
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestArenaRemoveInvalidatesHandle(t *testing.T) {
	a := NewArena[int]()
	h := a.Insert(42)

	if !a.Remove(h) {
		t.Fatal("Remove(h) = false, want true")
	}
	if _, ok := a.Get(h); ok {
		t.Error("Get(h) after Remove reported ok, want stale handle to fail")
	}
	if a.Len() != 0 {
		t.Errorf("Len() after Remove = %d, want 0", a.Len())
	}
}

func TestArenaReusesSlotWithNewGeneration(t *testing.T) {
	a := NewArena[int]()
	h0 := a.Insert(1)
	a.Remove(h0)
	h1 := a.Insert(2)

	if h1.Index() != h0.Index() {
		t.Fatalf("expected slot reuse: h0.Index()=%d h1.Index()=%d", h0.Index(), h1.Index())
	}
	if _, ok := a.Get(h0); ok {
		t.Error("stale handle h0 still resolves after slot reuse")
	}
	if v, ok := a.Get(h1); !ok || v != 2 {
		t.Errorf("Get(h1) = %d, %v, want 2, true", v, ok)
	}
}

func TestArenaByIndexIgnoresGeneration(t *testing.T) {
	a := NewArena[int]()
	h := a.Insert(7)

	v, ok := a.ByIndex(h.Index())
	if !ok || v != 7 {
		t.Errorf("ByIndex(%d) = %d, %v, want 7, true", h.Index(), v, ok)
	}

	a.Remove(h)
	if _, ok := a.ByIndex(h.Index()); ok {
		t.Error("ByIndex on a freed slot reported ok, want false")
	}
}

func TestArenaSetMutatesInPlace(t *testing.T) {
	a := NewArena[int]()
	h := a.Insert(1)

	if !a.Set(h, 99) {
		t.Fatal("Set(h, 99) = false, want true")
	}
	if v, _ := a.Get(h); v != 99 {
		t.Errorf("Get(h) = %d, want 99", v)
	}
}

func TestArenaEachVisitsLiveEntriesOnly(t *testing.T) {
	a := NewArena[string]()
	h0 := a.Insert("a")
	a.Insert("b")
	a.Remove(h0)

	seen := map[string]bool{}
	a.Each(func(h Handle[string], value string) {
		seen[value] = true
	})
	if seen["a"] {
		t.Error("Each visited a removed entry")
	}
	if !seen["b"] {
		t.Error("Each did not visit a live entry")
	}
}

func TestHandleZeroValueIsInvalid(t *testing.T) {
	var h Handle[int]
	a := NewArena[int]()
	if !h.IsZero() {
		t.Error("zero Handle.IsZero() = false, want true")
	}
	if _, ok := a.Get(h); ok {
		t.Error("Get on zero Handle reported ok, want false")
	}
}
