// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package thread

import (
	"bytes"
	"testing"
)

func TestPool_SubmitWait(t *testing.T) {
	p := New(4)
	defer p.Stop()

	var results [8]int
	for i := range results {
		i := i
		p.Submit(func() {
			results[i] = i * i
		})
	}
	p.Wait()

	for i, v := range results {
		if v != i*i {
			t.Errorf("results[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestCopyChunked_SmallFallsBackToPlainCopy(t *testing.T) {
	p := New(2)
	defer p.Stop()

	src := []byte("hello world")
	dst := make([]byte, len(src))
	CopyChunked(p, dst, src, 1024)

	if !bytes.Equal(dst, src) {
		t.Errorf("CopyChunked(small) = %q, want %q", dst, src)
	}
}

func TestCopyChunked_SplitsAcrossWorkers(t *testing.T) {
	p := New(4)
	defer p.Stop()

	src := make([]byte, 1<<20)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, len(src))

	CopyChunked(p, dst, src, 64*1024)

	if !bytes.Equal(dst, src) {
		t.Error("CopyChunked(large) did not reproduce src")
	}
}

func TestCopyChunked_NilPoolFallsBack(t *testing.T) {
	src := make([]byte, 4096)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, len(src))

	CopyChunked(nil, dst, src, 16)

	if !bytes.Equal(dst, src) {
		t.Error("CopyChunked(nil pool) did not reproduce src")
	}
}

func TestPool_Stop(t *testing.T) {
	p := New(2)
	p.Stop()
	// Stop must be idempotent.
	p.Stop()
}
