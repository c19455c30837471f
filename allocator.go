package scratchpad

import "github.com/cockroachdb/errors"

// Allocator is the general-purpose allocator behind overflow blocks.
// Resize is only ever asked to grow; it may return a different slice.
// Errors from Allocate and Resize are fatal to the pad.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Resize(b []byte, n int) ([]byte, error)
	Release(b []byte)
}

// HeapAllocator is the default Allocator, backed by the Go heap.
// A positive Limit caps the number of bytes outstanding at once.
type HeapAllocator struct {
	Limit int

	inUse int
}

// Allocate returns a zeroed slice of n bytes.
func (h *HeapAllocator) Allocate(n int) ([]byte, error) {
	if h.Limit > 0 && h.inUse+n > h.Limit {
		return nil, errors.Wrapf(ErrOutOfMemory, "allocate %d bytes with %d of %d in use", n, h.inUse, h.Limit)
	}
	h.inUse += n
	return make([]byte, n), nil
}

// Resize grows b to n bytes, relocating it when its capacity is too small.
func (h *HeapAllocator) Resize(b []byte, n int) ([]byte, error) {
	if n < len(b) {
		return nil, errors.AssertionFailedf("scratchpad: resize from %d to %d bytes shrinks", len(b), n)
	}
	grow := n - len(b)
	if h.Limit > 0 && h.inUse+grow > h.Limit {
		return nil, errors.Wrapf(ErrOutOfMemory, "resize %d to %d bytes with %d of %d in use", len(b), n, h.inUse, h.Limit)
	}
	h.inUse += grow
	if n <= cap(b) {
		return b[:n], nil
	}
	nb := make([]byte, n)
	copy(nb, b)
	return nb, nil
}

// Release returns b to the allocator.
func (h *HeapAllocator) Release(b []byte) {
	h.inUse -= len(b)
}

// InUse reports the bytes currently handed out.
func (h *HeapAllocator) InUse() int {
	return h.inUse
}
