// File: alloc.go
// Title: Buffer Allocators
// Description: Allocator abstraction with a heap implementation and a
//              budget-limited wrapper.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Heap allocation only
// - 2026-10-19 v0.2.0: Allocator interface, LimitedAllocator with clamped release

package imstr

import (
	"errors"
	"math"
	"sync/atomic"

	mdwerrors "github.com/msto63/imstr/foundation/core/errors"
)

const (
	// MaxAllocation is the largest buffer HeapAllocator hands out.
	MaxAllocation = math.MaxInt32

	// MaxLength is the longest String content; one byte is the terminator.
	MaxLength = MaxAllocation - 1
)

// ErrAllocation is the cause of every allocation failure reported by this
// package. Test for it with errors.Is.
var ErrAllocation = errors.New("imstr: allocation failed")

// Allocator provides buffers for new Strings.
type Allocator interface {
	// Allocate returns a buffer of exactly size bytes or an error matching
	// ErrAllocation. The buffer must not be referenced by anything else.
	Allocate(size int) ([]byte, error)
}

// HeapAllocator allocates from the Go heap.
type HeapAllocator struct{}

// Allocate implements Allocator.
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 || size > MaxAllocation {
		return nil, mdwerrors.AllocationFailed(mdwerrors.ModuleImstr, "Allocate", size, MaxAllocation, ErrAllocation)
	}
	return make([]byte, size), nil
}

// LimitedAllocator enforces a total byte budget over another allocator.
// Memory is not returned to the budget when Strings become unreachable;
// call Reset to start a new accounting period.
type LimitedAllocator struct {
	base  Allocator
	limit int64
	used  atomic.Int64
}

// NewLimitedAllocator returns an allocator that fails once limit bytes have
// been handed out. A nil base means HeapAllocator.
func NewLimitedAllocator(base Allocator, limit int) *LimitedAllocator {
	if base == nil {
		base = HeapAllocator{}
	}
	if limit < 0 {
		limit = 0
	}
	return &LimitedAllocator{base: base, limit: int64(limit)}
}

// Allocate implements Allocator. A request that does not fit leaves Used
// unchanged.
func (a *LimitedAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, mdwerrors.AllocationFailed(mdwerrors.ModuleImstr, "Allocate", size, a.Limit(), ErrAllocation)
	}

	for {
		used := a.used.Load()
		if int64(size) > a.limit-used {
			return nil, mdwerrors.AllocationFailed(mdwerrors.ModuleImstr, "Allocate", size, a.Limit(), ErrAllocation).
				WithDetail("used", used)
		}
		if a.used.CompareAndSwap(used, used+int64(size)) {
			break
		}
	}

	buf, err := a.base.Allocate(size)
	if err != nil {
		a.release(int64(size))
		return nil, err
	}
	return buf, nil
}

// release returns size bytes to the budget. A Reset between reservation and
// release may already have cleared them, so Used never drops below zero.
func (a *LimitedAllocator) release(size int64) {
	for {
		used := a.used.Load()
		next := used - size
		if next < 0 {
			next = 0
		}
		if a.used.CompareAndSwap(used, next) {
			return
		}
	}
}

// Limit returns the budget in bytes.
func (a *LimitedAllocator) Limit() int {
	return int(a.limit)
}

// Used returns the bytes handed out since construction or the last Reset.
func (a *LimitedAllocator) Used() int {
	return int(a.used.Load())
}

// Remaining returns the bytes still available.
func (a *LimitedAllocator) Remaining() int {
	return int(a.limit - a.used.Load())
}

// Reset clears the usage counter.
func (a *LimitedAllocator) Reset() {
	a.used.Store(0)
}
