// File: factory.go
// Title: String Factory and Construction
// Description: Factory binds an Allocator and an optional logger to the
//              constructing operations. Package-level functions delegate to a
//              heap-backed default factory.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial construction functions
// - 2026-10-19 v0.2.0: Factory with pluggable allocator and logging

package imstr

import (
	"bytes"
	"fmt"

	mdwerrors "github.com/msto63/imstr/foundation/core/errors"
	mdwlog "github.com/msto63/imstr/foundation/core/log"
)

// Factory creates Strings from buffers supplied by its Allocator.
// A Factory is safe for concurrent use if its Allocator is.
type Factory struct {
	alloc  Allocator
	logger *mdwlog.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger reports allocation failures to logger.
func WithLogger(logger *mdwlog.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// NewFactory returns a Factory allocating from alloc. A nil alloc means
// HeapAllocator.
func NewFactory(alloc Allocator, opts ...Option) *Factory {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	f := &Factory{alloc: alloc}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Allocator returns the allocator backing f.
func (f *Factory) Allocator() Allocator {
	return f.alloc
}

var defaultFactory = NewFactory(HeapAllocator{})

// Default returns the factory used by the package-level functions.
func Default() *Factory {
	return defaultFactory
}

// build allocates n+1 bytes, lets fill write the n content bytes and sets the
// terminator. fill receives a buffer of exactly n bytes.
func (f *Factory) build(op string, n int, fill func(dst []byte)) (String, error) {
	if n < 0 || n > MaxLength {
		return f.fail(op, mdwerrors.LengthOverflow(mdwerrors.ModuleImstr, op, ErrAllocation).
			WithDetail("requested", n))
	}

	buf, err := f.alloc.Allocate(n + 1)
	if err != nil {
		return f.fail(op, err)
	}
	if len(buf) != n+1 {
		return f.fail(op, mdwerrors.AllocationFailed(mdwerrors.ModuleImstr, op, n+1, -1, ErrAllocation).
			WithDetail("received", len(buf)))
	}

	if fill != nil {
		fill(buf[:n])
	}
	buf[n] = 0
	return String{data: buf}, nil
}

func (f *Factory) fail(op string, err error) (String, error) {
	wrapped := mdwerrors.OperationFailed(mdwerrors.ModuleImstr, op, err)
	if f.logger != nil {
		f.logger.LogError(wrapped)
	}
	return String{}, wrapped
}

// FromBytes copies the first n bytes of chars into a new String.
// n must lie within [0, len(chars)]; other values are reported as allocation
// failures instead of reading out of range.
func (f *Factory) FromBytes(chars []byte, n int) (String, error) {
	if n < 0 || n > len(chars) {
		return f.fail("FromBytes", mdwerrors.AllocationFailed(mdwerrors.ModuleImstr, "FromBytes", n, len(chars), ErrAllocation))
	}
	return f.build("FromBytes", n, func(dst []byte) {
		copy(dst, chars)
	})
}

// FromString copies s into a new String.
func (f *Factory) FromString(s string) (String, error) {
	return f.build("FromString", len(s), func(dst []byte) {
		copy(dst, s)
	})
}

// FromNullTerminated copies chars up to, not including, the first NUL byte.
// Without a NUL the whole slice is copied.
func (f *Factory) FromNullTerminated(chars []byte) (String, error) {
	n := bytes.IndexByte(chars, 0)
	if n < 0 {
		n = len(chars)
	}
	return f.build("FromNullTerminated", n, func(dst []byte) {
		copy(dst, chars)
	})
}

// FromFormat renders format into a scratch buffer of maxSize bytes and copies
// the result. Output beyond maxSize-1 bytes is dropped silently, leaving room
// for the terminator. A maxSize of 0 or less yields the empty string.
func (f *Factory) FromFormat(maxSize int, format string, args ...interface{}) (String, error) {
	w := &boundedWriter{max: maxSize - 1}
	if w.max > 0 {
		fmt.Fprintf(w, format, args...)
	}
	return f.build("FromFormat", len(w.buf), func(dst []byte) {
		copy(dst, w.buf)
	})
}

// Clone returns an independent copy of s.
func (f *Factory) Clone(s String) (String, error) {
	src := s.content()
	return f.build("Clone", len(src), func(dst []byte) {
		copy(dst, src)
	})
}

// boundedWriter keeps at most max bytes and discards the rest.
type boundedWriter struct {
	buf []byte
	max int
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	room := w.max - len(w.buf)
	if room > len(p) {
		room = len(p)
	}
	if room > 0 {
		w.buf = append(w.buf, p[:room]...)
	}
	return len(p), nil
}

// FromBytes copies the first n bytes of chars using the default factory.
func FromBytes(chars []byte, n int) (String, error) {
	return defaultFactory.FromBytes(chars, n)
}

// FromString copies s using the default factory.
func FromString(s string) (String, error) {
	return defaultFactory.FromString(s)
}

// FromNullTerminated copies chars up to the first NUL using the default factory.
func FromNullTerminated(chars []byte) (String, error) {
	return defaultFactory.FromNullTerminated(chars)
}

// FromFormat renders a bounded formatted String using the default factory.
func FromFormat(maxSize int, format string, args ...interface{}) (String, error) {
	return defaultFactory.FromFormat(maxSize, format, args...)
}

// Clone copies s using the default factory.
func Clone(s String) (String, error) {
	return defaultFactory.Clone(s)
}

// Must returns s or panics if err is non-nil. It is intended for
// initializing package-level variables.
func Must(s String, err error) String {
	if err != nil {
		panic(err)
	}
	return s
}

// Literal returns a String holding lit and panics if it cannot be allocated.
func Literal(lit string) String {
	return Must(defaultFactory.FromString(lit))
}
