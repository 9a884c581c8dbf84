// File: combine.go
// Title: Concatenation and Joining
// Description: Operations that combine several Strings into one.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Slice arguments, overflow checks

package imstr

import (
	mdwerrors "github.com/msto63/imstr/foundation/core/errors"
)

// totalLength sums the lengths of items plus extra, failing when the result
// cannot be represented as a String.
func totalLength(op string, extra int, items ...String) (int, error) {
	total := extra
	for _, item := range items {
		if item.Len() > MaxLength-total {
			return 0, mdwerrors.LengthOverflow(mdwerrors.ModuleImstr, op, ErrAllocation)
		}
		total += item.Len()
	}
	return total, nil
}

// Concat returns a followed by b.
func (f *Factory) Concat(a, b String) (String, error) {
	n, err := totalLength("Concat", 0, a, b)
	if err != nil {
		return f.fail("Concat", err)
	}
	return f.build("Concat", n, func(dst []byte) {
		off := copy(dst, a.content())
		copy(dst[off:], b.content())
	})
}

// ConcatMany returns all items in order. No items yield the empty string.
func (f *Factory) ConcatMany(items []String) (String, error) {
	n, err := totalLength("ConcatMany", 0, items...)
	if err != nil {
		return f.fail("ConcatMany", err)
	}
	return f.build("ConcatMany", n, func(dst []byte) {
		off := 0
		for _, item := range items {
			off += copy(dst[off:], item.content())
		}
	})
}

// JoinMany returns items in order with sep between each adjacent pair.
func (f *Factory) JoinMany(sep String, items []String) (String, error) {
	if len(items) == 0 {
		return f.build("JoinMany", 0, nil)
	}

	seps := 0
	for i := 1; i < len(items); i++ {
		if sep.Len() > MaxLength-seps {
			return f.fail("JoinMany", mdwerrors.LengthOverflow(mdwerrors.ModuleImstr, "JoinMany", ErrAllocation))
		}
		seps += sep.Len()
	}

	n, err := totalLength("JoinMany", seps, items...)
	if err != nil {
		return f.fail("JoinMany", err)
	}
	return f.build("JoinMany", n, func(dst []byte) {
		off := copy(dst, items[0].content())
		for _, item := range items[1:] {
			off += copy(dst[off:], sep.content())
			off += copy(dst[off:], item.content())
		}
	})
}

// Concat returns a followed by b using the default factory.
func Concat(a, b String) (String, error) {
	return defaultFactory.Concat(a, b)
}

// ConcatMany concatenates items using the default factory.
func ConcatMany(items []String) (String, error) {
	return defaultFactory.ConcatMany(items)
}

// JoinMany joins items with sep using the default factory.
func JoinMany(sep String, items []String) (String, error) {
	return defaultFactory.JoinMany(sep, items)
}
