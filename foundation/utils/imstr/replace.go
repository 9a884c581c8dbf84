// File: replace.go
// Title: Replacement
// Description: ReplaceFirst and ReplaceAll build the result in one buffer
//              whose size is computed before allocation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Single pass with exact result length

package imstr

import (
	"bytes"

	mdwerrors "github.com/msto63/imstr/foundation/core/errors"
)

// replacedLength returns len(s) + count*(len(to)-len(what)).
func replacedLength(op string, s, what, to String, count int) (int, error) {
	delta := to.Len() - what.Len()
	if count > 0 && delta > 0 && count > (MaxLength-s.Len())/delta {
		return 0, mdwerrors.LengthOverflow(mdwerrors.ModuleImstr, op, ErrAllocation)
	}
	return s.Len() + count*delta, nil
}

// ReplaceFirst returns a copy of s with the first occurrence of what replaced
// by to. If what is empty or absent the copy is unmodified.
func (f *Factory) ReplaceFirst(s, what, to String) (String, error) {
	idx := IndexOf(s, what)
	if idx < 0 {
		return f.Clone(s)
	}

	n, err := replacedLength("ReplaceFirst", s, what, to, 1)
	if err != nil {
		return f.fail("ReplaceFirst", err)
	}
	src := s.content()
	return f.build("ReplaceFirst", n, func(dst []byte) {
		off := copy(dst, src[:idx])
		off += copy(dst[off:], to.content())
		copy(dst[off:], src[idx+what.Len():])
	})
}

// ReplaceAll returns a copy of s with every non-overlapping occurrence of
// what replaced by to. If what is empty the copy is unmodified.
func (f *Factory) ReplaceAll(s, what, to String) (String, error) {
	count := Count(s, what)
	if count == 0 {
		return f.Clone(s)
	}

	n, err := replacedLength("ReplaceAll", s, what, to, count)
	if err != nil {
		return f.fail("ReplaceAll", err)
	}
	src, pat, rep := s.content(), what.content(), to.content()
	return f.build("ReplaceAll", n, func(dst []byte) {
		off := 0
		for {
			i := bytes.Index(src, pat)
			if i < 0 {
				break
			}
			off += copy(dst[off:], src[:i])
			off += copy(dst[off:], rep)
			src = src[i+len(pat):]
		}
		copy(dst[off:], src)
	})
}

// ReplaceFirst replaces the first occurrence using the default factory.
func ReplaceFirst(s, what, to String) (String, error) {
	return defaultFactory.ReplaceFirst(s, what, to)
}

// ReplaceAll replaces every occurrence using the default factory.
func ReplaceAll(s, what, to String) (String, error) {
	return defaultFactory.ReplaceAll(s, what, to)
}
