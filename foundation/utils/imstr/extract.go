// File: extract.go
// Title: Substring Extraction
// Description: Slice with clamped index normalization, and whitespace trimming.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Start beyond the end clamps instead of failing

package imstr

// normalizeRange maps start and n onto [0, length]. Negative start counts
// from the end; negative n, or n past the end, means the rest.
func normalizeRange(length, start, n int) (int, int) {
	if start < 0 {
		start += length
		if start < 0 {
			start = 0
		}
	}
	if start > length {
		start = length
	}
	if n < 0 || n > length-start {
		n = length - start
	}
	return start, n
}

// Slice returns n bytes of s beginning at start. Out-of-range arguments are
// clamped and never cause an error; only allocation can fail.
func (f *Factory) Slice(s String, start, n int) (String, error) {
	start, n = normalizeRange(s.Len(), start, n)
	src := s.content()
	return f.build("Slice", n, func(dst []byte) {
		copy(dst, src[start:start+n])
	})
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Trim returns s without leading and trailing ASCII whitespace.
func (f *Factory) Trim(s String) (String, error) {
	src := s.content()
	lo, hi := 0, len(src)
	for lo < hi && isSpace(src[lo]) {
		lo++
	}
	for hi > lo && isSpace(src[hi-1]) {
		hi--
	}
	return f.build("Trim", hi-lo, func(dst []byte) {
		copy(dst, src[lo:hi])
	})
}

// Slice extracts a substring using the default factory.
func Slice(s String, start, n int) (String, error) {
	return defaultFactory.Slice(s, start, n)
}

// Trim strips surrounding whitespace using the default factory.
func Trim(s String) (String, error) {
	return defaultFactory.Trim(s)
}
