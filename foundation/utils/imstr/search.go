// File: search.go
// Title: Search and Comparison
// Description: Non-allocating queries over Strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Equals compares full length, HasPrefix added

package imstr

import "bytes"

// Equals reports whether a and b have the same length and content.
func Equals(a, b String) bool {
	return bytes.Equal(a.content(), b.content())
}

// HasPrefix reports whether s begins with prefix, that is, whether s and
// prefix agree over prefix's length. An empty prefix always matches.
func HasPrefix(s, prefix String) bool {
	return bytes.HasPrefix(s.content(), prefix.content())
}

// IndexOf returns the index of the first occurrence of sub in s, or -1 if
// sub is empty or absent.
func IndexOf(s, sub String) int {
	if sub.IsEmpty() {
		return -1
	}
	return bytes.Index(s.content(), sub.content())
}

// LastIndexOf returns the index of the last occurrence of sub in s, or -1 if
// sub is empty or absent.
func LastIndexOf(s, sub String) int {
	if sub.IsEmpty() {
		return -1
	}
	return bytes.LastIndex(s.content(), sub.content())
}

// Contains reports whether sub occurs in s. It is false for an empty sub.
func Contains(s, sub String) bool {
	return IndexOf(s, sub) >= 0
}

// Count returns the number of non-overlapping occurrences of sub in s,
// scanning left to right. It is 0 for an empty sub.
func Count(s, sub String) int {
	if sub.IsEmpty() {
		return 0
	}

	src, pat := s.content(), sub.content()
	count := 0
	for {
		i := bytes.Index(src, pat)
		if i < 0 {
			return count
		}
		count++
		src = src[i+len(pat):]
	}
}
