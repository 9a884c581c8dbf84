// File: string.go
// Title: Immutable String Value
// Description: Defines the String type and its read-only accessors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: CString, zero value as empty string

package imstr

// String is an immutable byte string with an explicit length.
//
// data holds the content followed by one NUL byte. The zero value has no
// buffer and is the empty string.
type String struct {
	data []byte
}

// Len returns the number of bytes in s, excluding the terminator.
func (s String) Len() int {
	if len(s.data) == 0 {
		return 0
	}
	return len(s.data) - 1
}

// IsEmpty reports whether s has no content.
func (s String) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the byte at index i. It panics if i is out of range.
func (s String) At(i int) byte {
	return s.content()[i]
}

// Bytes returns a copy of the content without the terminator.
func (s String) Bytes() []byte {
	out := make([]byte, s.Len())
	copy(out, s.content())
	return out
}

// CString returns a copy of the content followed by a single NUL byte.
func (s String) CString() []byte {
	out := make([]byte, s.Len()+1)
	copy(out, s.content())
	return out
}

// String returns the content as a Go string.
func (s String) String() string {
	return string(s.content())
}

// content is the read-only view used by operations; it must never escape.
func (s String) content() []byte {
	if len(s.data) == 0 {
		return nil
	}
	return s.data[:len(s.data)-1]
}
