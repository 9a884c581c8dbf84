// File: string_test.go
// Title: String Value Tests
// Description: Tests for accessors, the zero value and the terminator.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial tests
// - 2026-10-19 v0.2.0: CString and zero value coverage

package imstr

import (
	"bytes"
	"fmt"
	"testing"
)

func TestZeroValue(t *testing.T) {
	var s String

	if s.Len() != 0 || !s.IsEmpty() {
		t.Errorf("zero value Len() = %d, IsEmpty() = %v", s.Len(), s.IsEmpty())
	}
	if s.String() != "" {
		t.Errorf("zero value String() = %q", s.String())
	}
	if !bytes.Equal(s.CString(), []byte{0}) {
		t.Errorf("zero value CString() = %v", s.CString())
	}
	if !Equals(s, Literal("")) {
		t.Error("zero value should equal an allocated empty string")
	}
}

func TestAccessors(t *testing.T) {
	s := Literal("My dynamic string")

	if s.Len() != 17 {
		t.Errorf("Len() = %d, want 17", s.Len())
	}
	if s.At(3) != 'd' {
		t.Errorf("At(3) = %q, want 'd'", s.At(3))
	}
	if got := fmt.Sprintf("%s|%q|%v", s, s, s); got != `My dynamic string|"My dynamic string"|My dynamic string` {
		t.Errorf("formatting = %s", got)
	}

	c := s.CString()
	if len(c) != s.Len()+1 || c[len(c)-1] != 0 || bytes.IndexByte(c, 0) != s.Len() {
		t.Errorf("CString() = %v", c)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Literal("abc")

	b := s.Bytes()
	b[0] = 'X'
	c := s.CString()
	c[1] = 'Y'

	if s.String() != "abc" {
		t.Errorf("mutating copies changed the value: %q", s.String())
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	s := Literal("abc")

	for _, i := range []int{-1, 3, 4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d) should panic", i)
				}
			}()
			s.At(i)
		}()
	}
}

func TestTerminatorNotPartOfValue(t *testing.T) {
	s := Literal("abc")
	if len(s.data) != 4 || s.data[3] != 0 {
		t.Fatalf("buffer = %v, want content plus NUL", s.data)
	}
	if bytes.IndexByte(s.Bytes(), 0) != -1 {
		t.Error("Bytes() should not expose the terminator")
	}
}
