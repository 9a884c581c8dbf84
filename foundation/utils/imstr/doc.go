// File: doc.go
// Title: Package Documentation for imstr
// Description: Package imstr provides an immutable, explicitly length-tracked
//              string value built on byte buffers obtained from a pluggable
//              allocator.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with construction and search
// - 2026-10-19 v0.2.0: Allocators, factories and structured allocation errors

// Package imstr provides immutable, length-tracked strings.
//
// Package: imstr
// Title: Immutable Strings for imstr Foundation
// Description: A String pairs a read-only byte buffer with its length. Every
//              operation that produces text returns a freshly allocated,
//              independent String; no storage is ever shared between a result
//              and its inputs, and nothing is mutated after construction.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Overview
//
// A String stores its content in a single buffer of Len()+1 bytes. The last
// byte is a NUL terminator for consumers that expect null-terminated data; it
// is never counted in Len() and never part of the value. CString returns a
// copy that includes it.
//
// Operations are byte oriented. There is no Unicode awareness and no case
// folding: indices and lengths count bytes.
//
// Allocation
//
// Buffers come from an Allocator. HeapAllocator uses the Go heap and rejects
// requests beyond MaxAllocation. LimitedAllocator enforces a total byte budget
// on top of another allocator, which makes allocation failure observable and
// testable. A failed allocation is the only error the package reports; it
// satisfies errors.Is(err, ErrAllocation) and carries the foundation error
// code ALLOCATION_FAILED:
//
//	budget := imstr.NewLimitedAllocator(imstr.HeapAllocator{}, 64)
//	f := imstr.NewFactory(budget)
//	s, err := f.FromString("hello")
//	if errors.Is(err, imstr.ErrAllocation) {
//		// handle exhaustion
//	}
//
// The package-level functions use a default heap-backed Factory.
//
// Index normalization
//
// Slice never fails on out-of-range input. A negative start counts from the
// end and is clamped to 0; a start beyond the end is clamped to Len(). A
// negative length, or one that runs past the end, selects the rest of the
// string.
//
// Search
//
// IndexOf, LastIndexOf, Contains, Count, ReplaceFirst and ReplaceAll scan left
// to right and skip past each match, so occurrences never overlap:
//
//	imstr.Count(imstr.Literal("aaa"), imstr.Literal("aa")) // 1
//	s, _ := imstr.ReplaceAll(imstr.Literal("aaaa"), imstr.Literal("aa"), imstr.Literal("b"))
//	fmt.Println(s) // bb
//
// An empty search string never matches.
//
// Lifetime
//
// Strings are garbage collected values. There is no Release: copying a String
// copies a handle to read-only bytes, so use after release and double release
// cannot happen.
//
// Thread Safety
//
// Strings are immutable and safe for concurrent readers. LimitedAllocator
// accounting is atomic, so one budget can back several goroutines.
package imstr
