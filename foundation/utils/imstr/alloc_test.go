// File: alloc_test.go
// Title: Allocator Tests
// Description: Tests for heap and budget-limited allocation and for the
//              errors reported when allocation fails.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package imstr

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	mdwerror "github.com/msto63/imstr/foundation/core/error"
	mdwerrors "github.com/msto63/imstr/foundation/core/errors"
	mdwlog "github.com/msto63/imstr/foundation/core/log"
)

func TestHeapAllocator(t *testing.T) {
	var a HeapAllocator

	buf, err := a.Allocate(16)
	if err != nil || len(buf) != 16 {
		t.Fatalf("Allocate(16) = %d bytes, %v", len(buf), err)
	}
	if buf, err := a.Allocate(0); err != nil || len(buf) != 0 {
		t.Errorf("Allocate(0) = %v, %v", buf, err)
	}

	oversized := MaxAllocation
	oversized++
	for _, size := range []int{-1, oversized} {
		if _, err := a.Allocate(size); !errors.Is(err, ErrAllocation) {
			t.Errorf("Allocate(%d) error = %v, want ErrAllocation", size, err)
		}
	}
}

func TestLimitedAllocator(t *testing.T) {
	a := NewLimitedAllocator(nil, 8)

	if _, err := a.Allocate(6); err != nil {
		t.Fatalf("Allocate(6) error = %v", err)
	}
	if a.Used() != 6 || a.Remaining() != 2 || a.Limit() != 8 {
		t.Errorf("Used() = %d, Remaining() = %d, Limit() = %d", a.Used(), a.Remaining(), a.Limit())
	}

	_, err := a.Allocate(3)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("Allocate(3) error = %v, want ErrAllocation", err)
	}
	if a.Used() != 6 {
		t.Errorf("failed allocation changed Used() to %d", a.Used())
	}
	if v, _ := err.(*mdwerror.Error).Detail("used"); v != int64(6) {
		t.Errorf("used detail = %v", v)
	}

	if _, err := a.Allocate(2); err != nil {
		t.Errorf("Allocate(2) error = %v", err)
	}
	if _, err := a.Allocate(-1); err == nil {
		t.Error("Allocate(-1) should fail")
	}

	a.Reset()
	if a.Used() != 0 {
		t.Errorf("Reset() left Used() = %d", a.Used())
	}
}

type failingAllocator struct{}

func (failingAllocator) Allocate(size int) ([]byte, error) {
	return nil, mdwerrors.AllocationFailed(mdwerrors.ModuleImstr, "Allocate", size, 0, ErrAllocation)
}

type shortAllocator struct{}

func (shortAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size/2), nil
}

func TestLimitedAllocatorReleasesOnBaseFailure(t *testing.T) {
	a := NewLimitedAllocator(failingAllocator{}, 100)
	if _, err := a.Allocate(10); err == nil {
		t.Fatal("expected failure from base allocator")
	}
	if a.Used() != 0 {
		t.Errorf("Used() = %d after base failure, want 0", a.Used())
	}
}

// resettingAllocator resets the budget it sits under before failing
type resettingAllocator struct {
	limited *LimitedAllocator
}

func (r *resettingAllocator) Allocate(size int) ([]byte, error) {
	r.limited.Reset()
	return failingAllocator{}.Allocate(size)
}

func TestLimitedAllocatorResetDuringFailedAllocation(t *testing.T) {
	base := &resettingAllocator{}
	a := NewLimitedAllocator(base, 10)
	base.limited = a

	if _, err := a.Allocate(4); !errors.Is(err, ErrAllocation) {
		t.Fatalf("Allocate(4) error = %v, want ErrAllocation", err)
	}
	if a.Used() != 0 || a.Remaining() != a.Limit() {
		t.Errorf("Used() = %d, Remaining() = %d, Limit() = %d", a.Used(), a.Remaining(), a.Limit())
	}
}

func TestLimitedAllocatorConcurrent(t *testing.T) {
	a := NewLimitedAllocator(nil, 1000)

	var (
		wg       sync.WaitGroup
		failures atomic.Int32
	)
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				if _, err := a.Allocate(10); err != nil {
					failures.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	if failures.Load() != 0 || a.Used() != 1000 {
		t.Errorf("failures = %d, Used() = %d", failures.Load(), a.Used())
	}
	if _, err := a.Allocate(1); err == nil {
		t.Error("exhausted budget should fail")
	}
}

func TestFactoryAllocationFailure(t *testing.T) {
	budget := NewLimitedAllocator(nil, 8)
	f := NewFactory(budget)

	hello, err := f.FromString("hello")
	if err != nil {
		t.Fatal(err)
	}
	if budget.Used() != 6 {
		t.Errorf("FromString(\"hello\") used %d bytes, want 6", budget.Used())
	}

	s, err := f.Concat(hello, hello)
	if err == nil {
		t.Fatal("Concat() should exceed the budget")
	}
	if !s.IsEmpty() {
		t.Errorf("failed Concat() returned %q", s)
	}
	if budget.Used() != 6 {
		t.Errorf("failed Concat() changed Used() to %d", budget.Used())
	}
	if hello.String() != "hello" {
		t.Errorf("input modified: %q", hello)
	}

	if !errors.Is(err, ErrAllocation) {
		t.Errorf("error should match ErrAllocation: %v", err)
	}
	if mdwerror.GetCode(err) != mdwerror.CodeAllocationFailed {
		t.Errorf("code = %v", mdwerror.GetCode(err))
	}
	if mdwerror.GetSeverity(err) != mdwerror.SeverityHigh {
		t.Errorf("severity = %v", mdwerror.GetSeverity(err))
	}
	if !mdwerrors.IsModuleOperation(err, mdwerrors.ModuleImstr, "Concat") {
		t.Errorf("details = %v", mdwerrors.ExtractDetails(err))
	}
	if requested := mdwerrors.ExtractDetails(err)["requested"]; requested != 11 {
		t.Errorf("requested = %v, want 11", requested)
	}

	if _, err := f.FromString("a"); err != nil {
		t.Errorf("FromString(\"a\") should fit the remaining budget: %v", err)
	}
	if _, err := f.FromString(""); !errors.Is(err, ErrAllocation) {
		t.Errorf("empty string still needs a terminator byte: %v", err)
	}
}

func TestFactoryRejectsShortBuffers(t *testing.T) {
	f := NewFactory(shortAllocator{})
	if _, err := f.FromString("abcdef"); !errors.Is(err, ErrAllocation) {
		t.Errorf("short buffer error = %v", err)
	}
}

func TestFactoryLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelInfo, Format: mdwlog.FormatJSON, Output: &buf})

	f := NewFactory(failingAllocator{}, WithLogger(logger))
	if _, err := f.Trim(Literal("  x  ")); err == nil {
		t.Fatal("Trim() should fail")
	}

	out := buf.String()
	for _, want := range []string{`"level":"error"`, `"error_code":"ALLOCATION_FAILED"`, `"error_operation":"imstr.Trim"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestEveryOperationReportsAllocationFailure(t *testing.T) {
	f := NewFactory(failingAllocator{})
	s := Literal("a, b")
	sep := Literal(", ")

	ops := map[string]func() (String, error){
		"FromBytes":          func() (String, error) { return f.FromBytes([]byte("ab"), 2) },
		"FromString":         func() (String, error) { return f.FromString("ab") },
		"FromNullTerminated": func() (String, error) { return f.FromNullTerminated([]byte("ab\x00")) },
		"FromFormat":         func() (String, error) { return f.FromFormat(10, "%d", 7) },
		"Clone":              func() (String, error) { return f.Clone(s) },
		"Concat":             func() (String, error) { return f.Concat(s, s) },
		"ConcatMany":         func() (String, error) { return f.ConcatMany([]String{s, s}) },
		"JoinMany":           func() (String, error) { return f.JoinMany(sep, []String{s, s}) },
		"Slice":              func() (String, error) { return f.Slice(s, 0, 1) },
		"Trim":               func() (String, error) { return f.Trim(s) },
		"ReplaceFirst":       func() (String, error) { return f.ReplaceFirst(s, sep, s) },
		"ReplaceAll":         func() (String, error) { return f.ReplaceAll(s, sep, s) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			got, err := op()
			if !errors.Is(err, ErrAllocation) {
				t.Errorf("error = %v, want ErrAllocation", err)
			}
			if !got.IsEmpty() {
				t.Errorf("failed operation returned %q", got)
			}
		})
	}
}
