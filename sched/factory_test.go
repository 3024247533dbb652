package sched

import (
	"errors"
	"testing"
)

func TestNewProcesses(t *testing.T) {
	procs, err := NewProcesses([]int{7, 2, 9}, []int{0, 1, 2}, []int{5, 3, 8})
	if err != nil {
		t.Fatalf("NewProcesses() error = %v", err)
	}
	if len(procs) != 3 {
		t.Fatalf("len = %d, want 3", len(procs))
	}

	wantNumbers := []int{7, 2, 9}
	for i, p := range procs {
		if p.Number != wantNumbers[i] {
			t.Errorf("procs[%d].Number = %d, want %d", i, p.Number, wantNumbers[i])
		}
		if p.RemainingTime != p.BurstTime {
			t.Errorf("procs[%d].RemainingTime = %d, want burst %d", i, p.RemainingTime, p.BurstTime)
		}
		if p.StartTime != -1 || p.ResponseTime != -1 {
			t.Errorf("procs[%d] start/response = %d/%d, want -1/-1", i, p.StartTime, p.ResponseTime)
		}
		if p.HasPriority {
			t.Errorf("procs[%d].HasPriority = true", i)
		}
	}
}

func TestNewProcesses_LengthMismatch(t *testing.T) {
	procs, err := NewProcesses([]int{1, 2, 3}, []int{0, 1}, []int{5, 3, 8})
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	if procs != nil {
		t.Errorf("procs = %v, want nil", procs)
	}
	if !errors.Is(err, ErrInputShape) {
		t.Errorf("errors.Is(err, ErrInputShape) = false for %v", err)
	}

	var shapeErr *LengthMismatchError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("error %T is not a LengthMismatchError", err)
	}
	if shapeErr.Field != "arrivals" || shapeErr.Want != 3 || shapeErr.Got != 2 {
		t.Errorf("got field=%s want=%d got=%d", shapeErr.Field, shapeErr.Want, shapeErr.Got)
	}
	if !shapeErr.IsLengthMismatch() {
		t.Error("IsLengthMismatch() = false")
	}
}

func TestNewProcessesWithPriority(t *testing.T) {
	procs, err := NewProcessesWithPriority([]int{1, 2}, []int{0, 1}, []int{5, 3}, []int{2, 1})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !procs[0].HasPriority || procs[0].Priority != 2 || procs[1].Priority != 1 {
		t.Errorf("priorities not carried over: %+v", procs)
	}

	_, err = NewProcessesWithPriority([]int{1, 2}, []int{0, 1}, []int{5, 3}, []int{2})
	var shapeErr *InputShapeError
	if !errors.As(err, &shapeErr) || shapeErr.Field != "priorities" {
		t.Errorf("error = %v, want priorities length mismatch", err)
	}
}

func TestNewProcesses_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		numbers  []int
		arrivals []int
		bursts   []int
		field    string
	}{
		{"duplicate number", []int{1, 1}, []int{0, 0}, []int{1, 1}, "numbers"},
		{"negative arrival", []int{1, 2}, []int{0, -1}, []int{1, 1}, "arrivals"},
		{"zero burst", []int{1, 2}, []int{0, 1}, []int{1, 0}, "bursts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProcesses(tt.numbers, tt.arrivals, tt.bursts)
			var shapeErr *InputShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("error = %v, want InputShapeError", err)
			}
			if shapeErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", shapeErr.Field, tt.field)
			}
			if shapeErr.IsLengthMismatch() {
				t.Error("IsLengthMismatch() = true for a value error")
			}
			var lenErr *LengthMismatchError
			if errors.As(err, &lenErr) {
				t.Errorf("value error %v matched LengthMismatchError", err)
			}
		})
	}
}

func TestNewProcesses_Empty(t *testing.T) {
	procs, err := NewProcesses(nil, nil, nil)
	if err != nil {
		t.Fatalf("NewProcesses() error = %v", err)
	}
	if procs == nil || len(procs) != 0 {
		t.Errorf("procs = %#v, want empty slice", procs)
	}

	if _, err := NewProcesses(nil, []int{0}, nil); err == nil {
		t.Error("expected length mismatch for empty numbers and one arrival")
	}
}
