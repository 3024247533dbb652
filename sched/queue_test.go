package sched

import (
	"reflect"
	"testing"
)

func refs(procs []Process) []*Process {
	out := make([]*Process, len(procs))
	for i := range procs {
		out[i] = &procs[i]
	}
	return out
}

func TestPool_Admit(t *testing.T) {
	procs, _ := NewProcesses([]int{1, 2, 3, 4}, []int{3, 0, 3, 5}, []int{1, 1, 1, 1})
	pool := NewPool(refs(procs))
	q := &ReadyQueue{}

	if n := pool.Admit(q, 0); n != 1 {
		t.Errorf("Admit(0) = %d, want 1", n)
	}
	if n := pool.Admit(q, 3); n != 2 {
		t.Errorf("Admit(3) = %d, want 2", n)
	}
	if got, want := q.Numbers(), []int{2, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("queue = %v, want %v", got, want)
	}
	if pool.Len() != 1 {
		t.Errorf("pool.Len() = %d, want 1", pool.Len())
	}
}

func TestPool_AdmitSameTimeTwice(t *testing.T) {
	procs, _ := NewProcesses([]int{1, 2}, []int{0, 2}, []int{1, 1})
	pool := NewPool(refs(procs))
	q := &ReadyQueue{}

	pool.Admit(q, 2)
	if n := pool.Admit(q, 2); n != 0 {
		t.Errorf("second Admit(2) = %d, want 0", n)
	}
	if got, want := q.Numbers(), []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("queue = %v, want %v (no duplicates)", got, want)
	}
}

func TestPool_NextArrival(t *testing.T) {
	procs, _ := NewProcesses([]int{1, 2, 3}, []int{9, 4, 6}, []int{1, 1, 1})
	pool := NewPool(refs(procs))

	next, ok := pool.NextArrival()
	if !ok || next != 4 {
		t.Errorf("NextArrival() = %d, %v; want 4, true", next, ok)
	}

	pool.Admit(&ReadyQueue{}, 10)
	if _, ok := pool.NextArrival(); ok {
		t.Error("NextArrival() on empty pool reported ok")
	}
}

func TestReadyQueue_Remove(t *testing.T) {
	procs, _ := NewProcesses([]int{1, 2, 3}, []int{0, 0, 0}, []int{1, 1, 1})
	q := &ReadyQueue{}
	for _, p := range refs(procs) {
		q.Push(p)
	}

	if p := q.Remove(1); p.Number != 2 {
		t.Errorf("Remove(1) = P%d, want P2", p.Number)
	}
	if got, want := q.Numbers(), []int{1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("queue = %v, want %v", got, want)
	}
}
