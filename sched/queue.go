package sched

// ReadyQueue holds the arrived, unfinished processes in admission order.
// The scan policies read it as an unordered pool; round robin uses it as a
// FIFO.
type ReadyQueue struct {
	items []*Process
}

// Len returns the number of ready processes.
func (q *ReadyQueue) Len() int {
	return len(q.items)
}

// At returns the process at position i.
func (q *ReadyQueue) At(i int) *Process {
	return q.items[i]
}

// Push appends p at the tail.
func (q *ReadyQueue) Push(p *Process) {
	q.items = append(q.items, p)
}

// Remove deletes and returns the process at position i, keeping the order of
// the others.
func (q *ReadyQueue) Remove(i int) *Process {
	p := q.items[i]
	q.items = append(q.items[:i], q.items[i+1:]...)
	return p
}

// Numbers lists the process numbers in queue order.
func (q *ReadyQueue) Numbers() []int {
	out := make([]int, len(q.items))
	for i, p := range q.items {
		out[i] = p.Number
	}
	return out
}

// Pool holds the processes that have not arrived yet, in input order.
type Pool struct {
	items []*Process
}

// NewPool returns a pool holding procs. The slice is copied.
func NewPool(procs []*Process) *Pool {
	items := make([]*Process, len(procs))
	copy(items, procs)
	return &Pool{items: items}
}

// Len returns the number of processes that have not arrived.
func (p *Pool) Len() int {
	return len(p.items)
}

// Admit moves every process with arrival time <= now into q, preserving the
// pool order among them, and returns how many moved. Admitted processes
// leave the pool, so repeating a call at the same time admits nothing.
func (p *Pool) Admit(q *ReadyQueue, now int) int {
	kept := p.items[:0]
	admitted := 0
	for _, proc := range p.items {
		if proc.ArrivalTime <= now {
			q.Push(proc)
			admitted++
			continue
		}
		kept = append(kept, proc)
	}
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = nil
	}
	p.items = kept
	return admitted
}

// NextArrival returns the earliest arrival time still in the pool.
func (p *Pool) NextArrival() (int, bool) {
	if len(p.items) == 0 {
		return 0, false
	}
	next := p.items[0].ArrivalTime
	for _, proc := range p.items[1:] {
		if proc.ArrivalTime < next {
			next = proc.ArrivalTime
		}
	}
	return next, true
}
