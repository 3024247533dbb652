package sched

// selector picks the index of the next process to dispatch. It is only
// called with a non-empty queue.
type selector func(q *ReadyQueue) int

// slicer decides how long the chosen process runs from now on.
type slicer func(p *Process, now int, pool *Pool) int

// strategy is one policy expressed as parameters of the shared loop.
type strategy struct {
	next selector
	run  slicer
	// rotate sends a preempted process to the tail of the queue after the
	// arrivals of its slice were admitted.
	rotate bool
	// recordStart stores the start time on first dispatch.
	recordStart bool
}

// fifo always dispatches the head of the queue.
func fifo(*ReadyQueue) int {
	return 0
}

// scanMin scans the queue for the smallest key. A key equal to the best so
// far replaces it, so among equal keys the one scanned last wins: the front
// of the queue when scanning backward, the back when scanning forward.
func scanMin(key func(*Process) int, backward bool) selector {
	return func(q *ReadyQueue) int {
		n := q.Len()
		best := 0
		bestKey := key(q.At(0))
		consider := func(i int) {
			if k := key(q.At(i)); k <= bestKey {
				best, bestKey = i, k
			}
		}
		if backward {
			for i := n - 1; i >= 0; i-- {
				consider(i)
			}
		} else {
			for i := 0; i < n; i++ {
				consider(i)
			}
		}
		return best
	}
}

func remainingKey(p *Process) int { return p.RemainingTime }
func burstKey(p *Process) int     { return p.BurstTime }
func priorityKey(p *Process) int  { return p.Priority }

// toCompletion runs the process for its whole remaining time.
func toCompletion(p *Process, _ int, _ *Pool) int {
	return p.RemainingTime
}

// untilArrival runs the process until it finishes or the next process
// arrives, whichever is first.
func untilArrival(p *Process, now int, pool *Pool) int {
	if next, ok := pool.NextArrival(); ok && next-now < p.RemainingTime {
		return next - now
	}
	return p.RemainingTime
}

// timeSlice runs the process for at most one quantum.
func timeSlice(quantum int) slicer {
	if quantum < 1 {
		quantum = 1
	}
	return func(p *Process, _ int, _ *Pool) int {
		return min(p.RemainingTime, quantum)
	}
}

// simulate runs the loop over procs, mutating them in place, and returns the
// trace and the final clock value.
func (s strategy) simulate(procs []*Process) (Trace, int) {
	pool := NewPool(procs)
	ready := &ReadyQueue{}
	rec := NewRecorder()

	now := 0
	pool.Admit(ready, now)

	for ready.Len() > 0 || pool.Len() > 0 {
		if ready.Len() == 0 {
			// Nothing runnable yet, tick until the next arrival.
			now++
			rec.Idle(now)
			pool.Admit(ready, now)
			continue
		}

		i := s.next(ready)
		p := ready.At(i)

		if s.recordStart && p.RemainingTime == p.BurstTime {
			p.StartTime = now
		}

		n := s.run(p, now, pool)
		now += n
		p.RemainingTime -= n

		if p.RemainingTime == 0 {
			p.complete(now)
			ready.Remove(i)
		}

		pool.Admit(ready, now)

		if s.rotate && p.RemainingTime > 0 {
			ready.Remove(i)
			ready.Push(p)
		}

		rec.Dispatch(now, p.Number)
	}

	return rec.Trace(), now
}
