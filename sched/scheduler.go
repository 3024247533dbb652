package sched

import "fmt"

// Result contains the results of a scheduling algorithm
type Result struct {
	Policy          Policy
	Algorithm       string
	Quantum         int       // round robin only
	Processes       []Process // input order, metrics populated
	Trace           Trace
	TotalTime       int
	ContextSwitches int
}

// Scheduler interface for different scheduling algorithms. Schedule works
// on its own copy of the records, so one slice can feed several schedulers,
// also concurrently.
type Scheduler interface {
	Schedule(processes []Process) Result
	Name() string
	Policy() Policy
}

// schedule copies the records, runs the strategy and collects the copies
// back in input order.
func schedule(s Scheduler, strat strategy, processes []Process) Result {
	procs := make([]Process, len(processes))
	copy(procs, processes)

	refs := make([]*Process, len(procs))
	for i := range procs {
		procs[i].reset()
		refs[i] = &procs[i]
	}

	trace, total := strat.simulate(refs)

	return Result{
		Policy:          s.Policy(),
		Algorithm:       s.Name(),
		Processes:       procs,
		Trace:           trace,
		TotalTime:       total,
		ContextSwitches: trace.ContextSwitches(),
	}
}

// FCFSScheduler implements First Come First Serve scheduling
type FCFSScheduler struct{}

func (f *FCFSScheduler) Name() string {
	return "First Come First Serve (FCFS)"
}

func (f *FCFSScheduler) Policy() Policy {
	return FCFS
}

// Schedule runs processes in admission order, each to completion.
func (f *FCFSScheduler) Schedule(processes []Process) Result {
	return schedule(f, strategy{next: fifo, run: toCompletion}, processes)
}

// SRTNScheduler implements Shortest Remaining Time Next scheduling
type SRTNScheduler struct{}

func (s *SRTNScheduler) Name() string {
	return "Shortest Remaining Time Next (SRTN)"
}

func (s *SRTNScheduler) Policy() Policy {
	return SRTN
}

// Schedule reselects at every arrival. The queue is scanned from the back,
// so the earliest-queued process wins a tie on remaining time.
func (s *SRTNScheduler) Schedule(processes []Process) Result {
	return schedule(s, strategy{
		next: scanMin(remainingKey, true),
		run:  untilArrival,
	}, processes)
}

// RoundRobinScheduler implements Round Robin scheduling
type RoundRobinScheduler struct {
	TimeQuantum int
}

func (r *RoundRobinScheduler) Name() string {
	return fmt.Sprintf("Round Robin (Quantum=%d)", r.TimeQuantum)
}

func (r *RoundRobinScheduler) Policy() Policy {
	return RR
}

// Schedule dispatches the queue head for at most one quantum. A process with
// time left goes behind the processes that arrived during its slice; one
// that finishes on the quantum boundary leaves the queue.
func (r *RoundRobinScheduler) Schedule(processes []Process) Result {
	res := schedule(r, strategy{
		next:        fifo,
		run:         timeSlice(r.TimeQuantum),
		rotate:      true,
		recordStart: true,
	}, processes)
	res.Quantum = r.TimeQuantum
	return res
}

// PriorityScheduler implements Priority scheduling (non-preemptive)
type PriorityScheduler struct{}

func (p *PriorityScheduler) Name() string {
	return "Priority Scheduling (Non-Preemptive)"
}

func (p *PriorityScheduler) Policy() Policy {
	return NPP
}

// Schedule runs the lowest priority value to completion. The queue is
// scanned from the front, so the latest-queued process wins a tie.
func (p *PriorityScheduler) Schedule(processes []Process) Result {
	return schedule(p, strategy{
		next: scanMin(priorityKey, false),
		run:  toCompletion,
	}, processes)
}

// PreemptivePriorityScheduler implements Priority scheduling (preemptive)
type PreemptivePriorityScheduler struct{}

func (p *PreemptivePriorityScheduler) Name() string {
	return "Priority Scheduling (Preemptive)"
}

func (p *PreemptivePriorityScheduler) Policy() Policy {
	return PP
}

// Schedule is PriorityScheduler with a reselection at every arrival.
func (p *PreemptivePriorityScheduler) Schedule(processes []Process) Result {
	return schedule(p, strategy{
		next: scanMin(priorityKey, false),
		run:  untilArrival,
	}, processes)
}

// SJFScheduler implements Shortest Job First scheduling
type SJFScheduler struct{}

func (s *SJFScheduler) Name() string {
	return "Shortest Job First (SJF)"
}

func (s *SJFScheduler) Policy() Policy {
	return SJF
}

// Schedule runs the shortest total burst to completion. The queue is scanned
// from the back, so the earliest-queued process wins a tie.
func (s *SJFScheduler) Schedule(processes []Process) Result {
	return schedule(s, strategy{
		next: scanMin(burstKey, true),
		run:  toCompletion,
	}, processes)
}
