package sched

import "fmt"

// Process represents a process in the scheduling simulation
type Process struct {
	Number         int  // Process number, assigned by the caller
	ArrivalTime    int  // When process arrives in ready queue
	BurstTime      int  // Total CPU time required
	Priority       int  // Priority level (lower number = higher priority)
	HasPriority    bool // Priority is only set for the priority policies
	RemainingTime  int  // Burst time still owed to the process
	Completed      bool // Set once RemainingTime reaches 0
	ExitTime       int  // When process completes execution
	TurnaroundTime int  // Total time from arrival to completion
	WaitingTime    int  // Total time spent waiting in ready queue
	StartTime      int  // First dispatch, round robin only (-1 if not recorded)
	ResponseTime   int  // Start minus arrival, round robin only (-1 if not recorded)
}

func newProcess(number, arrival, burst int) Process {
	return Process{
		Number:        number,
		ArrivalTime:   arrival,
		BurstTime:     burst,
		RemainingTime: burst,
		StartTime:     -1,
		ResponseTime:  -1,
	}
}

// Label is the trace label of the process, e.g. "P3".
func (p *Process) Label() string {
	return fmt.Sprintf("P%d", p.Number)
}

// reset restores the simulation state so the record can be run again.
func (p *Process) reset() {
	p.RemainingTime = p.BurstTime
	p.Completed = false
	p.ExitTime = 0
	p.TurnaroundTime = 0
	p.WaitingTime = 0
	p.StartTime = -1
	p.ResponseTime = -1
}

// complete stores the exit metrics. Response time is only derived when a
// start time was recorded.
func (p *Process) complete(now int) {
	p.Completed = true
	p.ExitTime = now
	p.TurnaroundTime = p.ExitTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	if p.StartTime >= 0 {
		p.ResponseTime = p.StartTime - p.ArrivalTime
	}
}
