package sched

import (
	"fmt"
	"strings"
)

// Policy names a scheduling algorithm as it appears in input files.
type Policy string

const (
	FCFS Policy = "FCFS"
	SRTN Policy = "SRTN"
	RR   Policy = "RR"
	NPP  Policy = "NPP"
	PP   Policy = "PP"
	SJF  Policy = "SJF"
)

// Policies lists every supported policy in a stable order.
var Policies = []Policy{FCFS, SRTN, RR, NPP, PP, SJF}

// ParsePolicy resolves a policy name case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, p := range Policies {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// UsesPriority reports whether the policy needs a priority array.
func (p Policy) UsesPriority() bool {
	return p == NPP || p == PP
}

// UsesQuantum reports whether the policy needs a time quantum.
func (p Policy) UsesQuantum() bool {
	return p == RR
}

// Preemptive reports whether a running process can be interrupted.
func (p Policy) Preemptive() bool {
	return p == SRTN || p == RR || p == PP
}

// NewScheduler returns the scheduler for p. The quantum is only used by
// round robin and must be positive there.
func NewScheduler(p Policy, quantum int) (Scheduler, error) {
	switch p {
	case FCFS:
		return &FCFSScheduler{}, nil
	case SRTN:
		return &SRTNScheduler{}, nil
	case RR:
		if quantum < 1 {
			return nil, &InputShapeError{Field: "quantum", Index: -1, Reason: "quantum must be > 0"}
		}
		return &RoundRobinScheduler{TimeQuantum: quantum}, nil
	case NPP:
		return &PriorityScheduler{}, nil
	case PP:
		return &PreemptivePriorityScheduler{}, nil
	case SJF:
		return &SJFScheduler{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(p))
	}
}
