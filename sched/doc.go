// Package sched simulates uniprocessor CPU scheduling policies over a fixed
// set of processes. A run returns the processes with their exit, turnaround
// and waiting times filled in, plus the execution trace.
//
// All times are integers and a run is deterministic: ties between candidates
// are broken by queue position (see the individual schedulers).
package sched
