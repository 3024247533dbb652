package sched

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Input is the already-parsed description of one simulation: parallel arrays
// plus the policy-specific extras.
type Input struct {
	Policy     Policy
	Numbers    []int
	Arrivals   []int
	Bursts     []int
	Priorities []int // NPP and PP
	Quantum    int   // RR
}

// Processes builds the records for policy p, using the priority array only
// when p needs it.
func (in Input) Processes(p Policy) ([]Process, error) {
	if p.UsesPriority() {
		return NewProcessesWithPriority(in.Numbers, in.Arrivals, in.Bursts, in.Priorities)
	}
	return NewProcesses(in.Numbers, in.Arrivals, in.Bursts)
}

// Applicable returns the policies the input carries enough data for, in
// the order of Policies.
func (in Input) Applicable() []Policy {
	var out []Policy
	for _, p := range Policies {
		if p.UsesQuantum() && in.Quantum < 1 {
			continue
		}
		if p.UsesPriority() && len(in.Priorities) == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Run validates the input and simulates its policy. Validation errors abort
// the run before any simulation work.
func Run(in Input) (Result, error) {
	return runPolicy(in, in.Policy)
}

func runPolicy(in Input, p Policy) (Result, error) {
	s, err := NewScheduler(p, in.Quantum)
	if err != nil {
		return Result{}, err
	}
	procs, err := in.Processes(p)
	if err != nil {
		return Result{}, err
	}
	return s.Schedule(procs), nil
}

// Compare simulates the same input under several policies. Each run gets
// its own records, so runs proceed in parallel on up to workers goroutines
// (workers <= 0 means no limit). Results come back in the order of policies.
func Compare(ctx context.Context, in Input, policies []Policy, workers int) ([]Result, error) {
	results := make([]Result, len(policies))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, p := range policies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runPolicy(in, p)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
