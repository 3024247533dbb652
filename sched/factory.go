package sched

import "fmt"

// NewProcesses builds one record per index of the parallel arrays, in input
// order. Arrays of different lengths are rejected with a LengthMismatchError;
// empty arrays give an empty slice.
func NewProcesses(numbers, arrivals, bursts []int) ([]Process, error) {
	if err := checkLengths(len(numbers), map[string]int{
		"arrivals": len(arrivals),
		"bursts":   len(bursts),
	}); err != nil {
		return nil, err
	}
	if err := checkValues(numbers, arrivals, bursts); err != nil {
		return nil, err
	}

	procs := make([]Process, len(numbers))
	for i := range numbers {
		procs[i] = newProcess(numbers[i], arrivals[i], bursts[i])
	}
	return procs, nil
}

// NewProcessesWithPriority is NewProcesses for the priority policies.
func NewProcessesWithPriority(numbers, arrivals, bursts, priorities []int) ([]Process, error) {
	if err := checkLengths(len(numbers), map[string]int{
		"arrivals":   len(arrivals),
		"bursts":     len(bursts),
		"priorities": len(priorities),
	}); err != nil {
		return nil, err
	}
	if err := checkValues(numbers, arrivals, bursts); err != nil {
		return nil, err
	}

	procs := make([]Process, len(numbers))
	for i := range numbers {
		procs[i] = newProcess(numbers[i], arrivals[i], bursts[i])
		procs[i].Priority = priorities[i]
		procs[i].HasPriority = true
	}
	return procs, nil
}

// checkLengths compares every array against the process-number array. Fields
// are checked in a fixed order so the reported field is deterministic.
func checkLengths(want int, got map[string]int) error {
	for _, field := range []string{"arrivals", "bursts", "priorities"} {
		n, ok := got[field]
		if ok && n != want {
			return lengthMismatch(field, want, n)
		}
	}
	return nil
}

func checkValues(numbers, arrivals, bursts []int) error {
	seen := make(map[int]int, len(numbers))
	for i, n := range numbers {
		if j, dup := seen[n]; dup {
			return invalidElement("numbers", i, fmt.Sprintf("duplicate of numbers[%d]", j))
		}
		seen[n] = i
	}
	for i, a := range arrivals {
		if a < 0 {
			return invalidElement("arrivals", i, "arrival time must be >= 0")
		}
	}
	for i, b := range bursts {
		if b <= 0 {
			return invalidElement("bursts", i, "burst time must be > 0")
		}
	}
	return nil
}
