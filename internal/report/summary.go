// Package report renders simulation results as text: a process table, the
// Gantt chart and a comparison across policies.
package report

import (
	"github.com/yinebebt/cpusched/sched"
)

// Summary holds the averaged metrics of one run.
type Summary struct {
	Policy            sched.Policy
	Algorithm         string
	AvgWaitingTime    float64
	AvgTurnaroundTime float64
	AvgResponseTime   float64
	TotalTime         int
	ContextSwitches   int
}

// Summarize averages the per-process metrics of res. Response time comes
// from the record for round robin and from the first dispatch in the trace
// for the other policies.
func Summarize(res sched.Result) Summary {
	s := Summary{
		Policy:          res.Policy,
		Algorithm:       res.Algorithm,
		TotalTime:       res.TotalTime,
		ContextSwitches: res.ContextSwitches,
	}
	if len(res.Processes) == 0 {
		return s
	}

	starts := FirstDispatch(res.Trace)
	var wait, tat, resp int
	for _, p := range res.Processes {
		wait += p.WaitingTime
		tat += p.TurnaroundTime
		if p.ResponseTime >= 0 {
			resp += p.ResponseTime
		} else {
			resp += starts[p.Number] - p.ArrivalTime
		}
	}

	n := float64(len(res.Processes))
	s.AvgWaitingTime = float64(wait) / n
	s.AvgTurnaroundTime = float64(tat) / n
	s.AvgResponseTime = float64(resp) / n
	return s
}

// FirstDispatch maps each process number to the start of its first segment.
func FirstDispatch(tr sched.Trace) map[int]int {
	starts := make(map[int]int)
	for _, seg := range tr.Segments() {
		if seg.Idle {
			continue
		}
		if _, ok := starts[seg.Process]; !ok {
			starts[seg.Process] = seg.Start
		}
	}
	return starts
}

// Metric selects the value Best compares.
type Metric string

const (
	MetricWaiting    Metric = "waiting"
	MetricTurnaround Metric = "turnaround"
	MetricResponse   Metric = "response"
)

func (m Metric) of(s Summary) float64 {
	switch m {
	case MetricTurnaround:
		return s.AvgTurnaroundTime
	case MetricResponse:
		return s.AvgResponseTime
	default:
		return s.AvgWaitingTime
	}
}

// Best returns the summary with the lowest value for metric. The first one
// wins a tie. summaries must not be empty.
func Best(summaries []Summary, metric Metric) Summary {
	best := summaries[0]
	for _, s := range summaries[1:] {
		if metric.of(s) < metric.of(best) {
			best = s
		}
	}
	return best
}
