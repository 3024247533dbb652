package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/yinebebt/cpusched/sched"
)

func run(t *testing.T, in sched.Input) sched.Result {
	t.Helper()
	res, err := sched.Run(in)
	if err != nil {
		t.Fatalf("Run(%s) error = %v", in.Policy, err)
	}
	return res
}

var fcfsInput = sched.Input{
	Policy:   sched.FCFS,
	Numbers:  []int{1, 2, 3},
	Arrivals: []int{0, 1, 2},
	Bursts:   []int{5, 3, 8},
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarize(t *testing.T) {
	s := Summarize(run(t, fcfsInput))

	if !approx(s.AvgWaitingTime, 10.0/3) {
		t.Errorf("AvgWaitingTime = %v, want %v", s.AvgWaitingTime, 10.0/3)
	}
	if !approx(s.AvgTurnaroundTime, 26.0/3) {
		t.Errorf("AvgTurnaroundTime = %v, want %v", s.AvgTurnaroundTime, 26.0/3)
	}
	// FCFS response equals wait: each process runs once.
	if !approx(s.AvgResponseTime, s.AvgWaitingTime) {
		t.Errorf("AvgResponseTime = %v, want %v", s.AvgResponseTime, s.AvgWaitingTime)
	}
	if s.TotalTime != 16 || s.ContextSwitches != 2 {
		t.Errorf("total=%d switches=%d", s.TotalTime, s.ContextSwitches)
	}
}

func TestSummarize_RoundRobinUsesRecordedResponse(t *testing.T) {
	in := fcfsInput
	in.Policy = sched.RR
	in.Numbers = []int{1, 2}
	in.Arrivals = []int{0, 1}
	in.Bursts = []int{5, 3}
	in.Quantum = 2

	s := Summarize(run(t, in))
	if !approx(s.AvgResponseTime, 0.5) {
		t.Errorf("AvgResponseTime = %v, want 0.5", s.AvgResponseTime)
	}
}

func TestBest(t *testing.T) {
	summaries := []Summary{
		{Algorithm: "A", AvgWaitingTime: 3, AvgTurnaroundTime: 9, AvgResponseTime: 1},
		{Algorithm: "B", AvgWaitingTime: 2, AvgTurnaroundTime: 9, AvgResponseTime: 4},
		{Algorithm: "C", AvgWaitingTime: 2, AvgTurnaroundTime: 8, AvgResponseTime: 4},
	}

	tests := []struct {
		metric   Metric
		expected string
	}{
		{MetricWaiting, "B"},
		{MetricTurnaround, "C"},
		{MetricResponse, "A"},
	}
	for _, tt := range tests {
		if got := Best(summaries, tt.metric).Algorithm; got != tt.expected {
			t.Errorf("Best(%s) = %s, want %s", tt.metric, got, tt.expected)
		}
	}
}

func TestWriteGantt(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGantt(&buf, run(t, fcfsInput).Trace); err != nil {
		t.Fatal(err)
	}

	want := "| P1  | P2 |   P3   |\n" +
		"0     5    8       16\n"
	if buf.String() != want {
		t.Errorf("WriteGantt() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteGantt_MergesIdle(t *testing.T) {
	res := run(t, sched.Input{
		Policy:   sched.FCFS,
		Numbers:  []int{1, 2},
		Arrivals: []int{0, 5},
		Bursts:   []int{2, 1},
	})

	var buf bytes.Buffer
	if err := WriteGantt(&buf, res.Trace); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "idle"); n != 1 {
		t.Errorf("idle cells = %d, want 1:\n%s", n, buf.String())
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines[0]) != len(lines[1]) {
		t.Errorf("bar and axis widths differ:\n%s", buf.String())
	}
}

func TestPrinter_Result(t *testing.T) {
	in := fcfsInput
	in.Policy = sched.NPP
	in.Priorities = []int{3, 1, 2}

	var buf bytes.Buffer
	if err := NewPrinter(&buf, false).Result(run(t, in)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"=== Priority Scheduling (Non-Preemptive) ===",
		"PRIORITY",
		"Average Waiting Time",
		"Gantt Chart:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "RESPONSE") {
		t.Error("response column should only appear for round robin")
	}
}

func TestPrinter_Comparison(t *testing.T) {
	in := fcfsInput
	in.Quantum = 2
	in.Priorities = []int{3, 1, 2}

	var results []sched.Result
	for _, p := range sched.Policies {
		in.Policy = p
		results = append(results, run(t, in))
	}

	var buf bytes.Buffer
	NewPrinter(&buf, false).Comparison(results)
	out := buf.String()

	if !strings.Contains(out, "Performance Comparison Summary") {
		t.Errorf("missing title:\n%s", out)
	}
	if n := strings.Count(out, "• Best"); n != 3 {
		t.Errorf("best lines = %d, want 3", n)
	}
}
