// Package export writes simulation results as YAML, JSON or an xlsx
// workbook.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yinebebt/cpusched/internal/report"
	"github.com/yinebebt/cpusched/sched"
)

// Run is the serialisable form of one simulation.
type Run struct {
	RunID             string       `json:"run_id" yaml:"run_id"`
	Source            string       `json:"source,omitempty" yaml:"source,omitempty"`
	Policy            string       `json:"policy" yaml:"policy"`
	Algorithm         string       `json:"algorithm" yaml:"algorithm"`
	Quantum           int          `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	TotalTime         int          `json:"total_time" yaml:"total_time"`
	ContextSwitches   int          `json:"context_switches" yaml:"context_switches"`
	AvgWaitingTime    float64      `json:"avg_waiting_time" yaml:"avg_waiting_time"`
	AvgTurnaroundTime float64      `json:"avg_turnaround_time" yaml:"avg_turnaround_time"`
	AvgResponseTime   float64      `json:"avg_response_time" yaml:"avg_response_time"`
	Processes         []ProcessRow `json:"processes" yaml:"processes"`
	Trace             []TraceRow   `json:"trace" yaml:"trace"`
}

// ProcessRow is one completed process.
type ProcessRow struct {
	Number     int  `json:"number" yaml:"number"`
	Arrival    int  `json:"arrival" yaml:"arrival"`
	Burst      int  `json:"burst" yaml:"burst"`
	Priority   *int `json:"priority,omitempty" yaml:"priority,omitempty"`
	Exit       int  `json:"exit" yaml:"exit"`
	Turnaround int  `json:"turnaround" yaml:"turnaround"`
	Wait       int  `json:"wait" yaml:"wait"`
	Start      *int `json:"start,omitempty" yaml:"start,omitempty"`
	Response   *int `json:"response,omitempty" yaml:"response,omitempty"`
}

// TraceRow is one trace segment.
type TraceRow struct {
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Label string `json:"label" yaml:"label"`
}

// FromResult converts res, tagging it with runID and source.
func FromResult(runID, source string, res sched.Result) Run {
	s := report.Summarize(res)
	run := Run{
		RunID:             runID,
		Source:            source,
		Policy:            string(res.Policy),
		Algorithm:         res.Algorithm,
		Quantum:           res.Quantum,
		TotalTime:         res.TotalTime,
		ContextSwitches:   res.ContextSwitches,
		AvgWaitingTime:    s.AvgWaitingTime,
		AvgTurnaroundTime: s.AvgTurnaroundTime,
		AvgResponseTime:   s.AvgResponseTime,
	}

	for _, p := range res.Processes {
		row := ProcessRow{
			Number:     p.Number,
			Arrival:    p.ArrivalTime,
			Burst:      p.BurstTime,
			Exit:       p.ExitTime,
			Turnaround: p.TurnaroundTime,
			Wait:       p.WaitingTime,
		}
		if p.HasPriority {
			row.Priority = intPtr(p.Priority)
		}
		if p.StartTime >= 0 {
			row.Start = intPtr(p.StartTime)
			row.Response = intPtr(p.ResponseTime)
		}
		run.Processes = append(run.Processes, row)
	}

	for _, seg := range res.Trace.Segments() {
		run.Trace = append(run.Trace, TraceRow{Start: seg.Start, End: seg.End, Label: seg.Label()})
	}
	return run
}

func intPtr(v int) *int {
	return &v
}

// Format names an encoding accepted by Write.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Write encodes runs to w.
func Write(w io.Writer, format Format, runs []Run) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(runs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
