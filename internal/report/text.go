package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/yinebebt/cpusched/sched"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	bestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CC66")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// Printer writes results to w, styled when color is on.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a printer for w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Result prints the process table, the averages and the Gantt chart.
func (p *Printer) Result(res sched.Result) error {
	fmt.Fprintf(p.w, "\n%s\n", p.style(titleStyle, "=== "+res.Algorithm+" ==="))
	WriteProcessTable(p.w, res)

	s := Summarize(res)
	fmt.Fprintf(p.w, "\nPerformance Metrics:\n")
	fmt.Fprintf(p.w, "- Average Waiting Time: %.2f\n", s.AvgWaitingTime)
	fmt.Fprintf(p.w, "- Average Turnaround Time: %.2f\n", s.AvgTurnaroundTime)
	fmt.Fprintf(p.w, "- Average Response Time: %.2f\n", s.AvgResponseTime)
	fmt.Fprintf(p.w, "- Total Execution Time: %d\n", s.TotalTime)
	fmt.Fprintf(p.w, "- Context Switches: %d\n", s.ContextSwitches)

	fmt.Fprintf(p.w, "\n%s\n", p.style(mutedStyle, "Gantt Chart:"))
	return WriteGantt(p.w, res.Trace)
}

// WriteProcessTable renders one row per process in input order. Priority
// and start/response columns only appear for the policies that set them.
func WriteProcessTable(w io.Writer, res sched.Result) {
	withPriority := res.Policy.UsesPriority()
	withResponse := res.Policy == sched.RR

	header := []string{"PID", "Arrival", "Burst"}
	if withPriority {
		header = append(header, "Priority")
	}
	header = append(header, "Exit", "Turnaround", "Wait")
	if withResponse {
		header = append(header, "Start", "Response")
	}

	rows := make([][]string, 0, len(res.Processes))
	for _, proc := range res.Processes {
		row := []string{proc.Label(), itoa(proc.ArrivalTime), itoa(proc.BurstTime)}
		if withPriority {
			row = append(row, itoa(proc.Priority))
		}
		row = append(row, itoa(proc.ExitTime), itoa(proc.TurnaroundTime), itoa(proc.WaitingTime))
		if withResponse {
			row = append(row, itoa(proc.StartTime), itoa(proc.ResponseTime))
		}
		rows = append(rows, row)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

// Comparison prints a table of averages per policy followed by the best
// policy for each metric.
func (p *Printer) Comparison(results []sched.Result) {
	if len(results) == 0 {
		return
	}
	summaries := make([]Summary, len(results))
	for i, r := range results {
		summaries[i] = Summarize(r)
	}

	fmt.Fprintf(p.w, "\n%s\n", p.style(titleStyle, "Performance Comparison Summary"))
	table := tablewriter.NewWriter(p.w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg TAT", "Avg Response", "Ctx Switch", "Total"})
	for _, s := range summaries {
		table.Append([]string{
			s.Algorithm,
			fmt.Sprintf("%.2f", s.AvgWaitingTime),
			fmt.Sprintf("%.2f", s.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", s.AvgResponseTime),
			itoa(s.ContextSwitches),
			itoa(s.TotalTime),
		})
	}
	table.Render()

	fmt.Fprintln(p.w, "\nBest Performance Categories:")
	for _, c := range []struct {
		title  string
		metric Metric
	}{
		{"Best Average Waiting Time", MetricWaiting},
		{"Best Average Turnaround Time", MetricTurnaround},
		{"Best Average Response Time", MetricResponse},
	} {
		best := Best(summaries, c.metric)
		fmt.Fprintf(p.w, "• %s: %s (%.2f)\n", c.title, p.style(bestStyle, best.Algorithm), c.metric.of(best))
	}
}

// Echo prints the raw input the way it was read, between rules.
func (p *Printer) Echo(formatted string) {
	rule := strings.Repeat("-", 47)
	fmt.Fprintln(p.w, p.style(mutedStyle, rule))
	fmt.Fprint(p.w, formatted)
	fmt.Fprintln(p.w, p.style(mutedStyle, rule))
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
