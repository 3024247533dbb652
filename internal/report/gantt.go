package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yinebebt/cpusched/sched"
)

// WriteGantt draws the trace as a bar of labelled cells over a time axis.
// Each cell is at least as wide as its duration; consecutive idle ticks are
// drawn as one cell.
func WriteGantt(w io.Writer, tr sched.Trace) error {
	var bar, axis strings.Builder
	bar.WriteString("|")
	axis.WriteString("0")

	for _, seg := range mergeIdle(tr.Segments()) {
		label := seg.Label()
		width := max(seg.Len(), len(label)+2)
		pad := width - len(label)
		left := pad / 2
		bar.WriteString(strings.Repeat(" ", left))
		bar.WriteString(label)
		bar.WriteString(strings.Repeat(" ", pad-left))
		bar.WriteString("|")

		end := strconv.Itoa(seg.End)
		gap := bar.Len() - len(end) - axis.Len()
		if gap < 1 {
			gap = 1
		}
		axis.WriteString(strings.Repeat(" ", gap))
		axis.WriteString(end)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", bar.String(), axis.String())
	return err
}

func mergeIdle(segs []sched.Segment) []sched.Segment {
	out := make([]sched.Segment, 0, len(segs))
	for _, s := range segs {
		if n := len(out); n > 0 && s.Idle && out[n-1].Idle {
			out[n-1].End = s.End
			continue
		}
		out = append(out, s)
	}
	return out
}
