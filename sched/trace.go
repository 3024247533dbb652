package sched

import "fmt"

// EntryKind distinguishes the boundaries recorded in a Trace.
type EntryKind uint8

const (
	// KindOrigin is the time-0 entry every trace starts with.
	KindOrigin EntryKind = iota
	// KindDispatch closes a segment in which a process ran.
	KindDispatch
	// KindIdle closes one idle tick.
	KindIdle
)

// IdleLabel labels idle trace entries.
const IdleLabel = "idle"

// Entry is one boundary in the execution trace: the segment that ended at
// Time was occupied by Process (or nothing, for idle ticks).
type Entry struct {
	Time    int
	Kind    EntryKind
	Process int // process number, meaningful for KindDispatch only
}

// Label returns "P<n>" for dispatches, "idle" for idle ticks and "" for the
// origin.
func (e Entry) Label() string {
	switch e.Kind {
	case KindDispatch:
		return fmt.Sprintf("P%d", e.Process)
	case KindIdle:
		return IdleLabel
	default:
		return ""
	}
}

// Trace is the chronological record of a run ("Gantt chart").
type Trace struct {
	Entries []Entry
}

// Segment is one interval of the trace.
type Segment struct {
	Start   int
	End     int
	Idle    bool
	Process int
}

// Len is the number of time units in the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Label mirrors Entry.Label.
func (s Segment) Label() string {
	if s.Idle {
		return IdleLabel
	}
	return fmt.Sprintf("P%d", s.Process)
}

// Segments pairs consecutive boundaries into intervals.
func (t Trace) Segments() []Segment {
	if len(t.Entries) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(t.Entries)-1)
	for i := 1; i < len(t.Entries); i++ {
		e := t.Entries[i]
		segs = append(segs, Segment{
			Start:   t.Entries[i-1].Time,
			End:     e.Time,
			Idle:    e.Kind == KindIdle,
			Process: e.Process,
		})
	}
	return segs
}

// End returns the time of the last boundary.
func (t Trace) End() int {
	if len(t.Entries) == 0 {
		return 0
	}
	return t.Entries[len(t.Entries)-1].Time
}

// BusyTime sums the segments in which a process ran.
func (t Trace) BusyTime() int {
	total := 0
	for _, s := range t.Segments() {
		if !s.Idle {
			total += s.Len()
		}
	}
	return total
}

// ContextSwitches counts changes between two different processes. Idle
// ticks between the same process do not count.
func (t Trace) ContextSwitches() int {
	switches := 0
	last := -1
	started := false
	for _, s := range t.Segments() {
		if s.Idle {
			continue
		}
		if started && s.Process != last {
			switches++
		}
		last = s.Process
		started = true
	}
	return switches
}

// Recorder accumulates trace entries for one run. It starts with the origin
// entry at time 0.
type Recorder struct {
	entries []Entry
}

// NewRecorder returns a recorder holding only the origin.
func NewRecorder() *Recorder {
	return &Recorder{entries: []Entry{{Time: 0, Kind: KindOrigin}}}
}

// Dispatch records that process number ran until time.
func (r *Recorder) Dispatch(time, number int) {
	r.entries = append(r.entries, Entry{Time: time, Kind: KindDispatch, Process: number})
}

// Idle records one idle tick ending at time.
func (r *Recorder) Idle(time int) {
	r.entries = append(r.entries, Entry{Time: time, Kind: KindIdle})
}

// Trace returns a copy of the recorded entries.
func (r *Recorder) Trace() Trace {
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return Trace{Entries: entries}
}
