// Package input reads simulation files. The first line names the policy;
// each following line is a comma-separated list of integers, optionally
// wrapped in brackets:
//
//	RR
//	1,2,3        process numbers
//	[0,1,2]      arrival times
//	5,3,8        burst times
//	2            quantum (RR) or priorities (NPP, PP)
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yinebebt/cpusched/sched"
)

// ErrTooFewLines is wrapped by ParseError when the file stops before the
// burst line.
var ErrTooFewLines = errors.New("too few lines")

// ParseError locates a problem in the input file.
type ParseError struct {
	Line   int // 1-based, 0 when not tied to a line
	Column int // 1-based, 0 when not tied to a value
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is a parsed input file before it is bound to a policy.
type Document struct {
	Policy string
	Rows   [][]int
}

// ParseFile opens and parses path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a document from r. Blank lines are skipped.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if doc.Policy == "" {
			doc.Policy = line
			continue
		}
		row, err := parseRow(raw)
		if err != nil {
			err.Line = lineNo
			return nil, err
		}
		doc.Rows = append(doc.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if doc.Policy == "" {
		return nil, &ParseError{Msg: "missing policy line", Err: ErrTooFewLines}
	}
	if len(doc.Rows) < 3 {
		return nil, &ParseError{
			Msg: fmt.Sprintf("need process, arrival and burst lines, found %d", len(doc.Rows)),
			Err: ErrTooFewLines,
		}
	}
	return doc, nil
}

// parseRow splits one line into integers. One surrounding bracket pair and
// one trailing comma are accepted; any other empty value is an error. The
// returned error carries the column but not the line.
func parseRow(raw string) ([]int, *ParseError) {
	body := strings.TrimRight(raw, " \t")
	col := len(raw) - len(strings.TrimLeft(raw, " \t"))
	body = body[col:]

	if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
		body = body[1 : len(body)-1]
		col++
	}
	if trimmed := strings.TrimRight(body, " \t"); strings.HasSuffix(trimmed, ",") {
		body = trimmed[:len(trimmed)-1]
	}

	fields := strings.Split(body, ",")
	row := make([]int, 0, len(fields))
	for _, f := range fields {
		v := strings.TrimSpace(f)
		if v == "" {
			return nil, &ParseError{Column: col + 1, Msg: "empty value"}
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &ParseError{Column: col + 1 + strings.Index(f, v), Msg: "invalid integer", Err: err}
		}
		row = append(row, n)
		col += len(f) + 1
	}
	return row, nil
}

// Input binds the document to its policy. The fourth line is the quantum
// for RR and the priorities for NPP and PP; for the other policies a single
// value is taken as a quantum and anything longer as priorities. An
// optional fifth line supplies whichever of the two the fourth did not, so
// one file can drive every policy. defaultQuantum fills in for RR files
// without a quantum line.
func (d *Document) Input(defaultQuantum int) (sched.Input, error) {
	policy, err := sched.ParsePolicy(d.Policy)
	if err != nil {
		return sched.Input{}, err
	}

	in := sched.Input{
		Policy:   policy,
		Numbers:  d.Rows[0],
		Arrivals: d.Rows[1],
		Bursts:   d.Rows[2],
		Quantum:  defaultQuantum,
	}

	extras := d.Rows[3:]
	if len(extras) == 0 {
		return in, nil
	}

	quantumFirst := policy.UsesQuantum() ||
		(!policy.UsesPriority() && len(extras[0]) == 1 && len(in.Numbers) != 1)

	for i, row := range extras {
		if i > 1 {
			break
		}
		if (i == 0) == quantumFirst {
			if len(row) != 1 {
				return sched.Input{}, &ParseError{
					Msg: fmt.Sprintf("quantum line has %d values, want 1", len(row)),
				}
			}
			in.Quantum = row[0]
		} else {
			in.Priorities = row
		}
	}
	return in, nil
}

// Format renders the rows the way they appear in the file, one bracketed
// list per line.
func (d *Document) Format() string {
	var sb strings.Builder
	sb.WriteString(d.Policy)
	sb.WriteByte('\n')
	for _, row := range d.Rows {
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = strconv.Itoa(v)
		}
		sb.WriteString("[" + strings.Join(parts, ",") + "]\n")
	}
	return sb.String()
}
