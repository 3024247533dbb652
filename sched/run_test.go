package sched

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input string
		want  Policy
	}{
		{"FCFS", FCFS},
		{"srtn", SRTN},
		{" rr ", RR},
		{"Npp", NPP},
		{"pp", PP},
		{"sjf\r", SJF},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}

	if _, err := ParsePolicy("LOTTERY"); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("ParsePolicy(LOTTERY) error = %v, want ErrUnknownPolicy", err)
	}
}

func TestNewScheduler(t *testing.T) {
	for _, p := range Policies {
		s, err := NewScheduler(p, 4)
		if err != nil {
			t.Fatalf("NewScheduler(%s) error = %v", p, err)
		}
		if s.Policy() != p {
			t.Errorf("NewScheduler(%s).Policy() = %s", p, s.Policy())
		}
		if s.Name() == "" {
			t.Errorf("NewScheduler(%s) has no name", p)
		}
	}

	if _, err := NewScheduler(RR, 0); !errors.Is(err, ErrInputShape) {
		t.Errorf("NewScheduler(RR, 0) error = %v, want ErrInputShape", err)
	}
}

func TestInput_Applicable(t *testing.T) {
	base := Input{Numbers: []int{1}, Arrivals: []int{0}, Bursts: []int{1}}

	if got, want := base.Applicable(), []Policy{FCFS, SRTN, SJF}; !reflect.DeepEqual(got, want) {
		t.Errorf("Applicable() = %v, want %v", got, want)
	}

	full := base
	full.Quantum = 2
	full.Priorities = []int{1}
	if got := full.Applicable(); !reflect.DeepEqual(got, Policies) {
		t.Errorf("Applicable() = %v, want %v", got, Policies)
	}
}

func TestCompare(t *testing.T) {
	in := Input{
		Numbers:    []int{1, 2, 3},
		Arrivals:   []int{0, 1, 2},
		Bursts:     []int{5, 3, 8},
		Priorities: []int{2, 1, 3},
		Quantum:    2,
	}

	results, err := Compare(context.Background(), in, Policies, 2)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(results) != len(Policies) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(Policies))
	}
	for i, res := range results {
		if res.Policy != Policies[i] {
			t.Errorf("results[%d].Policy = %s, want %s", i, res.Policy, Policies[i])
		}
		in.Policy = Policies[i]
		single, err := Run(in)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res, single) {
			t.Errorf("%s: concurrent result differs from a single run", res.Policy)
		}
	}
}

func TestCompare_PropagatesValidationError(t *testing.T) {
	in := Input{Numbers: []int{1, 2}, Arrivals: []int{0}, Bursts: []int{1, 1}}

	_, err := Compare(context.Background(), in, []Policy{FCFS, SJF}, 0)
	if !errors.Is(err, ErrInputShape) {
		t.Errorf("Compare() error = %v, want ErrInputShape", err)
	}
}

func TestCompare_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := Input{Numbers: []int{1}, Arrivals: []int{0}, Bursts: []int{1}}
	if _, err := Compare(ctx, in, []Policy{FCFS}, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("Compare() error = %v, want context.Canceled", err)
	}
}
