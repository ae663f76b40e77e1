// Package mh implements the §4.4.3 single-site Metropolis-Hastings driver:
// the most intricate of the three, reusing a persistent trace across runs
// and accepting or rejecting each proposal by a log acceptance ratio that
// depends on the number of random choices taken.
//
// Addressing is the documented approximation of §4.4.3: a program whose
// control flow depends on already-sampled values can produce non-stable
// (syntactic_address, var_counter) pairs between runs, which breaks the
// trace-reuse assumption. This is a known soundness limitation of
// single-site MH as specified, not a defect this package tries to fix.
package mh

import (
	"math"

	"github.com/foppl-lang/foppl/internal/dataset"
	"github.com/foppl-lang/foppl/internal/rng"
	"github.com/foppl-lang/foppl/internal/value"
)

// Address is the compound key of §4.4.3: the syntactic address assigned by
// the address pass, paired with the ordinal of this execution of any
// random-choice node within the current run.
type Address struct {
	Syntactic  int
	VarCounter int
}

type traceEntry struct {
	Value  value.Value
	LogPDF float64
}

// RunMemory is the per-run state of §4.4.3: the trace of every random
// choice made, plus the running sums needed by the acceptance ratio.
type RunMemory struct {
	Trace             map[Address]traceEntry
	Keys              []Address // parallel to Trace, for O(1) uniform key selection
	ReusedLogWeight   float64
	ObservedLogWeight float64
}

func newRunMemory() *RunMemory {
	return &RunMemory{Trace: make(map[Address]traceEntry)}
}

func (m *RunMemory) record(key Address, v value.Value, logPDF float64) {
	m.Trace[key] = traceEntry{Value: v, LogPDF: logPDF}
	m.Keys = append(m.Keys, key)
}

// Driver is the single-site MH sampler.
type Driver struct {
	last     *RunMemory
	proposal *RunMemory

	proposalSite        Address
	reachedProposalSite bool
	varCounter          int

	skip    int
	count   int
	samples []value.Value
}

// New builds a fresh driver; skip is the thinning factor of §4.4.3 — every
// skip-th accepted sample is retained. A skip of 0 behaves like 1 (no
// thinning).
func New(skip int) *Driver {
	if skip < 0 {
		skip = 0
	}
	return &Driver{proposal: newRunMemory(), skip: skip}
}

func (d *Driver) Sample(dist value.Dist, syntacticAddress int) (value.Value, error) {
	key := Address{Syntactic: syntacticAddress, VarCounter: d.varCounter}
	d.varCounter++

	switch {
	case d.last == nil:
		v := dist.Sample()
		w, err := dist.LogPDF(v)
		if err != nil {
			return value.Value{}, err
		}
		d.proposal.record(key, v, w)
		return v, nil

	case key == d.proposalSite:
		d.reachedProposalSite = true
		v := dist.Sample()
		w, err := dist.LogPDF(v)
		if err != nil {
			return value.Value{}, err
		}
		d.proposal.record(key, v, w)
		return v, nil

	default:
		if entry, ok := d.last.Trace[key]; ok {
			v := entry.Value
			w := entry.LogPDF
			if d.reachedProposalSite {
				recomputed, err := dist.LogPDF(v)
				if err != nil {
					return value.Value{}, err
				}
				w = recomputed
			}
			d.proposal.ReusedLogWeight += w
			d.proposal.record(key, v, w)
			return v, nil
		}
		v := dist.Sample()
		w, err := dist.LogPDF(v)
		if err != nil {
			return value.Value{}, err
		}
		d.proposal.record(key, v, w)
		return v, nil
	}
}

func (d *Driver) Observe(dist value.Dist, observed value.Value, _ int) (value.Value, error) {
	w, err := dist.LogPDF(observed)
	if err != nil {
		return value.Value{}, err
	}
	d.varCounter++
	d.proposal.ObservedLogWeight += w
	return observed, nil
}

func (d *Driver) FinishOneEvaluation(result value.Value) {
	accepted := d.last == nil
	if !accepted {
		logAlpha := math.Log(float64(len(d.last.Trace))) - math.Log(float64(len(d.proposal.Trace))) +
			(d.proposal.ObservedLogWeight + d.proposal.ReusedLogWeight) -
			(d.last.ObservedLogWeight + d.last.ReusedLogWeight)
		accepted = logAlpha >= 0 || math.Log(rng.Float64()) < logAlpha
	}

	if accepted {
		d.last = d.proposal
		d.count++
		if d.count >= d.skip {
			d.count = 0
			d.samples = append(d.samples, result)
		}
	}

	d.proposal = newRunMemory()
	if len(d.last.Keys) > 0 {
		d.proposalSite = d.last.Keys[rng.Intn(len(d.last.Keys))]
	}
	d.reachedProposalSite = false
	d.varCounter = 0
}

func (d *Driver) Finalize() (*dataset.Dataset, error) {
	out := make([]any, len(d.samples))
	for i, r := range d.samples {
		flat, err := dataset.Flatten(r)
		if err != nil {
			return nil, err
		}
		out[i] = flat
	}
	return &dataset.Dataset{HasWeights: false, Unweighted: out}, nil
}
