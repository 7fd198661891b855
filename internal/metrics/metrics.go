// SPDX-License-Identifier: MIT

// Package metrics exposes generator activity as Prometheus metrics by
// plugging into generator.Hooks.
package metrics

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/katalvlaran/hmmgen/generator"
	"github.com/katalvlaran/hmmgen/hidden"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hmmgen"

// Collector counts pairs, hidden switches and completed sequences.
// All metrics are safe for concurrent use, so one Collector may serve a
// whole GenerateBatch.
type Collector struct {
	reg        *prometheus.Registry
	pairs      *prometheus.CounterVec
	switches   *prometheus.CounterVec
	sequences  prometheus.Counter
	longestRun *prometheus.GaugeVec

	// per-state children resolved once; OnPair runs on every step
	pairsByState [hidden.NumStates]prometheus.Counter
}

// New registers the generator metrics on reg. A nil reg gets a fresh
// registry.
func New(reg *prometheus.Registry) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	c := &Collector{
		reg: reg,
		pairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_total",
			Help:      "Emitted (label, symbol) pairs by hidden state.",
		}, []string{"state"}),
		switches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hidden_switches_total",
			Help:      "Hidden state changes by direction.",
		}, []string{"from", "to"}),
		sequences: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sequences_total",
			Help:      "Completed sequences.",
		}),
		longestRun: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "longest_run",
			Help:      "Longest run per hidden state in the last completed sequence.",
		}, []string{"state"}),
	}
	for _, col := range []prometheus.Collector{c.pairs, c.switches, c.sequences, c.longestRun} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	for _, s := range [...]hidden.State{hidden.InRegion, hidden.OutOfRegion} {
		c.pairsByState[s] = c.pairs.WithLabelValues(s.String())
	}
	return c, nil
}

// Registry returns the registry the metrics live in.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// Hooks returns generator hooks feeding this collector.
func (c *Collector) Hooks() generator.Hooks {
	return generator.Hooks{
		OnPair: func(_ int, s hidden.State, _ dataset.Pair) {
			c.pairsByState[s].Inc()
		},
		OnSwitch: func(_ int, from, to hidden.State) {
			c.switches.WithLabelValues(from.String(), to.String()).Inc()
		},
		OnComplete: func(st generator.Stats) {
			c.sequences.Inc()
			for _, s := range [...]hidden.State{hidden.InRegion, hidden.OutOfRegion} {
				c.longestRun.WithLabelValues(s.String()).Set(float64(st.LongestRun[s]))
			}
		},
	}
}

// Sample is one gathered metric value.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Snapshot gathers the current counter and gauge values, sorted by name.
func (c *Collector) Snapshot() ([]Sample, error) {
	families, err := c.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Labels: map[string]string{}}
			for _, lp := range m.GetLabel() {
				s.Labels[lp.GetName()] = lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				s.Value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				s.Value = m.GetGauge().GetValue()
			default:
				continue
			}
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
