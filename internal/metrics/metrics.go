// Package metrics counts splits and exports with Prometheus collectors.
//
// quicksplit has no HTTP surface, so the registry is not scraped. Instead
// WriteTextfile dumps it in the text exposition format for the node
// exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quicksplit"

// Rejection reasons used as the "reason" label.
const (
	ReasonInvalidTotal   = "invalid_total"
	ReasonNoParticipants = "no_participants"
	ReasonEmptyName      = "empty_name"
	ReasonInvalidWeight  = "invalid_weight"
	ReasonZeroWeight     = "zero_weight"
	ReasonUnknownMode    = "unknown_mode"
	ReasonOther          = "other"
)

// Collector holds the counters. A nil *Collector is valid and records nothing.
type Collector struct {
	gatherer prometheus.Gatherer
	splits   *prometheus.CounterVec
	rejected *prometheus.CounterVec
	exports  *prometheus.CounterVec
}

// New registers the quicksplit counters on reg.
func New(reg *prometheus.Registry) (*Collector, error) {
	c := &Collector{
		gatherer: reg,
		splits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splits_total",
			Help:      "Splits computed, by split mode.",
		}, []string{"mode"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splits_rejected_total",
			Help:      "Split requests rejected before an allocation was produced, by reason.",
		}, []string{"reason"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Result image exports, by result.",
		}, []string{"result"}),
	}
	for _, col := range []prometheus.Collector{c.splits, c.rejected, c.exports} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return c, nil
}

// SplitComputed counts a successful split.
func (c *Collector) SplitComputed(mode string) {
	if c == nil {
		return
	}
	c.splits.WithLabelValues(mode).Inc()
}

// SplitRejected counts a request that did not produce an allocation.
func (c *Collector) SplitRejected(reason string) {
	if c == nil {
		return
	}
	c.rejected.WithLabelValues(reason).Inc()
}

// ExportFinished counts an export attempt.
func (c *Collector) ExportFinished(err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.exports.WithLabelValues(result).Inc()
}

// WriteTextfile writes every registered metric to path atomically.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
