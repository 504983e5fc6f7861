// Package prometheus exports campaign activity as Prometheus metrics.
package prometheus

import (
	"encoding/json"

	"github.com/prometheus/client_golang/prometheus"

	"milestone-escrow/internal/core/domain"
	"milestone-escrow/internal/core/port"
)

const namespace = "escrow"

var _ port.Observer = (*Observer)(nil)

// Observer counts journal events, moved value and rejected operations.
type Observer struct {
	events   *prometheus.CounterVec
	amounts  *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

// NewObserver creates the collectors and registers them with reg.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Committed campaign journal events by type.",
		}, []string{"type"}),
		amounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "amount_total",
			Help:      "Value moved by committed events: funded, released or refunded.",
		}, []string{"type"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Operations rejected by a campaign guard.",
		}, []string{"op", "code"}),
	}
	for _, c := range []prometheus.Collector{o.events, o.amounts, o.rejected} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Committed counts events and the amounts they carry.
func (o *Observer) Committed(events []domain.Event) {
	for _, e := range events {
		o.events.WithLabelValues(string(e.Type)).Inc()
		switch e.Type {
		case domain.EventBackerFunded, domain.EventMilestoneApproved, domain.EventRefundClaimed:
			var p struct {
				Amount uint64 `json:"amount"`
			}
			if json.Unmarshal(e.Payload, &p) == nil && p.Amount > 0 {
				o.amounts.WithLabelValues(string(e.Type)).Add(float64(p.Amount))
			}
		}
	}
}

// Rejected counts a guard violation.
func (o *Observer) Rejected(op string, code domain.Code) {
	o.rejected.WithLabelValues(op, string(code)).Inc()
}
