package controller

import (
	"context"

	"github.com/battlesnakeio/arena/rules"
	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arena",
			Subsystem: "controller",
			Name:      "calls",
			Help:      "Calls processed by the store.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(storeCalls)
}

type metrics struct{ s Store }

func (m *metrics) Lock(ctx context.Context, key, token string) (string, error) {
	defer instrument("Lock")()
	return m.s.Lock(ctx, key, token)
}

func (m *metrics) Unlock(ctx context.Context, key, token string) error {
	defer instrument("Unlock")()
	return m.s.Unlock(ctx, key, token)
}

func (m *metrics) PopRoundID(c context.Context) (string, error) {
	defer instrument("PopRoundID")()
	return m.s.PopRoundID(c)
}

func (m *metrics) CreateRound(c context.Context, r *Round) error {
	defer instrument("CreateRound")()
	return m.s.CreateRound(c, r)
}

func (m *metrics) GetRound(c context.Context, id string) (*Round, error) {
	defer instrument("GetRound")()
	return m.s.GetRound(c, id)
}

func (m *metrics) ListRounds(c context.Context) ([]*Round, error) {
	defer instrument("ListRounds")()
	return m.s.ListRounds(c)
}

func (m *metrics) SetRoundStatus(c context.Context, id string, status rules.RoundStatus, reason string) error {
	defer instrument("SetRoundStatus")()
	return m.s.SetRoundStatus(c, id, status, reason)
}

func (m *metrics) FinishRound(c context.Context, id string, turns int64, standings []rules.Standing) error {
	defer instrument("FinishRound")()
	return m.s.FinishRound(c, id, turns, standings)
}
