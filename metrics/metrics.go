package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg           *prometheus.Registry
	ActionsLogged *prometheus.CounterVec
	SinkFailures  *prometheus.CounterVec
	SinkLatency   *prometheus.HistogramVec
	CartMutations *prometheus.CounterVec
	Purchases     prometheus.Counter
	PurchaseValue prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "trialshop_actions_logged_total"}, []string{"action"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "trialshop_sink_failures_total"}, []string{"sink"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trialshop_sink_latency_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"sink"})
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "trialshop_cart_mutations_total"}, []string{"op"})
	purchases := prometheus.NewCounter(prometheus.CounterOpts{Name: "trialshop_purchases_total"})
	value := prometheus.NewCounter(prometheus.CounterOpts{Name: "trialshop_purchase_value_total"})

	r.MustRegister(actions, failures, latency, mutations, purchases, value)
	return &Registry{
		reg:           r,
		ActionsLogged: actions,
		SinkFailures:  failures,
		SinkLatency:   latency,
		CartMutations: mutations,
		Purchases:     purchases,
		PurchaseValue: value,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
