// ABOUTME: Prometheus implementation of the pipeline metrics interface
// ABOUTME: Counts evaluation, summary and search outcomes and exposes them over HTTP

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder implements interfaces.Metrics on its own registry
type Recorder struct {
	registry *prometheus.Registry

	evaluationsTotal   *prometheus.CounterVec
	evaluationDuration *prometheus.HistogramVec
	finalScore         *prometheus.HistogramVec
	summariesTotal     *prometheus.CounterVec
	searchesTotal      *prometheus.CounterVec
}

// NewRecorder registers the validity collectors plus Go and process collectors
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		evaluationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validity_evaluations_total",
				Help: "Total number of URL evaluations",
			},
			[]string{"scale", "outcome"}, // outcome: ok, degraded, error
		),
		evaluationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "validity_evaluation_duration_seconds",
				Help:    "Time spent fetching and scoring a URL",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"scale"},
		),
		finalScore: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "validity_final_score",
				Help:    "Distribution of final credibility scores",
				Buckets: []float64{20, 40, 60, 80, 100},
			},
			[]string{"scale"},
		),
		summariesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validity_summaries_total",
				Help: "Total number of summarization attempts",
			},
			[]string{"outcome"}, // outcome: ok, cached, skipped, failed
		),
		searchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validity_searches_total",
				Help: "Total number of search attempts",
			},
			[]string{"outcome"},
		),
	}
}

// ObserveEvaluation records one scoring attempt
func (r *Recorder) ObserveEvaluation(scale string, outcome string, finalScore float64, duration time.Duration) {
	r.evaluationsTotal.WithLabelValues(scale, outcome).Inc()
	r.evaluationDuration.WithLabelValues(scale).Observe(duration.Seconds())
	if outcome != "error" {
		r.finalScore.WithLabelValues(scale).Observe(finalScore)
	}
}

// ObserveSummary records one summarization attempt
func (r *Recorder) ObserveSummary(outcome string) {
	r.summariesTotal.WithLabelValues(outcome).Inc()
}

// ObserveSearch records one search attempt
func (r *Recorder) ObserveSearch(outcome string) {
	r.searchesTotal.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for additional collectors
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
