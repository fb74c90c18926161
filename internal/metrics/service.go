package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MessagesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_messages_scanned_total",
			Help: "The total number of chat messages inspected for Wordle results.",
		}),
		ResultsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_results_imported_total",
			Help: "The total number of Wordle results stored.",
		}),
		ImportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_import_failures_total",
			Help: "The total number of messages whose import failed.",
		}),
		MetadataProbes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_metadata_probes_total",
			Help: "The total number of NYT metadata fetches, including fallback probes.",
		}),
		ImportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_message_import_duration_seconds",
			Help:    "The duration of individual message imports.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wordle_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MessagesScanned,
		s.ResultsImported,
		s.ImportFailures,
		s.MetadataProbes,
		s.ImportDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMessagesScanned() {
	s.MessagesScanned.Inc()
}

func (s *Service) IncResultsImported() {
	s.ResultsImported.Inc()
}

func (s *Service) IncImportFailures() {
	s.ImportFailures.Inc()
}

func (s *Service) IncMetadataProbes() {
	s.MetadataProbes.Inc()
}

func (s *Service) ObserveImportDuration(duration float64) {
	s.ImportDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
