package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds the Prometheus collectors for the application.
type Service struct {
	MessagesScanned    prometheus.Counter
	ResultsImported    prometheus.Counter
	ImportFailures     prometheus.Counter
	MetadataProbes     prometheus.Counter
	ImportDuration     prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
