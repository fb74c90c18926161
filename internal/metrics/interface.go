package metrics

// Metrics defines the instrumentation surface for the import pipeline.
type Metrics interface {
	IncMessagesScanned()
	IncResultsImported()
	IncImportFailures()
	IncMetadataProbes()
	ObserveImportDuration(duration float64)
	SetStartupTime(duration float64)
}
