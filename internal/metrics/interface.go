package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncIngestRuns()
	IncMatchesProcessed()
	ObserveProcessingDuration(duration float64)
	IncReportsRendered()
	IncDeliveryWarnings(count int)
	IncPublishSent()
	IncPublishFailed()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
