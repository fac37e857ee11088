package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	IngestRuns         prometheus.Counter
	MatchesProcessed   prometheus.Counter
	ProcessingDuration prometheus.Histogram
	ReportsRendered    prometheus.Counter
	DeliveryWarnings   prometheus.Counter
	PublishSent        prometheus.Counter
	PublishFailed      prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
