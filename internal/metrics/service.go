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
		IngestRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_ingest_runs_total",
			Help: "The total number of times the match ingest has run.",
		}),
		MatchesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_matches_processed_total",
			Help: "The total number of matches processed by the pipeline.",
		}),
		ProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cricket_match_processing_duration_seconds",
			Help:    "The duration of individual match processing.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ReportsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_reports_rendered_total",
			Help: "The total number of match reports rendered.",
		}),
		DeliveryWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_delivery_warnings_total",
			Help: "The total number of non-fatal delivery warnings produced while aggregating.",
		}),
		PublishSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_report_publish_sent_total",
			Help: "The total number of report documents successfully published.",
		}),
		PublishFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_report_publish_failed_total",
			Help: "The total number of report documents that failed to publish.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cricket_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.IngestRuns,
		s.MatchesProcessed,
		s.ProcessingDuration,
		s.ReportsRendered,
		s.DeliveryWarnings,
		s.PublishSent,
		s.PublishFailed,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncIngestRuns() {
	s.IngestRuns.Inc()
}

func (s *Service) IncMatchesProcessed() {
	s.MatchesProcessed.Inc()
}

func (s *Service) ObserveProcessingDuration(duration float64) {
	s.ProcessingDuration.Observe(duration)
}

func (s *Service) IncReportsRendered() {
	s.ReportsRendered.Inc()
}

func (s *Service) IncDeliveryWarnings(count int) {
	s.DeliveryWarnings.Add(float64(count))
}

func (s *Service) IncPublishSent() {
	s.PublishSent.Inc()
}

func (s *Service) IncPublishFailed() {
	s.PublishFailed.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
