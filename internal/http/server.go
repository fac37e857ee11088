package http

import (
	"net/http"

	"github.com/mauv0809/cover-drive/internal/archive"
	"github.com/mauv0809/cover-drive/internal/config"
	"github.com/mauv0809/cover-drive/internal/ingest"
	"github.com/mauv0809/cover-drive/internal/metrics"
	"github.com/mauv0809/cover-drive/internal/notifier"
	"github.com/mauv0809/cover-drive/internal/processor"
)

func NewServer(store archive.MatchStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, loader *ingest.Loader, notifier notifier.Notifier, processor *processor.Processor) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Loader:         loader,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/ingest", Chain(s.IngestMatchHandler(), paramsMiddleware))
	s.Router.Handle("/scan", Chain(s.ScanDirHandler(), paramsMiddleware))
	s.Router.Handle("/process", Chain(s.ProcessMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/report", Chain(s.ReportHandler(), paramsMiddleware))
	s.Router.Handle("/search", Chain(s.SearchHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
