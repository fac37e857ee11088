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

type Server struct {
	Store          archive.MatchStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Loader         *ingest.Loader
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
}
