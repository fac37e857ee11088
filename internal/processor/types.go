package processor

import (
	"github.com/mauv0809/cover-drive/internal/ingest"
	"github.com/mauv0809/cover-drive/internal/metrics"
	"github.com/mauv0809/cover-drive/internal/pubsub"
)

// Processor advances archived matches through the processing pipeline.
type Processor struct {
	store    Store
	loader   *ingest.Loader
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
	topic    string
}
