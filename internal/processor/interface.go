package processor

import (
	"github.com/mauv0809/cover-drive/internal/archive"
	"github.com/mauv0809/cover-drive/internal/notifier"
	"github.com/mauv0809/cover-drive/internal/report"
)

// Store defines the database operations required by the processor.
type Store interface {
	GetMatchesForProcessing() ([]*archive.StoredMatch, error)
	UpdateProcessingStatus(id string, status archive.ProcessingStatus) error
	SaveReport(id string, doc report.Document, warningCount int) error
}

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
