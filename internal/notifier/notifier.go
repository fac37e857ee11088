package notifier

import (
	"github.com/mauv0809/cover-drive/internal/cricket"
	"github.com/mauv0809/cover-drive/internal/stats"
)

// Notifier defines a high-level interface for announcing processed matches.
// This decouples the rest of the application from the specific notification
// provider (e.g., Slack).
type Notifier interface {
	// SendMatchSummary announces a freshly rendered match report.
	SendMatchSummary(match *cricket.MatchRecord, summary *stats.MatchStats, dryRun bool) error
	// SendProcessingFailure announces a match the pipeline could not process.
	SendProcessingFailure(matchID string, reason string, dryRun bool) error
}
