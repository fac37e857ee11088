package processor

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cover-drive/internal/archive"
	"github.com/mauv0809/cover-drive/internal/ingest"
	"github.com/mauv0809/cover-drive/internal/metrics"
	"github.com/mauv0809/cover-drive/internal/pubsub"
)

// New creates a new Processor.
func New(store Store, loader *ingest.Loader, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, topic string) *Processor {
	return &Processor{
		store:    store,
		loader:   loader,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
		topic:    topic,
	}
}

// ProcessMatches fetches matches that need processing and advances them through the state machine.
func (p *Processor) ProcessMatches(dryRun bool) {
	log.Info("Starting match processing...")
	matches, err := p.store.GetMatchesForProcessing()
	if err != nil {
		log.Error("Failed to get matches for processing", "error", err)
		return
	}

	if len(matches) == 0 {
		log.Info("No matches to process.")
		return
	}

	log.Info("Found matches to process", "count", len(matches))
	for _, match := range matches {
		startTime := time.Now()
		p.processMatch(match, dryRun)
		p.metrics.IncMatchesProcessed()
		p.metrics.ObserveProcessingDuration(time.Since(startTime).Seconds())
	}
	log.Info("Match processing finished.")
}

func (p *Processor) processMatch(match *archive.StoredMatch, dryRun bool) {
	log.Info("Processing match", "matchID", match.ID, "initial_status", match.ProcessingStatus)

	// The engine result is produced once and reused across state
	// transitions within this pass.
	var res *ingest.Result

	ensureResult := func() bool {
		if res != nil {
			return true
		}
		var err error
		res, err = p.loader.LoadMatch(match.Filename, match.RawJSON)
		if err != nil {
			log.Error("Match is unusable, marking completed", "matchID", match.ID, "error", err)
			if notifErr := p.notifier.SendProcessingFailure(match.ID, err.Error(), dryRun); notifErr != nil {
				log.Error("Failed to send failure notification", "error", notifErr, "matchID", match.ID)
			}
			p.updateStatus(match, archive.StatusCompleted, dryRun)
			return false
		}
		return true
	}

	for {
		currentState := match.ProcessingStatus
		log.Debug("Evaluating match state", "matchID", match.ID, "status", currentState)

		switch currentState {
		case archive.StatusNew:
			if !ensureResult() {
				return
			}
			warnings := res.Stats.Warnings()
			if len(warnings) > 0 {
				p.metrics.IncDeliveryWarnings(len(warnings))
			}
			if !dryRun {
				if err := p.store.SaveReport(match.ID, res.Document, len(warnings)); err != nil {
					log.Error("Failed to save report", "error", err, "matchID", match.ID)
					return
				}
			}
			p.metrics.IncReportsRendered()
			log.Info("Match report rendered", "matchID", match.ID, "warnings", len(warnings))
			p.updateStatus(match, archive.StatusRendered, dryRun)

		case archive.StatusRendered:
			if !ensureResult() {
				return
			}
			log.Info("Publishing report document", "matchID", match.ID, "topic", p.topic)
			if !dryRun {
				if err := p.pubsub.SendMessage(p.topic, res.Document); err != nil {
					p.metrics.IncPublishFailed()
					log.Error("Failed to publish report document", "error", err, "matchID", match.ID)
					return
				}
			}
			p.metrics.IncPublishSent()
			p.updateStatus(match, archive.StatusPublished, dryRun)

		case archive.StatusPublished:
			if !ensureResult() {
				return
			}
			log.Info("Sending match summary notification", "matchID", match.ID)
			if err := p.notifier.SendMatchSummary(res.Match, res.Stats, dryRun); err != nil {
				log.Error("Failed to send match summary", "error", err, "matchID", match.ID)
			}
			p.updateStatus(match, archive.StatusNotified, dryRun)

		case archive.StatusNotified:
			log.Info("Match summary notified. Marking match as complete.", "matchID", match.ID)
			p.updateStatus(match, archive.StatusCompleted, dryRun)

		case archive.StatusCompleted:
			log.Debug("Match is complete. No further processing needed.", "matchID", match.ID)
			return // End of the line for this match

		default:
			log.Warn("Unknown processing status", "status", currentState, "matchID", match.ID)
			return // Exit if status is unknown
		}

		// If the status hasn't changed, we're done with this match for now.
		if match.ProcessingStatus == currentState {
			log.Debug("Match state did not change. Finished processing for now.", "matchID", match.ID, "status", currentState)
			break
		}
	}
	log.Info("Finished processing match", "matchID", match.ID, "final_status", match.ProcessingStatus)
}

func (p *Processor) updateStatus(match *archive.StoredMatch, newStatus archive.ProcessingStatus, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would update match status", "matchID", match.ID, "from", match.ProcessingStatus, "to", newStatus)
		match.ProcessingStatus = newStatus // Update in-memory for the loop
		return
	}

	err := p.store.UpdateProcessingStatus(match.ID, newStatus)
	if err != nil {
		log.Error("Failed to update processing status", "error", err, "matchID", match.ID)
	} else {
		log.Debug("Successfully updated status", "matchID", match.ID, "from", match.ProcessingStatus, "to", newStatus)
		match.ProcessingStatus = newStatus // Keep the in-memory object in sync
	}
}
