package processor

import (
	"errors"
	"testing"

	"github.com/mauv0809/cover-drive/internal/archive"
	"github.com/mauv0809/cover-drive/internal/ingest"
	"github.com/mauv0809/cover-drive/internal/metrics"
	"github.com/mauv0809/cover-drive/internal/notifier"
	"github.com/mauv0809/cover-drive/internal/pubsub"
	"github.com/mauv0809/cover-drive/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rawMatch = []byte(`{
	"info": {"teams": ["Alpha", "Beta"], "dates": ["2024-03-01"]},
	"innings": [
		{"team": "Alpha", "overs": [{"over": 0, "deliveries": [
			{"batter": "A1", "bowler": "B1", "non_striker": "A2",
			 "runs": {"batter": 4, "extras": 0, "total": 4}}
		]}]}
	]
}`)

func newTestProcessor() (*Processor, *archive.Mock, *notifier.Mock, *metrics.Mock, *pubsub.MockPubSubClient) {
	store := archive.NewMock()
	notif := notifier.NewMock()
	metr := metrics.NewMock()
	ps := pubsub.NewMock("TEST")
	loader := ingest.New(stats.DefaultPhasePolicy)
	p := New(store, loader, notif, metr, ps, "match-reports")
	return p, store, notif, metr, ps
}

func TestProcessor_ProcessMatches(t *testing.T) {
	t.Run("new match runs the full pipeline to completion", func(t *testing.T) {
		p, store, notif, metr, ps := newTestProcessor()

		match := &archive.StoredMatch{
			ID:               "1001",
			Filename:         "1001.json",
			RawJSON:          rawMatch,
			ProcessingStatus: archive.StatusNew,
		}
		store.GetMatchesForProcessingFunc = func() ([]*archive.StoredMatch, error) {
			return []*archive.StoredMatch{match}, nil
		}

		p.ProcessMatches(false)

		// The report is saved once, with its warning count.
		require.Len(t, store.SaveReportCalls, 1)
		assert.Equal(t, "1001", store.SaveReportCalls[0].ID)
		assert.Equal(t, 0, store.SaveReportCalls[0].WarningCount)
		assert.Contains(t, store.SaveReportCalls[0].Doc.Text, "Match Analysis: Alpha vs Beta")

		// The document is published to the configured topic.
		require.Len(t, ps.SendMessageCalls, 1)
		assert.Equal(t, "match-reports", ps.SendMessageCalls[0].Topic)

		// The summary notification fires once.
		require.Len(t, notif.SendMatchSummaryCalls, 1)
		assert.Empty(t, notif.SendProcessingFailureCalls)

		// The match walks the whole state machine.
		var statuses []archive.ProcessingStatus
		for _, call := range store.UpdateStatusCalls {
			statuses = append(statuses, call.Status)
		}
		assert.Equal(t, []archive.ProcessingStatus{
			archive.StatusRendered,
			archive.StatusPublished,
			archive.StatusNotified,
			archive.StatusCompleted,
		}, statuses)
		assert.Equal(t, archive.StatusCompleted, match.ProcessingStatus)

		assert.Equal(t, 1, metr.MatchesProcessed())
		assert.Equal(t, 1, metr.ReportsRendered())
		assert.Equal(t, 1, metr.PublishSent())
	})

	t.Run("dry run touches neither the store nor the topic", func(t *testing.T) {
		p, store, notif, _, ps := newTestProcessor()

		match := &archive.StoredMatch{
			ID:               "1001",
			Filename:         "1001.json",
			RawJSON:          rawMatch,
			ProcessingStatus: archive.StatusNew,
		}
		store.GetMatchesForProcessingFunc = func() ([]*archive.StoredMatch, error) {
			return []*archive.StoredMatch{match}, nil
		}

		p.ProcessMatches(true)

		assert.Empty(t, store.SaveReportCalls)
		assert.Empty(t, store.UpdateStatusCalls)
		assert.Empty(t, ps.SendMessageCalls)
		// The notifier is still invoked, with dryRun passed through.
		require.Len(t, notif.SendMatchSummaryCalls, 1)
		// The in-memory state still advances so the loop terminates.
		assert.Equal(t, archive.StatusCompleted, match.ProcessingStatus)
	})

	t.Run("unusable match sends a failure notification and completes", func(t *testing.T) {
		p, store, notif, _, ps := newTestProcessor()

		match := &archive.StoredMatch{
			ID:               "bad",
			Filename:         "bad.json",
			RawJSON:          []byte(`{"info": {}}`),
			ProcessingStatus: archive.StatusNew,
		}
		store.GetMatchesForProcessingFunc = func() ([]*archive.StoredMatch, error) {
			return []*archive.StoredMatch{match}, nil
		}

		p.ProcessMatches(false)

		assert.Empty(t, store.SaveReportCalls)
		assert.Empty(t, ps.SendMessageCalls)
		require.Len(t, notif.SendProcessingFailureCalls, 1)
		assert.Equal(t, "bad", notif.SendProcessingFailureCalls[0].MatchID)

		require.Len(t, store.UpdateStatusCalls, 1)
		assert.Equal(t, archive.StatusCompleted, store.UpdateStatusCalls[0].Status)
	})

	t.Run("publish failure halts the match at rendered", func(t *testing.T) {
		p, store, _, metr, ps := newTestProcessor()

		match := &archive.StoredMatch{
			ID:               "1001",
			Filename:         "1001.json",
			RawJSON:          rawMatch,
			ProcessingStatus: archive.StatusNew,
		}
		store.GetMatchesForProcessingFunc = func() ([]*archive.StoredMatch, error) {
			return []*archive.StoredMatch{match}, nil
		}
		ps.SendMessageFunc = func(topic string, data any) error {
			return errors.New("broker down")
		}

		p.ProcessMatches(false)

		assert.Equal(t, archive.StatusRendered, match.ProcessingStatus)
		assert.Equal(t, 1, metr.PublishFailed())
		assert.Equal(t, 0, metr.PublishSent())
	})

	t.Run("resumes a match left at published", func(t *testing.T) {
		p, store, notif, _, ps := newTestProcessor()

		match := &archive.StoredMatch{
			ID:               "1001",
			Filename:         "1001.json",
			RawJSON:          rawMatch,
			ProcessingStatus: archive.StatusPublished,
		}
		store.GetMatchesForProcessingFunc = func() ([]*archive.StoredMatch, error) {
			return []*archive.StoredMatch{match}, nil
		}

		p.ProcessMatches(false)

		// The earlier stages are not repeated.
		assert.Empty(t, store.SaveReportCalls)
		assert.Empty(t, ps.SendMessageCalls)
		require.Len(t, notif.SendMatchSummaryCalls, 1)
		assert.Equal(t, archive.StatusCompleted, match.ProcessingStatus)
	})

	t.Run("warning count flows into the saved report and metrics", func(t *testing.T) {
		p, store, _, metr, _ := newTestProcessor()

		// Roster present but the batter is unlisted.
		raw := []byte(`{
			"info": {"teams": ["Alpha", "Beta"],
			         "players": {"Alpha": ["A1"], "Beta": ["B1"]}},
			"innings": [
				{"team": "Alpha", "overs": [{"over": 0, "deliveries": [
					{"batter": "Ghost", "bowler": "B1", "non_striker": "A1",
					 "runs": {"batter": 0, "extras": 0, "total": 0}}
				]}]}
			]
		}`)
		match := &archive.StoredMatch{
			ID:               "1001",
			Filename:         "1001.json",
			RawJSON:          raw,
			ProcessingStatus: archive.StatusNew,
		}
		store.GetMatchesForProcessingFunc = func() ([]*archive.StoredMatch, error) {
			return []*archive.StoredMatch{match}, nil
		}

		p.ProcessMatches(false)

		require.Len(t, store.SaveReportCalls, 1)
		assert.Equal(t, 1, store.SaveReportCalls[0].WarningCount)
		assert.Equal(t, 1, metr.DeliveryWarnings())
	})

	t.Run("no matches is a no-op", func(t *testing.T) {
		p, store, notif, metr, _ := newTestProcessor()
		store.GetMatchesForProcessingFunc = func() ([]*archive.StoredMatch, error) {
			return nil, nil
		}

		p.ProcessMatches(false)

		assert.Empty(t, notif.SendMatchSummaryCalls)
		assert.Equal(t, 0, metr.MatchesProcessed())
	})
}
