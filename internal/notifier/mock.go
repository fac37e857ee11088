package notifier

import (
	"sync"

	"github.com/mauv0809/cover-drive/internal/cricket"
	"github.com/mauv0809/cover-drive/internal/stats"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendMatchSummaryFunc      func(match *cricket.MatchRecord, summary *stats.MatchStats, dryRun bool) error
	SendProcessingFailureFunc func(matchID string, reason string, dryRun bool) error

	// Call records
	SendMatchSummaryCalls []struct {
		Match   *cricket.MatchRecord
		Summary *stats.MatchStats
	}
	SendProcessingFailureCalls []struct {
		MatchID string
		Reason  string
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchSummaryCalls = nil
	m.SendProcessingFailureCalls = nil
}

func (m *Mock) SendMatchSummary(match *cricket.MatchRecord, summary *stats.MatchStats, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchSummaryCalls = append(m.SendMatchSummaryCalls, struct {
		Match   *cricket.MatchRecord
		Summary *stats.MatchStats
	}{match, summary})
	if m.SendMatchSummaryFunc != nil {
		return m.SendMatchSummaryFunc(match, summary, dryRun)
	}
	return nil
}

func (m *Mock) SendProcessingFailure(matchID string, reason string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendProcessingFailureCalls = append(m.SendProcessingFailureCalls, struct {
		MatchID string
		Reason  string
	}{matchID, reason})
	if m.SendProcessingFailureFunc != nil {
		return m.SendProcessingFailureFunc(matchID, reason, dryRun)
	}
	return nil
}
