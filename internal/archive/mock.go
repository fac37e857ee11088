package archive

import (
	"sync"

	"github.com/mauv0809/cover-drive/internal/report"
)

// Mock is a mock implementation of MatchStore for testing. It is safe for
// concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertRawMatchFunc          func(id, filename string, raw []byte) error
	SaveReportFunc              func(id string, doc report.Document, warningCount int) error
	UpdateProcessingStatusFunc  func(id string, status ProcessingStatus) error
	GetMatchesForProcessingFunc func() ([]*StoredMatch, error)
	GetMatchFunc                func(id string) (*StoredMatch, error)
	GetAllMatchesFunc           func() ([]*StoredMatch, error)

	// Call records
	UpsertRawMatchCalls []UpsertRawMatchCall
	SaveReportCalls     []SaveReportCall
	UpdateStatusCalls   []UpdateStatusCall
	ClearCalls          int
	ClearMatchCalls     []string
}

// UpsertRawMatchCall holds the arguments for a call to UpsertRawMatch.
type UpsertRawMatchCall struct {
	ID       string
	Filename string
	Raw      []byte
}

// SaveReportCall holds the arguments for a call to SaveReport.
type SaveReportCall struct {
	ID           string
	Doc          report.Document
	WarningCount int
}

// UpdateStatusCall holds the arguments for a call to UpdateProcessingStatus.
type UpdateStatusCall struct {
	ID     string
	Status ProcessingStatus
}

// NewMock creates a new mock MatchStore.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertRawMatchCalls = nil
	m.SaveReportCalls = nil
	m.UpdateStatusCalls = nil
	m.ClearCalls = 0
	m.ClearMatchCalls = nil
}

func (m *Mock) UpsertRawMatch(id, filename string, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertRawMatchCalls = append(m.UpsertRawMatchCalls, UpsertRawMatchCall{ID: id, Filename: filename, Raw: raw})
	if m.UpsertRawMatchFunc != nil {
		return m.UpsertRawMatchFunc(id, filename, raw)
	}
	return nil
}

func (m *Mock) SaveReport(id string, doc report.Document, warningCount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveReportCalls = append(m.SaveReportCalls, SaveReportCall{ID: id, Doc: doc, WarningCount: warningCount})
	if m.SaveReportFunc != nil {
		return m.SaveReportFunc(id, doc, warningCount)
	}
	return nil
}

func (m *Mock) UpdateProcessingStatus(id string, status ProcessingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateStatusCalls = append(m.UpdateStatusCalls, UpdateStatusCall{ID: id, Status: status})
	if m.UpdateProcessingStatusFunc != nil {
		return m.UpdateProcessingStatusFunc(id, status)
	}
	return nil
}

func (m *Mock) GetMatchesForProcessing() ([]*StoredMatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchesForProcessingFunc != nil {
		return m.GetMatchesForProcessingFunc()
	}
	return nil, nil
}

func (m *Mock) GetMatch(id string) (*StoredMatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(id)
	}
	return nil, nil
}

func (m *Mock) GetAllMatches() ([]*StoredMatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return nil, nil
}

func (m *Mock) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
}

func (m *Mock) ClearMatch(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearMatchCalls = append(m.ClearMatchCalls, id)
}
