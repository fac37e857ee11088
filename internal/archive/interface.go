package archive

import "github.com/mauv0809/cover-drive/internal/report"

// MatchStore defines the interface for interacting with the match archive.
type MatchStore interface {
	UpsertRawMatch(id, filename string, raw []byte) error
	SaveReport(id string, doc report.Document, warningCount int) error
	UpdateProcessingStatus(id string, status ProcessingStatus) error
	GetMatchesForProcessing() ([]*StoredMatch, error)
	GetMatch(id string) (*StoredMatch, error)
	GetAllMatches() ([]*StoredMatch, error)
	Clear()
	ClearMatch(id string)
}
