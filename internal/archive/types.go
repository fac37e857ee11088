package archive

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the match archive.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// ProcessingStatus defines the internal processing state of a stored match.
type ProcessingStatus string

const (
	StatusNew       ProcessingStatus = "NEW"
	StatusRendered  ProcessingStatus = "RENDERED"
	StatusPublished ProcessingStatus = "PUBLISHED"
	StatusNotified  ProcessingStatus = "NOTIFIED"
	StatusCompleted ProcessingStatus = "COMPLETED"
)

// StoredMatch is one archived match: the raw event log it arrived as, the
// rendered report once the engine has run, and where it is in the pipeline.
type StoredMatch struct {
	ID               string           `json:"id"`
	Filename         string           `json:"filename"`
	Teams            []string         `json:"teams"`
	Date             string           `json:"date"`
	Venue            string           `json:"venue"`
	Event            string           `json:"event"`
	RawJSON          []byte           `json:"-"`
	ReportText       string           `json:"-"`
	WarningCount     int              `json:"warning_count"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	CreatedAt        int64            `json:"created_at"`
	UpdatedAt        int64            `json:"updated_at"`
}
