package archive

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cover-drive/internal/report"
)

// New creates a new MatchStore.
func New(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

// UpsertRawMatch inserts a new raw match or refreshes an existing one's raw
// document. Re-ingesting resets the processing status so the pipeline runs
// again on the new data.
func (s *store) UpsertRawMatch(id, filename string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	_, err := s.db.Exec(`
		INSERT INTO matches (id, filename, raw_json, processing_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			filename = excluded.filename,
			raw_json = excluded.raw_json,
			processing_status = excluded.processing_status,
			updated_at = excluded.updated_at;
	`, id, filename, string(raw), StatusNew, now, now)
	return err
}

// SaveReport stores the rendered report and the metadata the engine derived
// from the match record.
func (s *store) SaveReport(id string, doc report.Document, warningCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	teamsJSON, err := json.Marshal(doc.Teams)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		UPDATE matches
		SET teams_json = ?, match_date = ?, venue = ?, event = ?, report_text = ?, warning_count = ?, updated_at = ?
		WHERE id = ?
	`, string(teamsJSON), doc.Date, doc.Venue, doc.Event, doc.Text, warningCount, time.Now().Unix(), id)
	return err
}

// UpdateProcessingStatus transitions a match to a new state.
func (s *store) UpdateProcessingStatus(id string, status ProcessingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE matches SET processing_status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().Unix(), id)
	return err
}

// GetMatchesForProcessing retrieves all matches that are not yet in a
// completed state.
func (s *store) GetMatchesForProcessing() ([]*StoredMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(selectMatch+" WHERE processing_status != ?", StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMatches(rows)
}

// GetMatch retrieves a single match by ID, or nil when absent.
func (s *store) GetMatch(id string) (*StoredMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(selectMatch+" WHERE id = ?", id)
	m, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetAllMatches retrieves every archived match.
func (s *store) GetAllMatches() ([]*StoredMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(selectMatch + " ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMatches(rows)
}

// Clear wipes the archive.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		log.Error("Failed to clear match archive", "error", err)
	}
}

// ClearMatch removes a single match from the archive.
func (s *store) ClearMatch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM matches WHERE id = ?", id); err != nil {
		log.Error("Failed to clear match", "error", err, "matchID", id)
	}
}

const selectMatch = `
	SELECT id, filename, teams_json, match_date, venue, event, raw_json, report_text, warning_count, processing_status, created_at, updated_at
	FROM matches`

func scanMatches(rows *sql.Rows) ([]*StoredMatch, error) {
	var matches []*StoredMatch
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func scanMatch(scanner interface{ Scan(...any) error }) (*StoredMatch, error) {
	var m StoredMatch
	var teamsJSON, matchDate, venue, event, reportText sql.NullString
	var raw string

	err := scanner.Scan(
		&m.ID,
		&m.Filename,
		&teamsJSON,
		&matchDate,
		&venue,
		&event,
		&raw,
		&reportText,
		&m.WarningCount,
		&m.ProcessingStatus,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.RawJSON = []byte(raw)
	m.Date = matchDate.String
	m.Venue = venue.String
	m.Event = event.String
	m.ReportText = reportText.String
	if teamsJSON.Valid {
		if err := json.Unmarshal([]byte(teamsJSON.String), &m.Teams); err != nil {
			m.Teams = nil
		}
	}
	return &m, nil
}
