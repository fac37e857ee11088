package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/cover-drive/internal/cricket"
	"github.com/mauv0809/cover-drive/internal/report"
	"github.com/mauv0809/cover-drive/internal/stats"
)

// Result is one match run through the full parse → aggregate → render
// pipeline.
type Result struct {
	Document report.Document
	Match    *cricket.MatchRecord
	Stats    *stats.MatchStats
}

// Loader batch-loads raw match files through the engine.
type Loader struct {
	policy stats.PhasePolicy
}

// New creates a Loader with the given phase policy.
func New(policy stats.PhasePolicy) *Loader {
	return &Loader{policy: policy}
}

// LoadMatchFile runs one match JSON file end to end.
func (l *Loader) LoadMatchFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read match file: %w", err)
	}
	return l.LoadMatch(filepath.Base(path), data)
}

// LoadMatch runs one raw match document end to end. The match ID is the
// filename stem; a missing filename falls back to a generated UUID.
func (l *Loader) LoadMatch(filename string, data []byte) (*Result, error) {
	match, err := cricket.Parse(data)
	if err != nil {
		return nil, err
	}

	matchStats, err := stats.Aggregate(match, l.policy)
	if err != nil {
		return nil, err
	}
	for _, w := range matchStats.Warnings() {
		log.Warn("delivery warning", "match", filename, "warning", w.String())
	}

	matchID := strings.TrimSuffix(filename, filepath.Ext(filename))
	if matchID == "" {
		matchID = uuid.NewString()
	}

	text := report.Render(match, matchStats)
	return &Result{
		Document: report.NewDocument(filename, matchID, match, text),
		Match:    match,
		Stats:    matchStats,
	}, nil
}

// ProcessDir runs every *.json match file in dir through the engine. A file
// that fails to parse is logged and skipped; the rest of the batch
// continues.
func (l *Loader) ProcessDir(dir string) ([]*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read match dir: %w", err)
	}

	var results []*Result
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		res, err := l.LoadMatchFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Error("skipping match file", "file", entry.Name(), "error", err)
			continue
		}
		results = append(results, res)
	}
	log.Info("processed match directory", "dir", dir, "matches", len(results))
	return results, nil
}
