package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mauv0809/cover-drive/internal/archive"
	"github.com/mauv0809/cover-drive/internal/cricket"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID != "" {
			log.Info("Received request to clear a specific match", "matchID", matchID)
			s.Store.ClearMatch(matchID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared match %s from store!", matchID)
		} else {
			log.Info("Received request to clear entire store")
			s.Store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
		}
	}
}

// IngestMatchHandler accepts one raw match document in the request body and
// archives it for processing. The document is validated up front so a
// malformed match is rejected with the offending field path.
func (s *Server) IngestMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST required", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if _, err := cricket.Parse(body); err != nil {
			var malformed *cricket.MalformedMatchError
			if errors.As(err, &malformed) {
				log.Warn("Rejected malformed match", "field", malformed.Field, "reason", malformed.Reason)
				http.Error(w, malformed.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		filename := r.URL.Query().Get("filename")
		if filename == "" {
			filename = uuid.NewString() + ".json"
		}
		matchID := strings.TrimSuffix(filename, filepath.Ext(filename))

		isDryRun := isDryRunFromContext(r)
		if !isDryRun {
			if err := s.Store.UpsertRawMatch(matchID, filename, body); err != nil {
				log.Error("Failed to archive match", "error", err, "matchID", matchID)
				http.Error(w, "Failed to archive match", http.StatusInternalServerError)
				return
			}
		}

		log.Info("Match archived for processing", "matchID", matchID, "dryRun", isDryRun)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Archived match %s", matchID)
	}
}

// ScanDirHandler archives every match file found in the configured data
// directory. Unreadable or malformed files are skipped; the scan continues.
func (s *Server) ScanDirHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting match directory scan", "dir", s.Cfg.MatchDataDir)
		s.Metrics.IncIngestRuns()
		isDryRun := isDryRunFromContext(r)

		entries, err := os.ReadDir(s.Cfg.MatchDataDir)
		if err != nil {
			log.Error("Failed to read match data dir", "error", err)
			http.Error(w, "Failed to read match data directory", http.StatusInternalServerError)
			return
		}

		archived := 0
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.Cfg.MatchDataDir, entry.Name()))
			if err != nil {
				log.Error("Skipping unreadable match file", "file", entry.Name(), "error", err)
				continue
			}
			if _, err := cricket.Parse(data); err != nil {
				log.Error("Skipping malformed match file", "file", entry.Name(), "error", err)
				continue
			}
			matchID := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			if !isDryRun {
				if err := s.Store.UpsertRawMatch(matchID, entry.Name(), data); err != nil {
					log.Error("Failed to archive match", "error", err, "matchID", matchID)
					continue
				}
			}
			archived++
		}

		log.Info("Match directory scan finished", "archived", archived)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Archived %d matches", archived)
	}
}

func (s *Server) ProcessMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)
		s.Processor.ProcessMatches(isDryRun)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Processing complete")
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.GetAllMatches()
		if err != nil {
			log.Error("Failed to list matches", "error", err)
			http.Error(w, "Failed to list matches", http.StatusInternalServerError)
			return
		}
		writeJSON(w, matches)
	}
}

// ReportHandler returns the rendered report text for one match.
func (s *Server) ReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID == "" {
			http.Error(w, "matchID query parameter required", http.StatusBadRequest)
			return
		}
		match, err := s.Store.GetMatch(matchID)
		if err != nil {
			log.Error("Failed to get match", "error", err, "matchID", matchID)
			http.Error(w, "Failed to get match", http.StatusInternalServerError)
			return
		}
		if match == nil {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		if match.ReportText == "" {
			http.Error(w, "Report not rendered yet", http.StatusConflict)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, match.ReportText)
	}
}

// SearchHandler fuzzy-matches archived matches by team name or match ID.
func (s *Server) SearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "q query parameter required", http.StatusBadRequest)
			return
		}
		matches, err := s.Store.GetAllMatches()
		if err != nil {
			log.Error("Failed to list matches for search", "error", err)
			http.Error(w, "Failed to search matches", http.StatusInternalServerError)
			return
		}

		var hits []*archive.StoredMatch
		for _, m := range matches {
			targets := append([]string{m.ID, m.Venue, m.Event}, m.Teams...)
			for _, target := range targets {
				if fuzzy.MatchNormalizedFold(query, target) {
					hits = append(hits, m)
					break
				}
			}
		}
		log.Info("Search complete", "query", query, "hits", len(hits))
		writeJSON(w, hits)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode JSON response", "error", err)
	}
}
