package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mauv0809/cover-drive/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validMatch = []byte(`{
	"info": {
		"teams": ["Alpha", "Beta"],
		"dates": ["2024-03-01"],
		"venue": "Lord's"
	},
	"innings": [
		{
			"team": "Alpha",
			"overs": [
				{
					"over": 0,
					"deliveries": [
						{"batter": "A1", "bowler": "B1", "non_striker": "A2",
						 "runs": {"batter": 4, "extras": 0, "total": 4}}
					]
				}
			]
		}
	]
}`)

func TestLoader_LoadMatch(t *testing.T) {
	t.Run("runs the full pipeline", func(t *testing.T) {
		l := New(stats.DefaultPhasePolicy)

		res, err := l.LoadMatch("1001.json", validMatch)
		require.NoError(t, err)

		assert.Equal(t, "1001", res.Document.MatchID)
		assert.Equal(t, "1001.json", res.Document.Filename)
		assert.Equal(t, []string{"Alpha", "Beta"}, res.Document.Teams)
		assert.Contains(t, res.Document.Text, "Match Analysis: Alpha vs Beta")
		assert.Equal(t, 4, res.Stats.TotalRuns)
	})

	t.Run("generates an ID when the filename is empty", func(t *testing.T) {
		l := New(stats.DefaultPhasePolicy)

		res, err := l.LoadMatch("", validMatch)
		require.NoError(t, err)
		assert.NotEmpty(t, res.Document.MatchID)
	})

	t.Run("propagates parse failures", func(t *testing.T) {
		l := New(stats.DefaultPhasePolicy)

		_, err := l.LoadMatch("bad.json", []byte(`{"info": {}}`))
		assert.Error(t, err)
	})
}

func TestLoader_ProcessDir(t *testing.T) {
	t.Run("loads every json file and skips the broken ones", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "1001.json"), validMatch, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{`), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a match"), 0o644))

		l := New(stats.DefaultPhasePolicy)
		results, err := l.ProcessDir(dir)
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, "1001", results[0].Document.MatchID)
	})

	t.Run("fails on a missing directory", func(t *testing.T) {
		l := New(stats.DefaultPhasePolicy)
		_, err := l.ProcessDir(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
}
