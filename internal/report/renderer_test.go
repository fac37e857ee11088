package report

import (
	"strings"
	"testing"

	"github.com/mauv0809/cover-drive/internal/cricket"
	"github.com/mauv0809/cover-drive/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatch() *cricket.MatchRecord {
	return &cricket.MatchRecord{
		Teams:     [2]string{"Alpha", "Beta"},
		Date:      "2024-03-01",
		Venue:     "Lord's",
		Event:     "Test Series",
		MatchType: "T20",
		Gender:    "male",
		Season:    "2023/24",
		Toss:      &cricket.Toss{Winner: "Alpha", Decision: "bat"},
		Officials: cricket.Officials{Umpires: []string{"U1", "U2"}},
		Players:   map[string][]string{"Alpha": {"A1", "A2"}, "Beta": {"B1"}},
		Outcome:   &cricket.Outcome{Winner: "Alpha", By: map[string]int{"runs": 20, "wickets": 0}},
	}
}

func sampleStats() *stats.MatchStats {
	inn := &stats.InningsStats{
		Team:       "Alpha",
		Runs:       52,
		Wickets:    1,
		Extras:     2,
		Fours:      3,
		Sixes:      2,
		ValidBalls: 24,
		RunRate:    13,
		Overs: []stats.OverSummary{
			{Over: 0, Runs: 12, Extras: 1, Fours: 1, Sixes: 1, CumulativeRuns: 12, CumulativeWickets: 0, OverRunRate: 12, MatchRunRate: 12},
			{Over: 1, Runs: 40, Extras: 1, Wickets: 1, Fours: 2, Sixes: 1, CumulativeRuns: 52, CumulativeWickets: 1, OverRunRate: 40, MatchRunRate: 26},
		},
		Phases: map[stats.Phase]*stats.PhaseSplit{
			stats.PhasePowerplay: {Phase: stats.PhasePowerplay, Overs: 2, Runs: 52, Wickets: 1, Fours: 3, Sixes: 2, ValidBalls: 24, RunRate: 13},
		},
		Partnerships: []stats.Partnership{
			{
				Batters: [2]string{"A1", "A2"}, StartScore: 0, EndScore: 52,
				Runs: 52, Balls: 24, Fours: 3, Sixes: 2, Dots: 5,
				VsBowlers:   map[string]*stats.PairCounters{"B1": {Runs: 52, Balls: 24, Fours: 3, Sixes: 2, Dots: 5}},
				BowlerOrder: []string{"B1"},
			},
		},
		Batters: map[string]*stats.BatterStat{
			"A1": {Name: "A1", Runs: 50, Balls: 24, Fours: 3, Sixes: 2, Dismissals: 1, StrikeRate: 208.33},
		},
		Bowlers: map[string]*stats.BowlerStat{
			"B1": {Name: "B1", Balls: 24, Overs: 4, Maidens: 1, Runs: 52, Wickets: 1, Economy: 13},
		},
		Fielders: map[string]*stats.FielderStat{
			"F": {Name: "F", Catches: 1, CatchesByPosition: map[string]int{"cover": 1}},
		},
		Matchups: map[stats.MatchupKey]*stats.MatchupStat{
			{Batter: "A1", Bowler: "B1"}: {Runs: 50, Balls: 24, Fours: 3, Sixes: 2, Dots: 5, Dismissals: 1, StrikeRate: 208.33},
		},
		BatterOrder:  []string{"A1"},
		BowlerOrder:  []string{"B1"},
		FielderOrder: []string{"F"},
		MatchupOrder: []stats.MatchupKey{{Batter: "A1", Bowler: "B1"}},
	}
	return &stats.MatchStats{
		Innings:      []*stats.InningsStats{inn},
		TotalRuns:    52,
		TotalWickets: 1,
		TotalFours:   3,
		TotalSixes:   2,
		TotalExtras:  2,
		TotalBalls:   26,
	}
}

func TestRender(t *testing.T) {
	text := Render(sampleMatch(), sampleStats())

	t.Run("header", func(t *testing.T) {
		assert.Contains(t, text, "Match Analysis: Alpha vs Beta")
		assert.Contains(t, text, "Date: 2024-03-01")
		assert.Contains(t, text, "Venue: Lord's")
		assert.Contains(t, text, "Season: 2023/24")
	})

	t.Run("playing XI and officials", func(t *testing.T) {
		assert.Contains(t, text, "Alpha Playing XI:")
		assert.Contains(t, text, "- A1")
		assert.Contains(t, text, "Toss: Alpha won and chose to bat")
		assert.Contains(t, text, "Umpires: U1, U2")
	})

	t.Run("over by over lines carry the aggregated numbers", func(t *testing.T) {
		assert.Contains(t, text, "Over 1: 12 runs (1 extras), 0 wickets, 1 fours, 1 sixes | Score: 12/0 (Over RR: 12.00, Match RR: 12.00)")
		assert.Contains(t, text, "Over 2: 40 runs (1 extras), 1 wickets, 2 fours, 1 sixes | Score: 52/1 (Over RR: 40.00, Match RR: 26.00)")
	})

	t.Run("innings summary and phases", func(t *testing.T) {
		assert.Contains(t, text, "Innings 1: Alpha")
		assert.Contains(t, text, "Total Score: 52/1")
		assert.Contains(t, text, "Run Rate: 13.00")
		assert.Contains(t, text, "Powerplay Analysis (2 overs):")
		assert.NotContains(t, text, "Middle Overs Analysis")
	})

	t.Run("partnership with breakdown", func(t *testing.T) {
		assert.Contains(t, text, "1. A1 & A2")
		assert.Contains(t, text, "Runs: 52 (24 balls, RR: 13.00)")
		// 52 >= the breakdown floor, so the per-bowler lines appear.
		assert.Contains(t, text, "vs Bowlers:")
		assert.Contains(t, text, "B1: 52/24 balls")
	})

	t.Run("matchup shows dismissal count", func(t *testing.T) {
		assert.Contains(t, text, "A1 against:")
		assert.Contains(t, text, "Dismissed 1 time(s)")
	})

	t.Run("batting and bowling tables", func(t *testing.T) {
		assert.Contains(t, text, "A1: 50 runs (24 balls, 3 fours, 2 sixes, SR: 208.33)")
		assert.Contains(t, text, "B1: 1/52 (4 overs, 1 maidens, Econ: 13.00)")
		assert.Contains(t, text, "Wicket Analysis:")
		assert.Contains(t, text, "B1: 1 (100.0%)")
	})

	t.Run("fielding", func(t *testing.T) {
		assert.Contains(t, text, "Fielding Analysis:")
		assert.Contains(t, text, "F: 1 catch (1 at cover)")
	})

	t.Run("match summary and result", func(t *testing.T) {
		assert.Contains(t, text, "Total Runs Scored: 52")
		assert.Contains(t, text, "Total Boundaries: 3 fours, 2 sixes")
		assert.Contains(t, text, "Result: Alpha won")
		// Margin keys render in sorted order.
		assert.Contains(t, text, "Margin: by 20 runs, by 0 wickets")
	})
}

func TestRender_OmitsMissingSections(t *testing.T) {
	match := &cricket.MatchRecord{
		Teams:     [2]string{cricket.Unknown, cricket.Unknown},
		Date:      cricket.Unknown,
		Venue:     cricket.Unknown,
		Event:     cricket.Unknown,
		MatchType: cricket.Unknown,
		Gender:    cricket.Unknown,
		Season:    cricket.Unknown,
	}
	ms := &stats.MatchStats{Innings: []*stats.InningsStats{{Team: cricket.Unknown}}}

	text := Render(match, ms)

	assert.NotContains(t, text, "Playing XI")
	assert.NotContains(t, text, "Toss:")
	assert.NotContains(t, text, "Umpires:")
	assert.NotContains(t, text, "Over-by-Over")
	assert.NotContains(t, text, "Partnership Analysis")
	assert.NotContains(t, text, "Fielding Analysis")
	assert.NotContains(t, text, "Result:")
	assert.Contains(t, text, "Match Summary:")
}

func TestRender_SmallPartnershipSkipsBreakdown(t *testing.T) {
	ms := sampleStats()
	p := &ms.Innings[0].Partnerships[0]
	p.Runs = 10
	ms.Innings[0].Matchups = nil
	ms.Innings[0].MatchupOrder = nil

	text := Render(sampleMatch(), ms)
	assert.NotContains(t, text, "vs Bowlers:")
}

func TestRender_DataWarnings(t *testing.T) {
	ms := sampleStats()
	ms.Innings[0].Warnings = []stats.DeliveryWarning{
		{Innings: 0, Over: 3, Ball: 2, Field: "batter", Message: `player "Ghost" not in either team's player list`},
	}

	text := Render(sampleMatch(), ms)
	require.Contains(t, text, "Data Warnings:")
	assert.Contains(t, text, `- innings 0 over 3 ball 2: batter: player "Ghost" not in either team's player list`)
}

func TestFormatOvers(t *testing.T) {
	assert.Equal(t, "4", formatOvers(24))
	assert.Equal(t, "3.5", formatOvers(23))
	assert.Equal(t, "0", formatOvers(0))
	assert.Equal(t, "0.1", formatOvers(1))
}

func TestNewDocument(t *testing.T) {
	match := sampleMatch()
	doc := NewDocument("1001.json", "1001", match, "report text")

	assert.Equal(t, "1001.json", doc.Filename)
	assert.Equal(t, "1001", doc.MatchID)
	assert.Equal(t, []string{"Alpha", "Beta"}, doc.Teams)
	assert.Equal(t, "Lord's", doc.Venue)
	assert.True(t, strings.HasPrefix(doc.Text, "report"))
}
