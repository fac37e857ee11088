package stats

import "fmt"

// Phase is a fixed segment of an innings used for aggregate comparison.
type Phase string

const (
	PhasePowerplay Phase = "powerplay"
	PhaseMiddle    Phase = "middle"
	PhaseDeath     Phase = "death"
)

// PhasePolicy maps a 0-indexed over number to its phase. The boundaries are
// format-dependent (the defaults fit a 20-over innings), so they are carried
// as configuration rather than constants.
type PhasePolicy struct {
	// PowerplayOvers is the number of overs in the powerplay (overs
	// [0, PowerplayOvers) are powerplay).
	PowerplayOvers int
	// MiddleOvers is the first over of the death phase (overs
	// [PowerplayOvers, MiddleOvers) are middle, the rest death).
	MiddleOvers int
}

// DefaultPhasePolicy is the 20-over split: powerplay 0-5, middle 6-15,
// death 16+.
var DefaultPhasePolicy = PhasePolicy{PowerplayOvers: 6, MiddleOvers: 16}

// Classify returns the phase bucket for a 0-indexed over number.
func (p PhasePolicy) Classify(over int) Phase {
	switch {
	case over < p.PowerplayOvers:
		return PhasePowerplay
	case over < p.MiddleOvers:
		return PhaseMiddle
	default:
		return PhaseDeath
	}
}

// MatchupKey identifies one batter/bowler pairing. A single cell serves both
// the batter-vs-bowler and the bowler-vs-batter view, so the two tables can
// never drift apart.
type MatchupKey struct {
	Batter string
	Bowler string
}

// MatchupStat holds the head-to-head counters for one batter/bowler pair.
type MatchupStat struct {
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	Dots       int
	Dismissals int
	StrikeRate float64
}

// BatterStat is the running batting tally for one player in one innings.
type BatterStat struct {
	Name       string
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	Dots       int
	Dismissals int
	StrikeRate float64
}

// BowlerStat is the running bowling tally for one player in one innings.
// Overs is fractional when the bowler did not complete their last over
// (completed overs + balls/6).
type BowlerStat struct {
	Name    string
	Balls   int
	Overs   float64
	Maidens int
	Runs    int
	Wickets int
	Economy float64
}

// FielderStat credits catches, stumpings and run-outs, each also broken
// down by fielding position.
type FielderStat struct {
	Name              string
	Catches           int
	Stumpings         int
	RunOuts           int
	CatchesByPosition map[string]int
	RunOutsByPosition map[string]int
}

// PairCounters is the per-bowler breakdown inside a partnership. Runs here
// are total runs (extras included), matching how a partnership accumulates.
type PairCounters struct {
	Runs  int
	Balls int
	Fours int
	Sixes int
	Dots  int
}

// Partnership is the contribution of one pair of batters while both were at
// the crease. It closes when a wicket falls or the innings ends.
type Partnership struct {
	Batters    [2]string
	StartScore int
	EndScore   int
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	Dots       int
	VsBowlers  map[string]*PairCounters
	// BowlerOrder preserves first-appearance order for rendering.
	BowlerOrder []string
}

// OverSummary is the finalized record of one over, including the cumulative
// score after it.
type OverSummary struct {
	Over              int // 0-indexed
	Runs              int
	Wickets           int
	Fours             int
	Sixes             int
	Extras            int
	Dots              int
	Balls             int
	ValidBalls        int
	CumulativeRuns    int
	CumulativeWickets int
	OverRunRate       float64
	MatchRunRate      float64
}

// PhaseSplit aggregates finalized OverSummary records for one phase bucket.
// It is never re-derived from raw deliveries.
type PhaseSplit struct {
	Phase      Phase
	Overs      int
	Runs       int
	Wickets    int
	Fours      int
	Sixes      int
	Extras     int
	Dots       int
	ValidBalls int
	RunRate    float64
}

// DeliveryWarning is a non-fatal anomaly encountered while aggregating.
// Warnings are attached to the innings summary and processing continues.
type DeliveryWarning struct {
	Innings int
	Over    int
	Ball    int
	Field   string
	Message string
}

func (w DeliveryWarning) String() string {
	return fmt.Sprintf("innings %d over %d ball %d: %s: %s", w.Innings, w.Over, w.Ball, w.Field, w.Message)
}

// InningsStats is everything aggregated from one innings' delivery stream.
type InningsStats struct {
	Team       string
	Runs       int
	Wickets    int
	Extras     int
	Fours      int
	Sixes      int
	Dots       int
	Balls      int
	ValidBalls int
	RunRate    float64

	Overs        []OverSummary
	Phases       map[Phase]*PhaseSplit
	Partnerships []Partnership

	Batters  map[string]*BatterStat
	Bowlers  map[string]*BowlerStat
	Fielders map[string]*FielderStat
	Matchups map[MatchupKey]*MatchupStat

	// First-appearance orders, so rendering is deterministic.
	BatterOrder  []string
	BowlerOrder  []string
	FielderOrder []string
	MatchupOrder []MatchupKey

	Warnings []DeliveryWarning
}

// MatchStats is the full multi-level statistical summary for one match.
type MatchStats struct {
	Innings []*InningsStats

	TotalRuns    int
	TotalWickets int
	TotalFours   int
	TotalSixes   int
	TotalExtras  int
	TotalBalls   int
}

// Warnings flattens the per-innings warning lists.
func (m *MatchStats) Warnings() []DeliveryWarning {
	var out []DeliveryWarning
	for _, inn := range m.Innings {
		out = append(out, inn.Warnings...)
	}
	return out
}
