package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mauv0809/cover-drive/internal/cricket"
	"github.com/mauv0809/cover-drive/internal/stats"
)

// partnershipBreakdownFloor is the minimum partnership size (runs) that
// earns a per-bowler breakdown in the rendered report.
const partnershipBreakdownFloor = 20

// Render formats the aggregated statistics into the ordered text report.
// It is pure formatting: nothing is recomputed, and missing optional
// sections (no toss, no officials, no result) are simply omitted.
func Render(match *cricket.MatchRecord, ms *stats.MatchStats) string {
	var b strings.Builder

	renderHeader(&b, match)
	renderPlayingXI(&b, match)
	renderTossAndOfficials(&b, match)

	for i, inn := range ms.Innings {
		renderInnings(&b, i+1, inn)
	}

	renderMatchSummary(&b, ms)
	renderResult(&b, match)

	return strings.TrimRight(b.String(), "\n")
}

func renderHeader(b *strings.Builder, match *cricket.MatchRecord) {
	line(b, "Match Analysis: %s vs %s", match.Teams[0], match.Teams[1])
	line(b, "Date: %s", match.Date)
	line(b, "Venue: %s", match.Venue)
	line(b, "Event: %s", match.Event)
	line(b, "Match Type: %s", match.MatchType)
	line(b, "Gender: %s", match.Gender)
	line(b, "Season: %s", match.Season)
	line(b, "")
}

func renderPlayingXI(b *strings.Builder, match *cricket.MatchRecord) {
	if len(match.Players) == 0 {
		return
	}
	for _, team := range match.Teams {
		players, ok := match.Players[team]
		if !ok {
			continue
		}
		line(b, "%s Playing XI:", team)
		for _, p := range players {
			line(b, "- %s", p)
		}
		line(b, "")
	}
}

func renderTossAndOfficials(b *strings.Builder, match *cricket.MatchRecord) {
	wrote := false
	if match.Toss != nil {
		line(b, "Toss: %s won and chose to %s", match.Toss.Winner, match.Toss.Decision)
		wrote = true
	}
	if len(match.Officials.Umpires) > 0 {
		line(b, "Umpires: %s", strings.Join(match.Officials.Umpires, ", "))
		wrote = true
	}
	if len(match.Officials.MatchReferees) > 0 {
		line(b, "Match Referees: %s", strings.Join(match.Officials.MatchReferees, ", "))
		wrote = true
	}
	if wrote {
		line(b, "")
	}
}

func renderInnings(b *strings.Builder, num int, inn *stats.InningsStats) {
	line(b, "Innings %d: %s", num, inn.Team)
	line(b, "")
	line(b, "Innings Summary for %s:", inn.Team)
	line(b, "Total Score: %d/%d", inn.Runs, inn.Wickets)
	line(b, "Run Rate: %.2f", inn.RunRate)

	renderOvers(b, inn)
	renderPhases(b, inn)
	renderPartnerships(b, inn)
	renderMatchups(b, inn)
	renderBatting(b, inn)
	renderBowling(b, inn)
	renderWicketShare(b, inn)
	renderFielding(b, inn)
	renderWarnings(b, inn)
	line(b, "")
}

func renderOvers(b *strings.Builder, inn *stats.InningsStats) {
	if len(inn.Overs) == 0 {
		return
	}
	line(b, "")
	line(b, "Detailed Over-by-Over Analysis:")
	for _, o := range inn.Overs {
		line(b, "Over %d: %d runs (%d extras), %d wickets, %d fours, %d sixes | Score: %d/%d (Over RR: %.2f, Match RR: %.2f)",
			o.Over+1, o.Runs, o.Extras, o.Wickets, o.Fours, o.Sixes,
			o.CumulativeRuns, o.CumulativeWickets, o.OverRunRate, o.MatchRunRate)
	}
}

func renderPhases(b *strings.Builder, inn *stats.InningsStats) {
	for _, phase := range []struct {
		key   stats.Phase
		title string
	}{
		{stats.PhasePowerplay, "Powerplay"},
		{stats.PhaseMiddle, "Middle Overs"},
		{stats.PhaseDeath, "Death Overs"},
	} {
		split, ok := inn.Phases[phase.key]
		if !ok {
			continue
		}
		line(b, "")
		line(b, "%s Analysis (%d overs):", phase.title, split.Overs)
		line(b, "Runs: %d, Wickets: %d, Run Rate: %.2f, Boundaries: %d fours, %d sixes",
			split.Runs, split.Wickets, split.RunRate, split.Fours, split.Sixes)
	}
}

func renderPartnerships(b *strings.Builder, inn *stats.InningsStats) {
	if len(inn.Partnerships) == 0 {
		return
	}
	line(b, "")
	line(b, "Partnership Analysis:")
	for i, p := range inn.Partnerships {
		line(b, "")
		line(b, "%d. %s & %s", i+1, p.Batters[0], p.Batters[1])
		line(b, "Runs: %d (%d balls, RR: %.2f)", p.Runs, p.Balls, rate6(p.Runs, p.Balls))
		line(b, "Boundaries: %d fours, %d sixes (%.1f%% boundary rate)",
			p.Fours, p.Sixes, pct(p.Fours+p.Sixes, p.Balls))
		line(b, "Dot Balls: %d (%.1f%%)", p.Dots, pct(p.Dots, p.Balls))

		if p.Runs < partnershipBreakdownFloor {
			continue
		}
		line(b, "vs Bowlers:")
		for _, bowler := range p.BowlerOrder {
			c := p.VsBowlers[bowler]
			if c.Balls == 0 {
				continue
			}
			line(b, "  %s: %d/%d balls (RR: %.2f, Boundaries: %dx4 %dx6, Dots: %d)",
				bowler, c.Runs, c.Balls, rate6(c.Runs, c.Balls), c.Fours, c.Sixes, c.Dots)
		}
	}
}

func renderMatchups(b *strings.Builder, inn *stats.InningsStats) {
	if len(inn.MatchupOrder) == 0 {
		return
	}
	line(b, "")
	line(b, "Batter vs Bowler Analysis:")
	for _, batter := range inn.BatterOrder {
		var keys []stats.MatchupKey
		for _, key := range inn.MatchupOrder {
			if key.Batter == batter && inn.Matchups[key].Balls > 0 {
				keys = append(keys, key)
			}
		}
		if len(keys) == 0 {
			continue
		}
		line(b, "")
		line(b, "%s against:", batter)
		for _, key := range keys {
			m := inn.Matchups[key]
			extra := ""
			if m.Dismissals > 0 {
				extra = fmt.Sprintf(", Dismissed %d time(s)", m.Dismissals)
			}
			line(b, "  %s: %d runs (%d balls, SR: %.1f, Boundaries: %dx4 %dx6 (%.1f%%), Dots: %d (%.1f%%)%s)",
				key.Bowler, m.Runs, m.Balls, m.StrikeRate,
				m.Fours, m.Sixes, pct(m.Fours+m.Sixes, m.Balls),
				m.Dots, pct(m.Dots, m.Balls), extra)
		}
	}
}

func renderBatting(b *strings.Builder, inn *stats.InningsStats) {
	if len(inn.BatterOrder) == 0 {
		return
	}
	line(b, "")
	line(b, "Batting Statistics:")
	for _, name := range inn.BatterOrder {
		s := inn.Batters[name]
		line(b, "%s: %d runs (%d balls, %d fours, %d sixes, SR: %.2f)",
			name, s.Runs, s.Balls, s.Fours, s.Sixes, s.StrikeRate)
	}
}

func renderBowling(b *strings.Builder, inn *stats.InningsStats) {
	if len(inn.BowlerOrder) == 0 {
		return
	}
	line(b, "")
	line(b, "Bowling Statistics:")
	for _, name := range inn.BowlerOrder {
		s := inn.Bowlers[name]
		line(b, "%s: %d/%d (%s overs, %d maidens, Econ: %.2f)",
			name, s.Wickets, s.Runs, formatOvers(s.Balls), s.Maidens, s.Economy)
	}
}

func renderWicketShare(b *strings.Builder, inn *stats.InningsStats) {
	total := 0
	for _, name := range inn.BowlerOrder {
		total += inn.Bowlers[name].Wickets
	}
	if total == 0 {
		return
	}
	line(b, "")
	line(b, "Wicket Analysis:")
	for _, name := range inn.BowlerOrder {
		s := inn.Bowlers[name]
		if s.Wickets == 0 {
			continue
		}
		line(b, "%s: %d (%.1f%%)", name, s.Wickets, pct(s.Wickets, total))
	}
}

func renderFielding(b *strings.Builder, inn *stats.InningsStats) {
	any := false
	for _, name := range inn.FielderOrder {
		f := inn.Fielders[name]
		if f.Catches+f.Stumpings+f.RunOuts > 0 {
			any = true
			break
		}
	}
	if !any {
		return
	}
	line(b, "")
	line(b, "Fielding Analysis:")
	for _, name := range inn.FielderOrder {
		f := inn.Fielders[name]
		if f.Catches+f.Stumpings+f.RunOuts == 0 {
			continue
		}
		var parts []string
		if f.Catches > 0 {
			var details []string
			for _, pos := range sortedKeys(f.CatchesByPosition) {
				details = append(details, fmt.Sprintf("%d at %s", f.CatchesByPosition[pos], pos))
			}
			parts = append(parts, fmt.Sprintf("%d %s (%s)",
				f.Catches, plural(f.Catches, "catch", "catches"), strings.Join(details, ", ")))
		}
		if f.Stumpings > 0 {
			parts = append(parts, fmt.Sprintf("%d %s",
				f.Stumpings, plural(f.Stumpings, "stumping", "stumpings")))
		}
		if f.RunOuts > 0 {
			var details []string
			for _, pos := range sortedKeys(f.RunOutsByPosition) {
				details = append(details, fmt.Sprintf("%d from %s", f.RunOutsByPosition[pos], pos))
			}
			parts = append(parts, fmt.Sprintf("%d %s (%s)",
				f.RunOuts, plural(f.RunOuts, "run out", "run outs"), strings.Join(details, ", ")))
		}
		line(b, "%s: %s", name, strings.Join(parts, ", "))
	}
}

func renderWarnings(b *strings.Builder, inn *stats.InningsStats) {
	if len(inn.Warnings) == 0 {
		return
	}
	line(b, "")
	line(b, "Data Warnings:")
	for _, w := range inn.Warnings {
		line(b, "- %s", w)
	}
}

func renderMatchSummary(b *strings.Builder, ms *stats.MatchStats) {
	line(b, "Match Summary:")
	line(b, "Total Runs Scored: %d", ms.TotalRuns)
	line(b, "Total Wickets: %d", ms.TotalWickets)
	line(b, "Total Boundaries: %d fours, %d sixes", ms.TotalFours, ms.TotalSixes)
	line(b, "Total Extras: %d", ms.TotalExtras)
}

func renderResult(b *strings.Builder, match *cricket.MatchRecord) {
	if match.Outcome == nil {
		return
	}
	o := match.Outcome
	switch {
	case o.Winner != "":
		line(b, "")
		line(b, "Result: %s won", o.Winner)
		if len(o.By) > 0 {
			var margins []string
			for _, key := range sortedKeys(o.By) {
				margins = append(margins, fmt.Sprintf("by %d %s", o.By[key], key))
			}
			line(b, "Margin: %s", strings.Join(margins, ", "))
		}
		if o.Method != "" {
			line(b, "Method: %s", o.Method)
		}
	case o.Result != "":
		line(b, "")
		line(b, "Result: %s", o.Result)
	}
}

func line(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}

// formatOvers renders a ball count as overs, fractional when the last over
// is incomplete ("4" for 24 balls, "3.5" for 23).
func formatOvers(balls int) string {
	if balls%6 == 0 {
		return fmt.Sprintf("%d", balls/6)
	}
	return fmt.Sprintf("%d.%d", balls/6, balls%6)
}

func rate6(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) * 6 / float64(balls)
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
