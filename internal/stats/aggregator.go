package stats

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cover-drive/internal/cricket"
)

// Aggregate walks every innings of the match once, delivery by delivery,
// and produces the full statistical summary. It never fails on a single bad
// delivery: anomalies become DeliveryWarnings on the owning innings and
// processing continues.
func Aggregate(match *cricket.MatchRecord, policy PhasePolicy) (*MatchStats, error) {
	if match == nil {
		return nil, errors.New("nil match record")
	}
	if policy.PowerplayOvers <= 0 || policy.MiddleOvers <= policy.PowerplayOvers {
		policy = DefaultPhasePolicy
	}

	out := &MatchStats{}
	for i := range match.Innings {
		agg := newInningsAggregator(i, match, policy)
		inn := agg.run(&match.Innings[i])
		out.Innings = append(out.Innings, inn)

		out.TotalRuns += inn.Runs
		out.TotalWickets += inn.Wickets
		out.TotalFours += inn.Fours
		out.TotalSixes += inn.Sixes
		out.TotalExtras += inn.Extras
		out.TotalBalls += inn.Balls

		log.Debug("aggregated innings",
			"innings", i+1,
			"team", inn.Team,
			"runs", inn.Runs,
			"wickets", inn.Wickets,
			"warnings", len(inn.Warnings),
		)
	}
	return out, nil
}

// inningsAggregator is the running state carried across one innings'
// delivery loop. It is a plain value owned by a single Aggregate call, so
// independent matches can be processed concurrently without interference.
type inningsAggregator struct {
	idx    int
	match  *cricket.MatchRecord
	policy PhasePolicy
	out    *InningsStats

	score      int
	wickets    int
	validBalls int

	partnership  *Partnership
	warnedNames  map[string]bool
	knownPlayers map[string]bool
}

func newInningsAggregator(idx int, match *cricket.MatchRecord, policy PhasePolicy) *inningsAggregator {
	a := &inningsAggregator{
		idx:    idx,
		match:  match,
		policy: policy,
		out: &InningsStats{
			Phases:   map[Phase]*PhaseSplit{},
			Batters:  map[string]*BatterStat{},
			Bowlers:  map[string]*BowlerStat{},
			Fielders: map[string]*FielderStat{},
			Matchups: map[MatchupKey]*MatchupStat{},
		},
		warnedNames: map[string]bool{},
	}
	if len(match.Players) > 0 {
		a.knownPlayers = map[string]bool{}
		for _, roster := range match.Players {
			for _, p := range roster {
				a.knownPlayers[p] = true
			}
		}
	}
	return a
}

func (a *inningsAggregator) run(innings *cricket.Innings) *InningsStats {
	a.out.Team = innings.Team

	for i := range innings.Overs {
		over := &innings.Overs[i]
		acc := OverSummary{Over: over.Number}
		var overBowler string

		for b := range over.Deliveries {
			d := &over.Deliveries[b]
			overBowler = d.Bowler
			a.processDelivery(d, &acc, b)
		}

		a.finalizeOver(&acc, overBowler)
	}

	// An innings can end without a final wicket; the open partnership is
	// closed implicitly with whatever it accumulated.
	a.closePartnership()
	a.finalize()
	return a.out
}

func (a *inningsAggregator) processDelivery(d *cricket.Delivery, acc *OverSummary, ball int) {
	valid := d.IsValid()
	dot := d.IsDot()

	a.checkPlayer(d.Batter, "batter", acc.Over, ball)
	a.checkPlayer(d.Bowler, "bowler", acc.Over, ball)

	acc.Balls++
	a.out.Balls++
	if valid {
		acc.ValidBalls++
		a.out.ValidBalls++
		a.validBalls++
	}

	if a.partnership == nil {
		a.partnership = &Partnership{
			Batters:    [2]string{d.Batter, d.NonStriker},
			StartScore: a.score,
			VsBowlers:  map[string]*PairCounters{},
		}
	}
	p := a.partnership
	pb := p.vsBowler(d.Bowler)

	batter := a.batter(d.Batter)
	bowler := a.bowler(d.Bowler)
	matchup := a.matchup(d.Batter, d.Bowler)

	total := d.Runs.Total
	a.score += total
	acc.Runs += total
	acc.Extras += d.Runs.Extras
	a.out.Extras += d.Runs.Extras
	p.Runs += total
	pb.Runs += total
	bowler.Runs += total

	batter.Runs += d.Runs.Batter
	matchup.Runs += d.Runs.Batter

	switch d.Runs.Batter {
	case 4:
		acc.Fours++
		a.out.Fours++
		batter.Fours++
		matchup.Fours++
		p.Fours++
		pb.Fours++
	case 6:
		acc.Sixes++
		a.out.Sixes++
		batter.Sixes++
		matchup.Sixes++
		p.Sixes++
		pb.Sixes++
	}

	if valid {
		batter.Balls++
		matchup.Balls++
		bowler.Balls++
		p.Balls++
		pb.Balls++
	}
	if dot {
		acc.Dots++
		a.out.Dots++
		batter.Dots++
		matchup.Dots++
		p.Dots++
		pb.Dots++
	}

	for i := range d.Wickets {
		a.processWicket(&d.Wickets[i], d.Bowler, acc, ball)
	}
}

func (a *inningsAggregator) processWicket(w *cricket.Wicket, bowlerName string, acc *OverSummary, ball int) {
	a.checkPlayer(w.PlayerOut, "wickets.player_out", acc.Over, ball)

	acc.Wickets++
	a.wickets++
	a.out.Wickets++

	a.batter(w.PlayerOut).Dismissals++
	if w.Kind.CountsForBowler() {
		a.matchup(w.PlayerOut, bowlerName).Dismissals++
		a.bowler(bowlerName).Wickets++
	}

	switch w.Kind.Credit() {
	case cricket.CreditFirstCatch:
		// Multiple fielders can be listed on a catch; only the first one
		// took it.
		if len(w.Fielders) > 0 {
			f := a.fielder(w.Fielders[0].Name)
			f.Catches++
			f.CatchesByPosition[w.Fielders[0].Position]++
		}
	case cricket.CreditStumping:
		for _, ref := range w.Fielders {
			a.fielder(ref.Name).Stumpings++
		}
	case cricket.CreditAllRunOut:
		for _, ref := range w.Fielders {
			f := a.fielder(ref.Name)
			f.RunOuts++
			f.RunOutsByPosition[ref.Position]++
		}
	}

	a.closePartnership()
}

func (a *inningsAggregator) finalizeOver(acc *OverSummary, overBowler string) {
	acc.CumulativeRuns = a.score
	acc.CumulativeWickets = a.wickets
	acc.OverRunRate = runRate(acc.Runs, acc.ValidBalls)
	acc.MatchRunRate = runRate(a.score, a.validBalls)
	a.out.Overs = append(a.out.Overs, *acc)

	phase := a.policy.Classify(acc.Over)
	split, ok := a.out.Phases[phase]
	if !ok {
		split = &PhaseSplit{Phase: phase}
		a.out.Phases[phase] = split
	}
	split.Overs++
	split.Runs += acc.Runs
	split.Wickets += acc.Wickets
	split.Fours += acc.Fours
	split.Sixes += acc.Sixes
	split.Extras += acc.Extras
	split.Dots += acc.Dots
	split.ValidBalls += acc.ValidBalls

	if overBowler != "" && acc.Runs == 0 && acc.ValidBalls == 6 {
		a.bowler(overBowler).Maidens++
	}
}

// finalize computes every derived rate exactly once, after all deliveries.
// Any rate with a zero denominator stays 0.
func (a *inningsAggregator) finalize() {
	a.out.Runs = a.score
	a.out.RunRate = runRate(a.out.Runs, a.out.ValidBalls)

	for _, b := range a.out.Batters {
		b.StrikeRate = strikeRate(b.Runs, b.Balls)
	}
	for _, m := range a.out.Matchups {
		m.StrikeRate = strikeRate(m.Runs, m.Balls)
	}
	for _, b := range a.out.Bowlers {
		b.Overs = float64(b.Balls/6) + float64(b.Balls%6)/6.0
		if b.Overs > 0 {
			b.Economy = float64(b.Runs) / b.Overs
		}
	}
	for _, split := range a.out.Phases {
		split.RunRate = runRate(split.Runs, split.ValidBalls)
	}
}

func (a *inningsAggregator) closePartnership() {
	if a.partnership == nil {
		return
	}
	a.partnership.EndScore = a.score
	a.out.Partnerships = append(a.out.Partnerships, *a.partnership)
	a.partnership = nil
}

// checkPlayer records an UnknownPlayerReference warning, once per name per
// innings. Stats still accumulate under the referenced name; nothing aborts.
func (a *inningsAggregator) checkPlayer(name, field string, over, ball int) {
	if a.knownPlayers == nil || name == cricket.Unknown {
		return
	}
	if a.knownPlayers[name] || a.warnedNames[name] {
		return
	}
	a.warnedNames[name] = true
	a.out.Warnings = append(a.out.Warnings, DeliveryWarning{
		Innings: a.idx,
		Over:    over,
		Ball:    ball,
		Field:   field,
		Message: fmt.Sprintf("player %q not in either team's player list", name),
	})
}

func (a *inningsAggregator) batter(name string) *BatterStat {
	b, ok := a.out.Batters[name]
	if !ok {
		b = &BatterStat{Name: name}
		a.out.Batters[name] = b
		a.out.BatterOrder = append(a.out.BatterOrder, name)
	}
	return b
}

func (a *inningsAggregator) bowler(name string) *BowlerStat {
	b, ok := a.out.Bowlers[name]
	if !ok {
		b = &BowlerStat{Name: name}
		a.out.Bowlers[name] = b
		a.out.BowlerOrder = append(a.out.BowlerOrder, name)
	}
	return b
}

func (a *inningsAggregator) fielder(name string) *FielderStat {
	f, ok := a.out.Fielders[name]
	if !ok {
		f = &FielderStat{
			Name:              name,
			CatchesByPosition: map[string]int{},
			RunOutsByPosition: map[string]int{},
		}
		a.out.Fielders[name] = f
		a.out.FielderOrder = append(a.out.FielderOrder, name)
	}
	return f
}

func (a *inningsAggregator) matchup(batter, bowler string) *MatchupStat {
	key := MatchupKey{Batter: batter, Bowler: bowler}
	m, ok := a.out.Matchups[key]
	if !ok {
		m = &MatchupStat{}
		a.out.Matchups[key] = m
		a.out.MatchupOrder = append(a.out.MatchupOrder, key)
	}
	return m
}

func (p *Partnership) vsBowler(name string) *PairCounters {
	c, ok := p.VsBowlers[name]
	if !ok {
		c = &PairCounters{}
		p.VsBowlers[name] = c
		p.BowlerOrder = append(p.BowlerOrder, name)
	}
	return c
}

// strikeRate is batter runs per 100 balls, 0 when no balls were faced.
func strikeRate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) * 100 / float64(balls)
}

// runRate is runs per 6 valid balls, 0 when no valid balls were bowled.
func runRate(runs, validBalls int) float64 {
	if validBalls == 0 {
		return 0
	}
	return float64(runs) * 6 / float64(validBalls)
}
