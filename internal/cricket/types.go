package cricket

// Unknown is the sentinel used for any optional field absent from the
// source match record. Only the ball-level structure (innings, overs,
// deliveries) is allowed to fail the parse.
const Unknown = "Unknown"

// MatchRecord is the normalized, immutable representation of one match.
// It is produced by Parse and never mutated afterwards.
type MatchRecord struct {
	Teams     [2]string
	Venue     string
	Date      string
	Event     string
	MatchType string
	Gender    string
	Season    string
	Toss      *Toss
	Officials Officials
	Players   map[string][]string
	Outcome   *Outcome
	Innings   []Innings
}

// Toss records who won the toss and what they chose.
type Toss struct {
	Winner   string
	Decision string
}

// Officials lists the match officials, both groups optional.
type Officials struct {
	Umpires       []string
	MatchReferees []string
}

// Outcome is the final result of the match, if one was recorded.
type Outcome struct {
	Winner string
	By     map[string]int
	Method string
	Result string
}

// Innings is an ordered sequence of overs for one batting team.
type Innings struct {
	Team  string
	Overs []Over
}

// Over is an ordered sequence of deliveries. The over number is 0-indexed.
type Over struct {
	Number     int
	Deliveries []Delivery
}

// Delivery is one ball bowled, the atomic event unit.
type Delivery struct {
	Batter     string
	Bowler     string
	NonStriker string
	Runs       Runs
	Extras     Extras
	Wickets    []Wicket
}

// Runs is the runs breakdown for a single delivery.
type Runs struct {
	Batter int
	Extras int
	Total  int
}

// Extras details the extras conceded on a delivery. A zero value on all
// fields means a clean delivery.
type Extras struct {
	Wides   int
	NoBalls int
	Byes    int
	LegByes int
	Penalty int
}

// IsValid reports whether the delivery counts toward the 6-ball over and
// the strike-rate/economy denominators: neither a wide nor a no-ball.
func (d *Delivery) IsValid() bool {
	return d.Extras.Wides == 0 && d.Extras.NoBalls == 0
}

// IsDot reports whether the delivery is a dot ball: valid with zero total runs.
func (d *Delivery) IsDot() bool {
	return d.IsValid() && d.Runs.Total == 0
}

// Wicket is a single dismissal event on a delivery.
type Wicket struct {
	PlayerOut string
	Kind      DismissalKind
	Fielders  []FielderRef
}

// FielderRef is one fielder credited on a wicket, with an optional
// position tag.
type FielderRef struct {
	Name     string
	Position string
}

// DismissalKind is the closed set of dismissal types.
type DismissalKind string

const (
	DismissalBowled       DismissalKind = "bowled"
	DismissalCaught       DismissalKind = "caught"
	DismissalCaughtBowled DismissalKind = "caught and bowled"
	DismissalLBW          DismissalKind = "lbw"
	DismissalStumped      DismissalKind = "stumped"
	DismissalRunOut       DismissalKind = "run out"
	DismissalHitWicket    DismissalKind = "hit wicket"
	DismissalRetiredHurt  DismissalKind = "retired hurt"
)

// FieldingCredit says how the fielders listed on a wicket are credited.
type FieldingCredit int

const (
	// CreditNone: no fielder involvement is recorded.
	CreditNone FieldingCredit = iota
	// CreditFirstCatch: only the first listed fielder gets the catch.
	CreditFirstCatch
	// CreditStumping: the listed keeper gets the stumping.
	CreditStumping
	// CreditAllRunOut: every listed fielder gets the run-out.
	CreditAllRunOut
)

// dismissalRules encodes, per kind, whether the bowler is credited with the
// wicket and how fielders are credited. Kinds not present take the zero
// rule: bowler credited, no fielding credit.
var dismissalRules = map[DismissalKind]struct {
	BowlerWicket bool
	Credit       FieldingCredit
}{
	DismissalBowled:       {true, CreditNone},
	DismissalCaught:       {true, CreditFirstCatch},
	DismissalCaughtBowled: {true, CreditFirstCatch},
	DismissalLBW:          {true, CreditNone},
	DismissalStumped:      {true, CreditStumping},
	DismissalHitWicket:    {true, CreditNone},
	DismissalRunOut:       {false, CreditAllRunOut},
	DismissalRetiredHurt:  {false, CreditNone},
}

// CountsForBowler reports whether a dismissal of this kind is credited to
// the bowler's wicket tally. Run-outs and retired-hurt are not.
func (k DismissalKind) CountsForBowler() bool {
	if rule, ok := dismissalRules[k]; ok {
		return rule.BowlerWicket
	}
	return true
}

// Credit returns the fielding-credit rule for this dismissal kind.
func (k DismissalKind) Credit() FieldingCredit {
	if rule, ok := dismissalRules[k]; ok {
		return rule.Credit
	}
	return CreditNone
}
