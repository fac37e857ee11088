package cricket

import (
	"encoding/json"
	"fmt"
)

// MalformedMatchError is the fatal parse error: the match record is missing
// or corrupt at the ball-data level and no statistics can be produced from
// it. Field holds the path of the offending field.
type MalformedMatchError struct {
	Field  string
	Reason string
}

func (e *MalformedMatchError) Error() string {
	return fmt.Sprintf("malformed match record: %s: %s", e.Field, e.Reason)
}

// raw wire shapes. Pointers distinguish "absent" from "zero" where absence
// is fatal.
type rawMatch struct {
	Info    rawInfo      `json:"info"`
	Innings []rawInnings `json:"innings"`
}

type rawInfo struct {
	Teams     []string            `json:"teams"`
	Dates     []string            `json:"dates"`
	Venue     string              `json:"venue"`
	Event     rawEvent            `json:"event"`
	MatchType string              `json:"match_type"`
	Gender    string              `json:"gender"`
	Season    json.RawMessage     `json:"season"`
	Toss      *rawToss            `json:"toss"`
	Players   map[string][]string `json:"players"`
	Officials *rawOfficials       `json:"officials"`
	Outcome   *rawOutcome         `json:"outcome"`
}

type rawEvent struct {
	Name string `json:"name"`
}

type rawToss struct {
	Winner   string `json:"winner"`
	Decision string `json:"decision"`
}

type rawOfficials struct {
	Umpires       []string `json:"umpires"`
	MatchReferees []string `json:"match_referees"`
}

type rawOutcome struct {
	Winner string         `json:"winner"`
	By     map[string]int `json:"by"`
	Method string         `json:"method"`
	Result string         `json:"result"`
}

type rawInnings struct {
	Team  string    `json:"team"`
	Overs []rawOver `json:"overs"`
}

type rawOver struct {
	Over       *int          `json:"over"`
	Deliveries []rawDelivery `json:"deliveries"`
}

type rawDelivery struct {
	Batter     string      `json:"batter"`
	Bowler     string      `json:"bowler"`
	NonStriker string      `json:"non_striker"`
	Runs       rawRuns     `json:"runs"`
	Extras     rawExtras   `json:"extras"`
	Wickets    []rawWicket `json:"wickets"`
}

type rawRuns struct {
	Batter int `json:"batter"`
	Extras int `json:"extras"`
	Total  int `json:"total"`
}

type rawExtras struct {
	Wides   *int `json:"wides"`
	NoBalls *int `json:"noballs"`
	Byes    *int `json:"byes"`
	LegByes *int `json:"legbyes"`
	Penalty *int `json:"penalty"`
}

type rawWicket struct {
	PlayerOut string       `json:"player_out"`
	Kind      string       `json:"kind"`
	Fielders  []rawFielder `json:"fielders"`
}

type rawFielder struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// Parse validates and normalizes a raw match document into a MatchRecord.
// It is a pure transform: absent optional fields default to the Unknown
// sentinel, while a missing or invalid innings/over/delivery structure is
// fatal and returns a MalformedMatchError naming the field.
func Parse(data []byte) (*MatchRecord, error) {
	var raw rawMatch
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedMatchError{Field: "match", Reason: err.Error()}
	}

	if raw.Innings == nil {
		return nil, &MalformedMatchError{Field: "innings", Reason: "missing"}
	}

	m := &MatchRecord{
		Venue:     orUnknown(raw.Info.Venue),
		Event:     orUnknown(raw.Info.Event.Name),
		MatchType: orUnknown(raw.Info.MatchType),
		Gender:    orUnknown(raw.Info.Gender),
		Season:    seasonString(raw.Info.Season),
		Players:   raw.Info.Players,
	}

	if len(raw.Info.Teams) >= 2 {
		m.Teams = [2]string{raw.Info.Teams[0], raw.Info.Teams[1]}
	} else {
		m.Teams = [2]string{Unknown, Unknown}
	}

	if len(raw.Info.Dates) > 0 {
		m.Date = raw.Info.Dates[0]
	} else {
		m.Date = Unknown
	}

	if raw.Info.Toss != nil {
		m.Toss = &Toss{
			Winner:   orUnknown(raw.Info.Toss.Winner),
			Decision: orUnknown(raw.Info.Toss.Decision),
		}
	}
	if raw.Info.Officials != nil {
		m.Officials = Officials{
			Umpires:       raw.Info.Officials.Umpires,
			MatchReferees: raw.Info.Officials.MatchReferees,
		}
	}
	if raw.Info.Outcome != nil {
		m.Outcome = &Outcome{
			Winner: raw.Info.Outcome.Winner,
			By:     raw.Info.Outcome.By,
			Method: raw.Info.Outcome.Method,
			Result: raw.Info.Outcome.Result,
		}
	}

	for i, ri := range raw.Innings {
		innings, err := parseInnings(i, ri, m.Teams)
		if err != nil {
			return nil, err
		}
		m.Innings = append(m.Innings, innings)
	}

	return m, nil
}

func parseInnings(idx int, raw rawInnings, teams [2]string) (Innings, error) {
	team := orUnknown(raw.Team)
	// A declared team pair pins down which names are allowed to bat.
	if teams[0] != Unknown && team != Unknown && team != teams[0] && team != teams[1] {
		return Innings{}, &MalformedMatchError{
			Field:  fmt.Sprintf("innings[%d].team", idx),
			Reason: fmt.Sprintf("unknown team %q", team),
		}
	}
	if raw.Overs == nil {
		return Innings{}, &MalformedMatchError{
			Field:  fmt.Sprintf("innings[%d].overs", idx),
			Reason: "missing",
		}
	}

	innings := Innings{Team: team}
	for j, ro := range raw.Overs {
		if ro.Over == nil {
			return Innings{}, &MalformedMatchError{
				Field:  fmt.Sprintf("innings[%d].overs[%d].over", idx, j),
				Reason: "missing or non-numeric over index",
			}
		}
		if ro.Deliveries == nil {
			return Innings{}, &MalformedMatchError{
				Field:  fmt.Sprintf("innings[%d].overs[%d].deliveries", idx, j),
				Reason: "missing",
			}
		}

		over := Over{Number: *ro.Over}
		for _, rd := range ro.Deliveries {
			over.Deliveries = append(over.Deliveries, parseDelivery(rd))
		}
		innings.Overs = append(innings.Overs, over)
	}
	return innings, nil
}

func parseDelivery(raw rawDelivery) Delivery {
	d := Delivery{
		Batter:     orUnknown(raw.Batter),
		Bowler:     orUnknown(raw.Bowler),
		NonStriker: orUnknown(raw.NonStriker),
		Runs: Runs{
			Batter: raw.Runs.Batter,
			Extras: raw.Runs.Extras,
			Total:  raw.Runs.Total,
		},
		Extras: Extras{
			Wides:   intOrZero(raw.Extras.Wides),
			NoBalls: intOrZero(raw.Extras.NoBalls),
			Byes:    intOrZero(raw.Extras.Byes),
			LegByes: intOrZero(raw.Extras.LegByes),
			Penalty: intOrZero(raw.Extras.Penalty),
		},
	}
	// The source marks a wide/no-ball by the key's presence even when the
	// recorded value is 0; carry that through as a nonzero flag.
	if raw.Extras.Wides != nil && d.Extras.Wides == 0 {
		d.Extras.Wides = 1
	}
	if raw.Extras.NoBalls != nil && d.Extras.NoBalls == 0 {
		d.Extras.NoBalls = 1
	}

	for _, rw := range raw.Wickets {
		w := Wicket{
			PlayerOut: orUnknown(rw.PlayerOut),
			Kind:      DismissalKind(orUnknown(rw.Kind)),
		}
		for _, rf := range rw.Fielders {
			w.Fielders = append(w.Fielders, FielderRef{
				Name:     orUnknown(rf.Name),
				Position: orUnknown(rf.Position),
			})
		}
		d.Wickets = append(d.Wickets, w)
	}
	return d
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// seasonString tolerates both string ("2023/24") and numeric (2023)
// season encodings found in the wild.
func seasonString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return Unknown
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return orUnknown(s)
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return fmt.Sprintf("%d", n)
	}
	return Unknown
}
