package report

import "github.com/mauv0809/cover-drive/internal/cricket"

// Document is the unit handed to the retrieval collaborator: the rendered
// report text plus the metadata record it is indexed under. The engine has
// no awareness of how the collaborator stores, chunks, or embeds it.
type Document struct {
	Filename string   `json:"filename" msgpack:"filename"`
	MatchID  string   `json:"match_id" msgpack:"match_id"`
	Teams    []string `json:"teams" msgpack:"teams"`
	Date     string   `json:"date" msgpack:"date"`
	Venue    string   `json:"venue" msgpack:"venue"`
	Event    string   `json:"event" msgpack:"event"`
	Text     string   `json:"text" msgpack:"text"`
}

// NewDocument pairs a rendered report with its metadata.
func NewDocument(filename, matchID string, match *cricket.MatchRecord, text string) Document {
	return Document{
		Filename: filename,
		MatchID:  matchID,
		Teams:    []string{match.Teams[0], match.Teams[1]},
		Date:     match.Date,
		Venue:    match.Venue,
		Event:    match.Event,
		Text:     text,
	}
}
