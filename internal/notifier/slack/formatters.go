package slack

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mauv0809/cover-drive/internal/cricket"
	"github.com/mauv0809/cover-drive/internal/stats"
	"github.com/slack-go/slack"
)

// formatMatchSummary creates the Slack message for a processed match using Block Kit.
func (s *Notifier) formatMatchSummary(match *cricket.MatchRecord, summary *stats.MatchStats) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "🏏 Match report ready! 🏏", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details - Use newlines for clear separation.
	detailsText := fmt.Sprintf("%s vs %s\n%s, %s", match.Teams[0], match.Teams[1], match.Venue, match.Date)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	// Innings scores
	var scoreLines []string
	for i, inn := range summary.Innings {
		scoreLines = append(scoreLines, fmt.Sprintf("• Innings %d - %s: %d/%d (RR: %.2f)",
			i+1, inn.Team, inn.Runs, inn.Wickets, inn.RunRate))
	}
	if len(scoreLines) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(scoreLines, "\n"), true, false), nil, nil))
	}

	// Result
	if match.Outcome != nil {
		var resultText string
		switch {
		case match.Outcome.Winner != "":
			resultText = fmt.Sprintf("Result: %s won! 🏆", match.Outcome.Winner)
			if len(match.Outcome.By) > 0 {
				var margins []string
				keys := make([]string, 0, len(match.Outcome.By))
				for k := range match.Outcome.By {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					margins = append(margins, fmt.Sprintf("by %d %s", match.Outcome.By[k], k))
				}
				resultText += " (" + strings.Join(margins, ", ") + ")"
			}
		case match.Outcome.Result != "":
			resultText = fmt.Sprintf("Result: %s", match.Outcome.Result)
		}
		if resultText != "" {
			blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", resultText, true, false), nil, nil))
		}
	}

	// Context - For simpler, single-line info.
	contextText := fmt.Sprintf("%d runs, %d wickets, %d fours, %d sixes across the match",
		summary.TotalRuns, summary.TotalWickets, summary.TotalFours, summary.TotalSixes)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatProcessingFailure creates the Slack message for a match that could not be processed.
func (s *Notifier) formatProcessingFailure(matchID string, reason string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚠️ Match processing failed", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Match: %s\nReason: %s", matchID, reason)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
