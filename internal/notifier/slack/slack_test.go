package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/cover-drive/internal/cricket"
	"github.com/mauv0809/cover-drive/internal/metrics"
	"github.com/mauv0809/cover-drive/internal/stats"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleMatch() *cricket.MatchRecord {
	return &cricket.MatchRecord{
		Teams:   [2]string{"Alpha", "Beta"},
		Date:    "2024-03-01",
		Venue:   "Lord's",
		Outcome: &cricket.Outcome{Winner: "Alpha", By: map[string]int{"runs": 20}},
	}
}

func sampleSummary() *stats.MatchStats {
	return &stats.MatchStats{
		Innings: []*stats.InningsStats{
			{Team: "Alpha", Runs: 160, Wickets: 4, RunRate: 8},
			{Team: "Beta", Runs: 140, Wickets: 9, RunRate: 7},
		},
		TotalRuns:    300,
		TotalWickets: 13,
		TotalFours:   24,
		TotalSixes:   9,
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendMatchSummary_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())
	err := notifier.SendMatchSummary(sampleMatch(), sampleSummary(), false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
}

func TestSendProcessingFailure_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())
	err := notifier.SendProcessingFailure("1001", "malformed match record", false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
}

func TestFormatMatchSummary(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	msg := notifier.formatMatchSummary(sampleMatch(), sampleSummary())

	// Header, details, scores, result, context.
	require.Len(t, msg.Blocks.BlockSet, 5)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Match report ready!")

	details, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, details.Text.Text, "Alpha vs Beta")
	assert.Contains(t, details.Text.Text, "Lord's")

	scores, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, scores.Text.Text, "Alpha: 160/4")
	assert.Contains(t, scores.Text.Text, "Beta: 140/9")

	result, ok := msg.Blocks.BlockSet[3].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, result.Text.Text, "Alpha won!")
	assert.Contains(t, result.Text.Text, "by 20 runs")
}

func TestFormatMatchSummary_NoOutcome(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	match := sampleMatch()
	match.Outcome = nil
	msg := notifier.formatMatchSummary(match, sampleSummary())

	// Header, details, scores, context. No result block.
	require.Len(t, msg.Blocks.BlockSet, 4)
}

func TestFormatProcessingFailure(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	msg := notifier.formatProcessingFailure("1001", "malformed match record")

	require.Len(t, msg.Blocks.BlockSet, 2)
	details, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, details.Text.Text, "Match: 1001")
	assert.Contains(t, details.Text.Text, "Reason: malformed match record")
}
