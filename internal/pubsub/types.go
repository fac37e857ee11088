package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventReportReady carries a rendered report document to the
	// retrieval collaborator for indexing.
	EventReportReady EventType = "match-reports"
)
