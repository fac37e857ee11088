package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	ingestRuns          int
	matchesProcessed    int
	processingDurations []float64
	reportsRendered     int
	deliveryWarnings    int
	publishSent         int
	publishFailed       int
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		processingDurations: make([]float64, 0),
	}
}

func (m *Mock) IncIngestRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingestRuns++
}

func (m *Mock) IncMatchesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesProcessed++
}

func (m *Mock) ObserveProcessingDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processingDurations = append(m.processingDurations, duration)
}

func (m *Mock) IncReportsRendered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportsRendered++
}

func (m *Mock) IncDeliveryWarnings(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deliveryWarnings += count
}

func (m *Mock) IncPublishSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishSent++
}

func (m *Mock) IncPublishFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishFailed++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// IngestRuns returns the number of times IncIngestRuns was called.
func (m *Mock) IngestRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ingestRuns
}

// MatchesProcessed returns the number of times IncMatchesProcessed was called.
func (m *Mock) MatchesProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesProcessed
}

// ReportsRendered returns the number of times IncReportsRendered was called.
func (m *Mock) ReportsRendered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reportsRendered
}

// DeliveryWarnings returns the accumulated warning count.
func (m *Mock) DeliveryWarnings() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deliveryWarnings
}

// PublishSent returns the number of times IncPublishSent was called.
func (m *Mock) PublishSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.publishSent
}

// PublishFailed returns the number of times IncPublishFailed was called.
func (m *Mock) PublishFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.publishFailed
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
