package config

import "github.com/mauv0809/cover-drive/internal/stats"

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	MatchDataDir  string
	ProjectID     string
	ReportTopic   string
	Slack         SlackConfig
	Turso         TursoConfig
	PhasePolicy   stats.PhasePolicy
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
