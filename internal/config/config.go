package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/cover-drive/internal/stats"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Port:          getEnv("PORT"),
		MatchDataDir:  getEnv("MATCH_DATA_DIR"),
		ProjectID:     getEnv("GCP_PROJECT"),
		ReportTopic:   envOr("REPORT_TOPIC", "match-reports"),
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL"),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN"),
		},
		PhasePolicy: stats.PhasePolicy{
			PowerplayOvers: envOrInt("POWERPLAY_OVERS", stats.DefaultPhasePolicy.PowerplayOvers),
			MiddleOvers:    envOrInt("MIDDLE_OVERS", stats.DefaultPhasePolicy.MiddleOvers),
		},
	}
	return cfg
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn("Invalid integer env var, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}
