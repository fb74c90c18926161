package config_test

import (
	"testing"

	"github.com/mauv0809/wordle-tally/internal/config"
	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_NAME", "tally.db")
	t.Setenv("PORT", "8080")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C012345")
	t.Setenv("SLACK_SIGNING_SECRET", "secret")
	t.Setenv("SLACK_TEAM_ID", "T012345")
	t.Setenv("WORDLE_BOT_USER_ID", "B012WORDLE")
	t.Setenv("GCP_PROJECT", "test-project")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg := config.Load()

	assert.Equal(t, "tally.db", cfg.DBName)
	assert.Equal(t, "./migrations", cfg.MigrationsDir)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "C012345", cfg.Slack.ChannelID)
	assert.Equal(t, "B012WORDLE", cfg.Wordle.BotUserID)
	assert.Equal(t, "test-project", cfg.ProjectID)
	assert.Empty(t, cfg.Turso.PrimaryURL)
}

func TestLoadPointsDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := config.Load()

	assert.Equal(t, 10, cfg.Wordle.Points.Attempts1)
	assert.Equal(t, 5, cfg.Wordle.Points.Attempts2)
	assert.Equal(t, 4, cfg.Wordle.Points.Attempts3)
	assert.Equal(t, 3, cfg.Wordle.Points.Attempts4)
	assert.Equal(t, 2, cfg.Wordle.Points.Attempts5)
	assert.Equal(t, 1, cfg.Wordle.Points.Attempts6)
	assert.Equal(t, -5, cfg.Wordle.Points.Fail)
}

func TestLoadPointsOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WORDLE_POINTS_ATTEMPTS_1", "20")
	t.Setenv("WORDLE_POINTS_FAIL", "-10")

	cfg := config.Load()

	assert.Equal(t, 20, cfg.Wordle.Points.Attempts1)
	assert.Equal(t, -10, cfg.Wordle.Points.Fail)
}
