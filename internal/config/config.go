package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
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

	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	getEnvInt := func(key string, fallback int) int {
		value, ok := os.LookupEnv(key)
		if !ok {
			return fallback
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			log.Fatalf("Error: Environment variable %s is not an integer: %s", key, value)
		}
		return n
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Port:          getEnv("PORT"),
		Slack: SlackConfig{
			Token:         getEnv("SLACK_BOT_TOKEN"),
			ChannelID:     getEnv("SLACK_CHANNEL_ID"),
			SigningSecret: getEnv("SLACK_SIGNING_SECRET"),
			TeamID:        getEnv("SLACK_TEAM_ID"),
		},
		Wordle: WordleConfig{
			BotUserID: getEnv("WORDLE_BOT_USER_ID"),
			Points: PointsConfig{
				Attempts1: getEnvInt("WORDLE_POINTS_ATTEMPTS_1", 10),
				Attempts2: getEnvInt("WORDLE_POINTS_ATTEMPTS_2", 5),
				Attempts3: getEnvInt("WORDLE_POINTS_ATTEMPTS_3", 4),
				Attempts4: getEnvInt("WORDLE_POINTS_ATTEMPTS_4", 3),
				Attempts5: getEnvInt("WORDLE_POINTS_ATTEMPTS_5", 2),
				Attempts6: getEnvInt("WORDLE_POINTS_ATTEMPTS_6", 1),
				Fail:      getEnvInt("WORDLE_POINTS_FAIL", -5),
			},
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}
	return cfg
}
