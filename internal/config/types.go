package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Slack         SlackConfig
	Wordle        WordleConfig
	Turso         TursoConfig
	ProjectID     string
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
	TeamID        string
}

// WordleConfig identifies the companion bot whose messages carry results,
// and the point value awarded per attempt bucket.
type WordleConfig struct {
	BotUserID string
	Points    PointsConfig
}

// PointsConfig maps an attempt count to the points it is worth. A failed
// puzzle (the X/6 grade) scores Fail.
type PointsConfig struct {
	Attempts1 int
	Attempts2 int
	Attempts3 int
	Attempts4 int
	Attempts5 int
	Attempts6 int
	Fail      int
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
