package pubsub

// TopicLeaderboardRefresh carries LeaderboardRefresh payloads: a live streak
// import requests the current standings be posted back to the channel.
const TopicLeaderboardRefresh = "wordle-leaderboard-refresh"

// LeaderboardRefresh asks for the leaderboard to be posted to a channel.
type LeaderboardRefresh struct {
	ChannelID string `msgpack:"channel_id"`
	Limit     int    `msgpack:"limit"`
}
