package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tally/internal/pubsub"
	"github.com/mauv0809/wordle-tally/internal/scoring"
	"github.com/slack-go/slack"
)

// rgxCommandMention pulls a user id out of slash-command text. Slack renders
// escaped mentions as <@U123|name>.
var rgxCommandMention = regexp.MustCompile(`<@(\w+)(?:\|[^>]*)?>`)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// StatusHandler reports store counts as JSON. Useful as a quick smoke check
// after an import run.
func (s *Server) StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.CountPlayers()
		if err != nil {
			http.Error(w, "Failed to count players", http.StatusInternalServerError)
			log.Error("Failed to count players", "error", err)
			return
		}
		results, err := s.Store.CountResults()
		if err != nil {
			http.Error(w, "Failed to count results", http.StatusInternalServerError)
			log.Error("Failed to count results", "error", err)
			return
		}
		puzzles, err := s.Store.CountPuzzles()
		if err != nil {
			http.Error(w, "Failed to count puzzles", http.StatusInternalServerError)
			log.Error("Failed to count puzzles", "error", err)
			return
		}

		status := map[string]int{
			"players": players,
			"results": results,
			"puzzles": puzzles,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.Error("Failed to encode status to JSON", "error", err)
		}
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// respondWithError answers a slash command with the generic apology instead
// of an HTTP error, so the invoker always sees something readable.
func (s *Server) respondWithError(w http.ResponseWriter) {
	msg, err := s.Notifier.FormatErrorResponse()
	if err != nil {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	respondWithSlackMsg(w, slackMsg)
}

// ImportCommandHandler returns a handler for the /wordle-import Slack command.
// It rescans the channel history and reports what was ingested.
func (s *Server) ImportCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		channelID := r.FormValue("channel_id")
		if channelID == "" {
			channelID = s.Cfg.Slack.ChannelID
		}

		log.Info("Received import command", "channelID", channelID)

		report, err := s.Importer.ImportChannel(r.Context(), channelID)
		if err != nil {
			log.Error("Channel import failed", "error", err, "channelID", channelID)
			s.respondWithError(w)
			return
		}

		text := fmt.Sprintf("Import finished: scanned %d messages, imported %d results, %d failed.",
			report.Scanned, report.Imported, report.Failed)
		msg, err := s.Notifier.FormatInfoResponse(text)
		if err != nil {
			log.Error("Failed to format import response", "error", err)
			s.respondWithError(w)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			log.Error("Failed to cast message to slack.Message")
			s.respondWithError(w)
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// StatsCommandHandler returns a handler for the /wordle-stats Slack command.
// With no arguments it reports the invoker's stats; a mention in the text
// reports someone else's.
func (s *Server) StatsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		playerID := r.FormValue("user_id")
		if m := rgxCommandMention.FindStringSubmatch(r.FormValue("text")); m != nil {
			playerID = m[1]
		}
		if playerID == "" {
			http.Error(w, "Player is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received stats command", "playerID", playerID)

		results, err := s.Store.PlayerResults(playerID)
		if err != nil {
			log.Error("Failed to get player results", "error", err, "playerID", playerID)
			s.respondWithError(w)
			return
		}
		totalPuzzles, err := s.Store.CountPuzzles()
		if err != nil {
			log.Error("Failed to count puzzles", "error", err)
			s.respondWithError(w)
			return
		}

		stats := s.Scoring.Stats(playerID, results, totalPuzzles)
		msg, err := s.Notifier.FormatStatsResponse(stats)
		if err != nil {
			log.Error("Failed to format stats", "error", err)
			s.respondWithError(w)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			log.Error("Failed to cast message to slack.Message")
			s.respondWithError(w)
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// HistoryCommandHandler returns a handler for the /wordle-history Slack
// command. The text may carry a mention and up to two numbers bounding the
// attempt count, e.g. "@karl 3 6".
func (s *Server) HistoryCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		text := r.FormValue("text")
		playerID := r.FormValue("user_id")
		if m := rgxCommandMention.FindStringSubmatch(text); m != nil {
			playerID = m[1]
			text = rgxCommandMention.ReplaceAllString(text, "")
		}
		if playerID == "" {
			http.Error(w, "Player is required.", http.StatusBadRequest)
			return
		}
		min, max := parseAttemptBounds(text)

		log.Info("Received history command", "playerID", playerID, "min", min, "max", max)

		results, err := s.Store.PlayerResults(playerID)
		if err != nil {
			log.Error("Failed to get player results", "error", err, "playerID", playerID)
			s.respondWithError(w)
			return
		}
		results = scoring.FilterByAttempts(results, min, max)

		msg, err := s.Notifier.FormatHistoryResponse(playerID, results)
		if err != nil {
			log.Error("Failed to format history", "error", err)
			s.respondWithError(w)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			log.Error("Failed to cast message to slack.Message")
			s.respondWithError(w)
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// parseAttemptBounds reads up to two integers out of free-form command text.
// One number sets both bounds, two set min and max.
func parseAttemptBounds(text string) (int, int) {
	var nums []int
	for _, field := range strings.Fields(text) {
		if n, err := strconv.Atoi(field); err == nil {
			nums = append(nums, n)
		}
	}
	switch len(nums) {
	case 0:
		return 0, 0
	case 1:
		return nums[0], nums[0]
	default:
		return nums[0], nums[1]
	}
}

// LeaderboardCommandHandler returns a handler for the /wordle-leaderboard
// Slack command. A number in the text overrides the default limit.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		limit := 10
		if n, err := strconv.Atoi(strings.TrimSpace(r.FormValue("text"))); err == nil && n > 0 {
			limit = n
		}

		entries, err := s.Store.Leaderboard(limit)
		if err != nil {
			log.Error("Failed to get leaderboard", "error", err)
			s.respondWithError(w)
			return
		}

		msg, err := s.Notifier.FormatLeaderboardResponse(entries, limit)
		if err != nil {
			log.Error("Failed to format leaderboard", "error", err)
			s.respondWithError(w)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			log.Error("Failed to cast message to slack.Message")
			s.respondWithError(w)
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// SlackEventsHandler handles the Events API subscription: the URL
// verification handshake plus new-message events in the watched channel.
func (s *Server) SlackEventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}

		var eventPayload struct {
			Type      string `json:"type"`
			Challenge string `json:"challenge,omitempty"`
			Event     struct {
				Type    string `json:"type"`
				Channel string `json:"channel,omitempty"`
				User    string `json:"user,omitempty"`
				Ts      string `json:"ts,omitempty"`
				EventTs string `json:"event_ts,omitempty"`
			} `json:"event,omitempty"`
		}

		if err := json.Unmarshal(bodyBytes, &eventPayload); err != nil {
			log.Error("Failed to unmarshal event payload", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		// Handle challenge verification (for initial webhook setup)
		if eventPayload.Type == "url_verification" {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(eventPayload.Challenge))
			return
		}

		if eventPayload.Type == "event_callback" {
			log.Info("Received event", "type", eventPayload.Event.Type)

			if eventPayload.Event.Channel != s.Cfg.Slack.ChannelID {
				log.Info("Ignoring event from different channel", "channel", eventPayload.Event.Channel)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("OK"))
				return
			}

			if eventPayload.Event.Type == "message" {
				if _, err := s.Importer.HandleChannelEvent(r.Context(), eventPayload.Event.Channel, eventPayload.Event.Ts); err != nil {
					// Don't return an error to Slack to avoid retries.
					log.Error("Failed to handle message event", "error", err, "timestamp", eventPayload.Event.Ts)
				}
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

// LeaderboardRefreshHandler is the Pub/Sub push endpoint for queued
// leaderboard refreshes: it posts the current standings to the channel the
// refresh names.
func (s *Server) LeaderboardRefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received leaderboard refresh message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		// Parse the outer JSON to get `data`
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		refresh := pubsub.LeaderboardRefresh{}
		s.Pubsub.ProcessMessage(rawData, &refresh)
		if refresh.Limit <= 0 {
			refresh.Limit = 10
		}

		entries, err := s.Store.Leaderboard(refresh.Limit)
		if err != nil {
			log.Error("Failed to get leaderboard", "error", err)
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			return
		}
		if err := s.Notifier.SendLeaderboard(refresh.ChannelID, entries, refresh.Limit); err != nil {
			log.Error("Failed to send leaderboard", "error", err)
			http.Error(w, "Failed to send leaderboard", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
