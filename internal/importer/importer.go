package importer

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/wordle-tally/internal/chat"
	"github.com/mauv0809/wordle-tally/internal/identity"
	"github.com/mauv0809/wordle-tally/internal/metrics"
	"github.com/mauv0809/wordle-tally/internal/parser"
	"github.com/mauv0809/wordle-tally/internal/pubsub"
	"github.com/mauv0809/wordle-tally/internal/puzzles"
	"github.com/mauv0809/wordle-tally/internal/wordle"
)

// leaderboardRefreshLimit is how many standings a live digest import posts
// back to the channel.
const leaderboardRefreshLimit = 10

// New creates a new Importer.
func New(p *parser.Parser, id *identity.Resolver, pz *puzzles.Resolver, store wordle.Store, gateway chat.Gateway, m metrics.Metrics, ps pubsub.Client) *Importer {
	return &Importer{
		parser:   p,
		identity: id,
		puzzles:  pz,
		store:    store,
		gateway:  gateway,
		metrics:  m,
		pubsub:   ps,
	}
}

// ImportMessage runs one message through the full pipeline. Unresolvable
// mentions are skipped, not fatal; a message that matches neither shape
// returns an empty outcome and no error.
func (i *Importer) ImportMessage(ctx context.Context, msg chat.Message) (Outcome, error) {
	start := time.Now()
	defer func() {
		i.metrics.ObserveImportDuration(time.Since(start).Seconds())
	}()
	i.metrics.IncMessagesScanned()

	extraction, err := i.parser.Parse(msg)
	if err != nil {
		return Outcome{}, err
	}
	if extraction == nil {
		return Outcome{}, nil
	}

	outcome := Outcome{Streak: extraction.PuzzleID == 0}

	// Every result in a message references the same puzzle, so resolve it
	// once up front. Digests carry no puzzle number; their id comes from the
	// reference day.
	puzzleID := extraction.PuzzleID
	if puzzleID == 0 {
		puzzleID, err = i.puzzles.IDForDay(ctx, extraction.Day)
		if err != nil {
			return Outcome{}, err
		}
	}
	puzzle, err := i.puzzles.GetOrCreate(ctx, puzzleID, extraction.Day)
	if err != nil {
		return Outcome{}, err
	}

	for _, parsed := range extraction.Results {
		playerID, err := i.identity.Resolve(ctx, parsed.Mention, msg.TeamID)
		if err != nil {
			if errors.Is(err, identity.ErrUnresolvedIdentity) {
				log.Warn("Skipped mention, identity unresolved", "name", parsed.Mention.Name, "timestamp", msg.Timestamp)
				continue
			}
			return outcome, err
		}

		player, err := i.store.GetOrCreatePlayer(playerID)
		if err != nil {
			return outcome, err
		}

		result, err := i.store.AddResult(player.ID, puzzle.ID, parsed.Attempts)
		if err != nil {
			return outcome, err
		}
		if result != nil {
			i.metrics.IncResultsImported()
			outcome.Results = append(outcome.Results, *result)
		}
	}

	return outcome, nil
}

// ImportChannel scans a channel's history and imports every result post it
// finds. Messages are processed one at a time; a failing message is counted
// and logged, never aborting the rest of the scan. Forwarded messages are
// followed and imported as well.
func (i *Importer) ImportChannel(ctx context.Context, channelID string) (ChannelReport, error) {
	runID := uuid.NewString()
	log.Info("Starting channel import", "runID", runID, "channelID", channelID)

	messages, err := i.gateway.ChannelHistory(ctx, channelID)
	if err != nil {
		return ChannelReport{}, err
	}

	report := ChannelReport{Scanned: len(messages)}
	for _, msg := range messages {
		if msg.ForwardedFrom != nil {
			report.Imported += i.importForwarded(ctx, msg, runID, &report)
		}

		outcome, err := i.ImportMessage(ctx, msg)
		if err != nil {
			i.metrics.IncImportFailures()
			report.Failed++
			log.Error("Failed to import message", "error", err, "runID", runID, "timestamp", msg.Timestamp)
			continue
		}
		report.Imported += len(outcome.Results)
	}

	log.Info("Finished channel import", "runID", runID, "channelID", channelID,
		"scanned", report.Scanned, "imported", report.Imported, "failed", report.Failed)
	return report, nil
}

// HandleEvent imports a freshly created message. When a live digest lands
// and produces new results, a leaderboard refresh is queued so the channel
// sees the updated standings.
func (i *Importer) HandleEvent(ctx context.Context, msg chat.Message) (Outcome, error) {
	outcome, err := i.ImportMessage(ctx, msg)
	if err != nil {
		i.metrics.IncImportFailures()
		return outcome, err
	}

	if outcome.Streak && len(outcome.Results) > 0 {
		refresh := pubsub.LeaderboardRefresh{
			ChannelID: msg.ChannelID,
			Limit:     leaderboardRefreshLimit,
		}
		if err := i.pubsub.SendMessage(pubsub.TopicLeaderboardRefresh, refresh); err != nil {
			log.Error("Failed to queue leaderboard refresh", "error", err, "channelID", msg.ChannelID)
		}
	}
	return outcome, nil
}

// HandleChannelEvent fetches the message an event points at and imports it.
// Events only carry a channel and timestamp, so the full message has to be
// read back from the gateway first.
func (i *Importer) HandleChannelEvent(ctx context.Context, channelID, timestamp string) (Outcome, error) {
	msg, err := i.gateway.FetchMessage(ctx, chat.MessageRef{ChannelID: channelID, Timestamp: timestamp})
	if err != nil {
		return Outcome{}, err
	}
	if msg == nil {
		log.Warn("Event message not found", "channelID", channelID, "timestamp", timestamp)
		return Outcome{}, nil
	}
	return i.HandleEvent(ctx, *msg)
}

func (i *Importer) importForwarded(ctx context.Context, msg chat.Message, runID string, report *ChannelReport) int {
	fwd, err := i.gateway.FetchMessage(ctx, *msg.ForwardedFrom)
	if err != nil || fwd == nil {
		log.Warn("Failed to fetch forwarded message", "error", err, "runID", runID, "ref", msg.ForwardedFrom.Timestamp)
		return 0
	}

	outcome, err := i.ImportMessage(ctx, *fwd)
	if err != nil {
		i.metrics.IncImportFailures()
		report.Failed++
		log.Error("Failed to import forwarded message", "error", err, "runID", runID, "timestamp", fwd.Timestamp)
		return 0
	}
	return len(outcome.Results)
}
