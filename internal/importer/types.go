package importer

import (
	"github.com/mauv0809/wordle-tally/internal/chat"
	"github.com/mauv0809/wordle-tally/internal/identity"
	"github.com/mauv0809/wordle-tally/internal/metrics"
	"github.com/mauv0809/wordle-tally/internal/parser"
	"github.com/mauv0809/wordle-tally/internal/pubsub"
	"github.com/mauv0809/wordle-tally/internal/puzzles"
	"github.com/mauv0809/wordle-tally/internal/wordle"
)

// Importer runs the parse-resolve-persist cycle for inbound messages.
type Importer struct {
	parser   *parser.Parser
	identity *identity.Resolver
	puzzles  *puzzles.Resolver
	store    wordle.Store
	gateway  chat.Gateway
	metrics  metrics.Metrics
	pubsub   pubsub.Client
}

// Outcome describes what one message import produced.
type Outcome struct {
	// Results are the newly stored rows; re-imports contribute nothing here.
	Results []wordle.Result
	// Streak is true when the message was a multi-result digest.
	Streak bool
}

// ChannelReport summarizes a channel scan.
type ChannelReport struct {
	Scanned  int
	Imported int
	Failed   int
}
