package http

import (
	"net/http"

	"github.com/mauv0809/wordle-tally/internal/config"
	"github.com/mauv0809/wordle-tally/internal/importer"
	"github.com/mauv0809/wordle-tally/internal/metrics"
	"github.com/mauv0809/wordle-tally/internal/notifier"
	"github.com/mauv0809/wordle-tally/internal/pubsub"
	"github.com/mauv0809/wordle-tally/internal/scoring"
	"github.com/mauv0809/wordle-tally/internal/wordle"
)

func NewServer(store wordle.Store, scoringEngine *scoring.Engine, imp *importer.Importer, notifier notifier.Notifier, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, pubsub pubsub.Client) *Server {
	server := &Server{
		Store:          store,
		Scoring:        scoringEngine,
		Importer:       imp,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Pubsub:         pubsub,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper, which
	// makes it easy to add more middlewares later, like request signing.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/status", Chain(s.StatusHandler(), paramsMiddleware))
	s.Router.Handle("/slack/events", Chain(s.SlackEventsHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/import", Chain(s.ImportCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/stats", Chain(s.StatsCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/history", Chain(s.HistoryCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/leaderboard", Chain(s.LeaderboardRefreshHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
