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

type Server struct {
	Store          wordle.Store
	Scoring        *scoring.Engine
	Importer       *importer.Importer
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Pubsub         pubsub.Client
	Router         *http.ServeMux
}
