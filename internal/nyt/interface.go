package nyt

import (
	"context"
	"time"
)

// Client fetches puzzle metadata from the day-keyed NYT Wordle endpoint.
type Client interface {
	GetMetadata(ctx context.Context, day time.Time) (Metadata, error)
}
