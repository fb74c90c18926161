package puzzles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tally/internal/metrics"
	"github.com/mauv0809/wordle-tally/internal/nyt"
	"github.com/mauv0809/wordle-tally/internal/wordle"
)

// ErrPuzzleResolution is returned when none of the nearby-day probes report
// the day or id being searched for.
var ErrPuzzleResolution = errors.New("puzzle resolution failed")

// probeOffsets is the fixed probe order. Puzzle numbering can be off by one
// across timezones, so the day itself is tried first, then the day before,
// then the day after.
var probeOffsets = []int{0, -1, 1}

// Resolver maps between calendar days, puzzle ids, and solution words using
// the NYT metadata endpoint, caching resolved puzzles in the store.
type Resolver struct {
	client  nyt.Client
	store   wordle.Store
	metrics metrics.Metrics
}

// New creates a new Resolver.
func New(client nyt.Client, store wordle.Store, metrics metrics.Metrics) *Resolver {
	return &Resolver{
		client:  client,
		store:   store,
		metrics: metrics,
	}
}

// DayForID finds the calendar day for a puzzle id, starting from approxDay.
func (r *Resolver) DayForID(ctx context.Context, id int, approxDay time.Time) (time.Time, error) {
	for _, offset := range probeOffsets {
		candidate := approxDay.AddDate(0, 0, offset)
		meta, err := r.fetch(ctx, candidate)
		if err != nil {
			log.Warn("Metadata probe failed", "day", candidate.Format(time.DateOnly), "error", err)
			continue
		}
		if meta.DaysSinceLaunch == id && meta.PrintDate != "" {
			day, err := time.Parse(time.DateOnly, meta.PrintDate)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse print date %q: %w", meta.PrintDate, err)
			}
			return day, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: no day found for puzzle %d near %s", ErrPuzzleResolution, id, approxDay.Format(time.DateOnly))
}

// IDForDay finds the puzzle id for a calendar day.
func (r *Resolver) IDForDay(ctx context.Context, day time.Time) (int, error) {
	for _, offset := range probeOffsets {
		candidate := day.AddDate(0, 0, offset)
		meta, err := r.fetch(ctx, candidate)
		if err != nil {
			log.Warn("Metadata probe failed", "day", candidate.Format(time.DateOnly), "error", err)
			continue
		}
		if meta.PrintDate == candidate.Format(time.DateOnly) {
			return meta.DaysSinceLaunch, nil
		}
	}
	return 0, fmt.Errorf("%w: no puzzle id found for %s", ErrPuzzleResolution, day.Format(time.DateOnly))
}

// SolutionForDay returns the upper-cased solution word for a calendar day.
// Unlike the id and day lookups there is no fallback: the response must
// report the exact day requested.
func (r *Resolver) SolutionForDay(ctx context.Context, day time.Time) (string, error) {
	meta, err := r.fetch(ctx, day)
	if err != nil {
		return "", err
	}
	if meta.PrintDate != day.Format(time.DateOnly) {
		return "", fmt.Errorf("%w: no solution found for %s", ErrPuzzleResolution, day.Format(time.DateOnly))
	}
	return strings.ToUpper(meta.Solution), nil
}

// GetOrCreate returns the stored puzzle for the given id, resolving and
// persisting it on first reference. Already-stored puzzles never trigger a
// metadata fetch.
func (r *Resolver) GetOrCreate(ctx context.Context, id int, approxDay time.Time) (*wordle.Puzzle, error) {
	puzzle, err := r.store.GetPuzzle(id)
	if err != nil {
		return nil, err
	}
	if puzzle != nil {
		return puzzle, nil
	}

	day, err := r.DayForID(ctx, id, approxDay)
	if err != nil {
		return nil, err
	}
	solution, err := r.SolutionForDay(ctx, day)
	if err != nil {
		return nil, err
	}

	puzzle = &wordle.Puzzle{
		ID:       id,
		Day:      day.Format(time.DateOnly),
		Solution: solution,
	}
	if err := r.store.SavePuzzle(puzzle); err != nil {
		return nil, err
	}
	return puzzle, nil
}

func (r *Resolver) fetch(ctx context.Context, day time.Time) (nyt.Metadata, error) {
	if r.metrics != nil {
		r.metrics.IncMetadataProbes()
	}
	return r.client.GetMetadata(ctx, day)
}
