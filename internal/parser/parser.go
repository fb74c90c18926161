package parser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tally/internal/chat"
)

// ErrMissingInvoker is returned when a share card carries no resolvable
// invoking user. The card names nobody else, so the result is unusable.
var ErrMissingInvoker = errors.New("share card has no resolvable invoker")

var (
	rgxStreak        = regexp.MustCompile(`Your\s+group\s+is\s+on\s+an?\s+(\d+)\s+day\s+streak`)
	rgxStreakAttempt = regexp.MustCompile(`([a-zA-Z0-9]+)/\d+:`)
	rgxStreakMention = regexp.MustCompile(`<@(\w+)>|@(\w+)`)
	rgxShare         = regexp.MustCompile(`Wordle\s+(\d+)\s+([0-6X])/6`)
)

// Parser extracts Wordle results from messages posted by the companion bot.
type Parser struct {
	botUserID string
}

// New creates a Parser that only accepts messages from the given bot account.
func New(botUserID string) *Parser {
	return &Parser{botUserID: botUserID}
}

// Parse inspects a message and returns the results it carries, or nil when
// the message is not a result post. A streak digest is tried first, then a
// share card; matching neither is not an error, since most channel traffic
// is unrelated.
func (p *Parser) Parse(msg chat.Message) (*Extraction, error) {
	if msg.AuthorID != p.botUserID {
		log.Debug("Skipped message, author is not the Wordle bot", "timestamp", msg.Timestamp, "authorID", msg.AuthorID)
		return nil, nil
	}
	if msg.Text == "" && msg.CardText == "" {
		log.Debug("Skipped message, no data to import", "timestamp", msg.Timestamp)
		return nil, nil
	}

	if extraction := p.parseStreak(msg); extraction != nil {
		return extraction, nil
	}
	return p.parseShare(msg)
}

// parseStreak handles the multi-result digest shape. Each line with an
// attempt marker contributes one result per mention on that line; lines
// without a marker are skipped without affecting the rest of the message.
func (p *Parser) parseStreak(msg chat.Message) *Extraction {
	if msg.Text == "" || !rgxStreak.MatchString(msg.Text) {
		return nil
	}

	extraction := &Extraction{
		// The digest reports the previous day's results.
		Day: msg.CreatedAt.AddDate(0, 0, -1),
	}

	for _, line := range strings.Split(msg.Text, "\n") {
		attempt := rgxStreakAttempt.FindStringSubmatch(line)
		if attempt == nil {
			log.Debug("Skipped line, not an attempt", "timestamp", msg.Timestamp)
			continue
		}

		attempts, ok := parseAttempts(attempt[1])
		if !ok {
			log.Debug("Skipped line, attempt marker is not a grade", "timestamp", msg.Timestamp, "marker", attempt[1])
			continue
		}

		for _, mention := range rgxStreakMention.FindAllStringSubmatch(line, -1) {
			extraction.Results = append(extraction.Results, ParsedResult{
				Mention:  Mention{UserID: mention[1], Name: mention[2]},
				Attempts: attempts,
			})
		}
	}

	if len(extraction.Results) == 0 {
		return nil
	}
	return extraction
}

// parseShare handles the single-result card shape. The player is the card's
// invoking user, not a text mention.
func (p *Parser) parseShare(msg chat.Message) (*Extraction, error) {
	if msg.CardText == "" {
		return nil, nil
	}

	match := rgxShare.FindStringSubmatch(msg.CardText)
	if match == nil {
		log.Debug("Skipped message, card is not a share", "timestamp", msg.Timestamp)
		return nil, nil
	}

	puzzleID, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, err
	}
	attempts, ok := parseAttempts(match[2])
	if !ok {
		return nil, nil
	}

	if msg.InvokerID == "" {
		return nil, ErrMissingInvoker
	}

	return &Extraction{
		Results: []ParsedResult{{
			Mention:  Mention{UserID: msg.InvokerID},
			Attempts: attempts,
		}},
		Day:      msg.CreatedAt,
		PuzzleID: puzzleID,
	}, nil
}

// parseAttempts maps a grade token to an attempt count: "X" is the failure
// sentinel, single digits 1-6 are taken literally.
func parseAttempts(raw string) (int, bool) {
	if raw == "X" {
		return -1, true
	}
	if len(raw) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 6 {
		return 0, false
	}
	return n, true
}
