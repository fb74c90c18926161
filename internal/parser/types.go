package parser

import "time"

// Mention is a player reference found in a message. Exactly one field is
// set: UserID for an explicit platform mention (resolves directly) or Name
// for a bare @name token (needs a roster search).
type Mention struct {
	UserID string
	Name   string
}

// ParsedResult is one (player reference, attempt count) pair extracted from
// a message. Attempts is 1-6, or -1 for a failed puzzle.
type ParsedResult struct {
	Mention  Mention
	Attempts int
}

// Extraction is everything the parser pulled out of one result-bearing
// message. PuzzleID is only known for share cards; streak digests carry no
// puzzle number and are resolved from Day instead.
type Extraction struct {
	Results  []ParsedResult
	Day      time.Time
	PuzzleID int
}
