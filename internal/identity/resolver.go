package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tally/internal/chat"
	"github.com/mauv0809/wordle-tally/internal/parser"
)

// ErrUnresolvedIdentity is returned when a mention cannot be mapped to a
// roster member. Callers skip the mention and continue the batch.
var ErrUnresolvedIdentity = errors.New("mention does not resolve to a known member")

// Resolver maps mention tokens to durable player IDs. Explicit platform
// mentions resolve directly; bare names are searched against the community
// roster.
type Resolver struct {
	gateway chat.Gateway
}

// New creates a new Resolver.
func New(gateway chat.Gateway) *Resolver {
	return &Resolver{gateway: gateway}
}

// Resolve returns the player ID for a mention within the given team.
// Name resolution is a case-insensitive exact match against each member's
// username, real name, and display name, in that priority order; the first
// match wins.
func (r *Resolver) Resolve(ctx context.Context, mention parser.Mention, teamID string) (string, error) {
	if mention.UserID != "" {
		return mention.UserID, nil
	}
	if mention.Name == "" {
		return "", ErrUnresolvedIdentity
	}

	members, err := r.gateway.ListMembers(ctx, teamID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch roster for team %s: %w", teamID, err)
	}

	for _, member := range members {
		for _, name := range []string{member.Username, member.RealName, member.DisplayName} {
			if name != "" && strings.EqualFold(name, mention.Name) {
				return member.ID, nil
			}
		}
	}

	log.Warn("Failed to resolve mentioned name against roster", "name", mention.Name, "teamID", teamID)
	return "", fmt.Errorf("%w: %s", ErrUnresolvedIdentity, mention.Name)
}
