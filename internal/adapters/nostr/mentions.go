package nostr

import (
	"cmp"
	"context"
	"slices"
	"time"

	"go.trai.ch/degrees/internal/core/domain"
)

// MentionSource finds text notes that address the bot.
type MentionSource struct {
	relays Querier
	bot    domain.Identity
}

// NewMentionSource creates a source for notes that mention bot.
func NewMentionSource(relays Querier, bot domain.Identity) *MentionSource {
	return &MentionSource{relays: relays, bot: bot}
}

// Mentions returns notes tagging the bot whose content references it as
// nostr:npub, oldest first.
func (s *MentionSource) Mentions(ctx context.Context, since time.Time) ([]domain.Mention, error) {
	filter := Filter{
		Kinds: []int{KindTextNote},
		Tags:  map[string][]string{tagPubKey: {s.bot.String()}},
	}
	if !since.IsZero() {
		filter.Since = since.Unix()
	}

	events, err := s.relays.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Mention, 0, len(events))
	for _, ev := range events {
		if ev.Kind != KindTextNote || ev.PubKey == s.bot.String() {
			continue
		}
		m := domain.Mention{
			ID:        ev.ID,
			Author:    domain.Identity(ev.PubKey),
			Content:   ev.Content,
			CreatedAt: ev.Time(),
			Tags:      ev.Tags,
		}
		if !m.Addresses(s.bot) {
			continue
		}
		out = append(out, m)
	}

	slices.SortFunc(out, func(a, b domain.Mention) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}
