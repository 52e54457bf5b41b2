package nostr

import (
	"context"
	"slices"
	"time"

	"go.trai.ch/degrees/internal/core/domain"
)

const (
	tagEvent    = "e"
	markerRoot  = "root"
	markerReply = "reply"
)

// ReplyPublisher signs and publishes replies to mentions.
type ReplyPublisher struct {
	relays Publisher
	keys   *Keys
	now    func() time.Time
}

// NewReplyPublisher creates a publisher signing with keys.
func NewReplyPublisher(relays Publisher, keys *Keys) *ReplyPublisher {
	return &ReplyPublisher{relays: relays, keys: keys, now: time.Now}
}

// Reply publishes content as a text note replying to m.
func (p *ReplyPublisher) Reply(ctx context.Context, m domain.Mention, content string) error {
	ev := &Event{
		CreatedAt: p.now().Unix(),
		Kind:      KindTextNote,
		Tags:      ReplyTags(m),
		Content:   content,
	}
	if err := p.keys.Sign(ev); err != nil {
		return err
	}
	return p.relays.Publish(ctx, ev)
}

// ReplyTags returns the NIP-10 tags of a reply to m.
func ReplyTags(m domain.Mention) [][]string {
	var tags [][]string

	root := slices.IndexFunc(m.Tags, func(t []string) bool {
		return len(t) >= 4 && t[0] == tagEvent && t[3] == markerRoot
	})
	if root >= 0 {
		tags = append(tags, slices.Clone(m.Tags[root]))
		tags = append(tags, []string{tagEvent, m.ID, "", markerReply})
	} else {
		tags = append(tags, []string{tagEvent, m.ID, "", markerRoot})
	}

	seen := make(map[string]bool)
	addP := func(pk string) {
		if pk == "" || seen[pk] {
			return
		}
		seen[pk] = true
		tags = append(tags, []string{tagPubKey, pk})
	}
	addP(m.Author.String())
	for _, t := range m.Tags {
		if len(t) >= 2 && t[0] == tagPubKey {
			addP(t[1])
		}
	}
	return tags
}
