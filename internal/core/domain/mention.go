package domain

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

var npubReference = regexp.MustCompile(`nostr:npub1[0-9a-z]+`)

// Mention is a text note that references the bot.
type Mention struct {
	ID        string
	Author    Identity
	Content   string
	CreatedAt time.Time
	Tags      [][]string
}

// References returns the identities referenced as nostr:npub in the content,
// in order of first appearance. Undecodable references are skipped.
func (m Mention) References() []Identity {
	matches := npubReference.FindAllString(m.Content, -1)
	out := make([]Identity, 0, len(matches))
	for _, match := range matches {
		id, err := ParseIdentity(match)
		if err != nil {
			continue
		}
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// Addresses reports whether the content references bot explicitly.
func (m Mention) Addresses(bot Identity) bool {
	npub, err := bot.Npub()
	if err != nil {
		return false
	}
	return strings.Contains(m.Content, URIScheme+npub)
}

// Targets returns the source and target named in the mention besides bot.
func (m Mention) Targets(bot Identity) (source, target Identity, err error) {
	refs := slices.DeleteFunc(m.References(), func(id Identity) bool { return id == bot })

	switch {
	case len(refs) < 2:
		return "", "", zerr.With(ErrTooFewIdentities, "found", len(refs))
	case len(refs) > 2:
		return "", "", zerr.With(ErrTooManyIdentities, "found", len(refs))
	}
	return refs[0], refs[1], nil
}
