// Package reply renders search results as nostr notes and terminal text.
package reply

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/ui/style"
)

// Note renders res as the content of a reply note.
// Key identities become nostr:npub references so clients display them as mentions.
func Note(res domain.SearchResult) string {
	if !res.IsConnected() {
		return fmt.Sprintf("No connection found within %d degrees.", res.WithinDepth())
	}

	path := res.Path()
	if len(path) == 1 {
		return "That is the same profile, 0 degrees apart."
	}

	refs := make([]string, len(path))
	for i, id := range path {
		refs[i] = reference(id)
	}
	return fmt.Sprintf("%s apart:\n\n%s", degrees(res.Degrees()), strings.Join(refs, " -> "))
}

// Usage renders the reply to a mention that does not name exactly two profiles.
func Usage(err error) string {
	if errors.Is(err, domain.ErrTooManyIdentities) || strings.Contains(err.Error(), domain.ErrTooManyIdentities.Error()) {
		return "I can only connect two profiles at a time. Mention me with exactly two of them."
	}
	return "Mention me together with two profiles and I will look for the chain of mutual follows between them."
}

// Text renders res for a terminal.
func Text(res domain.SearchResult) string {
	var b strings.Builder
	if !res.IsConnected() {
		b.WriteString(style.Failure.Render(style.Cross + " no connection"))
		b.WriteString(style.Muted.Render(fmt.Sprintf(" within %d degrees (%s)", res.WithinDepth(), res.Reason())))
		b.WriteString("\n")
		writeStats(&b, res.Stats())
		return b.String()
	}

	b.WriteString(style.Success.Render(style.Check + " " + degrees(res.Degrees())))
	b.WriteString("\n")
	for i, id := range res.Path() {
		prefix := "  "
		if i > 0 {
			prefix = style.Hop.Render(style.Arrow) + " "
		}
		b.WriteString(prefix + id.Display() + "\n")
	}
	writeStats(&b, res.Stats())
	return b.String()
}

func writeStats(b *strings.Builder, s domain.SearchStats) {
	if s.Rounds == 0 {
		return
	}
	b.WriteString(style.Muted.Render(fmt.Sprintf(
		"%d rounds, %d fetched, %d failed, %d visited", s.Rounds, s.Fetched, s.Failed, s.Visited,
	)))
	b.WriteString("\n")
}

func reference(id domain.Identity) string {
	if npub, err := id.Npub(); err == nil {
		return domain.URIScheme + npub
	}
	return id.String()
}

func degrees(n int) string {
	if n == 1 {
		return "1 degree"
	}
	return fmt.Sprintf("%d degrees", n)
}
