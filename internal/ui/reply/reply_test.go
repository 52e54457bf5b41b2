package reply_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/ui/reply"
	"go.trai.ch/zerr"
)

func key(c string) domain.Identity {
	return domain.Identity(strings.Repeat(c, 64))
}

func TestNote(t *testing.T) {
	tests := []struct {
		name       string
		res        domain.SearchResult
		goldenName string
	}{
		{
			name:       "connected keys",
			res:        domain.Connected([]domain.Identity{key("1"), key("2"), key("3")}),
			goldenName: "note_connected",
		},
		{
			name:       "one degree",
			res:        domain.Connected([]domain.Identity{key("a"), key("b")}),
			goldenName: "note_one_degree",
		},
		{
			name:       "free form names",
			res:        domain.Connected([]domain.Identity{"alice", "bob", "carol"}),
			goldenName: "note_names",
		},
		{
			name:       "not connected",
			res:        domain.NotConnected(6, domain.ReasonDepthExhausted),
			goldenName: "note_not_connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(reply.Note(tt.res)))
		})
	}
}

func TestNote_SameProfile(t *testing.T) {
	assert.Equal(t, "That is the same profile, 0 degrees apart.", reply.Note(domain.Connected([]domain.Identity{"a"})))
}

func TestUsage(t *testing.T) {
	tooMany := zerr.With(domain.ErrTooManyIdentities, "found", 3)
	tooFew := zerr.With(domain.ErrTooFewIdentities, "found", 1)

	assert.Contains(t, reply.Usage(tooMany), "only connect two profiles")
	assert.Contains(t, reply.Usage(tooFew), "together with two profiles")
}

func TestText(t *testing.T) {
	stats := domain.SearchStats{Rounds: 3, Fetched: 7, Failed: 1, Visited: 12}
	tests := []struct {
		name       string
		res        domain.SearchResult
		goldenName string
	}{
		{
			name:       "connected",
			res:        domain.Connected([]domain.Identity{"alice", "bob", "carol"}).WithStats(stats),
			goldenName: "text_connected",
		},
		{
			name:       "not connected",
			res:        domain.NotConnected(3, domain.ReasonStalled).WithStats(stats),
			goldenName: "text_not_connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(reply.Text(tt.res)))
		})
	}
}
