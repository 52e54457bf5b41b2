package graphfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/degrees/internal/adapters/graphfile"
	"go.trai.ch/degrees/internal/core/domain"
)

const sample = `
follows:
  alice: [bob, carol, dave]
  bob: [alice, carol]
  carol: [bob]
  dave: [erin]
  npub10elfcs4fr0l0r8af98jlmgdh9c8tcxjvz9qkw038js35mp4dma8qzvjptg: [alice]
`

const sampleHex = "7e7e9c42a91bfef19fa929e5fda1b72e0ebc1a4c1141673e2794234d86addf4e"

func TestParse_Mutuals(t *testing.T) {
	p, err := graphfile.Parse([]byte(sample))
	require.NoError(t, err)

	tests := []struct {
		id   domain.Identity
		want []domain.Identity
	}{
		{id: "alice", want: []domain.Identity{"bob"}},
		{id: "bob", want: []domain.Identity{"alice", "carol"}},
		{id: "carol", want: []domain.Identity{"bob"}},
		{id: "dave", want: nil},
		{id: "nobody", want: nil},
		{id: sampleHex, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			ns, err := p.Mutuals(t.Context(), tt.id)
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Zero(t, ns.Len())
				return
			}
			assert.Equal(t, tt.want, ns.Slice())
		})
	}
	assert.Equal(t, 5, p.Identities())
}

func TestParse_NormalizesKeys(t *testing.T) {
	p, err := graphfile.Parse([]byte(`
follows:
  npub10elfcs4fr0l0r8af98jlmgdh9c8tcxjvz9qkw038js35mp4dma8qzvjptg: [bob]
  bob: ["` + sampleHex + `", bob]
`))
	require.NoError(t, err)

	ns, err := p.Mutuals(t.Context(), sampleHex)
	require.NoError(t, err)
	assert.Equal(t, []domain.Identity{"bob"}, ns.Slice())

	ns, err = p.Mutuals(t.Context(), "bob")
	require.NoError(t, err)
	assert.Equal(t, []domain.Identity{sampleHex}, ns.Slice(), "self follows are ignored")
}

func TestParse_Errors(t *testing.T) {
	_, err := graphfile.Parse([]byte("follows: [not, a, map]"))
	assert.ErrorContains(t, err, domain.ErrGraphFileParseFailed.Error())

	_, err = graphfile.Parse([]byte("follows:\n  \"\": [a]\n"))
	assert.ErrorIs(t, err, domain.ErrGraphFileParseFailed)
}

func TestSource_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	provider, err := graphfile.Source{}.Open(path)
	require.NoError(t, err)
	ns, err := provider.Mutuals(t.Context(), "alice")
	require.NoError(t, err)
	assert.True(t, ns.Contains("bob"))

	_, err = graphfile.Source{}.Open(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, domain.ErrGraphFileReadFailed.Error())
}

func TestProvider_HonoursContext(t *testing.T) {
	p, err := graphfile.Parse([]byte(sample))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err = p.Mutuals(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
}
