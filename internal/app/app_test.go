package app_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/degrees/internal/adapters/graphfile"
	"go.trai.ch/degrees/internal/adapters/telemetry"
	"go.trai.ch/degrees/internal/app"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/degrees/internal/core/ports/mocks"
	"go.trai.ch/degrees/internal/ui/reply"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader    *mocks.MockConfigLoader
	connector *mocks.MockNetworkConnector
	graphs    *mocks.MockGraphSource
	ledgers   *mocks.MockLedgerOpener
	logger    *mocks.MockLogger
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		connector: mocks.NewMockNetworkConnector(ctrl),
		graphs:    mocks.NewMockGraphSource(ctrl),
		ledgers:   mocks.NewMockLedgerOpener(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.loader, f.connector, f.graphs, f.ledgers, f.logger, telemetry.NewNoOpTracer())
	return f
}

const graphYAML = `
follows:
  alice: [bob, carol]
  bob: [alice, dave, erin]
  carol: [alice, erin]
  dave: [bob]
  erin: [bob, carol, frank]
  frank: [erin]
`

func (f *fixture) expectGraph(t *testing.T, path string) {
	t.Helper()
	p, err := graphfile.Parse([]byte(graphYAML))
	require.NoError(t, err)
	f.graphs.EXPECT().Open(path).Return(p, nil)
}

func TestApp_FindOverGraphFile(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("cfg.yaml").Return(domain.DefaultConfig(), nil)
	f.expectGraph(t, "graph.yaml")

	res, err := f.app.Find(t.Context(), "alice", "frank", app.FindOptions{
		SourceOptions: app.SourceOptions{ConfigPath: "cfg.yaml", GraphPath: "graph.yaml"},
	})
	require.NoError(t, err)

	require.True(t, res.IsConnected())
	assert.Equal(t, 3, res.Degrees())
	path := res.Path()
	assert.Equal(t, domain.Identity("alice"), path[0])
	assert.Equal(t, domain.Identity("frank"), path[3])
}

func TestApp_FindMaxDepthOverride(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	f.expectGraph(t, "graph.yaml")

	res, err := f.app.Find(t.Context(), "alice", "frank", app.FindOptions{
		SourceOptions: app.SourceOptions{GraphPath: "graph.yaml"},
		MaxDepth:      2,
	})
	require.NoError(t, err)
	assert.False(t, res.IsConnected())
	assert.Equal(t, 2, res.WithinDepth())
	assert.Equal(t, domain.ReasonDepthExhausted, res.Reason())
}

func TestApp_FindOverRelays(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	network := mocks.NewMockNetwork(ctrl)

	a, b := key("a"), key("b")
	npubA, err := a.Npub()
	require.NoError(t, err)

	cfg := domain.DefaultConfig()
	cfg.SecretKey = "nsec-is-not-needed-to-search"
	f.loader.EXPECT().Load("").Return(cfg, nil)
	f.connector.EXPECT().Connect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got domain.Config) (ports.Network, error) {
			assert.Empty(t, got.SecretKey)
			return network, nil
		})
	network.EXPECT().Mutuals(gomock.Any(), a).Return(domain.NewNeighborSet(b), nil)
	network.EXPECT().Close()

	res, err := f.app.Find(t.Context(), "nostr:"+npubA, b.String(), app.FindOptions{})
	require.NoError(t, err)
	assert.Equal(t, []domain.Identity{a, b}, res.Path())
}

func TestApp_FindErrors(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load("").Return(domain.Config{}, domain.ErrConfigInvalid)

		_, err := f.app.Find(t.Context(), "a", "b", app.FindOptions{})
		assert.ErrorContains(t, err, "failed to load configuration")
	})

	t.Run("names need a graph file", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)

		_, err := f.app.Find(t.Context(), "alice", "bob", app.FindOptions{})
		assert.ErrorContains(t, err, domain.ErrInvalidIdentity.Error())
	})

	t.Run("connect", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
		f.connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAllRelaysFailed)

		_, err := f.app.Find(t.Context(), key("a").String(), key("b").String(), app.FindOptions{})
		assert.ErrorContains(t, err, "failed to connect to relays")
	})

	t.Run("graph file", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
		f.graphs.EXPECT().Open("missing.yaml").Return(nil, domain.ErrGraphFileReadFailed)

		_, err := f.app.Find(t.Context(), "a", "b", app.FindOptions{SourceOptions: app.SourceOptions{GraphPath: "missing.yaml"}})
		assert.ErrorIs(t, err, domain.ErrGraphFileReadFailed)
	})
}

// flakyEdge serves a graph in which b drops a after its first fetch.
type flakyEdge struct {
	mu     sync.Mutex
	bCalls int
}

func (p *flakyEdge) Mutuals(_ context.Context, id domain.Identity) (domain.NeighborSet, error) {
	switch id {
	case "a", "c":
		return domain.NewNeighborSet("b"), nil
	case "b":
		p.mu.Lock()
		defer p.mu.Unlock()
		p.bCalls++
		if p.bCalls == 1 {
			return domain.NewNeighborSet("a", "c"), nil
		}
		return domain.NewNeighborSet("c"), nil
	}
	return domain.NeighborSet{}, nil
}

func TestApp_FindVerifiesPath(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()
	cfg.Search.VerifyPath = true
	cfg.Search.VerifyAttempts = 2
	f.loader.EXPECT().Load("").Return(cfg, nil)

	provider := &flakyEdge{}
	f.graphs.EXPECT().Open("g.yaml").Return(provider, nil)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	res, err := f.app.Find(t.Context(), "a", "c", app.FindOptions{SourceOptions: app.SourceOptions{GraphPath: "g.yaml"}})
	require.NoError(t, err)
	assert.False(t, res.IsConnected())
	assert.Equal(t, domain.ReasonStalled, res.Reason())
	assert.Equal(t, 3, provider.bCalls)
}

func TestApp_FindReportsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	m := mocks.NewMockMetrics(ctrl)
	f.app.WithMetrics(m, nil)

	f.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	f.expectGraph(t, "graph.yaml")
	m.EXPECT().ObserveCacheLookup(gomock.Any()).AnyTimes()
	m.EXPECT().ObserveFetch("ok").AnyTimes()
	m.EXPECT().ObserveSearch("connected", "none", 1, gomock.Any())

	_, err := f.app.Find(t.Context(), "alice", "bob", app.FindOptions{SourceOptions: app.SourceOptions{GraphPath: "graph.yaml"}})
	require.NoError(t, err)
}

func TestApp_Suggest(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	f.expectGraph(t, "graph.yaml")

	got, err := f.app.Suggest(t.Context(), "alice", app.SuggestOptions{
		SourceOptions: app.SourceOptions{GraphPath: "graph.yaml"},
		Limit:         1,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Suggestion{{Identity: "erin", Shared: 2}}, got)
}

func key(c string) domain.Identity {
	return domain.Identity(strings.Repeat(c, 64))
}

// memLedger is an in-memory ports.Ledger.
type memLedger struct {
	mu       sync.Mutex
	answered map[string]bool
	closed   bool
}

func (l *memLedger) Answered(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.answered[id], nil
}

func (l *memLedger) MarkAnswered(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.answered[id] = true
	return nil
}

func (l *memLedger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}

type sentReply struct {
	mentionID string
	content   string
}

type listenFixture struct {
	*fixture
	network *mocks.MockNetwork
	ledger  *memLedger

	mu       sync.Mutex
	replies  []sentReply
	failNext int
}

func (lf *listenFixture) Replies() []sentReply {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	return append([]sentReply(nil), lf.replies...)
}

func newListenFixture(t *testing.T, mentions []domain.Mention) *listenFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	lf := &listenFixture{
		fixture: newFixture(t),
		network: mocks.NewMockNetwork(ctrl),
		ledger:  &memLedger{answered: make(map[string]bool)},
	}

	cfg := domain.DefaultConfig()
	cfg.SecretKey = "secret"
	cfg.Listen.PollInterval = 100 * time.Second
	cfg.Listen.Workers = 2
	cfg.Listen.LedgerDir = "ledger"

	graph := map[domain.Identity]domain.NeighborSet{
		key("a"): domain.NewNeighborSet(key("b")),
		key("b"): domain.NewNeighborSet(key("a"), key("c")),
		key("c"): domain.NewNeighborSet(key("b")),
	}

	lf.loader.EXPECT().Load("").Return(cfg, nil)
	lf.connector.EXPECT().Connect(gomock.Any(), cfg).Return(lf.network, nil)
	lf.ledgers.EXPECT().Open("ledger").Return(lf.ledger, nil)
	lf.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	lf.network.EXPECT().Self().Return(key("f")).AnyTimes()
	lf.network.EXPECT().Close()
	lf.network.EXPECT().Mentions(gomock.Any(), gomock.Any()).Return(mentions, nil).AnyTimes()
	lf.network.EXPECT().Mutuals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id domain.Identity) (domain.NeighborSet, error) {
			return graph[id], nil
		}).AnyTimes()
	lf.network.EXPECT().Reply(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m domain.Mention, content string) error {
			lf.mu.Lock()
			defer lf.mu.Unlock()
			if lf.failNext > 0 {
				lf.failNext--
				return errors.New("relay down")
			}
			lf.replies = append(lf.replies, sentReply{mentionID: m.ID, content: content})
			return nil
		}).AnyTimes()

	return lf
}

func mention(t *testing.T, id string, refs ...domain.Identity) domain.Mention {
	t.Helper()
	var b strings.Builder
	for _, ref := range append([]domain.Identity{key("f")}, refs...) {
		npub, err := ref.Npub()
		require.NoError(t, err)
		b.WriteString("nostr:" + npub + " ")
	}
	return domain.Mention{ID: id, Author: key("e"), Content: b.String()}
}

func TestApp_ListenAnswersEachMentionOnce(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lf := newListenFixture(t, []domain.Mention{
			mention(t, "m1", key("a"), key("c")),
			mention(t, "m2", key("a")),
		})

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() { done <- lf.app.Listen(ctx, app.ListenOptions{}) }()

		synctest.Wait()
		replies := lf.Replies()
		require.Len(t, replies, 2)

		byID := map[string]string{}
		for _, r := range replies {
			byID[r.mentionID] = r.content
		}
		assert.Contains(t, byID["m1"], "2 degrees apart")
		assert.Equal(t, reply.Usage(domain.ErrTooFewIdentities), byID["m2"])

		time.Sleep(100 * time.Second)
		synctest.Wait()
		assert.Len(t, lf.Replies(), 2, "answered mentions are not answered again")

		cancel()
		require.NoError(t, <-done)
		assert.True(t, lf.ledger.closed)
	})
}

func TestApp_ListenRetriesFailedReplies(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lf := newListenFixture(t, []domain.Mention{mention(t, "m1", key("a"), key("c"))})
		lf.failNext = 1
		lf.logger.EXPECT().Error(gomock.Any()).Times(1)

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() { done <- lf.app.Listen(ctx, app.ListenOptions{}) }()

		synctest.Wait()
		assert.Empty(t, lf.Replies())

		time.Sleep(100 * time.Second)
		synctest.Wait()
		assert.Len(t, lf.Replies(), 1)

		cancel()
		require.NoError(t, <-done)
	})
}

func TestApp_ListenRequiresSecretKey(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)

	err := f.app.Listen(t.Context(), app.ListenOptions{})
	assert.ErrorIs(t, err, domain.ErrMissingSecretKey)
}
