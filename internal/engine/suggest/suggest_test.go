package suggest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports/mocks"
	"go.trai.ch/degrees/internal/engine/suggest"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockNeighborLookup, *mocks.MockLogger, *suggest.Suggester) {
	t.Helper()
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockNeighborLookup(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	return lookup, logger, suggest.New(lookup, logger, 2)
}

func expectNeighbors(lookup *mocks.MockNeighborLookup, id domain.Identity, ids ...domain.Identity) {
	lookup.EXPECT().GetOrFetch(gomock.Any(), id).Return(domain.NewNeighborSet(ids...), nil)
}

func TestSuggest_RanksBySharedMutuals(t *testing.T) {
	lookup, _, s := setup(t)

	expectNeighbors(lookup, "root", "a", "b", "c")
	expectNeighbors(lookup, "a", "root", "b", "x", "y")
	expectNeighbors(lookup, "b", "root", "a", "x", "z")
	expectNeighbors(lookup, "c", "root", "x", "y")

	got, err := s.Suggest(t.Context(), "root", 0)
	require.NoError(t, err)

	assert.Equal(t, []domain.Suggestion{
		{Identity: "x", Shared: 3},
		{Identity: "y", Shared: 2},
		{Identity: "z", Shared: 1},
	}, got)
}

func TestSuggest_Limit(t *testing.T) {
	lookup, _, s := setup(t)

	expectNeighbors(lookup, "root", "a")
	expectNeighbors(lookup, "a", "root", "q", "p", "r")

	got, err := s.Suggest(t.Context(), "root", 2)
	require.NoError(t, err)

	assert.Equal(t, []domain.Suggestion{
		{Identity: "p", Shared: 1},
		{Identity: "q", Shared: 1},
	}, got)
}

func TestSuggest_SkipsFailedNeighbors(t *testing.T) {
	lookup, logger, s := setup(t)

	expectNeighbors(lookup, "root", "a", "b")
	lookup.EXPECT().GetOrFetch(gomock.Any(), domain.Identity("a")).
		Return(domain.NeighborSet{}, errors.Join(domain.ErrFetchTimeout, context.DeadlineExceeded))
	expectNeighbors(lookup, "b", "root", "x")
	logger.EXPECT().Warn(gomock.Any())

	got, err := s.Suggest(t.Context(), "root", 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Suggestion{{Identity: "x", Shared: 1}}, got)
}

func TestSuggest_RootFailure(t *testing.T) {
	lookup, _, s := setup(t)

	lookup.EXPECT().GetOrFetch(gomock.Any(), domain.Identity("root")).
		Return(domain.NeighborSet{}, errors.Join(domain.ErrFetchNetwork, errors.New("down")))

	_, err := s.Suggest(t.Context(), "root", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchNetwork)
}

func TestSuggest_InvalidArguments(t *testing.T) {
	_, _, s := setup(t)

	_, err := s.Suggest(t.Context(), "", 0)
	assert.ErrorContains(t, err, domain.ErrInvalidIdentity.Error())

	_, err = s.Suggest(t.Context(), "root", -1)
	assert.ErrorContains(t, err, domain.ErrInvalidLimit.Error())
}
