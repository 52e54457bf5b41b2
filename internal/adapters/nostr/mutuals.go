package nostr

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const tagPubKey = "p"

// MutualsProvider computes mutual follows from kind-3 contact lists.
type MutualsProvider struct {
	relays Querier
}

// NewMutualsProvider creates a provider querying relays.
func NewMutualsProvider(relays Querier) *MutualsProvider {
	return &MutualsProvider{relays: relays}
}

// Mutuals returns the identities id follows that also follow id back.
func (p *MutualsProvider) Mutuals(ctx context.Context, id domain.Identity) (domain.NeighborSet, error) {
	if !id.IsKey() {
		return domain.NeighborSet{}, errors.Join(domain.ErrFetchMalformed, zerr.With(domain.ErrInvalidIdentity, "identity", id.String()))
	}

	var follows, followers domain.NeighborSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		follows, err = p.follows(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		followers, err = p.followers(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.NeighborSet{}, err
	}

	return follows.Intersect(followers).Without(id), nil
}

// follows reads the p tags of the newest contact list authored by id.
func (p *MutualsProvider) follows(ctx context.Context, id domain.Identity) (domain.NeighborSet, error) {
	events, err := p.relays.Query(ctx, Filter{
		Authors: []string{id.String()},
		Kinds:   []int{KindContactList},
	})
	if err != nil {
		return domain.NeighborSet{}, fetchError(ctx, err)
	}

	var latest *Event
	for _, ev := range events {
		if ev.PubKey != id.String() || ev.Kind != KindContactList {
			continue
		}
		if latest == nil || newer(ev, latest) {
			latest = ev
		}
	}
	if latest == nil {
		return domain.NeighborSet{}, nil
	}

	tagged := latest.TagValues(tagPubKey)
	keys := make([]domain.Identity, 0, len(tagged))
	for _, v := range tagged {
		if k, err := domain.ParseIdentity(v); err == nil && k.IsKey() {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 && len(tagged) > 0 {
		return domain.NeighborSet{}, errors.Join(domain.ErrFetchMalformed, fmt.Errorf("contact list %s has no valid keys", latest.ID))
	}
	return domain.NewNeighborSet(keys...), nil
}

// followers returns the authors whose newest contact list tags id.
func (p *MutualsProvider) followers(ctx context.Context, id domain.Identity) (domain.NeighborSet, error) {
	events, err := p.relays.Query(ctx, Filter{
		Kinds: []int{KindContactList},
		Tags:  map[string][]string{tagPubKey: {id.String()}},
	})
	if err != nil {
		return domain.NeighborSet{}, fetchError(ctx, err)
	}

	latest := make(map[string]*Event)
	for _, ev := range events {
		if ev.Kind != KindContactList {
			continue
		}
		if cur, ok := latest[ev.PubKey]; !ok || newer(ev, cur) {
			latest[ev.PubKey] = ev
		}
	}

	keys := make([]domain.Identity, 0, len(latest))
	for author, ev := range latest {
		if k := domain.Identity(author); k.IsKey() && ev.Tagged(tagPubKey, id.String()) {
			keys = append(keys, k)
		}
	}
	return domain.NewNeighborSet(keys...), nil
}

func fetchError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(domain.ErrFetchTimeout, err)
	}
	return errors.Join(domain.ErrFetchNetwork, err)
}
