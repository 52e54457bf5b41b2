// Package graphfile serves mutuals from a YAML follow map, for offline runs.
package graphfile

import (
	"context"
	"errors"
	"os"
	"strings"

	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type document struct {
	Follows map[string][]string `yaml:"follows"`
}

// Provider answers Mutuals from an in-memory follow map.
type Provider struct {
	follows   map[domain.Identity]domain.NeighborSet
	followers map[domain.Identity]domain.NeighborSet
}

// Source implements ports.GraphSource.
type Source struct{}

// Open loads the graph file at path.
func (Source) Open(path string) (ports.NeighborProvider, error) {
	return Load(path)
}

// Load reads and parses the graph file at path.
func Load(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGraphFileReadFailed.Error()), "path", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return p, nil
}

// Parse builds a Provider from YAML. Keys and values may be npub, hex or
// free-form names; keys are normalized to hex when they parse as one.
func Parse(data []byte) (*Provider, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrGraphFileParseFailed.Error())
	}

	raw := make(map[domain.Identity][]domain.Identity)
	incoming := make(map[domain.Identity][]domain.Identity)
	for from, tos := range doc.Follows {
		src := normalize(from)
		if src.IsZero() {
			return nil, errors.Join(domain.ErrGraphFileParseFailed, domain.ErrInvalidIdentity)
		}
		for _, to := range tos {
			dst := normalize(to)
			if dst.IsZero() || dst == src {
				continue
			}
			raw[src] = append(raw[src], dst)
			incoming[dst] = append(incoming[dst], src)
		}
	}

	p := &Provider{
		follows:   make(map[domain.Identity]domain.NeighborSet, len(raw)),
		followers: make(map[domain.Identity]domain.NeighborSet, len(incoming)),
	}
	for id, ids := range raw {
		p.follows[id] = domain.NewNeighborSet(ids...)
	}
	for id, ids := range incoming {
		p.followers[id] = domain.NewNeighborSet(ids...)
	}
	return p, nil
}

// Mutuals returns follows ∩ followers of id.
func (p *Provider) Mutuals(ctx context.Context, id domain.Identity) (domain.NeighborSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.NeighborSet{}, err
	}
	return p.follows[id].Intersect(p.followers[id]).Without(id), nil
}

// Identities returns the number of identities with at least one follow.
func (p *Provider) Identities() int {
	return len(p.follows)
}

func normalize(s string) domain.Identity {
	s = strings.TrimSpace(s)
	if id, err := domain.ParseIdentity(s); err == nil {
		return id
	}
	return domain.Identity(s)
}
