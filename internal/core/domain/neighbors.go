package domain

import (
	"iter"
	"slices"
)

// NeighborSet is an immutable set of identities kept in sorted order.
// The zero value is an empty set.
type NeighborSet struct {
	ids []Identity
}

// NewNeighborSet builds a set from ids, dropping empty and duplicate entries.
func NewNeighborSet(ids ...Identity) NeighborSet {
	out := make([]Identity, 0, len(ids))
	for _, id := range ids {
		if !id.IsZero() {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return NeighborSet{ids: slices.Compact(out)}
}

// Len returns the number of identities in the set.
func (s NeighborSet) Len() int {
	return len(s.ids)
}

// Contains reports whether id is a member of the set.
func (s NeighborSet) Contains(id Identity) bool {
	_, ok := slices.BinarySearch(s.ids, id)
	return ok
}

// All iterates over the members in ascending order.
func (s NeighborSet) All() iter.Seq[Identity] {
	return slices.Values(s.ids)
}

// Slice returns a copy of the members in ascending order.
func (s NeighborSet) Slice() []Identity {
	return slices.Clone(s.ids)
}

// Without returns a set with id removed. The receiver is not modified.
func (s NeighborSet) Without(id Identity) NeighborSet {
	i, ok := slices.BinarySearch(s.ids, id)
	if !ok {
		return s
	}
	out := make([]Identity, 0, len(s.ids)-1)
	out = append(out, s.ids[:i]...)
	out = append(out, s.ids[i+1:]...)
	return NeighborSet{ids: out}
}

// Intersect returns the members present in both sets.
func (s NeighborSet) Intersect(other NeighborSet) NeighborSet {
	out := make([]Identity, 0, min(len(s.ids), len(other.ids)))
	i, j := 0, 0
	for i < len(s.ids) && j < len(other.ids) {
		switch {
		case s.ids[i] == other.ids[j]:
			out = append(out, s.ids[i])
			i++
			j++
		case s.ids[i] < other.ids[j]:
			i++
		default:
			j++
		}
	}
	return NeighborSet{ids: out}
}
