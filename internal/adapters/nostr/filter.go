package nostr

import (
	"encoding/json"
	"maps"
	"slices"
)

// Filter selects events in a REQ. Tags maps a single letter to its values and
// is encoded as "#<letter>".
type Filter struct {
	IDs     []string
	Authors []string
	Kinds   []int
	Tags    map[string][]string
	Since   int64
	Until   int64
	Limit   int
}

// MarshalJSON encodes the filter, omitting empty fields.
func (f Filter) MarshalJSON() ([]byte, error) {
	out := make(map[string]any)
	if len(f.IDs) > 0 {
		out["ids"] = f.IDs
	}
	if len(f.Authors) > 0 {
		out["authors"] = f.Authors
	}
	if len(f.Kinds) > 0 {
		out["kinds"] = f.Kinds
	}
	for _, name := range slices.Sorted(maps.Keys(f.Tags)) {
		if values := f.Tags[name]; len(values) > 0 {
			out["#"+name] = values
		}
	}
	if f.Since > 0 {
		out["since"] = f.Since
	}
	if f.Until > 0 {
		out["until"] = f.Until
	}
	if f.Limit > 0 {
		out["limit"] = f.Limit
	}
	return json.Marshal(out)
}

// Matches reports whether ev satisfies the filter.
func (f Filter) Matches(ev *Event) bool {
	if len(f.IDs) > 0 && !slices.Contains(f.IDs, ev.ID) {
		return false
	}
	if len(f.Authors) > 0 && !slices.Contains(f.Authors, ev.PubKey) {
		return false
	}
	if len(f.Kinds) > 0 && !slices.Contains(f.Kinds, ev.Kind) {
		return false
	}
	for name, values := range f.Tags {
		if len(values) == 0 {
			continue
		}
		if !slices.ContainsFunc(values, func(v string) bool { return ev.Tagged(name, v) }) {
			return false
		}
	}
	if f.Since > 0 && ev.CreatedAt < f.Since {
		return false
	}
	if f.Until > 0 && ev.CreatedAt > f.Until {
		return false
	}
	return true
}
