package domain

import "slices"

// DefaultMaxDepth is the depth budget used when none is configured.
const DefaultMaxDepth = 6

// NotConnectedReason explains why a search ended without a path.
type NotConnectedReason int

const (
	// ReasonNone is set on connected results.
	ReasonNone NotConnectedReason = iota
	// ReasonDepthExhausted means no further expansion could produce a path within the budget.
	ReasonDepthExhausted
	// ReasonFrontierExhausted means a side ran out of nodes to expand.
	ReasonFrontierExhausted
	// ReasonStalled means every fetch failed on both sides.
	ReasonStalled
	// ReasonTimedOut means the search budget ended first.
	ReasonTimedOut
)

// String returns the reason as used in logs and metrics labels.
func (r NotConnectedReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonDepthExhausted:
		return "depth_exhausted"
	case ReasonFrontierExhausted:
		return "frontier_exhausted"
	case ReasonStalled:
		return "stalled"
	case ReasonTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// SearchStats counts the work done by one search.
type SearchStats struct {
	Rounds  int
	Fetched int
	Failed  int
	Visited int
}

// SearchResult is the terminal value of a search: either a path or a not-found marker.
type SearchResult struct {
	path        []Identity
	withinDepth int
	reason      NotConnectedReason
	stats       SearchStats
}

// Connected returns a result holding path, ordered from source to target inclusive.
func Connected(path []Identity) SearchResult {
	return SearchResult{path: slices.Clone(path)}
}

// NotConnected returns a result for a search that found no path within depth.
func NotConnected(withinDepth int, reason NotConnectedReason) SearchResult {
	return SearchResult{withinDepth: withinDepth, reason: reason}
}

// WithStats returns a copy of the result carrying stats.
func (r SearchResult) WithStats(stats SearchStats) SearchResult {
	r.stats = stats
	return r
}

// IsConnected reports whether a path was found.
func (r SearchResult) IsConnected() bool {
	return len(r.path) > 0
}

// Path returns a copy of the path, or nil when not connected.
func (r SearchResult) Path() []Identity {
	return slices.Clone(r.path)
}

// Degrees returns the number of hops on the path, or -1 when not connected.
func (r SearchResult) Degrees() int {
	if !r.IsConnected() {
		return -1
	}
	return len(r.path) - 1
}

// WithinDepth returns the depth budget a not-connected search was bounded by.
func (r SearchResult) WithinDepth() int {
	return r.withinDepth
}

// Reason returns why the search ended without a path.
func (r SearchResult) Reason() NotConnectedReason {
	return r.reason
}

// Stats returns the work counters of the search.
func (r SearchResult) Stats() SearchStats {
	return r.stats
}

// Outcome returns a short label for logs and metrics.
func (r SearchResult) Outcome() string {
	if r.IsConnected() {
		return "connected"
	}
	return "not_connected"
}
