package domain

// Suggestion is a second-degree identity ranked by how many of the root's
// mutuals it shares.
type Suggestion struct {
	Identity Identity
	Shared   int
}
