package ports

//go:generate mockgen -source=ledger.go -destination=mocks/mock_ledger.go -package=mocks

// Ledger remembers which mentions have been answered.
type Ledger interface {
	// Answered reports whether the mention with eventID has been answered.
	Answered(eventID string) (bool, error)
	// MarkAnswered records eventID as answered.
	MarkAnswered(eventID string) error
	// Close releases the underlying store.
	Close() error
}

// LedgerOpener opens ledgers.
type LedgerOpener interface {
	// Open opens or creates the ledger stored in dir.
	Open(dir string) (Ledger, error)
}
