package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidIdentity is returned when an identity is empty or cannot be parsed.
	ErrInvalidIdentity = zerr.New("invalid identity")

	// ErrInvalidMaxDepth is returned when a search is started with a depth budget below one.
	ErrInvalidMaxDepth = zerr.New("max depth must be at least 1")

	// ErrInvalidLimit is returned when a suggestion limit is negative.
	ErrInvalidLimit = zerr.New("limit must not be negative")

	// ErrNotConnected is returned by the CLI when a search finished without a path.
	ErrNotConnected = zerr.New("no connection found")

	// ErrFetchTimeout is returned when a neighbor fetch does not finish within its timeout.
	ErrFetchTimeout = zerr.New("neighbor fetch timed out")

	// ErrFetchNetwork is returned when a neighbor fetch fails on the network.
	ErrFetchNetwork = zerr.New("neighbor fetch failed")

	// ErrFetchMalformed is returned when the data behind a neighbor fetch cannot be decoded.
	ErrFetchMalformed = zerr.New("malformed neighbor data")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the merged configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrEnvLoadFailed is returned when a .env file exists but cannot be loaded.
	ErrEnvLoadFailed = zerr.New("failed to load .env file")

	// ErrMissingSecretKey is returned when the bot is started without a secret key.
	ErrMissingSecretKey = zerr.New("secret key is required to listen, set DEGREES_SECRET_KEY")

	// ErrInvalidSecretKey is returned when the secret key is neither nsec nor 64 hex characters.
	ErrInvalidSecretKey = zerr.New("invalid secret key")

	// ErrNoRelays is returned when no relay URL is configured.
	ErrNoRelays = zerr.New("no relays configured")

	// ErrRelayDialFailed is returned when a websocket connection to a relay cannot be opened.
	ErrRelayDialFailed = zerr.New("failed to connect to relay")

	// ErrRelayClosed is returned when a relay connection closes while a request is pending.
	ErrRelayClosed = zerr.New("relay connection closed")

	// ErrRelayRejected is returned when a relay answers a publish with OK false.
	ErrRelayRejected = zerr.New("relay rejected event")

	// ErrRelaySubscriptionClosed is returned when a relay sends CLOSED for a subscription.
	ErrRelaySubscriptionClosed = zerr.New("relay closed subscription")

	// ErrAllRelaysFailed is returned when a query or publish fails on every relay.
	ErrAllRelaysFailed = zerr.New("request failed on every relay")

	// ErrInvalidEvent is returned when an event from a relay has a bad id or signature.
	ErrInvalidEvent = zerr.New("invalid event")

	// ErrSignFailed is returned when an event cannot be signed.
	ErrSignFailed = zerr.New("failed to sign event")

	// ErrTooFewIdentities is returned when a mention names fewer than two other identities.
	ErrTooFewIdentities = zerr.New("mention must name two identities")

	// ErrTooManyIdentities is returned when a mention names more than two other identities.
	ErrTooManyIdentities = zerr.New("mention names more than two identities")

	// ErrLedgerOpenFailed is returned when the answered-mention ledger cannot be opened.
	ErrLedgerOpenFailed = zerr.New("failed to open ledger")

	// ErrLedgerReadFailed is returned when the ledger cannot be queried.
	ErrLedgerReadFailed = zerr.New("failed to read ledger")

	// ErrLedgerWriteFailed is returned when a mention cannot be recorded in the ledger.
	ErrLedgerWriteFailed = zerr.New("failed to write ledger")

	// ErrGraphFileReadFailed is returned when a graph file cannot be read.
	ErrGraphFileReadFailed = zerr.New("failed to read graph file")

	// ErrGraphFileParseFailed is returned when a graph file is not valid YAML.
	ErrGraphFileParseFailed = zerr.New("failed to parse graph file")

	// ErrListenerUnavailable is returned when listening is requested without a mention source.
	ErrListenerUnavailable = zerr.New("network does not support listening for mentions")

	// ErrMetricsServerFailed is returned when the metrics endpoint stops unexpectedly.
	ErrMetricsServerFailed = zerr.New("metrics server failed")
)
