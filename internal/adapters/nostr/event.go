// Package nostr talks to nostr relays: event codec and signing, a relay pool,
// and the mutuals, mention and reply adapters built on them.
package nostr

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
	"time"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/zerr"
)

// Event kinds used by the bot.
const (
	KindTextNote    = 1
	KindContactList = 3
)

// Event is a NIP-01 event.
type Event struct {
	ID        string     `json:"id"`
	PubKey    string     `json:"pubkey"`
	CreatedAt int64      `json:"created_at"`
	Kind      int        `json:"kind"`
	Tags      [][]string `json:"tags"`
	Content   string     `json:"content"`
	Sig       string     `json:"sig"`
}

// Serialize returns the canonical array the event id is computed over.
func (e *Event) Serialize() ([]byte, error) {
	tags := e.Tags
	if tags == nil {
		tags = [][]string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]any{0, e.PubKey, e.CreatedAt, e.Kind, tags, e.Content}); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ComputeID returns the lowercase hex sha256 of the serialized event.
func (e *Event) ComputeID() (string, error) {
	data, err := e.Serialize()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Verify checks the id and the BIP-340 signature of the event.
func (e *Event) Verify() error {
	id, err := e.ComputeID()
	if err != nil {
		return zerr.Wrap(err, domain.ErrInvalidEvent.Error())
	}
	if id != e.ID {
		return zerr.With(domain.ErrInvalidEvent, "id", e.ID)
	}

	pubBytes, err := hex.DecodeString(e.PubKey)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidEvent.Error()), "pubkey", e.PubKey)
	}
	pub, err := schnorr.ParsePubKey(pubBytes)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidEvent.Error()), "pubkey", e.PubKey)
	}

	sigBytes, err := hex.DecodeString(e.Sig)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidEvent.Error()), "id", e.ID)
	}
	sig, err := schnorr.ParseSignature(sigBytes)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidEvent.Error()), "id", e.ID)
	}

	hash, _ := hex.DecodeString(id)
	if !sig.Verify(hash, pub) {
		return zerr.With(domain.ErrInvalidEvent, "id", e.ID)
	}
	return nil
}

// Time returns CreatedAt as a time.Time.
func (e *Event) Time() time.Time {
	return time.Unix(e.CreatedAt, 0)
}

// TagValues returns the first value of every tag named name, in order.
func (e *Event) TagValues(name string) []string {
	var out []string
	for _, tag := range e.Tags {
		if len(tag) >= 2 && tag[0] == name {
			out = append(out, tag[1])
		}
	}
	return out
}

// Tagged reports whether the event has a tag name with value.
func (e *Event) Tagged(name, value string) bool {
	return slices.Contains(e.TagValues(name), value)
}

// newer reports whether a should replace b as the latest replaceable event.
// Ties on created_at go to the lower id.
func newer(a, b *Event) bool {
	if a.CreatedAt != b.CreatedAt {
		return a.CreatedAt > b.CreatedAt
	}
	return a.ID < b.ID
}
