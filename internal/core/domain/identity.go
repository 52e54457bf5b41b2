package domain

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"go.trai.ch/zerr"
)

const (
	// NpubPrefix is the bech32 human readable part of an encoded public key.
	NpubPrefix = "npub"
	// URIScheme prefixes NIP-21 references such as nostr:npub1...
	URIScheme = "nostr:"

	keySize = 32
)

// Identity is an opaque, comparable node identifier in the social graph.
//
// Identities produced by ParseIdentity hold the lowercase hex encoding of a
// 32-byte public key. The search engine relies on nothing but equality, so
// offline graphs may use free-form names.
type Identity string

// ParseIdentity parses a public key given as npub, nostr:npub or 64 hex characters.
func ParseIdentity(s string) (Identity, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, URIScheme)

	if strings.HasPrefix(strings.ToLower(s), NpubPrefix+"1") {
		hrp, data, err := bech32.DecodeToBase256(s)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, ErrInvalidIdentity.Error()), "identity", s)
		}
		if hrp != NpubPrefix || len(data) != keySize {
			return "", zerr.With(ErrInvalidIdentity, "identity", s)
		}
		return Identity(hex.EncodeToString(data)), nil
	}

	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != keySize {
		return "", zerr.With(ErrInvalidIdentity, "identity", s)
	}
	return Identity(strings.ToLower(s)), nil
}

// MustParseIdentity is like ParseIdentity but panics on error. Intended for tests and constants.
func MustParseIdentity(s string) Identity {
	id, err := ParseIdentity(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the raw identifier.
func (id Identity) String() string {
	return string(id)
}

// IsZero reports whether the identity is empty.
func (id Identity) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// IsKey reports whether the identity holds a 32-byte hex public key.
func (id Identity) IsKey() bool {
	if len(id) != 2*keySize {
		return false
	}
	_, err := hex.DecodeString(string(id))
	return err == nil
}

// Npub returns the bech32 encoding of the identity.
// It returns an error if the identity is not a hex public key.
func (id Identity) Npub() (string, error) {
	raw, err := hex.DecodeString(string(id))
	if err != nil || len(raw) != keySize {
		return "", zerr.With(ErrInvalidIdentity, "identity", string(id))
	}
	s, err := bech32.EncodeFromBase256(NpubPrefix, raw)
	if err != nil {
		return "", zerr.Wrap(err, ErrInvalidIdentity.Error())
	}
	return s, nil
}

// Display returns the npub form of key identities and the raw value otherwise.
func (id Identity) Display() string {
	if npub, err := id.Npub(); err == nil {
		return npub
	}
	return string(id)
}

// Short returns an abbreviated form for log lines.
func (id Identity) Short() string {
	s := id.Display()
	if len(s) <= 16 {
		return s
	}
	return s[:12] + "…" + s[len(s)-4:]
}
