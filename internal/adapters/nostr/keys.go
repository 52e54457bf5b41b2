package nostr

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/zerr"
)

const nsecPrefix = "nsec"

// Keys signs events for one identity.
type Keys struct {
	priv *btcec.PrivateKey
	pub  domain.Identity
}

// ParseSecretKey accepts an nsec bech32 string or 64 hex characters.
func ParseSecretKey(s string) (*Keys, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, domain.ErrMissingSecretKey
	}

	var raw []byte
	if strings.HasPrefix(strings.ToLower(s), nsecPrefix+"1") {
		hrp, data, err := bech32.DecodeToBase256(s)
		if err != nil || hrp != nsecPrefix {
			return nil, domain.ErrInvalidSecretKey
		}
		raw = data
	} else {
		data, err := hex.DecodeString(s)
		if err != nil {
			return nil, domain.ErrInvalidSecretKey
		}
		raw = data
	}

	if len(raw) != btcec.PrivKeyBytesLen || isZero(raw) {
		return nil, domain.ErrInvalidSecretKey
	}

	priv, pub := btcec.PrivKeyFromBytes(raw)
	return &Keys{
		priv: priv,
		pub:  domain.Identity(hex.EncodeToString(schnorr.SerializePubKey(pub))),
	}, nil
}

// Public returns the identity the keys sign for.
func (k *Keys) Public() domain.Identity {
	return k.pub
}

// Sign sets the pubkey, id and signature of ev.
func (k *Keys) Sign(ev *Event) error {
	ev.PubKey = k.pub.String()
	if ev.Tags == nil {
		ev.Tags = [][]string{}
	}

	id, err := ev.ComputeID()
	if err != nil {
		return zerr.Wrap(err, domain.ErrSignFailed.Error())
	}
	hash, _ := hex.DecodeString(id)

	sig, err := schnorr.Sign(k.priv, hash)
	if err != nil {
		return zerr.Wrap(err, domain.ErrSignFailed.Error())
	}

	ev.ID = id
	ev.Sig = hex.EncodeToString(sig.Serialize())
	return nil
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
