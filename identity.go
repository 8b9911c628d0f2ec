package ledger

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/ledger/crypto/bech32"
	"github.com/iov-one/ledger/errors"
)

const (
	// IdentityLength is the length of an ed25519 public key.
	IdentityLength = 32

	// IdentityHRP is the human readable part of bech32 encoded identities.
	IdentityHRP = "msig"
)

// Identity is the public key that identifies a wallet owner. Every
// message reaching a handler carries a verified Identity of its sender.
type Identity []byte

// Equals checks if two identities are the same
func (i Identity) Equals(o Identity) bool {
	return bytes.Equal(i, o)
}

// Clone returns a copy that does not share the underlying array.
func (i Identity) Clone() Identity {
	if i == nil {
		return nil
	}
	c := make(Identity, len(i))
	copy(c, i)
	return c
}

// Validate returns an error if the identity is not the valid size
func (i Identity) Validate() error {
	if len(i) == 0 {
		return errors.Wrap(errors.ErrEmpty, "identity")
	}
	if len(i) != IdentityLength {
		return errors.Wrapf(errors.ErrInput, "identity length %d", len(i))
	}
	return nil
}

// String returns a human readable bech32 representation.
func (i Identity) String() string {
	if len(i) == 0 {
		return "(nil)"
	}
	s, err := bech32.Encode(IdentityHRP, i)
	if err != nil {
		return strings.ToUpper(hex.EncodeToString(i))
	}
	return string(s)
}

// MarshalJSON provides a hex representation for JSON,
// to override the standard base64 []byte encoding
func (i Identity) MarshalJSON() ([]byte, error) {
	return marshalHex(i)
}

// UnmarshalJSON accepts both bech32 and hex representation.
func (i *Identity) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "identity must be a string")
	}
	id, err := ParseIdentity(s)
	if err != nil {
		return err
	}
	*i = id
	return nil
}

// ParseIdentity decodes an identity from its bech32 or hex form.
func ParseIdentity(s string) (Identity, error) {
	if strings.HasPrefix(s, IdentityHRP+"1") {
		hrp, payload, err := bech32.Decode(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
		if hrp != IdentityHRP {
			return nil, errors.Wrapf(errors.ErrInput, "unknown prefix %q", hrp)
		}
		return validIdentity(payload)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "identity is neither bech32 nor hex")
	}
	return validIdentity(raw)
}

func validIdentity(raw []byte) (Identity, error) {
	id := Identity(raw)
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return id, nil
}

func marshalHex(bytes []byte) ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(bytes))
	return json.Marshal(s)
}

func unmarshalHex(src []byte, dst *[]byte) error {
	var s string
	if err := json.Unmarshal(src, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "parse string")
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrap(errors.ErrInput, "invalid hex")
	}
	*dst = raw
	return nil
}
