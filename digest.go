package ledger

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/iov-one/ledger/errors"
)

// DigestLength is the size of every Digest.
const DigestLength = sha256.Size

// Digest is an opaque fixed width cryptographic digest. It identifies
// transactions and transfers and summarizes wallet histories. Code should
// only rely on its equality and ordering, never on the hash function.
type Digest []byte

// Sum computes the digest of the concatenation of all parts.
func Sum(parts ...[]byte) Digest {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// Fold chains next into prev. Folding is order sensitive, so the result
// summarizes the whole ordered sequence of folded digests.
func Fold(prev, next Digest) Digest {
	if len(prev) == 0 {
		prev = make(Digest, DigestLength)
	}
	return Sum(prev, next)
}

// Equals checks if two digests are the same
func (d Digest) Equals(o Digest) bool {
	return bytes.Equal(d, o)
}

// Compare returns an integer comparing two digests lexicographically.
func (d Digest) Compare(o Digest) int {
	return bytes.Compare(d, o)
}

// Clone returns a copy that does not share the underlying array.
func (d Digest) Clone() Digest {
	if d == nil {
		return nil
	}
	c := make(Digest, len(d))
	copy(c, d)
	return c
}

// Validate returns an error if the digest is not the valid size
func (d Digest) Validate() error {
	if len(d) == 0 {
		return errors.Wrap(errors.ErrEmpty, "digest")
	}
	if len(d) != DigestLength {
		return errors.Wrapf(errors.ErrInput, "digest length %d", len(d))
	}
	return nil
}

func (d Digest) String() string {
	if len(d) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(d))
}

// MarshalJSON provides a hex representation for JSON,
// to override the standard base64 []byte encoding
func (d Digest) MarshalJSON() ([]byte, error) {
	return marshalHex(d)
}

// UnmarshalJSON parses JSON in hex representation,
// to override the standard base64 []byte encoding
func (d *Digest) UnmarshalJSON(src []byte) error {
	dst := (*[]byte)(d)
	return unmarshalHex(src, dst)
}
