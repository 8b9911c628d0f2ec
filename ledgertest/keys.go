package ledgertest

import (
	"crypto/sha256"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/crypto"
)

// NewKey returns a random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKey()
}

// NewIdentity returns the identity of a random private key.
func NewIdentity() ledger.Identity {
	return NewKey().Identity()
}

// KeyFromName returns a private key that is always the same for given name.
// Use it to get readable, reproducible test fixtures.
func KeyFromName(name string) *crypto.PrivateKey {
	seed := sha256.Sum256([]byte(name))
	key, err := crypto.PrivKeyFromSeed(seed[:])
	if err != nil {
		panic(err)
	}
	return key
}
