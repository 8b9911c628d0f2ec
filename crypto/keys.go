/*
Package crypto wraps the ed25519 signature scheme used to authenticate
transactions. A public key doubles as the wallet Identity.
*/
package crypto

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"golang.org/x/crypto/ed25519"
)

// PrivateKey signs messages on behalf of a wallet owner.
type PrivateKey struct {
	key ed25519.PrivateKey
}

// GenPrivKey returns a random new private key
func GenPrivKey() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{key: priv}
}

// PrivKeyFromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Wrapf(errors.ErrInput, "seed must be %d bytes", ed25519.SeedSize)
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// Sign returns a signature of the message.
func (p *PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(p.key, message)
}

// Identity returns the public key of this private key.
func (p *PrivateKey) Identity() ledger.Identity {
	pub := p.key.Public().(ed25519.PublicKey)
	return ledger.Identity(pub)
}

// Seed returns the seed this key was derived from.
func (p *PrivateKey) Seed() []byte {
	return p.key.Seed()
}

// Verify checks the signature was created with the private key
// of given identity over the message.
func Verify(id ledger.Identity, message, signature []byte) bool {
	if len(id) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(id), message, signature)
}
