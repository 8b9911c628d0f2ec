package sigs

import (
	"crypto/sha512"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/crypto"
	"github.com/iov-one/ledger/errors"
)

// SignCodeV1 is the current way to prefix the bytes we use to build
// a signature
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// VerifyTxSignature checks the signature on the tx and returns the
// identity of the signer. A transaction without a signature returns a
// nil identity and no error.
func VerifyTxSignature(tx SignedTx, chainID string) (ledger.Identity, error) {
	sig := tx.GetSignature()
	if sig == nil {
		return nil, nil
	}
	bz, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	return VerifySignature(sig, bz, chainID)
}

// VerifySignature checks one signature against signbytes and chain.
func VerifySignature(sig *StdSignature, signBytes []byte, chainID string) (ledger.Identity, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	toSign, err := BuildSignBytes(signBytes, chainID)
	if err != nil {
		return nil, err
	}
	if !crypto.Verify(sig.Pubkey, toSign, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	return sig.Pubkey, nil
}

/*
BuildSignBytes combines all info on the actual tx before signing

We use the following format:

version | len(chainID) | chainID      | signBytes
4bytes  | uint8        | ascii string | serialized transaction

There is no per account nonce. Replayed transfers are rejected by
their transfer hash.

This is then prehashed with sha512 before fed into
the public key signing/verification step
*/
func BuildSignBytes(signBytes []byte, chainID string) ([]byte, error) {
	if !ledger.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	output := make([]byte, 0, 4+1+len(chainID)+len(signBytes))
	output = append(output, SignCodeV1...)
	output = append(output, uint8(len(chainID)))
	output = append(output, []byte(chainID)...)
	output = append(output, signBytes...)

	hashed := sha512.Sum512(output)
	return hashed[:], nil
}

// SignTx creates a signature for the given tx
func SignTx(key *crypto.PrivateKey, tx SignedTx, chainID string) (*StdSignature, error) {
	signBytes, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	toSign, err := BuildSignBytes(signBytes, chainID)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Pubkey:    key.Identity(),
		Signature: key.Sign(toSign),
	}, nil
}
