package sigs

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/ledgertest"
)

// StdTx implements SignedTx for the tests.
type StdTx struct {
	ledgertest.Tx
	Payload   []byte
	Signature *StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ ledger.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{Payload: payload}
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}

func (tx *StdTx) GetSignature() *StdSignature {
	return tx.Signature
}

// SignerCheckHandler stores the signer seen on each call
type SignerCheckHandler struct {
	Signer ledger.Identity
}

var _ ledger.Handler = (*SignerCheckHandler)(nil)

func (s *SignerCheckHandler) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	s.Signer, _ = ledger.GetSigner(ctx)
	return &ledger.CheckResult{}, nil
}

func (s *SignerCheckHandler) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	s.Signer, _ = ledger.GetSigner(ctx)
	return &ledger.DeliverResult{}, nil
}
