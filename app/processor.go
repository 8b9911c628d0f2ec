package app

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/x/utils"
)

// Processor is the single entry point applying transactions to the
// ledger state. Every transaction is applied as one step: either all
// of its changes are written to the store or none of them.
//
// Processor is not safe for concurrent use on the same store. Callers
// must serialize the transactions they apply.
type Processor struct {
	handler ledger.Handler
}

// NewProcessor wraps the handler into a savepoint, so a failed
// transaction never leaves partial changes behind.
func NewProcessor(h ledger.Handler) Processor {
	return Processor{
		handler: ChainDecorators(utils.NewSavepoint().OnDeliver()).WithHandler(h),
	}
}

// Apply executes the transaction on behalf of the signer and returns
// what it changed. A nil signer leaves the authentication to the
// signature carried by the transaction.
func (p Processor) Apply(ctx ledger.Context, tx ledger.Tx, signer ledger.Identity, db ledger.CacheableKVStore) (*ledger.Effect, error) {
	res, err := p.Deliver(ctx, tx, signer, db)
	if err != nil {
		return nil, err
	}
	return &res.Effect, nil
}

// Deliver works like Apply but returns the full result, including the
// data and the tags reported to the platform.
func (p Processor) Deliver(ctx ledger.Context, tx ledger.Tx, signer ledger.Identity, db ledger.CacheableKVStore) (*ledger.DeliverResult, error) {
	if tx == nil {
		return nil, errors.Wrap(errors.ErrInput, "missing transaction")
	}
	return p.handler.Deliver(withSigner(ctx, signer), db, tx)
}

// Check validates the transaction against the current state. All
// changes made while checking are discarded.
func (p Processor) Check(ctx ledger.Context, tx ledger.Tx, signer ledger.Identity, db ledger.CacheableKVStore) (*ledger.CheckResult, error) {
	if tx == nil {
		return nil, errors.Wrap(errors.ErrInput, "missing transaction")
	}
	cache := db.CacheWrap()
	defer cache.Discard()
	return p.handler.Check(withSigner(ctx, signer), cache, tx)
}

func withSigner(ctx ledger.Context, signer ledger.Identity) ledger.Context {
	if len(signer) == 0 {
		return ctx
	}
	return ledger.WithSigner(ctx, signer)
}
