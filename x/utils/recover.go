package utils

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
)

// Recovery turns a panic raised while processing a transaction into an
// ErrPanic failure. The panic is logged together with the transaction
// digest and the sender, so a failed transfer can be traced back.
type Recovery struct{}

var _ ledger.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx, next ledger.Checker) (_ *ledger.CheckResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = panicked(ctx, "check", p)
		}
	}()
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx, next ledger.Deliverer) (_ *ledger.DeliverResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = panicked(ctx, "deliver", p)
		}
	}()
	return next.Deliver(ctx, store, tx)
}

// panicked reads only the context. The transaction itself may be what
// panicked.
func panicked(ctx ledger.Context, call string, p interface{}) error {
	keyvals := []interface{}{"call", call, "panic", p}
	if digest, ok := ledger.GetTxDigest(ctx); ok {
		keyvals = append(keyvals, "tx", digest.String())
	}
	if signer, ok := ledger.GetSigner(ctx); ok {
		keyvals = append(keyvals, "signer", signer.String())
	}
	ledger.GetLogger(ctx).Error("transaction panicked", keyvals...)
	return errors.Wrapf(errors.ErrPanic, "%v", p)
}
