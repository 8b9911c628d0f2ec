package msig

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/x/wallet"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r ledger.Registry, control wallet.Controller) {
	registry := NewRegistry()
	r.Handle(&TransferMultisignMsg{}, NewTransferMultisignHandler(control, registry))
	r.Handle(&AcceptMultisignMsg{}, NewAcceptMultisignHandler(control, registry))
}

// RegisterQuery will register the pending and settled transfers
func RegisterQuery(qr ledger.QueryRouter) {
	NewRegistry().RegisterQuery(qr)
}

// TransferMultisignHandler locks funds of the sender and registers the
// transfer.
type TransferMultisignHandler struct {
	control  wallet.Controller
	registry Registry
}

var _ ledger.Handler = TransferMultisignHandler{}

// NewTransferMultisignHandler creates a handler for TransferMultisignMsg
func NewTransferMultisignHandler(control wallet.Controller, registry Registry) TransferMultisignHandler {
	return TransferMultisignHandler{control: control, registry: registry}
}

// Check runs the whole transfer against the given store. Callers discard
// the changes.
func (h TransferMultisignHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.transfer(ctx, db, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{}, nil
}

// Deliver locks the funds and returns the transfer hash as data.
func (h TransferMultisignHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	t, err := h.transfer(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res := &ledger.DeliverResult{
		Data: t.Hash,
		Log:  "transfer " + t.Hash.String() + " pending",
	}
	res.Effect.TouchWallet(t.From)
	res.Effect.TouchTransfer(t.Hash)
	res.Effect.Outcome = ledger.StillPending
	return res, nil
}

// transfer checks every precondition before it modifies the store.
func (h TransferMultisignHandler) transfer(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*PendingTransfer, error) {
	var msg TransferMultisignMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer, ok := ledger.GetSigner(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signer missing")
	}
	if !signer.Equals(msg.From) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the sender can transfer")
	}
	if _, err := h.control.Get(db, msg.From); err != nil {
		return nil, errors.Wrap(err, "sender")
	}
	if _, err := h.control.Get(db, msg.To); err != nil {
		return nil, errors.Wrap(err, "receiver")
	}
	hash, err := TransferHash(&msg)
	if err != nil {
		return nil, err
	}
	if err := h.registry.CheckUnused(db, hash); err != nil {
		return nil, err
	}
	digest, err := ledger.CurrentTxDigest(ctx, signer, &msg)
	if err != nil {
		return nil, err
	}
	if _, err := h.control.Lock(db, msg.From, msg.Amount, hash, digest); err != nil {
		return nil, err
	}
	return h.registry.Register(db, hash, msg.From, msg.To, msg.Approvers, msg.Amount)
}

// AcceptMultisignHandler records acceptances and settles the transfer
// once every approver accepted.
type AcceptMultisignHandler struct {
	control  wallet.Controller
	registry Registry
}

var _ ledger.Handler = AcceptMultisignHandler{}

// NewAcceptMultisignHandler creates a handler for AcceptMultisignMsg
func NewAcceptMultisignHandler(control wallet.Controller, registry Registry) AcceptMultisignHandler {
	return AcceptMultisignHandler{control: control, registry: registry}
}

// Check runs the whole acceptance against the given store. Callers
// discard the changes.
func (h AcceptMultisignHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	outcome, _, err := h.accept(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &ledger.CheckResult{Log: outcome.String()}, nil
}

// Deliver records the acceptance and settles when possible.
func (h AcceptMultisignHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	outcome, t, err := h.accept(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res := &ledger.DeliverResult{
		Data: t.Hash,
		Log:  "transfer " + t.Hash.String() + " " + outcome.String(),
	}
	res.Effect.TouchTransfer(t.Hash)
	res.Effect.Outcome = outcome
	if outcome == ledger.Settled {
		res.Effect.TouchWallet(t.From)
		res.Effect.TouchWallet(t.To)
	}
	return res, nil
}

func (h AcceptMultisignHandler) accept(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (ledger.Outcome, *PendingTransfer, error) {
	var msg AcceptMultisignMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return ledger.NoOutcome, nil, errors.Wrap(err, "load msg")
	}
	signer, ok := ledger.GetSigner(ctx)
	if !ok {
		return ledger.NoOutcome, nil, errors.Wrap(errors.ErrUnauthorized, "signer missing")
	}
	pending, err := h.registry.Pending(db, msg.TxHash)
	if err != nil {
		return ledger.NoOutcome, nil, err
	}
	if err := msg.matches(pending); err != nil {
		return ledger.NoOutcome, nil, err
	}
	outcome, t, err := h.registry.RecordAcceptance(db, msg.TxHash, signer)
	if err != nil {
		return ledger.NoOutcome, nil, err
	}
	if outcome == ledger.Settled {
		if err := h.control.Settle(db, t.From, t.To, t.Amount, t.Hash); err != nil {
			return ledger.NoOutcome, nil, errors.Wrap(err, "settle")
		}
	}
	return outcome, t, nil
}
