package wallet

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r ledger.Registry, control Controller) {
	r.Handle(&CreateWalletMsg{}, NewCreateWalletHandler(control))
	r.Handle(&IssueMsg{}, NewIssueHandler(control))
	r.Handle(&TransferMsg{}, NewTransferHandler(control))
}

// RegisterQuery will register the wallet bucket as "/wallets"
func RegisterQuery(qr ledger.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// CreateWalletHandler creates a wallet for the signer.
type CreateWalletHandler struct {
	control Controller
}

var _ ledger.Handler = CreateWalletHandler{}

// NewCreateWalletHandler creates a handler for CreateWalletMsg
func NewCreateWalletHandler(control Controller) CreateWalletHandler {
	return CreateWalletHandler{control: control}
}

// Check runs the whole creation against the given store. Callers discard
// the changes.
func (h CreateWalletHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.create(ctx, db, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{}, nil
}

// Deliver inserts the new wallet.
func (h CreateWalletHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	w, err := h.create(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res := &ledger.DeliverResult{Data: w.PubKey}
	res.Effect.TouchWallet(w.PubKey)
	return res, nil
}

func (h CreateWalletHandler) create(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*Wallet, error) {
	var msg CreateWalletMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer, ok := ledger.GetSigner(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signer missing")
	}
	return h.control.Create(db, signer, msg.Name)
}

// IssueHandler adds funds to the wallet of the signer.
type IssueHandler struct {
	control Controller
}

var _ ledger.Handler = IssueHandler{}

// NewIssueHandler creates a handler for IssueMsg
func NewIssueHandler(control Controller) IssueHandler {
	return IssueHandler{control: control}
}

// Check runs the whole issuance against the given store. Callers discard
// the changes.
func (h IssueHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.issue(ctx, db, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{}, nil
}

// Deliver credits the wallet of the signer.
func (h IssueHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	w, err := h.issue(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res := &ledger.DeliverResult{}
	res.Effect.TouchWallet(w.PubKey)
	return res, nil
}

func (h IssueHandler) issue(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*Wallet, error) {
	var msg IssueMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer, ok := ledger.GetSigner(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signer missing")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !conf.CanIssue(signer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "not an issuer")
	}
	digest, err := ledger.CurrentTxDigest(ctx, signer, &msg)
	if err != nil {
		return nil, err
	}
	return h.control.Issue(db, signer, msg.Amount, digest)
}

// TransferHandler moves funds of the signer to another wallet without
// any approval.
type TransferHandler struct {
	control Controller
}

var _ ledger.Handler = TransferHandler{}

// NewTransferHandler creates a handler for TransferMsg
func NewTransferHandler(control Controller) TransferHandler {
	return TransferHandler{control: control}
}

// Check runs the whole transfer against the given store. Callers discard
// the changes.
func (h TransferHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, _, err := h.transfer(ctx, db, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{}, nil
}

// Deliver debits the signer and credits the receiver.
func (h TransferHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	from, to, err := h.transfer(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res := &ledger.DeliverResult{}
	res.Effect.TouchWallet(from.PubKey)
	res.Effect.TouchWallet(to.PubKey)
	return res, nil
}

func (h TransferHandler) transfer(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*Wallet, *Wallet, error) {
	var msg TransferMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer, ok := ledger.GetSigner(ctx)
	if !ok {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "signer missing")
	}
	digest, err := ledger.CurrentTxDigest(ctx, signer, &msg)
	if err != nil {
		return nil, nil, err
	}
	return h.control.Transfer(db, signer, msg.To, msg.Amount, digest)
}
