package wallet

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/orm"
)

// Controller is the only way to modify wallets. Every operation works on
// the store handle it is given.
type Controller struct {
	bucket orm.ModelBucket
}

// NewController returns a controller using the default wallet bucket.
func NewController() Controller {
	return Controller{bucket: NewBucket()}
}

// Get returns the wallet owned by given identity.
func (c Controller) Get(db ledger.ReadOnlyKVStore, id ledger.Identity) (*Wallet, error) {
	if err := id.Validate(); err != nil {
		return nil, errors.Wrap(err, "identity")
	}
	var w Wallet
	switch err := c.bucket.One(db, id, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrUnknownAccount, "wallet %s", id)
	default:
		return nil, err
	}
}

// Balance returns the available and the locked funds of a wallet.
func (c Controller) Balance(db ledger.ReadOnlyKVStore, id ledger.Identity) (available, locked uint64, err error) {
	w, err := c.Get(db, id)
	if err != nil {
		return 0, 0, err
	}
	return w.Balance, w.PendingBalance, nil
}

// Create inserts an empty wallet for given identity.
func (c Controller) Create(db ledger.KVStore, id ledger.Identity, name string) (*Wallet, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if len(name) > int(conf.MaxNameLen) {
		return nil, errors.Wrapf(errors.ErrInput, "name longer than %d", conf.MaxNameLen)
	}
	if err := id.Validate(); err != nil {
		return nil, errors.Wrap(err, "identity")
	}
	switch ok, err := c.bucket.Has(db, id); {
	case err != nil:
		return nil, err
	case ok:
		return nil, errors.Wrapf(errors.ErrAlreadyExists, "wallet %s", id)
	}

	w := &Wallet{
		PubKey: id.Clone(),
		Name:   name,
	}
	if err := c.bucket.Put(db, id, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Issue adds amount to the available balance of the wallet.
func (c Controller) Issue(db ledger.KVStore, id ledger.Identity, amount uint64, txDigest ledger.Digest) (*Wallet, error) {
	if amount == 0 {
		return nil, errors.Wrap(errors.ErrInvalidAmount, "zero")
	}
	w, err := c.Get(db, id)
	if err != nil {
		return nil, err
	}
	if err := w.credit(amount); err != nil {
		return nil, err
	}
	w.appendHistory(txDigest)
	if err := c.bucket.Put(db, id, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Lock moves amount from available to locked funds of the sender and
// records the transfer that holds the lock.
func (c Controller) Lock(db ledger.KVStore, sender ledger.Identity, amount uint64, transfer, txDigest ledger.Digest) (*Wallet, error) {
	if amount == 0 {
		return nil, errors.Wrap(errors.ErrInvalidAmount, "zero")
	}
	if err := transfer.Validate(); err != nil {
		return nil, errors.Wrap(err, "transfer hash")
	}
	w, err := c.Get(db, sender)
	if err != nil {
		return nil, err
	}
	if w.Balance < amount {
		return nil, errors.Wrapf(errors.ErrInsufficientFunds, "available %d, want %d", w.Balance, amount)
	}
	if w.IsLocking(transfer) {
		return nil, errors.Wrapf(errors.ErrDuplicateTransfer, "already locking for %s", transfer)
	}
	w.Balance -= amount
	w.PendingBalance += amount
	w.PendingTxs = append(w.PendingTxs, transfer.Clone())
	w.appendHistory(txDigest)
	if err := c.bucket.Put(db, sender, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Settle releases the lock the sender holds for the transfer and credits
// the receiver. Both wallets are checked before any of them is written.
func (c Controller) Settle(db ledger.KVStore, sender, receiver ledger.Identity, amount uint64, transfer ledger.Digest) error {
	if sender.Equals(receiver) {
		return errors.Wrap(errors.ErrInput, "sender and receiver must differ")
	}
	from, err := c.Get(db, sender)
	if err != nil {
		return errors.Wrap(err, "sender")
	}
	to, err := c.Get(db, receiver)
	if err != nil {
		return errors.Wrap(err, "receiver")
	}

	idx := indexOf(from.PendingTxs, transfer)
	if idx < 0 {
		return errors.Wrapf(errors.ErrUnknownTransfer, "%s not locked by sender", transfer)
	}
	if from.PendingBalance < amount {
		return errors.Wrapf(errors.ErrState, "locked %d, want %d", from.PendingBalance, amount)
	}
	if err := to.credit(amount); err != nil {
		return errors.Wrap(err, "receiver")
	}
	from.PendingBalance -= amount
	from.PendingTxs = append(from.PendingTxs[:idx], from.PendingTxs[idx+1:]...)
	if len(from.PendingTxs) == 0 {
		from.PendingTxs = nil
	}
	from.appendHistory(transfer)
	to.appendHistory(transfer)

	if err := from.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "receiver")
	}
	if err := c.bucket.Put(db, sender, from); err != nil {
		return err
	}
	return c.bucket.Put(db, receiver, to)
}

// Transfer moves amount from the available funds of the sender to the
// receiver in one step. Both wallets fold txDigest into their history.
func (c Controller) Transfer(db ledger.KVStore, sender, receiver ledger.Identity, amount uint64, txDigest ledger.Digest) (from, to *Wallet, err error) {
	if amount == 0 {
		return nil, nil, errors.Wrap(errors.ErrInvalidAmount, "zero")
	}
	if sender.Equals(receiver) {
		return nil, nil, errors.Wrap(errors.ErrInput, "sender and receiver must differ")
	}
	if from, err = c.Get(db, sender); err != nil {
		return nil, nil, errors.Wrap(err, "sender")
	}
	if to, err = c.Get(db, receiver); err != nil {
		return nil, nil, errors.Wrap(err, "receiver")
	}
	if from.Balance < amount {
		return nil, nil, errors.Wrapf(errors.ErrInsufficientFunds, "available %d, want %d", from.Balance, amount)
	}
	if err := to.credit(amount); err != nil {
		return nil, nil, errors.Wrap(err, "receiver")
	}
	from.Balance -= amount
	from.appendHistory(txDigest)
	to.appendHistory(txDigest)

	if err := c.bucket.Put(db, sender, from); err != nil {
		return nil, nil, err
	}
	if err := c.bucket.Put(db, receiver, to); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
