package wallet

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/orm"
)

const (
	// BucketName is where we store the wallets
	BucketName = "wallet"

	// MaxNameLenLimit is the hard limit of a wallet name length. The
	// configuration may only lower it.
	MaxNameLenLimit = 256
)

var _ orm.Model = (*Wallet)(nil)

// NewBucket returns a bucket holding wallets keyed by owner identity.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}

// Validate makes sure the wallet is safe to persist.
func (w *Wallet) Validate() error {
	if err := w.PubKey.Validate(); err != nil {
		return errors.Wrap(err, "pub key")
	}
	if len(w.Name) == 0 {
		return errors.Wrap(errors.ErrModel, "name missing")
	}
	if len(w.Name) > MaxNameLenLimit {
		return errors.Wrap(errors.ErrModel, "name too long")
	}
	if w.Balance+w.PendingBalance < w.Balance {
		return errors.Wrap(errors.ErrModel, "total balance overflows")
	}
	if w.PendingBalance != 0 && len(w.PendingTxs) == 0 {
		return errors.Wrap(errors.ErrModel, "locked funds without a pending transfer")
	}
	for i, h := range w.PendingTxs {
		if err := h.Validate(); err != nil {
			return errors.Wrapf(err, "pending tx %d", i)
		}
	}
	if w.HistoryLen == 0 && len(w.HistoryHash) != 0 {
		return errors.Wrap(errors.ErrModel, "history hash without history")
	}
	if w.HistoryLen != 0 {
		if err := w.HistoryHash.Validate(); err != nil {
			return errors.Wrap(err, "history hash")
		}
	}
	return nil
}

// Total returns available and locked funds together.
func (w *Wallet) Total() uint64 {
	return w.Balance + w.PendingBalance
}

// IsLocking returns true if the wallet locks funds for given transfer.
func (w *Wallet) IsLocking(transfer ledger.Digest) bool {
	return indexOf(w.PendingTxs, transfer) >= 0
}

// appendHistory folds a transaction into the wallet history.
func (w *Wallet) appendHistory(txDigest ledger.Digest) {
	w.HistoryHash = ledger.Fold(w.HistoryHash, txDigest)
	w.HistoryLen++
}

// credit adds funds to the available balance, failing on overflow of
// the total balance.
func (w *Wallet) credit(amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero")
	}
	if w.Total()+amount < w.Total() {
		return errors.Wrap(errors.ErrInvalidAmount, "balance overflow")
	}
	w.Balance += amount
	return nil
}

func indexOf(list []ledger.Digest, d ledger.Digest) int {
	for i, x := range list {
		if x.Equals(d) {
			return i
		}
	}
	return -1
}
