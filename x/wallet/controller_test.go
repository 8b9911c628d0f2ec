package wallet

import (
	"math"
	"testing"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/gconf"
	"github.com/iov-one/ledger/ledgertest"
	"github.com/iov-one/ledger/ledgertest/assert"
	"github.com/iov-one/ledger/store"
)

func TestControllerCreate(t *testing.T) {
	alice := ledgertest.NewIdentity()

	cases := map[string]struct {
		Before  func(t testing.TB, db ledger.KVStore)
		ID      ledger.Identity
		Name    string
		WantErr *errors.Error
	}{
		"new wallet": {
			ID:   alice,
			Name: "alice",
		},
		"identity already used": {
			Before: func(t testing.TB, db ledger.KVStore) {
				_, err := NewController().Create(db, alice, "first")
				assert.Nil(t, err)
			},
			ID:      alice,
			Name:    "second",
			WantErr: errors.ErrAlreadyExists,
		},
		"invalid identity": {
			ID:      ledger.Identity("short"),
			Name:    "alice",
			WantErr: errors.ErrInput,
		},
		"name over configured limit": {
			Before: func(t testing.TB, db ledger.KVStore) {
				conf := Configuration{MaxNameLen: 3}
				assert.Nil(t, gconf.Save(db, confPkg, &conf))
			},
			ID:      alice,
			Name:    "alice",
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.Before != nil {
				tc.Before(t, db)
			}
			c := NewController()
			w, err := c.Create(db, tc.ID, tc.Name)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.Name, w.Name)

			got, err := c.Get(db, tc.ID)
			assert.Nil(t, err)
			assert.Equal(t, uint64(0), got.Balance)
			assert.Equal(t, uint64(0), got.PendingBalance)
			assert.Equal(t, uint64(0), got.HistoryLen)
			assert.Equal(t, 0, len(got.HistoryHash))
		})
	}
}

func TestControllerIssue(t *testing.T) {
	alice := ledgertest.NewIdentity()
	digest := ledger.Sum([]byte("tx-1"))

	cases := map[string]struct {
		Initial uint64
		ID      ledger.Identity
		Amount  uint64
		WantErr *errors.Error
		WantBal uint64
	}{
		"issue to an empty wallet": {
			ID:      alice,
			Amount:  100,
			WantBal: 100,
		},
		"issue adds up": {
			Initial: 5,
			ID:      alice,
			Amount:  100,
			WantBal: 105,
		},
		"zero amount": {
			ID:      alice,
			Amount:  0,
			WantErr: errors.ErrInvalidAmount,
		},
		"overflow": {
			Initial: math.MaxUint64 - 10,
			ID:      alice,
			Amount:  11,
			WantErr: errors.ErrInvalidAmount,
		},
		"unknown wallet": {
			ID:      ledgertest.NewIdentity(),
			Amount:  1,
			WantErr: errors.ErrUnknownAccount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			c := NewController()
			_, err := c.Create(db, alice, "alice")
			assert.Nil(t, err)
			if tc.Initial > 0 {
				_, err := c.Issue(db, alice, tc.Initial, ledger.Sum([]byte("initial")))
				assert.Nil(t, err)
			}
			before, err := c.Get(db, alice)
			assert.Nil(t, err)

			_, err = c.Issue(db, tc.ID, tc.Amount, digest)
			after, gerr := c.Get(db, alice)
			assert.Nil(t, gerr)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
				assert.Equal(t, before, after)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.WantBal, after.Balance)
			assert.Equal(t, before.HistoryLen+1, after.HistoryLen)
			assert.Equal(t, ledger.Fold(before.HistoryHash, digest), after.HistoryHash)
		})
	}
}

func TestControllerLockAndSettle(t *testing.T) {
	x := ledgertest.NewIdentity()
	y := ledgertest.NewIdentity()
	transfer := ledger.Sum([]byte("transfer"))

	db := store.MemStore()
	c := NewController()
	for name, id := range map[string]ledger.Identity{"x": x, "y": y} {
		_, err := c.Create(db, id, name)
		assert.Nil(t, err)
	}
	_, err := c.Issue(db, x, 100, ledger.Sum([]byte("issue")))
	assert.Nil(t, err)

	_, err = c.Lock(db, x, 101, transfer, ledger.Sum([]byte("lock")))
	assert.IsErr(t, errors.ErrInsufficientFunds, err)
	_, err = c.Lock(db, x, 0, transfer, ledger.Sum([]byte("lock")))
	assert.IsErr(t, errors.ErrInvalidAmount, err)
	_, err = c.Lock(db, ledgertest.NewIdentity(), 1, transfer, ledger.Sum([]byte("lock")))
	assert.IsErr(t, errors.ErrUnknownAccount, err)

	w, err := c.Lock(db, x, 40, transfer, ledger.Sum([]byte("lock")))
	assert.Nil(t, err)
	assert.Equal(t, uint64(60), w.Balance)
	assert.Equal(t, uint64(40), w.PendingBalance)
	assert.Equal(t, uint64(100), w.Total())
	assert.Equal(t, true, w.IsLocking(transfer))

	// the same transfer cannot lock twice
	_, err = c.Lock(db, x, 10, transfer, ledger.Sum([]byte("lock-2")))
	assert.IsErr(t, errors.ErrDuplicateTransfer, err)

	// settling an unknown transfer changes nothing
	err = c.Settle(db, x, y, 40, ledger.Sum([]byte("other")))
	assert.IsErr(t, errors.ErrUnknownTransfer, err)

	assert.Nil(t, c.Settle(db, x, y, 40, transfer))

	avail, locked, err := c.Balance(db, x)
	assert.Nil(t, err)
	assert.Equal(t, uint64(60), avail)
	assert.Equal(t, uint64(0), locked)
	avail, locked, err = c.Balance(db, y)
	assert.Nil(t, err)
	assert.Equal(t, uint64(40), avail)
	assert.Equal(t, uint64(0), locked)

	sender, err := c.Get(db, x)
	assert.Nil(t, err)
	assert.Equal(t, false, sender.IsLocking(transfer))
	// issue, lock, settle
	assert.Equal(t, uint64(3), sender.HistoryLen)

	// a settled transfer is not locked anymore
	err = c.Settle(db, x, y, 40, transfer)
	assert.IsErr(t, errors.ErrUnknownTransfer, err)
}

func TestSettleIsAtomic(t *testing.T) {
	x := ledgertest.NewIdentity()
	y := ledgertest.NewIdentity()
	transfer := ledger.Sum([]byte("transfer"))

	db := store.MemStore()
	c := NewController()
	_, err := c.Create(db, x, "x")
	assert.Nil(t, err)
	_, err = c.Create(db, y, "y")
	assert.Nil(t, err)
	_, err = c.Issue(db, x, 10, ledger.Sum([]byte("issue-x")))
	assert.Nil(t, err)
	_, err = c.Issue(db, y, math.MaxUint64-5, ledger.Sum([]byte("issue-y")))
	assert.Nil(t, err)
	_, err = c.Lock(db, x, 10, transfer, ledger.Sum([]byte("lock")))
	assert.Nil(t, err)

	before, err := c.Get(db, x)
	assert.Nil(t, err)

	// crediting the receiver overflows, so the sender must keep the lock
	err = c.Settle(db, x, y, 10, transfer)
	assert.IsErr(t, errors.ErrInvalidAmount, err)

	after, err := c.Get(db, x)
	assert.Nil(t, err)
	assert.Equal(t, before, after)
}

func TestControllerTransfer(t *testing.T) {
	x := ledgertest.NewIdentity()
	y := ledgertest.NewIdentity()
	digest := ledger.Sum([]byte("transfer"))

	cases := map[string]struct {
		Sender   ledger.Identity
		Receiver ledger.Identity
		Amount   uint64
		WantErr  *errors.Error
		WantX    uint64
		WantY    uint64
	}{
		"move funds": {
			Sender:   x,
			Receiver: y,
			Amount:   30,
			WantX:    70,
			WantY:    30,
		},
		"whole balance": {
			Sender:   x,
			Receiver: y,
			Amount:   100,
			WantX:    0,
			WantY:    100,
		},
		"insufficient funds": {
			Sender:   x,
			Receiver: y,
			Amount:   101,
			WantErr:  errors.ErrInsufficientFunds,
		},
		"zero amount": {
			Sender:   x,
			Receiver: y,
			Amount:   0,
			WantErr:  errors.ErrInvalidAmount,
		},
		"same wallet": {
			Sender:   x,
			Receiver: x,
			Amount:   1,
			WantErr:  errors.ErrInput,
		},
		"unknown receiver": {
			Sender:   x,
			Receiver: ledgertest.NewIdentity(),
			Amount:   1,
			WantErr:  errors.ErrUnknownAccount,
		},
		"unknown sender": {
			Sender:   ledgertest.NewIdentity(),
			Receiver: y,
			Amount:   1,
			WantErr:  errors.ErrUnknownAccount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			c := NewController()
			_, err := c.Create(db, x, "x")
			assert.Nil(t, err)
			_, err = c.Create(db, y, "y")
			assert.Nil(t, err)
			_, err = c.Issue(db, x, 100, ledger.Sum([]byte("issue")))
			assert.Nil(t, err)

			_, _, err = c.Transfer(db, tc.Sender, tc.Receiver, tc.Amount, digest)
			assert.IsErr(t, tc.WantErr, err)

			from, err := c.Get(db, x)
			assert.Nil(t, err)
			to, err := c.Get(db, y)
			assert.Nil(t, err)
			if tc.WantErr != nil {
				// nothing changed
				assert.Equal(t, uint64(100), from.Balance)
				assert.Equal(t, uint64(1), from.HistoryLen)
				assert.Equal(t, uint64(0), to.Balance)
				assert.Equal(t, uint64(0), to.HistoryLen)
				return
			}
			assert.Equal(t, tc.WantX, from.Balance)
			assert.Equal(t, tc.WantY, to.Balance)
			assert.Equal(t, uint64(2), from.HistoryLen)
			assert.Equal(t, ledger.Fold(nil, digest), to.HistoryHash)
		})
	}
}

func TestHistoryIsOrderSensitive(t *testing.T) {
	a := ledger.Sum([]byte("a"))
	b := ledger.Sum([]byte("b"))

	history := func(digests ...ledger.Digest) ledger.Digest {
		db := store.MemStore()
		c := NewController()
		id := ledgertest.KeyFromName("history").Identity()
		_, err := c.Create(db, id, "history")
		assert.Nil(t, err)
		for _, d := range digests {
			_, err := c.Issue(db, id, 1, d)
			assert.Nil(t, err)
		}
		w, err := c.Get(db, id)
		assert.Nil(t, err)
		return w.HistoryHash
	}

	assert.Equal(t, history(a, b), history(a, b))
	if history(a, b).Equals(history(b, a)) {
		t.Fatal("reordered history produced the same hash")
	}
}
