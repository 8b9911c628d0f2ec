package msig

import (
	"testing"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/ledgertest"
	"github.com/iov-one/ledger/ledgertest/assert"
	"github.com/iov-one/ledger/store"
)

func TestRegistryRegister(t *testing.T) {
	from := ledgertest.NewIdentity()
	to := ledgertest.NewIdentity()
	a := ledgertest.NewIdentity()
	b := ledgertest.NewIdentity()
	hash := ledger.Sum([]byte("transfer"))

	tooMany := make([]ledger.Identity, MaxApprovers+1)
	for i := range tooMany {
		tooMany[i] = ledgertest.NewIdentity()
	}

	cases := map[string]struct {
		Hash      ledger.Digest
		Approvers []ledger.Identity
		Amount    uint64
		Settled   bool
		Pending   bool
		WantErr   *errors.Error
	}{
		"valid": {
			Hash:      hash,
			Approvers: []ledger.Identity{a, b},
			Amount:    10,
		},
		"zero amount": {
			Hash:      hash,
			Approvers: []ledger.Identity{a},
			WantErr:   errors.ErrInvalidAmount,
		},
		"no approvers": {
			Hash:    hash,
			Amount:  10,
			WantErr: errors.ErrInvalidApproverSet,
		},
		"duplicated approver": {
			Hash:      hash,
			Approvers: []ledger.Identity{a, b, a},
			Amount:    10,
			WantErr:   errors.ErrInvalidApproverSet,
		},
		"sender approves": {
			Hash:      hash,
			Approvers: []ledger.Identity{a, from},
			Amount:    10,
			WantErr:   errors.ErrInvalidApproverSet,
		},
		"too many approvers": {
			Hash:      hash,
			Approvers: tooMany,
			Amount:    10,
			WantErr:   errors.ErrInvalidApproverSet,
		},
		"hash is pending": {
			Hash:      hash,
			Approvers: []ledger.Identity{a},
			Amount:    10,
			Pending:   true,
			WantErr:   errors.ErrDuplicateTransfer,
		},
		"hash was settled": {
			Hash:      hash,
			Approvers: []ledger.Identity{a},
			Amount:    10,
			Settled:   true,
			WantErr:   errors.ErrDuplicateTransfer,
		},
		"missing hash": {
			Approvers: []ledger.Identity{a},
			Amount:    10,
			WantErr:   errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			r := NewRegistry()
			if tc.Pending || tc.Settled {
				_, err := r.Register(db, hash, from, to, []ledger.Identity{a}, 1)
				assert.Nil(t, err)
			}
			if tc.Settled {
				outcome, _, err := r.RecordAcceptance(db, hash, a)
				assert.Nil(t, err)
				assert.Equal(t, ledger.Settled, outcome)
			}

			got, err := r.Register(db, tc.Hash, from, to, tc.Approvers, tc.Amount)
			assert.IsErr(t, tc.WantErr, err)
			if tc.WantErr != nil {
				return
			}
			stored, err := r.Pending(db, tc.Hash)
			assert.Nil(t, err)
			assert.Equal(t, got, stored)
			assert.Equal(t, int64(1), stored.Sequence)
		})
	}
}

func TestRegistrySequence(t *testing.T) {
	db := store.MemStore()
	r := NewRegistry()
	from, to, a := ledgertest.NewIdentity(), ledgertest.NewIdentity(), ledgertest.NewIdentity()

	for i := 1; i <= 3; i++ {
		hash := ledger.Sum([]byte{byte(i)})
		tr, err := r.Register(db, hash, from, to, []ledger.Identity{a}, 5)
		assert.Nil(t, err)
		assert.Equal(t, int64(i), tr.Sequence)
	}
}

func TestRegistryRecordAcceptance(t *testing.T) {
	db := store.MemStore()
	r := NewRegistry()
	from, to := ledgertest.NewIdentity(), ledgertest.NewIdentity()
	a, b, c := ledgertest.NewIdentity(), ledgertest.NewIdentity(), ledgertest.NewIdentity()
	hash := ledger.Sum([]byte("abc"))

	_, err := r.Register(db, hash, from, to, []ledger.Identity{a, b, c}, 7)
	assert.Nil(t, err)

	_, _, err = r.RecordAcceptance(db, ledger.Sum([]byte("unknown")), a)
	assert.IsErr(t, errors.ErrUnknownTransfer, err)

	_, _, err = r.RecordAcceptance(db, hash, from)
	assert.IsErr(t, errors.ErrNotAnApprover, err)

	outcome, tr, err := r.RecordAcceptance(db, hash, a)
	assert.Nil(t, err)
	assert.Equal(t, ledger.StillPending, outcome)
	assert.Equal(t, []ledger.Identity{a}, tr.Accepted)

	_, _, err = r.RecordAcceptance(db, hash, a)
	assert.IsErr(t, errors.ErrAlreadyApproved, err)

	outcome, _, err = r.RecordAcceptance(db, hash, c)
	assert.Nil(t, err)
	assert.Equal(t, ledger.StillPending, outcome)

	settled, err := r.IsSettled(db, hash)
	assert.Nil(t, err)
	assert.Equal(t, false, settled)

	outcome, tr, err = r.RecordAcceptance(db, hash, b)
	assert.Nil(t, err)
	assert.Equal(t, ledger.Settled, outcome)
	assert.Equal(t, []ledger.Identity{a, c, b}, tr.Accepted)

	settled, err = r.IsSettled(db, hash)
	assert.Nil(t, err)
	assert.Equal(t, true, settled)

	rec, err := r.Settled(db, hash)
	assert.Nil(t, err)
	assert.Equal(t, uint64(7), rec.Amount)
	assert.Equal(t, tr.Sequence, rec.Sequence)

	// settled transfers are no longer pending
	_, err = r.Pending(db, hash)
	assert.IsErr(t, errors.ErrUnknownTransfer, err)
	_, _, err = r.RecordAcceptance(db, hash, b)
	assert.IsErr(t, errors.ErrUnknownTransfer, err)
}

func TestRegistryQuery(t *testing.T) {
	db := store.MemStore()
	r := NewRegistry()
	from, to, a := ledgertest.NewIdentity(), ledgertest.NewIdentity(), ledgertest.NewIdentity()
	pending := ledger.Sum([]byte("pending"))
	settled := ledger.Sum([]byte("settled"))

	_, err := r.Register(db, pending, from, to, []ledger.Identity{a}, 1)
	assert.Nil(t, err)
	_, err = r.Register(db, settled, from, to, []ledger.Identity{a}, 2)
	assert.Nil(t, err)
	_, _, err = r.RecordAcceptance(db, settled, a)
	assert.Nil(t, err)

	qr := ledger.NewQueryRouter()
	RegisterQuery(qr)

	res, err := qr.Handler("/transfers").Query(db, ledger.PrefixQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	var p PendingTransfer
	assert.Nil(t, p.Unmarshal(res[0].Value))
	assert.Equal(t, pending, p.Hash)

	res, err = qr.Handler("/settled").Query(db, ledger.KeyQueryMod, settled)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	var s SettledTransfer
	assert.Nil(t, s.Unmarshal(res[0].Value))
	assert.Equal(t, uint64(2), s.Amount)
}
