package utils

import (
	"context"
	"testing"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/ledgertest"
	"github.com/iov-one/ledger/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavepoint(t *testing.T) {
	// always write ok, ov before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// some key, value to try to write
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}

	cases := map[string]struct {
		save    Savepoint
		handler *ledgertest.Handler
		check   bool // whether to call Check or Deliver
		wantErr *errors.Error

		written [][]byte // keys to find
		missing [][]byte // keys not to find
	}{
		"savepoint deactivated, error, both written": {
			save:    NewSavepoint(),
			handler: &ledgertest.Handler{WriteKey: nk, WriteValue: nv, CheckErr: errors.ErrHuman},
			check:   true,
			wantErr: errors.ErrHuman,
			written: [][]byte{ok, nk},
		},
		"savepoint activated, error, one written": {
			save:    NewSavepoint().OnCheck(),
			handler: &ledgertest.Handler{WriteKey: nk, WriteValue: nv, CheckErr: errors.ErrHuman},
			check:   true,
			wantErr: errors.ErrHuman,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint activated for deliver, error, one written": {
			save:    NewSavepoint().OnDeliver(),
			handler: &ledgertest.Handler{WriteKey: nk, WriteValue: nv, DeliverErr: errors.ErrInsufficientFunds},
			wantErr: errors.ErrInsufficientFunds,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"double activation maintains both behaviors": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			handler: &ledgertest.Handler{WriteKey: nk, WriteValue: nv, DeliverErr: errors.ErrHuman},
			wantErr: errors.ErrHuman,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint on check does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: &ledgertest.Handler{WriteKey: nk, WriteValue: nv, DeliverErr: errors.ErrHuman},
			wantErr: errors.ErrHuman,
			written: [][]byte{ok, nk},
		},
		"no rollback on success": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			handler: &ledgertest.Handler{WriteKey: nk, WriteValue: nv},
			written: [][]byte{ok, nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			kv := store.MemStore()
			require.NoError(t, kv.Set(ok, ov))

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, kv, nil, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, kv, nil, tc.handler)
			}
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "got %v", err)
			}

			for _, k := range tc.written {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.True(t, has, "%x", k)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.False(t, has, "%x", k)
			}
		})
	}
}

func TestSavepointNeedsCacheableStore(t *testing.T) {
	h := &ledgertest.Handler{DeliverErr: errors.ErrHuman}
	_, err := NewSavepoint().OnDeliver().Deliver(context.Background(), plainStore{store.MemStore()}, nil, h)
	assert.True(t, errors.ErrHuman.Is(err))
	assert.Equal(t, 1, h.DeliverCallCount())
}

// plainStore hides the CacheWrap method of the wrapped store.
type plainStore struct {
	ledger.KVStore
}
