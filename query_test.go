package ledger

import (
	"testing"

	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/ledgertest/assert"
)

func TestParseQueryPath(t *testing.T) {
	cases := map[string]struct {
		raw      string
		wantPath string
		wantMod  string
		wantErr  *errors.Error
	}{
		"key query": {
			raw:      "/wallets",
			wantPath: "/wallets",
			wantMod:  KeyQueryMod,
		},
		"prefix query": {
			raw:      "/transfers?prefix",
			wantPath: "/transfers",
			wantMod:  PrefixQueryMod,
		},
		"unknown mod": {
			raw:     "/transfers?range",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			path, mod, err := ParseQueryPath(tc.raw)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantPath, path)
			assert.Equal(t, tc.wantMod, mod)
		})
	}
}

type staticQuery []Model

func (s staticQuery) Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error) {
	return s, nil
}

func TestQueryRouter(t *testing.T) {
	qr := NewQueryRouter()
	wallets := staticQuery{Pair([]byte("k"), []byte("v"))}
	qr.RegisterAll(func(r QueryRouter) {
		r.Register("/wallets", wallets)
	})

	assert.Equal(t, wallets, qr.Handler("/wallets"))
	assert.Nil(t, qr.Handler("/unknown"))
	assert.Panics(t, func() {
		qr.Register("/wallets", staticQuery{})
	})
}
