package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	a := Sum([]byte("a"))
	b := Sum([]byte("b"))

	assert.Len(t, a, DigestLength)
	assert.NoError(t, a.Validate())
	assert.Error(t, Digest(nil).Validate())
	assert.Error(t, Digest([]byte{1, 2}).Validate())

	assert.True(t, a.Equals(Sum([]byte("a"))))
	assert.False(t, a.Equals(b))
	assert.Equal(t, 0, a.Compare(a.Clone()))
	assert.Equal(t, -b.Compare(a), a.Compare(b))

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	var back Digest
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, a, back)
}

func TestFoldIsOrderSensitive(t *testing.T) {
	a := Sum([]byte("first"))
	b := Sum([]byte("second"))

	ab := Fold(Fold(nil, a), b)
	ba := Fold(Fold(nil, b), a)
	assert.False(t, ab.Equals(ba))

	// deterministic
	assert.Equal(t, ab, Fold(Fold(nil, a), b))
	// an empty history is the same as a zeroed one
	assert.Equal(t, Fold(nil, a), Fold(make(Digest, DigestLength), a))
}

func TestEffectDeduplicates(t *testing.T) {
	id := make(Identity, IdentityLength)
	var e Effect
	e.TouchWallet(id)
	e.TouchWallet(id.Clone())
	e.TouchTransfer(Sum([]byte("x")))
	e.TouchTransfer(Sum([]byte("x")))
	assert.Len(t, e.Wallets, 1)
	assert.Len(t, e.Transfers, 1)
	assert.Equal(t, "none", e.Outcome.String())
	assert.Equal(t, "settled", Settled.String())
}
