package ledger

import (
	"testing"

	"github.com/iov-one/ledger/ledgertest/assert"
)

func TestEffectTouch(t *testing.T) {
	alice := Identity(make([]byte, IdentityLength))
	bob := Identity(append(make([]byte, IdentityLength-1), 1))
	transfer := Sum([]byte("transfer"))

	var e Effect
	e.TouchWallet(alice)
	e.TouchWallet(bob)
	e.TouchWallet(alice.Clone())
	e.TouchTransfer(transfer)
	e.TouchTransfer(transfer.Clone())

	assert.Equal(t, []Identity{alice, bob}, e.Wallets)
	assert.Equal(t, []Digest{transfer}, e.Transfers)
	assert.Equal(t, "none", e.Outcome.String())
	assert.Equal(t, "pending", StillPending.String())
	assert.Equal(t, "settled", Settled.String())
}
