package app

import (
	"testing"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/ledgertest"
	"github.com/iov-one/ledger/ledgertest/assert"
	"github.com/iov-one/ledger/x/msig"
	"github.com/iov-one/ledger/x/sigs"
	"github.com/iov-one/ledger/x/wallet"
)

func TestTxGetMsg(t *testing.T) {
	transfer := &msig.TransferMultisignMsg{
		From:      ledgertest.KeyFromName("alice").Identity(),
		To:        ledgertest.KeyFromName("bob").Identity(),
		Approvers: []ledger.Identity{ledgertest.KeyFromName("carol").Identity()},
		Amount:    10,
		Seed:      1,
	}

	cases := map[string]struct {
		tx       *Tx
		wantPath string
		wantErr  *errors.Error
	}{
		"create wallet": {
			tx:       &Tx{CreateWalletMsg: &wallet.CreateWalletMsg{Name: "alice"}},
			wantPath: "wallet/create",
		},
		"transfer": {
			tx:       &Tx{TransferMultisignMsg: transfer},
			wantPath: "msig/transfer",
		},
		"no message": {
			tx:      &Tx{},
			wantErr: errors.ErrInput,
		},
		"two messages": {
			tx: &Tx{
				CreateWalletMsg: &wallet.CreateWalletMsg{Name: "alice"},
				IssueMsg:        &wallet.IssueMsg{Amount: 1},
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := tc.tx.GetMsg()
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantPath, msg.Path())
			}
		})
	}
}

func TestNewTx(t *testing.T) {
	tx, err := NewTx(&wallet.IssueMsg{Amount: 5, Seed: 2})
	assert.Nil(t, err)
	msg, err := tx.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, &wallet.IssueMsg{Amount: 5, Seed: 2}, msg)

	bob := ledgertest.KeyFromName("bob").Identity()
	tx, err = NewTx(&wallet.TransferMsg{To: bob, Amount: 5})
	assert.Nil(t, err)
	raw, err := tx.Marshal()
	assert.Nil(t, err)
	decoded, err := TxDecoder(raw)
	assert.Nil(t, err)
	msg, err = decoded.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, &wallet.TransferMsg{To: bob, Amount: 5}, msg)

	_, err = NewTx(&ledgertest.Msg{RoutePath: "foo/bar"})
	assert.IsErr(t, errors.ErrType, err)
}

func TestTxSignature(t *testing.T) {
	const chainID = "test-chain"
	key := ledgertest.KeyFromName("alice")

	tx, err := NewTx(&wallet.CreateWalletMsg{Name: "alice"})
	assert.Nil(t, err)
	assert.Nil(t, tx.Sign(key, chainID))

	raw, err := tx.Marshal()
	assert.Nil(t, err)
	decoded, err := TxDecoder(raw)
	assert.Nil(t, err)

	signer, err := sigs.VerifyTxSignature(decoded.(*Tx), chainID)
	assert.Nil(t, err)
	assert.Equal(t, key.Identity(), signer)

	// signature is bound to the chain
	_, err = sigs.VerifyTxSignature(decoded.(*Tx), "other-chain")
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// and to the message
	decoded.(*Tx).CreateWalletMsg.Name = "mallory"
	_, err = sigs.VerifyTxSignature(decoded.(*Tx), chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestTxDecoderRejectsGarbage(t *testing.T) {
	_, err := TxDecoder([]byte{0xff, 0xff, 0xff})
	assert.IsErr(t, errors.ErrInput, err)
}
