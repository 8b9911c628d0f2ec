package app

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/crypto"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/x/msig"
	"github.com/iov-one/ledger/x/sigs"
	"github.com/iov-one/ledger/x/wallet"
)

var _ ledger.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx wraps given message into a transaction. It fails for messages
// that are not one of the ledger transaction kinds.
func NewTx(msg ledger.Msg) (*Tx, error) {
	var tx Tx
	switch m := msg.(type) {
	case *wallet.CreateWalletMsg:
		tx.CreateWalletMsg = m
	case *wallet.IssueMsg:
		tx.IssueMsg = m
	case *msig.TransferMultisignMsg:
		tx.TransferMultisignMsg = m
	case *msig.AcceptMultisignMsg:
		tx.AcceptMultisignMsg = m
	case *wallet.TransferMsg:
		tx.TransferMsg = m
	default:
		return nil, errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return &tx, nil
}

// GetMsg returns the single message of the transaction.
func (tx *Tx) GetMsg() (ledger.Msg, error) {
	var msgs []ledger.Msg
	if tx.CreateWalletMsg != nil {
		msgs = append(msgs, tx.CreateWalletMsg)
	}
	if tx.IssueMsg != nil {
		msgs = append(msgs, tx.IssueMsg)
	}
	if tx.TransferMultisignMsg != nil {
		msgs = append(msgs, tx.TransferMultisignMsg)
	}
	if tx.AcceptMultisignMsg != nil {
		msgs = append(msgs, tx.AcceptMultisignMsg)
	}
	if tx.TransferMsg != nil {
		msgs = append(msgs, tx.TransferMsg)
	}
	switch len(msgs) {
	case 1:
		return msgs[0], nil
	case 0:
		return nil, errors.Wrap(errors.ErrInput, "no message")
	default:
		return nil, errors.Wrapf(errors.ErrInput, "%d messages, want one", len(msgs))
	}
}

// GetSignature returns the signature of the sender, if any.
func (tx *Tx) GetSignature() *sigs.StdSignature {
	return tx.Signature
}

// GetSignBytes returns the serialized transaction without the signature.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signature = nil
	return unsigned.Marshal()
}

// Sign attaches the signature of given key for the chain.
func (tx *Tx) Sign(key *crypto.PrivateKey, chainID string) error {
	sig, err := sigs.SignTx(key, tx, chainID)
	if err != nil {
		return err
	}
	tx.Signature = sig
	return nil
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (ledger.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}
