package wallet

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
)

const (
	pathCreateWallet = "wallet/create"
	pathIssue        = "wallet/issue"
	pathTransfer     = "wallet/transfer"
)

var _ ledger.Msg = (*CreateWalletMsg)(nil)
var _ ledger.Msg = (*IssueMsg)(nil)
var _ ledger.Msg = (*TransferMsg)(nil)

// Path returns the routing path for this message
func (CreateWalletMsg) Path() string {
	return pathCreateWallet
}

// Validate makes sure that this is sensible
func (m *CreateWalletMsg) Validate() error {
	if len(m.Name) == 0 {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	if len(m.Name) > MaxNameLenLimit {
		return errors.Wrap(errors.ErrInput, "name too long")
	}
	return nil
}

// Path returns the routing path for this message
func (IssueMsg) Path() string {
	return pathIssue
}

// Validate makes sure that this is sensible
func (m *IssueMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero")
	}
	return nil
}

// Path returns the routing path for this message
func (TransferMsg) Path() string {
	return pathTransfer
}

// Validate makes sure that this is sensible
func (m *TransferMsg) Validate() error {
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero")
	}
	return nil
}
