package msig

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
)

const (
	pathTransferMultisign = "msig/transfer"
	pathAcceptMultisign   = "msig/accept"

	transferHashTag = "msig/transfer"
)

var _ ledger.Msg = (*TransferMultisignMsg)(nil)
var _ ledger.Msg = (*AcceptMultisignMsg)(nil)

// Path returns the routing path for this message
func (TransferMultisignMsg) Path() string {
	return pathTransferMultisign
}

// Validate makes sure that this is sensible
func (m *TransferMultisignMsg) Validate() error {
	if err := validateParties(m.From, m.To); err != nil {
		return err
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero")
	}
	return ValidateApprovers(m.From, m.Approvers)
}

// TransferHash identifies the transfer initiated by given message. Every
// field takes part in it, so two messages differing only in the seed
// produce different hashes.
func TransferHash(m *TransferMultisignMsg) (ledger.Digest, error) {
	raw, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot marshal transfer: %s", err)
	}
	return ledger.Sum([]byte(transferHashTag), raw), nil
}

// Path returns the routing path for this message
func (AcceptMultisignMsg) Path() string {
	return pathAcceptMultisign
}

// Validate makes sure that this is sensible
func (m *AcceptMultisignMsg) Validate() error {
	if err := m.TxHash.Validate(); err != nil {
		return errors.Wrap(err, "tx hash")
	}
	if err := validateParties(m.From, m.To); err != nil {
		return err
	}
	return ValidateApprovers(m.From, m.Approvers)
}

// matches returns an error unless the message describes given transfer.
func (m *AcceptMultisignMsg) matches(t *PendingTransfer) error {
	if !m.From.Equals(t.From) {
		return errors.Wrap(errors.ErrInput, "sender does not match")
	}
	if !m.To.Equals(t.To) {
		return errors.Wrap(errors.ErrInput, "receiver does not match")
	}
	if len(m.Approvers) != len(t.Approvers) {
		return errors.Wrap(errors.ErrInput, "approvers do not match")
	}
	for i, a := range m.Approvers {
		if !a.Equals(t.Approvers[i]) {
			return errors.Wrap(errors.ErrInput, "approvers do not match")
		}
	}
	return nil
}
