package msig

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/orm"
)

const (
	// PendingBucket holds transfers waiting for approval.
	PendingBucket = "pending"
	// SettledBucket holds the hashes of every settled transfer.
	SettledBucket = "settled"

	// MaxApprovers limits the approver list of a single transfer.
	MaxApprovers = 32
)

var _ orm.Model = (*PendingTransfer)(nil)
var _ orm.Model = (*SettledTransfer)(nil)

// Validate makes sure the transfer is safe to persist.
func (t *PendingTransfer) Validate() error {
	if err := t.Hash.Validate(); err != nil {
		return errors.Wrap(err, "hash")
	}
	if err := validateParties(t.From, t.To); err != nil {
		return err
	}
	if err := ValidateApprovers(t.From, t.Approvers); err != nil {
		return err
	}
	if t.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero")
	}
	if len(t.Accepted) >= len(t.Approvers) {
		return errors.Wrap(errors.ErrModel, "fully accepted transfer cannot be pending")
	}
	for i, a := range t.Accepted {
		if !contains(t.Approvers, a) {
			return errors.Wrapf(errors.ErrModel, "accepted %d is not an approver", i)
		}
		if contains(t.Accepted[:i], a) {
			return errors.Wrapf(errors.ErrModel, "accepted %d is duplicated", i)
		}
	}
	if t.Sequence <= 0 {
		return errors.Wrap(errors.ErrModel, "sequence")
	}
	return nil
}

// IsApprover returns true if given identity must accept the transfer.
func (t *PendingTransfer) IsApprover(id ledger.Identity) bool {
	return contains(t.Approvers, id)
}

// HasAccepted returns true if given identity already accepted.
func (t *PendingTransfer) HasAccepted(id ledger.Identity) bool {
	return contains(t.Accepted, id)
}

// Validate makes sure the record is safe to persist.
func (t *SettledTransfer) Validate() error {
	if err := t.Hash.Validate(); err != nil {
		return errors.Wrap(err, "hash")
	}
	if err := validateParties(t.From, t.To); err != nil {
		return err
	}
	if t.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero")
	}
	if t.Sequence <= 0 {
		return errors.Wrap(errors.ErrModel, "sequence")
	}
	return nil
}

// ValidateApprovers checks the approver list of a transfer of given
// sender. The list must not be empty, must not repeat an identity and
// must not contain the sender.
func ValidateApprovers(sender ledger.Identity, approvers []ledger.Identity) error {
	if len(approvers) == 0 {
		return errors.Wrap(errors.ErrInvalidApproverSet, "empty")
	}
	if len(approvers) > MaxApprovers {
		return errors.Wrapf(errors.ErrInvalidApproverSet, "more than %d approvers", MaxApprovers)
	}
	for i, a := range approvers {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(errors.ErrInvalidApproverSet, "approver %d: %s", i, err)
		}
		if a.Equals(sender) {
			return errors.Wrap(errors.ErrInvalidApproverSet, "sender cannot approve")
		}
		if contains(approvers[:i], a) {
			return errors.Wrapf(errors.ErrInvalidApproverSet, "approver %s duplicated", a)
		}
	}
	return nil
}

func validateParties(from, to ledger.Identity) error {
	if err := from.Validate(); err != nil {
		return errors.Wrap(err, "from")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if from.Equals(to) {
		return errors.Wrap(errors.ErrInput, "sender and receiver must differ")
	}
	return nil
}

func contains(list []ledger.Identity, id ledger.Identity) bool {
	for _, x := range list {
		if x.Equals(id) {
			return true
		}
	}
	return false
}
