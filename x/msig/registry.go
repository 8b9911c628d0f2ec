package msig

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/orm"
)

// Registry owns pending and settled transfers. It never touches wallets.
type Registry struct {
	pending orm.ModelBucket
	settled orm.ModelBucket
	seq     orm.Sequence
}

// NewRegistry returns a registry using the default buckets.
func NewRegistry() Registry {
	pending := orm.NewModelBucket(PendingBucket, &PendingTransfer{})
	return Registry{
		pending: pending,
		settled: orm.NewModelBucket(SettledBucket, &SettledTransfer{}),
		seq:     pending.Sequence("id"),
	}
}

// Pending returns the transfer of given hash that waits for approval.
func (r Registry) Pending(db ledger.ReadOnlyKVStore, hash ledger.Digest) (*PendingTransfer, error) {
	if err := hash.Validate(); err != nil {
		return nil, errors.Wrap(err, "hash")
	}
	var t PendingTransfer
	switch err := r.pending.One(db, hash, &t); {
	case err == nil:
		return &t, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrUnknownTransfer, "transfer %s", hash)
	default:
		return nil, err
	}
}

// Settled returns the record of a settled transfer.
func (r Registry) Settled(db ledger.ReadOnlyKVStore, hash ledger.Digest) (*SettledTransfer, error) {
	var t SettledTransfer
	switch err := r.settled.One(db, hash, &t); {
	case err == nil:
		return &t, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrUnknownTransfer, "transfer %s", hash)
	default:
		return nil, err
	}
}

// IsSettled returns true if the transfer of given hash was settled.
func (r Registry) IsSettled(db ledger.ReadOnlyKVStore, hash ledger.Digest) (bool, error) {
	return r.settled.Has(db, hash)
}

// CheckUnused returns ErrDuplicateTransfer if the hash was ever
// registered.
func (r Registry) CheckUnused(db ledger.ReadOnlyKVStore, hash ledger.Digest) error {
	if ok, err := r.pending.Has(db, hash); err != nil {
		return err
	} else if ok {
		return errors.Wrapf(errors.ErrDuplicateTransfer, "%s is pending", hash)
	}
	if ok, err := r.settled.Has(db, hash); err != nil {
		return err
	} else if ok {
		return errors.Wrapf(errors.ErrDuplicateTransfer, "%s was settled", hash)
	}
	return nil
}

// Register inserts a new pending transfer.
func (r Registry) Register(db ledger.KVStore, hash ledger.Digest, from, to ledger.Identity, approvers []ledger.Identity, amount uint64) (*PendingTransfer, error) {
	if amount == 0 {
		return nil, errors.Wrap(errors.ErrInvalidAmount, "zero")
	}
	if err := hash.Validate(); err != nil {
		return nil, errors.Wrap(err, "hash")
	}
	if err := validateParties(from, to); err != nil {
		return nil, err
	}
	if err := ValidateApprovers(from, approvers); err != nil {
		return nil, err
	}
	if err := r.CheckUnused(db, hash); err != nil {
		return nil, err
	}
	seq, err := r.seq.NextInt(db)
	if err != nil {
		return nil, errors.Wrap(err, "sequence")
	}

	t := &PendingTransfer{
		Hash:      hash.Clone(),
		From:      from.Clone(),
		To:        to.Clone(),
		Approvers: cloneAll(approvers),
		Amount:    amount,
		Sequence:  seq,
	}
	if err := r.pending.Put(db, hash, t); err != nil {
		return nil, err
	}
	return t, nil
}

// RecordAcceptance adds the approver to the accepted set. Once every
// approver accepted, the transfer is moved to the settled records and
// Settled is returned. The caller is responsible for moving the funds.
func (r Registry) RecordAcceptance(db ledger.KVStore, hash ledger.Digest, approver ledger.Identity) (ledger.Outcome, *PendingTransfer, error) {
	t, err := r.Pending(db, hash)
	if err != nil {
		return ledger.NoOutcome, nil, err
	}
	if !t.IsApprover(approver) {
		return ledger.NoOutcome, nil, errors.Wrapf(errors.ErrNotAnApprover, "%s", approver)
	}
	if t.HasAccepted(approver) {
		return ledger.NoOutcome, nil, errors.Wrapf(errors.ErrAlreadyApproved, "%s", approver)
	}
	t.Accepted = append(t.Accepted, approver.Clone())

	if len(t.Accepted) < len(t.Approvers) {
		if err := r.pending.Put(db, hash, t); err != nil {
			return ledger.NoOutcome, nil, err
		}
		return ledger.StillPending, t, nil
	}

	settled := &SettledTransfer{
		Hash:     t.Hash,
		From:     t.From,
		To:       t.To,
		Amount:   t.Amount,
		Sequence: t.Sequence,
	}
	if err := r.settled.Put(db, hash, settled); err != nil {
		return ledger.NoOutcome, nil, err
	}
	if err := r.pending.Delete(db, hash); err != nil {
		return ledger.NoOutcome, nil, err
	}
	return ledger.Settled, t, nil
}

// RegisterQuery exposes pending transfers under "/transfers" and settled
// ones under "/settled".
func (r Registry) RegisterQuery(qr ledger.QueryRouter) {
	r.pending.Register("transfers", qr)
	r.settled.Register("settled", qr)
}

func cloneAll(ids []ledger.Identity) []ledger.Identity {
	res := make([]ledger.Identity, len(ids))
	for i, id := range ids {
		res[i] = id.Clone()
	}
	return res
}
