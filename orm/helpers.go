package orm

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/store"
)

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr ledger.Iterator) ([]ledger.Model, error) {
	defer itr.Close()

	var res []ledger.Model
	for itr.Valid() {
		res = append(res, ledger.Pair(itr.Key(), itr.Value()))
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func queryPrefix(db ledger.ReadOnlyKVStore, prefix []byte) ([]ledger.Model, error) {
	start, end := store.PrefixRange(prefix)
	itr, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// ValidateSequence returns an error if this is not an 8-byte
// sequence value as produced by Sequence.NextVal
func ValidateSequence(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sequence missing")
	}
	if len(id) != 8 {
		return errors.Wrap(errors.ErrInput, "sequence is invalid length (expect 8 bytes)")
	}
	return nil
}
