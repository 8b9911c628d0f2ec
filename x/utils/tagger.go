package utils

import (
	"github.com/iov-one/ledger"
	"github.com/tendermint/tendermint/libs/common"
)

// Keys of the tags appended by the Tagger.
const (
	ActionKey   = "action"
	WalletKey   = "wallet"
	TransferKey = "transfer"
	OutcomeKey  = "outcome"
)

// Tagger will inspect the message being executed and
// add a tag `action = msg.Path()`, together with one tag per wallet and
// transfer listed in the effect, so clients have a standard way to
// search / subscribe to transactions of a wallet or a transfer.
type Tagger struct{}

var _ ledger.Decorator = Tagger{}

// NewTagger creates a Tagger decorator
func NewTagger() Tagger {
	return Tagger{}
}

// Check just passes the request along
func (Tagger) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx, next ledger.Checker) (*ledger.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends the tags on the result if there is a success.
func (Tagger) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx, next ledger.Deliverer) (*ledger.DeliverResult, error) {
	// if we error in reporting, let's do so early before dispatching
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, EffectTags(msg.Path(), res.Effect)...)
	return res, nil
}

// EffectTags lists the tags describing a delivered transaction.
func EffectTags(path string, e ledger.Effect) []common.KVPair {
	tags := []common.KVPair{tag(ActionKey, path)}
	for _, w := range e.Wallets {
		tags = append(tags, tag(WalletKey, w.String()))
	}
	for _, t := range e.Transfers {
		tags = append(tags, tag(TransferKey, t.String()))
	}
	if e.Outcome != ledger.NoOutcome {
		tags = append(tags, tag(OutcomeKey, e.Outcome.String()))
	}
	return tags
}

func tag(key, value string) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(value)}
}
