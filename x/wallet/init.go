package wallet

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/gconf"
)

const optKey = "wallets"

// GenesisWallet is used to parse the json from genesis file
type GenesisWallet struct {
	PubKey  ledger.Identity `json:"pub_key"`
	Name    string          `json:"name"`
	Balance uint64          `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ ledger.Initializer = Initializer{}

// FromGenesis will parse the configuration and initial wallets from
// genesis and save them to the database. Initial balances count as issued.
func (Initializer) FromGenesis(opts ledger.Options, db ledger.KVStore) error {
	var conf Configuration
	switch err := gconf.InitConfig(db, opts, confPkg, &conf); {
	case err == nil, errors.ErrNotFound.Is(err):
	default:
		return errors.Wrap(err, "init configuration")
	}

	var wallets []GenesisWallet
	if err := opts.ReadOptions(optKey, &wallets); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	control := NewController()
	for i, gw := range wallets {
		if _, err := control.Create(db, gw.PubKey, gw.Name); err != nil {
			return errors.Wrapf(err, "wallet %d", i)
		}
		if gw.Balance == 0 {
			continue
		}
		digest := ledger.Sum([]byte("wallet/genesis"), gw.PubKey)
		if _, err := control.Issue(db, gw.PubKey, gw.Balance, digest); err != nil {
			return errors.Wrapf(err, "wallet %d", i)
		}
	}
	return nil
}
