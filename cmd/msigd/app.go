package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/app"
	"github.com/iov-one/ledger/crypto"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/store/iavl"
	"github.com/iov-one/ledger/x/wallet"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenerateApp opens the state kept in the home directory and returns
// the ledger application. An empty home keeps the state in memory.
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	var db ledger.CommitKVStore
	if home == "" {
		db = iavl.MockCommitStore()
	} else {
		commit, err := iavl.NewCommitStore(filepath.Join(home, "data"), "msig")
		if err != nil {
			return nil, err
		}
		db = commit
	}
	return app.NewLedger(db, logger.With("module", "app"), debug)
}

// GenInitOptions creates a new key and a genesis wallet for it, funded
// with the given balance. The key seed is printed so the wallet owner
// can sign transactions.
func GenInitOptions(args []string) (json.RawMessage, error) {
	if len(args) != 2 {
		return nil, errors.Wrap(errors.ErrInput, "usage: init <name> <balance>")
	}
	name := args[0]
	balance, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidAmount, "balance: %s", err)
	}

	key := crypto.GenPrivKey()
	state := map[string]interface{}{
		"wallets": []wallet.GenesisWallet{
			{PubKey: key.Identity(), Name: name, Balance: balance},
		},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrHuman, err.Error())
	}

	fmt.Printf("Wallet %q owned by %s\n", name, key.Identity())
	fmt.Printf("Private key seed (keep it secret): %s\n", hex.EncodeToString(key.Seed()))
	return raw, nil
}
