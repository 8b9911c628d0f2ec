package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is returned by Info.
const Name = "msig"

// Ledger drives the processor from a tendermint node.
//
// Errors on ABCI steps that do not take user input (Info, InitChain,
// BeginBlock, Commit) cannot be handled gracefully, so they panic.
type Ledger struct {
	abci.BaseApplication

	logger log.Logger
	debug  bool

	store       *CommitStore
	decoder     ledger.TxDecoder
	processor   Processor
	queries     ledger.QueryRouter
	initializer ledger.Initializer

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string

	// baseContext contains context info that is valid for
	// lifetime of this app (eg. chainID)
	baseContext ledger.Context

	// blockContext contains context info that is valid for the
	// current block (eg. height), reset on BeginBlock
	blockContext ledger.Context
}

var _ abci.Application = (*Ledger)(nil)

// NewLedger loads the latest state from the store and returns an
// application requiring every transaction to be signed.
func NewLedger(db ledger.CommitKVStore, logger log.Logger, debug bool) (*Ledger, error) {
	store, err := NewCommitStore(db)
	if err != nil {
		return nil, err
	}
	l := &Ledger{
		logger:      logger,
		debug:       debug,
		store:       store,
		decoder:     TxDecoder,
		processor:   NewProcessor(Stack(sigs.NewDecorator())),
		queries:     QueryRouter(),
		initializer: Initializers(),
		baseContext: ledger.WithLogger(context.Background(), logger),
	}

	l.chainID, err = loadChainID(store.DeliverStore())
	if err != nil {
		return nil, err
	}
	if l.chainID != "" {
		l.baseContext = ledger.WithChainID(l.baseContext, l.chainID)
	}

	info, err := store.CommitInfo()
	if err != nil {
		return nil, err
	}
	l.blockContext = ledger.WithHeight(l.baseContext, info.Version)
	return l, nil
}

// ChainID returns the chain id set at genesis, if any.
func (l *Ledger) ChainID() string {
	return l.chainID
}

// Info implements abci.Application. It returns the height and hash,
// as well as the abci name and version.
func (l *Ledger) Info(req abci.RequestInfo) abci.ResponseInfo {
	info, err := l.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	l.logger.Info("Info synced",
		"height", info.Version,
		"hash", fmt.Sprintf("%X", info.Hash))

	return abci.ResponseInfo{
		Data:             Name,
		Version:          ledger.Version(),
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

// InitChain stores the chain id and loads the genesis state from
// app_state.
func (l *Ledger) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := l.loadAppState(req.AppStateBytes, req.ChainId); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (l *Ledger) loadAppState(data []byte, chainID string) error {
	if l.chainID != "" {
		return errors.Wrapf(errors.ErrState, "app state previously loaded for chain %s", l.chainID)
	}
	if len(data) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state not set in genesis")
	}
	var opts ledger.Options
	if err := json.Unmarshal(data, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := saveChainID(l.store.DeliverStore(), chainID); err != nil {
		return err
	}
	l.chainID = chainID
	l.baseContext = ledger.WithChainID(l.baseContext, chainID)

	// transactions may arrive before the first BeginBlock
	info, err := l.store.CommitInfo()
	if err != nil {
		return err
	}
	l.blockContext = ledger.WithHeight(l.baseContext, info.Version)
	return l.initializer.FromGenesis(opts, l.store.DeliverStore())
}

// BeginBlock sets the height of the block being processed.
func (l *Ledger) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	l.blockContext = ledger.WithHeight(l.baseContext, req.Header.Height)
	return abci.ResponseBeginBlock{}
}

// CheckTx validates the transaction against the check state.
func (l *Ledger) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := l.loadTx(txBytes)
	if err != nil {
		return checkOrError(nil, err, l.debug)
	}
	ctx := l.txContext(txBytes, "check_tx", tx)
	res, err := l.processor.Check(ctx, tx, nil, l.store.CheckStore())
	return checkOrError(res, err, l.debug)
}

// DeliverTx applies the transaction to the deliver state.
func (l *Ledger) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := l.loadTx(txBytes)
	if err != nil {
		return deliverOrError(nil, err, l.debug)
	}
	ctx := l.txContext(txBytes, "deliver_tx", tx)
	res, err := l.processor.Deliver(ctx, tx, nil, l.store.DeliverStore())
	return deliverOrError(res, err, l.debug)
}

// txContext identifies the transaction by the digest of its bytes.
func (l *Ledger) txContext(txBytes []byte, call string, tx ledger.Tx) ledger.Context {
	ctx := ledger.WithTxDigest(l.blockContext, ledger.Sum(txBytes))
	return ledger.WithLogInfo(ctx, "call", call, "path", ledger.GetPath(tx))
}

// loadTx calls the decoder, and capture any panics
func (l *Ledger) loadTx(txBytes []byte) (tx ledger.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = l.decoder(txBytes)
	return
}

// Commit implements abci.Application
func (l *Ledger) Commit() abci.ResponseCommit {
	id, err := l.store.Commit()
	if err != nil {
		panic(err)
	}
	l.logger.Debug("Commit synced",
		"height", id.Version,
		"hash", fmt.Sprintf("%X", id.Hash),
	)
	return abci.ResponseCommit{Data: id.Hash}
}

/*
Query gets data from the last committed state.

Path may be "/wallets", "/transfers" or "/settled", optionally
followed by "?prefix" to make a prefix query.

Key and Value in the response are always serialized ResultSet
objects, able to support 0 to N values. They are the same size.
*/
func (l *Ledger) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod, err := ledger.ParseQueryPath(req.Path)
	if err != nil {
		return queryError(err, l.debug)
	}
	qh := l.queries.Handler(path)
	if qh == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "query path: %s", req.Path), l.debug)
	}

	info, err := l.store.CommitInfo()
	if err != nil {
		return queryError(err, l.debug)
	}
	models, err := qh.Query(l.store.QueryStore(), mod, req.Data)
	if err != nil {
		return queryError(err, l.debug)
	}

	res := abci.ResponseQuery{Height: info.Version}
	if res.Key, err = ResultsFromKeys(models).Marshal(); err != nil {
		return queryError(err, l.debug)
	}
	if res.Value, err = ResultsFromValues(models).Marshal(); err != nil {
		return queryError(err, l.debug)
	}
	return res
}
