package client

import (
	"context"
	"fmt"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/app"
	"github.com/iov-one/ledger/crypto"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/x/utils"
	abci "github.com/tendermint/tendermint/abci/types"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

const txPerPage = 50

// Client is a tendermint client wrapped to provide
// simple access to the ledger transactions and state.
type Client struct {
	conn rpcclient.ABCIClient
}

// NewClient wraps a Client around an existing tendermint client connection.
func NewClient(conn rpcclient.ABCIClient) *Client {
	return &Client{conn: conn}
}

// NewHTTPClient takes a URL and sends all requests to the remote node
func NewHTTPClient(remote string) *Client {
	return NewClient(rpcclient.NewHTTP(remote, "/websocket"))
}

// SubmitTx will submit the tx to the mempool and then return with success or error.
// The transaction is not yet part of a block.
func (c *Client) SubmitTx(ctx context.Context, tx *app.Tx) (TransactionID, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrNetwork, err.Error())
	}
	bz, err := tx.Marshal()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "marshaling: %s", err.Error())
	}
	res, err := c.conn.BroadcastTxSync(bz)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "submit tx: %s", err.Error())
	}

	// a checktx error didn't make it into mempool... will not make it into block
	if res.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	return res.Hash, nil
}

// CommitTx will block on both Check and Deliver, returning when it is in a block
func (c *Client) CommitTx(ctx context.Context, tx *app.Tx) (*CommitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrNetwork, err.Error())
	}
	bz, err := tx.Marshal()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "marshaling: %s", err.Error())
	}
	res, err := c.conn.BroadcastTxCommit(bz)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "commit tx: %s", err.Error())
	}
	if res.CheckTx.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.CheckTx.Code, res.CheckTx.Log)
	}
	return &CommitResult{
		ID:     res.Hash,
		Height: res.Height,
		Result: deliverResult(res.DeliverTx),
		Err:    errors.ABCIError(res.DeliverTx.Code, res.DeliverTx.Log),
	}, nil
}

// SignAndCommit wraps the message into a transaction signed by key and
// commits it.
func (c *Client) SignAndCommit(ctx context.Context, key *crypto.PrivateKey, chainID string, msg ledger.Msg) (*CommitResult, error) {
	tx, err := app.NewTx(msg)
	if err != nil {
		return nil, err
	}
	if err := tx.Sign(key, chainID); err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return c.CommitTx(ctx, tx)
}

// Query is meant to mirror the abci query interface exactly.
// Network errors are reported with the ErrNetwork code.
func (c *Client) Query(query RequestQuery) ResponseQuery {
	res, err := c.conn.ABCIQueryWithOptions(query.Path, query.Data, rpcclient.ABCIQueryOptions{Height: query.Height, Prove: query.Prove})
	if err != nil {
		code, log := errors.ABCIInfo(errors.Wrap(errors.ErrNetwork, err.Error()), false)
		return ResponseQuery{
			Code: code,
			Log:  log,
		}
	}
	return res.Response
}

// SearchTx will search for all committed transactions that match a query,
// returning them as one large array. The connection must support
// transaction search.
func (c *Client) SearchTx(ctx context.Context, query TxQuery) ([]*CommitResult, error) {
	sc, ok := c.conn.(rpcclient.SignClient)
	if !ok {
		return nil, errors.Wrapf(errors.ErrNetwork, "%T cannot search transactions", c.conn)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrNetwork, err.Error())
	}
	search, err := sc.TxSearch(query, false, 1, txPerPage)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "search tx: %s", err.Error())
	}

	results := make([]*CommitResult, len(search.Txs))
	for i, tx := range search.Txs {
		results[i] = resultTxToCommitResult(tx)
	}
	return results, nil
}

// QueryTxByWallet returns a query matching all transactions that
// changed the wallet of given identity.
func QueryTxByWallet(id ledger.Identity) TxQuery {
	return fmt.Sprintf("%s='%s'", utils.WalletKey, id)
}

// QueryTxByTransfer returns a query matching all transactions that
// changed the transfer of given hash.
func QueryTxByTransfer(hash ledger.Digest) TxQuery {
	return fmt.Sprintf("%s='%s'", utils.TransferKey, hash)
}

// QueryTxByID returns a query to find the transaction with given id.
func QueryTxByID(id TransactionID) TxQuery {
	return fmt.Sprintf("%s='%X'", tmtypes.TxHashKey, []byte(id))
}

func resultTxToCommitResult(tx *ctypes.ResultTx) *CommitResult {
	return &CommitResult{
		ID:     tx.Hash,
		Height: tx.Height,
		Result: deliverResult(tx.TxResult),
		Err:    errors.ABCIError(tx.TxResult.Code, tx.TxResult.Log),
	}
}

func deliverResult(res abci.ResponseDeliverTx) *ledger.DeliverResult {
	if res.Code != errors.SuccessABCICode {
		return nil
	}
	return &ledger.DeliverResult{
		Data: res.Data,
		Log:  res.Log,
		Tags: res.Tags,
	}
}
