package client

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/app"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/x/msig"
	"github.com/iov-one/ledger/x/wallet"
)

// Wallet returns the wallet owned by given identity.
func (c *Client) Wallet(id ledger.Identity) (*wallet.Wallet, error) {
	var w wallet.Wallet
	if err := c.queryOne("/wallets", id, &w); err != nil {
		return nil, errors.Wrapf(err, "wallet %s", id)
	}
	return &w, nil
}

// PendingTransfer returns the transfer of given hash that still waits
// for approvers.
func (c *Client) PendingTransfer(hash ledger.Digest) (*msig.PendingTransfer, error) {
	var t msig.PendingTransfer
	if err := c.queryOne("/transfers", hash, &t); err != nil {
		return nil, errors.Wrapf(err, "pending transfer %s", hash)
	}
	return &t, nil
}

// SettledTransfer returns the settled transfer of given hash.
func (c *Client) SettledTransfer(hash ledger.Digest) (*msig.SettledTransfer, error) {
	var t msig.SettledTransfer
	if err := c.queryOne("/settled", hash, &t); err != nil {
		return nil, errors.Wrapf(err, "settled transfer %s", hash)
	}
	return &t, nil
}

// queryOne loads the single record stored under key. ErrNotFound is
// returned when the record does not exist.
func (c *Client) queryOne(path string, key []byte, dest ledger.Persistent) error {
	res := c.Query(RequestQuery{Path: path, Data: key})
	if res.Code != errors.SuccessABCICode {
		return errors.ABCIError(res.Code, res.Log)
	}
	var keys app.ResultSet
	if err := keys.Unmarshal(res.Key); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if len(keys.Results) == 0 {
		return errors.ErrNotFound
	}
	return app.UnmarshalOneResult(res.Value, dest)
}
