package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/ledgertest"
	"github.com/iov-one/ledger/store"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := ledger.WithLogger(context.Background(), log.NewTMLogger(&buf))
	tx := &ledgertest.Tx{Msg: &ledgertest.Msg{RoutePath: "msig/accept"}}

	h := &ledgertest.Handler{DeliverResult: ledger.DeliverResult{Log: "all good"}}
	_, err := NewLogging().Deliver(ctx, store.MemStore(), tx, h)
	assert.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.Contains(out, "all good"), out)
	assert.True(t, strings.Contains(out, "path=msig/accept"), out)

	buf.Reset()
	failing := &ledgertest.Handler{DeliverErr: errors.ErrUnknownTransfer}
	_, err = NewLogging().Deliver(ctx, store.MemStore(), tx, failing)
	assert.True(t, errors.ErrUnknownTransfer.Is(err))
	assert.True(t, strings.Contains(buf.String(), "unknown transfer"), buf.String())
}
