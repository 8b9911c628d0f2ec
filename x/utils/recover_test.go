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

func TestRecovery(t *testing.T) {
	var h panicHandler
	r := NewRecovery()

	ctx := context.Background()
	s := store.MemStore()

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { h.Check(ctx, s, nil) })
	assert.Panics(t, func() { h.Deliver(ctx, s, nil) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))

	decorated := ledgertest.Decorate(h, r)
	_, err = decorated.Deliver(ctx, s, nil)
	assert.True(t, errors.ErrPanic.Is(err))
}

func TestRecoveryLogsTransaction(t *testing.T) {
	var buf bytes.Buffer
	signer := ledgertest.KeyFromName("alice").Identity()
	digest := ledger.Sum([]byte("tx"))

	ctx := ledger.WithLogger(context.Background(), log.NewTMLogger(&buf))
	ctx = ledger.WithSigner(ctx, signer)
	ctx = ledger.WithTxDigest(ctx, digest)

	_, err := NewRecovery().Deliver(ctx, store.MemStore(), nil, panicHandler{})
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "deliver panic")

	out := buf.String()
	assert.True(t, strings.Contains(out, "transaction panicked"), out)
	assert.True(t, strings.Contains(out, "call=deliver"), out)
	assert.True(t, strings.Contains(out, "tx="+digest.String()), out)
	assert.True(t, strings.Contains(out, "signer="+signer.String()), out)
}

type panicHandler struct{}

var _ ledger.Handler = panicHandler{}

func (p panicHandler) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	panic("check panic")
}

func (p panicHandler) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	panic("deliver panic")
}
