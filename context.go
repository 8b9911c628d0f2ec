package ledger

import (
	"context"
	"fmt"
	"regexp"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just an alias for the standard implementation.
// We use functions to extend it to our domain
type Context = context.Context

type contextKey int // local to the ledger module

const (
	contextKeyLogger contextKey = iota
	contextKeySigner
	contextKeyTxDigest
	contextKeyChainID
	contextKeyHeight
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithLogger sets the logger for this context
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithSigner sets the verified identity of the transaction sender.
// The platform, or the signature decorator, is responsible for the
// verification.
func WithSigner(ctx Context, signer Identity) Context {
	return context.WithValue(ctx, contextKeySigner, signer)
}

// GetSigner returns the verified identity of the transaction sender.
func GetSigner(ctx Context) (Identity, bool) {
	val, ok := ctx.Value(contextKeySigner).(Identity)
	return val, ok && len(val) != 0
}

// WithTxDigest sets the digest identifying the transaction being
// processed. It is folded into the history of every wallet the
// transaction modifies.
func WithTxDigest(ctx Context, digest Digest) Context {
	return context.WithValue(ctx, contextKeyTxDigest, digest)
}

// GetTxDigest returns the digest of the transaction being processed.
func GetTxDigest(ctx Context) (Digest, bool) {
	val, ok := ctx.Value(contextKeyTxDigest).(Digest)
	return val, ok
}

// WithChainID sets the chain id for the Context.
// panics if called with chain id already set
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Tried to set chain id twice")
	}
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("Invalid chain id: %q", chainID))
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the current chain id. Empty string
// if the chain id was not set.
func GetChainID(ctx Context) string {
	val, _ := ctx.Value(contextKeyChainID).(string)
	return val
}

// WithHeight sets the block height for the Context.
// panics if called with height already set
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Cannot modify height")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight gets the height of the current block, if set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}
