package app

import (
	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/x/msig"
	"github.com/iov-one/ledger/x/sigs"
	"github.com/iov-one/ledger/x/utils"
	"github.com/iov-one/ledger/x/wallet"
)

// Routes returns a router with the handlers of all transaction kinds.
func Routes() *Router {
	r := NewRouter()
	control := wallet.NewController()
	wallet.RegisterRoutes(r, control)
	msig.RegisterRoutes(r, control)
	return r
}

// QueryRouter returns a router exposing wallets and transfers.
func QueryRouter() ledger.QueryRouter {
	qr := ledger.NewQueryRouter()
	qr.RegisterAll(
		wallet.RegisterQuery,
		msig.RegisterQuery,
	)
	return qr
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() ledger.Initializer {
	return ledger.ChainInitializers(
		wallet.Initializer{},
	)
}

// Stack wraps the router into the decorators every transaction passes
// through. auth decides whether unsigned transactions are accepted.
func Stack(auth sigs.Decorator) ledger.Handler {
	return ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		auth,
		utils.NewTagger(),
	).WithHandler(Routes())
}

// NewLocalProcessor returns a processor for callers that verified the
// sender themselves. The signer given to Apply is trusted.
func NewLocalProcessor() Processor {
	return NewProcessor(Stack(sigs.NewDecorator().AllowMissingSigs()))
}
