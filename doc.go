/*
Package ledger defines all common interfaces used to build the
multisignature wallet ledger, as well as implementations of some of the
simpler components (when interfaces would be too much overhead).

The ledger is a pure state transition engine. The platform hands every
transaction, together with the verified identity of its sender and a
handle to the key value store, to a Handler. The Handler validates the
transaction and either applies its whole effect or rejects it leaving the
store untouched.

Context is used to pass request scoped information (logger, verified
signer, transaction digest) between the application, decorators and
handlers. There should exist two functions for every XYZ of type T
that we want to support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package ledger
