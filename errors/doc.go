/*
Package errors implements the error taxonomy of the ledger.

Every error returned by a handler wraps one of the root errors declared
here. Root errors carry a code that is stable across releases, so the
platform can report a rejected transaction to its client without exposing
internal details.

Extensions should reuse the root errors whenever possible and only call
Register for a genuinely new category.

	ErrInsufficientFunds.Newf("need %d", amount)
	errors.Wrap(err, "lock sender funds")
	errors.ErrUnknownAccount.Is(err)

A stacktrace is attached at the most inner Wrap call. Use %+v to print it.
*/
package errors
