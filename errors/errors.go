package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is used when a requested operation cannot be completed
	// due to missing data.
	ErrNotFound = Register(3, "not found")

	// ErrInput stands for general input problems indication.
	ErrInput = Register(4, "invalid input")

	// ErrModel is returned whenever a model is invalid and cannot be
	// persisted.
	ErrModel = Register(5, "invalid model")

	// ErrHuman is returned when application reaches a code path which
	// should not ever be reached if the code was written as expected.
	ErrHuman = Register(6, "coding error")

	// ErrState is returned when an object is in invalid state.
	ErrState = Register(7, "invalid state")

	// ErrType is returned whenever the type is not what was expected.
	ErrType = Register(8, "invalid type")

	// ErrDatabase is returned when the underlying storage fails.
	ErrDatabase = Register(9, "database")

	// ErrEmpty is returned when a value fails a not empty assertion.
	ErrEmpty = Register(10, "value is empty")

	// ErrNetwork is returned on network failure (only by client).
	ErrNetwork = Register(11, "network")

	// ErrAlreadyExists is returned when a wallet is created for an
	// identity that already owns one.
	ErrAlreadyExists = Register(20, "already exists")

	// ErrUnknownAccount is returned when a referenced wallet does not
	// exist.
	ErrUnknownAccount = Register(21, "unknown account")

	// ErrUnknownTransfer is returned when a referenced transfer is not
	// pending.
	ErrUnknownTransfer = Register(22, "unknown transfer")

	// ErrInvalidAmount is returned for a zero amount or an amount that
	// does not fit the balance range.
	ErrInvalidAmount = Register(23, "invalid amount")

	// ErrInsufficientFunds is returned when a lock would exceed the
	// available balance.
	ErrInsufficientFunds = Register(24, "insufficient funds")

	// ErrInvalidApproverSet is returned for an empty or duplicated
	// approver list.
	ErrInvalidApproverSet = Register(25, "invalid approver set")

	// ErrDuplicateTransfer is returned when a transfer hash collides with
	// a pending or an already settled transfer.
	ErrDuplicateTransfer = Register(26, "duplicate transfer")

	// ErrNotAnApprover is returned when the accepting identity is not
	// one of the transfer approvers.
	ErrNotAnApprover = Register(27, "not an approver")

	// ErrAlreadyApproved is returned when an approver accepts the same
	// transfer twice.
	ErrAlreadyApproved = Register(28, "already approved")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// Popular root errors are declared in this package, but extensions may want to
// declare custom codes. This function ensures that no error code is used
// twice. Attempt to reuse an error code results in panic.
//
// Use this function only during a program startup phase.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No two
// error instances should share the same error code.
var usedCodes = map[uint32]*Error{
	1: nil, // Error code 1 is restricted for internal errors.
}

// Error represents a root error.
//
// Each instance created during the runtime should wrap one of the declared
// root errors. This allows error tests and returning all errors to the client
// in a safe manner.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode returns the code the platform reports for this error.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New returns a new error. Returned instance is having the root cause set to
// this error. Below two lines are equal
//   e.New("my description")
//   Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities.
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is check if given error instance is of a given kind/type. This involves
// unwrapping given error using the Cause method if available.
func (kind *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if kind == nil {
		if err == nil {
			return true
		}
		return reflect.ValueOf(err).IsNil()
	}

	for {
		if err == kind {
			return true
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Wrap extends given error with an additional information.
//
// If the wrapped error does not provide ABCICode method (ie. stdlib errors),
// it will be labeled as internal error.
//
// If err is nil, this returns nil, avoiding the need for an if statement when
// wrapping a error returned at the end of a function
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// If this error does not carry the stacktrace information yet, attach
	// one. This should be done only once per error at the lowest frame
	// possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap function with additional funtionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format works like pkg/errors, with additions.
//   %s is just the error message
//   %+v is the full stack trace
//   %v appends a compressed [filename:line] where the error was created
func (e *wrappedError) Format(s fmt.State, verb rune) {
	st := stackTrace(e)
	switch {
	case verb == 'v' && s.Flag('+'):
		fmt.Fprintf(s, "%s%+v", e.Error(), st)
	case verb == 'v' && len(st) > 0:
		fmt.Fprintf(s, "%s", e.Error())
		writeSimpleFrame(s, st[0])
	default:
		fmt.Fprintf(s, "%s", e.Error())
	}
}

// Recover captures a panic and stop its propagation. If panic happens it is
// transformed into a ErrPanic instance and assigned to given error. Call this
// function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// WithType is a helper to augment an error with a corresponding type message
func WithType(err error, obj interface{}) error {
	return Wrap(err, fmt.Sprintf("%T", obj))
}

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}
