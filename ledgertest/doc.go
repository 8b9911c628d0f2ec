/*
Package ledgertest provides mocks and helpers for testing handlers,
decorators and whole transaction flows.
*/
package ledgertest
