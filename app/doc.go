/*
Package app wires the ledger together.

The Processor is the single entry point applying one transaction to a
store. It routes the message to its handler through a chain of
decorators and runs it inside a savepoint, so a failed transaction never
leaves partial state behind.

Ledger adapts the Processor to the tendermint ABCI interface, keeping a
committed iavl store and separate check and deliver caches.
*/
package app
