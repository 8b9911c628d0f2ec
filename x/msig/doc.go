/*
Package msig implements transfers that need the approval of several
parties.

The sender names the receiver, the amount and the approvers. Funds are
locked on the sender wallet when the transfer is registered and move to
the receiver only after every approver accepted. The transfer hash is
derived from the whole initiating message, including a caller chosen
seed, and can be registered only once. Settled hashes are kept forever,
which is the only replay protection the ledger has.
*/
package msig
