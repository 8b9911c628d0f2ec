/*
Package wallet implements the account ledger.

Every wallet is owned by an ed25519 identity and holds an available and a
locked balance. Funds enter a wallet only through issuance or a settled
transfer. Locked funds belong to outgoing multisignature transfers that
wait for approval. Every balance changing operation folds the digest of
the transaction into the wallet history.
*/
package wallet
