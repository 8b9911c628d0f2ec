package ledger

// Outcome describes the state of a multisignature transfer after an
// acceptance was recorded.
type Outcome int32

const (
	// NoOutcome is set for transactions that do not accept a transfer.
	NoOutcome Outcome = iota
	// StillPending means the transfer waits for more approvers.
	StillPending
	// Settled means the last approver accepted and funds were moved.
	Settled
)

func (o Outcome) String() string {
	switch o {
	case StillPending:
		return "pending"
	case Settled:
		return "settled"
	default:
		return "none"
	}
}

// Effect describes which records a transaction changed. It is returned
// to the platform so it can index transactions by the wallets and
// transfers they touched.
type Effect struct {
	Wallets   []Identity
	Transfers []Digest
	Outcome   Outcome
}

// TouchWallet records that the wallet of given identity was modified.
// Repeated calls for the same identity are ignored.
func (e *Effect) TouchWallet(id Identity) {
	for _, w := range e.Wallets {
		if w.Equals(id) {
			return
		}
	}
	e.Wallets = append(e.Wallets, id)
}

// TouchTransfer records that the transfer of given hash was modified.
// Repeated calls for the same hash are ignored.
func (e *Effect) TouchTransfer(hash Digest) {
	for _, t := range e.Transfers {
		if t.Equals(hash) {
			return
		}
	}
	e.Transfers = append(e.Transfers, hash)
}
