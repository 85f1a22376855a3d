package model

// ShowInfo carries the descriptive metadata the owner attaches to a
// sale when opening it.  It is not persisted as contract state; it is
// only echoed in the Show notification so external observers can tie
// the sale window to a real event.
//
// Fields:
//  Name      – title of the show being sold.
//  Organiser – party running the show.
//  Time      – human-readable show time (opaque to the contract).
//  EndHeight – ledger height at which the sale closes.
type ShowInfo struct {
	Name      string `json:"name"`       // show title
	Organiser string `json:"organiser"`  // organising party
	Time      string `json:"time"`       // show time, not interpreted
	EndHeight uint64 `json:"end_height"` // sale close height
}

// SaleStatus is the read-only snapshot returned by the status query.
// Phase is one of "INACTIVE", "OPEN" or "AWAITING_CLOSE".
type SaleStatus struct {
	Phase          string `json:"phase"`            // current lifecycle phase
	Height         uint64 `json:"height"`           // ledger height at query time
	EndOfSale      uint64 `json:"end_of_sale"`      // zero when no sale is active
	ReleaseFee     uint64 `json:"release_fee"`      // fee withheld on voluntary release
	NoRefundBlocks uint64 `json:"no_refund_blocks"` // closing window during which release is disallowed
}
