package contract

// Notification is a write-only record emitted on a state transition.
// Operations that emit notifications return them in order; the
// adapter publishes them to the event sink after the invocation
// commits.  Notifications are never read back by the core.
type Notification interface {
	// Kind returns the stable event name used as the routing key on
	// the broker side.
	Kind() string
}

// VenueCreated is emitted once, by Deploy.
type VenueCreated struct {
	Name string `json:"name"` // venue name given at deployment
}

func (VenueCreated) Kind() string { return "venue.created" }

// ShowOpened is emitted by BeginSale when the sale window opens.
type ShowOpened struct {
	Name      string `json:"name"`       // show title
	Organiser string `json:"organiser"`  // organising party
	Time      string `json:"time"`       // show time as given by the owner
	EndHeight uint64 `json:"end_height"` // height at which the sale closes
}

func (ShowOpened) Kind() string { return "show.opened" }

// ReleaseFeeChanged is emitted whenever the owner rewrites the
// ticket-release fee.
type ReleaseFeeChanged struct {
	Fee uint64 `json:"fee"` // new fee in value units
}

func (ReleaseFeeChanged) Kind() string { return "policy.release_fee_changed" }

// NoRefundBlocksChanged is emitted whenever the owner rewrites the
// no-refund window size.
type NoRefundBlocksChanged struct {
	Blocks uint64 `json:"blocks"` // new window size in blocks
}

func (NoRefundBlocksChanged) Kind() string { return "policy.no_refund_blocks_changed" }
