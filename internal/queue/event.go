// Package queue defines the message payloads exchanged over the
// broker and the background consumer that drains them.  Contract
// notifications are write-only: the core emits them, the notifier
// publishes them after commit, and nothing in the service ever reads
// them back.
package queue

import "encoding/json"

// EventsQueueName is the durable queue carrying contract
// notifications, one message per emitted record, in invocation order.
const EventsQueueName = "boxoffice.events"

// ContractEvent is the broker envelope for one contract notification.
// Kind is the notification's routing name (e.g. "show.opened") and
// Data is the notification record marshalled as JSON.
type ContractEvent struct {
	Kind      string          `json:"kind"`       // notification kind
	EmittedAt string          `json:"emitted_at"` // RFC3339 publish time
	Data      json.RawMessage `json:"data"`       // notification payload
}
