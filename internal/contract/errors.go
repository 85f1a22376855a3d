// Package contract implements the deterministic ticket-sale state
// machine: a fixed seat catalog, a timed sale lifecycle, paid seat
// reservations and a fee-gated release policy.  The package has no
// notion of HTTP, databases or brokers; it operates on a storage.State
// collaborator and a Bank for value transfers, and every operation
// receives the invocation context (caller, height, attached value)
// explicitly.
//
// Errors returned from operations are hard aborts: the surrounding
// adapter must discard every effect of the invocation (the MySQL
// transaction rollback provides this in the service).  Recoverable
// outcomes such as "seat already taken" are reported through return
// values, never through errors.
package contract

import "errors"

// Hard-abort sentinels.  Handlers map these onto HTTP statuses; the
// invoker rolls the invocation back whenever one is returned.
var (
	// ErrAlreadyDeployed is returned when Deploy is called twice.
	ErrAlreadyDeployed = errors.New("contract: venue already deployed")

	// ErrBadCatalog is returned when the deployment seat list is
	// empty, contains the sentinel seat or repeats an identity.
	ErrBadCatalog = errors.New("contract: invalid seat catalog")

	// ErrNotOwner is returned when an owner-gated operation is called
	// by anyone else.
	ErrNotOwner = errors.New("contract: caller is not the owner")

	// ErrZeroAddress is returned when the sentinel address appears
	// where a real party is required.
	ErrZeroAddress = errors.New("contract: zero address not allowed")

	// ErrSaleActive is returned by BeginSale when a sale is already
	// open or awaiting close.
	ErrSaleActive = errors.New("contract: a sale is already in progress")

	// ErrSaleStillOpen is returned by EndSale and the policy setters
	// while the sale window is still running.
	ErrSaleStillOpen = errors.New("contract: sale is still open")

	// ErrNoActiveSale is returned by EndSale when there is nothing to
	// close.
	ErrNoActiveSale = errors.New("contract: no sale to end")

	// ErrSaleNotOpen is returned by Reserve, ReleaseTicket and
	// CheckAvailability outside the open sale window.
	ErrSaleNotOpen = errors.New("contract: sale not open")

	// ErrBadEndHeight is returned when BeginSale is given a close
	// height that is not in the future.
	ErrBadEndHeight = errors.New("contract: end height not in the future")

	// ErrBadPriceList is returned when the BeginSale price list does
	// not cover the catalog exactly once per seat.
	ErrBadPriceList = errors.New("contract: price list does not match catalog")

	// ErrSeatUnknown is returned when a seat identity does not exist
	// in the catalog.
	ErrSeatUnknown = errors.New("contract: unknown seat")

	// ErrNoRefundWindow is returned when ReleaseTicket is called
	// inside the configured no-refund window before sale close.
	ErrNoRefundWindow = errors.New("contract: inside no-refund window")

	// ErrNotTicketHolder is returned when ReleaseTicket is called by
	// someone other than the ticket's current owner.
	ErrNotTicketHolder = errors.New("contract: caller does not hold this ticket")
)
