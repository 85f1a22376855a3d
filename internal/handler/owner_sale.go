package handler // owner-facing sale lifecycle handlers

import (
	"context"       // invoker method signatures
	"net/http"      // http defines status codes
	"strings"       // trimming of request fields
	"unicode/utf16" // seat letters are stored as UTF-16 code units

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/mkarimov/boxoffice/internal/contract"
	"github.com/mkarimov/boxoffice/internal/model"
	"github.com/mkarimov/boxoffice/internal/notifier"
)

// Invoker is what the handlers need from the host layer: run one
// atomic invocation, run a read-only query, and report the current
// height.  host.Invoker satisfies it; tests substitute an in-memory
// implementation.
type Invoker interface {
	Invoke(ctx context.Context, caller model.Address, attached uint64, fn func(call contract.Context, box *contract.BoxOffice) error) error
	Query(ctx context.Context, fn func(call contract.Context, box *contract.BoxOffice) error) error
	Height() uint64
}

// ContractHandler routes HTTP requests into contract invocations.
// Every mutating method goes through the Invoker so it runs inside
// one transaction; notifications emitted by a committed invocation
// are published to the broker afterwards, with failures logged but
// not surfaced to the client.
type ContractHandler struct {
	Inv Invoker
}

func NewContractHandler(inv Invoker) *ContractHandler {
	if inv == nil {
		panic("nil invoker passed to NewContractHandler")
	}
	return &ContractHandler{Inv: inv}
}

// publish pushes committed notifications to the broker.  Best effort:
// the invocation already committed, a broker hiccup must not turn a
// success into a 500.
func (h *ContractHandler) publish(c echo.Context, notes []contract.Notification) {
	if len(notes) == 0 {
		return
	}
	_ = notifier.Publish(c.Request().Context(), notes)
}

// DeployVenue handles POST /v1/venue.  The authenticated caller
// becomes the contract owner; the seat catalog is fixed forever.
func (h *ContractHandler) DeployVenue(c echo.Context) error {
	caller, err := callerAddress(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		VenueName string `json:"venue_name"` // name echoed in the Venue notification
		Seats     []struct {
			Number int32  `json:"number"` // seat number, non-zero
			Letter string `json:"letter"` // single letter, e.g. "A"
		} `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.VenueName = strings.TrimSpace(body.VenueName)
	if body.VenueName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue_name is required"})
	}
	seats := make([]model.Seat, 0, len(body.Seats))
	for _, s := range body.Seats {
		units := utf16.Encode([]rune(s.Letter))
		if len(units) != 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat letter must be a single character"})
		}
		seats = append(seats, model.Seat{Number: s.Number, Letter: units[0]})
	}

	var notes []contract.Notification
	err = h.Inv.Invoke(c.Request().Context(), caller, 0, func(call contract.Context, box *contract.BoxOffice) error {
		var err error
		notes, err = box.Deploy(c.Request().Context(), call, seats, body.VenueName)
		return err
	})
	if err != nil {
		return contractError(c, err)
	}
	h.publish(c, notes)
	return c.JSON(http.StatusCreated, echo.Map{
		"venue_name": body.VenueName,
		"owner":      caller.Hex(),
		"seats":      len(seats),
	})
}

// BeginSale handles POST /v1/sale.  Owner only, Inactive phase only.
// The price list must cover every catalog seat exactly once, keyed by
// the hex seat wire identifier.
func (h *ContractHandler) BeginSale(c echo.Context) error {
	caller, err := callerAddress(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name      string `json:"name"`       // show title
		Organiser string `json:"organiser"`  // organising party
		Time      string `json:"time"`       // show time, opaque to the contract
		EndHeight uint64 `json:"end_height"` // sale close height
		Prices    []struct {
			Seat  string `json:"seat"`  // hex wire identifier
			Price uint64 `json:"price"` // price in value units
		} `json:"prices"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	prices := make([]model.SeatPrice, 0, len(body.Prices))
	for _, p := range body.Prices {
		seat, err := parseSeatWire(p.Seat)
		if err != nil {
			return contractError(c, err)
		}
		prices = append(prices, model.SeatPrice{Seat: seat, Price: p.Price})
	}
	show := model.ShowInfo{
		Name:      body.Name,
		Organiser: body.Organiser,
		Time:      body.Time,
		EndHeight: body.EndHeight,
	}

	var notes []contract.Notification
	err = h.Inv.Invoke(c.Request().Context(), caller, 0, func(call contract.Context, box *contract.BoxOffice) error {
		var err error
		notes, err = box.BeginSale(c.Request().Context(), call, prices, show)
		return err
	})
	if err != nil {
		return contractError(c, err)
	}
	h.publish(c, notes)
	return c.JSON(http.StatusCreated, echo.Map{
		"end_height": body.EndHeight,
		"priced":     len(prices),
	})
}

// EndSale handles DELETE /v1/sale.  Owner only, once the close height
// has passed.  All tickets are wiped and the contract returns to
// Inactive.
func (h *ContractHandler) EndSale(c echo.Context) error {
	caller, err := callerAddress(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	err = h.Inv.Invoke(c.Request().Context(), caller, 0, func(call contract.Context, box *contract.BoxOffice) error {
		return box.EndSale(c.Request().Context(), call)
	})
	if err != nil {
		return contractError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
