package handler // handler defines http handlers

import (
	"encoding/hex" // seat identifiers travel as hex on the wire
	"errors"       // sentinel comparisons for error mapping
	"net/http"     // HTTP status codes
	"strings"      // trimming helpers

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/mkarimov/boxoffice/internal/codec"
	"github.com/mkarimov/boxoffice/internal/contract"
	"github.com/mkarimov/boxoffice/internal/model"
	"github.com/mkarimov/boxoffice/internal/repository"
	"github.com/mkarimov/boxoffice/internal/storage"
)

// errBadSeatParam marks a seat identifier that is not valid hex of
// the wire layout.  Mapped to 400 like any malformed input.
var errBadSeatParam = errors.New("malformed seat identifier")

// callerAddress extracts the authenticated caller from the request
// context, where the JWT middleware stored it as a hex string.
func callerAddress(c echo.Context) (model.Address, error) {
	v := c.Get("caller")
	s, ok := v.(string)
	if !ok || s == "" {
		return model.Address{}, errors.New("missing caller in context")
	}
	return model.ParseAddress(s)
}

// parseSeatWire decodes the 12-hex-character seat wire format used by
// every seat-addressed endpoint.
func parseSeatWire(s string) (model.Seat, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return model.Seat{}, errBadSeatParam
	}
	seat, err := codec.DecodeSeat(raw)
	if err != nil {
		return model.Seat{}, errBadSeatParam
	}
	return seat, nil
}

// contractError translates a hard abort (or an adapter failure) into
// an HTTP response.  The grouping follows the two failure classes:
// protocol violations become 4xx with a reason, everything else is a
// 500 the caller cannot fix.
func contractError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, contract.ErrNotOwner),
		errors.Is(err, contract.ErrNotTicketHolder):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, contract.ErrSeatUnknown):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, contract.ErrSaleNotOpen),
		errors.Is(err, contract.ErrSaleActive),
		errors.Is(err, contract.ErrSaleStillOpen),
		errors.Is(err, contract.ErrNoActiveSale),
		errors.Is(err, contract.ErrNoRefundWindow),
		errors.Is(err, contract.ErrAlreadyDeployed):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, storage.ErrNotDeployed):
		return c.JSON(http.StatusConflict, echo.Map{"error": "venue not deployed"})
	case errors.Is(err, contract.ErrZeroAddress),
		errors.Is(err, contract.ErrBadCatalog),
		errors.Is(err, contract.ErrBadEndHeight),
		errors.Is(err, contract.ErrBadPriceList),
		errors.Is(err, errBadSeatParam),
		errors.Is(err, model.ErrBadAddress):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrInsufficientFunds):
		return c.JSON(http.StatusPaymentRequired, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "invocation failed"})
}

// ticketView is the JSON shape for one ticket in listings.  The wire
// field is the hex seat identifier clients pass back to the
// seat-addressed endpoints.
type ticketView struct {
	Seat      string `json:"seat"`      // hex wire identifier
	Label     string `json:"label"`     // human form, e.g. "12F"
	Price     uint64 `json:"price"`     // value units
	Available bool   `json:"available"` // owner == zero address
}

func viewTickets(tickets []model.Ticket) []ticketView {
	out := make([]ticketView, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ticketView{
			Seat:      hex.EncodeToString(codec.EncodeSeat(t.Seat)),
			Label:     t.Seat.Label(),
			Price:     t.Price,
			Available: t.Available(),
		})
	}
	return out
}
