package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkarimov/boxoffice/internal/contract"
	"github.com/mkarimov/boxoffice/internal/model"
)

// GetAvailability handles GET /v1/seats/:seat/availability.  Only
// meaningful while a sale is open; outside of one the contract rejects
// with a conflict.
func (h *ContractHandler) GetAvailability(c echo.Context) error {
	seat, err := parseSeatWire(c.Param("seat"))
	if err != nil {
		return contractError(c, err)
	}
	var available bool
	err = h.Inv.Query(c.Request().Context(), func(call contract.Context, box *contract.BoxOffice) error {
		var err error
		available, err = box.CheckAvailability(c.Request().Context(), call, seat)
		return err
	})
	if err != nil {
		return contractError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"seat":      c.Param("seat"),
		"available": available,
	})
}

// GetReservation handles GET /v1/seats/:seat/reservation.  It answers
// for an arbitrary holder address passed as a query parameter, or for
// the authenticated caller when none is given.  Works in any phase so
// a buyer can verify a purchase after the sale closes.
func (h *ContractHandler) GetReservation(c echo.Context) error {
	seat, err := parseSeatWire(c.Param("seat"))
	if err != nil {
		return contractError(c, err)
	}
	var holder model.Address
	if s := c.QueryParam("holder"); s != "" {
		holder, err = model.ParseAddress(s)
		if err != nil {
			return contractError(c, err)
		}
	} else {
		holder, err = callerAddress(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "holder address required"})
		}
	}

	var res contract.Reservation
	err = h.Inv.Query(c.Request().Context(), func(call contract.Context, box *contract.BoxOffice) error {
		var err error
		res, err = box.CheckReservation(c.Request().Context(), seat, holder)
		return err
	})
	if err != nil {
		return contractError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"seat":        c.Param("seat"),
		"holder":      holder.Hex(),
		"owns_ticket": res.OwnsTicket,
		"customer_id": res.CustomerID,
	})
}

// GetStatus handles GET /v1/sale.  Public snapshot of the sale
// configuration and the derived phase at the current height.
func (h *ContractHandler) GetStatus(c echo.Context) error {
	var status model.SaleStatus
	err := h.Inv.Query(c.Request().Context(), func(call contract.Context, box *contract.BoxOffice) error {
		var err error
		status, err = box.Status(c.Request().Context(), call)
		return err
	})
	if err != nil {
		return contractError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

// ListTickets handles GET /v1/tickets.  Full ticket ledger with seat
// identifiers, prices and availability; holder addresses and customer
// identifiers stay private to the reservation endpoint.
func (h *ContractHandler) ListTickets(c echo.Context) error {
	var tickets []model.Ticket
	err := h.Inv.Query(c.Request().Context(), func(call contract.Context, box *contract.BoxOffice) error {
		var err error
		tickets, err = box.Tickets(c.Request().Context())
		return err
	})
	if err != nil {
		return contractError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"height":  h.Inv.Height(),
		"tickets": viewTickets(tickets),
	})
}
