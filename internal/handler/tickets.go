package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkarimov/boxoffice/internal/contract"
)

// Reserve handles POST /v1/tickets/reserve.  The attached value is
// debited from the caller's balance into escrow, the reservation is
// attempted, and the contract refunds whatever it did not apply.  A
// taken seat or an underpayment is reported as 200 with reserved=false
// because the invocation itself committed.
func (h *ContractHandler) Reserve(c echo.Context) error {
	caller, err := callerAddress(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Seat          string `json:"seat"`           // hex wire identifier
		CustomerID    string `json:"customer_id"`    // optional, recorded on the ticket
		AttachedValue uint64 `json:"attached_value"` // value units sent with the call
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seat, err := parseSeatWire(body.Seat)
	if err != nil {
		return contractError(c, err)
	}

	var reserved bool
	err = h.Inv.Invoke(c.Request().Context(), caller, body.AttachedValue, func(call contract.Context, box *contract.BoxOffice) error {
		var err error
		reserved, err = box.Reserve(c.Request().Context(), call, seat, body.CustomerID)
		return err
	})
	if err != nil {
		return contractError(c, err)
	}
	if !reserved {
		return c.JSON(http.StatusOK, echo.Map{
			"reserved": false,
			"seat":     body.Seat,
			"reason":   "seat taken or payment below price",
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"reserved":    true,
		"seat":        body.Seat,
		"holder":      caller.Hex(),
		"customer_id": body.CustomerID,
	})
}

// Release handles POST /v1/tickets/release.  The holder surrenders the
// ticket and is refunded the price minus the configured release fee.
func (h *ContractHandler) Release(c echo.Context) error {
	caller, err := callerAddress(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Seat string `json:"seat"` // hex wire identifier
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seat, err := parseSeatWire(body.Seat)
	if err != nil {
		return contractError(c, err)
	}

	err = h.Inv.Invoke(c.Request().Context(), caller, 0, func(call contract.Context, box *contract.BoxOffice) error {
		return box.ReleaseTicket(c.Request().Context(), call, seat)
	})
	if err != nil {
		return contractError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"released": true,
		"seat":     body.Seat,
	})
}
