package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkarimov/boxoffice/internal/contract"
)

// SetReleaseFee handles PUT /v1/policy/release-fee.  Owner only, and
// only while no sale is open.
func (h *ContractHandler) SetReleaseFee(c echo.Context) error {
	caller, err := callerAddress(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Fee uint64 `json:"fee"` // value units withheld on release
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var notes []contract.Notification
	err = h.Inv.Invoke(c.Request().Context(), caller, 0, func(call contract.Context, box *contract.BoxOffice) error {
		var err error
		notes, err = box.SetTicketReleaseFee(c.Request().Context(), call, body.Fee)
		return err
	})
	if err != nil {
		return contractError(c, err)
	}
	h.publish(c, notes)
	return c.JSON(http.StatusOK, echo.Map{"fee": body.Fee})
}

// SetNoReleaseBlocks handles PUT /v1/policy/no-release-blocks.  Same
// gating as SetReleaseFee.
func (h *ContractHandler) SetNoReleaseBlocks(c echo.Context) error {
	caller, err := callerAddress(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Blocks uint64 `json:"blocks"` // blocks before close with release disallowed
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var notes []contract.Notification
	err = h.Inv.Invoke(c.Request().Context(), caller, 0, func(call contract.Context, box *contract.BoxOffice) error {
		var err error
		notes, err = box.SetNoReleaseBlocks(c.Request().Context(), call, body.Blocks)
		return err
	})
	if err != nil {
		return contractError(c, err)
	}
	h.publish(c, notes)
	return c.JSON(http.StatusOK, echo.Map{"blocks": body.Blocks})
}
