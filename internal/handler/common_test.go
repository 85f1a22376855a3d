package handler

import (
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarimov/boxoffice/internal/codec"
	"github.com/mkarimov/boxoffice/internal/contract"
	"github.com/mkarimov/boxoffice/internal/model"
)

func testContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestParseSeatWire(t *testing.T) {
	seat := model.Seat{Number: 12, Letter: 'F'}
	wire := hex.EncodeToString(codec.EncodeSeat(seat))

	got, err := parseSeatWire(wire)
	require.NoError(t, err)
	assert.Equal(t, seat, got)

	for _, bad := range []string{"", "zz", "0000", wire + "00"} {
		_, err := parseSeatWire(bad)
		assert.ErrorIs(t, err, errBadSeatParam, "input %q", bad)
	}
}

func TestCallerAddress(t *testing.T) {
	c, _ := testContext()

	_, err := callerAddress(c)
	assert.Error(t, err, "no caller set by middleware")

	var a model.Address
	a[0] = 0xaa
	c.Set("caller", a.Hex())
	got, err := callerAddress(c)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestContractErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{contract.ErrNotOwner, http.StatusForbidden},
		{contract.ErrNotTicketHolder, http.StatusForbidden},
		{contract.ErrSeatUnknown, http.StatusNotFound},
		{contract.ErrSaleNotOpen, http.StatusConflict},
		{contract.ErrSaleActive, http.StatusConflict},
		{contract.ErrNoRefundWindow, http.StatusConflict},
		{contract.ErrAlreadyDeployed, http.StatusConflict},
		{contract.ErrBadCatalog, http.StatusBadRequest},
		{contract.ErrBadPriceList, http.StatusBadRequest},
		{errBadSeatParam, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		c, rec := testContext()
		require.NoError(t, contractError(c, tc.err))
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
	}
}

func TestViewTickets(t *testing.T) {
	var holder model.Address
	holder[0] = 0xaa
	views := viewTickets([]model.Ticket{
		{Seat: model.Seat{Number: 12, Letter: 'F'}, Price: 50, Owner: holder, CustomerID: "cust-1"},
		{Seat: model.Seat{Number: 1, Letter: 'A'}, Price: 60},
	})
	require.Len(t, views, 2)
	assert.Equal(t, "12F", views[0].Label)
	assert.False(t, views[0].Available)
	assert.Equal(t, "1A", views[1].Label)
	assert.True(t, views[1].Available)
	assert.Equal(t, "00000001"+"0041", views[1].Seat)
}
