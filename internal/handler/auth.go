package handler

import (
	"context"  // context with timeout for DB calls
	"net/http" // HTTP status codes
	"strings"  // email normalization
	"time"     // DB call timeouts

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/mkarimov/boxoffice/internal/config"     // app configuration
	"github.com/mkarimov/boxoffice/internal/repository" // account persistence
	"github.com/mkarimov/boxoffice/internal/utils"      // hashing and token issuing
)

// AuthHandler bundles dependencies for the account endpoints.  An
// account is both an API login and a simulated ledger party: it gets
// an address and a starting balance so it can attach value to
// reservations.
type AuthHandler struct {
	Cfg      config.Config
	Accounts *repository.AccountRepo
}

func NewAuthHandler(cfg config.Config, a *repository.AccountRepo) *AuthHandler {
	if a == nil {
		panic("nil repository passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Accounts: a}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountPart struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Balance uint64 `json:"balance"`
}
type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	Account accountPart `json:"account"`
	Access  tokenPart   `json:"access"`
}

// Register creates an account with a fresh ledger address and the
// configured starting balance, and returns an access token
// immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Accounts.Create(ctx, req.Email, req.Password, h.Cfg.BcryptCost, h.Cfg.StartingBalance)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, acct.Address, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusCreated, authResp{
		Account: accountPart{Address: acct.Address.Hex(), Email: acct.Email, Balance: acct.Balance},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Login verifies credentials and issues a fresh access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Accounts.GetByEmail(ctx, req.Email)
	if err != nil || !utils.CheckAccountPassword(acct.PasswordHash, req.Password) {
		// Same answer for unknown email and wrong password.
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, acct.Address, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		Account: accountPart{Address: acct.Address.Hex(), Email: acct.Email, Balance: acct.Balance},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Me returns the authenticated account, including its current
// balance, so clients can check funds before reserving.
func (h *AuthHandler) Me(c echo.Context) error {
	addr, err := callerAddress(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Accounts.GetByAddress(ctx, addr)
	if err != nil {
		if err == repository.ErrAccountNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "account not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, accountPart{Address: acct.Address.Hex(), Email: acct.Email, Balance: acct.Balance})
}
