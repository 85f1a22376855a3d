package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/mkarimov/boxoffice/internal/model"
	"github.com/mkarimov/boxoffice/internal/storage"
	"github.com/mkarimov/boxoffice/internal/utils"
)

// Account mirrors the 'accounts' table.  Each account is a simulated
// ledger party: an email/password for the API surface and an address
// plus balance for the value layer underneath.
type Account struct {
	ID           uint64
	Email        string
	PasswordHash string
	Address      model.Address
	Balance      uint64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AccountRepo struct{ DB *sql.DB }

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Create inserts an account with a freshly generated address and the
// configured starting balance, and returns it.
func (r *AccountRepo) Create(ctx context.Context, email, password string, cost int, startingBalance uint64) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashAccountPassword(password, cost)
	if err != nil {
		return Account{}, err
	}
	addr, err := newAddress()
	if err != nil {
		return Account{}, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts (email, password_hash, address, balance) VALUES (?,?,?,?)",
		email, hash, hex.EncodeToString(addr[:]), startingBalance)
	if err != nil {
		// MySQL duplicate-key error code.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return Account{}, ErrEmailExists
		}
		return Account{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Account{}, err
	}
	return Account{ID: uint64(id), Email: email, Address: addr, Balance: startingBalance}, nil
}

// GetByEmail fetches an account by normalized email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.get(ctx, "email=?", email)
}

// GetByAddress fetches an account by its ledger address.
func (r *AccountRepo) GetByAddress(ctx context.Context, addr model.Address) (Account, error) {
	return r.get(ctx, "address=?", hex.EncodeToString(addr[:]))
}

func (r *AccountRepo) get(ctx context.Context, where string, arg any) (Account, error) {
	var a Account
	var addrHex string
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,address,balance,created_at,updated_at FROM accounts WHERE "+where+" LIMIT 1",
		arg).Scan(&a.ID, &a.Email, &a.PasswordHash, &addrHex, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, err
	}
	a.Address, err = model.ParseAddress(addrHex)
	return a, err
}

// EnsureSystemAccount inserts the given address as a zero-email
// system account (the contract escrow) if it does not exist yet.
// Called once at startup.
func (r *AccountRepo) EnsureSystemAccount(ctx context.Context, addr model.Address) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT IGNORE INTO accounts (email, password_hash, address, balance) VALUES (?,?,?,0)",
		"system+"+hex.EncodeToString(addr[:])+"@boxoffice.local", "-", hex.EncodeToString(addr[:]))
	return err
}

// MoveBalance transfers amount between two accounts inside the
// caller's transaction.  The debit uses a guarded UPDATE so the
// balance can never go negative; zero rows affected means the source
// account is missing or short, either way ErrInsufficientFunds.
func MoveBalance(ctx context.Context, q storage.Querier, from, to model.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	res, err := q.ExecContext(ctx,
		"UPDATE accounts SET balance=balance-? WHERE address=? AND balance>=?",
		amount, hex.EncodeToString(from[:]), amount)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientFunds
	}
	res, err = q.ExecContext(ctx,
		"UPDATE accounts SET balance=balance+? WHERE address=?",
		amount, hex.EncodeToString(to[:]))
	if err != nil {
		return err
	}
	n, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// newAddress draws a random, non-zero account address.
func newAddress() (model.Address, error) {
	var a model.Address
	for a.IsZero() {
		if _, err := rand.Read(a[:]); err != nil {
			return model.Address{}, err
		}
	}
	return a, nil
}
