// Package repository is the data-access layer for the simulated
// ledger accounts.  Contract state itself does not live here (it
// goes through the storage package), but the accounts that hold
// value, authenticate callers and back the Bank do.  Sentinel errors
// let handlers map failures onto HTTP statuses without string
// matching.
package repository

import "errors"

// ErrEmailExists is returned when registering an email that already
// has an account.  Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrAccountNotFound is returned when no account matches the lookup.
// Handlers translate this into HTTP 404 (or 401 during login).
var ErrAccountNotFound = errors.New("account not found")

// ErrInsufficientFunds is returned when a balance move would take an
// account below zero.  For the attached-value deposit this aborts the
// invocation before the contract core ever runs.
var ErrInsufficientFunds = errors.New("insufficient funds")
