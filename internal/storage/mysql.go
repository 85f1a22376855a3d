package storage

import (
	"context"
	"database/sql"
	"errors"
)

// Querier is the subset of database/sql used by MySQLKV.  Both
// *sql.DB and *sql.Tx satisfy it; the service always passes the
// invocation's transaction so a hard abort rolls back every state
// write together with the value transfers.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// MySQLKV stores the contract state keys as rows of the
// contract_state table:
//
//	CREATE TABLE contract_state (
//	    k VARCHAR(64)    NOT NULL PRIMARY KEY,
//	    v VARBINARY(60000) NOT NULL,
//	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	        ON UPDATE CURRENT_TIMESTAMP
//	);
type MySQLKV struct {
	q Querier
}

// NewMySQLKV builds a KV over the given DB handle or transaction.
func NewMySQLKV(q Querier) *MySQLKV {
	return &MySQLKV{q: q}
}

func (m *MySQLKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := m.q.QueryRowContext(ctx,
		"SELECT v FROM contract_state WHERE k=? LIMIT 1", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (m *MySQLKV) Put(ctx context.Context, key string, val []byte) error {
	_, err := m.q.ExecContext(ctx,
		"INSERT INTO contract_state (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v=VALUES(v)",
		key, val)
	return err
}
