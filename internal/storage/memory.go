package storage

import "context"

// MemoryKV is a map-backed KV used by tests and by tooling that runs
// the core without a database.  Values are copied on the way in and
// out so callers cannot alias the stored bytes.
type MemoryKV struct {
	data map[string][]byte
}

// NewMemoryKV returns an empty in-memory substrate.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryKV) Put(_ context.Context, key string, val []byte) error {
	cp := make([]byte, len(val))
	copy(cp, val)
	m.data[key] = cp
	return nil
}

// Snapshot returns a deep copy of the raw contents.  Tests use it to
// verify that an aborted invocation left every key untouched.
func (m *MemoryKV) Snapshot() map[string][]byte {
	out := make(map[string][]byte, len(m.data))
	for k, v := range m.data {
		cp := make([]byte, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

// Restore replaces the contents with a snapshot taken earlier.  The
// test invoker uses it to emulate the host ledger's rollback of an
// aborted invocation.
func (m *MemoryKV) Restore(snap map[string][]byte) {
	m.data = make(map[string][]byte, len(snap))
	for k, v := range snap {
		cp := make([]byte, len(v))
		copy(cp, v)
		m.data[k] = cp
	}
}
