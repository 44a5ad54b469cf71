package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"employeedesk/internal/types"
)

var errUniqueEmail = errors.New("UNIQUE constraint failed: employees.email")

// MemoryStore is an in-memory Gateway with the same id and unique-email
// rules as the SQLite table. Ids are never reused, matching AUTOINCREMENT.
type MemoryStore struct {
	mu     sync.Mutex
	rows   map[int64]types.Employee
	nextID int64
	ready  bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[int64]types.Employee), nextID: 1}
}

func (m *MemoryStore) Init(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ready = true
	return nil
}

func (m *MemoryStore) List(ctx context.Context) ([]types.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(OpList); err != nil {
		return nil, err
	}

	out := make([]types.Employee, 0, len(m.rows))
	for _, e := range m.rows {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) Insert(ctx context.Context, e types.Employee) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(OpInsert); err != nil {
		return 0, err
	}
	if m.emailTaken(e.Email, 0) {
		return 0, wrap(OpInsert, errUniqueEmail)
	}

	e.ID = m.nextID
	m.nextID++
	m.rows[e.ID] = e
	return e.ID, nil
}

func (m *MemoryStore) Update(ctx context.Context, e types.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(OpUpdate); err != nil {
		return err
	}
	if _, ok := m.rows[e.ID]; !ok {
		return wrap(OpUpdate, fmt.Errorf("id %d: %w", e.ID, ErrNotFound))
	}
	if m.emailTaken(e.Email, e.ID) {
		return wrap(OpUpdate, errUniqueEmail)
	}
	m.rows[e.ID] = e
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(OpDelete); err != nil {
		return err
	}
	if _, ok := m.rows[id]; !ok {
		return wrap(OpDelete, fmt.Errorf("id %d: %w", id, ErrNotFound))
	}
	delete(m.rows, id)
	return nil
}

// Len returns the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *MemoryStore) check(op string) error {
	if !m.ready {
		return wrap(op, errors.New("no such table: employees"))
	}
	return nil
}

func (m *MemoryStore) emailTaken(email string, except int64) bool {
	for id, e := range m.rows {
		if id != except && e.Email == email {
			return true
		}
	}
	return false
}
