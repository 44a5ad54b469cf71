package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"employeedesk/internal/config"
	"employeedesk/internal/logging"
	"employeedesk/internal/types"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	sex TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE
)`

const (
	listQuery   = `SELECT id, name, sex, email FROM employees ORDER BY id`
	insertQuery = `INSERT INTO employees (name, sex, email) VALUES (?, ?, ?)`
	updateQuery = `UPDATE employees SET name = ?, sex = ?, email = ? WHERE id = ?`
	deleteQuery = `DELETE FROM employees WHERE id = ?`
)

// slowStatement is the latency above which a statement is logged as a warning.
const slowStatement = 250 * time.Millisecond

// SQLiteStore implements Gateway on a single SQLite file.
// It holds no open handle: each call opens the file, runs its statement and
// closes it again before returning.
type SQLiteStore struct {
	driver      string
	path        string
	busyTimeout time.Duration
}

// NewSQLiteStore returns a store for the file at path using the named
// database/sql driver ("sqlite" for modernc, "sqlite3" for mattn).
func NewSQLiteStore(driver, path string, busyTimeout time.Duration) *SQLiteStore {
	if driver == "" {
		driver = config.DriverModernc
	}
	return &SQLiteStore{driver: driver, path: path, busyTimeout: busyTimeout}
}

// NewSQLiteStoreFromConfig builds a store from the storage section of cfg.
func NewSQLiteStoreFromConfig(cfg *config.Config) *SQLiteStore {
	return NewSQLiteStore(cfg.Storage.Driver, cfg.Storage.Path, cfg.GetBusyTimeout())
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Driver returns the database/sql driver name in use.
func (s *SQLiteStore) Driver() string {
	return s.driver
}

func (s *SQLiteStore) dsn() string {
	ms := s.busyTimeout.Milliseconds()
	switch s.driver {
	case config.DriverMattn:
		return fmt.Sprintf("%s?_busy_timeout=%d", s.path, ms)
	default:
		return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", s.path, ms)
	}
}

// withDB opens a connection scoped to fn and always closes it.
func (s *SQLiteStore) withDB(ctx context.Context, op string, fn func(db *sql.DB) error) (err error) {
	timer := logging.StartTimer(logging.CategoryStore, op)
	defer timer.StopWithThreshold(slowStatement)

	db, err := sql.Open(s.driver, s.dsn())
	if err != nil {
		logging.StoreError("%s: open %s: %v", op, s.path, err)
		return wrap(op, fmt.Errorf("failed to open database: %w", err))
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = wrap(op, fmt.Errorf("failed to close database: %w", cerr))
		}
	}()
	db.SetMaxOpenConns(1)

	if err := fn(db); err != nil {
		logging.StoreError("%s failed: %v", op, err)
		return wrap(op, err)
	}
	return nil
}

// withTx runs fn in a transaction that is committed on success.
func (s *SQLiteStore) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	return s.withDB(ctx, op, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if err := fn(tx); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		return nil
	})
}

// Init creates the database directory and the employees table.
func (s *SQLiteStore) Init(ctx context.Context) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return wrap(OpInit, fmt.Errorf("failed to create directory: %w", err))
		}
	}

	err := s.withDB(ctx, OpInit, func(db *sql.DB) error {
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping: %w", err)
		}
		if _, err := db.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logging.Store("employees table ready at %s (driver %s)", s.path, s.driver)
	return nil
}

// List returns all employees ordered by id.
func (s *SQLiteStore) List(ctx context.Context) ([]types.Employee, error) {
	var out []types.Employee
	err := s.withDB(ctx, OpList, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, listQuery)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var e types.Employee
			if err := rows.Scan(&e.ID, &e.Name, &e.Sex, &e.Email); err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			out = append(out, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	logging.StoreDebug("listed %d employees", len(out))
	return out, nil
}

// Insert adds a new employee and returns the id storage assigned.
func (s *SQLiteStore) Insert(ctx context.Context, e types.Employee) (int64, error) {
	var id int64
	err := s.withTx(ctx, OpInsert, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertQuery, e.Name, e.Sex, e.Email)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	logging.Store("inserted employee id=%d", id)
	return id, nil
}

// Update overwrites all fields of the employee with e.ID.
func (s *SQLiteStore) Update(ctx context.Context, e types.Employee) error {
	err := s.withTx(ctx, OpUpdate, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, updateQuery, e.Name, e.Sex, e.Email, e.ID)
		if err != nil {
			return err
		}
		return requireRow(res, e.ID)
	})
	if err != nil {
		return err
	}
	logging.Store("updated employee id=%d", e.ID)
	return nil
}

// Delete removes the employee with the given id.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	err := s.withTx(ctx, OpDelete, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, deleteQuery, id)
		if err != nil {
			return err
		}
		return requireRow(res, id)
	})
	if err != nil {
		return err
	}
	logging.Store("deleted employee id=%d", id)
	return nil
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return nil
}

// IsNotFound reports whether err came from an Update or Delete that matched no row.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
