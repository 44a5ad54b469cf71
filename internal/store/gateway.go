// Package store owns the employees table.
//
// Every Gateway method runs exactly one statement. Callers never see a panic or a
// raw driver error: failures come back as *Error values naming the operation,
// which the form layer turns into a user-visible notice.
package store

import (
	"context"
	"errors"
	"fmt"

	"employeedesk/internal/types"
)

// Gateway is the storage contract the form controller depends on.
type Gateway interface {
	// Init creates the employees table if it does not exist.
	Init(ctx context.Context) error
	// List returns every record ordered by ascending id.
	List(ctx context.Context) ([]types.Employee, error)
	// Insert stores name, sex and email and returns the generated id.
	Insert(ctx context.Context, e types.Employee) (int64, error)
	// Update overwrites name, sex and email of the record with e.ID.
	Update(ctx context.Context, e types.Employee) error
	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int64) error
}

// ErrNotFound is returned by Update and Delete when no row has the id.
var ErrNotFound = errors.New("employee not found")

// Operation names carried by Error.
const (
	OpInit   = "init"
	OpList   = "list"
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Error records a failed storage operation and its cause.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Err: err}
}

var (
	_ Gateway = (*SQLiteStore)(nil)
	_ Gateway = (*MemoryStore)(nil)
)
