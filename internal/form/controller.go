// Package form turns form commands into storage calls.
//
// The controller is independent of any rendering toolkit: it reads and writes
// a State, reads the selection from a Listing, and reports every outcome
// through a Notifier.
package form

import (
	"context"
	"errors"
	"fmt"

	"employeedesk/internal/logging"
	"employeedesk/internal/store"

	"github.com/google/uuid"
)

var (
	// ErrEmptyField is returned when name, sex or email is blank.
	ErrEmptyField = errors.New("all fields are required")
	// ErrNoSelection is returned by Update and Delete when no row is selected.
	ErrNoSelection = errors.New("no employee selected")
	// ErrCancelled is returned by Delete when the user declines the confirmation.
	ErrCancelled = errors.New("delete cancelled")
)

// Controller implements Add, Update, Delete, Clear and row selection.
type Controller struct {
	gw     store.Gateway
	list   *Listing
	notify Notifier
}

// NewController wires a controller to storage and a notifier.
func NewController(gw store.Gateway, notify Notifier) *Controller {
	if notify == nil {
		notify = NotifierFunc(func(Notice) {})
	}
	return &Controller{gw: gw, list: NewListing(gw), notify: notify}
}

// Listing returns the record list the controller reloads after mutations.
func (c *Controller) Listing() *Listing {
	return c.list
}

// Load fills the listing for the first time.
func (c *Controller) Load(ctx context.Context) error {
	if err := c.reload(ctx, logging.Get(logging.CategoryForm)); err != nil {
		return err
	}
	logging.Form("loaded %d employees", c.list.Len())
	return nil
}

// Add inserts the form's values as a new employee.
func (c *Controller) Add(ctx context.Context, st *State) error {
	log := actionLogger("add")

	if err := c.validate(st, log); err != nil {
		return err
	}

	id, err := c.gw.Insert(ctx, st.Employee(0))
	if err != nil {
		return c.storageFailure(err, log)
	}
	log.Info("inserted employee id=%d", id)

	c.succeed(ctx, st, msgAdded, log)
	return nil
}

// Update overwrites the selected employee with the form's values.
func (c *Controller) Update(ctx context.Context, st *State) error {
	log := actionLogger("update")

	selected, ok := c.list.CurrentSelection()
	if !ok {
		return c.noSelection(msgSelectUpdate, log)
	}
	if err := c.validate(st, log); err != nil {
		return err
	}

	if err := c.gw.Update(ctx, st.Employee(selected.ID)); err != nil {
		return c.storageFailure(err, log)
	}
	log.Info("updated employee id=%d", selected.ID)

	c.succeed(ctx, st, msgUpdated, log)
	return nil
}

// Delete removes the selected employee after confirm agrees.
func (c *Controller) Delete(ctx context.Context, st *State, confirm Confirmer) error {
	log := actionLogger("delete")

	selected, ok := c.list.CurrentSelection()
	if !ok {
		return c.noSelection(msgSelectDelete, log)
	}

	if confirm == nil || !confirm.Confirm(DeletePrompt) {
		log.Info("delete of id=%d declined", selected.ID)
		return ErrCancelled
	}

	if err := c.gw.Delete(ctx, selected.ID); err != nil {
		return c.storageFailure(err, log)
	}
	log.Info("deleted employee id=%d", selected.ID)

	c.succeed(ctx, st, msgDeleted, log)
	return nil
}

// Clear empties the fields and drops the selection. It never touches storage.
func (c *Controller) Clear(st *State) {
	st.Reset()
	c.list.ClearSelection()
}

// Select selects the listing row at index and copies its values into st.
// It reports false, leaving st unchanged, when index is out of range.
func (c *Controller) Select(st *State, index int) bool {
	e, ok := c.list.Select(index)
	if !ok {
		logging.FormWarn("select: row %d out of range (%d rows)", index, c.list.Len())
		return false
	}
	st.Reset()
	st.Fill(e)
	logging.FormDebug("selected employee id=%d", e.ID)
	return true
}

func (c *Controller) validate(st *State, log *logging.Logger) error {
	if field := st.Employee(0).MissingField(); field != "" {
		log.Warn("rejected: %s is empty", field)
		c.notify.Notify(Notice{Level: LevelWarning, Title: titleEmptyFields, Message: msgFieldsNeeded})
		return fmt.Errorf("%w: %s is empty", ErrEmptyField, field)
	}
	return nil
}

func (c *Controller) noSelection(msg string, log *logging.Logger) error {
	log.Warn("rejected: nothing selected")
	c.notify.Notify(Notice{Level: LevelWarning, Title: titleNoSelection, Message: msg})
	return ErrNoSelection
}

func (c *Controller) storageFailure(err error, log *logging.Logger) error {
	log.Error("storage failure: %v", err)
	c.notify.Notify(databaseNotice(err))
	return err
}

// succeed reports success, clears the form and reloads the list.
// A failed reload is reported on its own; the mutation itself stands.
func (c *Controller) succeed(ctx context.Context, st *State, msg string, log *logging.Logger) {
	c.notify.Notify(Notice{Level: LevelInfo, Title: titleSuccess, Message: msg})
	c.Clear(st)
	_ = c.reload(ctx, log)
}

func (c *Controller) reload(ctx context.Context, log *logging.Logger) error {
	if err := c.list.Reload(ctx); err != nil {
		log.Error("reload failed: %v", err)
		c.notify.Notify(databaseNotice(err))
		return err
	}
	log.Debug("list reloaded with %d rows", c.list.Len())
	return nil
}

func actionLogger(action string) *logging.Logger {
	return logging.WithRequestID(logging.CategoryForm, uuid.NewString()).With("action", action)
}
