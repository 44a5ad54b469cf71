package form

import (
	"context"

	"employeedesk/internal/store"
	"employeedesk/internal/types"
)

// Listing is the read-through projection of the employees table shown as the
// record list. It never edits rows itself; it is rebuilt from storage after
// every mutation.
type Listing struct {
	gw       store.Gateway
	rows     []types.Employee
	selected int
}

// NewListing returns an empty listing backed by gw.
func NewListing(gw store.Gateway) *Listing {
	return &Listing{gw: gw, selected: -1}
}

// Reload drops all rows and the selection, then repopulates from storage in
// ascending id order. On failure the listing is left empty.
func (l *Listing) Reload(ctx context.Context) error {
	l.rows = nil
	l.selected = -1

	rows, err := l.gw.List(ctx)
	if err != nil {
		return err
	}
	l.rows = rows
	return nil
}

// Rows returns the displayed records.
func (l *Listing) Rows() []types.Employee {
	return append([]types.Employee(nil), l.rows...)
}

// Len returns the number of displayed records.
func (l *Listing) Len() int { return len(l.rows) }

// Select marks the row at index as selected and returns it.
func (l *Listing) Select(index int) (types.Employee, bool) {
	if index < 0 || index >= len(l.rows) {
		return types.Employee{}, false
	}
	l.selected = index
	return l.rows[index], true
}

// CurrentSelection returns the selected record, or false when none is selected.
func (l *Listing) CurrentSelection() (types.Employee, bool) {
	if l.selected < 0 || l.selected >= len(l.rows) {
		return types.Employee{}, false
	}
	return l.rows[l.selected], true
}

// SelectedIndex returns the selected row index, or -1.
func (l *Listing) SelectedIndex() int {
	if _, ok := l.CurrentSelection(); !ok {
		return -1
	}
	return l.selected
}

// ClearSelection removes any active selection.
func (l *Listing) ClearSelection() {
	l.selected = -1
}
