package form

import (
	"context"
	"errors"
	"testing"

	"employeedesk/internal/store"
	"employeedesk/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	gw      *store.MemoryStore
	notices *NoticeLog
	ctrl    *Controller
	state   State
}

func newHarness(t *testing.T, seed ...types.Employee) *harness {
	t.Helper()
	ctx := context.Background()

	gw := store.NewMemoryStore()
	require.NoError(t, gw.Init(ctx))
	for _, e := range seed {
		_, err := gw.Insert(ctx, e)
		require.NoError(t, err)
	}

	notices := &NoticeLog{}
	h := &harness{gw: gw, notices: notices, ctrl: NewController(gw, notices)}
	require.NoError(t, h.ctrl.Load(ctx))
	return h
}

func (h *harness) lastNotice(t *testing.T) Notice {
	t.Helper()
	n, ok := h.notices.Last()
	require.True(t, ok, "expected a notice")
	return n
}

func (h *harness) assertClean(t *testing.T) {
	t.Helper()
	assert.True(t, h.state.IsEmpty(), "fields should be empty, got %+v", h.state)
	_, selected := h.ctrl.Listing().CurrentSelection()
	assert.False(t, selected, "no row should be selected")
}

var (
	ada  = types.Employee{Name: "Ada", Sex: "F", Email: "ada@example.com"}
	alan = types.Employee{Name: "Alan", Sex: "M", Email: "alan@example.com"}
)

// =============================================================================
// ADD
// =============================================================================

func TestAdd_ValidInsertsOneRecord(t *testing.T) {
	h := newHarness(t, ada)
	h.state = State{Name: "Grace", Sex: "F", Email: "grace@example.com"}

	require.NoError(t, h.ctrl.Add(context.Background(), &h.state))

	rows := h.ctrl.Listing().Rows()
	require.Len(t, rows, 2)
	added := rows[1]
	assert.NotEqual(t, rows[0].ID, added.ID)
	assert.Equal(t, "Grace", added.Name)
	assert.Equal(t, "F", added.Sex)
	assert.Equal(t, "grace@example.com", added.Email)

	n := h.lastNotice(t)
	assert.Equal(t, LevelInfo, n.Level)
	assert.Equal(t, msgAdded, n.Message)
	h.assertClean(t)
}

func TestAdd_EmptyFieldRejected(t *testing.T) {
	cases := map[string]State{
		"name":  {Sex: "F", Email: "x@example.com"},
		"sex":   {Name: "X", Email: "x@example.com"},
		"email": {Name: "X", Sex: "F"},
		"all":   {},
	}
	for name, st := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, ada)
			h.state = st

			err := h.ctrl.Add(context.Background(), &h.state)
			require.ErrorIs(t, err, ErrEmptyField)

			assert.Equal(t, 1, h.gw.Len())
			n := h.lastNotice(t)
			assert.Equal(t, LevelWarning, n.Level)
			assert.Equal(t, titleEmptyFields, n.Title)
			assert.Equal(t, st, h.state, "fields must be left untouched")
		})
	}
}

func TestAdd_WhitespaceValueIsAccepted(t *testing.T) {
	h := newHarness(t)
	h.state = State{Name: " ", Sex: "F", Email: "x@example.com"}

	require.NoError(t, h.ctrl.Add(context.Background(), &h.state))

	assert.Equal(t, 1, h.gw.Len())
	rows := h.ctrl.Listing().Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, " ", rows[0].Name, "values are stored as typed")
	assert.Equal(t, msgAdded, h.lastNotice(t).Message)
	h.assertClean(t)
}

func TestAdd_DuplicateEmailReportsGenericError(t *testing.T) {
	h := newHarness(t, ada)
	h.state = State{Name: "Other", Sex: "M", Email: ada.Email}
	before := h.state

	err := h.ctrl.Add(context.Background(), &h.state)
	require.Error(t, err)

	var se *store.Error
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, 1, h.gw.Len())
	assert.Equal(t, before, h.state)

	n := h.lastNotice(t)
	assert.Equal(t, LevelError, n.Level)
	assert.Equal(t, titleDatabase, n.Title)
}

// =============================================================================
// UPDATE
// =============================================================================

func TestUpdate_ChangesOnlySelectedRecord(t *testing.T) {
	h := newHarness(t, ada, alan)
	before := h.ctrl.Listing().Rows()

	require.True(t, h.ctrl.Select(&h.state, 0))
	assert.Equal(t, State{Name: "Ada", Sex: "F", Email: "ada@example.com"}, h.state)

	h.state.Name = "Ada Lovelace"
	require.NoError(t, h.ctrl.Update(context.Background(), &h.state))

	after := h.ctrl.Listing().Rows()
	require.Len(t, after, 2)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, "Ada Lovelace", after[0].Name)
	assert.Equal(t, before[1], after[1])

	assert.Equal(t, msgUpdated, h.lastNotice(t).Message)
	h.assertClean(t)
}

func TestUpdate_NoSelection(t *testing.T) {
	h := newHarness(t, ada)
	h.state = State{Name: "X", Sex: "Y", Email: "z@example.com"}

	err := h.ctrl.Update(context.Background(), &h.state)
	require.ErrorIs(t, err, ErrNoSelection)

	rows := h.ctrl.Listing().Rows()
	assert.Equal(t, "Ada", rows[0].Name)
	n := h.lastNotice(t)
	assert.Equal(t, titleNoSelection, n.Title)
	assert.Equal(t, msgSelectUpdate, n.Message)
}

func TestUpdate_SelectionClearedBeforeActionIsRejected(t *testing.T) {
	h := newHarness(t, ada)
	require.True(t, h.ctrl.Select(&h.state, 0))
	h.ctrl.Listing().ClearSelection()
	h.state.Name = "Changed"

	err := h.ctrl.Update(context.Background(), &h.state)
	require.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, "Ada", h.ctrl.Listing().Rows()[0].Name)
}

func TestUpdate_EmptyFieldRejected(t *testing.T) {
	h := newHarness(t, ada)
	require.True(t, h.ctrl.Select(&h.state, 0))
	h.state.Email = ""

	err := h.ctrl.Update(context.Background(), &h.state)
	require.ErrorIs(t, err, ErrEmptyField)

	rows, err := h.gw.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ada.Email, rows[0].Email)
	_, selected := h.ctrl.Listing().CurrentSelection()
	assert.True(t, selected, "selection survives a validation failure")
}

func TestUpdate_StorageFailureKeepsFormAndSelection(t *testing.T) {
	h := newHarness(t, ada, alan)
	require.True(t, h.ctrl.Select(&h.state, 0))
	h.state.Email = alan.Email

	err := h.ctrl.Update(context.Background(), &h.state)
	require.Error(t, err)

	assert.Equal(t, alan.Email, h.state.Email)
	sel, ok := h.ctrl.Listing().CurrentSelection()
	require.True(t, ok)
	assert.Equal(t, "Ada", sel.Name)
	assert.Equal(t, LevelError, h.lastNotice(t).Level)
}

// =============================================================================
// DELETE
// =============================================================================

func TestDelete_ConfirmedRemovesExactlyOne(t *testing.T) {
	h := newHarness(t, ada, alan)
	require.True(t, h.ctrl.Select(&h.state, 1))

	var asked string
	confirm := ConfirmFunc(func(prompt string) bool {
		asked = prompt
		return true
	})
	require.NoError(t, h.ctrl.Delete(context.Background(), &h.state, confirm))

	assert.Equal(t, DeletePrompt, asked)
	rows := h.ctrl.Listing().Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada", rows[0].Name)
	assert.Equal(t, msgDeleted, h.lastNotice(t).Message)
	h.assertClean(t)
}

func TestDelete_DeclinedLeavesTableUnchanged(t *testing.T) {
	h := newHarness(t, ada, alan)
	require.True(t, h.ctrl.Select(&h.state, 0))
	noticesBefore := h.notices.Len()

	err := h.ctrl.Delete(context.Background(), &h.state, Answer(false))
	require.ErrorIs(t, err, ErrCancelled)

	assert.Equal(t, 2, h.gw.Len())
	assert.Equal(t, noticesBefore, h.notices.Len())
	assert.Equal(t, "Ada", h.state.Name)
}

func TestDelete_NoSelectionNeverAsks(t *testing.T) {
	h := newHarness(t, ada)

	confirm := ConfirmFunc(func(string) bool {
		t.Fatal("confirmation must not be requested without a selection")
		return true
	})
	err := h.ctrl.Delete(context.Background(), &h.state, confirm)
	require.ErrorIs(t, err, ErrNoSelection)

	assert.Equal(t, 1, h.gw.Len())
	assert.Equal(t, msgSelectDelete, h.lastNotice(t).Message)
}

func TestDelete_RowGoneFromStorageReportsError(t *testing.T) {
	h := newHarness(t, ada)
	require.True(t, h.ctrl.Select(&h.state, 0))

	sel, _ := h.ctrl.Listing().CurrentSelection()
	require.NoError(t, h.gw.Delete(context.Background(), sel.ID))

	err := h.ctrl.Delete(context.Background(), &h.state, Answer(true))
	require.Error(t, err)
	assert.True(t, store.IsNotFound(err))
	assert.Equal(t, titleDatabase, h.lastNotice(t).Title)
	assert.Equal(t, "Ada", h.state.Name)
}

// =============================================================================
// CLEAR / SELECT
// =============================================================================

func TestClear_EmptiesFieldsAndSelection(t *testing.T) {
	h := newHarness(t, ada)
	require.True(t, h.ctrl.Select(&h.state, 0))
	noticesBefore := h.notices.Len()

	h.ctrl.Clear(&h.state)

	h.assertClean(t)
	assert.Equal(t, 1, h.gw.Len())
	assert.Equal(t, noticesBefore, h.notices.Len())
}

func TestSelect_OutOfRange(t *testing.T) {
	h := newHarness(t, ada)
	h.state = State{Name: "typed"}

	assert.False(t, h.ctrl.Select(&h.state, 5))
	assert.False(t, h.ctrl.Select(&h.state, -1))
	assert.Equal(t, "typed", h.state.Name)
}

func TestSelect_ReplacesTypedValues(t *testing.T) {
	h := newHarness(t, ada)
	h.state = State{Name: "typed", Sex: "typed", Email: "typed"}

	require.True(t, h.ctrl.Select(&h.state, 0))
	assert.Equal(t, State{Name: ada.Name, Sex: ada.Sex, Email: ada.Email}, h.state)
}

func TestNewController_NilNotifier(t *testing.T) {
	gw := store.NewMemoryStore()
	require.NoError(t, gw.Init(context.Background()))
	ctrl := NewController(gw, nil)

	var st State
	assert.ErrorIs(t, ctrl.Add(context.Background(), &st), ErrEmptyField)
}
