package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"employeedesk/internal/form"
	"employeedesk/internal/logging"
	"employeedesk/internal/types"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WindowTitle is set on the terminal when the form starts.
const WindowTitle = "Employee Registry"

// focusArea is the widget receiving keystrokes.
type focusArea int

const (
	focusName focusArea = iota
	focusSex
	focusEmail
	focusTable
	focusCount
)

var fieldLabels = [...]string{"Name", "Sex", "Email"}

// FormPage is the full-screen employee form: three fields above the record list.
type FormPage struct {
	ctx     context.Context
	ctrl    *form.Controller
	notices *form.NoticeLog

	state  form.State
	inputs []textinput.Model
	table  table.Model
	focus  focusArea

	// status is the outcome of the last action, if any
	status    form.Notice
	hasStatus bool

	confirming bool
	showHelp   bool
	help       string

	width  int
	height int
	styles Styles
}

// NewFormPage builds the form around a controller whose listing is already loaded.
// Every notice the controller posts must go to notices.
func NewFormPage(ctx context.Context, ctrl *form.Controller, notices *form.NoticeLog, styles Styles, tableHeight int) FormPage {
	inputs := make([]textinput.Model, len(fieldLabels))
	for i, label := range fieldLabels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[focusName].Focus()

	t := table.New(
		table.WithColumns(employeeColumns()),
		table.WithHeight(tableHeight),
		table.WithWidth(80),
	)
	ts := table.DefaultStyles()
	ts.Header = styles.TableHeader
	ts.Selected = styles.TableSelected
	t.SetStyles(ts)

	m := FormPage{
		ctx:     ctx,
		ctrl:    ctrl,
		notices: notices,
		inputs:  inputs,
		table:   t,
		focus:   focusName,
		styles:  styles,
	}
	if last, ok := notices.Last(); ok {
		m.status, m.hasStatus = last, true
	}
	m.refreshRows()
	return m
}

func employeeColumns() []table.Column {
	widths := []int{6, 24, 10, 32}
	cols := make([]table.Column, len(types.Columns))
	for i, title := range types.Columns {
		cols[i] = table.Column{Title: title, Width: widths[i]}
	}
	return cols
}

// Init sets the window title and starts the cursor blinking.
func (m FormPage) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(WindowTitle), textinput.Blink)
}

// Update handles messages.
func (m FormPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 2)
		if m.showHelp {
			m.help = RenderHelp(m.styles.Theme, m.width-4)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			return m.updateHelp(msg), nil
		}
		if m.confirming {
			return m.updateConfirm(msg), nil
		}
		if next, handled := m.handleKey(msg); handled {
			return next, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusTable {
		m.table, cmd = m.table.Update(msg)
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

// handleKey runs form commands; it reports false for keys meant for the focused widget.
func (m FormPage) handleKey(msg tea.KeyMsg) (FormPage, bool) {
	switch msg.String() {
	case "ctrl+a":
		m.run("add", func(st *form.State) error { return m.ctrl.Add(m.ctx, st) })
	case "ctrl+u":
		m.run("update", func(st *form.State) error { return m.ctrl.Update(m.ctx, st) })
	case "ctrl+d":
		if _, ok := m.ctrl.Listing().CurrentSelection(); !ok {
			// no selection: the controller posts the notice without asking
			m.run("delete", func(st *form.State) error { return m.ctrl.Delete(m.ctx, st, form.Answer(false)) })
			return m, true
		}
		m.confirming = true
		logging.UI("delete confirmation shown")
	case "ctrl+l":
		m.ctrl.Clear(&m.state)
		m.pushState()
		m.hasStatus = false
		logging.UIDebug("form cleared")
	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "f1":
		m.openHelp()
	case "?":
		if m.focus != focusTable {
			return m, false
		}
		m.openHelp()
	case "enter":
		if m.focus != focusTable {
			m.setFocus(m.focus + 1)
			return m, true
		}
		if m.ctrl.Select(&m.state, m.table.Cursor()) {
			m.pushState()
			m.hasStatus = false
			m.setFocus(focusName)
		}
	default:
		return m, false
	}
	return m, true
}

func (m FormPage) updateConfirm(msg tea.KeyMsg) FormPage {
	var answer form.Answer
	switch strings.ToLower(msg.String()) {
	case "y":
		answer = true
	case "n", "esc":
		answer = false
	default:
		return m
	}
	m.confirming = false
	logging.UI("delete confirmation answered: %v", bool(answer))
	m.run("delete", func(st *form.State) error { return m.ctrl.Delete(m.ctx, st, answer) })
	return m
}

func (m FormPage) updateHelp(msg tea.KeyMsg) FormPage {
	switch msg.String() {
	case "esc", "?", "f1", "q":
		m.showHelp = false
	}
	return m
}

func (m *FormPage) openHelp() {
	logging.UI("help opened")
	m.showHelp = true
	m.help = RenderHelp(m.styles.Theme, m.width-4)
}

// run pulls the fields into the state, runs one controller action and
// pushes the result back into the widgets.
func (m *FormPage) run(action string, fn func(st *form.State) error) {
	m.pullState()
	before := m.notices.Len()

	err := fn(&m.state)
	switch {
	case errors.Is(err, form.ErrCancelled):
		m.status = form.Notice{Level: form.LevelInfo, Message: "Delete cancelled."}
		m.hasStatus = true
	case m.notices.Len() > before:
		m.status, _ = m.notices.Last()
		m.hasStatus = true
	default:
		m.hasStatus = false
	}
	if err != nil {
		logging.UIDebug("%s: %v", action, err)
	}

	m.pushState()
	m.refreshRows()
}

func (m *FormPage) pullState() {
	m.state.Name = m.inputs[focusName].Value()
	m.state.Sex = m.inputs[focusSex].Value()
	m.state.Email = m.inputs[focusEmail].Value()
}

func (m *FormPage) pushState() {
	m.inputs[focusName].SetValue(m.state.Name)
	m.inputs[focusSex].SetValue(m.state.Sex)
	m.inputs[focusEmail].SetValue(m.state.Email)
}

func (m *FormPage) refreshRows() {
	employees := m.ctrl.Listing().Rows()
	rows := make([]table.Row, len(employees))
	for i, e := range employees {
		rows[i] = table.Row(e.Row())
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *FormPage) setFocus(f focusArea) {
	m.focus = f
	for i := range m.inputs {
		if focusArea(i) == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if f == focusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

// State returns the values currently typed into the fields.
func (m FormPage) State() form.State {
	return form.State{
		Name:  m.inputs[focusName].Value(),
		Sex:   m.inputs[focusSex].Value(),
		Email: m.inputs[focusEmail].Value(),
	}
}

// Confirming reports whether the delete question is on screen.
func (m FormPage) Confirming() bool {
	return m.confirming
}

// View renders the form.
func (m FormPage) View() string {
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Header.Render(WindowTitle+" - Help"),
			m.help,
			m.styles.Footer.Render("esc to close"),
		)
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(WindowTitle))
	sb.WriteString("\n\n")

	for i, label := range fieldLabels {
		style := m.styles.Label
		if m.focus == focusArea(i) {
			style = m.styles.FocusedLabel
		}
		sb.WriteString(style.Render(label))
		sb.WriteString("  ")
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}

	if sel, ok := m.ctrl.Listing().CurrentSelection(); ok {
		sb.WriteString(m.styles.Marked.Render(fmt.Sprintf("Editing employee #%d", sel.ID)))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.RenderDivider(max(m.width-2, 40)))
	sb.WriteString("\n")

	listTitle := m.styles.Title
	if m.focus == focusTable {
		listTitle = m.styles.Prompt
	}
	sb.WriteString(listTitle.Render(fmt.Sprintf("Employees (%d)", m.ctrl.Listing().Len())))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Panel.Render(m.table.View()))
	sb.WriteString("\n")

	switch {
	case m.confirming:
		sb.WriteString(m.styles.Warning.Render(form.DeletePrompt + " (y/n)"))
	case m.hasStatus:
		sb.WriteString(m.renderStatus(m.status))
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Footer.Render("ctrl+a add • ctrl+u update • ctrl+d delete • ctrl+l clear • tab focus • f1 help • ctrl+c quit"))
	return sb.String()
}

func (m FormPage) renderStatus(n form.Notice) string {
	text := n.Message
	if n.Title != "" {
		text = n.Title + ": " + n.Message
	}
	switch n.Level {
	case form.LevelError:
		return m.styles.Error.Render(text)
	case form.LevelWarning:
		return m.styles.Warning.Render(text)
	default:
		if n.Title == "" {
			return m.styles.Info.Render(text)
		}
		return m.styles.Success.Render(text)
	}
}
