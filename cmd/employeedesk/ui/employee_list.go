package ui

import (
	"fmt"
	"strings"

	"employeedesk/internal/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const colID = 0

// EmployeeList is the printable form of the record list, used by the list command.
type EmployeeList struct {
	Title string
	Rows  []types.Employee
}

// NewEmployeeList wraps rows, already in display order, for printing.
func NewEmployeeList(title string, rows []types.Employee) EmployeeList {
	return EmployeeList{Title: title, Rows: rows}
}

// View renders a bordered table followed by a count line.
func (l EmployeeList) View(styles Styles) string {
	var sb strings.Builder
	if l.Title != "" {
		sb.WriteString(styles.Title.Render(l.Title))
		sb.WriteString("\n")
	}

	cells := make([][]string, len(l.Rows))
	for i, e := range l.Rows {
		cells[i] = e.Row()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Divider).
		Headers(types.Columns...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Bold.Padding(0, 1)
			case col == colID:
				return styles.Muted.Padding(0, 1).Align(lipgloss.Right)
			default:
				return styles.Body.Padding(0, 1)
			}
		})
	sb.WriteString(t.String())
	sb.WriteString("\n")

	sb.WriteString(styles.Muted.Render(countLine(len(l.Rows))))
	sb.WriteString("\n")
	return sb.String()
}

func countLine(n int) string {
	switch n {
	case 0:
		return "no employees"
	case 1:
		return "1 employee"
	default:
		return fmt.Sprintf("%d employees", n)
	}
}
