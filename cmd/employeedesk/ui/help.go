package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Employee Registry

Fill in **Name**, **Sex** and **Email**, then pick an action.

| Key | Action |
|-----|--------|
| ctrl+a | Add the form as a new employee |
| ctrl+u | Update the selected employee |
| ctrl+d | Delete the selected employee (asks first) |
| ctrl+l | Clear the fields and the selection |
| tab / shift+tab | Move between fields and the list |
| enter | On the list: load the highlighted row into the form |
| f1, ? | Toggle this help (? only from the list) |
| esc | Close help or answer "no" |
| ctrl+c | Quit |

All three fields are required. Emails must be unique; a duplicate is
reported as a database error.
`

// RenderHelp renders the key reference as terminal markdown.
// It falls back to the raw markdown if the renderer cannot be built.
func RenderHelp(theme Theme, width int) string {
	if width <= 0 || width > 100 {
		width = 80
	}

	style := "light"
	if theme.IsDark {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}
