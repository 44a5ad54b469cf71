package main

import (
	"context"
	"fmt"

	"employeedesk/cmd/employeedesk/ui"
	"employeedesk/internal/form"
	"employeedesk/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// runInteractive opens the table, loads the list once and runs the form.
func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.CloseAll()

	ctx := context.Background()
	s, err := openStore(ctx, cfg)
	if err != nil {
		logging.BootError("%v", err)
		return err
	}
	logging.Boot("using %s (%s driver)", s.Path(), s.Driver())
	logging.BootDebug("theme=%s table_height=%d busy_timeout=%v", cfg.UI.Theme, cfg.GetTableHeight(), cfg.GetBusyTimeout())

	notices := &form.NoticeLog{}
	ctrl := form.NewController(s, notices)
	// a failed first load is shown as a notice; the form still opens
	timer := logging.StartTimer(logging.CategoryBoot, "initial load")
	_ = ctrl.Load(ctx)
	timer.Stop()

	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	page := ui.NewFormPage(ctx, ctrl, notices, styles, cfg.GetTableHeight())

	if _, err := tea.NewProgram(page, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("form exited: %w", err)
	}
	logging.Boot("form closed")
	return nil
}
