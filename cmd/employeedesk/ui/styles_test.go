package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("EMPLOYEEDESK_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when EMPLOYEEDESK_DARK_MODE=1")
	}

	t.Setenv("EMPLOYEEDESK_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when EMPLOYEEDESK_DARK_MODE is unset")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for a black COLORFGBG background")
	}
}

func TestThemeFor(t *testing.T) {
	t.Setenv("EMPLOYEEDESK_DARK_MODE", "")
	t.Setenv("COLORFGBG", "")

	if !ThemeFor("dark").IsDark {
		t.Error("dark should be dark")
	}
	if ThemeFor("LIGHT").IsDark {
		t.Error("light should be light")
	}
	if ThemeFor("auto").IsDark {
		t.Error("auto without hints should fall back to light")
	}
}

func TestRenderDividerMinimumWidth(t *testing.T) {
	if got := DefaultStyles().RenderDivider(0); got == "" {
		t.Fatal("expected a divider even for zero width")
	}
}
