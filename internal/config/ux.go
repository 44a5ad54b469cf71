package config

// UI themes.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UIConfig configures the terminal form.
type UIConfig struct {
	Theme       string `yaml:"theme"`        // auto, light, dark
	TableHeight int    `yaml:"table_height"` // visible list rows
}

// GetTableHeight returns the configured list height, never less than 3.
func (c *Config) GetTableHeight() int {
	if c.UI.TableHeight < 3 {
		return 3
	}
	return c.UI.TableHeight
}
