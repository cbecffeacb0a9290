package config

import "github.com/bnema/winshell/internal/domain/entity"

// Config represents the complete configuration for winshell.
type Config struct {
	// Launch controls what the first root window shows.
	Launch LaunchConfig `mapstructure:"launch" yaml:"launch" toml:"launch" json:"launch"`
	// Window holds the geometry policy of root windows.
	Window  WindowConfig  `mapstructure:"window" yaml:"window" toml:"window" json:"window"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// LaunchConfig controls the initial root window.
type LaunchConfig struct {
	// URL is the content address of the first root window.
	URL string `mapstructure:"url" yaml:"url" toml:"url" json:"url" jsonschema:"format=uri"`
	// ControlsOverlay loads ControlSurfaceURL and passes URL out-of-band.
	ControlsOverlay bool `mapstructure:"controls_overlay" yaml:"controls_overlay" toml:"controls_overlay" json:"controls_overlay"`
	// ControlSurfaceURL is the internal control page used by overlay windows.
	ControlSurfaceURL string `mapstructure:"control_surface_url" yaml:"control_surface_url" toml:"control_surface_url" json:"control_surface_url"`
	// ShowDevtoolsForChildren opens an inspector for every spawned popup.
	ShowDevtoolsForChildren bool `mapstructure:"show_devtools_for_children" yaml:"show_devtools_for_children" toml:"show_devtools_for_children" json:"show_devtools_for_children"`
}

// WindowConfig is the geometry policy of root windows.
type WindowConfig struct {
	Width        int  `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height       int  `mapstructure:"height" yaml:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
	X            int  `mapstructure:"x" yaml:"x" toml:"x" json:"x"`
	Y            int  `mapstructure:"y" yaml:"y" toml:"y" json:"y"`
	CenterOnOpen bool `mapstructure:"center_on_open" yaml:"center_on_open" toml:"center_on_open" json:"center_on_open"`
	Resizeable   bool `mapstructure:"resizeable" yaml:"resizeable" toml:"resizeable" json:"resizeable"`
	// Frame draws the native title bar and border.
	Frame bool `mapstructure:"frame" yaml:"frame" toml:"frame" json:"frame"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// RootDetails snapshots the window policy for a new root window.
func (c *Config) RootDetails() entity.WindowDetails {
	return entity.WindowDetails{
		PreferredWidth:  c.Window.Width,
		PreferredHeight: c.Window.Height,
		StartX:          c.Window.X,
		StartY:          c.Window.Y,
		CenterOnOpen:    c.Window.CenterOnOpen,
		Resizeable:      c.Window.Resizeable,
		Frame:           c.Window.Frame,
		ControlsOverlay: c.Launch.ControlsOverlay,
	}
}
