package config

// Default configuration constants
const (
	defaultLaunchURL         = "about:blank"
	defaultControlSurfaceURL = "https://bolt-internal/frame.html"

	defaultWindowWidth  = 800 // pixels
	defaultWindowHeight = 600 // pixels

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Launch: LaunchConfig{
			URL:               defaultLaunchURL,
			ControlSurfaceURL: defaultControlSurfaceURL,
		},
		Window: WindowConfig{
			Width:        defaultWindowWidth,
			Height:       defaultWindowHeight,
			CenterOnOpen: true,
			Resizeable:   true,
			Frame:        true,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
