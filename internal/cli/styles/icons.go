package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe  = "\uf0ac" // browser/web
	IconWindow = "\uf2d0" // window
	IconBug    = "\uf188" // devtools
	IconCheck  = "\uf00c" // check
	IconX      = "\uf00d" // x
	IconInfo   = "\uf05a" // info
	IconConfig = "\ue615" // config
	IconLogs   = "\uf0f6" // file-text
)
