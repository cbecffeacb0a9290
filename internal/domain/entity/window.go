// Package entity contains domain entities representing core window concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "fmt"

// WindowID identifies a window inside the coordinator's arena.
// IDs are allocated monotonically and never reused.
type WindowID uint64

// NoWindow is the zero WindowID, used for "no parent" and empty slots.
const NoWindow WindowID = 0

// String returns the ID in the "w<n>" form used in logs.
func (id WindowID) String() string {
	return fmt.Sprintf("w%d", uint64(id))
}

// BrowserID is the identity of one browser instance, assigned by the host.
type BrowserID int

// Popup defaults used when the page does not request an explicit size.
const (
	DefaultPopupWidth  = 800
	DefaultPopupHeight = 608
)

// WindowDetails is the immutable configuration snapshot captured when a
// window is created.
type WindowDetails struct {
	PreferredWidth  int
	PreferredHeight int
	StartX          int
	StartY          int
	CenterOnOpen    bool
	Resizeable      bool
	Frame           bool
	ControlsOverlay bool
	IsDevtools      bool
}

// InitialBounds returns the window rectangle the host should open with.
func (d WindowDetails) InitialBounds() Rect {
	return Rect{
		X:      d.StartX,
		Y:      d.StartY,
		Width:  d.PreferredWidth,
		Height: d.PreferredHeight,
	}
}

// PreferredSize returns the configured content size.
func (d WindowDetails) PreferredSize() Size {
	return Size{Width: d.PreferredWidth, Height: d.PreferredHeight}
}

// PopupFeatures are the placement hints page content attached to a
// window.open style request. Each coordinate carries its own "set" flag
// because zero is a valid position.
type PopupFeatures struct {
	X         int
	XSet      bool
	Y         int
	YSet      bool
	Width     int
	WidthSet  bool
	Height    int
	HeightSet bool
}

// PopupDetails derives the details of a popup window from the most recent
// hints recorded for the requesting browser.
func PopupDetails(features PopupFeatures, isDevtools bool) WindowDetails {
	width := DefaultPopupWidth
	if features.WidthSet {
		width = features.Width
	}
	height := DefaultPopupHeight
	if features.HeightSet {
		height = features.Height
	}

	return WindowDetails{
		PreferredWidth:  width,
		PreferredHeight: height,
		StartX:          features.X,
		StartY:          features.Y,
		CenterOnOpen:    !features.XSet || !features.YSet,
		Resizeable:      true,
		Frame:           true,
		ControlsOverlay: false,
		IsDevtools:      isDevtools,
	}
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// ShowState is the state a native window is first shown in.
type ShowState int

const (
	ShowStateNormal ShowState = iota
	ShowStateMinimized
	ShowStateMaximized
	ShowStateFullscreen
)

// String returns a human-readable name for the show state.
func (s ShowState) String() string {
	switch s {
	case ShowStateNormal:
		return "normal"
	case ShowStateMinimized:
		return "minimized"
	case ShowStateMaximized:
		return "maximized"
	case ShowStateFullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// ToolbarType selects the built-in browser toolbar, if any.
type ToolbarType int

const (
	ToolbarNone ToolbarType = iota
	ToolbarNormal
	ToolbarLocation
)
