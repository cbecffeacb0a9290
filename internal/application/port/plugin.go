package port

import "errors"

// ErrPluginRejected is returned by AddPlugin when the plugin subsystem refuses
// a script. It never affects window lifecycle.
var ErrPluginRejected = errors.New("plugin rejected")

// PluginID identifies a running plugin.
type PluginID uint64

// PluginHost is the scripting/plugin subsystem. It is driven by the same
// event loop as the window coordinator but never calls into it.
type PluginHost interface {
	Init() error
	Close() error
	AddPlugin(source string) (PluginID, error)
	StopPlugin(id PluginID)

	OnSwapBuffers(event SwapBuffersEvent)
	OnRender2D(batch *RenderBatch2D)
	OnMinimap(event RenderMinimapEvent)
}

// Vertex2DFunctions gives indexed access to the vertices of a 2D batch.
// Positions and atlas coordinates are in pixels, UV and colour are
// normalised to [0, 1].
type Vertex2DFunctions interface {
	XY(index int) (x, y int32)
	AtlasXY(index int) (x, y int32)
	AtlasWH(index int) (w, h int32)
	UV(index int) (u, v float64)
	Colour(index int) (r, g, b, a float64)
}

// TextureFunctions gives access to a 2D texture atlas.
type TextureFunctions interface {
	ID() uint64
	Size() (w, h int)
	// Compare reports whether the bytes at x,y match data exactly.
	Compare(x, y int, data []byte) bool
}

// SurfaceFunctions gives access to a plugin-owned drawing surface.
type SurfaceFunctions interface {
	Clear(r, g, b, a float64)
	DrawToScreen(sx, sy, sw, sh, dx, dy, dw, dh int)
}

// RenderBatch2D is one batch of 2D geometry handed to plugins per frame.
type RenderBatch2D struct {
	ScreenWidth     uint32
	ScreenHeight    uint32
	IndexCount      uint32
	VerticesPerIcon uint32
	IsMinimap       bool
	Vertices        Vertex2DFunctions
	Texture         TextureFunctions
}

// RenderMinimapEvent carries the minimap camera parameters for a frame.
type RenderMinimapEvent struct {
	Angle float64
	Scale float64
	X     float64
	Y     float64
}

// SwapBuffersEvent marks the end of a rendered frame.
type SwapBuffersEvent struct{}
