package render

import (
	"image/color"
)

// Point is a vertex in canvas pixel coordinates. Coordinates may be fractional.
type Point struct {
	X, Y float64
}

// Canvas is the drawing surface the tile code draws on. It abstracts the
// underlying graphics engine so the same drawing code can target a window or
// an offscreen image.
type Canvas interface {
	// SetFillColor sets the colour used to fill subsequent shapes.
	SetFillColor(clr color.Color)

	// SetOutlineColor sets the colour used to outline subsequent rectangles.
	SetOutlineColor(clr color.Color)

	// DrawRectangle draws a rectangle filled with the fill colour and
	// outlined with the outline colour. Sizes are not validated.
	DrawRectangle(x, y, width, height float64)

	// DrawPolygon draws a polygon filled with the fill colour.
	// Fewer than three points draws nothing.
	DrawPolygon(points ...Point)
}

// Window is an open window with a single canvas.
type Window interface {
	// Canvas returns the drawing surface of the window.
	Canvas() Canvas

	// Wait blocks until the user closes the window.
	Wait() error
}

// Engine opens windows.
type Engine interface {
	// NewWindow creates a window of the given pixel size.
	NewWindow(width, height int, title string) (Window, error)
}
