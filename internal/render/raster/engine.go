package raster

import (
	"errors"

	"chosenoffset.com/quilt/internal/render"
)

// Engine implements render.Engine with offscreen PNG windows. Waiting on a
// window writes it to the configured path instead of blocking.
type Engine struct {
	path string
	last *Window
}

// NewEngine creates an engine that saves each window to path.
func NewEngine(path string) *Engine {
	return &Engine{path: path}
}

// NewWindow creates an offscreen canvas of the given size. The title is ignored.
func (e *Engine) NewWindow(width, height int, title string) (render.Window, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("window size must be positive")
	}
	w := &Window{canvas: NewCanvas(width, height), path: e.path}
	e.last = w
	return w, nil
}

// Last returns the most recently created window, or nil.
func (e *Engine) Last() *Window {
	return e.last
}

// Window is an offscreen render target.
type Window struct {
	canvas *Canvas
	path   string
}

// Canvas returns the drawing surface.
func (w *Window) Canvas() render.Canvas {
	return w.canvas
}

// Raster returns the concrete canvas, for reading pixels back.
func (w *Window) Raster() *Canvas {
	return w.canvas
}

// Wait saves the image and returns.
func (w *Window) Wait() error {
	return w.canvas.SavePNG(w.path)
}
