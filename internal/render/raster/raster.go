// Package raster draws onto an offscreen image with the gg software
// renderer and saves the result as PNG.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"chosenoffset.com/quilt/internal/render"
)

// outlineWidth is the stroke width of rectangle outlines in pixels.
const outlineWidth = 1.0

// SetLogger routes gg's internal diagnostics to l. nil silences them.
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
}

// Canvas implements render.Canvas on a gg context. Drawing errors are
// collected and reported by Err.
type Canvas struct {
	dc      *gg.Context
	fill    color.Color
	outline color.Color
	err     error
}

// NewCanvas creates a canvas of the given size cleared to white.
func NewCanvas(width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(color.White))
	return &Canvas{
		dc:      dc,
		fill:    color.White,
		outline: color.Black,
	}
}

// SetFillColor sets the colour used to fill subsequent shapes.
func (c *Canvas) SetFillColor(clr color.Color) {
	c.fill = clr
}

// SetOutlineColor sets the colour used to outline rectangles.
func (c *Canvas) SetOutlineColor(clr color.Color) {
	c.outline = clr
}

// DrawRectangle fills and outlines a rectangle. Non-positive sizes draw nothing.
func (c *Canvas) DrawRectangle(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if c.fill != nil {
		c.dc.SetColor(c.fill)
		c.dc.DrawRectangle(x, y, width, height)
		c.record(c.dc.Fill())
	}
	if c.outline != nil {
		c.dc.SetColor(c.outline)
		c.dc.SetLineWidth(outlineWidth)
		c.dc.DrawRectangle(x, y, width, height)
		c.record(c.dc.Stroke())
	}
}

// DrawPolygon fills a closed polygon.
func (c *Canvas) DrawPolygon(points ...render.Point) {
	if len(points) < 3 || c.fill == nil {
		return
	}
	c.dc.SetColor(c.fill)
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.record(c.dc.Fill())
}

func (c *Canvas) record(err error) {
	if err != nil {
		c.err = errors.Join(c.err, err)
	}
}

// Err returns the accumulated drawing errors, if any.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns the current pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return fmt.Errorf("drawing failed: %w", c.err)
	}
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas as a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return fmt.Errorf("drawing failed: %w", c.err)
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Close releases the underlying context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
