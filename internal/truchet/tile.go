// Package truchet draws Truchet tiles: rectangles split along one diagonal
// into a background half and a filled triangle, laid out as a random quilt.
package truchet

import (
	"fmt"
	"strings"

	"chosenoffset.com/quilt/internal/render"
)

// TileKind identifies which triangular half of a patch is filled.
type TileKind uint8

const (
	TopLeft     TileKind = iota // HH
	BottomLeft                  // TH
	BottomRight                 // HT
	TopRight                    // TT
)

// Kinds lists every tile kind in declaration order.
var Kinds = [...]TileKind{TopLeft, BottomLeft, BottomRight, TopRight}

var kindLabels = [...]string{
	TopLeft:     "HH",
	BottomLeft:  "TH",
	BottomRight: "HT",
	TopRight:    "TT",
}

// String returns the two-letter label of the kind (HH, TH, HT or TT).
func (k TileKind) String() string {
	if int(k) < len(kindLabels) {
		return kindLabels[k]
	}
	return fmt.Sprintf("TileKind(%d)", uint8(k))
}

// Valid reports whether k is one of the four tile kinds.
func (k TileKind) Valid() bool {
	return int(k) < len(kindLabels)
}

// ParseTileKind returns the kind for a label such as "HH" or "-HH".
func ParseTileKind(label string) (TileKind, error) {
	s := strings.TrimPrefix(label, "-")
	for i, l := range kindLabels {
		if l == s {
			return TileKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tile kind %q", label)
}

// corner selects a rectangle corner as a pair of multipliers on (w, h).
type corner struct {
	dx, dy float64
}

var (
	cornerTL = corner{0, 0}
	cornerTR = corner{1, 0}
	cornerBL = corner{0, 1}
	cornerBR = corner{1, 1}
)

// triangles holds the three triangle corners for each kind, in the order
// the vertices are emitted.
var triangles = [...][3]corner{
	TopLeft:     {cornerTL, cornerTR, cornerBL},
	BottomLeft:  {cornerTL, cornerBL, cornerBR},
	BottomRight: {cornerTR, cornerBR, cornerBL},
	TopRight:    {cornerTL, cornerTR, cornerBR},
}

// Vertices returns the triangle of a kind placed on the rectangle at
// (x, y) with the given size. It returns nil for an invalid kind.
func Vertices(kind TileKind, x, y, width, height float64) []render.Point {
	if !kind.Valid() {
		return nil
	}
	tri := triangles[kind]
	pts := make([]render.Point, len(tri))
	for i, c := range tri {
		pts[i] = render.Point{X: x + c.dx*width, Y: y + c.dy*height}
	}
	return pts
}

// Render draws one tile with the default style.
func Render(canvas render.Canvas, kind TileKind, x, y, width, height float64) {
	RenderStyled(canvas, DefaultStyle(), kind, x, y, width, height)
}

// RenderStyled draws the outlined background rectangle, then the filled
// triangle for kind. Non-positive sizes are passed to the canvas as is.
func RenderStyled(canvas render.Canvas, style Style, kind TileKind, x, y, width, height float64) {
	canvas.SetFillColor(style.Background)
	canvas.SetOutlineColor(style.Outline)
	canvas.DrawRectangle(x, y, width, height)

	pts := Vertices(kind, x, y, width, height)
	if pts == nil {
		return
	}
	canvas.SetFillColor(style.Fill)
	canvas.DrawPolygon(pts...)
}
