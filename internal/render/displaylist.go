package render

import (
	"image/color"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpRectangle OpKind = iota
	OpPolygon
)

// String returns a readable name for the op kind.
func (k OpKind) String() string {
	switch k {
	case OpRectangle:
		return "rectangle"
	case OpPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call together with the colours that were
// current when it was issued.
type Op struct {
	Kind    OpKind
	X, Y    float64 // rectangle origin
	Width   float64 // rectangle width
	Height  float64 // rectangle height
	Points  []Point // polygon vertices
	Fill    color.Color
	Outline color.Color
}

// DisplayList is a retained-mode Canvas. It records every call so a backend
// can replay the scene each frame, and tests can inspect what was drawn.
type DisplayList struct {
	fill    color.Color
	outline color.Color
	ops     []Op
}

// NewDisplayList creates an empty display list. Fill and outline start as
// white and black.
func NewDisplayList() *DisplayList {
	return &DisplayList{
		fill:    color.White,
		outline: color.Black,
	}
}

// SetFillColor sets the fill colour for subsequent ops.
func (d *DisplayList) SetFillColor(clr color.Color) {
	d.fill = clr
}

// SetOutlineColor sets the outline colour for subsequent ops.
func (d *DisplayList) SetOutlineColor(clr color.Color) {
	d.outline = clr
}

// DrawRectangle records an outlined, filled rectangle.
func (d *DisplayList) DrawRectangle(x, y, width, height float64) {
	d.ops = append(d.ops, Op{
		Kind:    OpRectangle,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Fill:    d.fill,
		Outline: d.outline,
	})
}

// DrawPolygon records a filled polygon.
func (d *DisplayList) DrawPolygon(points ...Point) {
	if len(points) < 3 {
		return
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	d.ops = append(d.ops, Op{
		Kind:    OpPolygon,
		Points:  pts,
		Fill:    d.fill,
		Outline: d.outline,
	})
}

// Ops returns the recorded operations in draw order.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Replay issues every recorded op, in order, against another canvas.
func (d *DisplayList) Replay(dst Canvas) {
	for _, op := range d.ops {
		dst.SetFillColor(op.Fill)
		dst.SetOutlineColor(op.Outline)
		switch op.Kind {
		case OpRectangle:
			dst.DrawRectangle(op.X, op.Y, op.Width, op.Height)
		case OpPolygon:
			dst.DrawPolygon(op.Points...)
		}
	}
}

// Reset drops all recorded ops. Colours are kept.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}
