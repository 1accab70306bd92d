package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/quilt/internal/render"
)

// outlineWidth is the stroke width of rectangle outlines in pixels.
const outlineWidth = 1

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// NewWindow creates a window of the given size. Nothing is shown until Wait
// is called.
func (e *EbitenEngine) NewWindow(width, height int, title string) (render.Window, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("window size must be positive")
	}
	return &EbitenWindow{
		width:   width,
		height:  height,
		title:   title,
		display: render.NewDisplayList(),
	}, nil
}

// EbitenWindow records drawing calls and replays them every frame once the
// window is running.
type EbitenWindow struct {
	width, height int
	title         string
	display       *render.DisplayList
	whiteImg      *ebiten.Image
}

// Canvas returns the retained-mode canvas of the window.
func (w *EbitenWindow) Canvas() render.Canvas {
	return w.display
}

// Wait opens the window and blocks until the user closes it.
func (w *EbitenWindow) Wait() error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(w)
}

// Update implements ebiten.Game. The scene is static.
func (w *EbitenWindow) Update() error {
	return nil
}

// Draw implements ebiten.Game.
func (w *EbitenWindow) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	w.display.Replay(&screenCanvas{dst: screen, whiteImg: w.white()})
}

// Layout implements ebiten.Game.
func (w *EbitenWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

func (w *EbitenWindow) white() *ebiten.Image {
	if w.whiteImg == nil {
		w.whiteImg = ebiten.NewImage(1, 1)
		w.whiteImg.Fill(color.White)
	}
	return w.whiteImg
}

// screenCanvas draws directly onto an ebiten image.
type screenCanvas struct {
	dst      *ebiten.Image
	whiteImg *ebiten.Image
	fill     color.Color
	outline  color.Color
}

func (c *screenCanvas) SetFillColor(clr color.Color) {
	c.fill = clr
}

func (c *screenCanvas) SetOutlineColor(clr color.Color) {
	c.outline = clr
}

func (c *screenCanvas) DrawRectangle(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	fx, fy, fw, fh := float32(x), float32(y), float32(width), float32(height)
	if c.fill != nil {
		vector.FillRect(c.dst, fx, fy, fw, fh, c.fill, false)
	}
	if c.outline != nil {
		vector.StrokeRect(c.dst, fx, fy, fw, fh, outlineWidth, c.outline, false)
	}
}

func (c *screenCanvas) DrawPolygon(points ...render.Point) {
	if len(points) < 3 || c.fill == nil {
		return
	}

	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)

	r, g, b, a := c.fill.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(r) / 0xffff
		vertices[i].ColorG = float32(g) / 0xffff
		vertices[i].ColorB = float32(b) / 0xffff
		vertices[i].ColorA = float32(a) / 0xffff
	}

	opts := &ebiten.DrawTrianglesOptions{
		AntiAlias: false,
	}
	c.dst.DrawTriangles(vertices, indices, c.whiteImg, opts)
}
