package cli

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"chosenoffset.com/quilt/internal/render"
	"chosenoffset.com/quilt/internal/truchet"
)

type fakeWindow struct {
	width, height int
	title         string
	display       *render.DisplayList
	waited        int
}

func (w *fakeWindow) Canvas() render.Canvas { return w.display }

func (w *fakeWindow) Wait() error {
	w.waited++
	return nil
}

type fakeEngine struct {
	windows []*fakeWindow
	err     error
}

func (e *fakeEngine) NewWindow(width, height int, title string) (render.Window, error) {
	if e.err != nil {
		return nil, e.err
	}
	w := &fakeWindow{width: width, height: height, title: title, display: render.NewDisplayList()}
	e.windows = append(e.windows, w)
	return w, nil
}

func run(t *testing.T, args ...string) (*fakeEngine, string) {
	t.Helper()
	engine := &fakeEngine{}
	var out bytes.Buffer
	if err := Run(args, &out, engine, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Run(%v) failed: %v", args, err)
	}
	return engine, out.String()
}

func TestParseDefaults(t *testing.T) {
	opts, err := Parse([]string{"-quilt"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if opts.Mode != ModeQuilt || opts.N != 2 || opts.Width != 300 || opts.Height != 200 {
		t.Errorf("Expected default quilt 2 300x200, got %+v", opts)
	}
	if opts.NGiven {
		t.Error("Expected NGiven to be false")
	}
}

func TestParseModes(t *testing.T) {
	tests := []struct {
		arg  string
		mode Mode
		kind truchet.TileKind
	}{
		{"-HH", ModeDemo, truchet.TopLeft},
		{"-TH", ModeDemo, truchet.BottomLeft},
		{"-HT", ModeDemo, truchet.BottomRight},
		{"-TT", ModeDemo, truchet.TopRight},
		{"-quilt", ModeQuilt, 0},
		{"HH", ModeQuilt, 0},
		{"-whatever", ModeQuilt, 0},
	}
	for _, tt := range tests {
		opts, err := Parse([]string{tt.arg})
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.arg, err)
		}
		if opts.Mode != tt.mode {
			t.Errorf("%s: expected mode %d, got %d", tt.arg, tt.mode, opts.Mode)
		}
		if tt.mode == ModeDemo && opts.Kind != tt.kind {
			t.Errorf("%s: expected kind %s, got %s", tt.arg, tt.kind, opts.Kind)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	opts, err := Parse([]string{"-quilt", "5", "640", "480"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if opts.N != 5 || opts.Width != 640 || opts.Height != 480 || !opts.NGiven {
		t.Errorf("Expected n=5 640x480, got %+v", opts)
	}
}

func TestParseUsageErrors(t *testing.T) {
	for _, args := range [][]string{{}, {"-quilt", "1", "2", "3", "4"}} {
		_, err := Parse(args)
		var usageErr *UsageError
		if !errors.As(err, &usageErr) {
			t.Errorf("Parse(%v): expected UsageError, got %v", args, err)
			continue
		}
		if usageErr.Count != len(args) {
			t.Errorf("Expected count %d, got %d", len(args), usageErr.Count)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := [][]string{
		{"-quilt", "abc"},
		{"-HH", "2", "x", "10"},
		{"-HH", "2", "10", "1.5"},
		{"-quilt", "2", "10"},
		{"-quilt", "0"},
		{"-quilt", "-3"},
		{"-TT", "2", "0", "10"},
	}
	for _, args := range tests {
		_, err := Parse(args)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Parse(%v): expected ParseError, got %v", args, err)
			continue
		}
		if !strings.HasSuffix(parseErr.Error(), strings.Join(args, " ")) {
			t.Errorf("Expected message to include raw args, got %q", parseErr.Error())
		}
	}

	_, err := Parse([]string{"-quilt", "0"})
	if !errors.Is(err, truchet.ErrInvalidPatchCount) {
		t.Errorf("Expected n=0 to wrap ErrInvalidPatchCount, got %v", err)
	}
}

func TestParseDemoAllowsAnyN(t *testing.T) {
	if _, err := Parse([]string{"-HH", "0"}); err != nil {
		t.Errorf("Expected n to be ignored in demo mode, got %v", err)
	}
}

func TestRunDemoMode(t *testing.T) {
	engine, out := run(t, "-HH", "5", "40", "20")

	if len(engine.windows) != 1 {
		t.Fatalf("Expected 1 window, got %d", len(engine.windows))
	}
	win := engine.windows[0]
	if win.width != 80 || win.height != 40 {
		t.Errorf("Expected 80x40 window, got %dx%d", win.width, win.height)
	}
	if win.waited != 1 {
		t.Errorf("Expected Wait to be called once, got %d", win.waited)
	}
	if out != "n is:  5\n" {
		t.Errorf("Unexpected output %q", out)
	}

	var rects []render.Op
	var polys []render.Op
	for _, op := range win.display.Ops() {
		switch op.Kind {
		case render.OpRectangle:
			rects = append(rects, op)
		case render.OpPolygon:
			polys = append(polys, op)
		}
	}
	if len(rects) != 2 || len(polys) != 2 {
		t.Fatalf("Expected 2 tiles, got %d rectangles and %d polygons", len(rects), len(polys))
	}
	want := [][4]float64{{0, 0, 40, 20}, {40, 20, 40, 20}}
	for i, r := range rects {
		got := [4]float64{r.X, r.Y, r.Width, r.Height}
		if got != want[i] {
			t.Errorf("Tile %d: expected %v, got %v", i, want[i], got)
		}
		tri := truchet.Vertices(truchet.TopLeft, r.X, r.Y, r.Width, r.Height)
		for j := range tri {
			if polys[i].Points[j] != tri[j] {
				t.Errorf("Tile %d vertex %d: expected %v, got %v", i, j, tri[j], polys[i].Points[j])
			}
		}
	}
}

func TestRunQuiltMode(t *testing.T) {
	engine, _ := run(t, "-quilt", "3")

	if len(engine.windows) != 1 {
		t.Fatalf("Expected 1 window, got %d", len(engine.windows))
	}
	win := engine.windows[0]
	if win.width != 300 || win.height != 200 {
		t.Errorf("Expected 300x200 window, got %dx%d", win.width, win.height)
	}
	if win.display.Len() != 18 {
		t.Errorf("Expected 9 tiles (18 draw calls), got %d calls", win.display.Len())
	}
}

func TestRunParseErrorOpensNoWindow(t *testing.T) {
	engine, out := run(t, "-quilt", "abc")

	if len(engine.windows) != 0 {
		t.Errorf("Expected no window, got %d", len(engine.windows))
	}
	want := "Error parsing int n/width/height from command line:-quilt abc\n"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestRunUsageOpensNoWindow(t *testing.T) {
	for _, args := range [][]string{{}, {"-quilt", "1", "2", "3", "4"}} {
		engine, out := run(t, args...)
		if len(engine.windows) != 0 {
			t.Errorf("Expected no window for %v, got %d", args, len(engine.windows))
		}
		if out != Usage+"\n" {
			t.Errorf("Expected usage message, got %q", out)
		}
	}
}

func TestRunPropagatesEngineError(t *testing.T) {
	engine := &fakeEngine{err: errors.New("no display")}
	var out bytes.Buffer

	err := Run([]string{"-quilt"}, &out, engine, rand.New(rand.NewSource(1)))
	if err == nil || !strings.Contains(err.Error(), "no display") {
		t.Errorf("Expected engine error to propagate, got %v", err)
	}
}
