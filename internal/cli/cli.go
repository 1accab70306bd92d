// Package cli parses the positional command line of the quilt tools and
// dispatches to the demo or quilt drawing.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chosenoffset.com/quilt/internal/render"
	"chosenoffset.com/quilt/internal/truchet"
)

// Usage is printed when the argument count is wrong.
const Usage = "usage: (one of -TT -TH, -HT, -HH, -quilt) [n] [width] [height]"

// Mode selects what gets drawn.
type Mode int

const (
	ModeQuilt Mode = iota // full n×n quilt
	ModeDemo              // two tiles of a single kind
)

// Options is a parsed command line.
type Options struct {
	Mode   Mode
	Kind   truchet.TileKind // tile kind in demo mode
	N      int              // patches per row and column
	NGiven bool             // n was supplied on the command line
	Width  int              // patch width in demo mode, quilt width otherwise
	Height int
}

// DefaultOptions returns a 2×2 quilt of 300×200 pixels.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeQuilt,
		N:      2,
		Width:  300,
		Height: 200,
	}
}

// WindowSize returns the pixel size of the window the options need.
func (o Options) WindowSize() (width, height int) {
	if o.Mode == ModeDemo {
		return o.Width * 2, o.Height * 2
	}
	return o.Width, o.Height
}

// UsageError reports a wrong number of arguments.
type UsageError struct {
	Count int
}

func (e *UsageError) Error() string {
	return Usage
}

// ParseError reports a value that is not a usable integer.
type ParseError struct {
	Args []string
	Err  error
}

func (e *ParseError) Error() string {
	return "Error parsing int n/width/height from command line:" + strings.Join(e.Args, " ")
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads "(-HH|-TH|-HT|-TT|-quilt) [n] [width height]". Anything other
// than a tile flag selects quilt mode.
func Parse(args []string) (Options, error) {
	opts := DefaultOptions()
	if len(args) < 1 || len(args) > 4 {
		return opts, &UsageError{Count: len(args)}
	}

	if strings.HasPrefix(args[0], "-") {
		if kind, err := truchet.ParseTileKind(args[0]); err == nil {
			opts.Mode = ModeDemo
			opts.Kind = kind
		}
	}

	fail := func(err error) (Options, error) {
		return opts, &ParseError{Args: args, Err: err}
	}

	var err error
	if len(args) > 1 {
		if opts.N, err = strconv.Atoi(args[1]); err != nil {
			return fail(err)
		}
		opts.NGiven = true
	}
	if len(args) > 2 {
		if len(args) < 4 {
			return fail(errors.New("width given without height"))
		}
		if opts.Width, err = strconv.Atoi(args[2]); err != nil {
			return fail(err)
		}
		if opts.Height, err = strconv.Atoi(args[3]); err != nil {
			return fail(err)
		}
	}

	if opts.Width < 1 || opts.Height < 1 {
		return fail(fmt.Errorf("size %dx%d must be positive", opts.Width, opts.Height))
	}
	if opts.Mode == ModeQuilt && opts.N < 1 {
		return fail(truchet.ErrInvalidPatchCount)
	}
	return opts, nil
}

// Run parses args and draws into a window from engine, then waits for the
// window to close. Usage and parse errors are printed to out and are not
// returned; only engine failures are.
func Run(args []string, out io.Writer, engine render.Engine, rng truchet.RNG) error {
	opts, err := Parse(args)
	if err != nil {
		var usageErr *UsageError
		var parseErr *ParseError
		if errors.As(err, &usageErr) || errors.As(err, &parseErr) {
			fmt.Fprintln(out, err)
			return nil
		}
		return err
	}

	if opts.NGiven {
		fmt.Fprintln(out, "n is: ", opts.N)
	}

	win, err := Draw(opts, engine, rng)
	if err != nil {
		return err
	}
	return win.Wait()
}

// Draw opens a window sized for opts and draws the demo tiles or the quilt.
// The caller waits on the returned window.
func Draw(opts Options, engine render.Engine, rng truchet.RNG) (render.Window, error) {
	width, height := opts.WindowSize()
	win, err := engine.NewWindow(width, height, title(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open %dx%d window: %w", width, height, err)
	}
	canvas := win.Canvas()

	w, h := float64(opts.Width), float64(opts.Height)
	switch opts.Mode {
	case ModeDemo:
		truchet.Render(canvas, opts.Kind, 0, 0, w, h)
		truchet.Render(canvas, opts.Kind, w, h, w, h)
	default:
		if err := truchet.Layout(canvas, rng, w, h, opts.N); err != nil {
			return nil, err
		}
	}
	return win, nil
}

func title(opts Options) string {
	if opts.Mode == ModeDemo {
		return fmt.Sprintf("Truchet %s", opts.Kind)
	}
	return fmt.Sprintf("Truchet quilt %dx%d", opts.N, opts.N)
}
