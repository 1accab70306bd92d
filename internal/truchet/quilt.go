package truchet

import (
	"errors"
	"fmt"

	"chosenoffset.com/quilt/internal/render"
)

// ErrInvalidPatchCount is returned when a quilt has fewer than one patch per row.
var ErrInvalidPatchCount = errors.New("patch count must be at least 1")

// QuiltSpec describes a quilt: its pixel size and the number of patches
// along each side.
type QuiltSpec struct {
	Width  float64
	Height float64
	N      int
}

// Validate checks the patch count.
func (q QuiltSpec) Validate() error {
	if q.N < 1 {
		return fmt.Errorf("quilt %vx%v with n=%d: %w", q.Width, q.Height, q.N, ErrInvalidPatchCount)
	}
	return nil
}

// PatchSize returns the width and height of one patch. The result is not
// rounded, so patches may have fractional sizes.
func (q QuiltSpec) PatchSize() (width, height float64) {
	return q.Width / float64(q.N), q.Height / float64(q.N)
}

// Patch is one cell of the quilt grid.
type Patch struct {
	X, Y          float64
	Width, Height float64
	Kind          TileKind
}

// Patches places seq on the grid of q in column-major order: the outer loop
// walks columns, the inner loop walks rows. seq must hold at least N*N kinds.
func Patches(q QuiltSpec, seq []TileKind) ([]Patch, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if len(seq) < q.N*q.N {
		return nil, fmt.Errorf("need %d tile kinds for a %dx%d quilt, got %d", q.N*q.N, q.N, q.N, len(seq))
	}

	pw, ph := q.PatchSize()
	patches := make([]Patch, 0, q.N*q.N)
	i := 0
	for x := 0; x < q.N; x++ {
		for y := 0; y < q.N; y++ {
			patches = append(patches, Patch{
				X:      float64(x) * pw,
				Y:      float64(y) * ph,
				Width:  pw,
				Height: ph,
				Kind:   seq[i],
			})
			i++
		}
	}
	return patches, nil
}

// Layout draws a fresh random n×n quilt covering totalWidth×totalHeight.
// A new tile sequence is drawn from rng on every call.
func Layout(canvas render.Canvas, rng RNG, totalWidth, totalHeight float64, n int) error {
	return LayoutStyled(canvas, DefaultStyle(), rng, totalWidth, totalHeight, n)
}

// LayoutStyled is Layout with an explicit style.
func LayoutStyled(canvas render.Canvas, style Style, rng RNG, totalWidth, totalHeight float64, n int) error {
	q := QuiltSpec{Width: totalWidth, Height: totalHeight, N: n}
	if err := q.Validate(); err != nil {
		return err
	}

	patches, err := Patches(q, GenerateSequence(rng, n, n))
	if err != nil {
		return err
	}
	for _, p := range patches {
		RenderStyled(canvas, style, p.Kind, p.X, p.Y, p.Width, p.Height)
	}
	return nil
}
