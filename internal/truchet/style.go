package truchet

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Style holds the colours a tile is drawn with.
type Style struct {
	Outline    color.RGBA // patch outline
	Background color.RGBA // untouched half of the patch
	Fill       color.RGBA // triangle
}

// DefaultStyle returns black outlines, white background and orange triangles.
func DefaultStyle() Style {
	return Style{
		Outline:    colornames.Black,
		Background: colornames.White,
		Fill:       colornames.Orange,
	}
}
