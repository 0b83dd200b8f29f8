package gosieray

import (
	"image"
	"image/color"
	"strconv"
	"strings"
)

const (
	ppmMagic    = "P3"
	ppmMaxValue = 255
	// data lines must stay strictly shorter than this
	ppmLineLimit = 70
)

// Canvas is a fixed size grid of colors, stored row-major. Coordinates
// outside the grid are a programming error and panic on WritePixel and
// PixelAt.
type Canvas struct {
	width  int
	height int
	grid   [][]Color
}

// NewCanvas allocates a width x height canvas with every pixel black.
// Zero dimensions are allowed.
func NewCanvas(width, height int) *Canvas {
	grid := make([][]Color, height)
	for y := range grid {
		grid[y] = make([]Color, width)
	}
	return &Canvas{
		width:  width,
		height: height,
		grid:   grid,
	}
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) WritePixel(x, y int, col Color) {
	c.grid[y][x] = col
}

func (c *Canvas) PixelAt(x, y int) Color {
	return c.grid[y][x]
}

// ToPPM encodes the canvas as a plain PPM (P3) image. Pixel triples are
// separated by single spaces and a row is wrapped onto a new line before
// any line reaches 70 characters. Every row ends with a newline.
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	sb.WriteString(ppmMagic)
	sb.WriteByte('\n')
	sb.WriteString(strconv.Itoa(c.width))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(c.height))
	sb.WriteByte('\n')
	sb.WriteString(strconv.Itoa(ppmMaxValue))
	sb.WriteByte('\n')

	for _, row := range c.grid {
		lineLen := 0
		for _, px := range row {
			triple := px.String()
			if lineLen == 0 {
				sb.WriteString(triple)
				lineLen = len(triple)
				continue
			}
			if lineLen+1+len(triple) >= ppmLineLimit {
				sb.WriteByte('\n')
				sb.WriteString(triple)
				lineLen = len(triple)
				continue
			}
			sb.WriteByte(' ')
			sb.WriteString(triple)
			lineLen += 1 + len(triple)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (c *Canvas) String() string {
	return c.ToPPM()
}

// ColorModel, Bounds and At make the canvas an image.Image.

func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At returns black outside the canvas, as image.Image requires. Use
// PixelAt for checked access.
func (c *Canvas) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(c.Bounds())) {
		return Black
	}
	return c.grid[y][x]
}
