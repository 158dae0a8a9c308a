package prim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Canvas is a width x height grid of Color, initialized to black.
type Canvas struct {
	Width, Height int
	pixels        []Color
}

// NewCanvas builds a black canvas of the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]Color, width*height),
	}
}

func (c *Canvas) index(x, y int) int {
	return y*c.Width + x
}

// WritePixel sets the color at (x, y). Out-of-bounds writes are ignored,
// matching the book's permissive canvas semantics.
func (c *Canvas) WritePixel(x, y int, color Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[c.index(x, y)] = color
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) Color {
	return c.pixels[c.index(x, y)]
}

const ppmMaxValue = 255
const ppmMaxLineWidth = 70

// WritePPM serializes the canvas as an ASCII portable-pixmap (P3): header
// `P3\n<W> <H>\n255\n`, then pixel rows with components whitespace-separated
// and wrapped so no line exceeds 70 characters (never splitting a number),
// terminated by a trailing newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", c.Width, c.Height, ppmMaxValue); err != nil {
		return err
	}

	for y := 0; y < c.Height; y++ {
		lineLen := 0
		first := true
		for x := 0; x < c.Width; x++ {
			col := c.PixelAt(x, y).Clamp()
			for _, channel := range [3]float64{col.R, col.G, col.B} {
				token := strconv.Itoa(scaleChannel(channel))
				// +1 for the separating space, except at line start.
				extra := len(token)
				if !first {
					extra++
				}
				if lineLen+extra > ppmMaxLineWidth {
					if err := bw.WriteByte('\n'); err != nil {
						return err
					}
					lineLen = 0
					first = true
				}
				if !first {
					if err := bw.WriteByte(' '); err != nil {
						return err
					}
					lineLen++
				}
				if _, err := bw.WriteString(token); err != nil {
					return err
				}
				lineLen += len(token)
				first = false
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func scaleChannel(c float64) int {
	v := int(c*ppmMaxValue + 0.5)
	if v < 0 {
		return 0
	}
	if v > ppmMaxValue {
		return ppmMaxValue
	}
	return v
}
