package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	"image/png"
	"io"
	"math"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazegraph/grid"
)

// ErrEmptyImage indicates the decoded image has no pixels.
var ErrEmptyImage = errors.New("imageio: image has no pixels")

// DecodeOptions controls how pixels become cells.
type DecodeOptions struct {
	// Threshold is the minimum 8-bit grey level of a path pixel.
	Threshold uint8
	// Invert treats dark pixels as path cells instead.
	Invert bool
}

// DefaultDecodeOptions returns Threshold=128, Invert=false.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Threshold: 128}
}

// EncodeOptions controls the rendered overlay.
type EncodeOptions struct {
	// Scale is the edge length, in pixels, of one cell. Values below 1 mean 1.
	Scale int
	// Margin is the width of the black border, in scaled pixels.
	Margin int
}

// DefaultEncodeOptions returns Scale=1, Margin=0.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Scale: 1}
}

var (
	wallColor = color.RGBA{A: 255}
	pathColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Decode reads an image and returns its cell matrix.
func Decode(r io.Reader, opts DecodeOptions) (grid.Matrix, error) {
	pic, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	return FromImage(pic, opts)
}

// FromImage converts an already decoded image to a cell matrix.
func FromImage(pic image.Image, opts DecodeOptions) (grid.Matrix, error) {
	b := pic.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	m := make(grid.Matrix, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]bool, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			row[x-b.Min.X] = (luminance(pic.At(x, y)) >= opts.Threshold) != opts.Invert
		}
		m[y-b.Min.Y] = row
	}

	return m, nil
}

// luminance returns the 8-bit grey level of c composited over white, so
// transparent pixels read as white background.
func luminance(c color.Color) uint8 {
	r, g, b, a := c.RGBA()
	under := 0xffff - a
	over := color.RGBA64{
		R: uint16(r + under),
		G: uint16(g + under),
		B: uint16(b + under),
		A: 0xffff,
	}

	return color.GrayModel.Convert(over).(color.Gray).Y
}

// Render draws the grid and its solution path.
func Render(g *grid.Grid, path []grid.Cell, opts EncodeOptions) (*image.RGBA, error) {
	if g == nil {
		return nil, errors.New("imageio: grid is nil")
	}
	w, h := g.Width(), g.Height()
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Rect, image.NewUniform(wallColor), image.Point{}, draw.Src)
	for c := range g.Cells() {
		canvas.SetRGBA(c.Col, c.Row, pathColor)
	}
	for i, c := range path {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("imageio: path cell %v outside %dx%d grid", c, w, h)
		}
		canvas.SetRGBA(c.Col, c.Row, gradient(i, len(path)))
	}

	scale := max(opts.Scale, 1)
	var pic image.Image = canvas
	if scale > 1 {
		pic = image_utils.ResizeImage(canvas, w*scale, h*scale)
	}
	if opts.Margin > 0 {
		framed := image_utils.NewCompositeImage()
		pad := 2 * opts.Margin
		backdrop := image.NewRGBA(image.Rect(0, 0, w*scale+pad, h*scale+pad))
		draw.Draw(backdrop, backdrop.Rect, image.NewUniform(wallColor), image.Point{}, draw.Src)
		if err := framed.AddImage(backdrop, image.Pt(0, 0)); err != nil {
			return nil, fmt.Errorf("imageio: margin backdrop: %w", err)
		}
		if err := framed.AddImage(pic, image.Pt(opts.Margin, opts.Margin)); err != nil {
			return nil, fmt.Errorf("imageio: place maze: %w", err)
		}
		pic = framed
	}

	return image_utils.ToRGBA(pic), nil
}

// Encode renders the grid and its solution path as PNG.
func Encode(w io.Writer, g *grid.Grid, path []grid.Cell, opts EncodeOptions) error {
	pic, err := Render(g, path, opts)
	if err != nil {
		return err
	}
	if err = png.Encode(w, pic); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}

	return nil
}

// gradient returns the colour of the i-th of n path cells: pure green at the
// start shading to red at the goal.
func gradient(i, n int) color.RGBA {
	step := 255.0 / float64(n)
	shift := int(math.Round(float64(i) * step))
	red := min(shift, 255)
	green := max(255-shift, 0)

	return color.RGBA{R: uint8(red), G: uint8(green), A: 255}
}
