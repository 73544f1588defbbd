package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var background = color.RGBA{R: 10, G: 14, B: 23, A: 255}

// Line is one row of text and its color.
type Line struct {
	Text  string
	Color color.RGBA
}

// Layout holds the padding and floor sizes of a text canvas.
type Layout struct {
	PaddingX  int
	PaddingY  int
	Spacing   int // extra pixels between lines
	MinWidth  int
	MinHeight int
}

func textSize(face font.Face, s string) (int, int) {
	b, _ := font.BoundString(face, s)
	return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
}

// Size returns the canvas dimensions that fit lines, and the line pitch.
func (l Layout) Size(face font.Face, lines []Line) (width, height, lineHeight int) {
	_, base := textSize(face, "Ag")
	lineHeight = base + l.Spacing

	widest := 0
	for _, ln := range lines {
		if w, _ := textSize(face, ln.Text); w > widest {
			widest = w
		}
	}
	width = max(widest+2*l.PaddingX, l.MinWidth)
	height = max(lineHeight*len(lines)+2*l.PaddingY, l.MinHeight)
	return width, height, lineHeight
}

// Draw rasterizes lines top to bottom starting at the padding corner.
func (l Layout) Draw(face font.Face, lines []Line) *image.RGBA {
	width, height, lineHeight := l.Size(face, lines)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	ascent := face.Metrics().Ascent.Ceil()
	y := l.PaddingY
	for _, ln := range lines {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(ln.Color),
			Face: face,
			Dot:  fixed.P(l.PaddingX, y+ascent),
		}
		d.DrawString(ln.Text)
		y += lineHeight
	}
	return img
}

// SavePNG encodes img to path, creating the parent directory.
func SavePNG(path string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure image directory %q: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image %q: %w", path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode image %q: %w", path, err)
	}
	return nil
}
