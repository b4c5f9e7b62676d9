// Package preview draws a converted level to an image so a level can be
// checked without starting the engine.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"path/filepath"

	"github.com/automoto/tmx2lua/export"
	"github.com/automoto/tmx2lua/fonts"
	"github.com/automoto/tmx2lua/leveldata"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	DefaultScale  = 16
	captionHeight = 20
	captionSize   = 12

	maxPixels = 1 << 26 // largest image Render will allocate
)

var (
	backgroundColor  = color.RGBA{R: 0x1d, G: 0x1f, B: 0x21, A: 0xff}
	playerStartColor = color.RGBA{R: 0x5f, G: 0xd7, B: 0x5f, A: 0xff}
	spriteColor      = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	captionColor     = color.RGBA{R: 0xc5, G: 0xc8, B: 0xc6, A: 0xff}

	// Walls are coloured by texture id
	wallPalette = []color.RGBA{
		{R: 0xcc, G: 0x66, B: 0x66, A: 0xff},
		{R: 0x81, G: 0xa2, B: 0xbe, A: 0xff},
		{R: 0xb2, G: 0x94, B: 0xbb, A: 0xff},
		{R: 0x8a, G: 0xbe, B: 0xb7, A: 0xff},
		{R: 0xde, G: 0x93, B: 0x5f, A: 0xff},
		{R: 0xf0, G: 0xc6, B: 0x74, A: 0xff},
	}
)

// Options control the rendered image.
type Options struct {
	Scale     int // pixels per tile
	NoCaption bool
}

// WallColor returns the colour walls with the given texture id are drawn in.
func WallColor(texID int) color.RGBA {
	return wallPalette[texID%len(wallPalette)]
}

// Render draws a normalized level.
func Render(level *leveldata.Level, opts Options) (*image.RGBA, error) {
	if !level.Normalized() {
		return nil, errors.New("preview needs a level in tile units")
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}

	c, err := newCanvas(level, opts)
	if err != nil {
		return nil, err
	}
	c.clear(backgroundColor)

	halfWidth := math.Max(1, float64(opts.Scale)/8)
	for _, w := range level.Walls {
		x1, y1 := c.toPixels(w.X1, w.Y1)
		x2, y2 := c.toPixels(w.X2, w.Y2)
		c.fill(WallColor(w.TexID), func(r *vector.Rasterizer) {
			c.segmentPath(r, x1, y1, x2, y2, halfWidth)
		})
	}

	marker := float64(opts.Scale) / 3
	for _, s := range level.Sprites {
		x, y := c.toPixels(s.X, s.Y)
		c.fill(spriteColor, func(r *vector.Rasterizer) {
			c.polygonPath(r, x, y, marker, 4, math.Pi/4)
		})
	}

	px, py := c.toPixels(level.PlayerStart.X, level.PlayerStart.Y)
	c.fill(playerStartColor, func(r *vector.Rasterizer) {
		c.polygonPath(r, px, py, marker, 16, 0)
	})

	if !opts.NoCaption {
		caption := fmt.Sprintf("%s  %d walls  %d sprites",
			filepath.Base(level.Source), len(level.Walls), len(level.Sprites))
		if err := c.caption(caption); err != nil {
			return nil, err
		}
	}

	return c.img, nil
}

// WriteFile renders the level and stores it as a PNG at path.
func WriteFile(path string, level *leveldata.Level, opts Options) error {
	img, err := Render(level, opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return export.WriteFile(path, buf.Bytes())
}

type canvas struct {
	img    *image.RGBA
	r      *vector.Rasterizer
	scale  float64
	margin float64
}

func newCanvas(level *leveldata.Level, opts Options) (*canvas, error) {
	// Size to the map, growing it if geometry sits outside
	w, h := float64(level.Width), float64(level.Height)
	for _, wall := range level.Walls {
		w = math.Max(w, math.Max(wall.X1, wall.X2))
		h = math.Max(h, math.Max(wall.Y1, wall.Y2))
	}
	for _, s := range level.Sprites {
		w = math.Max(w, s.X)
		h = math.Max(h, s.Y)
	}
	w = math.Max(w, level.PlayerStart.X)
	h = math.Max(h, level.PlayerStart.Y)

	scale := float64(opts.Scale)
	margin := scale / 2
	fw := math.Ceil(w*scale + 2*margin)
	fh := math.Ceil(h*scale + 2*margin)
	if !opts.NoCaption {
		fh += captionHeight
	}
	if !(fw*fh <= maxPixels) {
		return nil, fmt.Errorf("preview would be %gx%g pixels, over the %d pixel limit; lower the scale", fw, fh, maxPixels)
	}
	imgW, imgH := int(fw), int(fh)

	return &canvas{
		img:    image.NewRGBA(image.Rect(0, 0, imgW, imgH)),
		r:      vector.NewRasterizer(imgW, imgH),
		scale:  scale,
		margin: margin,
	}, nil
}

func (c *canvas) toPixels(x, y float64) (float64, float64) {
	return c.margin + x*c.scale, c.margin + y*c.scale
}

func (c *canvas) clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// fill rasterizes the path built by build and paints it in col.
func (c *canvas) fill(col color.Color, build func(r *vector.Rasterizer)) {
	b := c.img.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
	build(c.r)
	c.r.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func (c *canvas) clamp(x, y float64) (float32, float32) {
	b := c.img.Bounds()
	x = math.Min(math.Max(x, 0), float64(b.Dx()))
	y = math.Min(math.Max(y, 0), float64(b.Dy()))
	return float32(x), float32(y)
}

// segmentPath adds a quad covering the segment, halfWidth either side of it.
func (c *canvas) segmentPath(r *vector.Rasterizer, x1, y1, x2, y2, halfWidth float64) {
	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 {
		c.polygonPath(r, x1, y1, halfWidth*math.Sqrt2, 4, math.Pi/4)
		return
	}
	nx := -(y2 - y1) / length * halfWidth
	ny := (x2 - x1) / length * halfWidth

	r.MoveTo(c.clamp(x1+nx, y1+ny))
	r.LineTo(c.clamp(x2+nx, y2+ny))
	r.LineTo(c.clamp(x2-nx, y2-ny))
	r.LineTo(c.clamp(x1-nx, y1-ny))
	r.ClosePath()
}

// polygonPath adds a regular polygon centred on (x, y).
func (c *canvas) polygonPath(r *vector.Rasterizer, x, y, radius float64, sides int, rotation float64) {
	for i := 0; i < sides; i++ {
		angle := rotation + 2*math.Pi*float64(i)/float64(sides)
		px, py := c.clamp(x+radius*math.Cos(angle), y+radius*math.Sin(angle))
		if i == 0 {
			r.MoveTo(px, py)
		} else {
			r.LineTo(px, py)
		}
	}
	r.ClosePath()
}

func (c *canvas) caption(text string) error {
	face, err := fonts.Regular.Face(captionSize)
	if err != nil {
		return err
	}

	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(captionColor),
		Face: face,
		Dot:  fixed.P(int(c.margin), c.img.Bounds().Dy()-6),
	}
	d.DrawString(text)
	return nil
}
