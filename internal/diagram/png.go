package diagram

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/abhisek/rhr/internal/problem"
)

// DefaultScale is the PNG pixel density per diagram unit.
const DefaultScale = 2.0

// Raster renders geo into an RGBA image at scale pixels per diagram unit.
func Raster(geo problem.Geometry, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	w := int(math.Ceil(geo.Width * scale))
	h := int(math.Ceil(geo.Height * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty diagram %gx%g", geo.Width, geo.Height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(shapesOnly(geo)))
	if err != nil {
		return nil, fmt.Errorf("parse diagram svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for _, l := range labels(geo) {
		d.Dot = fixed.P(int(l.X*scale), int(l.Y*scale))
		d.DrawString(l.Text)
		if l.Bold {
			d.Dot = fixed.P(int(l.X*scale)+1, int(l.Y*scale))
			d.DrawString(l.Text)
		}
	}
	return img, nil
}

// WritePNG encodes the rasterized diagram to w.
func WritePNG(w io.Writer, geo problem.Geometry, scale float64) error {
	img, err := Raster(geo, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
