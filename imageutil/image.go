// Package imageutil provides the decoded-raster collaborators for the
// axon renderer: a convenience wrapper over image.RGBA, image file I/O,
// and resampling with selectable filters.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// RGBFromColor converts a color.Color to RGB, discarding alpha.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBAImage wraps image.RGBA with direct pixel access helpers.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates an RGBAImage with the given dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// FromImage converts any image.Image to an RGBAImage anchored at the
// origin.
func FromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return &RGBAImage{RGBA: rgba}
	}
	bounds := img.Bounds()
	out := NewRGBAImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return out
}

// Width returns the image width in pixels.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the color at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the color at (x, y) with full opacity.
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Fill sets every pixel to the given color.
func (img *RGBAImage) Fill(c RGB) {
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			img.SetRGB(x, y, c)
		}
	}
}
