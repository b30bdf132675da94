package axon

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Preview renders the exact quantized output as a pixel raster
// magnified by an integer scale factor, for export to an image file.
// Every pixel is a palette color; the raster matches what Render would
// put on screen cell for cell. With the border enabled the preview is
// framed like the terminal output, including the caption band.
func (r *Renderer) Preview(img image.Image, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, configErrorf("preview scale", "%d not positive", scale)
	}
	grid, err := r.RenderGrid(img)
	if err != nil {
		return nil, err
	}

	base := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := paletteRGB[grid.At(x, y)]
			base.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, grid.Width*scale, grid.Height*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), base, base.Bounds(), draw.Src, nil)
	if !r.border {
		return scaled, nil
	}
	return r.framePreview(scaled, scale), nil
}

// framePreview surrounds a scaled preview with the polaroid frame: one
// cell of white on the sides, one line (two grid rows) on top, and the
// caption or padding band below. Cell geometry matches the terminal
// output, with each grid pixel scale x scale preview pixels.
func (r *Renderer) framePreview(scaled *image.RGBA, scale int) *image.RGBA {
	margin := scale
	top := 2 * scale
	band := 8 * scale // four blank lines
	if r.caption != "" {
		band = 6 * scale // spacer, caption, bottom line
	}

	w := scaled.Bounds().Dx() + margin*2
	h := scaled.Bounds().Dy() + top + band
	frameRGB := paletteRGB[borderIndex]
	white := color.RGBA{R: frameRGB.R, G: frameRGB.G, B: frameRGB.B, A: 255}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	draw.Draw(out,
		scaled.Bounds().Add(image.Pt(margin, top)),
		scaled, image.Point{}, draw.Src)

	if r.caption != "" {
		r.stampCaption(out, scaled.Bounds().Dy()+top, band)
	}
	return out
}

// stampCaption draws the caption text centered on the bottom band using
// the built-in 7x13 bitmap face, truncated to the band width.
func (r *Renderer) stampCaption(out *image.RGBA, bandTop, bandHeight int) {
	inkRGB := paletteRGB[captionIndex]
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.RGBA{R: inkRGB.R, G: inkRGB.G, B: inkRGB.B, A: 255}),
		Face: face,
	}

	runes := []rune(r.caption)
	maxWidth := out.Bounds().Dx() - 2*face.Advance
	for len(runes) > 0 && font.MeasureString(face, string(runes)).Ceil() > maxWidth {
		runes = runes[:len(runes)-1]
	}
	text := string(runes)

	width := font.MeasureString(face, text).Ceil()
	x := (out.Bounds().Dx() - width) / 2
	y := bandTop + (bandHeight+face.Ascent)/2
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
