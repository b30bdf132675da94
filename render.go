package axon

import (
	"image"
	"strings"

	"github.com/axon-term/axon/imageutil"
)

// halfBlock is the upper half block glyph. The top pixel of a cell is
// carried by the foreground color, the bottom pixel by the background.
const halfBlock = '▀'

// Renderer converts decoded images into half-block ANSI text. A zero
// cost to construct, renderers hold only configuration plus shared
// read-only tables, so one renderer may serve concurrent Render calls.
type Renderer struct {
	width     int
	border    bool
	caption   string
	dither    DitherMode
	posterize int
	filter    imageutil.Filter
	remap     *RemapTable
	lut       *QuantLUT
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer with the given options. Defaults:
// width 80, no border, no dithering, no posterization, Lanczos
// resampling, full palette, shared process-wide LUT.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		width:  80,
		dither: DitherNone,
		filter: imageutil.FilterLanczos,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.lut == nil {
		r.lut = DefaultLUT()
	}
	return r
}

// WithWidth sets the output width in terminal columns.
func WithWidth(columns int) RendererOption {
	return func(r *Renderer) { r.width = columns }
}

// WithBorder draws a one-cell white frame around the image with a
// polaroid-style band below it.
func WithBorder() RendererOption {
	return func(r *Renderer) { r.border = true }
}

// WithCaption sets the caption text on the border band. Captions only
// appear when the border is enabled.
func WithCaption(text string) RendererOption {
	return func(r *Renderer) { r.caption = text }
}

// WithDither selects the dithering mode.
func WithDither(mode DitherMode) RendererOption {
	return func(r *Renderer) { r.dither = mode }
}

// WithPosterize sets the per-channel level count applied before
// quantization; 0 disables posterization.
func WithPosterize(levels int) RendererOption {
	return func(r *Renderer) { r.posterize = levels }
}

// WithFilter selects the resampling filter used to scale the source
// image onto the terminal grid.
func WithFilter(f imageutil.Filter) RendererOption {
	return func(r *Renderer) { r.filter = f }
}

// WithRemap restricts output colors through a remap table.
func WithRemap(t *RemapTable) RendererOption {
	return func(r *Renderer) { r.remap = t }
}

// WithLUT supplies an explicit quantization table instead of the
// process-wide default.
func WithLUT(lut *QuantLUT) RendererOption {
	return func(r *Renderer) { r.lut = lut }
}

// validate rejects impossible configurations before any pixel work.
func (r *Renderer) validate() error {
	minWidth := 1
	if r.border {
		// One border column each side plus at least one image column.
		minWidth = 3
	}
	if r.width < minWidth {
		return configErrorf("width", "%d columns too narrow", r.width)
	}
	if r.posterize < 0 || r.posterize > 256 {
		return configErrorf("posterize level", "%d not in [0,256]", r.posterize)
	}
	switch r.dither {
	case DitherNone, DitherFloyd, DitherOrdered:
	default:
		return configErrorf("dither mode", "%d not recognized", int(r.dither))
	}
	return nil
}

// layout returns the border thickness, image columns and image pixel
// rows for the configured width. The image area is square in cells;
// rows are padded up to an even count so every half-block cell has
// both of its pixels (the consistent odd-height policy: padding
// happens here, before quantization ever runs).
func (r *Renderer) layout() (pad, inner, rows int) {
	if r.border {
		pad = 1
	}
	inner = r.width - pad*2
	rows = inner
	if rows%2 != 0 {
		rows++
	}
	return pad, inner, rows
}

// RenderGrid runs the quantization pipeline and returns the raw grid of
// palette indices: resample, posterize, dither, remap.
func (r *Renderer) RenderGrid(img image.Image) (*IndexGrid, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	_, inner, rows := r.layout()

	raster := imageutil.Resize(imageutil.FromImage(img), inner, rows, r.filter)
	raster, err := Posterize(raster, r.posterize)
	if err != nil {
		return nil, err
	}
	grid, err := Quantize(raster, r.dither, r.lut)
	if err != nil {
		return nil, err
	}
	if r.remap != nil {
		grid = r.remap.Apply(grid)
	}
	return grid, nil
}

// Render converts an image to half-block ANSI text, lines joined by
// newline. The output is written for direct terminal display.
func (r *Renderer) Render(img image.Image) (string, error) {
	grid, err := r.RenderGrid(img)
	if err != nil {
		return "", err
	}
	return strings.Join(r.Compose(grid), "\n"), nil
}

// Compose assembles the character lines for a quantized grid. Rows 2k
// and 2k+1 become one line of half-block cells; a final unpaired row is
// emitted with foreground color only. With the border enabled each line
// is exactly grid.Width+2 display cells wide, framed in white, followed
// by the caption band or four lines of blank padding.
func (r *Renderer) Compose(grid *IndexGrid) []string {
	white := sgrBg(borderIndex)
	fullWidth := grid.Width + 2
	var lines []string

	if r.border {
		lines = append(lines, white+strings.Repeat(" ", fullWidth)+sgrReset)
	}

	for y := 0; y < grid.Height; y += 2 {
		var sb strings.Builder
		if r.border {
			sb.WriteString(white)
			sb.WriteByte(' ')
		}
		for x := 0; x < grid.Width; x++ {
			fg := grid.At(x, y)
			if y+1 < grid.Height {
				sb.WriteString(sgrCell(fg, grid.At(x, y+1)))
			} else {
				sb.WriteString(sgrFg(fg))
			}
			sb.WriteRune(halfBlock)
		}
		if r.border {
			sb.WriteString(white)
			sb.WriteByte(' ')
		}
		sb.WriteString(sgrReset)
		lines = append(lines, sb.String())
	}

	if r.border {
		if r.caption != "" {
			lines = append(lines,
				white+strings.Repeat(" ", fullWidth)+sgrReset,
				r.captionLine(grid.Width),
				white+strings.Repeat(" ", fullWidth)+sgrReset)
		} else {
			for i := 0; i < 4; i++ {
				lines = append(lines, white+strings.Repeat(" ", fullWidth)+sgrReset)
			}
		}
	}
	return lines
}

// captionLine centers the caption on the border band, biased left when
// the padding is odd. Text wider than the band is truncated, never
// wrapped.
func (r *Renderer) captionLine(inner int) string {
	text := []rune(r.caption)
	if len(text) > inner {
		text = text[:inner]
	}
	padding := inner - len(text)
	left := padding / 2
	right := padding - left

	var sb strings.Builder
	sb.WriteString(sgrBg(borderIndex))
	sb.WriteByte(' ')
	sb.WriteString(sgrFg(captionIndex))
	sb.WriteString(strings.Repeat(" ", left))
	sb.WriteString(string(text))
	sb.WriteString(strings.Repeat(" ", right))
	sb.WriteString(sgrReset)
	sb.WriteString(sgrBg(borderIndex))
	sb.WriteByte(' ')
	sb.WriteString(sgrReset)
	return sb.String()
}
