package axon

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/axon-term/axon/imageutil"
)

// DitherMode selects how quantization banding is mitigated.
type DitherMode int

const (
	// DitherNone quantizes each pixel independently with no error
	// feedback.
	DitherNone DitherMode = iota

	// DitherFloyd applies Floyd-Steinberg error diffusion in strict
	// raster order.
	DitherFloyd

	// DitherOrdered adds a repeating 4x4 Bayer threshold pattern to
	// each pixel before quantization.
	DitherOrdered
)

// String returns the mode name as accepted by ParseDitherMode.
func (m DitherMode) String() string {
	switch m {
	case DitherNone:
		return "none"
	case DitherFloyd:
		return "floyd"
	case DitherOrdered:
		return "ordered"
	}
	return "unknown"
}

// ParseDitherMode converts a mode name to a DitherMode.
func ParseDitherMode(s string) (DitherMode, error) {
	switch s {
	case "none", "":
		return DitherNone, nil
	case "floyd":
		return DitherFloyd, nil
	case "ordered":
		return DitherOrdered, nil
	}
	return 0, configErrorf("dither mode", "%q not one of none, floyd, ordered", s)
}

// bayer4 is the classic 4x4 Bayer index matrix. Normalized to
// [-0.5, 0.5) and scaled by orderedSpread it becomes the per-pixel
// threshold offset for ordered dithering.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// orderedSpread is the amplitude of the ordered-dither offset in channel
// units. Fixed: changing it changes every ordered render.
const orderedSpread = 48.0

func orderedOffset(x, y int) float64 {
	return (bayer4[y&3][x&3]/16.0 - 0.5) * orderedSpread
}

// Quantize converts a raster into a grid of palette indices using the
// given dither mode. The none and ordered modes are stateless per pixel
// and run row-parallel; Floyd-Steinberg is inherently sequential along
// the scan order and always runs single-threaded.
func Quantize(img *imageutil.RGBAImage, mode DitherMode, lut *QuantLUT) (*IndexGrid, error) {
	width, height := img.Width(), img.Height()
	if width <= 0 || height <= 0 {
		return nil, configErrorf("raster", "dimensions %dx%d not positive", width, height)
	}

	switch mode {
	case DitherNone:
		return quantizeRows(img, func(x, y int, p RGB) uint8 {
			return lut.NearestIndex(p)
		}), nil
	case DitherOrdered:
		return quantizeRows(img, func(x, y int, p RGB) uint8 {
			off := orderedOffset(x, y)
			return lut.NearestIndex(RGB{
				R: clampChannel(float64(p.R) + off),
				G: clampChannel(float64(p.G) + off),
				B: clampChannel(float64(p.B) + off),
			})
		}), nil
	case DitherFloyd:
		return quantizeFloyd(img, lut), nil
	}
	return nil, configErrorf("dither mode", "%d not recognized", int(mode))
}

// quantizeRows applies a pure per-pixel quantization function across the
// raster, parallelized over rows. Every output cell depends only on its
// own input pixel and read-only shared state, so processing order cannot
// affect the result.
func quantizeRows(img *imageutil.RGBAImage, fn func(x, y int, p RGB) uint8) *IndexGrid {
	width, height := img.Width(), img.Height()
	grid := NewIndexGrid(width, height)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for y := 0; y < height; y++ {
		y := y
		g.Go(func() error {
			for x := 0; x < width; x++ {
				p := img.GetRGB(x, y)
				grid.Set(x, y, fn(x, y, RGB{p.R, p.G, p.B}))
			}
			return nil
		})
	}
	g.Wait() // workers never return errors
	return grid
}

// diffusionState is the scan-order state machine for error diffusion.
// It holds the accumulated RGB error for the current row and the row
// below it; the raster-order contract lives here rather than being
// implicit in loop structure.
type diffusionState struct {
	width int
	cur   []float64 // 3 values per pixel, consumed left to right
	next  []float64 // error pushed down to the following row
}

func newDiffusionState(width int) *diffusionState {
	return &diffusionState{
		width: width,
		cur:   make([]float64, width*3),
		next:  make([]float64, width*3),
	}
}

// adjusted returns the pixel color with this position's accumulated
// error applied, clamped to valid channel range.
func (s *diffusionState) adjusted(x int, p RGB) (r, g, b float64) {
	r = clampFloat(float64(p.R) + s.cur[x*3])
	g = clampFloat(float64(p.G) + s.cur[x*3+1])
	b = clampFloat(float64(p.B) + s.cur[x*3+2])
	return r, g, b
}

// spread distributes a quantization residual forward in raster order:
// 7/16 right, 3/16 below-left, 5/16 below, 1/16 below-right. Fractions
// that would fall outside the raster are dropped, not redistributed.
func (s *diffusionState) spread(x int, er, eg, eb float64) {
	if x+1 < s.width {
		s.cur[(x+1)*3] += er * 7 / 16
		s.cur[(x+1)*3+1] += eg * 7 / 16
		s.cur[(x+1)*3+2] += eb * 7 / 16
	}
	if x-1 >= 0 {
		s.next[(x-1)*3] += er * 3 / 16
		s.next[(x-1)*3+1] += eg * 3 / 16
		s.next[(x-1)*3+2] += eb * 3 / 16
	}
	s.next[x*3] += er * 5 / 16
	s.next[x*3+1] += eg * 5 / 16
	s.next[x*3+2] += eb * 5 / 16
	if x+1 < s.width {
		s.next[(x+1)*3] += er * 1 / 16
		s.next[(x+1)*3+1] += eg * 1 / 16
		s.next[(x+1)*3+2] += eb * 1 / 16
	}
}

// advance moves to the next row: the pending below-row error becomes
// current and the new below-row accumulator is zeroed.
func (s *diffusionState) advance() {
	s.cur, s.next = s.next, s.cur
	for i := range s.next {
		s.next[i] = 0
	}
}

// quantizeFloyd performs Floyd-Steinberg error diffusion. Pixels must be
// visited in strict raster order (left to right, top to bottom) because
// each decision depends on error carried from already-processed
// neighbors; this function is deliberately not parallelized.
func quantizeFloyd(img *imageutil.RGBAImage, lut *QuantLUT) *IndexGrid {
	width, height := img.Width(), img.Height()
	grid := NewIndexGrid(width, height)
	state := newDiffusionState(width)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := img.GetRGB(x, y)
			r, g, b := state.adjusted(x, RGB{p.R, p.G, p.B})
			idx := lut.NearestIndex(RGB{
				R: uint8(r), G: uint8(g), B: uint8(b),
			})
			grid.Set(x, y, idx)

			chosen := paletteRGB[idx]
			state.spread(x,
				r-float64(chosen.R),
				g-float64(chosen.G),
				b-float64(chosen.B))
		}
		state.advance()
	}
	return grid
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampChannel(v float64) uint8 {
	return uint8(clampFloat(v))
}
