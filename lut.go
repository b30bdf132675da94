package axon

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LUT bucket geometry. Each RGB axis is divided into 32 buckets of 8
// values; a bucket is represented by its lower-corner value. These
// constants are part of the output contract: changing them changes
// every quantized image.
const (
	lutShift   = 3
	lutBuckets = 256 >> lutShift
)

// QuantLUT maps coarse RGB buckets to the palette index nearest the
// bucket's representative color in Lab space. It is built once and
// immutable afterwards, so a single instance may be shared read-only
// across any number of concurrent renders.
type QuantLUT struct {
	cells [lutBuckets * lutBuckets * lutBuckets]uint8
}

// NearestIndex returns the palette index (16-255) nearest to the given
// color. O(1): the exact color is truncated to its bucket coordinates
// and the precomputed cell is returned directly.
func (t *QuantLUT) NearestIndex(c RGB) uint8 {
	r := int(c.R) >> lutShift
	g := int(c.G) >> lutShift
	b := int(c.B) >> lutShift
	return t.cells[(r*lutBuckets+g)*lutBuckets+b]
}

// BuildLUT constructs the quantization table by exhaustive Lab-distance
// search over palette entries 16-255 for every bucket representative.
// Ties resolve to the lowest palette index. Construction parallelizes
// over red planes; every cell depends only on the immutable palette.
func BuildLUT() *QuantLUT {
	var palLab [paletteSize]Lab
	for i := quantBase; i < paletteSize; i++ {
		palLab[i] = rgbToLab(paletteRGB[i])
	}

	t := &QuantLUT{}
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for r := 0; r < lutBuckets; r++ {
		r := r
		g.Go(func() error {
			for gg := 0; gg < lutBuckets; gg++ {
				for b := 0; b < lutBuckets; b++ {
					rep := RGB{
						R: uint8(r << lutShift),
						G: uint8(gg << lutShift),
						B: uint8(b << lutShift),
					}
					t.cells[(r*lutBuckets+gg)*lutBuckets+b] = nearestByLab(rep, &palLab)
				}
			}
			return nil
		})
	}
	g.Wait() // workers never return errors
	return t
}

// nearestByLab is the exhaustive reference search the LUT is built from.
func nearestByLab(c RGB, palLab *[paletteSize]Lab) uint8 {
	target := rgbToLab(c)
	best := quantBase
	bestDist := target.distSq(palLab[quantBase])
	for i := quantBase + 1; i < paletteSize; i++ {
		if d := target.distSq(palLab[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}

var (
	defaultLUT     *QuantLUT
	defaultLUTOnce sync.Once
)

// DefaultLUT returns the process-wide shared quantization table,
// building it on first use.
func DefaultLUT() *QuantLUT {
	defaultLUTOnce.Do(func() {
		defaultLUT = BuildLUT()
	})
	return defaultLUT
}
