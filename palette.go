package axon

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255.
type RGB struct {
	R, G, B uint8
}

// toUint32 packs an RGB color into a 32-bit unsigned integer.
func (c RGB) toUint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// distanceSq returns the squared Euclidean distance between two colors in
// raw RGB space. Remap tables are built against this metric; perceptual
// matching goes through Lab distances in the quantization LUT instead.
func (c RGB) distanceSq(other RGB) int {
	dr := int(c.R) - int(other.R)
	dg := int(c.G) - int(other.G)
	db := int(c.B) - int(other.B)
	return dr*dr + dg*dg + db*db
}

const (
	// paletteSize is the number of addressable terminal colors.
	paletteSize = 256

	// cubeBase is the first index of the 6x6x6 color cube.
	cubeBase = 16

	// grayBase is the first index of the 24-entry grayscale ramp.
	grayBase = 232

	// quantBase is the first index the quantizer may produce. Indices
	// below it are the legacy ANSI colors, which terminals commonly
	// remap per user theme and are therefore never emitted.
	quantBase = cubeBase

	// borderIndex is the near-white cube entry used for border frames.
	borderIndex = 231

	// captionIndex is the darkest grayscale entry, used for caption text.
	captionIndex = 232
)

// cubeLevels are the channel values of the 6x6x6 color cube axes
// (indices 16-231).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// ansiBase holds the 16 legacy colors (indices 0-15) with their common
// xterm default values. The quantizer never returns these indices; they
// exist so that IndexToRGB is total over [0,255].
var ansiBase = [16]uint32{
	0x000000, 0x800000, 0x008000, 0x808000,
	0x000080, 0x800080, 0x008080, 0xc0c0c0,
	0x808080, 0xff0000, 0x00ff00, 0xffff00,
	0x0000ff, 0xff00ff, 0x00ffff, 0xffffff,
}

// paletteRGB is the full 256-entry index->RGB table, built once at
// package initialization and read-only thereafter.
var paletteRGB = buildPalette()

func buildPalette() [paletteSize]RGB {
	var p [paletteSize]RGB
	for i, v := range ansiBase {
		p[i] = RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
	}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				idx := cubeBase + 36*r + 6*g + b
				p[idx] = RGB{cubeLevels[r], cubeLevels[g], cubeLevels[b]}
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p[grayBase+i] = RGB{v, v, v}
	}
	return p
}

// IndexToRGB returns the RGB value of a terminal palette index. The
// mapping is pure and total over [0,255].
func IndexToRGB(idx uint8) RGB {
	return paletteRGB[idx]
}
