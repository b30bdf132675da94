package imageutil

import (
	"fmt"
	"image"

	"github.com/disintegration/gift"
)

// Filter selects the resampling kernel used when scaling an image to
// the terminal grid.
type Filter int

const (
	// FilterLanczos is a high-quality windowed sinc kernel, the default.
	FilterLanczos Filter = iota

	// FilterBilinear interpolates linearly between neighbors, giving a
	// soft result.
	FilterBilinear

	// FilterBicubic uses cubic interpolation for a crisper result.
	FilterBicubic

	// FilterNearest picks the nearest source pixel with no blending.
	FilterNearest
)

// String returns the filter name as accepted by ParseFilter.
func (f Filter) String() string {
	switch f {
	case FilterLanczos:
		return "lanczos"
	case FilterBilinear:
		return "bilinear"
	case FilterBicubic:
		return "bicubic"
	case FilterNearest:
		return "nearest"
	}
	return "unknown"
}

// ParseFilter converts a filter name to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "lanczos", "":
		return FilterLanczos, nil
	case "bilinear":
		return FilterBilinear, nil
	case "bicubic":
		return FilterBicubic, nil
	case "nearest":
		return FilterNearest, nil
	}
	return 0, fmt.Errorf("unknown resample filter %q", s)
}

func (f Filter) resampling() gift.Resampling {
	switch f {
	case FilterBilinear:
		return gift.LinearResampling
	case FilterBicubic:
		return gift.CubicResampling
	case FilterNearest:
		return gift.NearestNeighborResampling
	default:
		return gift.LanczosResampling
	}
}

// Resize scales an image to exactly width x height pixels using the
// given filter.
func Resize(img *RGBAImage, width, height int, filter Filter) *RGBAImage {
	g := gift.New(gift.Resize(width, height, filter.resampling()))
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return &RGBAImage{RGBA: dst}
}
