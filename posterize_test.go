package axon

import (
	"errors"
	"testing"

	"github.com/axon-term/axon/imageutil"
)

func gradientImage(width, height int) *imageutil.RGBAImage {
	img := imageutil.NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, imageutil.RGB{
				R: uint8(x * 255 / (width - 1)),
				G: uint8(y * 255 / (height - 1)),
				B: uint8((x + y) * 255 / (width + height - 2)),
			})
		}
	}
	return img
}

func imagesEqual(a, b *imageutil.RGBAImage) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.GetRGB(x, y) != b.GetRGB(x, y) {
				return false
			}
		}
	}
	return true
}

func TestPosterizeIdentity(t *testing.T) {
	t.Parallel()

	img := gradientImage(16, 16)
	for _, levels := range []int{0, 256} {
		out, err := Posterize(img, levels)
		if err != nil {
			t.Fatalf("Posterize(levels=%d): %v", levels, err)
		}
		if !imagesEqual(img, out) {
			t.Errorf("Posterize(levels=%d) is not the identity", levels)
		}
	}
}

func TestPosterizeBinMidpoints(t *testing.T) {
	t.Parallel()

	img := imageutil.NewRGBAImage(4, 1)
	img.SetRGB(0, 0, imageutil.RGB{R: 0, G: 0, B: 0})
	img.SetRGB(1, 0, imageutil.RGB{R: 100, G: 100, B: 100})
	img.SetRGB(2, 0, imageutil.RGB{R: 127, G: 128, B: 200})
	img.SetRGB(3, 0, imageutil.RGB{R: 255, G: 255, B: 255})

	// levels=2: bins of width 128 centered at 64 and 192.
	out, err := Posterize(img, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []imageutil.RGB{
		{R: 64, G: 64, B: 64},
		{R: 64, G: 64, B: 64},
		{R: 64, G: 192, B: 192},
		{R: 192, G: 192, B: 192},
	}
	for x, w := range want {
		if got := out.GetRGB(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestPosterizeFourLevels(t *testing.T) {
	t.Parallel()

	img := imageutil.NewRGBAImage(1, 1)
	img.SetRGB(0, 0, imageutil.RGB{R: 70, G: 130, B: 250})

	// levels=4: bins of width 64 centered at 32, 96, 160, 224.
	out, err := Posterize(img, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out.GetRGB(0, 0), (imageutil.RGB{R: 96, G: 160, B: 224}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPosterizeRejectsBadLevels(t *testing.T) {
	t.Parallel()

	img := imageutil.NewRGBAImage(1, 1)
	for _, levels := range []int{-1, 257} {
		_, err := Posterize(img, levels)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("Posterize(levels=%d) = %v, want ConfigurationError", levels, err)
		}
	}
}

func TestPosterizeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	img := gradientImage(8, 8)
	ref := gradientImage(8, 8)
	if _, err := Posterize(img, 2); err != nil {
		t.Fatal(err)
	}
	if !imagesEqual(img, ref) {
		t.Error("Posterize modified its input raster")
	}
}
