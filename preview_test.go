package axon

import (
	"errors"
	"testing"

	"github.com/axon-term/axon/imageutil"
)

func TestPreviewDimensions(t *testing.T) {
	t.Parallel()

	img := gradientImage(32, 32)
	preview, err := NewRenderer(WithWidth(8)).Preview(img, 3)
	if err != nil {
		t.Fatal(err)
	}
	// 8 columns, 8 rows, x3 magnification.
	if w, h := preview.Bounds().Dx(), preview.Bounds().Dy(); w != 24 || h != 24 {
		t.Errorf("preview is %dx%d, want 24x24", w, h)
	}
}

func TestPreviewBorderDimensions(t *testing.T) {
	t.Parallel()

	img := gradientImage(32, 32)

	// Inner 8x8 grid at x3: 24x24 image area, margins 3, top 6,
	// blank band 24.
	preview, err := NewRenderer(WithWidth(10), WithBorder()).Preview(img, 3)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := preview.Bounds().Dx(), preview.Bounds().Dy(); w != 30 || h != 54 {
		t.Errorf("bordered preview is %dx%d, want 30x54", w, h)
	}

	// Caption band is shorter: spacer, caption, bottom line.
	preview, err = NewRenderer(WithWidth(10), WithBorder(), WithCaption("hi")).Preview(img, 3)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := preview.Bounds().Dx(), preview.Bounds().Dy(); w != 30 || h != 48 {
		t.Errorf("captioned preview is %dx%d, want 30x48", w, h)
	}
}

func TestPreviewUsesOnlyPaletteColors(t *testing.T) {
	t.Parallel()

	paletteSet := make(map[RGB]bool)
	for i := quantBase; i < paletteSize; i++ {
		paletteSet[paletteRGB[i]] = true
	}

	preview, err := NewRenderer(
		WithWidth(8),
		WithDither(DitherFloyd),
	).Preview(gradientImage(32, 32), 2)
	if err != nil {
		t.Fatal(err)
	}

	bounds := preview.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := preview.RGBAAt(x, y)
			if !paletteSet[RGB{c.R, c.G, c.B}] {
				t.Fatalf("pixel (%d,%d) = %v is not a palette color", x, y, c)
			}
		}
	}
}

func TestPreviewMatchesGrid(t *testing.T) {
	t.Parallel()

	img := solidImage(8, 8, imageutil.RGB{R: 255, G: 0, B: 0})
	r := NewRenderer(WithWidth(4), WithFilter(imageutil.FilterNearest))

	grid, err := r.RenderGrid(img)
	if err != nil {
		t.Fatal(err)
	}
	preview, err := r.Preview(img, 2)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			want := paletteRGB[grid.At(x, y)]
			c := preview.RGBAAt(x*2, y*2)
			if (RGB{c.R, c.G, c.B}) != want {
				t.Errorf("preview cell (%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestPreviewRejectsBadScale(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(WithWidth(8)).Preview(gradientImage(8, 8), 0)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("got %v, want ConfigurationError", err)
	}
}
