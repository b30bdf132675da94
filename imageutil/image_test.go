package imageutil

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestFromImageFastPath(t *testing.T) {
	t.Parallel()

	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	wrapped := FromImage(rgba)
	if wrapped.RGBA != rgba {
		t.Error("origin-anchored *image.RGBA should be wrapped without copying")
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(2, 3, 6, 7))
	src.SetRGBA(2, 3, color.RGBA{R: 255, A: 255})

	out := FromImage(src)
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("got %dx%d, want 4x4", out.Width(), out.Height())
	}
	if out.GetRGB(0, 0) != (RGB{R: 255}) {
		t.Errorf("corner pixel = %v, want red", out.GetRGB(0, 0))
	}
}

func TestFromImagePaletted(t *testing.T) {
	t.Parallel()

	src := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{
		color.RGBA{A: 255},
		color.RGBA{G: 255, A: 255},
	})
	src.SetColorIndex(1, 1, 1)

	out := FromImage(src)
	if out.GetRGB(0, 0) != (RGB{}) || out.GetRGB(1, 1) != (RGB{G: 255}) {
		t.Errorf("got %v and %v", out.GetRGB(0, 0), out.GetRGB(1, 1))
	}
}

func TestSetGetFill(t *testing.T) {
	t.Parallel()

	img := NewRGBAImage(3, 3)
	img.Fill(RGB{R: 10, G: 20, B: 30})
	img.SetRGB(1, 2, RGB{R: 255, G: 255, B: 255})

	if img.GetRGB(0, 0) != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("fill pixel = %v", img.GetRGB(0, 0))
	}
	if img.GetRGB(1, 2) != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("set pixel = %v", img.GetRGB(1, 2))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	src := NewRGBAImage(5, 4)
	src.Fill(RGB{R: 12, G: 200, B: 99})
	src.SetRGB(4, 3, RGB{R: 1, G: 2, B: 3})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(src, path); err != nil {
		t.Fatal(err)
	}
	back, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}

	if back.Width() != 5 || back.Height() != 4 {
		t.Fatalf("got %dx%d, want 5x4", back.Width(), back.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if back.GetRGB(x, y) != src.GetRGB(x, y) {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, back.GetRGB(x, y), src.GetRGB(x, y))
			}
		}
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadImage(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
