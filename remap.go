package axon

import (
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/axon-term/axon/imageutil"
)

// RemapTable restricts quantized output to a caller-supplied subset of
// the terminal palette. Entry i holds the restricted palette index that
// replaces index i. Tables are immutable once built and safe to share
// across concurrent renders.
type RemapTable struct {
	entries [paletteSize]uint8
}

// swatchGrid is the layout of a palette swatch image: a 16x16 grid of
// equally sized color cells, one per palette slot in row-major order.
const swatchGrid = 16

// BuildRemap builds a remap table from an explicit list of allowed
// colors. Every palette slot maps to the palette index of the
// Euclidean-RGB-nearest entry in colors, first in list order winning
// ties.
func BuildRemap(colors []RGB, lut *QuantLUT) (*RemapTable, error) {
	if len(colors) == 0 {
		return nil, &PaletteLoadError{Reason: "empty color list"}
	}

	// Resolve each allowed color to its own palette index once.
	allowed := make([]uint8, len(colors))
	for i, c := range colors {
		allowed[i] = lut.NearestIndex(c)
	}

	t := &RemapTable{}
	for slot := 0; slot < paletteSize; slot++ {
		slotRGB := paletteRGB[slot]
		best := 0
		bestDist := slotRGB.distanceSq(colors[0])
		for i := 1; i < len(colors); i++ {
			if d := slotRGB.distanceSq(colors[i]); d < bestDist {
				bestDist = d
				best = i
			}
		}
		t.entries[slot] = allowed[best]
	}
	t.closeFixedPoints()
	return t, nil
}

// LoadRemapFromSwatch builds a remap table from a decoded swatch image:
// a 16x16 grid of color cells in row-major palette-slot order. The
// center pixel of each cell is sampled and quantized. Images smaller
// than the grid cannot be sampled and fail with a PaletteLoadError.
func LoadRemapFromSwatch(img image.Image, lut *QuantLUT) (*RemapTable, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < swatchGrid || h < swatchGrid {
		return nil, &PaletteLoadError{
			Reason: "swatch image smaller than 16x16 grid",
		}
	}

	cellW := w / swatchGrid
	cellH := h / swatchGrid
	t := &RemapTable{}
	for row := 0; row < swatchGrid; row++ {
		for col := 0; col < swatchGrid; col++ {
			x := bounds.Min.X + col*cellW + cellW/2
			y := bounds.Min.Y + row*cellH + cellH/2
			sample := imageutil.RGBFromColor(img.At(x, y))
			slot := row*swatchGrid + col
			t.entries[slot] = lut.NearestIndex(RGB{sample.R, sample.G, sample.B})
		}
	}
	t.closeFixedPoints()
	return t, nil
}

// LoadRemapFile reads a swatch image from disk and builds its table.
func LoadRemapFile(path string, lut *QuantLUT) (*RemapTable, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, &PaletteLoadError{Path: path, Reason: "unreadable image", Err: err}
	}
	t, err := LoadRemapFromSwatch(img, lut)
	if err != nil {
		if pe, ok := err.(*PaletteLoadError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return t, nil
}

// closeFixedPoints forces every index in the table's image to map to
// itself. A restricted color standing in for other slots must stand for
// itself as well; this also makes Apply idempotent by construction.
func (t *RemapTable) closeFixedPoints() {
	var inImage [paletteSize]bool
	for _, v := range t.entries {
		inImage[v] = true
	}
	for i := 0; i < paletteSize; i++ {
		if inImage[i] {
			t.entries[i] = uint8(i)
		}
	}
}

// Lookup returns the restricted index for a palette index.
func (t *RemapTable) Lookup(idx uint8) uint8 {
	return t.entries[idx]
}

// Apply produces a new grid with every cell passed through the table.
// Applying the same table twice yields the same grid as applying it
// once, since table targets are fixed points of themselves.
func (t *RemapTable) Apply(grid *IndexGrid) *IndexGrid {
	out := NewIndexGrid(grid.Width, grid.Height)
	for i, idx := range grid.cells {
		out.cells[i] = t.entries[idx]
	}
	return out
}

// NamedRemap pairs a remap table with the display name derived from its
// swatch filename.
type NamedRemap struct {
	Name  string
	Table *RemapTable
}

// LoadPalettesDir loads every PNG swatch in a directory into a named
// remap table, sorted by name. Files that cannot be loaded or parsed
// are skipped rather than failing the scan. A missing directory yields
// an empty list.
func LoadPalettesDir(dir string, lut *QuantLUT) []NamedRemap {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var palettes []NamedRemap
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}
		table, err := LoadRemapFile(filepath.Join(dir, entry.Name()), lut)
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if name != "" {
			name = strings.ToUpper(name[:1]) + name[1:]
		}
		palettes = append(palettes, NamedRemap{Name: name, Table: table})
	}
	sort.Slice(palettes, func(i, j int) bool {
		return palettes[i].Name < palettes[j].Name
	})
	return palettes
}
