package axon

// IndexGrid is a quantized raster: a height x width grid of terminal
// palette indices. Grids are created per render call and never shared
// between concurrent renders.
type IndexGrid struct {
	Width  int
	Height int
	cells  []uint8
}

// NewIndexGrid allocates a zeroed grid of the given dimensions.
func NewIndexGrid(width, height int) *IndexGrid {
	return &IndexGrid{
		Width:  width,
		Height: height,
		cells:  make([]uint8, width*height),
	}
}

// At returns the palette index at (x, y).
func (g *IndexGrid) At(x, y int) uint8 {
	return g.cells[y*g.Width+x]
}

// Set stores a palette index at (x, y).
func (g *IndexGrid) Set(x, y int, idx uint8) {
	g.cells[y*g.Width+x] = idx
}

// Clone returns a deep copy of the grid.
func (g *IndexGrid) Clone() *IndexGrid {
	c := NewIndexGrid(g.Width, g.Height)
	copy(c.cells, g.cells)
	return c
}
