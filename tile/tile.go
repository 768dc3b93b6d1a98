/*
Package tile splits an image into a uniform grid of equally sized tiles and
reassembles tiles back into an image.

Tiles are enumerated in row-major order; tile 0 is the top-left tile,
proceeding left-to-right within a row and then top-to-bottom across rows.
*/
package tile

// A Grid describes how an image divides into equally sized tiles.
type Grid struct {
	ImageWidth  int
	ImageHeight int
	TileWidth   int
	TileHeight  int
}

// Columns returns the number of tiles across the image.
func (g Grid) Columns() int {
	return g.ImageWidth / g.TileWidth
}

// Rows returns the number of tiles down the image.
func (g Grid) Rows() int {
	return g.ImageHeight / g.TileHeight
}

// Count returns the total number of tiles in the grid.
func (g Grid) Count() int {
	return g.Columns() * g.Rows()
}

// Valid reports whether the grid is well-formed and ordering uses each tile
// index exactly once. The tile size must be positive and divide each image
// dimension without remainder, and ordering must be exactly Count() long
// with its values a permutation of 0 through Count()-1. Degenerate tile
// sizes are rejected here rather than faulting later.
func (g Grid) Valid(ordering []int) bool {
	if g.TileWidth <= 0 || g.TileHeight <= 0 || g.ImageWidth < 0 || g.ImageHeight < 0 {
		return false
	}

	if g.ImageWidth%g.TileWidth != 0 || g.ImageHeight%g.TileHeight != 0 {
		return false
	}

	if len(ordering) != g.Count() {
		return false
	}

	seen := make([]bool, len(ordering))
	for _, i := range ordering {
		if i < 0 || i >= len(ordering) || seen[i] {
			return false
		}
		seen[i] = true
	}

	return true
}
