package tile

import (
	"image"
	"image/draw"
)

// subImager is implemented by all the standard image types.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Split crops m into g.Count() tiles in row-major order. Tiles share pixel
// data with m where the underlying type allows it.
func Split(m image.Image, g Grid) []image.Image {
	min := m.Bounds().Min

	tiles := make([]image.Image, 0, g.Count())
	for ty := 0; ty < g.Rows(); ty++ {
		for tx := 0; tx < g.Columns(); tx++ {
			r := image.Rect(tx*g.TileWidth, ty*g.TileHeight, (tx+1)*g.TileWidth, (ty+1)*g.TileHeight).Add(min)

			if si, ok := m.(subImager); ok {
				tiles = append(tiles, si.SubImage(r))
			} else {
				t := newCanvas(m, r)
				draw.Draw(t, r, m, r.Min, draw.Src)
				tiles = append(tiles, t)
			}
		}
	}

	return tiles
}

// Permute returns a new tile sequence where position i holds
// tiles[ordering[i]].
func Permute(tiles []image.Image, ordering []int) []image.Image {
	out := make([]image.Image, len(ordering))
	for i, j := range ordering {
		out[i] = tiles[j]
	}
	return out
}
