package tile

import (
	"image"
	"image/draw"
)

// Combine pastes tiles onto a new blank image covering the grid, laying
// them out row-major in the same geometry as Split. The canvas matches the
// color mode of the tiles, so combining unpermuted tiles reproduces the
// source image exactly.
func Combine(tiles []image.Image, g Grid) image.Image {
	var model image.Image
	if len(tiles) > 0 {
		model = tiles[0]
	}

	dst := newCanvas(model, image.Rect(0, 0, g.Columns()*g.TileWidth, g.Rows()*g.TileHeight))

	for i, t := range tiles {
		x := i % g.Columns() * g.TileWidth
		y := i / g.Columns() * g.TileHeight

		draw.Draw(dst, image.Rect(x, y, x+g.TileWidth, y+g.TileHeight), t, t.Bounds().Min, draw.Src)
	}

	return dst
}

// newCanvas returns a blank drawable image with bounds r in the same color
// mode as m. Sources that cannot be drawn into directly, such as YCbCr,
// reassemble as NRGBA.
func newCanvas(m image.Image, r image.Rectangle) draw.Image {
	switch src := m.(type) {
	case *image.Alpha:
		return image.NewAlpha(r)
	case *image.Alpha16:
		return image.NewAlpha16(r)
	case *image.CMYK:
		return image.NewCMYK(r)
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.NRGBA:
		return image.NewNRGBA(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	case *image.Paletted:
		return image.NewPaletted(r, src.Palette)
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	default:
		return image.NewNRGBA(r)
	}
}
