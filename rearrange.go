package retile

import (
	"errors"
	"image"

	"github.com/bodgit/retile/tile"
)

// ErrInvalidArrangement is returned when the tile size does not evenly
// divide the image or the ordering is not a permutation of the tile count.
var ErrInvalidArrangement = errors.New("The tile size or ordering are not valid for the given image")

// ValidInput reports whether an image of size imageSize can be split into
// tiles of size tileSize and rearranged by ordering.
func ValidInput(imageSize, tileSize image.Point, ordering []int) bool {
	g := tile.Grid{
		ImageWidth:  imageSize.X,
		ImageHeight: imageSize.Y,
		TileWidth:   tileSize.X,
		TileHeight:  tileSize.Y,
	}
	return g.Valid(ordering)
}

// Rearrange loads the image at imagePath, splits it into tiles of size
// tileSize, reorders them by ordering and writes the reassembled image to
// outPath. The output encoding is chosen by the extension of outPath.
//
// Rearrange returns ErrInvalidArrangement without writing anything if the
// tile size does not evenly divide the image or ordering is not a
// permutation of the tile count. Decode and encode errors are returned
// as-is.
func (r *Retiler) Rearrange(imagePath string, tileSize image.Point, ordering []int, outPath string) error {
	// Fail on an unknown output format before the input is even opened so
	// that no destination file is ever created for a doomed run.
	encode, err := encoderFor(outPath)
	if err != nil {
		return err
	}

	m, err := loadImage(imagePath)
	if err != nil {
		return err
	}

	b := m.Bounds()
	g := tile.Grid{
		ImageWidth:  b.Dx(),
		ImageHeight: b.Dy(),
		TileWidth:   tileSize.X,
		TileHeight:  tileSize.Y,
	}

	if !g.Valid(ordering) {
		return ErrInvalidArrangement
	}

	r.logger.Debug("rearranging image", "path", imagePath, "columns", g.Columns(), "rows", g.Rows())

	tiles := tile.Permute(tile.Split(m, g), ordering)
	out := tile.Combine(tiles, g)

	r.logger.Debug("writing image", "path", outPath)

	return saveImage(outPath, out, encode)
}

// RearrangeTiles rearranges the tiles of the image at imagePath using a
// default Retiler. See Retiler.Rearrange.
func RearrangeTiles(imagePath string, tileSize image.Point, ordering []int, outPath string) error {
	return defaultRetiler.Rearrange(imagePath, tileSize, ordering, outPath)
}
