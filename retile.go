/*
Package retile validates and rearranges a rectangular grid of image tiles.

An image is split into equally sized tiles enumerated in row-major order,
the tiles are reordered by a caller-supplied permutation, and a new image of
the same dimensions and color mode is reassembled and written out.
*/
package retile

import (
	"io"

	"github.com/charmbracelet/log"
)

type Retiler struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Retiler {
	return &Retiler{
		logger: logger,
	}
}

var defaultRetiler = New(log.New(io.Discard))
