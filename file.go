package retile

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type encodeFunc func(io.Writer, image.Image) error

// encoderFor maps the extension of path to an encoder. GIF output is
// quantized down to a 256 color palette.
func encoderFor(path string) (encodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return func(w io.Writer, m image.Image) error {
			return png.Encode(w, m)
		}, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, nil)
		}, nil
	case ".gif":
		return func(w io.Writer, m image.Image) error {
			return gif.Encode(w, m, &gif.Options{
				NumColors: 256,
				Quantizer: quantize.MedianCutQuantizer{},
			})
		}, nil
	case ".bmp":
		return func(w io.Writer, m image.Image) error {
			return bmp.Encode(w, m)
		}, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, nil)
		}, nil
	default:
		return nil, fmt.Errorf("retile: unsupported output format %q", ext)
	}
}

// loadImage decodes the image at path. The file handle is closed before
// returning so callers never hold on to it.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	return m, err
}

func saveImage(path string, m image.Image, encode encodeFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
