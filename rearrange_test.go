package retile

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quadColors = []color.NRGBA{
	{R: 0xff, A: 0xff},
	{G: 0xff, A: 0xff},
	{B: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, A: 0xff},
}

// writeQuadPNG writes a w by h PNG whose 2x2 quadrant colors follow
// quadColors and returns the decoded original for comparison.
func writeQuadPNG(t *testing.T, path string, w, h int) image.Image {
	t.Helper()

	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y / (h / 2) * 2
			if x >= w/2 {
				i++
			}
			m.SetNRGBA(x, y, quadColors[i])
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, m))
	require.NoError(t, f.Close())

	return m
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	m, err := png.Decode(f)
	require.NoError(t, err)

	return m
}

// assertPixelsEqual compares two images pixel by pixel in the RGBA color
// space, which is insensitive to the concrete image type a codec round-trip
// produces.
func assertPixelsEqual(t *testing.T, want, got image.Image) {
	t.Helper()

	require.Equal(t, want.Bounds().Size(), got.Bounds().Size())

	wb, gb := want.Bounds(), got.Bounds()
	for y := 0; y < wb.Dy(); y++ {
		for x := 0; x < wb.Dx(); x++ {
			wr, wg, wbl, wa := want.At(wb.Min.X+x, wb.Min.Y+y).RGBA()
			gr, gg, gbl, ga := got.At(gb.Min.X+x, gb.Min.Y+y).RGBA()
			if wr != gr || wg != gg || wbl != gbl || wa != ga {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}
}

func TestValidInput(t *testing.T) {
	assert.True(t, ValidInput(image.Pt(4, 4), image.Pt(2, 2), []int{3, 2, 1, 0}))
	assert.False(t, ValidInput(image.Pt(5, 4), image.Pt(2, 2), []int{0, 1, 2, 3}))
	assert.False(t, ValidInput(image.Pt(4, 4), image.Pt(2, 2), []int{0, 1, 2, 2}))
	assert.False(t, ValidInput(image.Pt(4, 4), image.Pt(0, 2), nil))
}

func TestRearrangeTilesIdentity(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	want := writeQuadPNG(t, in, 4, 4)

	require.NoError(t, RearrangeTiles(in, image.Pt(2, 2), []int{0, 1, 2, 3}, out))

	assertPixelsEqual(t, want, decodePNG(t, out))
}

func TestRearrangeTilesReversed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	writeQuadPNG(t, in, 4, 4)

	require.NoError(t, RearrangeTiles(in, image.Pt(2, 2), []int{3, 2, 1, 0}, out))

	got := decodePNG(t, out)
	require.Equal(t, image.Pt(4, 4), got.Bounds().Size())

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := quadColors[3-(y/2*2+x/2)]
			wr, wg, wb, wa := want.RGBA()
			gr, gg, gb, ga := got.At(x, y).RGBA()
			if wr != gr || wg != gg || wb != gb || wa != ga {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}
}

func TestRearrangeTilesPreservesMode(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	m := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m.SetGray(x, y, color.Gray{Y: uint8(y/2*2+x/2) * 50})
		}
	}

	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, m))
	require.NoError(t, f.Close())

	require.NoError(t, RearrangeTiles(in, image.Pt(2, 2), []int{3, 2, 1, 0}, out))

	got := decodePNG(t, out)
	require.IsType(t, &image.Gray{}, got)
	assert.Equal(t, image.Pt(4, 4), got.Bounds().Size())
}

func TestRearrangeTilesInvalid(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	// 5 is not divisible by 2.
	writeQuadPNG(t, in, 5, 4)

	err := RearrangeTiles(in, image.Pt(2, 2), []int{0, 1, 2, 3}, out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArrangement)
	assert.EqualError(t, err, "The tile size or ordering are not valid for the given image")

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "destination must not be created")
}

func TestRearrangeTilesMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")

	err := RearrangeTiles(filepath.Join(dir, "missing.png"), image.Pt(2, 2), []int{0}, out)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRearrangeTilesUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.xyz")

	writeQuadPNG(t, in, 4, 4)

	err := RearrangeTiles(in, image.Pt(2, 2), []int{0, 1, 2, 3}, out)
	require.Error(t, err)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
