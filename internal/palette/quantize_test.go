package palette

import (
	"bytes"
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"appcolors/internal/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripes builds a 10-pixel-wide image with one row per pixel count entry.
func stripes(t *testing.T, rows []struct {
	c     color.RGB
	count int
}) *image.NRGBA {
	t.Helper()
	total := 0
	for _, r := range rows {
		total += r.count
	}
	img := image.NewNRGBA(image.Rect(0, 0, total, 1))
	x := 0
	for _, r := range rows {
		red, g, b := r.c.RGB255()
		for i := 0; i < r.count; i++ {
			img.SetNRGBA(x, 0, stdcolor.NRGBA{R: red, G: g, B: b, A: 0xFF})
			x++
		}
	}
	return img
}

func TestMedianCut_FewColorsAreExact(t *testing.T) {
	img := stripes(t, []struct {
		c     color.RGB
		count int
	}{
		{0xFF0000, 10},
		{0x00FF00, 50},
		{0x0000FF, 30},
	})

	p, err := NewMedianCut(16).Generate(img)
	require.NoError(t, err)

	assert.Equal(t, []Swatch{
		{RGB: 0x00FF00, Population: 50},
		{RGB: 0x0000FF, Population: 30},
		{RGB: 0xFF0000, Population: 10},
	}, p.Swatches())

	// None of the three lands in a slot SelectBestColor consults, so the
	// most populous swatch is used.
	assert.Equal(t, color.RGB(0x00FF00), SelectBestColor(p, 0))
}

func TestMedianCut_ReducesToMaxColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 256, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 256; x++ {
			img.SetNRGBA(x, y, stdcolor.NRGBA{R: uint8(x), G: uint8(255 - x), B: uint8(y * 60), A: 0xFF})
		}
	}

	p, err := NewMedianCut(4).Generate(img)
	require.NoError(t, err)

	swatches := p.Swatches()
	assert.Len(t, swatches, 4)
	total := 0
	for _, s := range swatches {
		total += s.Population
	}
	assert.Equal(t, 256*4, total)
}

func TestMedianCut_SkipsTransparentPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, stdcolor.NRGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF})

	p, err := NewMedianCut(0).Generate(img)
	require.NoError(t, err)
	assert.Equal(t, []Swatch{{RGB: 0x3F51B5, Population: 1}}, p.Swatches())
}

func TestMedianCut_FullyTransparent(t *testing.T) {
	p, err := NewMedianCut(16).Generate(image.NewNRGBA(image.Rect(0, 0, 8, 8)))
	require.NoError(t, err)
	assert.Empty(t, p.Swatches())
	assert.Equal(t, color.Unset, SelectBestColor(p, 0))
}

func TestMedianCut_EmptyImage(t *testing.T) {
	_, err := NewMedianCut(16).Generate(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = NewMedianCut(16).Generate(nil)
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestMedianCut_NonNRGBASource(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, stdcolor.RGBA{R: 0x88, G: 0x99, B: 0xAA, A: 0xFF})
		}
	}

	p, err := NewMedianCut(16).Generate(img)
	require.NoError(t, err)
	assert.Equal(t, []Swatch{{RGB: 0x8899AA, Population: 9}}, p.Swatches())
}

func TestRasterize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			src.SetNRGBA(x, y, stdcolor.NRGBA{R: 0x1A, G: 0x23, B: 0x7E, A: 0xFF})
		}
	}

	dst := Rasterize(src, 32)
	assert.Equal(t, image.Rect(0, 0, 32, 32), dst.Bounds())
	got := dst.NRGBAAt(16, 16)
	assert.InDelta(t, 0x1A, int(got.R), 1)
	assert.InDelta(t, 0x23, int(got.G), 1)
	assert.InDelta(t, 0x7E, int(got.B), 1)
	assert.InDelta(t, 0xFF, int(got.A), 1)

	assert.Equal(t, image.Rect(0, 0, DefaultIconSize, DefaultIconSize), Rasterize(src, 0).Bounds())
	assert.Equal(t, image.Rect(0, 0, 8, 8), Rasterize(nil, 8).Bounds())
}

func TestDecode(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())

	_, err = Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestDecodeFileAndExtract(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, stdcolor.NRGBA{R: 0x88, G: 0x99, B: 0xAA, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	img, err := DecodeFile(path)
	require.NoError(t, err)

	p, err := Extract(img, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, color.RGB(0x8899AA), SelectBestColor(p, color.Unset))

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
