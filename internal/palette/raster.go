package palette

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// DefaultIconSize is the edge length icons are rasterized to before
// quantization.
const DefaultIconSize = 112

// Decode reads a PNG, JPEG, GIF or WebP image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Extract rasterizes img to size and runs gen over it. A nil gen uses a
// MedianCut with DefaultMaxColors.
func Extract(img image.Image, size int, gen Generator) (*Palette, error) {
	if gen == nil {
		gen = NewMedianCut(DefaultMaxColors)
	}
	return gen.Generate(Rasterize(img, size))
}

// Rasterize scales img into a size x size NRGBA buffer.
func Rasterize(img image.Image, size int) *image.NRGBA {
	if size <= 0 {
		size = DefaultIconSize
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if img == nil || img.Bounds().Empty() {
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
