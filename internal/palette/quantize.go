package palette

import (
	"errors"
	"image"
	"sort"

	"appcolors/internal/color"

	"golang.org/x/image/draw"
)

const (
	// DefaultMaxColors matches the swatch count platform palettes use for icons.
	DefaultMaxColors = 16

	quantizeBits  = 5
	quantizeShift = 8 - quantizeBits
	quantizeMask  = (1 << quantizeBits) - 1

	// Pixels at or below this alpha do not contribute to the histogram.
	defaultAlphaThreshold = 0
)

// ErrEmptyImage is returned for images without pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Generator turns an image into a palette.
type Generator interface {
	Generate(img image.Image) (*Palette, error)
}

// MedianCut quantizes an image by recursively splitting the RGB histogram
// at the population median of its widest channel.
type MedianCut struct {
	MaxColors      int
	AlphaThreshold uint8
}

// NewMedianCut returns a MedianCut producing at most maxColors swatches.
func NewMedianCut(maxColors int) *MedianCut {
	if maxColors <= 0 {
		maxColors = DefaultMaxColors
	}
	return &MedianCut{MaxColors: maxColors, AlphaThreshold: defaultAlphaThreshold}
}

// Generate implements Generator.
func (m *MedianCut) Generate(img image.Image) (*Palette, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	maxColors := m.MaxColors
	if maxColors <= 0 {
		maxColors = DefaultMaxColors
	}

	bins := m.histogram(toNRGBA(img))
	if len(bins) <= maxColors {
		swatches := make([]Swatch, 0, len(bins))
		for _, b := range bins {
			swatches = append(swatches, b.swatch())
		}
		return New(swatches), nil
	}

	boxes := splitBoxes(bins, maxColors)
	swatches := make([]Swatch, 0, len(boxes))
	for _, box := range boxes {
		swatches = append(swatches, box.swatch())
	}
	return New(swatches), nil
}

type colorBin struct {
	rq, gq, bq uint8
	// Channel sums of the original pixels, so averages are not biased by
	// quantization.
	rSum, gSum, bSum int
	count            int
}

func (b colorBin) swatch() Swatch {
	return Swatch{
		RGB:        color.FromRGB255(uint8(b.rSum/b.count), uint8(b.gSum/b.count), uint8(b.bSum/b.count)),
		Population: b.count,
	}
}

func (b colorBin) axis(a int) uint8 {
	switch a {
	case 0:
		return b.rq
	case 1:
		return b.gq
	default:
		return b.bq
	}
}

func (m *MedianCut) histogram(img *image.NRGBA) []colorBin {
	index := make(map[int]int)
	var bins []colorBin

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[(y-bounds.Min.Y)*img.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			px := row[x*4 : x*4+4]
			if px[3] <= m.AlphaThreshold {
				continue
			}
			rq := px[0] >> quantizeShift & quantizeMask
			gq := px[1] >> quantizeShift & quantizeMask
			bq := px[2] >> quantizeShift & quantizeMask
			key := int(rq)<<(2*quantizeBits) | int(gq)<<quantizeBits | int(bq)

			i, ok := index[key]
			if !ok {
				i = len(bins)
				index[key] = i
				bins = append(bins, colorBin{rq: rq, gq: gq, bq: bq})
			}
			bins[i].rSum += int(px[0])
			bins[i].gSum += int(px[1])
			bins[i].bSum += int(px[2])
			bins[i].count++
		}
	}

	sort.Slice(bins, func(i, j int) bool {
		if bins[i].count != bins[j].count {
			return bins[i].count > bins[j].count
		}
		return keyOf(bins[i]) < keyOf(bins[j])
	})
	return bins
}

func keyOf(b colorBin) int {
	return int(b.rq)<<(2*quantizeBits) | int(b.gq)<<quantizeBits | int(b.bq)
}

type colorBox struct {
	bins       []colorBin
	population int
	min, max   [3]uint8
}

func newColorBox(bins []colorBin) colorBox {
	box := colorBox{bins: bins}
	for a := 0; a < 3; a++ {
		box.min[a] = quantizeMask
	}
	for _, b := range bins {
		box.population += b.count
		for a := 0; a < 3; a++ {
			v := b.axis(a)
			if v < box.min[a] {
				box.min[a] = v
			}
			if v > box.max[a] {
				box.max[a] = v
			}
		}
	}
	return box
}

func (b colorBox) volume() int {
	v := 1
	for a := 0; a < 3; a++ {
		v *= int(b.max[a]-b.min[a]) + 1
	}
	return v
}

func (b colorBox) canSplit() bool {
	return len(b.bins) > 1
}

func (b colorBox) longestAxis() int {
	longest, width := 0, -1
	for a := 0; a < 3; a++ {
		if w := int(b.max[a] - b.min[a]); w > width {
			longest, width = a, w
		}
	}
	return longest
}

func (b colorBox) split() (colorBox, colorBox) {
	axis := b.longestAxis()
	ordered := append([]colorBin(nil), b.bins...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].axis(axis) < ordered[j].axis(axis)
	})

	half := b.population / 2
	at, cumulative := len(ordered)/2, 0
	for i, bin := range ordered {
		cumulative += bin.count
		if cumulative >= half {
			at = i + 1
			break
		}
	}
	if at >= len(ordered) {
		at = len(ordered) - 1
	}
	if at <= 0 {
		at = 1
	}
	return newColorBox(ordered[:at]), newColorBox(ordered[at:])
}

func (b colorBox) swatch() Swatch {
	var r, g, bl int
	for _, bin := range b.bins {
		r += bin.rSum
		g += bin.gSum
		bl += bin.bSum
	}
	return Swatch{
		RGB:        color.FromRGB255(uint8(r/b.population), uint8(g/b.population), uint8(bl/b.population)),
		Population: b.population,
	}
}

// splitBoxes repeatedly splits the largest-volume splittable box until
// target boxes exist or nothing can be split.
func splitBoxes(bins []colorBin, target int) []colorBox {
	boxes := []colorBox{newColorBox(bins)}
	for len(boxes) < target {
		pick := -1
		for i, box := range boxes {
			if !box.canSplit() {
				continue
			}
			if pick < 0 || box.volume() > boxes[pick].volume() ||
				(box.volume() == boxes[pick].volume() && box.population > boxes[pick].population) {
				pick = i
			}
		}
		if pick < 0 {
			break
		}
		left, right := boxes[pick].split()
		boxes[pick] = left
		boxes = append(boxes, right)
	}
	return boxes
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
