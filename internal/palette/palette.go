package palette

import (
	"appcolors/internal/color"
)

// Swatch is one color bucket of a palette.
type Swatch struct {
	RGB        color.RGB `json:"rgb" yaml:"rgb"`
	Population int       `json:"population" yaml:"population"`
}

// HSL returns the swatch's hue, saturation and lightness.
func (s Swatch) HSL() (h, sat, l float64) {
	return s.RGB.HSL()
}

// Palette is a set of swatches plus the swatches chosen for each target.
// It is not modified after construction.
type Palette struct {
	swatches []Swatch
	slots    map[Target]Swatch
}

// New builds a palette from swatches and classifies them into the default
// targets.
func New(swatches []Swatch) *Palette {
	own := append([]Swatch(nil), swatches...)
	return &Palette{
		swatches: own,
		slots:    classify(own, DefaultTargets()),
	}
}

// NewWithSlots builds a palette whose target slots were computed elsewhere,
// for example by a platform palette service.
func NewWithSlots(swatches []Swatch, slots map[Target]Swatch) *Palette {
	own := make(map[Target]Swatch, len(slots))
	for t, s := range slots {
		own[t] = s
	}
	return &Palette{
		swatches: append([]Swatch(nil), swatches...),
		slots:    own,
	}
}

// Swatches returns a copy of every swatch in the palette.
func (p *Palette) Swatches() []Swatch {
	if p == nil {
		return nil
	}
	return append([]Swatch(nil), p.swatches...)
}

// Swatch returns the swatch selected for target t.
func (p *Palette) Swatch(t Target) (Swatch, bool) {
	if p == nil {
		return Swatch{}, false
	}
	s, ok := p.slots[t]
	return s, ok
}

func (p *Palette) Vibrant() (Swatch, bool)      { return p.Swatch(TargetVibrant) }
func (p *Palette) DarkVibrant() (Swatch, bool)  { return p.Swatch(TargetDarkVibrant) }
func (p *Palette) LightVibrant() (Swatch, bool) { return p.Swatch(TargetLightVibrant) }
func (p *Palette) Muted() (Swatch, bool)        { return p.Swatch(TargetMuted) }
func (p *Palette) DarkMuted() (Swatch, bool)    { return p.Swatch(TargetDarkMuted) }
func (p *Palette) LightMuted() (Swatch, bool)   { return p.Swatch(TargetLightMuted) }

// Dominant returns the swatch with the highest population.
// Ties keep the first swatch encountered.
func (p *Palette) Dominant() (Swatch, bool) {
	if p == nil || len(p.swatches) == 0 {
		return Swatch{}, false
	}
	best := p.swatches[0]
	for _, s := range p.swatches[1:] {
		if s.Population > best.Population {
			best = s
		}
	}
	return best, true
}

// selectionOrder is the category priority used by SelectBestColor.
var selectionOrder = [...]Target{
	TargetDarkVibrant,
	TargetMuted,
	TargetDarkMuted,
	TargetLightVibrant,
	TargetLightMuted,
}

// SelectBestColor picks one representative color: the first present of
// dark-vibrant, muted, dark-muted, light-vibrant and light-muted, else the
// most populous swatch, else fallback.
func SelectBestColor(p *Palette, fallback color.RGB) color.RGB {
	for _, t := range selectionOrder {
		if s, ok := p.Swatch(t); ok {
			return s.RGB
		}
	}
	if s, ok := p.Dominant(); ok {
		return s.RGB
	}
	return fallback
}
