package palette

import (
	"sort"

	"appcolors/internal/color"
)

// AllTargets lists every target in display order.
func AllTargets() []Target {
	return []Target{
		TargetVibrant,
		TargetDarkVibrant,
		TargetLightVibrant,
		TargetMuted,
		TargetDarkMuted,
		TargetLightMuted,
	}
}

// MarshalText encodes the target name.
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Summary is a serializable view of a palette.
type Summary struct {
	Best     color.RGB         `json:"best" yaml:"best"`
	Slots    map[string]Swatch `json:"slots" yaml:"slots"`
	Swatches []Swatch          `json:"swatches" yaml:"swatches"`
}

// Summarize reports the filled slots, all swatches by descending population
// and the color SelectBestColor picks.
func Summarize(p *Palette) Summary {
	s := Summary{
		Best:  SelectBestColor(p, color.Unset),
		Slots: make(map[string]Swatch),
	}
	for _, t := range AllTargets() {
		if sw, ok := p.Swatch(t); ok {
			s.Slots[t.String()] = sw
		}
	}
	s.Swatches = p.Swatches()
	sortByPopulation(s.Swatches)
	return s
}

func sortByPopulation(swatches []Swatch) {
	sort.SliceStable(swatches, func(i, j int) bool {
		return swatches[i].Population > swatches[j].Population
	})
}
