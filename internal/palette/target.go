package palette

import "math"

// Target describes the lightness and saturation window a swatch must fall
// into to be chosen for a palette slot.
type Target int

const (
	TargetLightVibrant Target = iota
	TargetVibrant
	TargetDarkVibrant
	TargetLightMuted
	TargetMuted
	TargetDarkMuted
)

func (t Target) String() string {
	switch t {
	case TargetLightVibrant:
		return "light-vibrant"
	case TargetVibrant:
		return "vibrant"
	case TargetDarkVibrant:
		return "dark-vibrant"
	case TargetLightMuted:
		return "light-muted"
	case TargetMuted:
		return "muted"
	case TargetDarkMuted:
		return "dark-muted"
	default:
		return "unknown"
	}
}

const (
	weightSaturation = 0.24
	weightLightness  = 0.52
	weightPopulation = 0.24
)

type window struct {
	min, target, max float64
}

func (w window) contains(v float64) bool {
	return v >= w.min && v <= w.max
}

// TargetSpec is the lightness/saturation window of one target.
type TargetSpec struct {
	Target     Target
	lightness  window
	saturation window
}

var (
	lightLuma  = window{min: 0.55, target: 0.74, max: 1}
	normalLuma = window{min: 0.3, target: 0.5, max: 0.7}
	darkLuma   = window{min: 0, target: 0.26, max: 0.45}

	vibrantSat = window{min: 0.35, target: 1, max: 1}
	mutedSat   = window{min: 0, target: 0.3, max: 0.4}
)

// DefaultTargets returns the six standard targets in the order they claim
// swatches.
func DefaultTargets() []TargetSpec {
	return []TargetSpec{
		{Target: TargetLightVibrant, lightness: lightLuma, saturation: vibrantSat},
		{Target: TargetVibrant, lightness: normalLuma, saturation: vibrantSat},
		{Target: TargetDarkVibrant, lightness: darkLuma, saturation: vibrantSat},
		{Target: TargetLightMuted, lightness: lightLuma, saturation: mutedSat},
		{Target: TargetMuted, lightness: normalLuma, saturation: mutedSat},
		{Target: TargetDarkMuted, lightness: darkLuma, saturation: mutedSat},
	}
}

// classify assigns at most one swatch to each target. A swatch is claimed
// by at most one target.
func classify(swatches []Swatch, targets []TargetSpec) map[Target]Swatch {
	slots := make(map[Target]Swatch, len(targets))
	if len(swatches) == 0 {
		return slots
	}

	maxPopulation := 0
	for _, s := range swatches {
		if s.Population > maxPopulation {
			maxPopulation = s.Population
		}
	}

	used := make([]bool, len(swatches))
	for _, ts := range targets {
		best := -1
		bestScore := math.Inf(-1)
		for i, s := range swatches {
			if used[i] {
				continue
			}
			_, sat, l := s.HSL()
			if !ts.saturation.contains(sat) || !ts.lightness.contains(l) {
				continue
			}
			score := ts.score(sat, l, s.Population, maxPopulation)
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best >= 0 {
			used[best] = true
			slots[ts.Target] = swatches[best]
		}
	}
	return slots
}

func (ts TargetSpec) score(sat, l float64, population, maxPopulation int) float64 {
	score := weightSaturation*(1-math.Abs(sat-ts.saturation.target)) +
		weightLightness*(1-math.Abs(l-ts.lightness.target))
	if maxPopulation > 0 {
		score += weightPopulation * float64(population) / float64(maxPopulation)
	}
	return score
}
