package planet

import (
	"fmt"
	"math/rand"
)

var planetSuffixes = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"Prime", "Alpha", "Beta", "Gamma", "Major", "Minor", "Core", "Outer",
}

// Name builds the display name of the index-th planet around sunName.
func Name(sunName string, index int) string {
	return fmt.Sprintf("%s %s", sunName, planetSuffixes[index%len(planetSuffixes)])
}

// RandomType rolls a planet type, weighting terrestrial planets more heavily
func RandomType(rng *rand.Rand) PlanetType {
	types := []PlanetType{
		PlanetTypeBarren,
		PlanetTypeTerrestrial,
		PlanetTypeGasGiant,
		PlanetTypeIce,
		PlanetTypeVolcanic,
	}

	weights := []int{15, 40, 20, 15, 10} // Terrestrial is 40% chance
	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}

	roll := rng.Intn(totalWeight)
	currentWeight := 0
	for i, weight := range weights {
		currentWeight += weight
		if roll < currentWeight {
			return types[i]
		}
	}

	return PlanetTypeTerrestrial // fallback
}

// RandomSize returns a planet size in 50..200
func RandomSize(rng *rand.Rand) int {
	return 50 + rng.Intn(151)
}

// MaxPopulationFor scales the population cap with size; gas giants hold none
func MaxPopulationFor(t PlanetType, size int) int64 {
	switch t {
	case PlanetTypeGasGiant:
		return 0
	case PlanetTypeTerrestrial:
		return int64(size) * 10000
	default:
		return int64(size) * 2500
	}
}

// CultureOutput is the culture an owned planet radiates each turn.
// Homeworlds get a flat bonus; unowned planets radiate nothing.
func CultureOutput(p *Planet) int {
	if !p.Owned() {
		return 0
	}
	out := int(p.Population / 50000)
	if p.Homeworld {
		out += 20
	}
	return max(out, 1)
}

// ScanRadius is how far an owned planet's scanners reach.
func ScanRadius(p *Planet) int {
	if !p.Owned() {
		return 0
	}
	r := 2 + p.Size/100
	if p.Homeworld {
		r += 2
	}
	return r
}
