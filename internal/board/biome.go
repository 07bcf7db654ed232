package board

import "fmt"

// Biome is the terrain classification assigned to a tile.
type Biome int

const (
	Water Biome = iota
	Plains
	Forest
	Desert
	Mountain
)

// All lists every biome in legend order.
var All = []Biome{Water, Plains, Forest, Desert, Mountain}

// Primary lists the biomes eligible as a bias target (everything but water).
var Primary = []Biome{Plains, Forest, Desert, Mountain}

var biomeNames = map[Biome]string{
	Water:    "water",
	Plains:   "plains",
	Forest:   "forest",
	Desert:   "desert",
	Mountain: "mountain",
}

var biomeLabels = map[Biome]string{
	Water:    "Water",
	Plains:   "Plains",
	Forest:   "Forest",
	Desert:   "Desert",
	Mountain: "Mountain",
}

func (b Biome) String() string { return biomeNames[b] }

// Label returns the display name used in the legend.
func (b Biome) Label() string { return biomeLabels[b] }

// IsPrimary reports whether b may be used as a bias target.
func (b Biome) IsPrimary() bool { return b != Water }

// ParseBiome maps a lowercase biome name to its Biome.
func ParseBiome(name string) (Biome, error) {
	for b, n := range biomeNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown biome %q", name)
}
