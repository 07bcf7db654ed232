package board

// Classification thresholds. Rules are evaluated top to bottom with strict
// comparisons; a value landing exactly on a threshold falls to the next
// rule.
const (
	waterMax    = -0.05
	mountainMin = 0.55
	desertMax   = -0.1
	forestMin   = 0.25
)

// Classify maps an (elevation, moisture) sample to a biome. It is a pure
// total function; the rule order is fixed and first match wins.
func Classify(elev, moist float64) Biome {
	switch {
	case elev < waterMax:
		return Water
	case elev > mountainMin:
		return Mountain
	case moist < desertMax:
		return Desert
	case moist > forestMin:
		return Forest
	default:
		return Plains
	}
}
