package board

import "github.com/boardforge/hexboard/pkg/hex"

// Enforce applies three neighbor-consistency passes to b, one sweep each,
// in a fixed order:
//
//  1. desert touching forest becomes plains
//  2. desert touching anything outside {plains, mountain, desert} becomes
//     plains
//  3. a mountain or desert with no same-biome neighbor takes the most
//     frequent biome among its neighbors
//
// No pass iterates to a fixed point.
func Enforce(b *Board) {
	passDesertForest(b)
	passDesertWater(b)
	passIsolated(b)
}

type labeled struct {
	coord hex.Axial
	biome Biome
}

// snapshot captures (coordinate, biome) pairs in column-major, row-minor
// order. Each pass iterates its own snapshot but reads neighbors from the
// live tile map, so relabels made earlier in a sweep are visible to later
// tiles.
func snapshot(b *Board) []labeled {
	res := make([]labeled, 0, len(b.Tiles))
	for _, c := range b.Grid.Coords() {
		res = append(res, labeled{coord: c, biome: b.Tiles[c]})
	}
	return res
}

func passDesertForest(b *Board) {
	for _, t := range snapshot(b) {
		if t.biome != Desert {
			continue
		}
		for _, n := range b.Neighbors(t.coord) {
			if b.Tiles[n] == Forest {
				b.Tiles[t.coord] = Plains
				break
			}
		}
	}
}

func passDesertWater(b *Board) {
	for _, t := range snapshot(b) {
		if t.biome != Desert {
			continue
		}
		for _, n := range b.Neighbors(t.coord) {
			// Water, or forest the first pass did not reach.
			if bio := b.Tiles[n]; bio != Plains && bio != Mountain && bio != Desert {
				b.Tiles[t.coord] = Plains
				break
			}
		}
	}
}

func passIsolated(b *Board) {
	for _, t := range snapshot(b) {
		if t.biome != Mountain && t.biome != Desert {
			continue
		}
		nbrs := b.Neighbors(t.coord)
		if len(nbrs) == 0 {
			continue
		}
		isolated := true
		for _, n := range nbrs {
			if b.Tiles[n] == t.biome {
				isolated = false
				break
			}
		}
		if isolated {
			b.Tiles[t.coord] = majority(b, nbrs)
		}
	}
}

// majority returns the most frequent biome among coords. Ties go to the
// biome seen earliest in direction order.
func majority(b *Board, coords []hex.Axial) Biome {
	counts := make(map[Biome]int, len(coords))
	best := 0
	for _, c := range coords {
		counts[b.Tiles[c]]++
		if counts[b.Tiles[c]] > best {
			best = counts[b.Tiles[c]]
		}
	}
	for _, c := range coords {
		if counts[b.Tiles[c]] == best {
			return b.Tiles[c]
		}
	}
	return Plains // unreachable for non-empty coords
}
