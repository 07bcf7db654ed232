package board

import "github.com/boardforge/hexboard/pkg/hex"

// Board is one generated tile set over a grid. Tiles holds exactly one
// biome per coordinate in [0,Cols)×[0,Rows).
type Board struct {
	Grid  Grid
	Tiles map[hex.Axial]Biome
}

// Neighbors returns the neighbors of c that exist on the board, in the
// fixed direction order. Edge and corner tiles have fewer than six.
func (b *Board) Neighbors(c hex.Axial) []hex.Axial {
	res := make([]hex.Axial, 0, 6)
	for _, d := range hex.Directions {
		n := c.Add(d)
		if _, ok := b.Tiles[n]; ok {
			res = append(res, n)
		}
	}
	return res
}

// DistinctBiomes returns the number of distinct labels on the board.
func (b *Board) DistinctBiomes() int {
	seen := make(map[Biome]struct{}, len(All))
	for _, bio := range b.Tiles {
		seen[bio] = struct{}{}
	}
	return len(seen)
}
