package board

import (
	"math/rand"
	"testing"

	"github.com/boardforge/hexboard/pkg/hex"
)

// fill builds a board over a Cols×Rows grid, all plains, then applies the
// given overrides.
func fill(cols, rows int, overrides map[hex.Axial]Biome) *Board {
	g := Grid{Cols: cols, Rows: rows}
	b := &Board{Grid: g, Tiles: make(map[hex.Axial]Biome, cols*rows)}
	for _, c := range g.Coords() {
		b.Tiles[c] = Plains
	}
	for c, bio := range overrides {
		b.Tiles[c] = bio
	}
	return b
}

func TestPassDesertForest(t *testing.T) {
	b := fill(2, 1, map[hex.Axial]Biome{
		{Q: 0, R: 0}: Desert,
		{Q: 1, R: 0}: Forest,
	})
	passDesertForest(b)
	if b.Tiles[hex.Axial{Q: 0, R: 0}] != Plains {
		t.Fatalf("desert next to forest = %v, want plains", b.Tiles[hex.Axial{Q: 0, R: 0}])
	}
	if b.Tiles[hex.Axial{Q: 1, R: 0}] != Forest {
		t.Fatalf("forest neighbor relabeled to %v", b.Tiles[hex.Axial{Q: 1, R: 0}])
	}
}

func TestPassDesertWater(t *testing.T) {
	b := fill(2, 1, map[hex.Axial]Biome{
		{Q: 0, R: 0}: Desert,
		{Q: 1, R: 0}: Water,
	})
	passDesertForest(b)
	if b.Tiles[hex.Axial{Q: 0, R: 0}] != Desert {
		t.Fatalf("first pass touched desert next to water")
	}
	passDesertWater(b)
	if b.Tiles[hex.Axial{Q: 0, R: 0}] != Plains {
		t.Fatalf("desert next to water = %v, want plains", b.Tiles[hex.Axial{Q: 0, R: 0}])
	}
}

func TestPassDesertSurvivesDryNeighbors(t *testing.T) {
	b := fill(3, 1, map[hex.Axial]Biome{
		{Q: 0, R: 0}: Mountain,
		{Q: 1, R: 0}: Desert,
		{Q: 2, R: 0}: Desert,
	})
	passDesertForest(b)
	passDesertWater(b)
	if b.Tiles[hex.Axial{Q: 1, R: 0}] != Desert || b.Tiles[hex.Axial{Q: 2, R: 0}] != Desert {
		t.Fatalf("desert with only plains/mountain/desert neighbors was relabeled")
	}
}

func TestPassIsolatedMountain(t *testing.T) {
	b := fill(3, 3, map[hex.Axial]Biome{
		{Q: 1, R: 1}: Mountain,
	})
	passIsolated(b)
	if b.Tiles[hex.Axial{Q: 1, R: 1}] != Plains {
		t.Fatalf("isolated mountain = %v, want plains", b.Tiles[hex.Axial{Q: 1, R: 1}])
	}
}

func TestPassIsolatedKeepsPairedMountains(t *testing.T) {
	b := fill(3, 3, map[hex.Axial]Biome{
		{Q: 1, R: 1}: Mountain,
		{Q: 1, R: 2}: Mountain,
	})
	passIsolated(b)
	if b.Tiles[hex.Axial{Q: 1, R: 1}] != Mountain || b.Tiles[hex.Axial{Q: 1, R: 2}] != Mountain {
		t.Fatalf("adjacent mountains were relabeled")
	}
}

func TestMajorityTieBreaksOnDirectionOrder(t *testing.T) {
	// Neighbors of (1,1) in direction order: (2,1) (0,1) (2,0) (0,2) (1,2) (1,0).
	// Forest, water, and plains each appear twice; forest occurs first.
	b := fill(3, 3, map[hex.Axial]Biome{
		{Q: 1, R: 1}: Desert,
		{Q: 2, R: 1}: Forest,
		{Q: 0, R: 1}: Water,
		{Q: 2, R: 0}: Forest,
		{Q: 0, R: 2}: Water,
		{Q: 1, R: 2}: Plains,
		{Q: 1, R: 0}: Plains,
		{Q: 0, R: 0}: Forest,
		{Q: 2, R: 2}: Water,
	})
	passIsolated(b)
	if got := b.Tiles[hex.Axial{Q: 1, R: 1}]; got != Forest {
		t.Fatalf("tie-broken majority = %v, want forest", got)
	}
}

func TestEnforceLeavesNoDesertByForestOrWater(t *testing.T) {
	// After the first two passes no desert may touch forest or water.
	grid := Grid{Cols: 14, Rows: 15}
	field := NewField(grid, 1234, Desert, 0.35, rand.New(rand.NewSource(9)))
	gen := NewGenerator(grid, field, 1, 1)
	raw := gen.generate()
	passDesertForest(raw)
	passDesertWater(raw)
	for _, c := range raw.Grid.Coords() {
		if raw.Tiles[c] != Desert {
			continue
		}
		for _, n := range raw.Neighbors(c) {
			if raw.Tiles[n] == Forest || raw.Tiles[n] == Water {
				t.Fatalf("desert at %v touches %v at %v after pass 2", c, raw.Tiles[n], n)
			}
		}
	}
}

func TestIsolatedRelabelCanRecreateDesertWaterContact(t *testing.T) {
	// The isolation pass converts a lone mountain to its majority neighbor.
	// When that majority is desert and a water tile sits alongside, the
	// desert/water separation from the earlier passes is not restored.
	b := fill(3, 3, map[hex.Axial]Biome{
		{Q: 1, R: 1}: Mountain,
		{Q: 0, R: 1}: Desert,
		{Q: 1, R: 0}: Desert,
		{Q: 2, R: 1}: Desert,
		{Q: 2, R: 0}: Water,
	})
	passIsolated(b)
	center := b.Tiles[hex.Axial{Q: 1, R: 1}]
	if center != Desert {
		t.Fatalf("lone mountain = %v, want desert (majority of neighbors)", center)
	}
	touchesWater := false
	for _, n := range b.Neighbors(hex.Axial{Q: 1, R: 1}) {
		if b.Tiles[n] == Water {
			touchesWater = true
		}
	}
	if !touchesWater {
		t.Fatalf("expected the relabeled desert to touch water")
	}
}

func TestEnforceSingleTileGrid(t *testing.T) {
	// A 1x1 grid has no neighbors; the isolation pass must leave it alone.
	b := fill(1, 1, map[hex.Axial]Biome{{Q: 0, R: 0}: Mountain})
	Enforce(b)
	if b.Tiles[hex.Axial{Q: 0, R: 0}] != Mountain {
		t.Fatalf("lone tile on 1x1 grid = %v, want mountain", b.Tiles[hex.Axial{Q: 0, R: 0}])
	}
}
