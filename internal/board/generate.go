package board

import (
	"errors"
	"fmt"
	"log"

	"github.com/boardforge/hexboard/pkg/hex"
)

// ErrDiversity reports that every generation attempt fell short of the
// minimum distinct-biome target.
var ErrDiversity = errors.New("biome diversity target not met")

// Generator runs generate → enforce → check cycles until a board satisfies
// the diversity target or attempts run out. The grid and sampler are fixed
// for the generator's lifetime; only tile contents change between attempts.
type Generator struct {
	grid        Grid
	sampler     Sampler
	minBiomes   int
	maxAttempts int
}

// NewGenerator builds a generator over grid using sampler. minBiomes is
// floored to 1.
func NewGenerator(grid Grid, sampler Sampler, minBiomes, maxAttempts int) *Generator {
	if minBiomes < 1 {
		minBiomes = 1
	}
	return &Generator{
		grid:        grid,
		sampler:     sampler,
		minBiomes:   minBiomes,
		maxAttempts: maxAttempts,
	}
}

// Generate produces a board with at least the configured number of distinct
// biomes. Each attempt rebuilds the full tile set from scratch; there is no
// incremental repair. Running out of attempts returns ErrDiversity and no
// board.
func (g *Generator) Generate() (*Board, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		b := g.generate()
		Enforce(b)
		if n := b.DistinctBiomes(); n >= g.minBiomes {
			return b, nil
		} else if attempt < g.maxAttempts {
			log.Printf("attempt %d/%d: %d distinct biomes, want %d, retrying", attempt, g.maxAttempts, n, g.minBiomes)
		}
	}
	return nil, fmt.Errorf("%w after %d attempts (want >= %d)", ErrDiversity, g.maxAttempts, g.minBiomes)
}

// generate rebuilds the entire tile set from the noise field.
func (g *Generator) generate() *Board {
	b := &Board{
		Grid:  g.grid,
		Tiles: make(map[hex.Axial]Biome, g.grid.Cols*g.grid.Rows),
	}
	for _, c := range g.grid.Coords() {
		elev, moist := g.sampler.Sample(c)
		b.Tiles[c] = Classify(elev, moist)
	}
	return b
}
