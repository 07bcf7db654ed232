package board

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/boardforge/hexboard/pkg/hex"
)

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 4

	// moistOffset shifts the moisture channel away from the elevation
	// coordinates so the two channels decorrelate without a second seed.
	moistOffset = 100

	scaleMin = 0.9
	scaleMax = 2.0
)

// Sampler produces the elevation and moisture channel values for a tile
// coordinate. The indirection keeps the diversity loop testable with canned
// fields.
type Sampler interface {
	Sample(c hex.Axial) (elev, moist float64)
}

// Field samples dual-channel Perlin noise over a grid and applies an
// additive biome bias. For a fixed seed, scales, and bias a Field is a pure
// function of the coordinate.
type Field struct {
	noise *perlin.Perlin
	grid  Grid

	// Channel scale factors, drawn once at construction and held for the
	// field's lifetime, retry attempts included. Both sampling axes
	// normalise by ElevScale; MoistScale only feeds the footer line.
	ElevScale  float64
	MoistScale float64

	Bias         Biome
	BiasStrength float64
}

// NewField builds a noise field for grid, seeding the noise source with
// seed and drawing the two channel scale factors from rng.
func NewField(grid Grid, seed int64, bias Biome, strength float64, rng *rand.Rand) *Field {
	return &Field{
		noise:        perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		grid:         grid,
		ElevScale:    scaleMin + rng.Float64()*(scaleMax-scaleMin),
		MoistScale:   scaleMin + rng.Float64()*(scaleMax-scaleMin),
		Bias:         bias,
		BiasStrength: strength,
	}
}

// Sample returns the biased elevation and moisture values at c. Values are
// not clamped and may leave the nominal noise range after bias.
func (f *Field) Sample(c hex.Axial) (float64, float64) {
	nx := float64(c.Q) / float64(f.grid.Cols) * f.ElevScale
	ny := float64(c.R) / float64(f.grid.Rows) * f.ElevScale
	elev := f.noise.Noise2D(nx, ny)
	moist := f.noise.Noise2D(nx+moistOffset, ny+moistOffset)
	return f.applyBias(elev, moist)
}

// applyBias nudges the raw channel values toward the configured primary
// biome. Water never acts as a bias target, so the zero value leaves
// samples untouched.
func (f *Field) applyBias(elev, moist float64) (float64, float64) {
	switch f.Bias {
	case Desert:
		moist -= f.BiasStrength
	case Forest:
		moist += f.BiasStrength
	case Mountain:
		elev += f.BiasStrength
	case Plains:
		elev -= 0.2 * f.BiasStrength
		moist += 0.1 * f.BiasStrength
	}
	return elev, moist
}
