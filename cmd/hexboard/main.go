package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/boardforge/hexboard/internal/board"
	"github.com/boardforge/hexboard/internal/config"
	"github.com/boardforge/hexboard/internal/render"
)

func main() {
	var (
		configPath   = flag.String("config", "", "optional YAML board profile")
		hexSize      = flag.Float64("hex-size", 25, "hex radius (pt)")
		margin       = flag.Float64("margin", 36, "page margin (pt)")
		legendSize   = flag.Float64("legend-size", 12, "legend square size (pt)")
		bias         = flag.String("bias", "", "primary biome bias (plains, forest, desert, mountain)")
		biasStrength = flag.Float64("bias-strength", 0.35, "bias strength")
		minBiomes    = flag.Int("min-biomes", 3, "minimum distinct biomes")
		seed         = flag.Int64("seed", 0, "force seed for reproducibility")
		attempts     = flag.Int("attempts", 5, "max regeneration attempts")
		outDir       = flag.String("out", ".", "output directory")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}

	// Flags set on the command line override the profile.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hex-size":
			cfg.HexSize = *hexSize
		case "margin":
			cfg.Margin = *margin
		case "legend-size":
			cfg.LegendSize = *legendSize
		case "bias":
			cfg.Bias = *bias
		case "bias-strength":
			cfg.BiasStrength = *biasStrength
		case "min-biomes":
			cfg.MinBiomes = *minBiomes
		case "seed":
			cfg.Seed = *seed
		case "attempts":
			cfg.MaxAttempts = *attempts
		case "out":
			cfg.OutDir = *outDir
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = rand.Int63n(1 << 30)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	biasBiome, ok := cfg.BiasBiome()
	if !ok {
		biasBiome = board.Primary[rng.Intn(len(board.Primary))]
	}

	grid := board.NewGrid(render.PageWidth, render.PageHeight, cfg.Margin, cfg.HexSize)
	log.Printf("Grid %dx%d, hex %.0fpt, bias %s(%.2f), seed %d",
		grid.Cols, grid.Rows, cfg.HexSize, biasBiome, cfg.BiasStrength, cfg.Seed)

	field := board.NewField(grid, cfg.Seed, biasBiome, cfg.BiasStrength, rng)
	gen := board.NewGenerator(grid, field, cfg.MinBiomes, cfg.MaxAttempts)

	b, err := gen.Generate()
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	r := &render.Renderer{
		HexSize:    cfg.HexSize,
		Margin:     cfg.Margin,
		LegendSize: cfg.LegendSize,
		Info: render.Info{
			Seed:         cfg.Seed,
			Bias:         biasBiome,
			BiasStrength: cfg.BiasStrength,
			ElevScale:    field.ElevScale,
			MoistScale:   field.MoistScale,
			MinBiomes:    cfg.MinBiomes,
		},
	}
	path, err := r.RenderFile(b, cfg.OutDir)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	fmt.Println("Generated PDF:", path)
	fmt.Println("Re-run with: -seed", cfg.Seed)
}
