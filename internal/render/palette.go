package render

import "github.com/boardforge/hexboard/internal/board"

type rgb struct {
	r, g, b int
}

// palette maps each biome to its fill color.
var palette = map[board.Biome]rgb{
	board.Water:    {74, 120, 199},
	board.Plains:   {140, 189, 117},
	board.Forest:   {28, 87, 51},
	board.Desert:   {237, 212, 120},
	board.Mountain: {102, 87, 69},
}
