package board

import (
	"math"

	"github.com/boardforge/hexboard/pkg/hex"
)

// Grid holds the derived board geometry for one configuration: column and
// row counts, the bounding box of the drawn hexes, and the offsets that
// centre that box inside the page margins. A Grid is computed once and
// reused across every generation attempt.
type Grid struct {
	Cols int
	Rows int

	Width  float64 // bounding-box width of the drawn hexes
	Height float64 // bounding-box height

	OffsetX float64
	OffsetY float64
}

// NewGrid derives grid dimensions and centring offsets from page size,
// margin, and hex radius. The bottom reserves a double margin so the legend
// band never collides with the grid. A page too small for a single hex
// yields an empty zero-column or zero-row grid rather than an error.
func NewGrid(pageW, pageH, margin, hexSize float64) Grid {
	h := 1.5 * hexSize          // centre-to-centre horizontal step
	v := math.Sqrt(3) * hexSize // centre-to-centre vertical step

	availW := pageW - 2*margin
	availH := pageH - 3*margin

	cols := int(math.Floor(availW / h))
	rows := int(math.Floor(availH / v))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	gridW := h*float64(cols-1) + 2*hexSize
	gridH := v*float64(rows-1) + 2*hexSize

	return Grid{
		Cols:    cols,
		Rows:    rows,
		Width:   gridW,
		Height:  gridH,
		OffsetX: margin + hexSize + (availW-gridW)/2,
		OffsetY: margin + hexSize + (availH-gridH)/2,
	}
}

// Coords returns every grid coordinate in column-major, row-minor order.
// Generation and smoothing both walk this sequence; the fixed order keeps
// runs reproducible.
func (g Grid) Coords() []hex.Axial {
	res := make([]hex.Axial, 0, g.Cols*g.Rows)
	for q := 0; q < g.Cols; q++ {
		for r := 0; r < g.Rows; r++ {
			res = append(res, hex.Axial{Q: q, R: r})
		}
	}
	return res
}
