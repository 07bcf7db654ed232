package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/boardforge/hexboard/internal/board"
	"github.com/boardforge/hexboard/pkg/hex"
)

// US Letter page size in points.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

// Info carries the generation parameters echoed on the footer line.
type Info struct {
	Seed         int64
	Bias         board.Biome
	BiasStrength float64
	ElevScale    float64
	MoistScale   float64
	MinBiomes    int
}

// Renderer materializes a generated board as a one-page PDF: the hex grid,
// a biome legend band at the bottom, and a footer line of generation
// parameters.
type Renderer struct {
	HexSize    float64
	Margin     float64
	LegendSize float64
	Info       Info
}

// Render draws b to w as a PDF document. Board geometry is kept in
// print coordinates (origin bottom-left, y up) and flipped per primitive,
// since the PDF surface's y axis runs downward.
func (r *Renderer) Render(b *board.Board, w io.Writer) error {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.AddPage()
	doc.SetLineWidth(0.3)
	doc.SetDrawColor(0, 0, 0)

	r.drawTiles(doc, b)
	r.drawLegend(doc)
	r.drawFooter(doc, b.Grid)

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// RenderFile renders b into dir under a timestamped name and returns the
// written path.
func (r *Renderer) RenderFile(b *board.Board, dir string) (string, error) {
	path, err := filepath.Abs(filepath.Join(dir, OutputName(r.Info.Seed, time.Now())))
	if err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	if err := r.Render(b, f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close output file: %w", err)
	}
	return path, nil
}

// OutputName returns the timestamped artifact name for a seed.
func OutputName(seed int64, now time.Time) string {
	return fmt.Sprintf("hex_map_%s_%d.pdf", now.Format("20060102_150405"), seed)
}

func (r *Renderer) drawTiles(doc *fpdf.Fpdf, b *board.Board) {
	for _, c := range b.Grid.Coords() {
		px, py := c.ToPixel(r.HexSize)
		cx := px + b.Grid.OffsetX
		cy := py + b.Grid.OffsetY

		col := palette[b.Tiles[c]]
		doc.SetFillColor(col.r, col.g, col.b)

		corners := hex.Corners(cx, cy, r.HexSize)
		pts := make([]fpdf.PointType, len(corners))
		for i, p := range corners {
			pts[i] = fpdf.PointType{X: p.X, Y: PageHeight - p.Y}
		}
		doc.Polygon(pts, "FD")
	}
}

// drawLegend lays one swatch+name entry per biome in a band centred at the
// bottom of the page.
func (r *Renderer) drawLegend(doc *fpdf.Fpdf) {
	const (
		gapSwatch = 14 // swatch to label
		gapEntry  = 12 // label to next swatch
		fontSize  = 9
	)
	doc.SetFont("Helvetica", "", fontSize)
	doc.SetTextColor(0, 0, 0)

	widths := make([]float64, len(board.All))
	total := float64(-gapEntry)
	for i, b := range board.All {
		widths[i] = doc.GetStringWidth(b.Label())
		total += r.LegendSize + gapSwatch + widths[i] + gapEntry
	}

	lx := (PageWidth - total) / 2
	ly := r.Margin/2 + 8 // baseline band, in print coordinates
	for i, b := range board.All {
		col := palette[b]
		doc.SetFillColor(col.r, col.g, col.b)
		doc.Rect(lx, PageHeight-ly-r.LegendSize, r.LegendSize, r.LegendSize, "FD")
		doc.Text(lx+r.LegendSize+gapSwatch, PageHeight-ly-2, b.Label())
		lx += r.LegendSize + gapSwatch + widths[i] + gapEntry
	}
}

func (r *Renderer) drawFooter(doc *fpdf.Fpdf, g board.Grid) {
	doc.SetFont("Helvetica", "", 6)
	doc.SetTextColor(0, 0, 0)
	info := fmt.Sprintf(
		"Seed:%d | Primary:%s(%.2f) | ElevScale:%.2f | MoistScale:%.2f | Hex:%.0fpx | Grid:%dx%d | MinBiomes:%d",
		r.Info.Seed, r.Info.Bias, r.Info.BiasStrength,
		r.Info.ElevScale, r.Info.MoistScale,
		r.HexSize, g.Cols, g.Rows, r.Info.MinBiomes,
	)
	doc.Text(r.Margin, PageHeight-r.Margin/4, info)
}
