package hex

import "math"

// Axial represents axial coordinates (q, r) for pointy-top orientation.
type Axial struct {
	Q int
	R int
}

// Point is a Cartesian position in page points.
type Point struct {
	X float64
	Y float64
}

// Directions lists the six axial neighbor offsets. The order is fixed:
// neighbor walks and smoothing tie-breaks depend on it.
var Directions = []Axial{
	{+1, 0}, {-1, 0}, {+1, -1}, {-1, +1}, {0, +1}, {0, -1},
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Neighbors returns the six neighbor coordinates of a in direction order.
func (a Axial) Neighbors() []Axial {
	res := make([]Axial, len(Directions))
	for i, d := range Directions {
		res[i] = a.Add(d)
	}
	return res
}

// ToPixel converts axial to pixel center coordinates for a hex of radius
// size. Columns step by 1.5*size horizontally; odd columns shift down half
// a vertical step.
func (a Axial) ToPixel(size float64) (x, y float64) {
	x = 1.5 * size * float64(a.Q)
	y = size * math.Sqrt(3) * (float64(a.R) + 0.5*float64(a.Q&1))
	return
}

// Corners returns the six corner points of a hex of radius size centred at
// (cx, cy). Corner i sits at angle 60°·i from the centre.
func Corners(cx, cy, size float64) []Point {
	pts := make([]Point, 6)
	for i := range pts {
		rad := math.Pi / 3 * float64(i)
		pts[i] = Point{
			X: cx + size*math.Cos(rad),
			Y: cy + size*math.Sin(rad),
		}
	}
	return pts
}
