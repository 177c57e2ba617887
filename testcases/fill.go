package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:     "triangle",
		Vertices: []vec.Vec2{pt(10, 50), pt(32, 10), pt(54, 50)},
		Width:    64,
		Height:   64,
		Simple:   true,
	},
	{
		Name:     "square",
		Vertices: []vec.Vec2{pt(10, 10), pt(54, 10), pt(54, 54), pt(10, 54)},
		Width:    64,
		Height:   64,
		Simple:   true,
	},
	{
		Name:     "pentagon",
		Vertices: regularPolygon(32, 32, 25, 5),
		Width:    64,
		Height:   64,
		Simple:   true,
	},
	{
		// Concave arrow pointing right. The head and the shaft stay
		// connected, so each scanline still holds a single span.
		Name: "arrow",
		Vertices: []vec.Vec2{
			pt(13, 13), pt(45, 13), pt(45, 3), pt(61, 22),
			pt(45, 42), pt(45, 32), pt(13, 32),
		},
		Width:  64,
		Height: 64,
		Simple: true,
	},
	{
		// U shape: scanlines crossing the two prongs intersect four
		// edges and produce two disjoint spans.
		Name: "u_shape",
		Vertices: []vec.Vec2{
			pt(10, 10), pt(25, 10), pt(25, 40), pt(39, 40),
			pt(39, 10), pt(54, 10), pt(54, 54), pt(10, 54),
		},
		Width:  64,
		Height: 64,
		Simple: true,
	},
	{
		Name:     "star",
		Vertices: fivePointStar(32, 32, 25),
		Width:    64,
		Height:   64,
		Simple:   false,
	},
}

// regularPolygon builds a regular convex n-gon, first vertex at the
// top.
func regularPolygon(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// fivePointStar builds a five-pointed star (self-intersecting) by
// connecting every second point of a regular pentagon.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	pts := regularPolygon(cx, cy, r, 5)
	order := []int{0, 2, 4, 1, 3}
	star := make([]vec.Vec2, 5)
	for i, j := range order {
		star[i] = pts[j]
	}
	return star
}
