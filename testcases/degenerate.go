package testcases

import "seehuhn.de/go/geom/vec"

// Degenerate inputs must all produce an empty span list without error.
var degenerateCases = []TestCase{
	{
		Name:     "empty",
		Vertices: nil,
		Width:    64,
		Height:   64,
		Simple:   true,
	},
	{
		Name:     "single_point",
		Vertices: []vec.Vec2{pt(32, 32)},
		Width:    64,
		Height:   64,
		Simple:   true,
	},
	{
		Name:     "two_vertices",
		Vertices: []vec.Vec2{pt(10, 10), pt(54, 54)},
		Width:    64,
		Height:   64,
		Simple:   true,
	},
	{
		// All three edges are horizontal after rounding, so the edge
		// table stays empty.
		Name:     "horizontal_sliver",
		Vertices: []vec.Vec2{pt(10, 32), pt(32, 32.2), pt(54, 31.8)},
		Width:    64,
		Height:   64,
		Simple:   true,
	},
	{
		Name:     "coincident_vertices",
		Vertices: []vec.Vec2{pt(32, 32), pt(32, 32), pt(32, 32)},
		Width:    64,
		Height:   64,
		Simple:   true,
	},
}
