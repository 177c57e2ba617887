// seehuhn.de/go/scanfill - polygon scan conversion
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases holds the polygon geometry shared by the scanfill
// tests, the JSON exporter and the PDF reference generator.
package testcases

import "seehuhn.de/go/geom/vec"

// TestCase defines a single polygon-fill test.
type TestCase struct {
	Name     string     // lowercase a-z and _ only
	Vertices []vec.Vec2 // polygon in traversal order, implicitly closed
	Width    int        // canvas width in pixels
	Height   int        // canvas height in pixels; scanlines run 0..Height-1

	// Simple is false for self-intersecting polygons, for which the
	// even-odd pairing gives best-effort output only.
	Simple bool
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
