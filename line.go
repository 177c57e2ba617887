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

package scanfill

import "image"

// LinePixels rasterises the line segment from p0 to p1 using the
// integer midpoint (Bresenham) algorithm and calls set for every pixel
// on the line, including both endpoints. Pixels are visited in order
// from p0 to p1.
func LinePixels(p0, p1 image.Point, set func(image.Point)) {
	dx := p1.X - p0.X
	sx := 1
	if dx < 0 {
		dx = -dx
		sx = -1
	}
	dy := p1.Y - p0.Y
	sy := 1
	if dy < 0 {
		dy = -dy
		sy = -1
	}

	// The error term tracks the doubled signed distance from the line,
	// combining the x and y residuals.
	d := dx - dy
	for {
		set(p0)
		if p0 == p1 {
			return
		}
		d2 := 2 * d
		if d2 > -dy {
			d -= dy
			p0.X += sx
		}
		if d2 < dx {
			d += dx
			p0.Y += sy
		}
	}
}
