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

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// DrawSpans writes the spans into dst as fully opaque horizontal runs.
// Span x coordinates are rounded to the nearest pixel; spans outside
// the image bounds are clipped.
func DrawSpans(dst *image.Alpha, spans []Span) {
	b := dst.Bounds()
	for _, s := range spans {
		if s.Y < b.Min.Y || s.Y >= b.Max.Y {
			continue
		}
		x0 := max(int(math.Round(s.X0)), b.Min.X)
		x1 := min(int(math.Round(s.X1)), b.Max.X-1)
		if x0 > x1 {
			continue
		}
		row := dst.Pix[(s.Y-b.Min.Y)*dst.Stride:]
		for x := x0; x <= x1; x++ {
			row[x-b.Min.X] = 0xff
		}
	}
}

// RenderMask scan-converts the polygon into a binary coverage mask of
// the given size. The polygon is expected in pixel coordinates with
// the origin in the top-left corner; scanlines run from 0 to height-1.
func RenderMask(poly []vec.Vec2, width, height int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	var f Filler
	DrawSpans(img, f.AppendSpans(nil, poly, height-1))
	return img
}
