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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Edge is one polygon side during the scanline sweep, after normalising
// direction so that the edge runs upward in y.
type Edge struct {
	// YMax is the last scanline on which the edge is active. Edges are
	// half-open at their geometric upper end: the scanline range is
	// already converted so that the vertex at the maximum y does not
	// contribute a crossing.
	YMax int

	// X is the x-intersection with the current scanline. It starts at
	// the crossing with the edge's first active scanline and advances
	// by InvSlope per scanline.
	X float64

	// InvSlope is dx/dy of the edge, the change of X per unit of y.
	InvSlope float64
}

// EdgeTable maps each scanline y in [0, height] to the edges whose
// first active scanline is y.
type EdgeTable [][]Edge

// BuildEdgeTable buckets the non-horizontal edges of the polygon by
// their first active scanline. The polygon is the ordered vertex list
// poly, implicitly closed from the last vertex back to the first;
// height is the maximum scanline index to consider.
//
// Vertex coordinates are rounded to the nearest scanline throughout:
// an edge is horizontal when both endpoints round to the same
// scanline, and an edge's first active scanline is the rounded lower
// endpoint, clipped to [0, height]. The edge's X is adjusted so that
// it lies exactly on that first scanline.
//
// Fewer than three vertices, a negative height, or a polygon entirely
// outside [0, height] yield a table with no edges. The function never
// fails.
func BuildEdgeTable(poly []vec.Vec2, height int) EdgeTable {
	if height < 0 {
		return nil
	}
	table := make(EdgeTable, height+1)
	appendEdges(table, poly)
	return table
}

// appendEdges inserts the polygon's edges into table, which must have
// length height+1 for the height the edges are clipped to.
func appendEdges(table EdgeTable, poly []vec.Vec2) {
	height := len(table) - 1
	n := len(poly)
	if n < 3 || height < 0 {
		return
	}

	for i := range n {
		p1 := poly[i]
		p2 := poly[(i+1)%n]

		// Horizontal edges contribute no scanline crossings.
		if math.Round(p1.Y) == math.Round(p2.Y) {
			continue
		}

		if p1.Y > p2.Y {
			p1, p2 = p2, p1
		}
		yMin, yMax := p1.Y, p2.Y
		invSlope := (p2.X - p1.X) / (yMax - yMin)

		// First and last active scanlines, clipped to [0, height].
		// The scanline at yMax is excluded, so that a vertex shared by
		// two edges is counted once. Edges entirely outside the range
		// leave yStart > yEnd and are dropped.
		yStart := max(0, int(math.Round(yMin)))
		yEnd := min(height, int(math.Round(yMax))-1)
		if yStart > yEnd {
			continue
		}

		// Move X from yMin onto the first active scanline.
		x := p1.X + invSlope*(float64(yStart)-yMin)

		table[yStart] = append(table[yStart], Edge{
			YMax:     yEnd,
			X:        x,
			InvSlope: invSlope,
		})
	}
}
