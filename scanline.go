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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Span is one horizontal run to fill: the inclusive interval [X0, X1]
// on scanline Y, with X0 <= X1.
type Span struct {
	Y      int
	X0, X1 float64
}

// Filler computes scanline spans for polygons. The caller creates one
// instance and reuses it for multiple polygons. Internal buffers grow
// as needed but never shrink, achieving zero allocations in steady
// state. The zero value is ready to use.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	table EdgeTable // edge buckets, indexed by first active scanline
	aet   []Edge    // edges intersecting the current scanline
}

// Spans returns the horizontal spans covering the interior of the
// polygon under the even-odd fill rule, for scanlines 0 through height
// inclusive. It is shorthand for using a throw-away Filler.
func Spans(poly []vec.Vec2, height int) []Span {
	var f Filler
	return f.AppendSpans(nil, poly, height)
}

// AppendSpans appends the polygon's spans to dst and returns the
// extended slice. Spans are produced in scanline order, for y from 0
// through height inclusive; within one scanline, pairs follow the
// sorted crossing order.
//
// Degenerate input (fewer than three vertices, negative height, or a
// polygon outside the scanline range) appends nothing. The sweep never
// fails.
func (f *Filler) AppendSpans(dst []Span, poly []vec.Vec2, height int) []Span {
	if len(poly) < 3 || height < 0 {
		return dst
	}

	// Rebuild the edge table, reusing bucket storage. Buckets are
	// drained during the sweep, so they are already empty here.
	if cap(f.table) >= height+1 {
		f.table = f.table[:height+1]
	} else {
		f.table = slices.Grow(f.table, height+1-len(f.table))[:height+1]
	}
	appendEdges(f.table, poly)

	f.aet = f.aet[:0]
	for y := 0; y <= height; y++ {
		// Activate edges whose first scanline is y, draining the bucket.
		f.aet = append(f.aet, f.table[y]...)
		f.table[y] = f.table[y][:0]

		// Deactivate edges whose lifetime has expired.
		live := f.aet[:0]
		for _, e := range f.aet {
			if y <= e.YMax {
				live = append(live, e)
			}
		}
		f.aet = live

		// Sort by current x. Ties are broken by inverse slope so that
		// two edges meeting at a shared vertex keep a deterministic
		// crossing order.
		slices.SortFunc(f.aet, func(a, b Edge) int {
			return cmp.Or(
				cmp.Compare(a.X, b.X),
				cmp.Compare(a.InvSlope, b.InvSlope),
			)
		})

		// Pair crossings under the even-odd rule. An odd trailing edge
		// is dropped; this assumes a simple polygon.
		for i := 0; i+1 < len(f.aet); i += 2 {
			x0, x1 := f.aet[i].X, f.aet[i+1].X
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			if x1-x0 > spanWidthEpsilon {
				dst = append(dst, Span{Y: y, X0: x0, X1: x1})
			}
		}

		// Advance each active edge to its crossing with the next
		// scanline.
		for i := range f.aet {
			f.aet[i].X += f.aet[i].InvSlope
		}
	}

	return dst
}

// Reset releases the Filler's references into previously returned data
// while preserving buffer capacity. It is not required between calls;
// AppendSpans reinitialises all state itself.
func (f *Filler) Reset() {
	for i := range f.table {
		f.table[i] = f.table[i][:0]
	}
	f.table = f.table[:0]
	f.aet = f.aet[:0]
}

// Numerical tolerances for the scan converter.
const (
	// spanWidthEpsilon is the minimum width for an emitted span.
	// Narrower pairs are degenerate crossings caused by a vertex lying
	// exactly on an integer scanline.
	spanWidthEpsilon = 1e-6

	// defaultFlatness is the default curve flattening tolerance in
	// device pixels used by FlattenPath. Values of 0.25-1.0 are
	// typical; 0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25
)
