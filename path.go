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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FlattenPath converts a vector path into closed polygon rings in
// device coordinates, ready for the scanline filler. Curves are
// approximated by line segments with a maximum deviation of flatness
// device pixels; flatness <= 0 selects the default of 0.25. The path
// is transformed from user space to device space by ctm, which must be
// non-singular.
//
// Each subpath becomes one ring. Subpaths are treated as closed
// whether or not they end in an explicit close command, matching the
// implicit closure of the filler. Rings with fewer than three vertices
// are discarded.
func FlattenPath(p path.Path, ctm matrix.Matrix, flatness float64) [][]vec.Vec2 {
	fl := flattener{ctm: ctm, flatness: flatness}
	if fl.flatness <= 0 {
		fl.flatness = defaultFlatness
	}

	var rings [][]vec.Vec2
	var ring []vec.Vec2
	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)

	flush := func() {
		if len(ring) >= 3 {
			rings = append(rings, ring)
		}
		ring = nil
	}
	// emit extends the current ring, starting it at the current point
	// if a close command ended the previous ring.
	emit := func(v vec.Vec2) {
		if len(ring) == 0 {
			ring = append(ring, fl.device(current))
		}
		ring = append(ring, fl.device(v))
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = pts[0]
			subpath = current
			ring = append(ring, fl.device(current))

		case path.CmdLineTo:
			emit(pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			fl.quadratic(current, pts[0], pts[1], emit)
			current = pts[1]

		case path.CmdCubeTo:
			fl.cubic(current, pts[0], pts[1], pts[2], emit)
			current = pts[2]

		case path.CmdClose:
			flush()
			current = subpath
		}
	}
	flush()

	return rings
}

// flattener holds the transform and tolerance for curve flattening.
type flattener struct {
	ctm      matrix.Matrix
	flatness float64
}

// device transforms a user-space point to device space.
func (fl *flattener) device(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: fl.ctm[0]*v.X + fl.ctm[2]*v.Y + fl.ctm[4],
		Y: fl.ctm[1]*v.X + fl.ctm[3]*v.Y + fl.ctm[5],
	}
}

// transformLinear applies only the 2×2 linear part of the CTM to a
// vector. Used for CTM-aware tolerance checking where translation is
// irrelevant.
func (fl *flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: fl.ctm[0]*v.X + fl.ctm[2]*v.Y,
		Y: fl.ctm[1]*v.X + fl.ctm[3]*v.Y,
	}
}

// quadratic flattens a quadratic Bézier and calls emit for each
// segment endpoint. p0 is the start point (current point), p1 is
// control, p2 is endpoint. All points are in user space.
func (fl *flattener) quadratic(p0, p1, p2 vec.Vec2, emit func(vec.Vec2)) {
	// Error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	eDev := fl.transformLinear(e)

	n := 1
	errDev := eDev.Length()
	if errDev > fl.flatness {
		n = int(math.Ceil(math.Sqrt(errDev / fl.flatness)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(pt)
	}
}

// cubic flattens a cubic Bézier and calls emit for each segment
// endpoint. p0 is start, p1/p2 are controls, p3 is endpoint. All in
// user space.
func (fl *flattener) cubic(p0, p1, p2, p3 vec.Vec2, emit func(vec.Vec2)) {
	// Deviation vectors
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	d1Dev := fl.transformLinear(d1)
	d2Dev := fl.transformLinear(d2)

	// Segment count using Wang's formula
	mDev := max(d1Dev.Length(), d2Dev.Length())
	n := 1
	if mDev > 0 {
		// n = ceil(sqrt(3 * mDev / (4 * ε)))
		nFloat := math.Sqrt(3 * mDev / (4 * fl.flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		pt := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
		emit(pt)
	}
}
