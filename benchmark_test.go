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
	"fmt"
	"image"
	"image/draw"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// benchmarkNGon builds a regular 32-gon filling most of a size×size
// canvas.
func benchmarkNGon(size int) []vec.Vec2 {
	const n = 32
	c := float64(size) / 2
	r := c * 7 / 8
	poly := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / n
		poly[i] = vec.Vec2{
			X: c + r*math.Cos(angle),
			Y: c + r*math.Sin(angle),
		}
	}
	return poly
}

var benchmarkSizes = []int{20, 200, 2000}

func BenchmarkFiller(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("size%d", size), func(b *testing.B) {
			poly := benchmarkNGon(size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			var f Filler
			var spans []Span
			b.ReportAllocs()
			for b.Loop() {
				spans = f.AppendSpans(spans[:0], poly, size-1)
				DrawSpans(dst, spans)
			}
		})
	}
}

// BenchmarkVector rasterises the same polygons with
// golang.org/x/image/vector, as a baseline for comparison.
func BenchmarkVector(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("size%d", size), func(b *testing.B) {
			poly := benchmarkNGon(size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			r := vector.NewRasterizer(size, size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.DrawOp = draw.Src
				r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
				for _, v := range poly[1:] {
					r.LineTo(float32(v.X), float32(v.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}

// TestCoverageMatchesVector cross-checks the span output against the
// antialiased coverage computed by golang.org/x/image/vector. Both
// approximate the polygon area, one by binary spans and one by
// fractional coverage, so the totals must agree closely.
func TestCoverageMatchesVector(t *testing.T) {
	const size = 64
	poly := benchmarkNGon(size)

	var spanTotal float64
	for _, s := range Spans(poly, size-1) {
		spanTotal += s.X1 - s.X0
	}

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	r := vector.NewRasterizer(size, size)
	r.DrawOp = draw.Src
	r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, v := range poly[1:] {
		r.LineTo(float32(v.X), float32(v.Y))
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	var coverTotal float64
	for _, a := range dst.Pix {
		coverTotal += float64(a) / 255
	}

	if diff := math.Abs(spanTotal - coverTotal); diff > 0.05*coverTotal {
		t.Errorf("span total %.1f vs vector coverage %.1f, difference %.1f",
			spanTotal, coverTotal, diff)
	}
}
