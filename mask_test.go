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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestRenderMask(t *testing.T) {
	poly := []vec.Vec2{
		{X: 8, Y: 8}, {X: 24, Y: 8}, {X: 24, Y: 24}, {X: 8, Y: 24},
	}
	mask := RenderMask(poly, 32, 32)

	if got := mask.Bounds(); got != image.Rect(0, 0, 32, 32) {
		t.Fatalf("bounds: got %v", got)
	}

	type probe struct {
		x, y int
		want uint8
	}
	probes := []probe{
		{16, 16, 0xff}, // interior
		{8, 8, 0xff},   // top-left corner, top scanline included
		{16, 8, 0xff},  // on the top edge
		{4, 4, 0},      // outside
		{16, 24, 0},    // bottom edge excluded (half-open in y)
		{16, 28, 0},    // below
		{30, 16, 0},    // right of the square
	}
	for _, p := range probes {
		if got := mask.AlphaAt(p.x, p.y).A; got != p.want {
			t.Errorf("pixel (%d,%d): got %d, want %d", p.x, p.y, got, p.want)
		}
	}
}

func TestRenderMaskEmpty(t *testing.T) {
	mask := RenderMask(nil, 16, 16)
	for _, a := range mask.Pix {
		if a != 0 {
			t.Fatal("empty polygon produced coverage")
		}
	}

	// Zero or negative sizes must not panic.
	if got := RenderMask(nil, 0, 0).Bounds(); got.Dx() != 0 || got.Dy() != 0 {
		t.Errorf("zero size: bounds %v", got)
	}
}

func TestDrawSpansClipping(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 8, 8))
	DrawSpans(dst, []Span{
		{Y: -1, X0: 0, X1: 7},   // above the image
		{Y: 8, X0: 0, X1: 7},    // below the image
		{Y: 3, X0: -5, X1: 20},  // wider than the image
		{Y: 5, X0: 30, X1: 40},  // right of the image
		{Y: 6, X0: -10, X1: -2}, // left of the image
	})

	for y := range 8 {
		for x := range 8 {
			want := uint8(0)
			if y == 3 {
				want = 0xff
			}
			if got := dst.AlphaAt(x, y).A; got != want {
				t.Errorf("pixel (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDrawSpansSubimage(t *testing.T) {
	// DrawSpans must respect non-zero bounds origins.
	base := image.NewAlpha(image.Rect(0, 0, 16, 16))
	sub := base.SubImage(image.Rect(4, 4, 12, 12)).(*image.Alpha)

	DrawSpans(sub, []Span{{Y: 6, X0: 5, X1: 10}})

	if got := base.AlphaAt(6, 6).A; got != 0xff {
		t.Errorf("pixel (6,6): got %d, want 255", got)
	}
	if got := base.AlphaAt(2, 6).A; got != 0 {
		t.Errorf("pixel (2,6): got %d, want 0", got)
	}
}
