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

package viewer

import (
	"math"
	"testing"
)

func vecNear(a, b Vector, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

func matNear(a, b Matrix, eps float64) bool {
	da := [16]float64{
		a.X00, a.X01, a.X02, a.X03, a.X10, a.X11, a.X12, a.X13,
		a.X20, a.X21, a.X22, a.X23, a.X30, a.X31, a.X32, a.X33,
	}
	db := [16]float64{
		b.X00, b.X01, b.X02, b.X03, b.X10, b.X11, b.X12, b.X13,
		b.X20, b.X21, b.X22, b.X23, b.X30, b.X31, b.X32, b.X33,
	}
	for i := range da {
		if math.Abs(da[i]-db[i]) > eps {
			return false
		}
	}
	return true
}

func TestVectorOps(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, -5, 6}

	if got := a.Dot(b); got != 1*4+2*(-5)+3*6 {
		t.Errorf("Dot: got %g", got)
	}
	if got := a.Cross(b); !vecNear(got, Vector{27, 6, -13}, 1e-12) {
		t.Errorf("Cross: got %v", got)
	}
	if got := a.Normalize().Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Normalize: length %g", got)
	}
	if got := (Vector{}).Normalize(); got != (Vector{}) {
		t.Errorf("Normalize of zero vector: got %v", got)
	}
}

func TestMatrixTransforms(t *testing.T) {
	p := Vector{1, 2, 3}

	if got := Identity().MulPosition(p); got != p {
		t.Errorf("identity: got %v", got)
	}
	if got := Translate(Vector{10, 0, -1}).MulPosition(p); got != (Vector{11, 2, 2}) {
		t.Errorf("translate: got %v", got)
	}
	if got := Scale(Vector{2, 3, 4}).MulPosition(p); got != (Vector{2, 6, 12}) {
		t.Errorf("scale: got %v", got)
	}

	// Directions ignore translation.
	if got := Translate(Vector{10, 0, -1}).MulDirection(p); got != p {
		t.Errorf("translate direction: got %v", got)
	}
}

func TestMatrixRotate(t *testing.T) {
	// A quarter turn about the y axis maps +x onto a z axis direction
	// and preserves lengths.
	m := Rotate(Vector{0, 1, 0}, math.Pi/2)
	got := m.MulPosition(Vector{1, 0, 0})

	if math.Abs(got.Length()-1) > 1e-12 {
		t.Errorf("rotation changed length: %v", got)
	}
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y) > 1e-12 || math.Abs(math.Abs(got.Z)-1) > 1e-12 {
		t.Errorf("rotation target: got %v", got)
	}

	// Four quarter turns are the identity.
	full := m.Mul(m).Mul(m).Mul(m)
	if !matNear(full, Identity(), 1e-12) {
		t.Errorf("full turn: got %+v", full)
	}
}

func TestMatrixInverse(t *testing.T) {
	m := Translate(Vector{1, -2, 3}).
		Mul(Rotate(Vector{1, 1, 0}, 0.7)).
		Mul(Scale(Vector{2, 2, 2}))

	if !matNear(m.Mul(m.Inverse()), Identity(), 1e-9) {
		t.Error("M * M^-1 is not the identity")
	}
	if !matNear(m.Inverse().Mul(m), Identity(), 1e-9) {
		t.Error("M^-1 * M is not the identity")
	}
}

func TestLookAt(t *testing.T) {
	eye := Vector{0, 0, 5}
	m := LookAt(eye, Vector{}, Vector{Y: 1})

	// The eye maps to the origin, and a point in front of the camera
	// lands on the negative z axis.
	if got := m.MulPosition(eye); !vecNear(got, Vector{}, 1e-12) {
		t.Errorf("eye: got %v", got)
	}
	if got := m.MulPosition(Vector{}); !vecNear(got, Vector{0, 0, -5}, 1e-12) {
		t.Errorf("origin: got %v", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(45, 1, 0.1, 100)

	// A point on the optical axis between the clipping planes projects
	// into the NDC cube.
	v := m.MulPositionW(Vector{0, 0, -5})
	if v.W <= 0 {
		t.Fatalf("w: got %g", v.W)
	}
	ndc := v.Vector()
	if math.Abs(ndc.X) > 1e-12 || math.Abs(ndc.Y) > 1e-12 {
		t.Errorf("axis point off-centre: %v", ndc)
	}
	if ndc.Z < -1 || ndc.Z > 1 {
		t.Errorf("depth outside NDC: %v", ndc)
	}

	// A point further from the axis than the frustum half-width at its
	// depth must project outside [-1, 1].
	out := m.MulPosition(Vector{10, 0, -5})
	if out.X <= 1 {
		t.Errorf("outside point projects to %v", out)
	}
}

func TestScreenMapping(t *testing.T) {
	m := Screen(64, 48)

	corners := []struct {
		ndc  Vector
		want Vector
	}{
		{Vector{0, 0, 0}, Vector{32, 24, 0.5}},
		{Vector{-1, 1, -1}, Vector{0, 0, 0}},   // top-left
		{Vector{1, -1, 1}, Vector{64, 48, 1}},  // bottom-right
	}
	for _, c := range corners {
		if got := m.MulPosition(c.ndc); !vecNear(got, c.want, 1e-12) {
			t.Errorf("ndc %v: got %v, want %v", c.ndc, got, c.want)
		}
	}
}
