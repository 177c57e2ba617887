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
	"image"
	"testing"
)

func TestSceneRender(t *testing.T) {
	s := NewScene(NewCube())
	img := s.Render(64, 48)

	if got := img.Bounds(); got != image.Rect(0, 0, 64, 48) {
		t.Fatalf("bounds: got %v", got)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("got %T, want *image.NRGBA", img)
	}
	bg := s.Background.NRGBA()
	if got := nrgba.NRGBAAt(1, 1); got != bg {
		t.Errorf("corner pixel: got %v, want background %v", got, bg)
	}
	if got := nrgba.NRGBAAt(32, 24); got == bg {
		t.Error("cube not visible at the image centre")
	}
}

func TestSceneSupersampling(t *testing.T) {
	s := NewScene(NewSphere(16, 32))
	s.Scale = 2
	img := s.Render(40, 40)

	// The output keeps the requested size after downsampling.
	if got := img.Bounds(); got.Dx() != 40 || got.Dy() != 40 {
		t.Fatalf("bounds: got %v", got)
	}
}

func TestSceneShadingModels(t *testing.T) {
	// The three shading models must produce visibly different images
	// for a curved surface.
	render := func(model ShadingModel) *image.NRGBA {
		s := NewScene(NewSphere(16, 32))
		s.Shading = model
		return s.Render(48, 48).(*image.NRGBA)
	}

	flat := render(Flat)
	gouraud := render(Gouraud)
	phong := render(Phong)

	diff := func(a, b *image.NRGBA) int {
		n := 0
		for i := range a.Pix {
			if a.Pix[i] != b.Pix[i] {
				n++
			}
		}
		return n
	}
	if diff(flat, gouraud) == 0 {
		t.Error("flat and Gouraud shading are identical")
	}
	if diff(gouraud, phong) == 0 {
		t.Error("Gouraud and Phong shading are identical")
	}
}

func TestSceneModelTransform(t *testing.T) {
	// Rotating the pyramid about the vertical axis changes the image.
	base := NewScene(NewPyramid())
	a := base.Render(48, 48).(*image.NRGBA)

	rotated := NewScene(NewPyramid())
	rotated.Model = Rotate(Vector{0, 1, 0}, 0.8)
	b := rotated.Render(48, 48).(*image.NRGBA)

	same := true
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("model transform had no effect")
	}
}

func TestShadingModelString(t *testing.T) {
	cases := map[ShadingModel]string{
		Flat:            "flat",
		Gouraud:         "gouraud",
		Phong:           "phong",
		ShadingModel(9): "unknown",
	}
	for model, want := range cases {
		if got := model.String(); got != want {
			t.Errorf("%d: got %q, want %q", model, got, want)
		}
	}
}
