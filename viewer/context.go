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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/scanfill"
)

// nearEpsilon rejects triangles touching or crossing the near plane.
// The orbit camera keeps the scene well inside the frustum, so full
// polygon clipping is not needed.
const nearEpsilon = 1e-9

// Context rasterises triangles into a colour buffer with a depth test.
// Pixel coverage of the projected triangles is computed by the
// scanline filler; attribute interpolation is perspective-correct.
//
// A Context is not safe for concurrent use.
type Context struct {
	Width, Height int
	ColorBuffer   *image.NRGBA
	DepthBuffer   []float64

	ClearColor Color
	Shader     Shader

	screen Matrix
	filler scanfill.Filler
	spans  []scanfill.Span
	poly   [3]vec.Vec2
}

// NewContext returns a context with cleared buffers.
func NewContext(width, height int) *Context {
	dc := &Context{
		Width:       width,
		Height:      height,
		ColorBuffer: image.NewNRGBA(image.Rect(0, 0, width, height)),
		DepthBuffer: make([]float64, width*height),
		screen:      Screen(width, height),
	}
	dc.ClearDepthBuffer()
	return dc
}

// Image returns the colour buffer.
func (dc *Context) Image() image.Image {
	return dc.ColorBuffer
}

// ClearColorBuffer fills the colour buffer with the clear colour.
func (dc *Context) ClearColorBuffer() {
	c := dc.ClearColor.NRGBA()
	for y := range dc.Height {
		row := dc.ColorBuffer.Pix[y*dc.ColorBuffer.Stride:]
		for x := range dc.Width {
			row[4*x+0] = c.R
			row[4*x+1] = c.G
			row[4*x+2] = c.B
			row[4*x+3] = c.A
		}
	}
}

// ClearDepthBuffer resets all depth values to the far plane.
func (dc *Context) ClearDepthBuffer() {
	for i := range dc.DepthBuffer {
		dc.DepthBuffer[i] = math.Inf(1)
	}
}

// DrawMesh rasterises all triangles of the mesh.
func (dc *Context) DrawMesh(m *Mesh) {
	for _, t := range m.Triangles {
		dc.DrawTriangle(t)
	}
}

// DrawTriangle runs one triangle through the pipeline: vertex shader,
// projection, scanline coverage, depth test and fragment shader.
func (dc *Context) DrawTriangle(t *Triangle) {
	v1 := dc.Shader.Vertex(t.V1)
	v2 := dc.Shader.Vertex(t.V2)
	v3 := dc.Shader.Vertex(t.V3)

	if v1.Output.W <= nearEpsilon ||
		v2.Output.W <= nearEpsilon ||
		v3.Output.W <= nearEpsilon {
		return
	}

	// Project to screen space.
	s1 := dc.screen.MulPosition(v1.Output.Vector())
	s2 := dc.screen.MulPosition(v2.Output.Vector())
	s3 := dc.screen.MulPosition(v3.Output.Vector())

	// Signed doubled area of the projected triangle. Degenerate
	// triangles have no interior.
	area := edgeFunc(s1, s2, s3)
	if math.Abs(area) < 1e-12 {
		return
	}
	rArea := 1 / area

	// Reciprocal clip-space w per vertex, for perspective-correct
	// interpolation.
	rw1 := 1 / v1.Output.W
	rw2 := 1 / v2.Output.W
	rw3 := 1 / v3.Output.W

	dc.poly[0] = vec.Vec2{X: s1.X, Y: s1.Y}
	dc.poly[1] = vec.Vec2{X: s2.X, Y: s2.Y}
	dc.poly[2] = vec.Vec2{X: s3.X, Y: s3.Y}
	dc.spans = dc.filler.AppendSpans(dc.spans[:0], dc.poly[:], dc.Height-1)

	for _, s := range dc.spans {
		y := s.Y
		x0 := max(int(math.Round(s.X0)), 0)
		x1 := min(int(math.Round(s.X1)), dc.Width-1)
		for x := x0; x <= x1; x++ {
			p := Vector{X: float64(x), Y: float64(y)}

			// Barycentric coordinates in screen space, clamped against
			// small negative values at the span boundary.
			b1 := max(edgeFunc(s2, s3, p)*rArea, 0)
			b2 := max(edgeFunc(s3, s1, p)*rArea, 0)
			b3 := max(edgeFunc(s1, s2, p)*rArea, 0)

			z := b1*s1.Z + b2*s2.Z + b3*s3.Z
			i := y*dc.Width + x
			if z >= dc.DepthBuffer[i] {
				continue
			}

			// Perspective-correct weights.
			w1 := b1 * rw1
			w2 := b2 * rw2
			w3 := b3 * rw3
			sum := w1 + w2 + w3
			if sum <= 0 {
				continue
			}
			w1 /= sum
			w2 /= sum
			w3 /= sum

			frag := interpolate(v1, v2, v3, w1, w2, w3)
			c := dc.Shader.Fragment(frag, t)

			dc.DepthBuffer[i] = z
			dc.ColorBuffer.SetNRGBA(x, y, c.NRGBA())
		}
	}
}

// edgeFunc is the signed doubled area of the triangle (a, b, p),
// positive when p lies to the left of the directed line a->b.
func edgeFunc(a, b, p Vector) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// interpolate blends the vertex attributes with the given weights,
// which must sum to one.
func interpolate(v1, v2, v3 Vertex, w1, w2, w3 float64) Vertex {
	var v Vertex
	v.World = v1.World.MulScalar(w1).
		Add(v2.World.MulScalar(w2)).
		Add(v3.World.MulScalar(w3))
	v.Normal = v1.Normal.MulScalar(w1).
		Add(v2.Normal.MulScalar(w2)).
		Add(v3.Normal.MulScalar(w3))
	v.Color = v1.Color.MulScalar(w1).
		Add(v2.Color.MulScalar(w2)).
		Add(v3.Color.MulScalar(w3))
	return v
}
