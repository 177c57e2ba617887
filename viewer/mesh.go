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

	"github.com/fogleman/simplify"
)

// Vertex carries the per-vertex attributes flowing through the
// pipeline. Position and Normal are in model space; World, Output and
// Color are filled in by the vertex shader.
type Vertex struct {
	Position Vector
	Normal   Vector

	// World is the world-space position after the model transform.
	World Vector

	// Output is the clip-space position before the perspective divide.
	Output VectorW

	// Color is the vertex colour computed by per-vertex shading.
	Color Color
}

// Triangle is a mesh face. Vertices carry their own normals, so a face
// can be flat (all three normals equal) or smooth (normals differing
// per vertex).
type Triangle struct {
	V1, V2, V3 Vertex
}

// NewTriangle builds a flat triangle: all three vertices get the face
// normal computed from the winding order.
func NewTriangle(p1, p2, p3 Vector) *Triangle {
	n := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
	return &Triangle{
		V1: Vertex{Position: p1, Normal: n},
		V2: Vertex{Position: p2, Normal: n},
		V3: Vertex{Position: p3, Normal: n},
	}
}

// Normal returns the face normal computed from the vertex positions.
func (t *Triangle) Normal() Vector {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Normalize()
}

// Mesh is a triangle soup.
type Mesh struct {
	Triangles []*Triangle
}

// NewMesh returns a mesh holding the given triangles.
func NewMesh(triangles []*Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}

// Simplify reduces the triangle count to approximately factor times the
// current count, using quadric edge-collapse decimation. The result is
// a new mesh with flat face normals; the receiver is unchanged.
func (m *Mesh) Simplify(factor float64) *Mesh {
	ts := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		ts[i] = simplify.NewTriangle(
			simplify.Vector{X: t.V1.Position.X, Y: t.V1.Position.Y, Z: t.V1.Position.Z},
			simplify.Vector{X: t.V2.Position.X, Y: t.V2.Position.Y, Z: t.V2.Position.Z},
			simplify.Vector{X: t.V3.Position.X, Y: t.V3.Position.Y, Z: t.V3.Position.Z},
		)
	}
	sm := simplify.NewMesh(ts).Simplify(factor)

	out := make([]*Triangle, len(sm.Triangles))
	for i, t := range sm.Triangles {
		out[i] = NewTriangle(
			Vector{X: t.V1.X, Y: t.V1.Y, Z: t.V1.Z},
			Vector{X: t.V2.X, Y: t.V2.Y, Z: t.V2.Z},
			Vector{X: t.V3.X, Y: t.V3.Y, Z: t.V3.Z},
		)
	}
	return NewMesh(out)
}

// smoothTriangle builds a triangle with explicit per-vertex normals.
func smoothTriangle(p1, p2, p3, n1, n2, n3 Vector) *Triangle {
	return &Triangle{
		V1: Vertex{Position: p1, Normal: n1},
		V2: Vertex{Position: p2, Normal: n2},
		V3: Vertex{Position: p3, Normal: n3},
	}
}

// flatQuad splits a quad into two triangles sharing the normal n.
func flatQuad(p1, p2, p3, p4, n Vector) []*Triangle {
	return []*Triangle{
		smoothTriangle(p1, p2, p3, n, n, n),
		smoothTriangle(p1, p3, p4, n, n, n),
	}
}

// NewCube returns an axis-aligned cube with side length 2 centred at
// the origin, 12 triangles with flat face normals.
func NewCube() *Mesh {
	var ts []*Triangle
	// +z, -z, +x, -x, +y, -y
	ts = append(ts, flatQuad(
		Vector{-1, -1, 1}, Vector{1, -1, 1}, Vector{1, 1, 1}, Vector{-1, 1, 1},
		Vector{0, 0, 1})...)
	ts = append(ts, flatQuad(
		Vector{1, -1, -1}, Vector{-1, -1, -1}, Vector{-1, 1, -1}, Vector{1, 1, -1},
		Vector{0, 0, -1})...)
	ts = append(ts, flatQuad(
		Vector{1, -1, 1}, Vector{1, -1, -1}, Vector{1, 1, -1}, Vector{1, 1, 1},
		Vector{1, 0, 0})...)
	ts = append(ts, flatQuad(
		Vector{-1, -1, -1}, Vector{-1, -1, 1}, Vector{-1, 1, 1}, Vector{-1, 1, -1},
		Vector{-1, 0, 0})...)
	ts = append(ts, flatQuad(
		Vector{-1, 1, 1}, Vector{1, 1, 1}, Vector{1, 1, -1}, Vector{-1, 1, -1},
		Vector{0, 1, 0})...)
	ts = append(ts, flatQuad(
		Vector{-1, -1, -1}, Vector{1, -1, -1}, Vector{1, -1, 1}, Vector{-1, -1, 1},
		Vector{0, -1, 0})...)
	return NewMesh(ts)
}

// NewPyramid returns a square pyramid: apex at (0, 1.5, 0) over a 2×2
// base at y = -0.5. Faces are flat.
func NewPyramid() *Mesh {
	apex := Vector{0, 1.5, 0}
	base := []Vector{
		{-1, -0.5, 1}, {1, -0.5, 1}, {1, -0.5, -1}, {-1, -0.5, -1},
	}

	var ts []*Triangle
	for i := range 4 {
		b1 := base[i]
		b2 := base[(i+1)%4]
		ts = append(ts, NewTriangle(apex, b1, b2))
	}
	ts = append(ts, flatQuad(base[3], base[2], base[1], base[0],
		Vector{0, -1, 0})...)
	return NewMesh(ts)
}

// NewCylinder returns a cylinder of radius 1 and height 2 centred at
// the origin, approximated by the given number of segments. The side
// uses smooth radial normals; the caps are flat.
func NewCylinder(segments int) *Mesh {
	var ts []*Triangle
	top := Vector{0, 1, 0}
	bottom := Vector{0, -1, 0}

	for i := range segments {
		a1 := float64(i) * 2 * math.Pi / float64(segments)
		a2 := float64(i+1) * 2 * math.Pi / float64(segments)

		n1 := Vector{math.Cos(a1), 0, math.Sin(a1)}
		n2 := Vector{math.Cos(a2), 0, math.Sin(a2)}
		b1 := Vector{n1.X, -1, n1.Z}
		b2 := Vector{n2.X, -1, n2.Z}
		t1 := Vector{n1.X, 1, n1.Z}
		t2 := Vector{n2.X, 1, n2.Z}

		ts = append(ts,
			smoothTriangle(b1, b2, t2, n1, n2, n2),
			smoothTriangle(b1, t2, t1, n1, n2, n1),
			smoothTriangle(top, t1, t2, Vector{0, 1, 0}, Vector{0, 1, 0}, Vector{0, 1, 0}),
			smoothTriangle(bottom, b2, b1, Vector{0, -1, 0}, Vector{0, -1, 0}, Vector{0, -1, 0}),
		)
	}
	return NewMesh(ts)
}

// NewSphere returns a sphere of radius 1.2 centred at the origin, as a
// latitude/longitude grid with smooth normals.
func NewSphere(stacks, slices int) *Mesh {
	const r = 1.2
	point := func(i, j int) Vector {
		lat := math.Pi*float64(i)/float64(stacks) - math.Pi/2
		lon := 2 * math.Pi * float64(j) / float64(slices)
		return Vector{
			X: r * math.Cos(lat) * math.Cos(lon),
			Y: r * math.Sin(lat),
			Z: r * math.Cos(lat) * math.Sin(lon),
		}
	}

	var ts []*Triangle
	for i := range stacks {
		for j := range slices {
			p1 := point(i, j)
			p2 := point(i+1, j)
			p3 := point(i+1, j+1)
			p4 := point(i, j+1)
			// Normals on a sphere point along the position.
			n1 := p1.Normalize()
			n2 := p2.Normalize()
			n3 := p3.Normalize()
			n4 := p4.Normalize()
			ts = append(ts,
				smoothTriangle(p1, p2, p3, n1, n2, n3),
				smoothTriangle(p1, p3, p4, n1, n3, n4),
			)
		}
	}
	return NewMesh(ts)
}

// NewCone returns a cone of base radius 1 and height 2, base at y = 0
// and apex at (0, 2, 0). The side uses smooth normals tilted by the
// slope; the apex normal points straight up and the base is flat.
func NewCone(segments int) *Mesh {
	const r = 1.0
	const h = 2.0
	apex := Vector{0, h, 0}
	center := Vector{}
	apexNormal := Vector{0, 1, 0}
	down := Vector{0, -1, 0}

	// The side normal at a rim point (x, 0, z) is (x*h/r, r, z*h/r),
	// normalised: perpendicular to the slant in the radial plane.
	sideNormal := func(p Vector) Vector {
		return Vector{p.X * h / r, r, p.Z * h / r}.Normalize()
	}

	var ts []*Triangle
	for i := range segments {
		a1 := float64(i) * 2 * math.Pi / float64(segments)
		a2 := float64(i+1) * 2 * math.Pi / float64(segments)
		p1 := Vector{r * math.Cos(a1), 0, r * math.Sin(a1)}
		p2 := Vector{r * math.Cos(a2), 0, r * math.Sin(a2)}

		ts = append(ts,
			smoothTriangle(apex, p1, p2, apexNormal, sideNormal(p1), sideNormal(p2)),
			smoothTriangle(center, p2, p1, down, down, down),
		)
	}
	return NewMesh(ts)
}
