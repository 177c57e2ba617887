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
	"image/color"
	"math"
)

// Color is an RGB colour with float64 components, nominally in [0, 1].
// Intermediate lighting results may exceed the range; Clamp restores
// it.
type Color struct {
	R, G, B float64
}

func (c Color) Add(d Color) Color {
	return Color{c.R + d.R, c.G + d.G, c.B + d.B}
}

// Mul multiplies component-wise.
func (c Color) Mul(d Color) Color {
	return Color{c.R * d.R, c.G * d.G, c.B * d.B}
}

func (c Color) MulScalar(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

func (c Color) Clamp() Color {
	return Color{
		R: min(max(c.R, 0), 1),
		G: min(max(c.G, 0), 1),
		B: min(max(c.B, 0), 1),
	}
}

// NRGBA converts to an 8-bit colour with full opacity.
func (c Color) NRGBA() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}

// Light is a point light source with separate intensities for the
// three Phong terms.
type Light struct {
	Position Vector
	Ambient  Color
	Diffuse  Color
	Specular Color
}

// NewLight returns the default scene light: a white source above and to
// the side of the viewer.
func NewLight() *Light {
	return &Light{
		Position: Vector{3, 3, 3},
		Ambient:  Color{0.2, 0.2, 0.2},
		Diffuse:  Color{0.8, 0.8, 0.8},
		Specular: Color{1, 1, 1},
	}
}

// Material describes a Phong surface.
type Material struct {
	Ambient   Color
	Diffuse   Color
	Specular  Color
	Shininess float64
}

// MaterialFromColor derives a material from a base colour: the ambient
// reflectance is 30% of the base, the diffuse reflectance the base
// itself, and highlights are white.
func MaterialFromColor(c Color) *Material {
	return &Material{
		Ambient:   c.MulScalar(0.3),
		Diffuse:   c,
		Specular:  Color{1, 1, 1},
		Shininess: 50,
	}
}

// NewMaterial returns the default teal material.
func NewMaterial() *Material {
	return MaterialFromColor(Color{0.2, 0.6, 0.7})
}

// Boost factors applied to the Phong terms. The scene is lit by a
// single source, so the raw terms come out dark; the boosts bring the
// image to a comfortable brightness before clamping.
const (
	ambientBoost  = 2.0
	diffuseBoost  = 1.2
	specularBoost = 0.8
)

// phongLighting evaluates the Phong reflection model at a surface
// point with the given unit normal, as seen from eye.
func phongLighting(point, normal Vector, light *Light, mat *Material, eye Vector) Color {
	ambient := light.Ambient.Mul(mat.Ambient).MulScalar(ambientBoost)

	l := light.Position.Sub(point).Normalize()
	nDotL := normal.Dot(l)
	if nDotL <= 0 {
		return ambient.Clamp()
	}
	diffuse := light.Diffuse.Mul(mat.Diffuse).MulScalar(nDotL * diffuseBoost)

	// Specular term with the mirror reflection vector.
	refl := normal.MulScalar(2 * nDotL).Sub(l)
	v := eye.Sub(point).Normalize()
	rDotV := refl.Dot(v)
	specular := Color{}
	if rDotV > 0 {
		s := math.Pow(rDotV, mat.Shininess) * specularBoost
		specular = light.Specular.Mul(mat.Specular).MulScalar(s)
	}

	return ambient.Add(diffuse).Add(specular).Clamp()
}

// Shader transforms vertices and colours fragments. Vertex must fill
// in the Output and World fields; Fragment receives the interpolated
// vertex and the triangle it came from.
type Shader interface {
	Vertex(v Vertex) Vertex
	Fragment(v Vertex, t *Triangle) Color
}

// shaderBase holds the state shared by the three shading models.
type shaderBase struct {
	// Matrix maps world space to clip space (projection times view).
	Matrix Matrix

	// ModelMatrix maps model space to world space.
	ModelMatrix Matrix

	Light    *Light
	Material *Material

	// Eye is the camera position in world space, for the specular
	// term.
	Eye Vector
}

func (s *shaderBase) transform(v Vertex) Vertex {
	v.World = s.ModelMatrix.MulPosition(v.Position)
	v.Normal = s.ModelMatrix.MulDirection(v.Normal).Normalize()
	v.Output = s.Matrix.MulPositionW(v.World)
	return v
}

// FlatShader lights each face once, at its centroid with the face
// normal, giving the classic faceted look.
type FlatShader struct {
	shaderBase
}

func NewFlatShader(m Matrix, light *Light, mat *Material, eye Vector) *FlatShader {
	return &FlatShader{shaderBase{
		Matrix:      m,
		ModelMatrix: Identity(),
		Light:       light,
		Material:    mat,
		Eye:         eye,
	}}
}

func (s *FlatShader) Vertex(v Vertex) Vertex {
	return s.transform(v)
}

func (s *FlatShader) Fragment(v Vertex, t *Triangle) Color {
	centroid := t.V1.Position.
		Add(t.V2.Position).
		Add(t.V3.Position).
		MulScalar(1.0 / 3)
	point := s.ModelMatrix.MulPosition(centroid)
	normal := s.ModelMatrix.MulDirection(t.Normal()).Normalize()
	return phongLighting(point, normal, s.Light, s.Material, s.Eye)
}

// GouraudShader lights each vertex and interpolates the resulting
// colours across the face.
type GouraudShader struct {
	shaderBase
}

func NewGouraudShader(m Matrix, light *Light, mat *Material, eye Vector) *GouraudShader {
	return &GouraudShader{shaderBase{
		Matrix:      m,
		ModelMatrix: Identity(),
		Light:       light,
		Material:    mat,
		Eye:         eye,
	}}
}

func (s *GouraudShader) Vertex(v Vertex) Vertex {
	v = s.transform(v)
	v.Color = phongLighting(v.World, v.Normal, s.Light, s.Material, s.Eye)
	return v
}

func (s *GouraudShader) Fragment(v Vertex, _ *Triangle) Color {
	return v.Color.Clamp()
}

// PhongShader interpolates positions and normals across the face and
// evaluates the lighting per fragment. Slowest and smoothest.
type PhongShader struct {
	shaderBase
}

func NewPhongShader(m Matrix, light *Light, mat *Material, eye Vector) *PhongShader {
	return &PhongShader{shaderBase{
		Matrix:      m,
		ModelMatrix: Identity(),
		Light:       light,
		Material:    mat,
		Eye:         eye,
	}}
}

func (s *PhongShader) Vertex(v Vertex) Vertex {
	return s.transform(v)
}

func (s *PhongShader) Fragment(v Vertex, _ *Triangle) Color {
	return phongLighting(v.World, v.Normal.Normalize(), s.Light, s.Material, s.Eye)
}
