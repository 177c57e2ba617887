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

import "math"

// Vector is a point or direction in 3D space.
type Vector struct {
	X, Y, Z float64
}

func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

func (v Vector) MulScalar(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vector) Cross(w Vector) Vector {
	return Vector{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector if v has zero length.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return v.MulScalar(1 / l)
}

// VectorW is a vector in homogeneous coordinates.
type VectorW struct {
	X, Y, Z, W float64
}

// Vector performs the perspective divide.
func (v VectorW) Vector() Vector {
	return Vector{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// Matrix is a row-major 4×4 transformation matrix.
type Matrix struct {
	X00, X01, X02, X03 float64
	X10, X11, X12, X13 float64
	X20, X21, X22, X23 float64
	X30, X31, X32, X33 float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation by v.
func Translate(v Vector) Matrix {
	return Matrix{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Scale returns a scaling by the per-axis factors in v.
func Scale(v Vector) Matrix {
	return Matrix{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// Rotate returns a rotation by angle radians about the given axis.
func Rotate(axis Vector, angle float64) Matrix {
	a := axis.Normalize()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c
	return Matrix{
		m*a.X*a.X + c, m*a.X*a.Y - a.Z*s, m*a.X*a.Z + a.Y*s, 0,
		m*a.X*a.Y + a.Z*s, m*a.Y*a.Y + c, m*a.Y*a.Z - a.X*s, 0,
		m*a.X*a.Z - a.Y*s, m*a.Y*a.Z + a.X*s, m*a.Z*a.Z + c, 0,
		0, 0, 0, 1,
	}
}

// LookAt returns the view matrix for a camera at eye looking towards
// center with the given up direction.
func LookAt(eye, center, up Vector) Matrix {
	z := eye.Sub(center).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return Matrix{
		x.X, x.Y, x.Z, -x.Dot(eye),
		y.X, y.Y, y.Z, -y.Dot(eye),
		z.X, z.Y, z.Z, -z.Dot(eye),
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection. fovy is the vertical
// field of view in degrees.
func Perspective(fovy, aspect, near, far float64) Matrix {
	ymax := near * math.Tan(fovy*math.Pi/360)
	xmax := ymax * aspect
	return frustum(-xmax, xmax, -ymax, ymax, near, far)
}

func frustum(l, r, b, t, n, f float64) Matrix {
	t1 := 2 * n
	t2 := r - l
	t3 := t - b
	t4 := f - n
	return Matrix{
		t1 / t2, 0, (r + l) / t2, 0,
		0, t1 / t3, (t + b) / t3, 0,
		0, 0, (-f - n) / t4, (-t1 * f) / t4,
		0, 0, -1, 0,
	}
}

// Orthographic returns an orthographic projection with the given
// clipping planes.
func Orthographic(l, r, b, t, n, f float64) Matrix {
	return Matrix{
		2 / (r - l), 0, 0, -(r + l) / (r - l),
		0, 2 / (t - b), 0, -(t + b) / (t - b),
		0, 0, -2 / (f - n), -(f + n) / (f - n),
		0, 0, 0, 1,
	}
}

// Screen maps normalised device coordinates to pixel coordinates with
// the origin in the top-left corner and depth in [0, 1].
func Screen(width, height int) Matrix {
	w2 := float64(width) / 2
	h2 := float64(height) / 2
	return Matrix{
		w2, 0, 0, w2,
		0, -h2, 0, h2,
		0, 0, 0.5, 0.5,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product a*b, so that applying the result is
// the same as applying b first and a second.
func (a Matrix) Mul(b Matrix) Matrix {
	return Matrix{
		a.X00*b.X00 + a.X01*b.X10 + a.X02*b.X20 + a.X03*b.X30,
		a.X00*b.X01 + a.X01*b.X11 + a.X02*b.X21 + a.X03*b.X31,
		a.X00*b.X02 + a.X01*b.X12 + a.X02*b.X22 + a.X03*b.X32,
		a.X00*b.X03 + a.X01*b.X13 + a.X02*b.X23 + a.X03*b.X33,
		a.X10*b.X00 + a.X11*b.X10 + a.X12*b.X20 + a.X13*b.X30,
		a.X10*b.X01 + a.X11*b.X11 + a.X12*b.X21 + a.X13*b.X31,
		a.X10*b.X02 + a.X11*b.X12 + a.X12*b.X22 + a.X13*b.X32,
		a.X10*b.X03 + a.X11*b.X13 + a.X12*b.X23 + a.X13*b.X33,
		a.X20*b.X00 + a.X21*b.X10 + a.X22*b.X20 + a.X23*b.X30,
		a.X20*b.X01 + a.X21*b.X11 + a.X22*b.X21 + a.X23*b.X31,
		a.X20*b.X02 + a.X21*b.X12 + a.X22*b.X22 + a.X23*b.X32,
		a.X20*b.X03 + a.X21*b.X13 + a.X22*b.X23 + a.X23*b.X33,
		a.X30*b.X00 + a.X31*b.X10 + a.X32*b.X20 + a.X33*b.X30,
		a.X30*b.X01 + a.X31*b.X11 + a.X32*b.X21 + a.X33*b.X31,
		a.X30*b.X02 + a.X31*b.X12 + a.X32*b.X22 + a.X33*b.X32,
		a.X30*b.X03 + a.X31*b.X13 + a.X32*b.X23 + a.X33*b.X33,
	}
}

// MulPosition transforms a point, performing the perspective divide if
// the matrix has a projective component.
func (a Matrix) MulPosition(v Vector) Vector {
	return a.MulPositionW(v).Vector()
}

// MulPositionW transforms a point into homogeneous coordinates without
// the perspective divide.
func (a Matrix) MulPositionW(v Vector) VectorW {
	return VectorW{
		a.X00*v.X + a.X01*v.Y + a.X02*v.Z + a.X03,
		a.X10*v.X + a.X11*v.Y + a.X12*v.Z + a.X13,
		a.X20*v.X + a.X21*v.Y + a.X22*v.Z + a.X23,
		a.X30*v.X + a.X31*v.Y + a.X32*v.Z + a.X33,
	}
}

// MulDirection transforms a direction, ignoring translation.
func (a Matrix) MulDirection(v Vector) Vector {
	return Vector{
		a.X00*v.X + a.X01*v.Y + a.X02*v.Z,
		a.X10*v.X + a.X11*v.Y + a.X12*v.Z,
		a.X20*v.X + a.X21*v.Y + a.X22*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (a Matrix) Transpose() Matrix {
	return Matrix{
		a.X00, a.X10, a.X20, a.X30,
		a.X01, a.X11, a.X21, a.X31,
		a.X02, a.X12, a.X22, a.X32,
		a.X03, a.X13, a.X23, a.X33,
	}
}

// Inverse returns the inverse matrix. The matrix must be non-singular.
func (a Matrix) Inverse() Matrix {
	m := Matrix{}
	r := 1 / a.Determinant()
	m.X00 = (a.X12*a.X23*a.X31 - a.X13*a.X22*a.X31 + a.X13*a.X21*a.X32 - a.X11*a.X23*a.X32 - a.X12*a.X21*a.X33 + a.X11*a.X22*a.X33) * r
	m.X01 = (a.X03*a.X22*a.X31 - a.X02*a.X23*a.X31 - a.X03*a.X21*a.X32 + a.X01*a.X23*a.X32 + a.X02*a.X21*a.X33 - a.X01*a.X22*a.X33) * r
	m.X02 = (a.X02*a.X13*a.X31 - a.X03*a.X12*a.X31 + a.X03*a.X11*a.X32 - a.X01*a.X13*a.X32 - a.X02*a.X11*a.X33 + a.X01*a.X12*a.X33) * r
	m.X03 = (a.X03*a.X12*a.X21 - a.X02*a.X13*a.X21 - a.X03*a.X11*a.X22 + a.X01*a.X13*a.X22 + a.X02*a.X11*a.X23 - a.X01*a.X12*a.X23) * r
	m.X10 = (a.X13*a.X22*a.X30 - a.X12*a.X23*a.X30 - a.X13*a.X20*a.X32 + a.X10*a.X23*a.X32 + a.X12*a.X20*a.X33 - a.X10*a.X22*a.X33) * r
	m.X11 = (a.X02*a.X23*a.X30 - a.X03*a.X22*a.X30 + a.X03*a.X20*a.X32 - a.X00*a.X23*a.X32 - a.X02*a.X20*a.X33 + a.X00*a.X22*a.X33) * r
	m.X12 = (a.X03*a.X12*a.X30 - a.X02*a.X13*a.X30 - a.X03*a.X10*a.X32 + a.X00*a.X13*a.X32 + a.X02*a.X10*a.X33 - a.X00*a.X12*a.X33) * r
	m.X13 = (a.X02*a.X13*a.X20 - a.X03*a.X12*a.X20 + a.X03*a.X10*a.X22 - a.X00*a.X13*a.X22 - a.X02*a.X10*a.X23 + a.X00*a.X12*a.X23) * r
	m.X20 = (a.X11*a.X23*a.X30 - a.X13*a.X21*a.X30 + a.X13*a.X20*a.X31 - a.X10*a.X23*a.X31 - a.X11*a.X20*a.X33 + a.X10*a.X21*a.X33) * r
	m.X21 = (a.X03*a.X21*a.X30 - a.X01*a.X23*a.X30 - a.X03*a.X20*a.X31 + a.X00*a.X23*a.X31 + a.X01*a.X20*a.X33 - a.X00*a.X21*a.X33) * r
	m.X22 = (a.X01*a.X13*a.X30 - a.X03*a.X11*a.X30 + a.X03*a.X10*a.X31 - a.X00*a.X13*a.X31 - a.X01*a.X10*a.X33 + a.X00*a.X11*a.X33) * r
	m.X23 = (a.X03*a.X11*a.X20 - a.X01*a.X13*a.X20 - a.X03*a.X10*a.X21 + a.X00*a.X13*a.X21 + a.X01*a.X10*a.X23 - a.X00*a.X11*a.X23) * r
	m.X30 = (a.X12*a.X21*a.X30 - a.X11*a.X22*a.X30 - a.X12*a.X20*a.X31 + a.X10*a.X22*a.X31 + a.X11*a.X20*a.X32 - a.X10*a.X21*a.X32) * r
	m.X31 = (a.X01*a.X22*a.X30 - a.X02*a.X21*a.X30 + a.X02*a.X20*a.X31 - a.X00*a.X22*a.X31 - a.X01*a.X20*a.X32 + a.X00*a.X21*a.X32) * r
	m.X32 = (a.X02*a.X11*a.X30 - a.X01*a.X12*a.X30 - a.X02*a.X10*a.X31 + a.X00*a.X12*a.X31 + a.X01*a.X10*a.X32 - a.X00*a.X11*a.X32) * r
	m.X33 = (a.X01*a.X12*a.X20 - a.X02*a.X11*a.X20 + a.X02*a.X10*a.X21 - a.X00*a.X12*a.X21 - a.X01*a.X10*a.X22 + a.X00*a.X11*a.X22) * r
	return m
}

// Determinant returns the determinant of the matrix.
func (a Matrix) Determinant() float64 {
	return a.X00*a.X11*a.X22*a.X33 - a.X00*a.X11*a.X23*a.X32 +
		a.X00*a.X12*a.X23*a.X31 - a.X00*a.X12*a.X21*a.X33 +
		a.X00*a.X13*a.X21*a.X32 - a.X00*a.X13*a.X22*a.X31 -
		a.X01*a.X12*a.X23*a.X30 + a.X01*a.X12*a.X20*a.X33 -
		a.X01*a.X13*a.X20*a.X32 + a.X01*a.X13*a.X22*a.X30 -
		a.X01*a.X10*a.X22*a.X33 + a.X01*a.X10*a.X23*a.X32 +
		a.X02*a.X13*a.X20*a.X31 - a.X02*a.X13*a.X21*a.X30 +
		a.X02*a.X10*a.X21*a.X33 - a.X02*a.X10*a.X23*a.X31 +
		a.X02*a.X11*a.X23*a.X30 - a.X02*a.X11*a.X20*a.X33 -
		a.X03*a.X10*a.X21*a.X32 + a.X03*a.X10*a.X22*a.X31 -
		a.X03*a.X11*a.X22*a.X30 + a.X03*a.X11*a.X20*a.X32 -
		a.X03*a.X12*a.X20*a.X31 + a.X03*a.X12*a.X21*a.X30
}
