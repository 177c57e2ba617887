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

// Projection selects between perspective and orthographic cameras.
type Projection int

const (
	PerspectiveProjection Projection = iota
	OrthographicProjection
)

// Camera orbit parameters.
const (
	minDistance = 2.0
	maxDistance = 20.0
	maxAngleX   = 89.0

	// rotateFactor converts drag distance to degrees of rotation.
	rotateFactor = 0.5
)

// Camera orbits the origin at a fixed distance, controlled by two
// angles in degrees. AngleX pitches above or below the horizon and is
// clamped short of the poles; AngleY yaws around the vertical axis.
type Camera struct {
	Distance float64
	AngleX   float64
	AngleY   float64

	Fovy       float64 // vertical field of view, degrees
	Near, Far  float64
	Projection Projection
}

// NewCamera returns a camera with the default orbit: distance 8,
// looking at the origin from slightly above.
func NewCamera() *Camera {
	return &Camera{
		Distance: 8,
		AngleX:   20,
		AngleY:   -30,
		Fovy:     45,
		Near:     0.1,
		Far:      100,
	}
}

// Position returns the camera position in world space.
func (c *Camera) Position() Vector {
	ax := c.AngleX * math.Pi / 180
	ay := c.AngleY * math.Pi / 180
	return Vector{
		X: c.Distance * math.Cos(ax) * math.Sin(ay),
		Y: c.Distance * math.Sin(ax),
		Z: c.Distance * math.Cos(ax) * math.Cos(ay),
	}
}

// Rotate orbits the camera by a drag of (dx, dy) screen units. The
// pitch is clamped so the camera cannot flip over the poles.
func (c *Camera) Rotate(dx, dy float64) {
	c.AngleY += dx * rotateFactor
	c.AngleX += dy * rotateFactor
	c.AngleX = min(max(c.AngleX, -maxAngleX), maxAngleX)
}

// Zoom moves the camera towards or away from the origin. Positive
// delta zooms in. The distance is clamped to [2, 20].
func (c *Camera) Zoom(delta float64) {
	c.Distance -= delta
	c.Distance = min(max(c.Distance, minDistance), maxDistance)
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() Matrix {
	return LookAt(c.Position(), Vector{}, Vector{Y: 1})
}

// ProjectionMatrix returns the camera-to-clip transform for the given
// aspect ratio. For the orthographic projection the view volume is
// scaled with the orbit distance, so zooming keeps working.
func (c *Camera) ProjectionMatrix(aspect float64) Matrix {
	if c.Projection == OrthographicProjection {
		h := c.Distance * math.Tan(c.Fovy*math.Pi/360)
		w := h * aspect
		return Orthographic(-w, w, -h, h, c.Near, c.Far)
	}
	return Perspective(c.Fovy, aspect, c.Near, c.Far)
}
