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
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Canvas is an owned polygon-editing surface: a collection of closed
// polygons plus one polygon under construction, together with the fill
// and stroke settings to render them. It holds all state that an
// interactive caller (mouse clicks adding vertices, a key closing the
// polygon) needs; there is no package-level state.
//
// Coordinates use the image convention with the origin in the top-left
// corner and y growing downwards.
type Canvas struct {
	Width, Height int

	// Background is the colour the surface is cleared to.
	Background color.NRGBA

	// FillColor is used for polygon interiors. Its alpha component is
	// honoured, so fills can be translucent over the background.
	FillColor color.NRGBA

	// StrokeColor and StrokeWidth control the polygon outlines.
	StrokeColor color.NRGBA
	StrokeWidth int

	closed  [][]vec.Vec2
	current []vec.Vec2

	filler Filler
	spans  []Span
}

// NewCanvas returns an empty canvas of the given size with the default
// colours: a light grey background, translucent blue fill and a dark
// 2-pixel outline.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:       width,
		Height:      height,
		Background:  color.NRGBA{R: 245, G: 246, B: 248, A: 255},
		FillColor:   color.NRGBA{R: 0, G: 128, B: 255, A: 180},
		StrokeColor: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		StrokeWidth: 2,
	}
}

// AddVertex appends a vertex to the polygon under construction.
func (c *Canvas) AddVertex(x, y float64) {
	c.current = append(c.current, vec.Vec2{X: x, Y: y})
}

// ClosePolygon finishes the polygon under construction and adds it to
// the canvas. It reports whether the polygon was closed; fewer than
// three vertices leave the canvas unchanged.
func (c *Canvas) ClosePolygon() bool {
	if len(c.current) < 3 {
		return false
	}
	c.closed = append(c.closed, c.current)
	c.current = nil
	return true
}

// Clear removes all polygons, closed and under construction.
func (c *Canvas) Clear() {
	c.closed = nil
	c.current = nil
}

// Polygons returns the closed polygons on the canvas. The returned
// slices are owned by the canvas and must not be modified.
func (c *Canvas) Polygons() [][]vec.Vec2 {
	return c.closed
}

// Current returns the polygon under construction, or nil. The returned
// slice is owned by the canvas and must not be modified.
func (c *Canvas) Current() []vec.Vec2 {
	return c.current
}

// LoadExample replaces the canvas content with a predefined closed
// shape, scaled to the canvas size. Available names are "pentagon"
// (convex) and "arrow" (concave, with a notch). It reports whether the
// name was recognised.
func (c *Canvas) LoadExample(name string) bool {
	w, h := float64(c.Width), float64(c.Height)
	var poly []vec.Vec2
	switch name {
	case "pentagon":
		poly = []vec.Vec2{
			{X: 0.25 * w, Y: 0.2 * h}, {X: 0.75 * w, Y: 0.25 * h},
			{X: 0.8 * w, Y: 0.65 * h}, {X: 0.5 * w, Y: 0.85 * h},
			{X: 0.2 * w, Y: 0.6 * h},
		}
	case "arrow":
		poly = []vec.Vec2{
			{X: 0.2 * w, Y: 0.2 * h}, {X: 0.7 * w, Y: 0.2 * h},
			{X: 0.7 * w, Y: 0.05 * h}, {X: 0.95 * w, Y: 0.35 * h},
			{X: 0.7 * w, Y: 0.65 * h}, {X: 0.7 * w, Y: 0.5 * h},
			{X: 0.2 * w, Y: 0.5 * h},
		}
	default:
		return false
	}
	c.closed = [][]vec.Vec2{poly}
	c.current = nil
	return true
}

// Render draws the canvas into a new image: the background, every
// closed polygon filled and outlined, and the outline of the polygon
// under construction.
func (c *Canvas) Render() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := range c.Height {
		for x := range c.Width {
			img.SetNRGBA(x, y, c.Background)
		}
	}

	for _, poly := range c.closed {
		c.spans = c.filler.AppendSpans(c.spans[:0], poly, c.Height-1)
		for _, s := range c.spans {
			x0 := max(int(math.Round(s.X0)), 0)
			x1 := min(int(math.Round(s.X1)), c.Width-1)
			for x := x0; x <= x1; x++ {
				blendNRGBA(img, x, s.Y, c.FillColor)
			}
		}
		c.strokeRing(img, poly, true)
	}
	if len(c.current) >= 2 {
		c.strokeRing(img, c.current, false)
	}

	return img
}

// strokeRing draws the outline of a vertex list, closing it back to
// the first vertex if closed is true.
func (c *Canvas) strokeRing(img *image.NRGBA, poly []vec.Vec2, closed bool) {
	n := len(poly)
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		p0 := roundPoint(poly[i])
		p1 := roundPoint(poly[(i+1)%n])
		c.strokeSegment(img, p0, p1)
	}
}

// strokeSegment draws one line segment with the canvas stroke width.
// Thickness is produced by repeating the line at integer offsets along
// the minor axis, which is sufficient for the small widths used here.
func (c *Canvas) strokeSegment(img *image.NRGBA, p0, p1 image.Point) {
	width := max(c.StrokeWidth, 1)
	steep := abs(p1.Y-p0.Y) > abs(p1.X-p0.X)
	for t := range width {
		off := t - width/2
		q0, q1 := p0, p1
		if steep {
			q0.X += off
			q1.X += off
		} else {
			q0.Y += off
			q1.Y += off
		}
		LinePixels(q0, q1, func(p image.Point) {
			if p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height {
				blendNRGBA(img, p.X, p.Y, c.StrokeColor)
			}
		})
	}
}

// blendNRGBA composites src over the pixel at (x, y) using source-over
// blending on non-premultiplied values.
func blendNRGBA(img *image.NRGBA, x, y int, src color.NRGBA) {
	if src.A == 0xff {
		img.SetNRGBA(x, y, src)
		return
	}
	dst := img.NRGBAAt(x, y)
	a := uint32(src.A)
	na := 255 - a
	img.SetNRGBA(x, y, color.NRGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*na) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*na) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*na) / 255),
		A: uint8(255 - (na*(255-uint32(dst.A)))/255),
	})
}

func roundPoint(v vec.Vec2) image.Point {
	return image.Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
