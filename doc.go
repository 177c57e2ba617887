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

// Package scanfill converts closed polygons to horizontal pixel spans
// using the classic edge table / active edge table scanline algorithm.
//
// The caller supplies a polygon as an ordered vertex list (implicitly
// closed, either winding) together with the maximum scanline index to
// consider, and receives the list of spans covering the polygon's
// interior under the even-odd fill rule. Self-intersecting polygons are
// not supported: they do not crash the sweep, but the resulting spans
// may not match visual expectations.
package scanfill

//go:generate go run ./testcases/export
