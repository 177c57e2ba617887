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

// Command filldemo renders a gallery of example images: the 2D example
// polygons filled on a canvas, and the 3D solids under the three
// shading models.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"seehuhn.de/go/scanfill"
	"seehuhn.de/go/scanfill/viewer"
)

func main() {
	outDir := flag.String("o", "demo", "output directory")
	size := flag.Int("size", 512, "image size in pixels")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, name := range []string{"pentagon", "arrow"} {
		c := scanfill.NewCanvas(*size, *size)
		c.LoadExample(name)
		if err := writePNG(*outDir, "canvas_"+name, c.Render()); err != nil {
			log.Fatal(err)
		}
	}

	solids := map[string]*viewer.Mesh{
		"cube":     viewer.NewCube(),
		"pyramid":  viewer.NewPyramid(),
		"cylinder": viewer.NewCylinder(32),
		"sphere":   viewer.NewSphere(24, 48),
		"cone":     viewer.NewCone(32),
	}
	models := []viewer.ShadingModel{viewer.Flat, viewer.Gouraud, viewer.Phong}

	for name, mesh := range solids {
		for _, model := range models {
			s := viewer.NewScene(mesh)
			s.Shading = model
			s.Scale = 2
			img := s.Render(*size, *size)
			err := writePNG(*outDir, name+"_"+model.String(), img)
			if err != nil {
				log.Fatal(err)
			}
		}
	}
}

func writePNG(dir, name string, img image.Image) error {
	path := filepath.Join(dir, name+".png")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	log.Println("wrote", path)
	return f.Close()
}
