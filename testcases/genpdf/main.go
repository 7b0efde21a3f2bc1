// seehuhn.de/go/cglab - rasterization and clipping algorithms
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

// Command genpdf renders every scene to a PDF file and to a PNG image.
//
// The PDF shows the algorithm output as vector graphics, pixel outputs as
// unit squares.  The PNG is rasterized directly; with -gs, the PDF is also
// rendered to a second PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"golang.org/x/image/vector"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/line"
	"seehuhn.de/go/cglab/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

func main() {
	outDir := flag.String("o", "testdata/reference", "output directory")
	sceneFile := flag.String("scenes", "", "YAML file with scenes (default: built-in scenes)")
	useGS := flag.Bool("gs", false, "also render the PDFs with Ghostscript")
	verbose := flag.Bool("v", false, "log algorithm details")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cglab.SetLogger(logger)

	all := testcases.All
	if *sceneFile != "" {
		var err error
		all, err = testcases.LoadYAMLFile(*sceneFile)
		if err != nil {
			panic(err)
		}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(all)) {
		for _, s := range all[category] {
			name := category + "_" + s.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			out, err := testcases.Run(s)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(s, out, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePNG(s, out, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *useGS {
				gsPath := filepath.Join(*outDir, name+"_gs.png")
				if err := renderGhostscript(pdfPath, gsPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
			logger.Debug("scene done", "name", name)
		}
	}
}

func generatePDF(s testcases.Scene, out *testcases.Output, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI).  Both PDF and the
	// scenes have the origin in the bottom-left corner.
	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(s.Width), float64(s.Height))
	page.Fill()

	// pixels are unit squares with their lower left corner at (x, y)
	for _, sh := range out.Shades {
		page.SetFillColor(color.DeviceGray(sh.I / cglab.MaxIntensity))
		page.Rectangle(float64(sh.X), float64(sh.Y), 1, 1)
		page.Fill()
	}
	if len(out.Spans) > 0 {
		page.SetFillColor(color.DeviceGray(0.85))
		for _, sp := range out.Spans {
			page.Rectangle(float64(sp.X0), float64(sp.Y), float64(sp.Len()), 1)
		}
		page.Fill()
	}

	// vector output is drawn through pixel centers
	page.Transform(matrix.Identity.Translate(0.5, 0.5))

	if len(out.Polygons) > 0 {
		page.SetFillColor(color.DeviceGray(0.6))
		for _, p := range out.Polygons {
			polygonPath(page, p)
		}
		page.Fill()
	}
	if len(out.Window) > 0 {
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(1)
		polygonPath(page, out.Window)
		page.Stroke()
	}
	if len(out.Input) > 0 {
		page.SetStrokeColor(color.DeviceGray(0.3))
		page.SetLineWidth(0.5)
		segmentsPath(page, out.Input)
		page.Stroke()
	}
	if len(out.Segments) > 0 {
		page.SetStrokeColor(color.DeviceGray(1))
		page.SetLineWidth(1)
		segmentsPath(page, out.Segments)
		page.Stroke()
	}

	return page.Close()
}

// pathBuilder is the part of the PDF page API used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func polygonPath(page pathBuilder, pts []vec.Vec2) {
	page.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		page.LineTo(p.X, p.Y)
	}
	page.ClosePath()
}

func segmentsPath(page pathBuilder, segs []cglab.Segment) {
	for _, l := range segs {
		page.MoveTo(l.A.X, l.A.Y)
		page.LineTo(l.B.X, l.B.Y)
	}
}

// writePNG rasterizes the output directly.  Seed fill scenes come with
// their own canvas image.
func writePNG(s testcases.Scene, out *testcases.Output, pngPath string) error {
	var img image.Image
	if out.Image != nil {
		img = out.Image
	} else {
		img = rasterize(s, out)
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func rasterize(s testcases.Scene, out *testcases.Output) *image.Gray {
	w, h := s.Width, s.Height
	img := image.NewGray(image.Rect(0, 0, w, h))

	// image rows run downwards
	plot := func(x, y int, v float64) {
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		g := uint8(min(v, cglab.MaxIntensity))
		if g > img.GrayAt(x, h-1-y).Y {
			img.SetGray(x, h-1-y, stdcolor.Gray{Y: g})
		}
	}
	stroke := func(segs []cglab.Segment, scale float64) {
		for _, l := range segs {
			for _, sh := range line.Wu(l.A, l.B) {
				plot(sh.X, sh.Y, sh.I*scale)
			}
		}
	}

	if len(out.Polygons) > 0 {
		z := vector.NewRasterizer(w, h)
		for _, p := range out.Polygons {
			z.MoveTo(float32(p[0].X+0.5), float32(float64(h)-p[0].Y-0.5))
			for _, q := range p[1:] {
				z.LineTo(float32(q.X+0.5), float32(float64(h)-q.Y-0.5))
			}
			z.ClosePath()
		}
		z.Draw(img, img.Bounds(), image.NewUniform(stdcolor.Gray{Y: 150}), image.Point{})
	}
	for _, sp := range out.Spans {
		for x := sp.X0; x <= sp.X1; x++ {
			plot(x, sp.Y, 220)
		}
	}
	for _, sh := range out.Shades {
		plot(sh.X, sh.Y, sh.I)
	}
	if len(out.Window) > 0 {
		var edges []cglab.Segment
		for i, p := range out.Window {
			edges = append(edges, cglab.Segment{A: p, B: out.Window[(i+1)%len(out.Window)]})
		}
		stroke(edges, 0.5)
	}
	stroke(out.Input, 0.3)
	stroke(out.Segments, 1)

	return img
}

func renderGhostscript(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
