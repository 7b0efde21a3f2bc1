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

// Command export runs every scene and writes the inputs and algorithm
// outputs to JSON, for comparison with other implementations.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/testcases"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func main() {
	outFile := flag.String("o", "testdata/scenes.json", "output file")
	sceneFile := flag.String("scenes", "", "YAML file with scenes (default: built-in scenes)")
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

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(all)) {
		for _, s := range all[category] {
			js, err := toJSON(category, s)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, s.Name, err))
			}
			out.Scenes = append(out.Scenes, js)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
	logger.Info("scenes written", "file", *outFile, "count", len(out.Scenes))
}

type jsonScene struct {
	Name     string         `json:"name"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Op       string         `json:"op"`
	Method   string         `json:"method,omitempty"`
	Path     []jsonSegment  `json:"path,omitempty"`
	Shades   [][3]float64   `json:"shades,omitempty"`
	Spans    [][3]int       `json:"spans,omitempty"`
	Window   [][2]float64   `json:"window,omitempty"`
	Actions  []string       `json:"actions,omitempty"`
	Input    [][4]float64   `json:"input,omitempty"`
	Segments [][4]float64   `json:"segments,omitempty"`
	Polygons [][][2]float64 `json:"polygons,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, s testcases.Scene) (jsonScene, error) {
	js := jsonScene{
		Name:   category + "_" + s.Name,
		Width:  s.Width,
		Height: s.Height,
	}

	switch op := s.Op.(type) {
	case testcases.Lines:
		js.Op = "lines"
		js.Method = op.Method.String()
	case testcases.Conics:
		js.Op = "conics"
		js.Method = op.Method.String()
	case testcases.ScanFill:
		js.Op = "scanfill"
		js.Path = pathToJSON(op.Path)
	case testcases.SeedFill:
		js.Op = "seedfill"
		if op.Recursive {
			js.Method = "recursive"
		} else {
			js.Method = "iterative"
		}
	case testcases.ClipRect:
		js.Op = "cliprect"
	case testcases.ClipConvex:
		js.Op = "clipconvex"
	case testcases.Horizon:
		js.Op = "horizon"
		js.Method = op.Surface
	case testcases.Incenters:
		js.Op = "incenters"
	case testcases.Transform:
		js.Op = "transform"
		n := min(len(op.Actions), max(0, len(op.Actions)-op.Undo))
		for _, a := range op.Actions[:n] {
			js.Actions = append(js.Actions, a.String())
		}
	}

	out, err := testcases.Run(s)
	if err != nil {
		return js, err
	}
	for _, sh := range out.Shades {
		js.Shades = append(js.Shades, [3]float64{float64(sh.X), float64(sh.Y), sh.I})
	}
	for _, sp := range out.Spans {
		js.Spans = append(js.Spans, [3]int{sp.Y, sp.X0, sp.X1})
	}
	js.Window = points(out.Window)
	js.Input = segments(out.Input)
	js.Segments = segments(out.Segments)
	for _, p := range out.Polygons {
		js.Polygons = append(js.Polygons, points(p))
	}
	return js, nil
}

func segments(segs []cglab.Segment) [][4]float64 {
	var res [][4]float64
	for _, l := range segs {
		res = append(res, [4]float64{l.A.X, l.A.Y, l.B.X, l.B.Y})
	}
	return res
}

func points(pts []vec.Vec2) [][2]float64 {
	var res [][2]float64
	for _, p := range pts {
		res = append(res, [2]float64{p.X, p.Y})
	}
	return res
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
