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

package testcases

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/transform"
	"seehuhn.de/go/geom/vec"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

// yamlScene is the file representation of a Scene.  Exactly one of the
// operation fields must be present.
type yamlScene struct {
	Name       string      `yaml:"name"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Lines      *Lines      `yaml:"lines"`
	Conics     *Conics     `yaml:"conics"`
	ScanFill   *yamlFill   `yaml:"scanfill"`
	SeedFill   *SeedFill   `yaml:"seedfill"`
	ClipRect   *ClipRect   `yaml:"cliprect"`
	ClipConvex *ClipConvex `yaml:"clipconvex"`
	Horizon    *Horizon    `yaml:"horizon"`
	Incenters  *Incenters  `yaml:"incenters"`
	Transform  *yamlTrafo  `yaml:"transform"`
}

type yamlFill struct {
	Rings    [][]vec.Vec2 `yaml:"rings"`
	Flatness float64      `yaml:"flatness"`
}

type yamlTrafo struct {
	Step    float64      `yaml:"step"`
	Actions []yamlAction `yaml:"actions"`
	Undo    int          `yaml:"undo"`
}

// yamlAction holds exactly one of its fields.
type yamlAction struct {
	Translate *transform.Translate `yaml:"translate"`
	Scale     *transform.Scale     `yaml:"scale"`
	Rotate    *transform.Rotate    `yaml:"rotate"`
}

func (ya yamlAction) action() (transform.Action, error) {
	var res []transform.Action
	if ya.Translate != nil {
		res = append(res, *ya.Translate)
	}
	if ya.Scale != nil {
		res = append(res, *ya.Scale)
	}
	if ya.Rotate != nil {
		res = append(res, *ya.Rotate)
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("need exactly one of translate, scale and rotate, got %d", len(res))
	}
	return res[0], nil
}

// LoadYAML reads scenes from a YAML document.  The document maps category
// names to lists of scenes, for example:
//
//	line:
//	  - name: diagonal
//	    width: 32
//	    height: 32
//	    lines:
//	      method: wu
//	      segments:
//	        - {a: {x: 1, y: 1}, b: {x: 30, y: 20}}
func LoadYAML(r io.Reader) (map[string][]Scene, error) {
	var doc map[string][]yamlScene
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scenes: %w", err)
	}

	res := make(map[string][]Scene, len(doc))
	for category, list := range doc {
		if !validName.MatchString(category) {
			return nil, fmt.Errorf("invalid category name %q", category)
		}
		for _, ys := range list {
			s, err := ys.scene()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", category, err)
			}
			res[category] = append(res[category], s)
		}
	}
	return res, nil
}

// LoadYAMLFile reads scenes from the named YAML file.
func LoadYAMLFile(name string) (map[string][]Scene, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadYAML(f)
}

func (ys *yamlScene) scene() (Scene, error) {
	s := Scene{Name: ys.Name, Width: ys.Width, Height: ys.Height}
	if !validName.MatchString(s.Name) {
		return s, fmt.Errorf("invalid scene name %q", s.Name)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return s, fmt.Errorf("scene %q: size %dx%d: %w",
			s.Name, s.Width, s.Height, cglab.ErrDegenerateInput)
	}

	var ops []Operation
	if ys.Lines != nil {
		ops = append(ops, *ys.Lines)
	}
	if ys.Conics != nil {
		ops = append(ops, *ys.Conics)
	}
	if ys.ScanFill != nil {
		ops = append(ops, ScanFill{
			Path:     ringsPath(ys.ScanFill.Rings),
			Flatness: ys.ScanFill.Flatness,
		})
	}
	if ys.SeedFill != nil {
		ops = append(ops, *ys.SeedFill)
	}
	if ys.ClipRect != nil {
		ops = append(ops, *ys.ClipRect)
	}
	if ys.ClipConvex != nil {
		ops = append(ops, *ys.ClipConvex)
	}
	if ys.Horizon != nil {
		ops = append(ops, *ys.Horizon)
	}
	if ys.Incenters != nil {
		ops = append(ops, *ys.Incenters)
	}
	if ys.Transform != nil {
		op := Transform{Step: ys.Transform.Step, Undo: ys.Transform.Undo}
		for i, ya := range ys.Transform.Actions {
			a, err := ya.action()
			if err != nil {
				return s, fmt.Errorf("scene %q: action %d: %w", s.Name, i, err)
			}
			op.Actions = append(op.Actions, a)
		}
		ops = append(ops, op)
	}
	if len(ops) != 1 {
		return s, fmt.Errorf("scene %q: need exactly one operation, got %d", s.Name, len(ops))
	}
	s.Op = ops[0]
	return s, nil
}
