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

package line

import (
	"fmt"
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

// Method identifies one of the line rasterization algorithms.
type Method int

// The available line rasterization algorithms.
const (
	MethodDDA Method = iota
	MethodBresenhamFloat
	MethodBresenhamInt
	MethodBresenhamSmooth
	MethodWu
)

// Methods lists all line rasterization algorithms.
var Methods = []Method{
	MethodDDA,
	MethodBresenhamFloat,
	MethodBresenhamInt,
	MethodBresenhamSmooth,
	MethodWu,
}

var methodNames = map[Method]string{
	MethodDDA:             "dda",
	MethodBresenhamFloat:  "bresenham_float",
	MethodBresenhamInt:    "bresenham_int",
	MethodBresenhamSmooth: "bresenham_smooth",
	MethodWu:              "wu",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the method with the given name.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown line method %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Method) MarshalText() ([]byte, error) {
	if _, ok := methodNames[m]; !ok {
		return nil, fmt.Errorf("unknown line method %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// IsShaded reports whether the method produces varying intensities.
func (m Method) IsShaded() bool {
	return m == MethodBresenhamSmooth || m == MethodWu
}

// Draw rasterizes the segment from a to b with the given method.
// Methods which do not compute intensities return all pixels with
// [cglab.MaxIntensity].
func Draw(m Method, a, b vec.Vec2) []cglab.Shade {
	switch m {
	case MethodDDA:
		return solid(DDA(a, b))
	case MethodBresenhamFloat:
		return solid(BresenhamFloat(a, b))
	case MethodBresenhamInt:
		return solid(BresenhamInt(a, b))
	case MethodBresenhamSmooth:
		return BresenhamSmooth(a, b)
	case MethodWu:
		return Wu(a, b)
	default:
		panic(fmt.Sprintf("unknown line method %d", int(m)))
	}
}

func solid(pixels []cglab.Pixel) []cglab.Shade {
	res := make([]cglab.Shade, len(pixels))
	for i, p := range pixels {
		res[i] = cglab.Shade{Pixel: p, I: cglab.MaxIntensity}
	}
	return res
}

// Steps counts the diagonal steps in a pixel sequence, i.e. the number of
// consecutive pixel pairs which differ in both coordinates.  Every such
// step is visible as a "jaggy" in the rasterized line.
func Steps(pixels []cglab.Pixel) int {
	n := 0
	for i := 1; i < len(pixels); i++ {
		if pixels[i].X != pixels[i-1].X && pixels[i].Y != pixels[i-1].Y {
			n++
		}
	}
	return n
}

// Trace returns the sequence of primary pixels of a rasterized line,
// suitable for [Steps].  For Wu's algorithm only the first pixel of every
// interior pixel pair is used, framed by the two end points.
func Trace(m Method, a, b vec.Vec2) []cglab.Pixel {
	shades := Draw(m, a, b)
	if m != MethodWu || len(shades) < 2 {
		res := make([]cglab.Pixel, len(shades))
		for i, s := range shades {
			res[i] = s.Pixel
		}
		return res
	}

	res := make([]cglab.Pixel, 0, len(shades)/2+1)
	res = append(res, shades[0].Pixel)
	for i := 2; i < len(shades); i += 2 {
		res = append(res, shades[i].Pixel)
	}
	return append(res, shades[1].Pixel)
}

// JaggyCount is the number of steps of a line drawn at a given angle.
type JaggyCount struct {
	AngleDeg int
	Steps    int
}

// Jaggies measures the number of steps of a line of the given length
// starting at the origin, for every whole angle from 0 to 90 degrees.
func Jaggies(m Method, length float64) []JaggyCount {
	res := make([]JaggyCount, 0, 91)
	for deg := 0; deg <= 90; deg++ {
		end := RotateDeg(vec.Vec2{X: length}, vec.Vec2{}, float64(deg))
		res = append(res, JaggyCount{
			AngleDeg: deg,
			Steps:    Steps(Trace(m, vec.Vec2{}, end)),
		})
	}
	return res
}

// Spectrum returns a fan of segments of the given length, all starting at
// center.  The first segment points in the +x direction; each following
// segment is rotated by stepDeg degrees, until a full turn is completed.
// A non-positive step gives a single segment.
func Spectrum(center vec.Vec2, length, stepDeg float64) []cglab.Segment {
	end := center.Add(vec.Vec2{X: length})
	res := []cglab.Segment{{A: center, B: end}}
	if stepDeg <= 0 {
		return res
	}
	for angle := stepDeg; angle <= 360; angle += stepDeg {
		end = RotateDeg(end, center, stepDeg)
		res = append(res, cglab.Segment{A: center, B: end})
	}
	return res
}

// RotateDeg rotates p around center by the given angle in degrees.
func RotateDeg(p, center vec.Vec2, deg float64) vec.Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	d := p.Sub(center)
	return vec.Vec2{
		X: center.X + d.X*cos - d.Y*sin,
		Y: center.Y + d.X*sin + d.Y*cos,
	}
}
