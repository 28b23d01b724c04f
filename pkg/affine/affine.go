// uiext - Media and text helpers written in Go.
// Copyright (C) 2024 Tulir Asokan
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package affine contains a small 2D affine transform type.
//
// The builder methods follow the CoreGraphics convention: each one returns
// a transform that applies the new operation to a point first and the
// receiver afterwards. Building Identity().Translate(w, 0).Rotate(θ) thus
// rotates points and then translates them.
package affine

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Transform is the matrix
//
//	a  b  c
//	d  e  f
//	0  0  1
//
// which maps (x, y) to (a*x + b*y + c, d*x + e*y + f).
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	return Transform{A: 1, E: 1}
}

func translation(tx, ty float64) Transform {
	return Transform{A: 1, C: tx, E: 1, F: ty}
}

func rotation(theta float64) Transform {
	sin, cos := sincos(theta)
	return Transform{A: cos, B: -sin, D: sin, E: cos}
}

func scaling(sx, sy float64) Transform {
	return Transform{A: sx, E: sy}
}

// sincos returns exact values for multiples of a quarter turn so that
// right-angle rotations stay pixel exact.
func sincos(theta float64) (sin, cos float64) {
	quarters := theta / (math.Pi / 2)
	if rounded := math.Round(quarters); math.Abs(quarters-rounded) < 1e-9 {
		switch (int(rounded)%4 + 4) % 4 {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		case 3:
			return -1, 0
		}
	}
	return math.Sincos(theta)
}

// Concat returns the transform that applies t first and then u.
func Concat(t, u Transform) Transform {
	return Transform{
		A: u.A*t.A + u.B*t.D,
		B: u.A*t.B + u.B*t.E,
		C: u.A*t.C + u.B*t.F + u.C,
		D: u.D*t.A + u.E*t.D,
		E: u.D*t.B + u.E*t.E,
		F: u.D*t.C + u.E*t.F + u.F,
	}
}

// Translate returns a transform that moves points by (tx, ty) before applying t.
func (t Transform) Translate(tx, ty float64) Transform {
	return Concat(translation(tx, ty), t)
}

// Rotate returns a transform that rotates points by theta radians around
// the origin before applying t. In a y-down raster space positive angles
// turn content clockwise.
func (t Transform) Rotate(theta float64) Transform {
	return Concat(rotation(theta), t)
}

// Scale returns a transform that scales points by (sx, sy) before applying t.
func (t Transform) Scale(sx, sy float64) Transform {
	return Concat(scaling(sx, sy), t)
}

// Apply maps the point (x, y) through t.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.B*y + t.C, t.D*x + t.E*y + t.F
}

func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// IsIntegerTranslation reports whether t only moves points by whole numbers.
func (t Transform) IsIntegerTranslation() (dx, dy int, ok bool) {
	if t.A != 1 || t.B != 0 || t.D != 0 || t.E != 1 {
		return 0, 0, false
	}
	dx, dy = int(t.C), int(t.F)
	return dx, dy, float64(dx) == t.C && float64(dy) == t.F
}

// Aff3 returns t in the layout used by golang.org/x/image/draw.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{t.A, t.B, t.C, t.D, t.E, t.F}
}

func (t Transform) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", t.A, t.B, t.C, t.D, t.E, t.F)
}
