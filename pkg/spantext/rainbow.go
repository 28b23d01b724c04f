// Copyright (c) 2024 Tulir Asokan
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package spantext

import (
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
	"go.mau.fi/tcell"
)

// GradientTable from https://github.com/lucasb-eyer/go-colorful/blob/master/doc/gradientgen/gradientgen.go
type GradientTable []struct {
	Col colorful.Color
	Pos float64
}

func (gt GradientTable) GetInterpolatedColorFor(t float64) colorful.Color {
	for i := 0; i < len(gt)-1; i++ {
		c1 := gt[i]
		c2 := gt[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			t := (t - c1.Pos) / (c2.Pos - c1.Pos)
			return c1.Col.BlendHcl(c2.Col, t).Clamped()
		}
	}
	return gt[len(gt)-1].Col
}

var Gradient = GradientTable{
	{colorful.LinearRgb(1, 0, 0), 0 / 11.0},
	{colorful.LinearRgb(1, 0.5, 0), 1 / 11.0},
	{colorful.LinearRgb(1, 1, 0), 2 / 11.0},
	{colorful.LinearRgb(0.5, 1, 0), 3 / 11.0},
	{colorful.LinearRgb(0, 1, 0), 4 / 11.0},
	{colorful.LinearRgb(0, 1, 0.5), 5 / 11.0},
	{colorful.LinearRgb(0, 1, 1), 6 / 11.0},
	{colorful.LinearRgb(0, 0.5, 1), 7 / 11.0},
	{colorful.LinearRgb(0, 0, 1), 8 / 11.0},
	{colorful.LinearRgb(0.5, 0, 1), 9 / 11.0},
	{colorful.LinearRgb(1, 0, 1), 10 / 11.0},
	{colorful.LinearRgb(1, 0, 0.5), 11 / 11.0},
}

// ColorfulColor converts a go-colorful colour into a 24-bit tcell colour.
func ColorfulColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// AppendRainbow appends text with every grapheme cluster coloured along
// Gradient. Whitespace is appended without a colour.
func (b *Builder) AppendRainbow(text string, spans ...Span) *Builder {
	var count int
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		if !isSpace(graphemes.Runes()) {
			count++
		}
	}
	i := 0
	graphemes = uniseg.NewGraphemes(text)
	for graphemes.Next() {
		if isSpace(graphemes.Runes()) {
			b.Append(graphemes.Str())
			continue
		}
		col := Gradient.GetInterpolatedColorFor(float64(i) / float64(count))
		b.Append(graphemes.Str(), append([]Span{Foreground(ColorfulColor(col))}, spans...)...)
		i++
	}
	return b
}

func isSpace(runes []rune) bool {
	return len(runes) == 1 && unicode.IsSpace(runes[0])
}
