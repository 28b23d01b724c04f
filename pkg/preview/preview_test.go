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

package preview_test

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/tcell"

	"go.mau.fi/uiext/pkg/canvas"
	"go.mau.fi/uiext/pkg/preview"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func TestSize(t *testing.T) {
	assert.Equal(t, image.Pt(80, 40), preview.Size(image.Pt(800, 400), 80))
	// Odd heights are rounded down to whole cells.
	assert.Equal(t, image.Pt(2, 2), preview.Size(image.Pt(4, 6), 2))
	assert.Equal(t, image.Pt(10, 0), preview.Size(image.Pt(100, 5), 10))
	assert.Equal(t, image.Point{}, preview.Size(image.Pt(0, 5), 10))
}

func TestRender_Cells(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 4))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(0, 1, green)
	img.SetNRGBA(1, 0, green)
	// (1, 1) stays transparent and shows the background.
	img.SetNRGBA(0, 2, blue)
	img.SetNRGBA(0, 3, red)
	img.SetNRGBA(1, 2, red)
	img.SetNRGBA(1, 3, blue)

	rows, err := preview.Render(img, 2, blue)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Len(t, row, 2)
		assert.Equal(t, "▄▄", row.String())
	}
	expect := [2][2][2]color.NRGBA{
		{{red, green}, {green, blue}},
		{{blue, red}, {red, blue}},
	}
	for y, row := range rows {
		for x, cell := range row {
			fg, bg, _ := cell.Style.Decompose()
			assert.Equal(t, rgb(expect[y][x][0]), bg, "background at %d,%d", x, y)
			assert.Equal(t, rgb(expect[y][x][1]), fg, "foreground at %d,%d", x, y)
		}
	}
}

func TestRender_Scales(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	rows, err := preview.Render(img, 8, color.White)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Len(t, rows[0], 8)
	fg, bg, _ := rows[1][7].Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0xff, 0xff, 0xff), fg)
	assert.Equal(t, tcell.NewRGBColor(0xff, 0xff, 0xff), bg)
}

func TestRender_NilBackgroundIsBlack(t *testing.T) {
	rows, err := preview.Render(image.NewNRGBA(image.Rect(0, 0, 1, 2)), 1, nil)
	require.NoError(t, err)
	fg, _, _ := rows[0][0].Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)
}

func TestRender_TooSmall(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	_, err := preview.Render(img, 0, color.Black)
	assert.ErrorIs(t, err, preview.ErrTooSmall)
	_, err = preview.Render(image.NewNRGBA(image.Rect(0, 0, 100, 5)), 10, color.Black)
	assert.ErrorIs(t, err, preview.ErrTooSmall)
	_, err = preview.Render(nil, 10, color.Black)
	assert.ErrorIs(t, err, canvas.ErrUnreadableSource)
}

func TestLines(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(0, 1, blue)
	lines, err := preview.Lines(img, 1, color.Black)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "\x1b[0;38;2;0;0;255;48;2;255;0;0m▄\x1b[0m", lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "\x1b[0m"))
}
