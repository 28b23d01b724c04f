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

// Package preview renders images as rows of coloured half-block cells.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"

	"github.com/disintegration/imaging"
	"go.mau.fi/tcell"
	"golang.org/x/sync/errgroup"

	"go.mau.fi/uiext/pkg/canvas"
	"go.mau.fi/uiext/pkg/spantext"
)

// ErrTooSmall is returned when the preview wouldn't have a single full cell.
var ErrTooSmall = errors.New("preview must be at least 1 column and 1 row")

// ErrRenderPanic is returned when rendering a row panics.
var ErrRenderPanic = errors.New("panic while rendering preview row")

// HalfBlock is drawn in every cell. Its background is the upper pixel and
// its foreground is the lower pixel.
const HalfBlock = '▄'

// Size returns the pixel size of the preview of an image of the given size
// when rendered width columns wide. The height is always even.
func Size(src image.Point, width int) image.Point {
	if src.X <= 0 || src.Y <= 0 || width < 1 {
		return image.Point{}
	}
	height := int(math.Round(float64(width) * float64(src.Y) / float64(src.X)))
	return image.Pt(width, height-height%2)
}

func opaque(bg color.Color) color.NRGBA {
	if bg == nil {
		return color.NRGBA{A: 0xff}
	}
	c := color.NRGBAModel.Convert(bg).(color.NRGBA)
	c.A = 0xff
	return c
}

func cellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func renderRow(img *image.NRGBA, y int) spantext.TString {
	str := make(spantext.TString, img.Rect.Dx())
	for x := range str {
		top := img.NRGBAAt(x, y)
		bottom := img.NRGBAAt(x, y+1)
		str[x] = spantext.Cell{
			Char:  HalfBlock,
			Style: tcell.StyleDefault.Background(cellColor(top)).Foreground(cellColor(bottom)),
		}
	}
	return str
}

// Render scales img to width columns, composites it over bg and returns
// one styled string per text row. Rows are rendered in parallel.
func Render(img image.Image, width int, bg color.Color) ([]spantext.TString, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w (width %d)", ErrTooSmall, width)
	} else if err := canvas.Validate(img); err != nil {
		return nil, err
	}
	size := Size(img.Bounds().Size(), width)
	if size.Y < 2 {
		return nil, fmt.Errorf("%w (image would be %dx%d pixels)", ErrTooSmall, size.X, size.Y)
	}
	scaled := imaging.Resize(img, size.X, size.Y, imaging.Lanczos)
	composited := imaging.Overlay(imaging.New(size.X, size.Y, opaque(bg)), scaled, image.Pt(0, 0), 1)

	rows := make([]spantext.TString, size.Y/2)
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for row := range rows {
		eg.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("%w %d: %v", ErrRenderPanic, row, p)
				}
			}()
			rows[row] = renderRow(composited, row*2)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Lines renders img like Render and converts every row to a string with
// ANSI escape sequences.
func Lines(img image.Image, width int, bg color.Color) ([]string, error) {
	rows, err := Render(img, width, bg)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.ANSI()
	}
	return lines, nil
}
