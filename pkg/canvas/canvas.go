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

// Package canvas implements an off-screen draw target with a current
// transform matrix, in the spirit of a bitmap graphics context.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"go.mau.fi/uiext/pkg/affine"
)

// DefaultMaxPixels is the largest canvas New allows when no limit is given.
const DefaultMaxPixels = 1 << 28

var (
	ErrTooLarge          = errors.New("canvas is too large")
	ErrUnreadableSource  = errors.New("source pixel data is unreadable")
	ErrReleased          = errors.New("canvas has been released")
	ErrInvalidDimensions = errors.New("canvas dimensions must be positive")
)

// Canvas is a scratch pixel buffer. Drawing goes through the current
// transform matrix (CTM), which maps user space to canvas pixels.
type Canvas struct {
	img draw.Image
	ctm affine.Transform

	// Interpolator is used for drawing. Nearest neighbour keeps quarter turns
	// and flips pixel exact.
	Interpolator draw.Interpolator
}

// New allocates a canvas of the given size using the pixel layout of like,
// falling back to NRGBA for layouts that can't be drawn into directly.
func New(like image.Image, size image.Point, maxPixels int) (*Canvas, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrInvalidDimensions, size.X, size.Y)
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if size.X > maxPixels/size.Y {
		return nil, fmt.Errorf("%w: %dx%d exceeds the limit of %d pixels", ErrTooLarge, size.X, size.Y, maxPixels)
	}
	return &Canvas{
		img:          allocate(like, image.Rectangle{Max: size}),
		ctm:          affine.Identity(),
		Interpolator: draw.NearestNeighbor,
	}, nil
}

func allocate(like image.Image, rect image.Rectangle) draw.Image {
	switch src := like.(type) {
	case *image.Gray:
		return image.NewGray(rect)
	case *image.Gray16:
		return image.NewGray16(rect)
	case *image.Alpha:
		return image.NewAlpha(rect)
	case *image.Alpha16:
		return image.NewAlpha16(rect)
	case *image.RGBA:
		return image.NewRGBA(rect)
	case *image.RGBA64:
		return image.NewRGBA64(rect)
	case *image.NRGBA64:
		return image.NewNRGBA64(rect)
	case *image.Paletted:
		return image.NewPaletted(rect, append(color.Palette(nil), src.Palette...))
	default:
		return image.NewNRGBA(rect)
	}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() image.Point {
	if c.img == nil {
		return image.Point{}
	}
	return c.img.Bounds().Size()
}

// CTM returns the current transform matrix.
func (c *Canvas) CTM() affine.Transform {
	return c.ctm
}

// ConcatCTM makes t apply to user space coordinates before the existing CTM.
func (c *Canvas) ConcatCTM(t affine.Transform) {
	c.ctm = affine.Concat(t, c.ctm)
}

// DrawImage draws src so that it fills rect in user space, then maps the
// result through the CTM onto the canvas. A source whose pixels can't be
// read results in ErrUnreadableSource.
func (c *Canvas) DrawImage(rect image.Rectangle, src image.Image) (err error) {
	if c.img == nil {
		return ErrReleased
	}
	if err = Validate(src); err != nil {
		return err
	} else if rect.Empty() {
		return nil
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: panic while drawing: %v", ErrUnreadableSource, p)
		}
	}()
	if _, ok := src.(image.RGBA64Image); !ok {
		src = imaging.Clone(src)
	}
	sr := src.Bounds()
	srcSize := sr.Size()
	rectSize := rect.Size()
	s2d := affine.Concat(
		affine.Identity().
			Translate(float64(rect.Min.X), float64(rect.Min.Y)).
			Scale(float64(rectSize.X)/float64(srcSize.X), float64(rectSize.Y)/float64(srcSize.Y)).
			Translate(-float64(sr.Min.X), -float64(sr.Min.Y)),
		c.ctm,
	)
	if dx, dy, ok := s2d.IsIntegerTranslation(); ok {
		draw.Copy(c.img, sr.Min.Add(image.Pt(dx, dy)), src, sr, draw.Src, nil)
	} else {
		c.Interpolator.Transform(c.img, s2d.Aff3(), src, sr, draw.Src, nil)
	}
	return nil
}

// Image detaches the pixel buffer from the canvas and returns it. The
// canvas can't be drawn into afterwards.
func (c *Canvas) Image() image.Image {
	img := c.img
	c.img = nil
	return img
}

// Release drops the pixel buffer if it hasn't been detached. It is safe to
// call more than once.
func (c *Canvas) Release() {
	c.img = nil
}
