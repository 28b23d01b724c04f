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

package media

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"go.mau.fi/uiext/pkg/affine"
	"go.mau.fi/uiext/pkg/canvas"
	"go.mau.fi/uiext/pkg/orientation"
)

// Fixer redraws images so that their pixels are stored upright.
type Fixer struct {
	// MaxPixels limits the size of the scratch canvas. Zero means canvas.DefaultMaxPixels.
	MaxPixels int
	// AlwaysCopy makes Fix return an independent copy for images that are already upright
	// instead of returning the input.
	AlwaysCopy bool
}

var DefaultFixer = &Fixer{}

// FixOrientation redraws img upright using DefaultFixer.
func FixOrientation(ctx context.Context, img *Image) (*Image, error) {
	return DefaultFixer.Fix(ctx, img)
}

// RotationStage prepends the rotation for o to t. size is the upright size
// of the image. Afterwards the content is upright, but possibly mirrored.
func RotationStage(t affine.Transform, o orientation.Orientation, size image.Point) affine.Transform {
	w, h := float64(size.X), float64(size.Y)
	switch o {
	case orientation.Down, orientation.DownMirrored:
		return t.Translate(w, h).Rotate(math.Pi)
	case orientation.Left, orientation.LeftMirrored:
		return t.Translate(w, 0).Rotate(math.Pi / 2)
	case orientation.Right, orientation.RightMirrored:
		return t.Translate(0, h).Rotate(-math.Pi / 2)
	default:
		return t
	}
}

// MirrorStage prepends the horizontal flip for mirrored orientations to t.
// size is the upright size of the image.
func MirrorStage(t affine.Transform, o orientation.Orientation, size image.Point) affine.Transform {
	switch o {
	case orientation.UpMirrored, orientation.DownMirrored:
		return t.Translate(float64(size.X), 0).Scale(-1, 1)
	case orientation.LeftMirrored, orientation.RightMirrored:
		return t.Translate(float64(size.Y), 0).Scale(-1, 1)
	default:
		return t
	}
}

// Transform returns the complete transform that maps stored pixel
// coordinates of an image with the given orientation and upright size onto
// the upright canvas.
func Transform(o orientation.Orientation, size image.Point) affine.Transform {
	return MirrorStage(RotationStage(affine.Identity(), o, size), o, size)
}

// Fix returns an image whose pixels are stored upright and whose
// orientation is Up. Images that are already upright are returned as-is,
// unless AlwaysCopy is set.
func (f *Fixer) Fix(ctx context.Context, img *Image) (*Image, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image is nil", canvas.ErrUnreadableSource)
	}
	log := zerolog.Ctx(ctx)
	o := img.Orientation
	if !o.IsValid() {
		log.Warn().
			Int("orientation", int(o)).
			Msg("Unknown image orientation, treating as up")
		o = orientation.Up
	}
	if o == orientation.Up {
		if !f.AlwaysCopy {
			return img, nil
		} else if err := canvas.Validate(img.Raster); err != nil {
			return nil, err
		}
		return &Image{Raster: imaging.Clone(img.Raster), Orientation: orientation.Up, Scale: img.Scale}, nil
	}
	if err := canvas.Validate(img.Raster); err != nil {
		return nil, err
	}

	pixelSize := img.Raster.Bounds().Size()
	var size image.Point
	size.X, size.Y = o.ApplyToDimensions(pixelSize.X, pixelSize.Y)
	transform := Transform(o, size)
	log.Trace().
		Object("image", img).
		Stringer("transform", transform).
		Msg("Redrawing image upright")

	target, err := canvas.New(img.Raster, size, f.MaxPixels)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate canvas: %w", err)
	}
	defer target.Release()
	target.ConcatCTM(transform)

	drawRect := image.Rect(0, 0, size.X, size.Y)
	if o.SwapsDimensions() {
		drawRect = image.Rect(0, 0, size.Y, size.X)
	}
	if err = target.DrawImage(drawRect, img.Raster); err != nil {
		return nil, fmt.Errorf("failed to draw image: %w", err)
	}
	return &Image{
		Raster:      target.Image(),
		Orientation: orientation.Up,
		Scale:       img.Scale,
	}, nil
}
