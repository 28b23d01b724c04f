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
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"go.mau.fi/uiext/pkg/canvas"
)

var ErrEmptyCrop = errors.New("crop rectangle doesn't overlap the image")

// Rect is a rectangle in points.
type Rect struct {
	X, Y, Width, Height float64
}

// Pixels converts r to pixel coordinates with the given scale.
func (r Rect) Pixels(scale float64) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X*scale)),
		int(math.Round(r.Y*scale)),
		int(math.Round((r.X+r.Width)*scale)),
		int(math.Round((r.Y+r.Height)*scale)),
	)
}

// Crop cuts rect out of the stored raster. The rectangle is in points
// relative to the raster origin and is clipped to the raster. The result
// keeps the orientation and scale of img, and the input isn't modified.
func Crop(img *Image, rect Rect) (*Image, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image is nil", canvas.ErrUnreadableSource)
	} else if err := canvas.Validate(img.Raster); err != nil {
		return nil, err
	}
	bounds := img.Raster.Bounds()
	pixels := rect.Pixels(img.scale()).Add(bounds.Min).Intersect(bounds)
	if pixels.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrEmptyCrop, rect)
	}
	return &Image{
		Raster:      imaging.Crop(img.Raster, pixels),
		Orientation: img.Orientation,
		Scale:       img.Scale,
	}, nil
}
