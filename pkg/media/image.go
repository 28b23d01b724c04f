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

// Package media contains helpers for oriented images: orientation
// correction, cropping, JPEG encoding and decoding with EXIF orientation.
package media

import (
	"image"

	"github.com/rs/zerolog"

	"go.mau.fi/uiext/pkg/orientation"
)

// Image is a raster together with the metadata needed to display it.
// Operations never modify an Image, they return new ones.
type Image struct {
	Raster      image.Image
	Orientation orientation.Orientation
	// Scale is the number of pixels per point. Zero means 1.
	Scale float64
}

// NewImage wraps a raster with the given orientation and a scale of 1.
func NewImage(raster image.Image, orient orientation.Orientation) *Image {
	return &Image{Raster: raster, Orientation: orient, Scale: 1}
}

// PixelSize returns the size of the stored raster.
func (img *Image) PixelSize() image.Point {
	if img.Raster == nil {
		return image.Point{}
	}
	return img.Raster.Bounds().Size()
}

// Size returns the upright size in pixels.
func (img *Image) Size() image.Point {
	size := img.PixelSize()
	size.X, size.Y = img.Orientation.ApplyToDimensions(size.X, size.Y)
	return size
}

func (img *Image) scale() float64 {
	if img.Scale <= 0 {
		return 1
	}
	return img.Scale
}

func (img *Image) MarshalZerologObject(e *zerolog.Event) {
	size := img.PixelSize()
	e.Int("width", size.X).
		Int("height", size.Y).
		Stringer("orientation", img.Orientation).
		Float64("scale", img.scale())
}
